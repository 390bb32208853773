package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

//go:embed data
var embedded embed.FS

const (
	promptsFile = "prompts.yaml"
	pagesFile   = "pages.yaml"
	tutorialDir = "tutorials"

	// MaxRelated caps every "related" list.
	MaxRelated = 4
)

// Catalog is the read-only set of prompts, tutorials and page updates the
// site is built from.
type Catalog struct {
	prompts       []Prompt
	tutorials     []Tutorial
	staticPages   []PageUpdate
	tutorialPages []PageUpdate
}

// pagesDoc is the layout of pages.yaml.
type pagesDoc struct {
	Static    []PageUpdate `yaml:"static"`
	Tutorials []PageUpdate `yaml:"tutorials"`
}

// DefaultFS returns the content bundled into the binary.
func DefaultFS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadDefault loads the embedded content.
func LoadDefault() (*Catalog, error) {
	return Load(DefaultFS())
}

// LoadDir loads content from a directory on disk laid out like the
// embedded data: prompts.yaml, pages.yaml and tutorials/*.yaml.
func LoadDir(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads a catalog from fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{}

	if err := decodeYAML(fsys, promptsFile, &c.prompts); err != nil {
		return nil, err
	}

	var pages pagesDoc
	if err := decodeYAML(fsys, pagesFile, &pages); err != nil {
		return nil, err
	}
	c.staticPages = pages.Static
	c.tutorialPages = pages.Tutorials

	matches, err := doublestar.Glob(fsys, tutorialDir+"/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("listing tutorials: %w", err)
	}
	sort.Strings(matches)

	for _, name := range matches {
		var t Tutorial
		if err := decodeYAML(fsys, name, &t); err != nil {
			return nil, err
		}
		if t.Slug == "" {
			t.Slug = strings.TrimSuffix(path.Base(name), ".yaml")
		}
		if t.ID == "" {
			t.ID = t.Slug
		}
		if t.Author == nil {
			author := DefaultAuthor
			t.Author = &author
		}

		body, err := fs.ReadFile(fsys, path.Join(tutorialDir, t.Slug+".md"))
		switch {
		case err == nil:
			t.Body = string(body)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("reading body of %s: %w", t.Slug, err)
		}

		c.tutorials = append(c.tutorials, t)
	}

	sort.SliceStable(c.tutorials, func(i, j int) bool {
		return c.tutorials[i].Order < c.tutorials[j].Order
	})

	return c, nil
}

func decodeYAML(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// Prompts returns every prompt in library order.
func (c *Catalog) Prompts() []Prompt {
	return slices.Clone(c.prompts)
}

// Prompt looks a prompt up by slug.
func (c *Catalog) Prompt(slug string) (Prompt, error) {
	for _, p := range c.prompts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Prompt{}, fmt.Errorf("prompt %q: %w", slug, ErrNotFound)
}

// RelatedPrompts returns up to MaxRelated prompts in the same category as p,
// topped up with prompts sharing any tag. p itself is never included.
func (c *Catalog) RelatedPrompts(p Prompt) []Prompt {
	var related []Prompt
	seen := map[string]bool{p.Slug: true}

	add := func(match func(Prompt) bool) {
		for _, other := range c.prompts {
			if len(related) == MaxRelated {
				return
			}
			if seen[other.Slug] || !match(other) {
				continue
			}
			seen[other.Slug] = true
			related = append(related, other)
		}
	}

	add(func(o Prompt) bool { return o.Category == p.Category })
	add(func(o Prompt) bool {
		for _, tag := range p.Tags {
			if o.HasTag(tag) {
				return true
			}
		}
		return false
	})
	return related
}

// PromptsByTag returns the prompts carrying tag. An empty tag returns all.
func (c *Catalog) PromptsByTag(tag string) []Prompt {
	if tag == "" {
		return c.Prompts()
	}
	var out []Prompt
	for _, p := range c.prompts {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}

// TagCount is a tag with the number of prompts using it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Tags returns the distinct prompt tags, most used first, ties by name.
func (c *Catalog) Tags() []TagCount {
	counts := make(map[string]int)
	for _, p := range c.prompts {
		for _, t := range p.Tags {
			counts[t]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

// Tutorials returns every tutorial in reading order.
func (c *Catalog) Tutorials() []Tutorial {
	return slices.Clone(c.tutorials)
}

// Tutorial looks a tutorial up by slug.
func (c *Catalog) Tutorial(slug string) (Tutorial, error) {
	for _, t := range c.tutorials {
		if t.Slug == slug {
			return t, nil
		}
	}
	return Tutorial{}, fmt.Errorf("tutorial %q: %w", slug, ErrNotFound)
}

// TutorialsByDifficulty returns the tutorials at difficulty d.
func (c *Catalog) TutorialsByDifficulty(d Difficulty) []Tutorial {
	var out []Tutorial
	for _, t := range c.tutorials {
		if t.Difficulty == d {
			out = append(out, t)
		}
	}
	return out
}

// RelatedTutorials resolves t's hand-picked related list against the
// catalog, then tops it up with tutorials of the same category or sharing a
// tag. At most MaxRelated are returned and t is never among them.
func (c *Catalog) RelatedTutorials(t Tutorial) []Tutorial {
	var related []Tutorial
	seen := map[string]bool{t.Slug: true, t.ID: true}

	push := func(o Tutorial) {
		if len(related) == MaxRelated || seen[o.Slug] {
			return
		}
		seen[o.Slug] = true
		related = append(related, o)
	}

	for _, id := range t.RelatedTutorials {
		for _, o := range c.tutorials {
			if o.ID == id || o.Slug == id {
				push(o)
				break
			}
		}
	}
	for _, o := range c.tutorials {
		if o.Category == t.Category {
			push(o)
		}
	}
	for _, o := range c.tutorials {
		if sharesTag(o.Tags, t.Tags) {
			push(o)
		}
	}
	return related
}

func sharesTag(a, b []string) bool {
	for _, x := range a {
		if slices.Contains(b, x) {
			return true
		}
	}
	return false
}
