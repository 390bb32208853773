// Package sitemap generates sitemap.xml, image-sitemap.xml, sitemap.json and
// robots.txt from the content catalog.
package sitemap

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nanobanana-fans/nanobanana/internal/content"
	"github.com/nanobanana-fans/nanobanana/internal/seo"
)

// XML namespaces.
const (
	NamespaceSitemap = "http://www.sitemaps.org/schemas/sitemap/0.9"
	NamespaceImage   = "http://www.google.com/schemas/sitemap-image/1.1"
)

// Defaults for pages without a tracked PageUpdate row.
const (
	DetailChangeFrequency = content.ChangeWeekly
	DetailPriority        = 0.8
)

// Entry is one URL of the sitemap.
type Entry struct {
	URL             string                  `json:"url"`
	LastModified    string                  `json:"lastModified"`
	ChangeFrequency content.ChangeFrequency `json:"changeFrequency"`
	Priority        float64                 `json:"priority"`
}

// ImageEntry is one URL of the image sitemap.
type ImageEntry struct {
	URL          string
	LastModified string
	ImageURL     string
	Title        string
	Caption      string
}

// Generator builds sitemaps for a catalog. A zero Now means time.Now().
type Generator struct {
	Site    seo.Site
	Catalog *content.Catalog
	Now     time.Time
}

// New creates a Generator using the current time.
func New(site seo.Site, catalog *content.Catalog) *Generator {
	return &Generator{Site: site, Catalog: catalog}
}

func (g *Generator) today() string {
	now := g.Now
	if now.IsZero() {
		now = time.Now()
	}
	return now.UTC().Format(content.DateLayout)
}

// Entries returns every static page, tutorial and prompt, highest priority
// first. Entries of equal priority keep that source order.
func (g *Generator) Entries() []Entry {
	var entries []Entry

	for _, p := range g.Catalog.Pages() {
		entries = append(entries, Entry{
			URL:             g.Site.URL(p.URL),
			LastModified:    p.LastModified,
			ChangeFrequency: p.ChangeFrequency,
			Priority:        p.Priority,
		})
	}

	for _, t := range g.Catalog.Tutorials() {
		e := Entry{
			URL:             g.Site.URL(t.Path()),
			LastModified:    t.UpdatedAt,
			ChangeFrequency: DetailChangeFrequency,
			Priority:        DetailPriority,
		}
		if p, ok := g.Catalog.PageUpdate(t.Path()); ok {
			e.LastModified = p.LastModified
			e.ChangeFrequency = p.ChangeFrequency
			e.Priority = p.Priority
		}
		entries = append(entries, e)
	}

	for _, p := range g.Catalog.Prompts() {
		entries = append(entries, Entry{
			URL:             g.Site.URL("/prompts/" + p.Slug),
			LastModified:    g.promptDate(p),
			ChangeFrequency: DetailChangeFrequency,
			Priority:        DetailPriority,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Priority > entries[j].Priority
	})
	return entries
}

func (g *Generator) promptDate(p content.Prompt) string {
	if p.UpdatedAt != "" {
		return p.UpdatedAt
	}
	return g.today()
}

// ImageEntries returns one entry per prompt preview and per tutorial hero.
func (g *Generator) ImageEntries() []ImageEntry {
	var entries []ImageEntry
	for _, p := range g.Catalog.Prompts() {
		if p.PreviewImage == "" {
			continue
		}
		entries = append(entries, ImageEntry{
			URL:          g.Site.URL("/prompts/" + p.Slug),
			LastModified: g.promptDate(p),
			ImageURL:     g.imageURL(p.PreviewImage),
			Title:        p.Title,
			Caption:      p.Description,
		})
	}
	for _, t := range g.Catalog.Tutorials() {
		if t.Hero.Image == "" {
			continue
		}
		lastmod := t.UpdatedAt
		if p, ok := g.Catalog.PageUpdate(t.Path()); ok {
			lastmod = p.LastModified
		}
		entries = append(entries, ImageEntry{
			URL:          g.Site.URL(t.Path()),
			LastModified: lastmod,
			ImageURL:     g.imageURL(t.Hero.Image),
			Title:        t.Title,
			Caption:      t.Description,
		})
	}
	return entries
}

// imageURL makes an image path absolute, adding the leading slash when
// missing and escaping characters such as spaces.
func (g *Generator) imageURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return g.Site.URL((&url.URL{Path: path}).EscapedPath())
}

type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority"`
}

// WriteXML writes the sitemap in the sitemaps.org 0.9 format.
func (g *Generator) WriteXML(w io.Writer) error {
	set := xmlURLSet{Xmlns: NamespaceSitemap}
	for _, e := range g.Entries() {
		set.URLs = append(set.URLs, xmlURL{
			Loc:        e.URL,
			LastMod:    e.LastModified,
			ChangeFreq: string(e.ChangeFrequency),
			Priority:   FormatPriority(e.Priority),
		})
	}
	return writeXML(w, set)
}

type xmlImageURLSet struct {
	XMLName    xml.Name      `xml:"urlset"`
	Xmlns      string        `xml:"xmlns,attr"`
	XmlnsImage string        `xml:"xmlns:image,attr"`
	URLs       []xmlImageURL `xml:"url"`
}

type xmlImageURL struct {
	Loc     string   `xml:"loc"`
	LastMod string   `xml:"lastmod,omitempty"`
	Image   xmlImage `xml:"image:image"`
}

type xmlImage struct {
	Loc     string `xml:"image:loc"`
	Title   cdata  `xml:"image:title"`
	Caption cdata  `xml:"image:caption"`
}

type cdata struct {
	Text string `xml:",cdata"`
}

// WriteImageXML writes the Google image sitemap.
func (g *Generator) WriteImageXML(w io.Writer) error {
	set := xmlImageURLSet{Xmlns: NamespaceSitemap, XmlnsImage: NamespaceImage}
	for _, e := range g.ImageEntries() {
		set.URLs = append(set.URLs, xmlImageURL{
			Loc:     e.URL,
			LastMod: e.LastModified,
			Image: xmlImage{
				Loc:     e.ImageURL,
				Title:   cdata{e.Title},
				Caption: cdata{e.Caption},
			},
		})
	}
	return writeXML(w, set)
}

func writeXML(w io.Writer, v any) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding sitemap: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteJSON writes the sitemap entries as a JSON array.
func (g *Generator) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g.Entries())
}

// WriteRobots writes a robots.txt that allows crawling of every page and
// points at both sitemaps.
func (g *Generator) WriteRobots(w io.Writer) error {
	_, err := fmt.Fprintf(w, "User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: %s\nSitemap: %s\n",
		g.Site.URL("/sitemap.xml"), g.Site.URL("/image-sitemap.xml"))
	return err
}

// FormatPriority renders a priority with one decimal place, e.g. "1.0".
func FormatPriority(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64)
}
