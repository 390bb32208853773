package content

import (
	"sort"
	"strings"
)

// Result kinds returned by Search.
const (
	KindPrompt   = "prompt"
	KindTutorial = "tutorial"
)

// SearchResult is a single search hit.
type SearchResult struct {
	Kind    string `json:"kind"`
	Slug    string `json:"slug"`
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Score   int    `json:"score"`
}

// Search does a case-insensitive match of query against prompts and
// tutorials. Title hits rank above tag hits, which rank above description
// and body hits. A limit of zero or less means no limit.
func (c *Catalog) Search(query string, limit int) []SearchResult {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	var results []SearchResult
	for _, p := range c.prompts {
		score := scoreFields(terms, p.Title, strings.Join(append([]string{p.Category}, p.Tags...), " "), p.Description+" "+p.Prompt)
		if score > 0 {
			results = append(results, SearchResult{
				Kind:    KindPrompt,
				Slug:    p.Slug,
				Path:    "/prompts/" + p.Slug,
				Title:   p.Title,
				Summary: p.Description,
				Score:   score,
			})
		}
	}
	for _, t := range c.tutorials {
		score := scoreFields(terms, t.Title, strings.Join(t.Tags, " ")+" "+string(t.Category), t.Description+" "+t.Body)
		if score > 0 {
			results = append(results, SearchResult{
				Kind:    KindTutorial,
				Slug:    t.Slug,
				Path:    t.Path(),
				Title:   t.Title,
				Summary: t.Description,
				Score:   score,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// scoreFields requires every term to appear somewhere and weights where.
func scoreFields(terms []string, title, tags, text string) int {
	title = strings.ToLower(title)
	tags = strings.ToLower(tags)
	text = strings.ToLower(text)

	score := 0
	for _, term := range terms {
		switch {
		case strings.Contains(title, term):
			score += 10
		case strings.Contains(tags, term):
			score += 5
		case strings.Contains(text, term):
			score++
		default:
			return 0
		}
	}
	return score
}
