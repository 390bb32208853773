package site

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/nanobanana-fans/nanobanana/internal/content"
)

// SearchIndexPath is where the client-side search index is served.
const SearchIndexPath = "/search-index.json"

// maxIndexedContent caps the text indexed per page.
const maxIndexedContent = 2000

// SearchEntry represents a single searchable page of the site.
type SearchEntry struct {
	Kind    string `json:"kind"`
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// BuildSearchIndex lists every prompt and tutorial for client-side search,
// prompts first in library order.
func BuildSearchIndex(catalog *content.Catalog) []SearchEntry {
	var entries []SearchEntry
	for _, p := range catalog.Prompts() {
		text := strings.Join(append([]string{p.Category, p.Prompt}, p.Tags...), " ")
		entries = append(entries, SearchEntry{
			Kind:    content.KindPrompt,
			Path:    "/prompts/" + p.Slug,
			Title:   p.Title,
			Summary: p.Description,
			Content: truncate(text, maxIndexedContent),
		})
	}
	for _, t := range catalog.Tutorials() {
		fields := append([]string{string(t.Category)}, t.Tags...)
		text := strings.Join(append(fields, markdownText(t.Body)), " ")
		entries = append(entries, SearchEntry{
			Kind:    content.KindTutorial,
			Path:    t.Path(),
			Title:   t.Title,
			Summary: t.Description,
			Content: truncate(text, maxIndexedContent),
		})
	}
	return entries
}

// markdownText flattens Markdown into a single line, dropping heading
// markers, fences and blank lines.
func markdownText(md string) string {
	var words []string
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		line = strings.TrimLeft(line, "#>-* ")
		words = append(words, line)
	}
	return strings.Join(words, " ")
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	s = s[:n]
	for !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}

// WriteSearchIndex writes the search index as JSON.
func WriteSearchIndex(w io.Writer, entries []SearchEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// SearchIndexHandler serves the catalog's search index.
func SearchIndexHandler(catalog *content.Catalog) http.HandlerFunc {
	entries := BuildSearchIndex(catalog)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		if err := WriteSearchIndex(w, entries); err != nil {
			log.Printf("writing search index: %v", err)
		}
	}
}
