package seo

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/nanobanana-fans/nanobanana/internal/content"
)

const schemaContext = "https://schema.org"

// Crumb is one breadcrumb entry. Path is the site path; the absolute URL is
// derived from the Site when rendering JSON-LD.
type Crumb struct {
	Name string
	Path string
}

// TutorialBreadcrumbs returns Home / Tutorials / <title>.
func TutorialBreadcrumbs(t content.Tutorial) []Crumb {
	return []Crumb{
		{Name: "Home", Path: "/"},
		{Name: "Tutorials", Path: "/tutorials"},
		{Name: t.Title, Path: t.Path()},
	}
}

// PromptBreadcrumbs returns Home / Prompts / <Category> / <title>. The
// category crumb links to the gallery filtered by the prompt's primary tag.
func PromptBreadcrumbs(p content.Prompt) []Crumb {
	return []Crumb{
		{Name: "Home", Path: "/"},
		{Name: "Prompts", Path: "/prompts"},
		{Name: content.CategoryLabel(p.Category), Path: "/prompts?tag=" + p.PrimaryTag()},
		{Name: p.Title, Path: "/prompts/" + p.Slug},
	}
}

// Breadcrumbs returns a BreadcrumbList document.
func Breadcrumbs(site Site, crumbs []Crumb) map[string]any {
	items := make([]map[string]any, 0, len(crumbs))
	for i, c := range crumbs {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Name,
			"item":     site.URL(c.Path),
		})
	}
	return map[string]any{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

// WebSite returns the site-wide document with a sitelinks search box.
func WebSite(site Site) map[string]any {
	return map[string]any{
		"@context": schemaContext,
		"@type":    "WebSite",
		"name":     site.Name,
		"url":      site.URL("/"),
		"potentialAction": map[string]any{
			"@type":       "SearchAction",
			"target":      site.URL("/search") + "?q={search_term_string}",
			"query-input": "required name=search_term_string",
		},
	}
}

// PromptArticle describes a prompt as a CreativeWork.
func PromptArticle(site Site, p content.Prompt) map[string]any {
	doc := map[string]any{
		"@context":    schemaContext,
		"@type":       "CreativeWork",
		"name":        p.Title,
		"description": p.Description,
		"url":         site.URL("/prompts/" + p.Slug),
		"image":       site.URL(p.PreviewImage),
		"genre":       content.CategoryLabel(p.Category),
		"keywords":    strings.Join(p.Tags, ", "),
		"text":        p.Prompt,
		"publisher":   publisher(site),
	}
	if p.UpdatedAt != "" {
		doc["dateModified"] = p.UpdatedAt
	}
	return doc
}

// TutorialArticle describes a tutorial as a TechArticle with its rating.
func TutorialArticle(site Site, t content.Tutorial) map[string]any {
	doc := map[string]any{
		"@context":         schemaContext,
		"@type":            "TechArticle",
		"headline":         t.Title,
		"description":      t.Description,
		"url":              site.URL(t.Path()),
		"image":            site.URL(t.SEO.OGImage),
		"datePublished":    t.PublishedAt,
		"dateModified":     t.UpdatedAt,
		"author":           map[string]any{"@type": "Person", "name": authorName(t)},
		"publisher":        publisher(site),
		"keywords":         strings.Join(t.Tags, ", "),
		"articleSection":   string(t.Category),
		"proficiencyLevel": string(t.Difficulty),
		"aggregateRating": map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": t.Rating,
			"ratingCount": t.RatingCount,
			"bestRating":  5,
		},
	}
	if d := TimeRequired(t.ReadTime); d != "" {
		doc["timeRequired"] = d
	}
	return doc
}

func publisher(site Site) map[string]any {
	return map[string]any{
		"@type": "Organization",
		"name":  site.Name,
		"url":   site.URL("/"),
	}
}

// TimeRequired converts a read time like "12 min" to an ISO 8601 duration
// ("PT12M"). Unparseable input yields "".
func TimeRequired(readTime string) string {
	fields := strings.Fields(readTime)
	if len(fields) == 0 {
		return ""
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n <= 0 {
		return ""
	}
	return fmt.Sprintf("PT%dM", n)
}

// JSONLD encodes v for a <script type="application/ld+json"> element.
// encoding/json escapes <, > and & so the result cannot close the script.
func JSONLD(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding json-ld: %w", err)
	}
	return template.JS(b), nil
}

// FormatDate renders a YYYY-MM-DD date as "Jan 20, 2024". Other input is
// returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(content.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}
