// Package seo builds page metadata (title, description, OpenGraph, Twitter
// cards, robots directives) and Schema.org JSON-LD for the site's pages.
package seo

import (
	"fmt"
	"strings"

	"github.com/nanobanana-fans/nanobanana/internal/content"
)

// OG image dimensions used for every share card.
const (
	OGImageWidth  = 1200
	OGImageHeight = 630
)

// Site identifies the site pages belong to.
type Site struct {
	Name        string // OpenGraph site name, e.g. "Nano Banana"
	TitleSuffix string // appended to tutorial titles, e.g. "Nano Banana Fans"
	BaseURL     string // absolute, no trailing slash
	Locale      string
}

// URL returns the absolute URL of a site path. Absolute inputs are
// returned unchanged.
func (s Site) URL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	base := strings.TrimRight(s.BaseURL, "/")
	if path == "" || path == "/" {
		return base
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// Image is an OpenGraph image.
type Image struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

// OpenGraph holds og:* properties.
type OpenGraph struct {
	Title         string
	Description   string
	URL           string
	SiteName      string
	Type          string // "website" or "article"
	Locale        string
	Images        []Image
	PublishedTime string
	ModifiedTime  string
	Authors       []string
	Tags          []string
}

// Twitter holds twitter:* card properties.
type Twitter struct {
	Card        string
	Title       string
	Description string
	Images      []string
}

// GoogleBot holds googlebot-specific robots directives.
type GoogleBot struct {
	Index           bool
	Follow          bool
	MaxVideoPreview int
	MaxImagePreview string
	MaxSnippet      int
}

func (g GoogleBot) String() string {
	parts := []string{indexWord(g.Index), followWord(g.Follow)}
	parts = append(parts,
		fmt.Sprintf("max-video-preview:%d", g.MaxVideoPreview),
		"max-image-preview:"+g.MaxImagePreview,
		fmt.Sprintf("max-snippet:%d", g.MaxSnippet),
	)
	return strings.Join(parts, ", ")
}

// Robots holds the robots meta directives.
type Robots struct {
	Index     bool
	Follow    bool
	GoogleBot *GoogleBot
}

func (r Robots) String() string {
	return indexWord(r.Index) + ", " + followWord(r.Follow)
}

func indexWord(b bool) string {
	if b {
		return "index"
	}
	return "noindex"
}

func followWord(b bool) string {
	if b {
		return "follow"
	}
	return "nofollow"
}

// Metadata is everything that goes into a page's <head>.
type Metadata struct {
	Title       string
	Description string
	Keywords    []string
	Authors     []string
	Canonical   string
	OpenGraph   OpenGraph
	Twitter     Twitter
	Robots      Robots
}

// MetaTag is one <meta> element. Exactly one of Name and Property is set.
type MetaTag struct {
	Name     string
	Property string
	Content  string
}

// MetaTags flattens m into <meta> elements in a stable order. Empty values
// are skipped.
func (m Metadata) MetaTags() []MetaTag {
	var tags []MetaTag
	name := func(n, v string) {
		if v != "" {
			tags = append(tags, MetaTag{Name: n, Content: v})
		}
	}
	prop := func(p, v string) {
		if v != "" {
			tags = append(tags, MetaTag{Property: p, Content: v})
		}
	}

	name("description", m.Description)
	name("keywords", strings.Join(m.Keywords, ", "))
	for _, a := range m.Authors {
		name("author", a)
	}
	name("robots", m.Robots.String())
	if m.Robots.GoogleBot != nil {
		name("googlebot", m.Robots.GoogleBot.String())
	}

	og := m.OpenGraph
	prop("og:title", og.Title)
	prop("og:description", og.Description)
	prop("og:url", og.URL)
	prop("og:site_name", og.SiteName)
	prop("og:locale", og.Locale)
	prop("og:type", og.Type)
	for _, img := range og.Images {
		prop("og:image", img.URL)
		if img.Width > 0 {
			prop("og:image:width", fmt.Sprint(img.Width))
			prop("og:image:height", fmt.Sprint(img.Height))
		}
		prop("og:image:alt", img.Alt)
	}
	prop("article:published_time", og.PublishedTime)
	prop("article:modified_time", og.ModifiedTime)
	for _, a := range og.Authors {
		prop("article:author", a)
	}
	for _, t := range og.Tags {
		prop("article:tag", t)
	}

	tw := m.Twitter
	name("twitter:card", tw.Card)
	name("twitter:title", tw.Title)
	name("twitter:description", tw.Description)
	for _, img := range tw.Images {
		name("twitter:image", img)
	}
	return tags
}

func indexable() Robots {
	return Robots{Index: true, Follow: true}
}

// ForPrompt builds the metadata of a prompt detail page.
func ForPrompt(site Site, p content.Prompt) Metadata {
	category := content.CategoryLabel(p.Category)
	url := site.URL("/prompts/" + p.Slug)
	image := site.URL(p.PreviewImage)

	return Metadata{
		Title:       fmt.Sprintf("%s - %s Nano Banana AI Prompt", p.Title, category),
		Description: p.Description,
		Keywords: []string{
			p.Title,
			category + " prompts",
			"Nano Banana AI",
			"AI image editing",
			"prompt library",
			"image editing prompts",
			p.Category,
		},
		Canonical: url,
		OpenGraph: OpenGraph{
			Title:       p.Title,
			Description: p.Description,
			URL:         url,
			SiteName:    site.Name,
			Type:        "website",
			Locale:      site.Locale,
			Images:      []Image{{URL: image, Width: OGImageWidth, Height: OGImageHeight, Alt: p.Title}},
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       p.Title,
			Description: p.Description,
			Images:      []string{image},
		},
		Robots: Robots{
			Index:  true,
			Follow: true,
			GoogleBot: &GoogleBot{
				Index:           true,
				Follow:          true,
				MaxVideoPreview: -1,
				MaxImagePreview: "large",
				MaxSnippet:      -1,
			},
		},
	}
}

// ForTutorial builds the metadata of a tutorial page.
func ForTutorial(site Site, t content.Tutorial) Metadata {
	url := site.URL(t.Path())
	image := site.URL(t.SEO.OGImage)
	author := authorName(t)

	var keywords []string
	for _, k := range strings.Split(t.SEO.Keywords, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}

	return Metadata{
		Title:       fmt.Sprintf("%s | %s", t.Title, site.TitleSuffix),
		Description: t.Description,
		Keywords:    keywords,
		Authors:     []string{author},
		Canonical:   url,
		OpenGraph: OpenGraph{
			Title:         t.Title,
			Description:   t.Description,
			URL:           url,
			SiteName:      site.Name,
			Type:          "article",
			Locale:        site.Locale,
			PublishedTime: t.PublishedAt + "T00:00:00.000Z",
			ModifiedTime:  t.UpdatedAt + "T00:00:00.000Z",
			Authors:       []string{author},
			Tags:          t.Tags,
			Images: []Image{{
				URL:    image,
				Width:  OGImageWidth,
				Height: OGImageHeight,
				Alt:    t.Title + " Tutorial Cover",
			}},
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       t.Title,
			Description: t.Description,
			Images:      []string{image},
		},
		Robots: indexable(),
	}
}

func authorName(t content.Tutorial) string {
	if t.Author != nil {
		return t.Author.Name
	}
	return content.DefaultAuthor.Name
}

// ForPromptList builds the metadata of the prompt gallery. A non-empty tag
// narrows the title and canonical URL to that tag.
func ForPromptList(site Site, tag string) Metadata {
	title := "Nano Banana Prompts - AI Image Editing Prompt Library"
	description := "Browse our comprehensive collection of Nano Banana AI prompts. Find the perfect prompts for character consistency, style transfer, and advanced image editing techniques."
	url := site.URL("/prompts")
	if tag != "" {
		title = content.TagLabel(tag) + " Prompts - Nano Banana AI Prompt Library"
		url += "?tag=" + tag
	}
	return Metadata{
		Title:       title,
		Description: description,
		Keywords: []string{
			"Nano Banana prompts",
			"AI image editing prompts",
			"Google Gemini prompts",
			"character consistency prompts",
			"style transfer prompts",
		},
		Canonical: url,
		OpenGraph: OpenGraph{
			Title:       title,
			Description: "Browse our comprehensive collection of Nano Banana AI prompts for advanced image editing techniques.",
			URL:         url,
			SiteName:    site.Name,
			Type:        "website",
			Locale:      site.Locale,
		},
		Twitter: Twitter{Card: "summary", Title: title, Description: description},
		Robots:  indexable(),
	}
}

// ForTutorialList builds the metadata of the tutorial index.
func ForTutorialList(site Site) Metadata {
	title := fmt.Sprintf("Nano Banana Tutorials | %s", site.TitleSuffix)
	description := "Step-by-step Nano Banana AI tutorials, from your first edit to character consistency, multi-turn editing, style transfer and API integration."
	url := site.URL("/tutorials")
	return Metadata{
		Title:       title,
		Description: description,
		Keywords:    []string{"Nano Banana tutorial", "AI image editing guide", "Google Gemini tutorial"},
		Canonical:   url,
		OpenGraph: OpenGraph{
			Title:       title,
			Description: description,
			URL:         url,
			SiteName:    site.Name,
			Type:        "website",
			Locale:      site.Locale,
		},
		Twitter: Twitter{Card: "summary", Title: title, Description: description},
		Robots:  indexable(),
	}
}

// ForSearch builds the metadata of a search results page. Result pages
// are not indexed but their links are followed.
func ForSearch(site Site, query string) Metadata {
	title := "Search | " + site.TitleSuffix
	if query != "" {
		title = fmt.Sprintf("Search results for %q | %s", query, site.TitleSuffix)
	}
	return Metadata{
		Title:       title,
		Description: "Search Nano Banana prompts and tutorials.",
		Canonical:   site.URL("/search"),
		Robots:      Robots{Index: false, Follow: true},
	}
}

// NotFound builds the metadata of the 404 page.
func NotFound(site Site) Metadata {
	return Metadata{
		Title:       "Page Not Found | " + site.TitleSuffix,
		Description: "The page you are looking for does not exist.",
		Robots:      Robots{Index: false, Follow: false},
	}
}

// ForHome builds the metadata of the landing page.
func ForHome(site Site) Metadata {
	title := fmt.Sprintf("%s - AI Image Editing Prompts & Tutorials | %s", site.Name, site.TitleSuffix)
	description := "Copy-ready Nano Banana AI prompts and step-by-step tutorials for character consistency, style transfer, product photography and more."
	url := site.URL("/")
	return Metadata{
		Title:       title,
		Description: description,
		Keywords:    []string{"Nano Banana", "Nano Banana prompts", "AI image editing", "Google Gemini image editing"},
		Canonical:   url,
		OpenGraph: OpenGraph{
			Title:       title,
			Description: description,
			URL:         url,
			SiteName:    site.Name,
			Type:        "website",
			Locale:      site.Locale,
		},
		Twitter: Twitter{Card: "summary", Title: title, Description: description},
		Robots:  indexable(),
	}
}

// ForPage builds the metadata of a plain informational page.
func ForPage(site Site, path, title, description string) Metadata {
	full := fmt.Sprintf("%s | %s", title, site.TitleSuffix)
	url := site.URL(path)
	return Metadata{
		Title:       full,
		Description: description,
		Canonical:   url,
		OpenGraph: OpenGraph{
			Title:       full,
			Description: description,
			URL:         url,
			SiteName:    site.Name,
			Type:        "website",
			Locale:      site.Locale,
		},
		Twitter: Twitter{Card: "summary", Title: full, Description: description},
		Robots:  indexable(),
	}
}
