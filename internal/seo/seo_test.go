package seo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/nanobanana-fans/nanobanana/internal/content"
)

var testSite = Site{
	Name:        "Nano Banana",
	TitleSuffix: "Nano Banana Fans",
	BaseURL:     "https://nanobanana.fans",
	Locale:      "en_US",
}

var testPrompt = content.Prompt{
	ID:           "5",
	Slug:         "watercolor-portrait",
	Title:        "Watercolor Portrait",
	Description:  "Repaint a portrait as watercolor.",
	Prompt:       "Transform this portrait into a loose watercolor painting.",
	Category:     "creative",
	Tags:         []string{"creative", "style-transfer"},
	PreviewImage: "/prompts/watercolor-portrait.jpg",
}

var testTutorial = content.Tutorial{
	ID:          "getting-started",
	Slug:        "getting-started",
	Title:       "Getting Started with Nano Banana AI",
	Description: "Master Nano Banana from scratch.",
	Author:      &content.Author{Name: "Dr. Emily Rodriguez"},
	Category:    content.CategoryBeginner,
	Difficulty:  content.DifficultyBeginner,
	Tags:        []string{"Setup", "Basics"},
	ReadTime:    "12 min",
	Rating:      4.9,
	RatingCount: 347,
	PublishedAt: "2024-01-15",
	UpdatedAt:   "2024-01-20",
	SEO:         content.SEO{Keywords: "Nano Banana tutorial, getting started", OGImage: "/cover.jpg"},
}

func TestSiteURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "https://nanobanana.fans"},
		{"/", "https://nanobanana.fans"},
		{"/prompts", "https://nanobanana.fans/prompts"},
		{"prompts", "https://nanobanana.fans/prompts"},
		{"https://cdn.example.com/x.png", "https://cdn.example.com/x.png"},
	}
	for _, tt := range tests {
		if got := testSite.URL(tt.in); got != tt.want {
			t.Errorf("URL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestForPrompt(t *testing.T) {
	m := ForPrompt(testSite, testPrompt)

	if m.Title != "Watercolor Portrait - Creative Nano Banana AI Prompt" {
		t.Errorf("title = %q", m.Title)
	}
	wantKeywords := []string{
		"Watercolor Portrait", "Creative prompts", "Nano Banana AI", "AI image editing",
		"prompt library", "image editing prompts", "creative",
	}
	if strings.Join(m.Keywords, "|") != strings.Join(wantKeywords, "|") {
		t.Errorf("keywords = %v", m.Keywords)
	}
	if m.Canonical != "https://nanobanana.fans/prompts/watercolor-portrait" {
		t.Errorf("canonical = %q", m.Canonical)
	}
	if m.OpenGraph.Type != "website" || m.OpenGraph.SiteName != "Nano Banana" || m.OpenGraph.Locale != "en_US" {
		t.Errorf("open graph = %+v", m.OpenGraph)
	}
	img := m.OpenGraph.Images[0]
	if img.URL != "https://nanobanana.fans/prompts/watercolor-portrait.jpg" || img.Width != 1200 || img.Height != 630 {
		t.Errorf("og image = %+v", img)
	}
	if m.Twitter.Card != "summary_large_image" {
		t.Errorf("twitter card = %q", m.Twitter.Card)
	}
	if m.Robots.GoogleBot == nil {
		t.Fatal("expected googlebot directives")
	}
	if got := m.Robots.GoogleBot.String(); got != "index, follow, max-video-preview:-1, max-image-preview:large, max-snippet:-1" {
		t.Errorf("googlebot = %q", got)
	}
}

func TestForTutorial(t *testing.T) {
	m := ForTutorial(testSite, testTutorial)

	if m.Title != "Getting Started with Nano Banana AI | Nano Banana Fans" {
		t.Errorf("title = %q", m.Title)
	}
	if m.OpenGraph.Type != "article" {
		t.Errorf("og type = %q", m.OpenGraph.Type)
	}
	if m.OpenGraph.PublishedTime != "2024-01-15T00:00:00.000Z" || m.OpenGraph.ModifiedTime != "2024-01-20T00:00:00.000Z" {
		t.Errorf("times = %q / %q", m.OpenGraph.PublishedTime, m.OpenGraph.ModifiedTime)
	}
	if m.OpenGraph.Images[0].Alt != "Getting Started with Nano Banana AI Tutorial Cover" {
		t.Errorf("og image alt = %q", m.OpenGraph.Images[0].Alt)
	}
	if len(m.Keywords) != 2 || m.Keywords[1] != "getting started" {
		t.Errorf("keywords = %v", m.Keywords)
	}
	if len(m.Authors) != 1 || m.Authors[0] != "Dr. Emily Rodriguez" {
		t.Errorf("authors = %v", m.Authors)
	}
}

func TestNotFoundIsNoindex(t *testing.T) {
	m := NotFound(testSite)
	if m.Robots.String() != "noindex, nofollow" {
		t.Errorf("robots = %q", m.Robots.String())
	}
	if got := ForSearch(testSite, "cat").Robots.String(); got != "noindex, follow" {
		t.Errorf("search robots = %q", got)
	}
}

func TestForPromptListTag(t *testing.T) {
	m := ForPromptList(testSite, "style-transfer")
	if !strings.HasPrefix(m.Title, "Style transfer Prompts") {
		t.Errorf("title = %q", m.Title)
	}
	if m.Canonical != "https://nanobanana.fans/prompts?tag=style-transfer" {
		t.Errorf("canonical = %q", m.Canonical)
	}
}

func TestMetaTags(t *testing.T) {
	tags := ForPrompt(testSite, testPrompt).MetaTags()

	find := func(key string) (string, bool) {
		for _, tag := range tags {
			if tag.Name == key || tag.Property == key {
				return tag.Content, true
			}
		}
		return "", false
	}
	tests := map[string]string{
		"description":    "Repaint a portrait as watercolor.",
		"robots":         "index, follow",
		"og:type":        "website",
		"og:image:width": "1200",
		"twitter:card":   "summary_large_image",
	}
	for key, want := range tests {
		got, ok := find(key)
		if !ok {
			t.Errorf("missing %s", key)
			continue
		}
		if got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
	if _, ok := find("article:published_time"); ok {
		t.Error("prompt pages should not carry article times")
	}
}

func TestBreadcrumbs(t *testing.T) {
	crumbs := PromptBreadcrumbs(testPrompt)
	if len(crumbs) != 4 {
		t.Fatalf("expected 4 crumbs, got %d", len(crumbs))
	}
	if crumbs[2].Name != "Creative" || crumbs[2].Path != "/prompts?tag=creative" {
		t.Errorf("category crumb = %+v", crumbs[2])
	}

	doc := Breadcrumbs(testSite, TutorialBreadcrumbs(testTutorial))
	items := doc["itemListElement"].([]map[string]any)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0]["item"] != "https://nanobanana.fans" || items[2]["position"] != 3 {
		t.Errorf("items = %+v", items)
	}
}

func TestTutorialArticle(t *testing.T) {
	doc := TutorialArticle(testSite, testTutorial)
	if doc["@type"] != "TechArticle" {
		t.Errorf("@type = %v", doc["@type"])
	}
	rating := doc["aggregateRating"].(map[string]any)
	if rating["ratingValue"] != 4.9 || rating["ratingCount"] != 347 {
		t.Errorf("rating = %+v", rating)
	}
	if doc["timeRequired"] != "PT12M" {
		t.Errorf("timeRequired = %v", doc["timeRequired"])
	}
}

func TestJSONLDEscapesScript(t *testing.T) {
	p := testPrompt
	p.Title = "</script><script>alert(1)</script>"
	js, err := JSONLD(PromptArticle(testSite, p))
	if err != nil {
		t.Fatalf("JSONLD: %v", err)
	}
	if strings.Contains(string(js), "</script>") {
		t.Errorf("script tag not escaped: %s", js)
	}
	var back map[string]any
	if err := json.Unmarshal([]byte(js), &back); err != nil {
		t.Fatalf("JSON-LD is not valid JSON: %v", err)
	}
	if back["name"] != p.Title {
		t.Errorf("name = %v", back["name"])
	}
}

func TestWebSite(t *testing.T) {
	doc := WebSite(testSite)
	action := doc["potentialAction"].(map[string]any)
	if action["target"] != "https://nanobanana.fans/search?q={search_term_string}" {
		t.Errorf("target = %v", action["target"])
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-20", "Jan 20, 2024"},
		{"2025-09-02", "Sep 2, 2025"},
		{"soon", "soon"},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTimeRequired(t *testing.T) {
	if got := TimeRequired("25 min"); got != "PT25M" {
		t.Errorf("got %q", got)
	}
	if got := TimeRequired("a while"); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestForPage(t *testing.T) {
	m := ForPage(testSite, "/about", "About", "Who runs the site.")
	if m.Title != "About | Nano Banana Fans" {
		t.Errorf("Title = %q", m.Title)
	}
	if m.Canonical != "https://nanobanana.fans/about" {
		t.Errorf("Canonical = %q", m.Canonical)
	}
	if m.Robots.String() != "index, follow" {
		t.Errorf("Robots = %q", m.Robots.String())
	}

	home := ForHome(testSite)
	if home.Canonical != "https://nanobanana.fans" || home.OpenGraph.Type != "website" {
		t.Errorf("home = %+v", home)
	}
}
