package web

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"html/template"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/nanobanana-fans/nanobanana/internal/clipboard"
	"github.com/nanobanana-fans/nanobanana/internal/content"
	"github.com/nanobanana-fans/nanobanana/internal/seo"
)

// Page template names.
const (
	pageHome      = "home"
	pagePrompts   = "prompts"
	pagePrompt    = "prompt"
	pageTutorials = "tutorials"
	pageTutorial  = "tutorial"
	pageSearch    = "search"
	pageNotFound  = "notfound"
	pageInfo      = "info"
)

var pageSources = map[string]string{
	pageHome:      homeTemplate,
	pagePrompts:   promptsTemplate,
	pagePrompt:    promptTemplate,
	pageTutorials: tutorialsTemplate,
	pageTutorial:  tutorialTemplate,
	pageSearch:    searchTemplate,
	pageNotFound:  notFoundTemplate,
	pageInfo:      infoTemplate,
}

// navItem is a link in the site header.
type navItem struct {
	Href   string
	Label  string
	Active bool
}

var navLinks = []navItem{
	{Href: "/", Label: "Home"},
	{Href: "/prompts", Label: "Prompts"},
	{Href: "/tutorials", Label: "Tutorials"},
	{Href: "/search", Label: "Search"},
}

// layoutData is what the layout template renders. Page holds the data of
// the page-specific "content" template.
type layoutData struct {
	Lang         string
	SiteName     string
	Year         int
	Meta         seo.Metadata
	MetaTags     []seo.MetaTag
	JSONLD       []template.JS
	ClientConfig template.JS
	Ads          adsData
	GAID         string
	Vercel       bool
	Vitals       bool
	Nav          []navItem
	Page         any
}

type adsData struct {
	Enabled  bool
	ClientID string
}

// clientConfig is read by app.js from the #nb-config element.
type clientConfig struct {
	ResetDelayMS int64            `json:"resetDelayMs"`
	Toasts       clipboard.Toasts `json:"toasts"`
}

// view describes one rendered page.
type view struct {
	name   string
	path   string // used to mark the active nav link
	meta   seo.Metadata
	jsonld []any
	page   any
}

func parseTemplates(funcs template.FuncMap) (map[string]*template.Template, error) {
	base, err := template.New("base").Funcs(funcs).Parse(baseTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing base template: %w", err)
	}
	pages := make(map[string]*template.Template, len(pageSources))
	for name, src := range pageSources {
		t, err := template.Must(base.Clone()).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

// funcMap returns the template helpers bound to h's configuration.
func (h *Handler) funcMap() template.FuncMap {
	return template.FuncMap{
		"adUnit": h.adUnit,
		"stars":  stars,
	}
}

// adUnit renders an AdSense slot for placement. Format is one of
// "horizontal", "vertical" or "fluid". Nothing is rendered when ads are
// disabled.
func (h *Handler) adUnit(placement, format string) template.HTML {
	ads := h.opts.Ads
	if !ads.Enabled || ads.ClientID == "" {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="ad-container ad-%s" data-placement="%s">`, html.EscapeString(format), html.EscapeString(placement))
	fmt.Fprintf(&b, `<ins class="adsbygoogle" style="display:block" data-ad-client="%s"`, html.EscapeString(ads.ClientID))
	if slot := ads.Slots[placement]; slot != "" {
		fmt.Fprintf(&b, ` data-ad-slot="%s"`, html.EscapeString(slot))
	}
	switch format {
	case "fluid":
		b.WriteString(` data-ad-format="fluid" data-ad-layout="in-article"`)
	case "vertical":
		b.WriteString(` data-ad-format="vertical"`)
	default:
		b.WriteString(` data-ad-format="horizontal" data-full-width-responsive="true"`)
	}
	b.WriteString(`></ins></div>`)
	return template.HTML(b.String())
}

// stars renders a 0-5 rating as filled and empty stars.
func stars(n int) string {
	n = max(0, min(5, n))
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// component turns a view into a templ component executing the page's
// html/template set.
func (h *Handler) component(v view) (templ.Component, error) {
	t, ok := h.pages[v.name]
	if !ok {
		return nil, fmt.Errorf("unknown page template %q", v.name)
	}
	data, err := h.layout(v)
	if err != nil {
		return nil, err
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return t.ExecuteTemplate(w, "layout", data)
	}), nil
}

func (h *Handler) layout(v view) (layoutData, error) {
	docs := append([]any{seo.WebSite(h.opts.Site)}, v.jsonld...)
	scripts := make([]template.JS, 0, len(docs))
	for _, doc := range docs {
		js, err := seo.JSONLD(doc)
		if err != nil {
			return layoutData{}, err
		}
		scripts = append(scripts, js)
	}

	nav := make([]navItem, len(navLinks))
	for i, n := range navLinks {
		n.Active = isActive(n.Href, v.path)
		nav[i] = n
	}

	return layoutData{
		Lang:         langOf(h.opts.Site.Locale),
		SiteName:     h.opts.Site.Name,
		Year:         h.now().Year(),
		Meta:         v.meta,
		MetaTags:     v.meta.MetaTags(),
		JSONLD:       scripts,
		ClientConfig: h.clientConfig,
		Ads:          adsData{Enabled: h.opts.Ads.Enabled && h.opts.Ads.ClientID != "", ClientID: h.opts.Ads.ClientID},
		GAID:         h.opts.Analytics.GAMeasurementID,
		Vercel:       h.opts.Analytics.VercelAnalytics,
		Vitals:       h.opts.Analytics.CollectVitals,
		Nav:          nav,
		Page:         v.page,
	}, nil
}

func encodeClientConfig(cfg clientConfig) (template.JS, error) {
	b, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encoding client config: %w", err)
	}
	return template.JS(b), nil
}

func isActive(href, path string) bool {
	if href == "/" {
		return path == "/" || path == "/home"
	}
	return path == href || strings.HasPrefix(path, href+"/")
}

// langOf turns a locale like "en_US" into an html lang attribute ("en-US").
func langOf(locale string) string {
	if locale == "" {
		return "en"
	}
	return strings.ReplaceAll(locale, "_", "-")
}

// Card view models.

type tagView struct {
	Tag   string
	Label string
	Color string
}

type promptCard struct {
	Slug        string
	Image       string
	Title       string
	Description string
	Tags        []tagView
	More        int
	Prompt      string
}

func newPromptCard(p content.Prompt) promptCard {
	shown, more := content.DisplayTags(p.Tags)
	return promptCard{
		Slug:        p.Slug,
		Image:       p.PreviewImage,
		Title:       p.Title,
		Description: p.Description,
		Tags:        tagViews(shown),
		More:        more,
		Prompt:      p.Prompt,
	}
}

func tagViews(tags []string) []tagView {
	out := make([]tagView, len(tags))
	for i, t := range tags {
		out[i] = tagView{Tag: t, Label: content.TagLabel(t), Color: content.TagColor(t)}
	}
	return out
}

type tutorialCard struct {
	Href        string
	Image       string
	Title       string
	Colors      content.ColorClasses
	Category    content.TutorialCategory
	Description string
	ReadTime    string
	Rating      float64
	Difficulty  content.Difficulty
}

func newTutorialCard(t content.Tutorial) tutorialCard {
	image := t.Hero.Image
	if image == "" {
		image = t.SEO.OGImage
	}
	return tutorialCard{
		Href:        t.Path(),
		Image:       image,
		Title:       t.Title,
		Colors:      content.CategoryColors(t.Category),
		Category:    t.Category,
		Description: t.Description,
		ReadTime:    t.ReadTime,
		Rating:      t.Rating,
		Difficulty:  t.Difficulty,
	}
}

func tutorialCards(ts []content.Tutorial) []tutorialCard {
	out := make([]tutorialCard, len(ts))
	for i, t := range ts {
		out[i] = newTutorialCard(t)
	}
	return out
}

func promptCards(ps []content.Prompt) []promptCard {
	out := make([]promptCard, len(ps))
	for i, p := range ps {
		out[i] = newPromptCard(p)
	}
	return out
}

// Page view models.

type galleryTag struct {
	Href   string
	Active bool
	Color  string
	Label  string
	Count  int
}

type galleryPage struct {
	Heading  string
	Tag      string
	TagLabel string
	Total    int
	Tags     []galleryTag
	Cards    []promptCard
}

func newGallery(catalog *content.Catalog, tag string) galleryPage {
	g := galleryPage{
		Heading: "Nano Banana Prompts",
		Tag:     tag,
		Total:   len(catalog.Prompts()),
		Cards:   promptCards(catalog.PromptsByTag(tag)),
	}
	if tag != "" {
		g.TagLabel = content.TagLabel(tag)
		g.Heading = g.TagLabel + " Prompts"
	}
	for _, tc := range catalog.Tags() {
		g.Tags = append(g.Tags, galleryTag{
			Href:   "/prompts?tag=" + tc.Tag,
			Active: tc.Tag == tag,
			Color:  content.TagColor(tc.Tag),
			Label:  content.TagLabel(tc.Tag),
			Count:  tc.Count,
		})
	}
	return g
}

type homePage struct {
	Featured []tutorialCard
	Gallery  galleryPage
}

type promptPage struct {
	Crumbs        []seo.Crumb
	CategoryLabel string
	Prompt        content.Prompt
	Tags          []tagView
	ShareURL      string
	Related       []promptCard
}

type tutorialGroup struct {
	Label string
	Items []tutorialCard
}

type tutorialsPage struct {
	Groups []tutorialGroup
}

type tutorialPage struct {
	T        content.Tutorial
	Crumbs   []seo.Crumb
	Author   content.Author
	Colors   content.ColorClasses
	Updated  string
	Body     template.HTML
	Related  []tutorialCard
	Comments []content.Comment
}

type searchPage struct {
	Query   string
	Results []content.SearchResult
}

type infoLink struct {
	Href  string
	Label string
}

type infoPage struct {
	Path        string
	Title       string
	Description string
	Paragraphs  []string
	Links       []infoLink
}
