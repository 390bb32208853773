// Package web renders the site's HTML pages: the prompt gallery, prompt
// and tutorial detail pages, search and the informational pages.
package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/nanobanana-fans/nanobanana/internal/clipboard"
	"github.com/nanobanana-fans/nanobanana/internal/config"
	"github.com/nanobanana-fans/nanobanana/internal/content"
	"github.com/nanobanana-fans/nanobanana/internal/seo"
)

// SearchLimit caps the results shown on the search page.
const SearchLimit = 50

// featuredTutorials is how many tutorials the home page shows.
const featuredTutorials = 3

// Options configures a Handler.
type Options struct {
	Site       seo.Site
	Catalog    *content.Catalog
	Markdown   *content.Renderer // nil uses content.NewRenderer()
	Ads        config.AdsConfig
	Analytics  config.AnalyticsConfig
	Toasts     clipboard.Toasts
	ResetDelay time.Duration
	Revalidate time.Duration // zero disables the page cache
	Public     fs.FS         // files served as-is (images), may be nil
	Now        func() time.Time
}

// Handler serves the HTML pages.
type Handler struct {
	opts         Options
	pages        map[string]*template.Template
	bodies       map[string]template.HTML
	clientConfig template.JS
	cache        *PageCache
	now          func() time.Time
}

// New parses the templates and renders every tutorial body up front.
func New(opts Options) (*Handler, error) {
	if opts.Catalog == nil {
		return nil, errors.New("web: catalog is required")
	}
	if opts.Markdown == nil {
		opts.Markdown = content.NewRenderer()
	}
	if opts.ResetDelay <= 0 {
		opts.ResetDelay = clipboard.DefaultResetDelay
	}

	h := &Handler{
		opts:   opts,
		bodies: make(map[string]template.HTML),
		cache:  NewPageCache(opts.Revalidate),
		now:    opts.Now,
	}
	if h.now == nil {
		h.now = time.Now
	}

	pages, err := parseTemplates(h.funcMap())
	if err != nil {
		return nil, err
	}
	h.pages = pages

	h.clientConfig, err = encodeClientConfig(clientConfig{
		ResetDelayMS: opts.ResetDelay.Milliseconds(),
		Toasts:       opts.Toasts,
	})
	if err != nil {
		return nil, err
	}

	for _, t := range opts.Catalog.Tutorials() {
		r, err := opts.Markdown.Render(t.Body)
		if err != nil {
			return nil, fmt.Errorf("rendering tutorial %s: %w", t.Slug, err)
		}
		h.bodies[t.Slug] = r.HTML
	}
	return h, nil
}

// Cache returns the page cache, nil when caching is disabled.
func (h *Handler) Cache() *PageCache {
	return h.cache
}

// InfoPaths lists the paths of the informational pages.
func InfoPaths() []string {
	out := make([]string, len(infoPages))
	for i, p := range infoPages {
		out[i] = p.Path
	}
	return out
}

// RegisterRoutes mounts the page routes and the not-found handler.
func (h *Handler) RegisterRoutes(r chi.Router) {
	RegisterStatic(r)

	r.Get("/", h.handleHome("/"))
	r.Get("/home", h.handleHome("/home"))
	r.Get("/prompts", h.handlePrompts)
	r.Get("/prompts/{slug}", h.handlePrompt)
	r.Get("/tutorials", h.handleTutorials)
	r.Get("/tutorials/{slug}", h.handleTutorial)
	r.Get("/search", h.handleSearch)
	for _, p := range infoPages {
		r.Get(p.Path, h.handleInfo(p))
	}
	r.NotFound(h.NotFound)
}

func (h *Handler) handleHome(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tutorials := h.opts.Catalog.Tutorials()
		if len(tutorials) > featuredTutorials {
			tutorials = tutorials[:featuredTutorials]
		}
		h.render(w, r, http.StatusOK, path, view{
			name: pageHome,
			path: "/",
			meta: seo.ForHome(h.opts.Site),
			page: homePage{
				Featured: tutorialCards(tutorials),
				Gallery:  newGallery(h.opts.Catalog, ""),
			},
		})
	}
}

func (h *Handler) handlePrompts(w http.ResponseWriter, r *http.Request) {
	tag := strings.TrimSpace(r.URL.Query().Get("tag"))

	// Only the unfiltered gallery and known tags are cached.
	key := "/prompts"
	if tag != "" {
		key = ""
		for _, tc := range h.opts.Catalog.Tags() {
			if tc.Tag == tag {
				key = "/prompts?tag=" + tag
				break
			}
		}
	}

	h.render(w, r, http.StatusOK, key, view{
		name: pagePrompts,
		path: "/prompts",
		meta: seo.ForPromptList(h.opts.Site, tag),
		page: newGallery(h.opts.Catalog, tag),
	})
}

func (h *Handler) handlePrompt(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	p, err := h.opts.Catalog.Prompt(slug)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	crumbs := seo.PromptBreadcrumbs(p)
	h.render(w, r, http.StatusOK, r.URL.Path, view{
		name: pagePrompt,
		path: r.URL.Path,
		meta: seo.ForPrompt(h.opts.Site, p),
		jsonld: []any{
			seo.Breadcrumbs(h.opts.Site, crumbs),
			seo.PromptArticle(h.opts.Site, p),
		},
		page: promptPage{
			Crumbs:        crumbs,
			CategoryLabel: content.CategoryLabel(p.Category),
			Prompt:        p,
			Tags:          tagViews(p.Tags),
			ShareURL:      h.opts.Site.URL("/prompts/" + p.Slug),
			Related:       promptCards(h.opts.Catalog.RelatedPrompts(p)),
		},
	})
}

func (h *Handler) handleTutorials(w http.ResponseWriter, r *http.Request) {
	var groups []tutorialGroup
	for _, d := range content.Difficulties {
		groups = append(groups, tutorialGroup{
			Label: content.TagLabel(string(d)),
			Items: tutorialCards(h.opts.Catalog.TutorialsByDifficulty(d)),
		})
	}
	h.render(w, r, http.StatusOK, "/tutorials", view{
		name: pageTutorials,
		path: "/tutorials",
		meta: seo.ForTutorialList(h.opts.Site),
		page: tutorialsPage{Groups: groups},
	})
}

func (h *Handler) handleTutorial(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	t, err := h.opts.Catalog.Tutorial(slug)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	author := content.DefaultAuthor
	if t.Author != nil {
		author = *t.Author
	}
	crumbs := seo.TutorialBreadcrumbs(t)
	h.render(w, r, http.StatusOK, t.Path(), view{
		name: pageTutorial,
		path: t.Path(),
		meta: seo.ForTutorial(h.opts.Site, t),
		jsonld: []any{
			seo.Breadcrumbs(h.opts.Site, crumbs),
			seo.TutorialArticle(h.opts.Site, t),
		},
		page: tutorialPage{
			T:        t,
			Crumbs:   crumbs,
			Author:   author,
			Colors:   content.CategoryColors(t.Category),
			Updated:  seo.FormatDate(t.UpdatedAt),
			Body:     h.bodies[t.Slug],
			Related:  tutorialCards(h.opts.Catalog.RelatedTutorials(t)),
			Comments: t.DisplayComments(),
		},
	})
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	key := ""
	if q == "" {
		key = "/search"
	}
	h.render(w, r, http.StatusOK, key, view{
		name: pageSearch,
		path: "/search",
		meta: seo.ForSearch(h.opts.Site, q),
		page: searchPage{Query: q, Results: h.opts.Catalog.Search(q, SearchLimit)},
	})
}

func (h *Handler) handleInfo(p infoPage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusOK, p.Path, view{
			name: pageInfo,
			path: p.Path,
			meta: seo.ForPage(h.opts.Site, p.Path, p.Title, p.Description),
			page: p,
		})
	}
}

// NotFound serves a file from the public directory when one exists at the
// request path, and the 404 page otherwise.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	if h.opts.Public != nil && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		if name != "" {
			if info, err := fs.Stat(h.opts.Public, name); err == nil && !info.IsDir() {
				w.Header().Set("Cache-Control", "public, max-age=86400")
				http.ServeFileFS(w, r, h.opts.Public, name)
				return
			}
		}
	}
	h.render(w, r, http.StatusNotFound, "", view{
		name: pageNotFound,
		path: r.URL.Path,
		meta: seo.NotFound(h.opts.Site),
	})
}

// render writes v with status. Pages with a non-empty key and status 200
// go through the page cache.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, key string, v view) {
	c, err := h.component(v)
	if err != nil {
		h.serverError(w, err)
		return
	}

	if h.cache == nil || key == "" || status != http.StatusOK {
		templ.Handler(c, templ.WithStatus(status)).ServeHTTP(w, r)
		return
	}

	body, hit, err := h.cache.Get(key, func() ([]byte, error) {
		var buf bytes.Buffer
		if err := c.Render(r.Context(), &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		h.serverError(w, err)
		return
	}

	secs := int(h.cache.TTL().Seconds())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate", secs))
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(status)
	w.Write(body)
}

func (h *Handler) serverError(w http.ResponseWriter, err error) {
	log.Printf("web: rendering page: %v", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
