// Package site exports the whole site as static files and serves an
// export for preview.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/nanobanana-fans/nanobanana/internal/content"
	"github.com/nanobanana-fans/nanobanana/internal/progress"
	"github.com/nanobanana-fans/nanobanana/internal/web"
)

// NotFoundFile is the exported 404 page, picked up by most static hosts.
const NotFoundFile = "404.html"

// notFoundProbe is requested to render the 404 page.
const notFoundProbe = "/__not_found__"

// Exporter renders every route of the site through Handler and writes the
// responses into OutputDir.
type Exporter struct {
	Handler   http.Handler
	Catalog   *content.Catalog
	OutputDir string
	PublicDir string // copied into OutputDir first, may be empty
	Reporter  progress.Reporter
}

// Routes lists every path the site serves: pages, sitemaps, the search
// index and static assets.
func Routes(catalog *content.Catalog) []string {
	routes := []string{"/", "/home", "/prompts"}
	for _, p := range catalog.Prompts() {
		routes = append(routes, "/prompts/"+p.Slug)
	}
	routes = append(routes, "/tutorials")
	for _, t := range catalog.Tutorials() {
		routes = append(routes, t.Path())
	}
	routes = append(routes, "/search")
	routes = append(routes, web.InfoPaths()...)
	return append(routes,
		"/sitemap.xml",
		"/image-sitemap.xml",
		"/sitemap.json",
		"/robots.txt",
		SearchIndexPath,
		web.StylePath,
		web.ScriptPath,
	)
}

// OutputPath maps a route to the file it is written to, relative to the
// output directory. Routes with an extension are written as-is; pages
// become directory indexes.
func OutputPath(route string) string {
	route = strings.TrimPrefix(path.Clean("/"+route), "/")
	if route == "" {
		return "index.html"
	}
	if path.Ext(route) != "" {
		return filepath.FromSlash(route)
	}
	return filepath.Join(filepath.FromSlash(route), "index.html")
}

// Export writes the site and returns the number of files rendered. Any
// route that does not answer 200 aborts the export.
func (e *Exporter) Export(ctx context.Context) (int, error) {
	if e.Handler == nil || e.Catalog == nil {
		return 0, errors.New("exporter needs a handler and a catalog")
	}
	reporter := e.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}
	if e.PublicDir != "" {
		if _, err := os.Stat(e.PublicDir); err == nil {
			if err := copyDir(e.PublicDir, e.OutputDir); err != nil {
				return 0, fmt.Errorf("copying public files: %w", err)
			}
		}
	}

	routes := Routes(e.Catalog)
	reporter.Start(len(routes)+1, "Exporting site")
	defer reporter.Finish()

	for i, route := range routes {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		body, status, err := e.render(ctx, route)
		if err != nil {
			return i, err
		}
		if status != http.StatusOK {
			return i, fmt.Errorf("exporting %s: status %d", route, status)
		}
		if err := writeFile(filepath.Join(e.OutputDir, OutputPath(route)), body); err != nil {
			return i, err
		}
		reporter.Update(i+1, route)
	}

	body, status, err := e.render(ctx, notFoundProbe)
	if err != nil {
		return len(routes), err
	}
	if status != http.StatusNotFound {
		return len(routes), fmt.Errorf("exporting 404 page: status %d", status)
	}
	if err := writeFile(filepath.Join(e.OutputDir, NotFoundFile), body); err != nil {
		return len(routes), err
	}
	reporter.Update(len(routes)+1, "/"+NotFoundFile)

	return len(routes) + 1, nil
}

func (e *Exporter) render(ctx context.Context, route string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, route, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("building request for %s: %w", route, err)
	}
	w := newBufferedResponse()
	e.Handler.ServeHTTP(w, req)
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Bytes(), w.status, nil
}

// bufferedResponse is an http.ResponseWriter that keeps the response in
// memory.
type bufferedResponse struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newBufferedResponse() *bufferedResponse {
	return &bufferedResponse{header: make(http.Header)}
}

func (b *bufferedResponse) Header() http.Header { return b.header }

func (b *bufferedResponse) WriteHeader(status int) {
	if b.status == 0 {
		b.status = status
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func writeFile(dst string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
