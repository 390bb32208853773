// Package server assembles the HTTP router: pages, sitemaps, the
// engagement and web-vitals APIs, and the middleware around them.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nanobanana-fans/nanobanana/internal/clipboard"
	"github.com/nanobanana-fans/nanobanana/internal/config"
	"github.com/nanobanana-fans/nanobanana/internal/content"
	"github.com/nanobanana-fans/nanobanana/internal/db"
	"github.com/nanobanana-fans/nanobanana/internal/engagement"
	"github.com/nanobanana-fans/nanobanana/internal/seo"
	"github.com/nanobanana-fans/nanobanana/internal/site"
	"github.com/nanobanana-fans/nanobanana/internal/sitemap"
	"github.com/nanobanana-fans/nanobanana/internal/vitals"
	"github.com/nanobanana-fans/nanobanana/internal/web"
)

// Options tune a Server beyond the configuration file.
type Options struct {
	Verbose bool             // log every web-vitals report
	Quiet   bool             // no access log
	Now     func() time.Time // clock for pages and sitemaps, defaults to time.Now
}

// Server is the nanobanana web server.
type Server struct {
	cfg        *config.Config
	db         *db.DB
	catalog    *content.Catalog
	pages      *web.Handler
	router     chi.Router
	httpServer *http.Server
}

// SiteFor describes the site configured in cfg.
func SiteFor(cfg *config.Config) seo.Site {
	return seo.Site{
		Name:        cfg.SiteName,
		TitleSuffix: cfg.TitleSuffix,
		BaseURL:     cfg.BaseURL,
		Locale:      cfg.Locale,
	}
}

// New creates a server for catalog. database may be nil, in which case
// copy counting and the vitals summary are unavailable and vitals are only
// logged and forwarded.
func New(cfg *config.Config, database *db.DB, catalog *content.Catalog, opts Options) (*Server, error) {
	s := &Server{
		cfg:     cfg,
		db:      database,
		catalog: catalog,
	}

	pages, err := web.New(web.Options{
		Site:       SiteFor(cfg),
		Catalog:    catalog,
		Ads:        cfg.Ads,
		Analytics:  cfg.Analytics,
		Toasts:     clipboard.ToastsFromConfig(cfg.Toast),
		ResetDelay: resetDelay(cfg),
		Revalidate: time.Duration(cfg.Revalidate) * time.Second,
		Public:     publicFS(cfg.PublicDir),
		Now:        opts.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("building pages: %w", err)
	}
	s.pages = pages

	s.router = s.buildRouter(opts)
	return s, nil
}

func resetDelay(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Clipboard.ResetDelayMS) * time.Millisecond
}

// publicFS returns the public directory, or nil when it does not exist.
func publicFS(dir string) fs.FS {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}
	return os.DirFS(dir)
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter(opts Options) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if !opts.Quiet {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{s.cfg.BaseURL, "http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	gen := sitemap.New(SiteFor(s.cfg), s.catalog)
	if opts.Now != nil {
		gen.Now = opts.Now()
	}
	sitemap.RegisterRoutes(r, gen)
	r.Get(site.SearchIndexPath, site.SearchIndexHandler(s.catalog))

	// Copy counting and the vitals summary need the database.
	var vitalsStore *vitals.Store
	if s.db != nil {
		engagement.RegisterRoutes(r, engagement.NewStore(s.db), s.catalog,
			clipboard.ToastsFromConfig(s.cfg.Toast), resetDelay(s.cfg))
		vitalsStore = vitals.NewStore(s.db)
	}

	var forwarders []vitals.Forwarder
	if a := s.cfg.Analytics; a.GAMeasurementID != "" && a.GAAPISecret != "" {
		forwarders = append(forwarders, vitals.NewGAForwarder(a.GAMeasurementID, a.GAAPISecret))
	}
	vitals.RegisterRoutes(r, vitals.NewReporter(vitalsStore, opts.Verbose, forwarders...), vitalsStore)

	s.pages.RegisterRoutes(r)
	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Pages returns the HTML page handler.
func (s *Server) Pages() *web.Handler { return s.pages }

// Start begins listening on the configured port. It returns nil after a
// graceful Shutdown.
func (s *Server) Start() error {
	addr := s.cfg.Addr()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("nanobanana listening on %s (%s)", addr, s.cfg.BaseURL)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
