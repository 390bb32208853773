package engagement

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nanobanana-fans/nanobanana/internal/clipboard"
	"github.com/nanobanana-fans/nanobanana/internal/content"
)

const maxPopular = 100

type copyRequest struct {
	Source    Source `json:"source"`
	Promotion *bool  `json:"promotion"`
}

type copyResponse struct {
	Slug         string          `json:"slug"`
	Prompt       string          `json:"prompt"`
	Copies       int             `json:"copies"`
	ResetAfterMS int64           `json:"reset_after_ms"`
	Toast        clipboard.Toast `json:"toast"`
}

// RegisterRoutes mounts the copy tracking API routes.
func RegisterRoutes(r chi.Router, store *Store, catalog *content.Catalog, toasts clipboard.Toasts, resetDelay time.Duration) {
	r.Route("/api/prompts", func(r chi.Router) {
		r.Get("/popular", handlePopular(store, catalog))
		r.Post("/{slug}/copy", handleCopy(store, catalog, toasts, resetDelay))
	})
}

func handleCopy(store *Store, catalog *content.Catalog, toasts clipboard.Toasts, resetDelay time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		p, err := catalog.Prompt(slug)
		if err != nil {
			http.Error(w, `{"error":"prompt not found"}`, http.StatusNotFound)
			return
		}

		var req copyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Source != "" && !req.Source.Valid() {
			http.Error(w, `{"error":"unknown source"}`, http.StatusBadRequest)
			return
		}

		if _, err := store.Record(r.Context(), p.Slug, req.Source); err != nil {
			log.Printf("recording copy of %s: %v", p.Slug, err)
			http.Error(w, `{"error":"failed to record copy"}`, http.StatusInternalServerError)
			return
		}
		copies, err := store.Count(r.Context(), p.Slug)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		toast := toasts.Promotion
		if req.Promotion != nil && !*req.Promotion {
			toast = toasts.Success
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(copyResponse{
			Slug:         p.Slug,
			Prompt:       p.Prompt,
			Copies:       copies,
			ResetAfterMS: resetDelay.Milliseconds(),
			Toast:        toast,
		})
	}
}

func handlePopular(store *Store, catalog *content.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := 10
		if v := r.URL.Query().Get("n"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				n = min(parsed, maxPopular)
			}
		}

		top, err := store.Top(r.Context(), n)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		out := make([]Popular, 0, len(top))
		for _, p := range top {
			prompt, err := catalog.Prompt(p.Slug)
			if err != nil {
				continue
			}
			p.Title = prompt.Title
			out = append(out, p)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(out)
	}
}
