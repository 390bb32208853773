package sitemap

import (
	"bytes"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CacheControl is sent with every sitemap response.
const CacheControl = "public, max-age=3600, s-maxage=3600, stale-while-revalidate=86400"

// RegisterRoutes mounts the sitemap endpoints on r.
func RegisterRoutes(r chi.Router, g *Generator) {
	r.Get("/sitemap.xml", serve("application/xml; charset=utf-8", g.WriteXML))
	r.Get("/image-sitemap.xml", serve("application/xml; charset=utf-8", g.WriteImageXML))
	r.Get("/sitemap.json", serve("application/json; charset=utf-8", g.WriteJSON))
	r.Get("/robots.txt", serve("text/plain; charset=utf-8", g.WriteRobots))
}

func serve(contentType string, write func(io.Writer) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := write(&buf); err != nil {
			log.Printf("sitemap %s: %v", r.URL.Path, err)
			http.Error(w, `{"error":"failed to generate sitemap"}`, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", CacheControl)
		w.Write(buf.Bytes())
	}
}
