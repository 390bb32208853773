package vitals

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const maxBeaconBytes = 64 << 10

type summaryResponse struct {
	Metrics []Summary `json:"metrics"`
	Overall string    `json:"overall"`
}

// RegisterRoutes mounts the vitals API routes. The summary route is only
// registered when store is non-nil.
func RegisterRoutes(r chi.Router, reporter *Reporter, store *Store) {
	r.Post("/api/vitals", handleIngest(reporter))
	if store != nil {
		r.Get("/api/vitals/summary", handleSummary(store))
	}
}

// decodeMetrics accepts a single metric object or an array of them.
func decodeMetrics(body []byte) ([]Metric, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errors.New("empty body")
	}
	if body[0] == '[' {
		var ms []Metric
		if err := json.Unmarshal(body, &ms); err != nil {
			return nil, err
		}
		return ms, nil
	}
	var m Metric
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, err
	}
	return []Metric{m}, nil
}

// handleIngest does not check Content-Type: navigator.sendBeacon posts
// strings as text/plain.
func handleIngest(reporter *Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBeaconBytes))
		if err != nil {
			http.Error(w, `{"error":"request body too large"}`, http.StatusRequestEntityTooLarge)
			return
		}
		metrics, err := decodeMetrics(body)
		if err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		for _, m := range metrics {
			if err := m.Validate(); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		}

		for _, m := range metrics {
			if err := reporter.Report(r.Context(), m); err != nil {
				log.Printf("reporting %s metric: %v", m.Name, err)
				http.Error(w, `{"error":"failed to record metric"}`, http.StatusInternalServerError)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]int{"accepted": len(metrics)})
	}
}

func handleSummary(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := store.Summary(r.Context())
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		if summaries == nil {
			summaries = []Summary{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summaryResponse{Metrics: summaries, Overall: Overall(summaries)})
	}
}

// writeError writes {"error": msg}.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
