package vitals

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/nanobanana-fans/nanobanana/internal/db"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

type recordingForwarder struct {
	mu      sync.Mutex
	metrics []Metric
	err     error
}

func (f *recordingForwarder) Forward(_ context.Context, m Metric) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.metrics = append(f.metrics, m)
	return f.err
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		m    Metric
		ok   bool
	}{
		{"valid", Metric{ID: "v3-1", Name: LCP, Value: 1200, Rating: RatingGood}, true},
		{"no rating", Metric{ID: "v3-1", Name: INP, Value: 80}, true},
		{"missing id", Metric{Name: LCP, Value: 1}, false},
		{"unknown name", Metric{ID: "x", Name: "TBT", Value: 1}, false},
		{"negative", Metric{ID: "x", Name: FCP, Value: -1}, false},
		{"nan", Metric{ID: "x", Name: FCP, Value: math.NaN()}, false},
		{"bad rating", Metric{ID: "x", Name: CLS, Value: 0.1, Rating: "meh"}, false},
	}
	for _, tt := range tests {
		err := tt.m.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidMetric) {
			t.Errorf("%s: expected ErrInvalidMetric, got %v", tt.name, err)
		}
	}
}

func TestReportValue(t *testing.T) {
	tests := []struct {
		m    Metric
		want int64
	}{
		{Metric{Name: CLS, Value: 0.0523}, 52},
		{Metric{Name: LCP, Value: 1234.5}, 1235},
		{Metric{Name: TTFB, Value: 99.4}, 99},
	}
	for _, tt := range tests {
		if got := tt.m.ReportValue(); got != tt.want {
			t.Errorf("%s %v: got %d, want %d", tt.m.Name, tt.m.Value, got, tt.want)
		}
	}
}

func TestAssess(t *testing.T) {
	tests := []struct {
		name  Name
		value float64
		want  Rating
	}{
		{LCP, 2500, RatingGood},
		{LCP, 3000, RatingNeedsImprovement},
		{LCP, 4001, RatingPoor},
		{CLS, 0.05, RatingGood},
		{CLS, 0.3, RatingPoor},
		{INP, 250, RatingNeedsImprovement},
		{"TBT", 1, ""},
	}
	for _, tt := range tests {
		if got := Assess(tt.name, tt.value); got != tt.want {
			t.Errorf("Assess(%s, %v) = %q, want %q", tt.name, tt.value, got, tt.want)
		}
	}
}

func TestFormatLine(t *testing.T) {
	if got := FormatLine(Metric{Name: LCP, Value: 1234, Rating: RatingGood}); got != "[Web Vitals] LCP: 1234.00 ms (good)" {
		t.Errorf("got %q", got)
	}
	if got := FormatLine(Metric{Name: CLS, Value: 0.05, Rating: RatingGood}); got != "[Web Vitals] CLS: 0.05 (good)" {
		t.Errorf("got %q", got)
	}
}

func TestOverall(t *testing.T) {
	good := Summary{Rating: RatingGood}
	ni := Summary{Rating: RatingNeedsImprovement}
	poor := Summary{Rating: RatingPoor}
	tests := []struct {
		in   []Summary
		want string
	}{
		{nil, ""},
		{[]Summary{good, good}, "excellent"},
		{[]Summary{good, ni}, "good"},
		{[]Summary{good, poor}, "needs-improvement"},
	}
	for _, tt := range tests {
		if got := Overall(tt.in); got != tt.want {
			t.Errorf("Overall(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStoreSummary(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	for _, m := range []Metric{
		{ID: "1", Name: LCP, Value: 1000, Rating: RatingGood},
		{ID: "2", Name: LCP, Value: 5000, Rating: RatingPoor},
		{ID: "3", Name: CLS, Value: 0.02, Rating: RatingGood},
	} {
		if err := store.Record(ctx, m); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	sums, err := store.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(sums) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(sums))
	}
	cls, lcp := sums[0], sums[1]
	if cls.Name != CLS || cls.Count != 1 || cls.Rating != RatingGood {
		t.Errorf("cls = %+v", cls)
	}
	if lcp.Count != 2 || lcp.Average != 3000 || lcp.Good != 1 || lcp.Poor != 1 {
		t.Errorf("lcp = %+v", lcp)
	}
	if lcp.Rating != RatingNeedsImprovement {
		t.Errorf("lcp rating = %q", lcp.Rating)
	}
}

func TestStoreRejectsInvalid(t *testing.T) {
	store := setupTestStore(t)
	err := store.Record(context.Background(), Metric{ID: "1", Name: "TBT", Value: 1})
	if !errors.Is(err, ErrInvalidMetric) {
		t.Errorf("expected ErrInvalidMetric, got %v", err)
	}
}

func TestReporterFillsRatingAndForwards(t *testing.T) {
	store := setupTestStore(t)
	fwd := &recordingForwarder{err: errors.New("ga down")}
	r := NewReporter(store, true, fwd)

	if err := r.Report(context.Background(), Metric{ID: "1", Name: TTFB, Value: 2000}); err != nil {
		t.Fatalf("Report: %v", err)
	}
	if len(fwd.metrics) != 1 || fwd.metrics[0].Rating != RatingPoor {
		t.Errorf("forwarded = %+v", fwd.metrics)
	}
	sums, _ := store.Summary(context.Background())
	if len(sums) != 1 || sums[0].Poor != 1 {
		t.Errorf("summary = %+v", sums)
	}
}

func TestGAForwarder(t *testing.T) {
	var gotQuery string
	var payload gaPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &payload)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	f := NewGAForwarder("G-TEST", "secret")
	f.Endpoint = srv.URL
	m := Metric{ID: "v3-abc", Name: CLS, Value: 0.12, Delta: 0.01, Rating: RatingNeedsImprovement}
	if err := f.Forward(context.Background(), m); err != nil {
		t.Fatalf("Forward: %v", err)
	}

	if !strings.Contains(gotQuery, "measurement_id=G-TEST") || !strings.Contains(gotQuery, "api_secret=secret") {
		t.Errorf("query = %q", gotQuery)
	}
	if payload.ClientID != "v3-abc" || len(payload.Events) != 1 {
		t.Fatalf("payload = %+v", payload)
	}
	ev := payload.Events[0]
	if ev.Name != "CLS" {
		t.Errorf("event name = %q", ev.Name)
	}
	if ev.Params["event_category"] != "Web Vitals" || ev.Params["value"] != float64(120) || ev.Params["non_interaction"] != true {
		t.Errorf("params = %+v", ev.Params)
	}
	if ev.Params["event_label"] != "v3-abc" || ev.Params["metric_rating"] != "needs-improvement" {
		t.Errorf("params = %+v", ev.Params)
	}
}

func TestGAForwarderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	f := NewGAForwarder("G-TEST", "secret")
	f.Endpoint = srv.URL
	if err := f.Forward(context.Background(), Metric{ID: "1", Name: LCP, Value: 1}); err == nil {
		t.Error("expected error for 400 response")
	}
}

func setupRouter(t *testing.T) (*chi.Mux, *Store) {
	t.Helper()
	store := setupTestStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, NewReporter(store, false), store)
	return r, store
}

func TestIngestSingleAndArray(t *testing.T) {
	r, store := setupRouter(t)

	bodies := []struct {
		body        string
		contentType string
		accepted    int
	}{
		{`{"id":"1","name":"LCP","value":1800,"delta":1800,"rating":"good","navigationType":"navigate","page":"/prompts"}`, "application/json", 1},
		{`[{"id":"2","name":"FCP","value":900},{"id":"3","name":"CLS","value":0.3}]`, "text/plain;charset=UTF-8", 2},
	}
	for _, b := range bodies {
		req := httptest.NewRequest(http.MethodPost, "/api/vitals", strings.NewReader(b.body))
		req.Header.Set("Content-Type", b.contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("status %d: %s", w.Code, w.Body.String())
		}
		var got map[string]int
		json.NewDecoder(w.Body).Decode(&got)
		if got["accepted"] != b.accepted {
			t.Errorf("accepted = %d, want %d", got["accepted"], b.accepted)
		}
	}

	sums, err := store.Summary(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != 3 {
		t.Errorf("expected 3 metric names stored, got %+v", sums)
	}
}

func TestIngestRejectsInvalid(t *testing.T) {
	r, store := setupRouter(t)

	for _, body := range []string{
		``,
		`not json`,
		`{"id":"1","name":"TBT","value":1}`,
		`[{"id":"1","name":"LCP","value":1},{"id":"2","name":"LCP","value":-5}]`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/vitals", strings.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%q: status %d", body, w.Code)
		}
		var got map[string]string
		if err := json.NewDecoder(w.Body).Decode(&got); err != nil || got["error"] == "" {
			t.Errorf("%q: expected JSON error body, got %q", body, w.Body.String())
		}
	}

	sums, _ := store.Summary(context.Background())
	if len(sums) != 0 {
		t.Errorf("invalid batches must not be stored, got %+v", sums)
	}
}

func TestSummaryEndpoint(t *testing.T) {
	r, store := setupRouter(t)
	store.Record(context.Background(), Metric{ID: "1", Name: LCP, Value: 1000, Rating: RatingGood})

	req := httptest.NewRequest(http.MethodGet, "/api/vitals/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var got summaryResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Metrics) != 1 || got.Overall != "excellent" {
		t.Errorf("summary = %+v", got)
	}
}
