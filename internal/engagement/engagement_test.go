package engagement

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nanobanana-fans/nanobanana/internal/clipboard"
	"github.com/nanobanana-fans/nanobanana/internal/content"
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

func setupRouter(t *testing.T) (*chi.Mux, *Store) {
	t.Helper()
	store := setupTestStore(t)
	catalog, err := content.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	r := chi.NewRouter()
	RegisterRoutes(r, store, catalog, clipboard.DefaultToasts(), 2*time.Second)
	return r, store
}

func TestRecordAndCount(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := store.Record(ctx, "figurine-collectible", SourceWeb); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	e, err := store.Record(ctx, "vintage-film-look", "")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if e.ID == "" || e.Source != SourceWeb {
		t.Errorf("event = %+v", e)
	}

	n, err := store.Count(ctx, "figurine-collectible")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 copies, got %d", n)
	}
	if n, _ := store.Count(ctx, "unknown"); n != 0 {
		t.Errorf("expected 0 copies, got %d", n)
	}
}

func TestRecordRejectsUnknownSource(t *testing.T) {
	store := setupTestStore(t)
	if _, err := store.Record(context.Background(), "a", Source("fax")); err == nil {
		t.Error("expected error for unknown source")
	}
}

func TestTop(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	counts := map[string]int{"b": 2, "a": 2, "c": 5, "d": 1}
	for slug, n := range counts {
		for i := 0; i < n; i++ {
			if _, err := store.Record(ctx, slug, SourceCLI); err != nil {
				t.Fatal(err)
			}
		}
	}

	top, err := store.Top(ctx, 3)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	want := []Popular{{Slug: "c", Copies: 5}, {Slug: "a", Copies: 2}, {Slug: "b", Copies: 2}}
	if len(top) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(top))
	}
	for i := range want {
		if top[i] != want[i] {
			t.Errorf("top[%d] = %+v, want %+v", i, top[i], want[i])
		}
	}
}

func TestCopyEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	var resp copyResponse
	for i := 1; i <= 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/prompts/figurine-collectible/copy", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status %d: %s", w.Code, w.Body.String())
		}
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Copies != i {
			t.Errorf("copy %d: copies = %d", i, resp.Copies)
		}
	}
	if resp.Prompt == "" {
		t.Error("expected prompt text in response")
	}
	if resp.ResetAfterMS != 2000 {
		t.Errorf("reset_after_ms = %d", resp.ResetAfterMS)
	}
	if resp.Toast.Title != clipboard.DefaultToasts().Promotion.Title {
		t.Errorf("toast = %+v", resp.Toast)
	}
}

func TestCopyEndpointWithoutPromotion(t *testing.T) {
	r, _ := setupRouter(t)

	body := strings.NewReader(`{"source":"api","promotion":false}`)
	req := httptest.NewRequest(http.MethodPost, "/api/prompts/vintage-film-look/copy", body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var got map[string]any
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	toast := got["toast"].(map[string]any)
	if toast["title"] != "复制成功！" {
		t.Errorf("toast = %v", toast)
	}
}

func TestCopyEndpointErrors(t *testing.T) {
	r, _ := setupRouter(t)

	tests := []struct {
		path string
		body string
		want int
	}{
		{"/api/prompts/does-not-exist/copy", "", http.StatusNotFound},
		{"/api/prompts/vintage-film-look/copy", "{bad", http.StatusBadRequest},
		{"/api/prompts/vintage-film-look/copy", `{"source":"fax"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("%s %q: status %d, want %d", tt.path, tt.body, w.Code, tt.want)
		}
	}
}

func TestPopularEndpoint(t *testing.T) {
	r, store := setupRouter(t)
	ctx := context.Background()
	store.Record(ctx, "golden-hour-relight", SourceWeb)
	store.Record(ctx, "golden-hour-relight", SourceWeb)
	store.Record(ctx, "minimal-logo-mark", SourceWeb)
	store.Record(ctx, "removed-prompt", SourceWeb)

	req := httptest.NewRequest(http.MethodGet, "/api/prompts/popular?n=5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var got []Popular
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 popular prompts (unknown slugs dropped), got %+v", got)
	}
	if got[0].Slug != "golden-hour-relight" || got[0].Copies != 2 || got[0].Title == "" {
		t.Errorf("first = %+v", got[0])
	}
}
