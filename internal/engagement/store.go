package engagement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nanobanana-fans/nanobanana/internal/db"
)

// Store persists copy events.
type Store struct {
	db *db.DB
}

// NewStore creates a new engagement store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record stores a copy of slug. An empty source defaults to web.
func (s *Store) Record(ctx context.Context, slug string, source Source) (*Event, error) {
	if source == "" {
		source = SourceWeb
	}
	if !source.Valid() {
		return nil, fmt.Errorf("unknown source %q", source)
	}
	e := Event{
		ID:        uuid.New().String(),
		Slug:      slug,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO copy_events (id, slug, source, created_at) VALUES (?, ?, ?, ?)`,
		e.ID, e.Slug, e.Source, e.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting copy event: %w", err)
	}
	return &e, nil
}

// Count returns how many times slug has been copied.
func (s *Store) Count(ctx context.Context, slug string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM copy_events WHERE slug = ?`, slug).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting copy events: %w", err)
	}
	return n, nil
}

// Top returns the n most copied slugs, ties broken by slug.
func (s *Store) Top(ctx context.Context, n int) ([]Popular, error) {
	if n <= 0 {
		n = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT slug, COUNT(*) AS copies FROM copy_events
		 GROUP BY slug ORDER BY copies DESC, slug ASC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying popular prompts: %w", err)
	}
	defer rows.Close()

	var out []Popular
	for rows.Next() {
		var p Popular
		if err := rows.Scan(&p.Slug, &p.Copies); err != nil {
			return nil, fmt.Errorf("scanning popular prompt: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
