package vitals

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nanobanana-fans/nanobanana/internal/db"
)

// Store persists metrics.
type Store struct {
	db *db.DB
}

// NewStore creates a new vitals store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record stores a validated metric.
func (s *Store) Record(ctx context.Context, m Metric) error {
	if err := m.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO web_vitals (id, metric_id, name, value, delta, rating, page, navigation_type, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), m.ID, m.Name, m.Value, m.Delta, m.Rating, m.Page, m.NavigationType, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting metric: %w", err)
	}
	return nil
}

// Summary aggregates every stored metric by name. The rating of each
// summary is the assessment of its average.
func (s *Store) Summary(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, COUNT(*), AVG(value),
		        SUM(CASE WHEN rating = 'good' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN rating = 'needs-improvement' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN rating = 'poor' THEN 1 ELSE 0 END)
		 FROM web_vitals GROUP BY name ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying vitals summary: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.Name, &sum.Count, &sum.Average, &sum.Good, &sum.NeedsImprovement, &sum.Poor); err != nil {
			return nil, fmt.Errorf("scanning vitals summary: %w", err)
		}
		sum.Rating = Assess(sum.Name, sum.Average)
		out = append(out, sum)
	}
	return out, rows.Err()
}
