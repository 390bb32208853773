package vitals

import (
	"context"
	"fmt"
	"log"
)

// Reporter validates metrics, stores them and fans them out to forwarders.
type Reporter struct {
	store      *Store
	forwarders []Forwarder
	verbose    bool
}

// NewReporter creates a Reporter. store may be nil to skip persistence.
func NewReporter(store *Store, verbose bool, forwarders ...Forwarder) *Reporter {
	return &Reporter{store: store, forwarders: forwarders, verbose: verbose}
}

// Report handles one metric. A missing rating is filled in from the
// thresholds. Forwarding failures are logged, not returned.
func (r *Reporter) Report(ctx context.Context, m Metric) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if m.Rating == "" {
		m.Rating = Assess(m.Name, m.Value)
	}

	if r.store != nil {
		if err := r.store.Record(ctx, m); err != nil {
			return err
		}
	}
	for _, f := range r.forwarders {
		if err := f.Forward(ctx, m); err != nil {
			log.Printf("forwarding %s metric: %v", m.Name, err)
		}
	}
	if r.verbose {
		log.Print(FormatLine(m))
	}
	return nil
}

// FormatLine renders a metric for the development log, e.g.
// "[Web Vitals] LCP: 1234.00 ms (good)".
func FormatLine(m Metric) string {
	line := fmt.Sprintf("[Web Vitals] %s: %.2f", m.Name, m.Value)
	if unit := m.Unit(); unit != "" {
		line += " " + unit
	}
	return line + fmt.Sprintf(" (%s)", m.Rating)
}
