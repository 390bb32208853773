package content

import (
	"slices"
	"time"
)

// DateLayout is the layout of every date stored in content files.
const DateLayout = "2006-01-02"

const (
	defaultChangeFrequency = ChangeWeekly
	defaultPriority        = 0.5
)

// Pages returns the static page rows.
func (c *Catalog) Pages() []PageUpdate {
	return slices.Clone(c.staticPages)
}

// TutorialPages returns the tracked tutorial page rows.
func (c *Catalog) TutorialPages() []PageUpdate {
	return slices.Clone(c.tutorialPages)
}

// PageUpdate returns the tracked row for url, searching static pages first.
func (c *Catalog) PageUpdate(url string) (PageUpdate, bool) {
	for _, rows := range [][]PageUpdate{c.staticPages, c.tutorialPages} {
		for _, p := range rows {
			if p.URL == url {
				return p, true
			}
		}
	}
	return PageUpdate{}, false
}

// LastModified returns the tracked date for url, or now's date when the
// URL is not tracked.
func (c *Catalog) LastModified(url string, now time.Time) string {
	if p, ok := c.PageUpdate(url); ok && p.LastModified != "" {
		return p.LastModified
	}
	return now.UTC().Format(DateLayout)
}

// ChangeFrequencyFor returns the tracked change frequency for url, weekly
// by default.
func (c *Catalog) ChangeFrequencyFor(url string) ChangeFrequency {
	if p, ok := c.PageUpdate(url); ok && p.ChangeFrequency != "" {
		return p.ChangeFrequency
	}
	return defaultChangeFrequency
}

// PriorityFor returns the tracked priority for url, 0.5 by default.
func (c *Catalog) PriorityFor(url string) float64 {
	if p, ok := c.PageUpdate(url); ok && p.Priority > 0 {
		return p.Priority
	}
	return defaultPriority
}
