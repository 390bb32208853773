// Package vitals ingests browser web-vitals measurements, stores them and
// forwards them to Google Analytics.
package vitals

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidMetric = errors.New("invalid metric")

// Name is a web-vitals metric name.
type Name string

const (
	CLS  Name = "CLS"
	FCP  Name = "FCP"
	FID  Name = "FID"
	INP  Name = "INP"
	LCP  Name = "LCP"
	TTFB Name = "TTFB"
)

// Names lists every accepted metric.
var Names = []Name{CLS, FCP, FID, INP, LCP, TTFB}

func (n Name) Valid() bool {
	for _, v := range Names {
		if n == v {
			return true
		}
	}
	return false
}

// Rating is the web-vitals rating bucket.
type Rating string

const (
	RatingGood             Rating = "good"
	RatingNeedsImprovement Rating = "needs-improvement"
	RatingPoor             Rating = "poor"
)

func (r Rating) Valid() bool {
	switch r {
	case RatingGood, RatingNeedsImprovement, RatingPoor:
		return true
	}
	return false
}

// Threshold holds the upper bounds of the good and needs-improvement
// buckets.
type Threshold struct {
	Good float64
	Poor float64
}

// Thresholds per metric. CLS is unitless, the rest are milliseconds.
var Thresholds = map[Name]Threshold{
	LCP:  {Good: 2500, Poor: 4000},
	FID:  {Good: 100, Poor: 300},
	CLS:  {Good: 0.1, Poor: 0.25},
	FCP:  {Good: 1800, Poor: 3000},
	TTFB: {Good: 800, Poor: 1800},
	INP:  {Good: 200, Poor: 500},
}

// Assess rates a value against the metric's thresholds.
func Assess(name Name, value float64) Rating {
	t, ok := Thresholds[name]
	if !ok {
		return ""
	}
	switch {
	case value <= t.Good:
		return RatingGood
	case value <= t.Poor:
		return RatingNeedsImprovement
	default:
		return RatingPoor
	}
}

// Metric is one measurement as sent by the web-vitals library.
type Metric struct {
	ID             string  `json:"id"`
	Name           Name    `json:"name"`
	Value          float64 `json:"value"`
	Delta          float64 `json:"delta"`
	Rating         Rating  `json:"rating,omitempty"`
	Page           string  `json:"page,omitempty"`
	NavigationType string  `json:"navigationType,omitempty"`
	ClientID       string  `json:"clientId,omitempty"`
}

// Validate checks the name, value and rating. An empty rating is allowed.
func (m Metric) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidMetric)
	}
	if !m.Name.Valid() {
		return fmt.Errorf("%w: unknown name %q", ErrInvalidMetric, m.Name)
	}
	if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) || m.Value < 0 {
		return fmt.Errorf("%w: %s value %v out of range", ErrInvalidMetric, m.Name, m.Value)
	}
	if math.IsNaN(m.Delta) || math.IsInf(m.Delta, 0) {
		return fmt.Errorf("%w: %s delta is not a number", ErrInvalidMetric, m.Name)
	}
	if m.Rating != "" && !m.Rating.Valid() {
		return fmt.Errorf("%w: unknown rating %q", ErrInvalidMetric, m.Rating)
	}
	return nil
}

// ReportValue is the integer value sent to analytics. CLS is scaled by
// 1000 so it survives rounding.
func (m Metric) ReportValue() int64 {
	v := m.Value
	if m.Name == CLS {
		v *= 1000
	}
	return int64(math.Round(v))
}

// Unit is "ms" for timing metrics and "" for CLS.
func (m Metric) Unit() string {
	if m.Name == CLS {
		return ""
	}
	return "ms"
}

// Summary aggregates stored measurements of one metric.
type Summary struct {
	Name             Name    `json:"name"`
	Count            int     `json:"count"`
	Average          float64 `json:"average"`
	Good             int     `json:"good"`
	NeedsImprovement int     `json:"needs_improvement"`
	Poor             int     `json:"poor"`
	Rating           Rating  `json:"rating"`
}

// Overall grades a set of summaries: "excellent" when every metric is
// good, "good" when none is poor, else "needs-improvement".
func Overall(summaries []Summary) string {
	if len(summaries) == 0 {
		return ""
	}
	allGood, anyPoor := true, false
	for _, s := range summaries {
		if s.Rating != RatingGood {
			allGood = false
		}
		if s.Rating == RatingPoor {
			anyPoor = true
		}
	}
	switch {
	case allGood:
		return "excellent"
	case !anyPoor:
		return "good"
	default:
		return string(RatingNeedsImprovement)
	}
}
