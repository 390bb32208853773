package vitals

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultGAEndpoint is the GA4 Measurement Protocol collection URL.
const DefaultGAEndpoint = "https://www.google-analytics.com/mp/collect"

// Forwarder sends a metric to an analytics backend.
type Forwarder interface {
	Forward(ctx context.Context, m Metric) error
}

// GAForwarder posts metrics as GA4 Measurement Protocol events.
type GAForwarder struct {
	MeasurementID string
	APISecret     string
	Endpoint      string
	Client        *http.Client
}

// NewGAForwarder creates a forwarder for the given GA4 stream.
func NewGAForwarder(measurementID, apiSecret string) *GAForwarder {
	return &GAForwarder{
		MeasurementID: measurementID,
		APISecret:     apiSecret,
		Endpoint:      DefaultGAEndpoint,
		Client:        &http.Client{Timeout: 5 * time.Second},
	}
}

type gaPayload struct {
	ClientID string    `json:"client_id"`
	Events   []gaEvent `json:"events"`
}

type gaEvent struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params"`
}

func gaEventFor(m Metric) gaEvent {
	params := map[string]any{
		"event_category":  "Web Vitals",
		"event_label":     m.ID,
		"value":           m.ReportValue(),
		"non_interaction": true,
		"metric_id":       m.ID,
		"metric_value":    m.Value,
		"metric_delta":    m.Delta,
		"metric_rating":   string(m.Rating),
	}
	if m.Page != "" {
		params["page_location"] = m.Page
	}
	return gaEvent{Name: string(m.Name), Params: params}
}

func (f *GAForwarder) Forward(ctx context.Context, m Metric) error {
	clientID := m.ClientID
	if clientID == "" {
		clientID = m.ID
	}
	body, err := json.Marshal(gaPayload{ClientID: clientID, Events: []gaEvent{gaEventFor(m)}})
	if err != nil {
		return fmt.Errorf("encoding ga event: %w", err)
	}

	q := url.Values{}
	q.Set("measurement_id", f.MeasurementID)
	q.Set("api_secret", f.APISecret)
	endpoint := f.Endpoint
	if endpoint == "" {
		endpoint = DefaultGAEndpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"?"+q.Encode(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating ga request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("sending ga event: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("ga collect returned %s", resp.Status)
	}
	return nil
}
