// Package engagement records prompt copy events and ranks popular prompts.
package engagement

import "time"

// Source identifies where a copy happened.
type Source string

const (
	SourceWeb Source = "web"
	SourceCLI Source = "cli"
	SourceMCP Source = "mcp"
	SourceAPI Source = "api"
)

func (s Source) Valid() bool {
	switch s {
	case SourceWeb, SourceCLI, SourceMCP, SourceAPI:
		return true
	}
	return false
}

// Event is one recorded copy.
type Event struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Source    Source    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// Popular is a prompt with its copy count.
type Popular struct {
	Slug   string `json:"slug"`
	Title  string `json:"title,omitempty"`
	Copies int    `json:"copies"`
}
