package content

import (
	"strings"
	"testing"
)

func TestRenderHeadingAttributes(t *testing.T) {
	r := NewRenderer()
	out, err := r.Render("## Why It Matters {#why}\n\nBody text.\n\n### Auto Heading\n")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out.HTML)
	if !strings.Contains(html, `<h2 id="why">Why It Matters</h2>`) {
		t.Errorf("expected explicit heading id, got:\n%s", html)
	}
	if !strings.Contains(html, `id="auto-heading"`) {
		t.Errorf("expected generated heading id, got:\n%s", html)
	}
	if len(out.Headings) != 2 {
		t.Fatalf("expected 2 headings, got %+v", out.Headings)
	}
	if out.Headings[0].ID != "why" || out.Headings[0].Level != 2 || out.Headings[0].Title != "Why It Matters" {
		t.Errorf("unexpected first heading %+v", out.Headings[0])
	}
	if !out.HeadingIDs()["auto-heading"] {
		t.Error("HeadingIDs missing auto-heading")
	}
}

func TestRenderGFMAndCode(t *testing.T) {
	r := NewRenderer()
	out, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |\n\n```go\nfunc main() {}\n```\n")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out.HTML)
	if !strings.Contains(html, "<table>") {
		t.Error("expected GFM table")
	}
	if !strings.Contains(html, "<pre") {
		t.Error("expected highlighted code block")
	}
}
