package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Heading is a heading found while rendering a Markdown body.
type Heading struct {
	ID    string
	Level int
	Title string
}

// Rendered is the HTML of a Markdown body plus its headings.
type Rendered struct {
	HTML     template.HTML
	Headings []Heading
}

// HeadingIDs returns the set of anchor ids in the document.
func (r Rendered) HeadingIDs() map[string]bool {
	ids := make(map[string]bool, len(r.Headings))
	for _, h := range r.Headings {
		ids[h.ID] = true
	}
	return ids
}

// Renderer converts tutorial Markdown to HTML. Headings may carry explicit
// anchors with the {#id} attribute syntax; the rest get generated ids.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with GFM and syntax highlighting enabled.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
				parser.WithAttribute(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// Render converts source to HTML.
func (r *Renderer) Render(source string) (Rendered, error) {
	src := []byte(source)
	doc := r.md.Parser().Parse(text.NewReader(src))

	var headings []Heading
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		heading := Heading{Level: h.Level, Title: string(nodeText(h, src))}
		if id, ok := h.AttributeString("id"); ok {
			if b, ok := id.([]byte); ok {
				heading.ID = string(b)
			}
		}
		headings = append(headings, heading)
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return Rendered{}, fmt.Errorf("walking markdown: %w", err)
	}

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, src, doc); err != nil {
		return Rendered{}, fmt.Errorf("rendering markdown: %w", err)
	}
	return Rendered{HTML: template.HTML(buf.String()), Headings: headings}, nil
}

func nodeText(n ast.Node, src []byte) []byte {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
			continue
		}
		buf.Write(nodeText(c, src))
	}
	return buf.Bytes()
}
