package content

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const tutorialPrefix = "/tutorials/"

// Check validates the catalog and returns every problem found, joined.
func (c *Catalog) Check() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	slugs := make(map[string]bool)
	ids := make(map[string]bool)
	for i, p := range c.prompts {
		where := fmt.Sprintf("prompt #%d (%s)", i+1, p.Slug)
		if p.Slug == "" {
			add("%s: slug is required", where)
		} else if norm, err := NormalizeSlug(p.Slug); err != nil || norm != p.Slug {
			add("%s: slug is not normalized", where)
		}
		if slugs[p.Slug] {
			add("%s: duplicate slug", where)
		}
		slugs[p.Slug] = true
		if p.ID == "" {
			add("%s: id is required", where)
		} else if ids[p.ID] {
			add("%s: duplicate id %q", where, p.ID)
		}
		ids[p.ID] = true
		if p.Title == "" {
			add("%s: title is required", where)
		}
		if strings.TrimSpace(p.Prompt) == "" {
			add("%s: prompt text is required", where)
		}
		if p.Category == "" {
			add("%s: category is required", where)
		}
		if p.PreviewImage == "" {
			add("%s: preview_image is required", where)
		}
		if p.UpdatedAt != "" {
			if _, err := time.Parse(DateLayout, p.UpdatedAt); err != nil {
				add("%s: bad updated_at %q", where, p.UpdatedAt)
			}
		}
	}

	tutorials := make(map[string]bool)
	for _, t := range c.tutorials {
		tutorials[t.Slug] = true
		tutorials[t.ID] = true
	}

	renderer := NewRenderer()
	seen := make(map[string]bool)
	for _, t := range c.tutorials {
		where := "tutorial " + t.Slug
		if seen[t.Slug] {
			add("%s: duplicate slug", where)
		}
		seen[t.Slug] = true
		if t.Title == "" {
			add("%s: title is required", where)
		}
		if !t.Difficulty.Valid() {
			add("%s: unknown difficulty %q", where, t.Difficulty)
		}
		if t.Rating < 0 || t.Rating > 5 {
			add("%s: rating %.1f out of range", where, t.Rating)
		}
		for _, d := range []string{t.PublishedAt, t.UpdatedAt} {
			if _, err := time.Parse(DateLayout, d); err != nil {
				add("%s: bad date %q", where, d)
			}
		}
		for _, id := range t.RelatedTutorials {
			if id == t.ID || id == t.Slug {
				add("%s: lists itself as related", where)
			} else if !tutorials[id] {
				add("%s: related tutorial %q does not exist", where, id)
			}
		}
		for _, link := range []*NavLink{t.Navigation.Prev, t.Navigation.Next} {
			if link == nil {
				continue
			}
			target := strings.TrimPrefix(link.Href, tutorialPrefix)
			if !strings.HasPrefix(link.Href, tutorialPrefix) || !tutorials[target] {
				add("%s: navigation link %q does not resolve", where, link.Href)
			}
		}
		if t.Body == "" {
			add("%s: body is missing", where)
			continue
		}
		rendered, err := renderer.Render(t.Body)
		if err != nil {
			add("%s: %v", where, err)
			continue
		}
		headingIDs := rendered.HeadingIDs()
		for _, item := range t.TableOfContents {
			if !headingIDs[item.ID] {
				add("%s: table of contents entry %q has no heading", where, item.ID)
			}
		}
	}

	for _, rows := range [][]PageUpdate{c.staticPages, c.tutorialPages} {
		for _, p := range rows {
			where := fmt.Sprintf("page %q", p.URL)
			if _, err := time.Parse(DateLayout, p.LastModified); err != nil {
				add("%s: bad last_modified %q", where, p.LastModified)
			}
			if !p.ChangeFrequency.Valid() {
				add("%s: bad change_frequency %q", where, p.ChangeFrequency)
			}
			if p.Priority < 0 || p.Priority > 1 {
				add("%s: priority %.1f out of range", where, p.Priority)
			}
		}
	}
	for _, p := range c.tutorialPages {
		if !tutorials[strings.TrimPrefix(p.URL, tutorialPrefix)] {
			add("page %q: no such tutorial", p.URL)
		}
	}

	return errors.Join(errs...)
}
