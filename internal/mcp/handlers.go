package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nanobanana-fans/nanobanana/internal/content"
	"github.com/nanobanana-fans/nanobanana/internal/engagement"
)

const defaultLimit = 10

func (s *Server) handleSearchPrompts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}

	results := s.catalog.Search(query, limit)
	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No prompts or tutorials match %q.", query)), nil
	}
	return mcp.NewToolResultText(formatSearchResults(results)), nil
}

func (s *Server) handleGetPrompt(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errResult := s.lookupPrompt(request)
	if errResult != nil {
		return errResult, nil
	}
	return mcp.NewToolResultText(formatPrompt(p)), nil
}

// handleCopyPrompt returns the bare prompt text and records an mcp copy
// event. A failed insert is reported but still returns the text.
func (s *Server) handleCopyPrompt(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errResult := s.lookupPrompt(request)
	if errResult != nil {
		return errResult, nil
	}
	if s.copies != nil {
		if _, err := s.copies.Record(ctx, p.Slug, engagement.SourceMCP); err != nil {
			return mcp.NewToolResultText(p.Prompt + "\n\n(copy not recorded: " + err.Error() + ")"), nil
		}
	}
	return mcp.NewToolResultText(p.Prompt), nil
}

func (s *Server) lookupPrompt(request mcp.CallToolRequest) (content.Prompt, *mcp.CallToolResult) {
	slug, err := request.RequireString("slug")
	if err != nil {
		return content.Prompt{}, mcp.NewToolResultError("missing required parameter: slug")
	}
	p, err := s.catalog.Prompt(slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return content.Prompt{}, mcp.NewToolResultError(fmt.Sprintf(
				"No prompt with slug %q. Use search_prompts to find one.", slug))
		}
		return content.Prompt{}, mcp.NewToolResultError(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return p, nil
}

func (s *Server) handleListTutorials(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tutorials := s.catalog.Tutorials()
	if d := request.GetString("difficulty", ""); d != "" {
		difficulty := content.Difficulty(d)
		if !difficulty.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("unknown difficulty %q", d)), nil
		}
		tutorials = s.catalog.TutorialsByDifficulty(difficulty)
	}
	if len(tutorials) == 0 {
		return mcp.NewToolResultText("No tutorials found."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d tutorial(s):\n", len(tutorials))
	for _, t := range tutorials {
		fmt.Fprintf(&sb, "\n- %s (%s)\n  %s, %s, %s\n  %s\n", t.Title, t.Slug, t.Difficulty, t.Category, t.ReadTime, t.Description)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleGetTutorial(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := request.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: slug"), nil
	}
	t, err := s.catalog.Tutorial(slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf(
				"No tutorial with slug %q. Use list_tutorials to see them all.", slug)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to load tutorial: %v", err)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n%s\n\n", t.Title, t.Description)
	fmt.Fprintf(&sb, "Difficulty: %s | Category: %s | Read time: %s\n\n", t.Difficulty, t.Category, t.ReadTime)
	sb.WriteString(t.Body)
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handlePopularPrompts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", defaultLimit)
	top, err := s.copies.Top(ctx, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load popular prompts: %v", err)), nil
	}
	if len(top) == 0 {
		return mcp.NewToolResultText("No prompts have been copied yet."), nil
	}

	var sb strings.Builder
	for i, p := range top {
		title := p.Slug
		if prompt, err := s.catalog.Prompt(p.Slug); err == nil {
			title = prompt.Title
		}
		fmt.Fprintf(&sb, "%d. %s (%s): %d copies\n", i+1, title, p.Slug, p.Copies)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// formatSearchResults renders hits as plain text for agent consumption.
func formatSearchResults(results []content.SearchResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d result(s):\n", len(results))
	for i, r := range results {
		fmt.Fprintf(&sb, "\n--- Result %d ---\n", i+1)
		fmt.Fprintf(&sb, "Kind: %s\n", r.Kind)
		fmt.Fprintf(&sb, "Slug: %s\n", r.Slug)
		fmt.Fprintf(&sb, "Title: %s\n", r.Title)
		fmt.Fprintf(&sb, "Path: %s\n", r.Path)
		if r.Summary != "" {
			sb.WriteString("\n")
			sb.WriteString(r.Summary)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func formatPrompt(p content.Prompt) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", p.Title)
	if p.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", p.Description)
	}
	fmt.Fprintf(&sb, "Category: %s\n", p.Category)
	if len(p.Tags) > 0 {
		fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(p.Tags, ", "))
	}
	if p.PreviewImage != "" {
		fmt.Fprintf(&sb, "Preview: %s\n", p.PreviewImage)
	}
	fmt.Fprintf(&sb, "\nPrompt:\n%s\n", p.Prompt)
	return sb.String()
}
