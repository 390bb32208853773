package mcp

import "github.com/mark3labs/mcp-go/mcp"

var searchPromptsTool = mcp.NewTool("search_prompts",
	mcp.WithDescription("Search the Nano Banana prompt library and tutorials by keyword. Title matches rank first."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Keywords to search for"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 10)"),
	),
)

var getPromptTool = mcp.NewTool("get_prompt",
	mcp.WithDescription("Get a prompt by slug, including the full prompt text ready to paste into an image editor."),
	mcp.WithString("slug",
		mcp.Required(),
		mcp.Description("Prompt slug, e.g. figurine-collectible"),
	),
)

var copyPromptTool = mcp.NewTool("copy_prompt",
	mcp.WithDescription("Return only the prompt text for a slug and count it as a copy."),
	mcp.WithString("slug",
		mcp.Required(),
		mcp.Description("Prompt slug"),
	),
)

var listTutorialsTool = mcp.NewTool("list_tutorials",
	mcp.WithDescription("List the tutorials, optionally restricted to one difficulty level."),
	mcp.WithString("difficulty",
		mcp.Description("Only list tutorials of this difficulty"),
		mcp.Enum("beginner", "intermediate", "advanced"),
	),
)

var getTutorialTool = mcp.NewTool("get_tutorial",
	mcp.WithDescription("Get the full Markdown body of a tutorial."),
	mcp.WithString("slug",
		mcp.Required(),
		mcp.Description("Tutorial slug, e.g. getting-started"),
	),
)

var popularPromptsTool = mcp.NewTool("popular_prompts",
	mcp.WithDescription("List the most copied prompts."),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of prompts to return (default 10)"),
	),
)
