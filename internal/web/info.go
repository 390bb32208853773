package web

// infoPages are the plain text pages linked from the footer and listed in
// the sitemap.
var infoPages = []infoPage{
	{
		Path:        "/about",
		Title:       "About",
		Description: "About Nano Banana Fans, an unofficial resource for Nano Banana AI image editing.",
		Paragraphs: []string{
			"Nano Banana Fans is an unofficial community resource for Google's Nano Banana image editing model.",
			"We collect prompts that work, explain why they work, and write tutorials that take you from a first edit to production workflows.",
		},
		Links: []infoLink{{Href: "/prompts", Label: "Browse the prompt library"}, {Href: "/tutorials", Label: "Start a tutorial"}},
	},
	{
		Path:        "/community",
		Title:       "Community",
		Description: "Share prompts and results with other Nano Banana creators.",
		Paragraphs: []string{
			"Found a prompt that nails character consistency or a lighting trick worth sharing? The library grows from community submissions.",
			"Send us your prompt, a before and after image and a short description, and we will credit you when it is published.",
		},
		Links: []infoLink{{Href: "/contact", Label: "Submit a prompt"}},
	},
	{
		Path:        "/figure-generate",
		Title:       "Figure Generator",
		Description: "Turn a photo into a collectible figurine with Nano Banana.",
		Paragraphs: []string{
			"Upload a full-body photo to Nano Banana and use the figurine prompt to get a 1/7 scale collectible on a desk, complete with packaging.",
			"Copy the prompt below the preview, then adjust the base, box art or pose to taste.",
		},
		Links: []infoLink{{Href: "/prompts/figurine-collectible", Label: "Figurine prompt"}, {Href: "/tutorials/getting-started", Label: "Getting started"}},
	},
	{
		Path:        "/article-generator-demo",
		Title:       "Article Image Generator Demo",
		Description: "Generate consistent illustrations for long-form articles.",
		Paragraphs: []string{
			"Articles read better with illustrations that share a style. Pick a style prompt, keep the same reference image and describe each scene in turn.",
			"The multi-turn editing tutorial shows how to keep characters and palettes stable across a whole series.",
		},
		Links: []infoLink{{Href: "/tutorials/multi-turn-editing", Label: "Multi-turn editing"}, {Href: "/tutorials/style-transfer-techniques", Label: "Style transfer"}},
	},
	{
		Path:        "/contact",
		Title:       "Contact",
		Description: "Get in touch with the Nano Banana Fans team.",
		Paragraphs: []string{
			"Questions, corrections and prompt submissions are welcome at hello@nanobanana.fans.",
			"We usually reply within a few days.",
		},
	},
	{
		Path:        "/privacy",
		Title:       "Privacy Policy",
		Description: "How Nano Banana Fans handles your data.",
		Paragraphs: []string{
			"We do not require an account and do not collect personal information directly.",
			"Pages may load Google AdSense and Google Analytics, which use cookies to serve ads and measure traffic. Anonymous performance metrics (Core Web Vitals) are collected to keep the site fast.",
			"Copying a prompt records an anonymous counter used to rank popular prompts.",
		},
	},
	{
		Path:        "/terms",
		Title:       "Terms of Use",
		Description: "Terms for using Nano Banana Fans content.",
		Paragraphs: []string{
			"Prompts and tutorials are provided as-is for personal and commercial use. Results depend on the model and may vary.",
			"Nano Banana Fans is not affiliated with Google. Product names belong to their owners.",
		},
	},
}
