package content

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FallbackTagColor is used for tags without an assigned color.
const FallbackTagColor = "#6b7280"

// MaxDisplayTags is how many tags a prompt card shows before "+N".
const MaxDisplayTags = 3

var tagColors = map[string]string{
	"creative":    "#9333ea",
	"design":      "#3b82f6",
	"photography": "#10b981",
	"ecommerce":   "#f59e0b",
	"character":   "#ef4444",
	"logo":        "#8b5cf6",
}

// TagColor returns the badge color of tag.
func TagColor(tag string) string {
	if c, ok := tagColors[tag]; ok {
		return c
	}
	return FallbackTagColor
}

// TagLabel capitalises the first letter of tag and turns dashes into spaces.
func TagLabel(tag string) string {
	return upperFirst(strings.ReplaceAll(tag, "-", " "))
}

// CategoryLabel capitalises the first letter of a prompt category.
func CategoryLabel(category string) string {
	return upperFirst(category)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// DisplayTags splits tags into the ones shown on a card and the number of
// hidden ones.
func DisplayTags(tags []string) (shown []string, remaining int) {
	if len(tags) <= MaxDisplayTags {
		return tags, 0
	}
	return tags[:MaxDisplayTags], len(tags) - MaxDisplayTags
}

// ColorClasses are the Tailwind background and text classes of a badge.
type ColorClasses struct {
	Bg   string `json:"bg"`
	Text string `json:"text"`
}

var categoryColors = map[TutorialCategory]ColorClasses{
	CategoryBeginner:     {Bg: "bg-green-100", Text: "text-green-800"},
	CategoryIntermediate: {Bg: "bg-blue-100", Text: "text-blue-800"},
	CategoryAdvanced:     {Bg: "bg-purple-100", Text: "text-purple-800"},
	CategoryMarketing:    {Bg: "bg-orange-100", Text: "text-orange-800"},
	CategoryCinematic:    {Bg: "bg-pink-100", Text: "text-pink-800"},
}

// CategoryColors returns the badge classes for a tutorial category,
// gray when unknown.
func CategoryColors(c TutorialCategory) ColorClasses {
	if cc, ok := categoryColors[c]; ok {
		return cc
	}
	return ColorClasses{Bg: "bg-gray-100", Text: "text-gray-800"}
}

var sectionGradients = map[string]string{
	"cyan-blue":     "bg-gradient-to-br from-cyan-50 to-blue-50",
	"indigo-purple": "bg-gradient-to-br from-indigo-50 to-purple-50",
	"amber-orange":  "bg-gradient-to-br from-amber-50 to-orange-50",
	"emerald-teal":  "bg-gradient-to-br from-emerald-50 to-teal-50",
	"red-pink":      "bg-gradient-to-br from-red-50 to-pink-50",
	"violet-purple": "bg-gradient-to-br from-violet-50 to-purple-50",
	"blue-cyan":     "bg-gradient-to-br from-blue-50 to-cyan-50",
	"pink-rose":     "bg-gradient-to-br from-pink-50 to-rose-50",
	"card":          "bg-card",
}

// SectionGradient maps a section gradient name to its classes. Unknown
// names get the plain card background.
func SectionGradient(name string) string {
	if g, ok := sectionGradients[name]; ok {
		return g
	}
	return sectionGradients["card"]
}
