package content

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidSlug is returned by NormalizeSlug for input that cannot name a page.
var ErrInvalidSlug = errors.New("invalid slug")

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeSlug turns user input such as "Café Portrait" into "cafe-portrait".
// Path separators and dot segments are rejected.
func NormalizeSlug(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsAny(s, `/\`) || strings.Contains(s, "..") {
		return "", ErrInvalidSlug
	}
	if stripped, _, err := transform.String(diacriticStripper, s); err == nil {
		s = stripped
	}
	s = strings.ToLower(s)

	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == '-' || r == '_' || unicode.IsSpace(r):
			if b.Len() > 0 && !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		default:
			// drop punctuation and anything non-ASCII left after stripping
		}
	}
	out := strings.TrimRight(b.String(), "-")
	if out == "" {
		return "", ErrInvalidSlug
	}
	return out, nil
}
