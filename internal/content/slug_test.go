package content

import (
	"errors"
	"testing"
)

func TestNormalizeSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"neon-portrait", "neon-portrait"},
		{"  Café Portrait  ", "cafe-portrait"},
		{"Golden_Hour Relight", "golden-hour-relight"},
		{"Multi   Turn -- Editing", "multi-turn-editing"},
		{"Crème Brûlée!", "creme-brulee"},
		{"3D Diorama", "3d-diorama"},
	}
	for _, tt := range tests {
		got, err := NormalizeSlug(tt.in)
		if err != nil {
			t.Errorf("NormalizeSlug(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeSlugRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "../etc/passwd", `a\b`, "a/b", "!!!", "日本語"} {
		if _, err := NormalizeSlug(in); !errors.Is(err, ErrInvalidSlug) {
			t.Errorf("NormalizeSlug(%q) = %v, want ErrInvalidSlug", in, err)
		}
	}
}
