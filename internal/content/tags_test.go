package content

import "testing"

func TestTagColor(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"creative", "#9333ea"},
		{"design", "#3b82f6"},
		{"photography", "#10b981"},
		{"ecommerce", "#f59e0b"},
		{"character", "#ef4444"},
		{"logo", "#8b5cf6"},
		{"unknown-tag", FallbackTagColor},
		{"", FallbackTagColor},
		{"Creative", FallbackTagColor},
	}
	for _, tt := range tests {
		if got := TagColor(tt.tag); got != tt.want {
			t.Errorf("TagColor(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestTagLabel(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"creative", "Creative"},
		{"style-transfer", "Style transfer"},
		{"3d", "3d"},
		{"", ""},
		{"é-clair", "É clair"},
	}
	for _, tt := range tests {
		if got := TagLabel(tt.tag); got != tt.want {
			t.Errorf("TagLabel(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := CategoryLabel("ecommerce"); got != "Ecommerce" {
		t.Errorf("CategoryLabel = %q", got)
	}
}

func TestDisplayTags(t *testing.T) {
	shown, rest := DisplayTags([]string{"a", "b"})
	if len(shown) != 2 || rest != 0 {
		t.Errorf("got %v +%d", shown, rest)
	}
	shown, rest = DisplayTags([]string{"a", "b", "c", "d", "e"})
	if len(shown) != 3 || rest != 2 {
		t.Errorf("got %v +%d", shown, rest)
	}
}

func TestCategoryColors(t *testing.T) {
	if got := CategoryColors(CategoryCinematic); got.Bg != "bg-pink-100" || got.Text != "text-pink-800" {
		t.Errorf("Cinematic colors = %+v", got)
	}
	if got := CategoryColors("Other"); got.Bg != "bg-gray-100" {
		t.Errorf("fallback colors = %+v", got)
	}
}

func TestSectionGradient(t *testing.T) {
	if got := SectionGradient("cyan-blue"); got != "bg-gradient-to-br from-cyan-50 to-blue-50" {
		t.Errorf("cyan-blue = %q", got)
	}
	if got := SectionGradient("nope"); got != "bg-card" {
		t.Errorf("fallback = %q", got)
	}
}
