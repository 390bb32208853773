package clipboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nanobanana-fans/nanobanana/internal/config"
)

type recordingNotifier struct {
	mu     sync.Mutex
	toasts []Toast
}

func (n *recordingNotifier) Notify(t Toast) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, t)
}

func (n *recordingNotifier) last() Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.toasts) == 0 {
		return Toast{}
	}
	return n.toasts[len(n.toasts)-1]
}

type memoryWriter struct {
	mu   sync.Mutex
	text string
	err  error
}

func (w *memoryWriter) WriteText(_ context.Context, text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.text = text
	return nil
}

func waitReset(t *testing.T, c *Copier) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.WaitReset(ctx); err != nil {
		t.Fatalf("WaitReset: %v", err)
	}
}

func TestCopySetsAndResetsCopied(t *testing.T) {
	w := &memoryWriter{}
	n := &recordingNotifier{}
	c := NewCopier(w, n, DefaultToasts(), 200*time.Millisecond)
	defer c.Close()

	if err := c.Copy(context.Background(), "make it a figurine"); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if !c.Copied() {
		t.Fatal("expected Copied immediately after a successful copy")
	}
	if c.Copying() {
		t.Error("expected Copying false after the write returned")
	}
	if w.text != "make it a figurine" {
		t.Errorf("clipboard = %q", w.text)
	}

	toast := n.last()
	if toast.Title != DefaultToasts().Promotion.Title || toast.Action == nil {
		t.Errorf("expected promotion toast with action, got %+v", toast)
	}
	if toast.Duration != 4*time.Second {
		t.Errorf("promotion duration = %v", toast.Duration)
	}

	waitReset(t, c)
	if c.Copied() {
		t.Error("expected Copied false after the reset delay")
	}
}

func TestCopyRestartsResetDelay(t *testing.T) {
	c := NewCopier(&memoryWriter{}, nil, DefaultToasts(), 300*time.Millisecond)
	defer c.Close()

	ctx := context.Background()
	if err := c.Copy(ctx, "first"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	if err := c.Copy(ctx, "second"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	if !c.Copied() {
		t.Error("second copy should have restarted the reset delay")
	}
	waitReset(t, c)
	if c.Copied() {
		t.Error("expected Copied false after the restarted delay")
	}
}

func TestCopyWithoutPromotion(t *testing.T) {
	n := &recordingNotifier{}
	c := NewCopier(&memoryWriter{}, n, DefaultToasts(), time.Second)
	defer c.Close()

	if err := c.Copy(context.Background(), "text", WithoutPromotion()); err != nil {
		t.Fatal(err)
	}
	toast := n.last()
	if toast.Title != "复制成功！" || toast.Action != nil {
		t.Errorf("expected plain success toast, got %+v", toast)
	}
	if toast.Duration != 2*time.Second {
		t.Errorf("success duration = %v", toast.Duration)
	}
}

func TestCopyEmptyText(t *testing.T) {
	w := &memoryWriter{}
	n := &recordingNotifier{}
	c := NewCopier(w, n, DefaultToasts(), time.Second)
	defer c.Close()

	for _, text := range []string{"", "   ", "\n\t"} {
		err := c.Copy(context.Background(), text)
		if !errors.Is(err, ErrEmptyText) {
			t.Errorf("Copy(%q) = %v, want ErrEmptyText", text, err)
		}
		if n.last().Variant != VariantDestructive {
			t.Errorf("Copy(%q): expected destructive toast", text)
		}
	}
	if c.Copied() {
		t.Error("empty copy must not set Copied")
	}
	if w.text != "" {
		t.Error("empty copy must not reach the writer")
	}
}

func TestCopyWriteFailure(t *testing.T) {
	boom := errors.New("permission denied")
	n := &recordingNotifier{}
	c := NewCopier(&memoryWriter{err: boom}, n, DefaultToasts(), time.Second)
	defer c.Close()

	err := c.Copy(context.Background(), "text")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
	if c.Copied() || c.Copying() {
		t.Error("failed copy must leave Copied and Copying false")
	}
	toast := n.last()
	if toast.Variant != VariantDestructive || toast.Title != "复制失败" {
		t.Errorf("expected error toast, got %+v", toast)
	}
}

func TestCloseClearsCopied(t *testing.T) {
	c := NewCopier(&memoryWriter{}, nil, DefaultToasts(), time.Hour)
	if err := c.Copy(context.Background(), "text"); err != nil {
		t.Fatal(err)
	}
	c.Close()
	if c.Copied() {
		t.Error("expected Copied false after Close")
	}
	waitReset(t, c)
}

func TestNewCopierDefaultDelay(t *testing.T) {
	c := NewCopier(&memoryWriter{}, nil, Toasts{}, 0)
	if c.ResetDelay() != DefaultResetDelay {
		t.Errorf("ResetDelay = %v", c.ResetDelay())
	}
}

type fakeSharer struct {
	err  error
	data ShareData
}

func (s *fakeSharer) Share(_ context.Context, d ShareData) error {
	s.data = d
	return s.err
}

func TestShareIgnoresCancel(t *testing.T) {
	s := &fakeSharer{err: ErrShareCanceled}
	w := &memoryWriter{}
	n := &recordingNotifier{}
	data := ShareData{Title: "T", URL: "https://nanobanana.fans/prompts/a"}

	if err := Share(context.Background(), s, data, w, n, DefaultToasts()); err != nil {
		t.Fatalf("Share: %v", err)
	}
	if s.data != data {
		t.Errorf("shared %+v", s.data)
	}
	if w.text != "" || len(n.toasts) != 0 {
		t.Error("native share must not fall back or notify")
	}
}

func TestShareFallbackCopiesURL(t *testing.T) {
	w := &memoryWriter{}
	n := &recordingNotifier{}
	data := ShareData{URL: "https://nanobanana.fans/prompts/a"}

	if err := Share(context.Background(), nil, data, w, n, DefaultToasts()); err != nil {
		t.Fatalf("Share: %v", err)
	}
	if w.text != data.URL {
		t.Errorf("clipboard = %q", w.text)
	}
	if n.last().Title != "Link copied!" {
		t.Errorf("toast = %+v", n.last())
	}
}

func TestShareFallbackFailure(t *testing.T) {
	w := &memoryWriter{err: errors.New("denied")}
	if err := Share(context.Background(), nil, ShareData{URL: "x"}, w, nil, DefaultToasts()); err == nil {
		t.Error("expected an error when the fallback write fails")
	}
}

func TestToastsFromConfig(t *testing.T) {
	cfg := config.DefaultToastConfig()
	cfg.ProVersionAffiliateLink = ""
	toasts := ToastsFromConfig(cfg)
	if toasts.Promotion.Action != nil {
		t.Error("promotion without an affiliate link should have no action")
	}

	toasts = DefaultToasts()
	a := toasts.Promotion.Action
	if a == nil || a.Label != "立即体验 →" || !a.NewTab {
		t.Errorf("action = %+v", a)
	}
	if toasts.Error.Variant != VariantDestructive {
		t.Error("error toast should be destructive")
	}
}

func TestToastJSON(t *testing.T) {
	b, err := json.Marshal(DefaultToasts().Promotion)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if got["duration_ms"] != float64(4000) || got["variant"] != "default" {
		t.Errorf("json = %s", b)
	}
}

func TestDetect(t *testing.T) {
	installed := func(names ...string) func(string) (string, error) {
		return func(name string) (string, error) {
			for _, n := range names {
				if n == name {
					return "/usr/bin/" + name, nil
				}
			}
			return "", exec.ErrNotFound
		}
	}

	tests := []struct {
		goos    string
		wayland bool
		have    []string
		want    string
	}{
		{"darwin", false, []string{"pbcopy"}, "pbcopy"},
		{"windows", false, []string{"clip"}, "clip"},
		{"linux", true, []string{"wl-copy", "xclip"}, "wl-copy"},
		{"linux", false, []string{"wl-copy", "xclip"}, "xclip"},
		{"linux", false, []string{"xsel"}, "xsel"},
	}
	for _, tt := range tests {
		w, err := detect(tt.goos, tt.wayland, installed(tt.have...))
		if err != nil {
			t.Errorf("%s: %v", tt.goos, err)
			continue
		}
		if w.Name != tt.want {
			t.Errorf("%s wayland=%v: got %s, want %s", tt.goos, tt.wayland, w.Name, tt.want)
		}
	}

	if _, err := detect("linux", false, installed()); !errors.Is(err, ErrNoClipboard) {
		t.Errorf("expected ErrNoClipboard, got %v", err)
	}
}

func TestTerminalNotifier(t *testing.T) {
	var buf bytes.Buffer
	TerminalNotifier{Out: &buf}.Notify(DefaultToasts().Promotion)
	out := buf.String()
	if !strings.HasPrefix(out, "✔ ✨ Pro 版推荐") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "https://example.com/pro?ref=your-affiliate-code") {
		t.Errorf("missing action link: %q", out)
	}

	buf.Reset()
	TerminalNotifier{Out: &buf}.Notify(DefaultToasts().Error)
	if !strings.HasPrefix(buf.String(), "✖") {
		t.Errorf("output = %q", buf.String())
	}
}
