package clipboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultResetDelay is how long Copied stays true after a successful copy.
const DefaultResetDelay = 2 * time.Second

var ErrEmptyText = errors.New("nothing to copy")

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(ctx context.Context, text string) error

func (f WriterFunc) WriteText(ctx context.Context, text string) error { return f(ctx, text) }

type copyOptions struct {
	promotion bool
}

// CopyOption configures a single Copy call.
type CopyOption func(*copyOptions)

// WithoutPromotion shows the plain success toast instead of the
// pro-version promotion.
func WithoutPromotion() CopyOption {
	return func(o *copyOptions) { o.promotion = false }
}

// Copier copies text and tracks whether a copy happened recently.
type Copier struct {
	writer     Writer
	notifier   Notifier
	toasts     Toasts
	resetDelay time.Duration

	mu      sync.Mutex
	copied  bool
	copying bool
	gen     uint64
	timer   *time.Timer
	resetCh chan struct{}
}

// NewCopier creates a Copier. A non-positive resetDelay uses
// DefaultResetDelay. A nil notifier discards toasts.
func NewCopier(w Writer, n Notifier, toasts Toasts, resetDelay time.Duration) *Copier {
	if resetDelay <= 0 {
		resetDelay = DefaultResetDelay
	}
	if n == nil {
		n = NotifierFunc(func(Toast) {})
	}
	return &Copier{writer: w, notifier: n, toasts: toasts, resetDelay: resetDelay}
}

// Copy writes text to the clipboard and notifies the result. On success
// Copied reports true until the reset delay elapses; each success restarts
// the delay.
func (c *Copier) Copy(ctx context.Context, text string, opts ...CopyOption) error {
	o := copyOptions{promotion: true}
	for _, opt := range opts {
		opt(&o)
	}

	if strings.TrimSpace(text) == "" {
		c.notifier.Notify(c.toasts.Error)
		return ErrEmptyText
	}

	c.mu.Lock()
	c.copying = true
	c.mu.Unlock()

	if err := c.writer.WriteText(ctx, text); err != nil {
		c.mu.Lock()
		c.copying = false
		c.copied = false
		c.mu.Unlock()
		c.notifier.Notify(c.toasts.Error)
		return fmt.Errorf("writing to clipboard: %w", err)
	}

	c.mu.Lock()
	c.copying = false
	c.copied = true
	c.gen++
	gen := c.gen
	if c.resetCh == nil {
		c.resetCh = make(chan struct{})
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.resetDelay, func() { c.reset(gen) })
	c.mu.Unlock()

	if o.promotion {
		c.notifier.Notify(c.toasts.Promotion)
	} else {
		c.notifier.Notify(c.toasts.Success)
	}
	return nil
}

func (c *Copier) reset(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.clearLocked()
}

func (c *Copier) clearLocked() {
	c.copied = false
	if c.resetCh != nil {
		close(c.resetCh)
		c.resetCh = nil
	}
}

// Copied reports whether a copy succeeded within the reset delay.
func (c *Copier) Copied() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copied
}

// Copying reports whether a write is in flight.
func (c *Copier) Copying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copying
}

// ResetDelay returns how long Copied stays true.
func (c *Copier) ResetDelay() time.Duration {
	return c.resetDelay
}

// WaitReset blocks until Copied turns false or ctx is done.
func (c *Copier) WaitReset(ctx context.Context) error {
	c.mu.Lock()
	ch := c.resetCh
	c.mu.Unlock()
	if ch == nil {
		return nil
	}
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the pending reset timer and clears the copied flag.
func (c *Copier) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
	c.clearLocked()
}
