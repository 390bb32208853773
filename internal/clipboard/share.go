package clipboard

import (
	"context"
	"errors"
	"fmt"
)

// ErrShareCanceled is returned by a Sharer when the user dismisses the
// share sheet.
var ErrShareCanceled = errors.New("share canceled")

// ShareData is what gets shared.
type ShareData struct {
	Title string
	Text  string
	URL   string
}

// Sharer is a native share facility.
type Sharer interface {
	Share(ctx context.Context, data ShareData) error
}

// Share shares data through sharer. Share errors, cancellation included,
// are not reported. With a nil sharer the URL is copied with fallback and
// the link-copied toast is shown.
func Share(ctx context.Context, sharer Sharer, data ShareData, fallback Writer, notifier Notifier, toasts Toasts) error {
	if sharer != nil {
		_ = sharer.Share(ctx, data)
		return nil
	}
	if fallback == nil {
		return errors.New("no share target available")
	}
	if err := fallback.WriteText(ctx, data.URL); err != nil {
		return fmt.Errorf("copying link: %w", err)
	}
	if notifier != nil {
		notifier.Notify(toasts.LinkCopied)
	}
	return nil
}
