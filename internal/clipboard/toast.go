// Package clipboard implements copy-to-clipboard with a self-resetting
// "copied" flag, toast notifications and a share fallback.
package clipboard

import (
	"encoding/json"
	"time"

	"github.com/nanobanana-fans/nanobanana/internal/config"
)

// Variant is the visual style of a toast.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Action is an optional link button rendered inside a toast.
type Action struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	NewTab bool   `json:"new_tab"`
}

// Toast is a transient notification. A zero Duration leaves the choice to
// the notifier.
type Toast struct {
	Title       string
	Description string
	Variant     Variant
	Duration    time.Duration
	Action      *Action
}

func (t Toast) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Variant     Variant `json:"variant"`
		DurationMS  int64   `json:"duration_ms,omitempty"`
		Action      *Action `json:"action,omitempty"`
	}{t.Title, t.Description, t.Variant, t.Duration.Milliseconds(), t.Action})
}

// Notifier displays toasts.
type Notifier interface {
	Notify(Toast)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Toast)

func (f NotifierFunc) Notify(t Toast) { f(t) }

// Toasts holds the toast templates used by Copier and Share.
type Toasts struct {
	Promotion  Toast `json:"promotion"`   // after a successful copy
	Success    Toast `json:"success"`     // after a successful copy without promotion
	Error      Toast `json:"error"`       // empty text or failed write
	LinkCopied Toast `json:"link_copied"` // share fallback
}

// ToastsFromConfig builds the toast templates from configuration.
func ToastsFromConfig(cfg config.ToastConfig) Toasts {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }

	promo := Toast{
		Title:       cfg.CopyPrompt.Title,
		Description: cfg.CopyPrompt.Message,
		Variant:     VariantDefault,
		Duration:    ms(cfg.CopyPrompt.DurationMS),
	}
	if cfg.ProVersionAffiliateLink != "" {
		promo.Action = &Action{
			Label:  cfg.CopyPrompt.ActionButtonText,
			Href:   cfg.ProVersionAffiliateLink,
			NewTab: cfg.CopyPrompt.OpenInNewTab,
		}
	}

	return Toasts{
		Promotion: promo,
		Success: Toast{
			Title:       cfg.CopySuccess.Title,
			Description: cfg.CopySuccess.Message,
			Variant:     VariantDefault,
			Duration:    ms(cfg.CopySuccess.DurationMS),
		},
		Error: Toast{
			Title:       cfg.CopyError.Title,
			Description: cfg.CopyError.Message,
			Variant:     VariantDestructive,
			Duration:    ms(cfg.CopyError.DurationMS),
		},
		LinkCopied: Toast{
			Title:       cfg.LinkCopied.Title,
			Description: cfg.LinkCopied.Message,
			Variant:     VariantDefault,
			Duration:    ms(cfg.LinkCopied.DurationMS),
		},
	}
}

// DefaultToasts returns the toast templates of the default configuration.
func DefaultToasts() Toasts {
	return ToastsFromConfig(config.DefaultToastConfig())
}
