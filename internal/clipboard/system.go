package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNoClipboard is returned when no clipboard command is installed.
var ErrNoClipboard = errors.New("no clipboard command found (install pbcopy, wl-copy, xclip or xsel)")

// CommandWriter writes to the OS clipboard by piping text into a command.
type CommandWriter struct {
	Name string
	Args []string
}

// candidates lists clipboard commands for an OS in preference order.
func candidates(goos string, wayland bool) []CommandWriter {
	switch goos {
	case "darwin":
		return []CommandWriter{{Name: "pbcopy"}}
	case "windows":
		return []CommandWriter{{Name: "clip"}}
	}
	var cs []CommandWriter
	if wayland {
		cs = append(cs, CommandWriter{Name: "wl-copy"})
	}
	return append(cs,
		CommandWriter{Name: "xclip", Args: []string{"-selection", "clipboard"}},
		CommandWriter{Name: "xsel", Args: []string{"--clipboard", "--input"}},
	)
}

// DetectCommandWriter returns the first clipboard command available on PATH.
func DetectCommandWriter() (*CommandWriter, error) {
	return detect(runtime.GOOS, os.Getenv("WAYLAND_DISPLAY") != "", exec.LookPath)
}

func detect(goos string, wayland bool, lookPath func(string) (string, error)) (*CommandWriter, error) {
	for _, c := range candidates(goos, wayland) {
		if _, err := lookPath(c.Name); err == nil {
			return &c, nil
		}
	}
	return nil, ErrNoClipboard
}

func (w *CommandWriter) WriteText(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, w.Name, w.Args...)
	cmd.Stdin = strings.NewReader(text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", w.Name, err, msg)
		}
		return fmt.Errorf("%s: %w", w.Name, err)
	}
	return nil
}

// TerminalNotifier prints toasts as lines of text.
type TerminalNotifier struct {
	Out io.Writer
}

func (n TerminalNotifier) Notify(t Toast) {
	mark := "✔"
	if t.Variant == VariantDestructive {
		mark = "✖"
	}
	fmt.Fprintf(n.Out, "%s %s", mark, t.Title)
	if t.Description != "" {
		fmt.Fprintf(n.Out, " %s", t.Description)
	}
	fmt.Fprintln(n.Out)
	if t.Action != nil {
		fmt.Fprintf(n.Out, "  %s %s\n", t.Action.Label, t.Action.Href)
	}
}
