// Package clipboard copies text to the system clipboard, falling back to an
// OSC52 escape sequence that asks the terminal to do it.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Method reports which path performed the copy.
type Method string

const (
	MethodSystem Method = "system"
	MethodOSC52  Method = "osc52"
)

var ErrEmpty = errors.New("nothing to copy")

// Copier writes text to a clipboard. The zero value is not usable; use New.
type Copier struct {
	system   func(string) error
	terminal io.Writer
	tmux     bool
}

// New returns a Copier using the system clipboard and, failing that, OSC52
// written to the terminal on stderr.
func New() *Copier {
	return &Copier{
		system:   systemWrite,
		terminal: os.Stderr,
		tmux:     os.Getenv("TMUX") != "",
	}
}

// NewWith is New with explicit backends, for tests.
func NewWith(system func(string) error, terminal io.Writer) *Copier {
	return &Copier{system: system, terminal: terminal}
}

func systemWrite(text string) error {
	if clipboard.Unsupported {
		return errors.New("no system clipboard available")
	}
	return clipboard.WriteAll(text)
}

// Copy writes text and reports the method that succeeded.
func (c *Copier) Copy(text string) (Method, error) {
	if text == "" {
		return "", ErrEmpty
	}

	sysErr := c.system(text)
	if sysErr == nil {
		return MethodSystem, nil
	}

	if c.terminal == nil {
		return "", sysErr
	}

	seq := osc52.New(text)
	if c.tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(c.terminal); err != nil {
		return "", fmt.Errorf("clipboard unavailable (%v) and terminal copy failed: %w", sysErr, err)
	}
	return MethodOSC52, nil
}
