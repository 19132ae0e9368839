package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestCopyPrefersSystemClipboard(t *testing.T) {
	var copied string
	var term bytes.Buffer
	c := NewWith(func(s string) error { copied = s; return nil }, &term)

	method, err := c.Copy("hello")
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if method != MethodSystem {
		t.Errorf("Expected system method, got %s", method)
	}
	if copied != "hello" {
		t.Errorf("Expected hello copied, got %q", copied)
	}
	if term.Len() != 0 {
		t.Error("Expected nothing written to the terminal")
	}
}

func TestCopyFallsBackToOSC52(t *testing.T) {
	var term bytes.Buffer
	c := NewWith(func(string) error { return errors.New("no display") }, &term)

	method, err := c.Copy("مرحبا")
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if method != MethodOSC52 {
		t.Errorf("Expected osc52 method, got %s", method)
	}

	encoded := base64.StdEncoding.EncodeToString([]byte("مرحبا"))
	if !strings.Contains(term.String(), encoded) {
		t.Errorf("Expected OSC52 payload %q in %q", encoded, term.String())
	}
	if !strings.HasPrefix(term.String(), "\x1b]52;") {
		t.Errorf("Expected OSC52 prefix, got %q", term.String())
	}
}

func TestCopyEmpty(t *testing.T) {
	c := NewWith(func(string) error { return nil }, nil)
	if _, err := c.Copy(""); !errors.Is(err, ErrEmpty) {
		t.Errorf("Expected ErrEmpty, got %v", err)
	}
}

func TestCopyWithoutTerminalReturnsSystemError(t *testing.T) {
	c := NewWith(func(string) error { return errors.New("no display") }, nil)
	if _, err := c.Copy("x"); err == nil {
		t.Error("Expected error when both paths are unavailable")
	}
}
