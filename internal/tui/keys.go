package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keyboard shortcuts. Screens with text inputs only
// honour the ctrl and function bindings so typing is never intercepted.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Tab1  key.Binding
	Tab2  key.Binding
	Tab3  key.Binding
	Focus key.Binding
	Blur  key.Binding

	// Actions
	Enter     key.Binding
	Back      key.Binding
	Refresh   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	// Preferences
	Language key.Binding
	Theme    key.Binding

	// Session
	Login  key.Binding
	Logout key.Binding

	// Wizard
	NextStep    key.Binding
	PrevStep    key.Binding
	Extract     key.Binding
	AddStrength key.Binding
	RemoveItem  key.Binding
	Submit      key.Binding

	// Projects
	New      key.Binding
	Delete   key.Binding
	Generate key.Binding
	Video    key.Binding
	Duration key.Binding
	Size     key.Binding
	Copy     key.Binding
	Export   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Tab1: key.NewBinding(key.WithKeys("1")),
		Tab2: key.NewBinding(key.WithKeys("2")),
		Tab3: key.NewBinding(key.WithKeys("3")),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Blur: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Language: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "language"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		Login: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "login"),
		),
		Logout: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "logout"),
		),
		NextStep: key.NewBinding(
			key.WithKeys("ctrl+n", "pgdown"),
			key.WithHelp("ctrl+n", "next"),
		),
		PrevStep: key.NewBinding(
			key.WithKeys("ctrl+p", "pgup"),
			key.WithHelp("ctrl+p", "previous"),
		),
		Extract: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "analyze"),
		),
		AddStrength: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "add"),
		),
		RemoveItem: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "remove"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "create"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Generate: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "images"),
		),
		Video: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "video"),
		),
		Duration: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "duration"),
		),
		Size: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "size"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export"),
		),
	}
}
