package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/neuroad/neuroad-cli/internal/theme"
)

// ToastDuration is how long a notification stays visible.
const ToastDuration = 5 * time.Second

// Toast tones.
const (
	ToastInfo    = "info"
	ToastSuccess = "success"
	ToastError   = "error"
)

// Toast is a transient notification in the footer.
type Toast struct {
	Text    string
	Tone    string
	Expires time.Time
}

// Active reports whether the toast should still be shown at now.
func (t Toast) Active(now time.Time) bool {
	return t.Text != "" && now.Before(t.Expires)
}

// KeyHelp renders a single key binding hint
func KeyHelp(s *theme.Styles, key, label string) string {
	return s.HelpKey.Render(key) + " " + s.Help.Render(label)
}

// HelpLine joins key hints.
func HelpLine(s *theme.Styles, pairs ...string) string {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, KeyHelp(s, pairs[i], pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}

// Footer renders the help line with the toast, if any, on the far side.
func Footer(s *theme.Styles, width int, help string, toast Toast, now time.Time) string {
	var note string
	if toast.Active(now) {
		switch toast.Tone {
		case ToastSuccess:
			note = s.StatusSuccess.Render("● " + toast.Text)
		case ToastError:
			note = s.StatusError.Render("● " + toast.Text)
		default:
			note = s.StatusInfo.Render("● " + toast.Text)
		}
	}

	padding := max(width-lipgloss.Width(help)-lipgloss.Width(note)-4, 0)
	return s.FooterContainer.Width(width).Render(help + strings.Repeat(" ", padding) + note)
}
