// Package components holds the reusable widgets of the terminal UI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/neuroad/neuroad-cli/internal/i18n"
	"github.com/neuroad/neuroad-cli/internal/theme"
)

// SwipeThreshold is how far, in cells, a drag must travel to change slides.
const SwipeThreshold = 5

// Carousel pages through generated images one at a time. Navigation is
// clamped at both ends.
type Carousel struct {
	items []string
	index int
}

func NewCarousel(items []string) *Carousel {
	c := &Carousel{}
	c.SetItems(items)
	return c
}

// SetItems replaces the slides, keeping the position when it is still valid.
func (c *Carousel) SetItems(items []string) {
	c.items = append([]string(nil), items...)
	if c.index >= len(c.items) {
		c.index = max(len(c.items)-1, 0)
	}
}

func (c *Carousel) Len() int { return len(c.items) }
func (c *Carousel) Index() int { return c.index }

// Current returns the visible slide, or "" when empty.
func (c *Carousel) Current() string {
	if len(c.items) == 0 {
		return ""
	}
	return c.items[c.index]
}

// Next advances one slide. It reports whether the position changed.
func (c *Carousel) Next() bool {
	if c.index >= len(c.items)-1 {
		return false
	}
	c.index++
	return true
}

// Prev goes back one slide.
func (c *Carousel) Prev() bool {
	if c.index <= 0 {
		return false
	}
	c.index--
	return true
}

// Jump shows slide i.
func (c *Carousel) Jump(i int) bool {
	if i < 0 || i >= len(c.items) || i == c.index {
		return false
	}
	c.index = i
	return true
}

// Left handles the left arrow. In right-to-left layouts the arrows are
// mirrored so that left moves forward.
func (c *Carousel) Left(rtl bool) bool {
	if rtl {
		return c.Next()
	}
	return c.Prev()
}

// Right handles the right arrow.
func (c *Carousel) Right(rtl bool) bool {
	if rtl {
		return c.Prev()
	}
	return c.Next()
}

// Swipe handles a drag from startX to endX. Dragging left past the
// threshold advances, dragging right goes back.
func (c *Carousel) Swipe(startX, endX int) bool {
	switch d := startX - endX; {
	case d > SwipeThreshold:
		return c.Next()
	case d < -SwipeThreshold:
		return c.Prev()
	}
	return false
}

// View renders the current slide with arrows and position dots.
func (c *Carousel) View(s *theme.Styles, l i18n.Lang, resolve func(string) string, width int) string {
	if len(c.items) == 0 {
		return ""
	}
	rtl := l.Direction() == i18n.RTL

	prev, next := "◀", "▶"
	if rtl {
		prev, next = "▶", "◀"
	}
	arrow := func(glyph string, enabled bool) string {
		if enabled {
			return s.HelpKey.Render(glyph)
		}
		return s.ValueMuted.Render(glyph)
	}
	prevArrow := arrow(prev, c.index > 0)
	nextArrow := arrow(next, c.index < len(c.items)-1)

	label := fmt.Sprintf(i18n.Translate(l, i18n.KeyImageN), c.index+1)
	url := c.items[c.index]
	if resolve != nil {
		url = resolve(url)
	}

	frameWidth := max(width-4, 20)
	frame := s.Card.Width(frameWidth).Render(lipgloss.JoinVertical(lipgloss.Center,
		"",
		s.Title.Render("🖼  "+label),
		s.ValueMuted.Render(truncate(url, frameWidth-4)),
		"",
	))

	var bar string
	if rtl {
		bar = nextArrow + "  " + c.dots(s) + "  " + prevArrow
	} else {
		bar = prevArrow + "  " + c.dots(s) + "  " + nextArrow
	}
	if len(c.items) == 1 {
		bar = ""
	}

	return lipgloss.JoinVertical(lipgloss.Center, frame, bar)
}

func (c *Carousel) dots(s *theme.Styles) string {
	parts := make([]string, len(c.items))
	for i := range c.items {
		if i == c.index {
			parts[i] = s.StepCurrent.Render("━━")
		} else {
			parts[i] = s.StepPending.Render("•")
		}
	}
	return strings.Join(parts, " ")
}

func truncate(s string, n int) string {
	if n <= 1 || lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) > n-1 {
		r = r[:n-1]
	}
	return string(r) + "…"
}
