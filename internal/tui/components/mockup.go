package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/neuroad/neuroad-cli/internal/i18n"
	"github.com/neuroad/neuroad-cli/internal/theme"
)

// MockupHashtags is the overlay text on the TikTok frame.
const MockupHashtags = "#إعلان #تسويق #عرض_خاص"

// Mockup previews a generated asset inside a social network frame.
type Mockup struct {
	Company string
	Image   string
	Video   string
}

func initial(company string) string {
	for _, r := range company {
		return strings.ToUpper(string(r))
	}
	return "A"
}

// Handle is the TikTok username: lowercase with whitespace removed.
func Handle(company string) string {
	h := strings.Join(strings.Fields(strings.ToLower(company)), "")
	if h == "" {
		return "brand"
	}
	return h
}

// Instagram renders a feed post.
func (m Mockup) Instagram(s *theme.Styles, l i18n.Lang, width int) string {
	name := m.Company
	if name == "" {
		name = "Brand"
	}
	avatar := lipgloss.NewStyle().
		Background(s.Palette.Purple).
		Foreground(s.Palette.OnAccent).
		Bold(true).
		Padding(0, 1).
		Render(initial(m.Company))

	header := avatar + " " + s.Value.Bold(true).Render(name) + "  " + s.ValueMuted.Render(i18n.Translate(l, i18n.KeySponsored)) + "   ⋯"
	body := s.Card.Width(width - 4).Align(lipgloss.Center).Render("\n🖼\n" + s.ValueMuted.Render(truncate(m.Image, width-8)) + "\n")
	actions := "♡  💬  ➤" + strings.Repeat(" ", max(width-16, 1)) + "🔖"
	likes := s.Value.Bold(true).Render("1,234 " + i18n.Translate(l, i18n.KeyLikes))

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(i18n.Translate(l, i18n.KeyInstagramMockup)),
		header, body, actions, likes)
	return s.Phone.Width(width).Render(content)
}

// TikTok renders a vertical video frame. It shows the video when there is
// one, else the image.
func (m Mockup) TikTok(s *theme.Styles, l i18n.Lang, width int) string {
	media := m.Image
	glyph := "🖼"
	if m.Video != "" {
		media = m.Video
		glyph = "▶"
	}

	inner := width - 4
	screen := lipgloss.NewStyle().
		Background(lipgloss.Color("#000000")).
		Foreground(lipgloss.Color("#ffffff")).
		Width(inner).
		Height(inner * 16 / 9 / 2)

	side := "♡ 45.2K\n💬 892\n🔖 1.2K"
	bottom := "@" + Handle(m.Company) + "\n" + MockupHashtags

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, glyph),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, truncate(media, inner-2)),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Right, side),
		bottom,
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(i18n.Translate(l, i18n.KeyTiktokMockup)),
		s.Phone.Render(screen.Render(content)),
	)
}
