package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/neuroad/neuroad-cli/internal/i18n"
	"github.com/neuroad/neuroad-cli/internal/theme"
)

// NavItems are the header tabs, in display order.
var NavItems = []i18n.Key{i18n.KeyHome, i18n.KeyNewProject, i18n.KeyProjects}

// HeaderState is what the header shows.
type HeaderState struct {
	Active   int
	User     string
	Checking bool
	Spinner  string
	Lang     i18n.Lang
	Mode     theme.Mode
}

// Header renders the top bar: logo, navigation, language and theme
// indicators, and the signed-in user. Items are mirrored in RTL.
func Header(s *theme.Styles, width int, st HeaderState) string {
	t := func(k i18n.Key) string { return i18n.Translate(st.Lang, k) }
	rtl := st.Lang.Direction() == i18n.RTL

	logo := s.LogoDot.Render("◉") + s.Logo.Render(" NeuroAd")

	tabs := make([]string, len(NavItems))
	for i, k := range NavItems {
		num := string(rune('1' + i))
		if i == st.Active {
			tabs[i] = s.NavActive.Render(num + " " + t(k))
		} else {
			tabs[i] = s.NavInactive.Render(num + " " + t(k))
		}
	}
	if rtl {
		for i, j := 0, len(tabs)-1; i < j; i, j = i+1, j-1 {
			tabs[i], tabs[j] = tabs[j], tabs[i]
		}
	}
	nav := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	langLabel := "EN"
	if st.Lang == i18n.English {
		langLabel = "ع"
	}
	modeGlyph := "☾"
	if st.Mode == theme.Dark {
		modeGlyph = "☀"
	}

	var user string
	switch {
	case st.Checking:
		user = st.Spinner
	case st.User != "":
		user = s.UserName.Render(st.User)
	default:
		user = s.HelpKey.Render(t(i18n.KeyLogin))
	}

	toggles := s.Help.Render(langLabel) + "  " + s.Help.Render(modeGlyph) + "  " + user

	left, right := logo+"  "+nav, toggles
	if rtl {
		left, right = toggles, nav+"  "+logo
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right)-4, 0)
	return s.HeaderContainer.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}

// NavFromClick returns the tab at column x on the header row, or -1.
func NavFromClick(lang i18n.Lang, x int) int {
	widths := make([]int, len(NavItems))
	for i, k := range NavItems {
		widths[i] = lipgloss.Width(i18n.Translate(lang, k)) + 2 + 4 + 1
	}
	pos := 2 + lipgloss.Width("◉ NeuroAd") + 2
	for i, w := range widths {
		if x >= pos && x < pos+w {
			return i
		}
		pos += w
	}
	return -1
}
