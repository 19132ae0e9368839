package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neuroad/neuroad-cli/internal/i18n"
)

func (a *App) handleHomeKey(msg tea.KeyMsg) tea.Cmd {
	signedIn := a.deps.Auth.User() != nil
	switch {
	case key.Matches(msg, a.keys.Enter), key.Matches(msg, a.keys.New):
		return a.navigate(ScreenWizard)
	case msg.String() == "p":
		return a.navigate(ScreenProjects)
	case key.Matches(msg, a.keys.Login) && !signedIn:
		return a.startLogin()
	case key.Matches(msg, a.keys.Logout) && signedIn:
		return a.logout()
	}
	return nil
}

func (a *App) logout() tea.Cmd {
	store := a.deps.Auth
	return func() tea.Msg {
		return LogoutMsg{Err: store.Logout(context.Background())}
	}
}

func (a *App) viewHome(width int) string {
	s := a.styles
	center := lipgloss.Center

	logo := s.LogoDot.Render("◉") + s.Logo.Render(" NeuroAd")
	title := s.Title.Render(a.t(i18n.KeyHeroTitle))
	sub := s.Subtitle.Width(min(60, width)).Align(center).Render(a.t(i18n.KeyHeroSubtitle))

	start := s.ButtonPrimary.Render("enter  " + a.t(i18n.KeyStartNow))
	view := s.ButtonSecondary.Render("p  " + a.t(i18n.KeyViewProjects))
	buttons := []string{start, "  ", view}
	if a.rtl() {
		buttons = []string{view, "  ", start}
	}

	var session string
	if u := a.deps.Auth.User(); u != nil {
		session = s.ValueMuted.Render(u.Email) + "  " + s.HelpKey.Render("o") + " " + s.Help.Render(a.t(i18n.KeyLogout))
	} else if !a.deps.Auth.Checking() {
		session = s.HelpKey.Render("i") + " " + s.Help.Render(a.t(i18n.KeyLogin))
	}

	features := lipgloss.JoinHorizontal(lipgloss.Top,
		a.featureCard("🧠", i18n.KeyPsychStrategy, i18n.KeySelectStrategy),
		" ",
		a.featureCard("🎨", i18n.KeyBrandAnalysis, i18n.KeyExtractData),
		" ",
		a.featureCard("📱", i18n.KeyMockupPreview, i18n.KeyPlatform),
	)

	body := lipgloss.JoinVertical(center,
		"",
		logo,
		"",
		title,
		sub,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
		"",
		session,
		"",
		features,
	)
	return lipgloss.PlaceHorizontal(width, center, body)
}

func (a *App) featureCard(icon string, title, sub i18n.Key) string {
	s := a.styles
	return s.Card.Width(24).Align(lipgloss.Center).Render(lipgloss.JoinVertical(lipgloss.Center,
		icon,
		s.Value.Bold(true).Render(a.t(title)),
		s.ValueMuted.Render(a.t(sub)),
	))
}
