package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neuroad/neuroad-cli/internal/auth"
	"github.com/neuroad/neuroad-cli/internal/i18n"
	"github.com/neuroad/neuroad-cli/internal/tui/components"
)

// LoginTimeout bounds how long the UI waits for the browser to return.
const LoginTimeout = 5 * time.Minute

type loginScreen struct {
	server *auth.CallbackServer
	url    string
	stop   context.CancelFunc
}

// cancel abandons a pending login, if any.
func (l *loginScreen) cancel() {
	if l.stop != nil {
		l.stop()
		l.stop = nil
	}
	if l.server != nil {
		l.server.Close()
		l.server = nil
	}
	l.url = ""
}

func (a *App) startLogin() tea.Cmd {
	a.login.cancel()
	a.screen = ScreenLogin
	provider := a.deps.AuthURL
	logger := a.logger
	return func() tea.Msg {
		srv, err := auth.StartCallbackServer("127.0.0.1:0")
		if err != nil {
			return LoginStartedMsg{Err: err}
		}
		url := auth.LoginURL(provider, srv.ReturnURL())
		if err := auth.OpenBrowser(url); err != nil {
			logger.Warn("could not open browser", "error", err)
		}
		return LoginStartedMsg{Server: srv, URL: url}
	}
}

func (a *App) handleLoginStarted(msg LoginStartedMsg) tea.Cmd {
	if msg.Err != nil {
		a.screen = ScreenHome
		a.notifyError(i18n.KeyLoginFailed, msg.Err)
		return nil
	}
	if a.screen != ScreenLogin {
		// Cancelled while the server was starting.
		msg.Server.Close()
		return nil
	}

	ctx, stop := context.WithTimeout(context.Background(), LoginTimeout)
	a.login.server = msg.Server
	a.login.url = msg.URL
	a.login.stop = stop

	srv := msg.Server
	store := a.deps.Auth
	return func() tea.Msg {
		defer srv.Close()
		fragment, err := srv.Wait(ctx)
		if err != nil {
			return LoginDoneMsg{Err: err}
		}
		return LoginDoneMsg{Route: store.HandleCallback(ctx, fragment)}
	}
}

func (a *App) handleLoginDone(msg LoginDoneMsg) tea.Cmd {
	a.login.cancel()

	if errors.Is(msg.Err, context.Canceled) || errors.Is(msg.Err, auth.ErrCallbackClosed) {
		return nil
	}
	if msg.Err != nil || a.deps.Auth.User() == nil {
		a.screen = ScreenHome
		a.notifyError(i18n.KeyLoginFailed, msg.Err)
		return nil
	}

	a.notify(components.ToastSuccess, a.t(i18n.KeySuccess))
	if msg.Route == auth.RouteProjects {
		return a.navigate(ScreenProjects)
	}
	a.screen = ScreenHome
	return nil
}

func (a *App) viewLogin(width int) string {
	s := a.styles
	lines := []string{
		"",
		s.Title.Render(a.t(i18n.KeyLogin)),
		a.spinner.View() + " " + s.Value.Render(a.t(i18n.KeyWaitingForLogin)),
		"",
	}
	if a.login.url != "" {
		lines = append(lines, s.ValueMuted.Width(min(width, 90)).Render(a.login.url))
	}
	return lipgloss.JoinVertical(a.align(), lines...)
}
