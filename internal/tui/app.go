package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/auth"
	"github.com/neuroad/neuroad-cli/internal/clipboard"
	"github.com/neuroad/neuroad-cli/internal/config"
	"github.com/neuroad/neuroad-cli/internal/i18n"
	"github.com/neuroad/neuroad-cli/internal/logging"
	"github.com/neuroad/neuroad-cli/internal/theme"
	"github.com/neuroad/neuroad-cli/internal/tui/components"
)

// Deps are the services the UI drives. They are created once per process
// and shared by every screen.
type Deps struct {
	Client    *api.Client
	Catalog   *api.Catalog
	Auth      *auth.Store
	Lang      *i18n.Store
	Theme     *theme.Store
	Clipboard *clipboard.Copier

	// AuthURL is the identity provider login page.
	AuthURL string
	// ExportDir receives HTML exports.
	ExportDir string
	// ConfigChanges, when set, delivers the config after it changes on disk.
	ConfigChanges <-chan *config.Config
}

// App is the main TUI application model
type App struct {
	deps   Deps
	keys   KeyMap
	styles *theme.Styles
	logger *slog.Logger
	now    func() time.Time

	screen   Screen
	width    int
	height   int
	ready    bool
	quitting bool

	spinner spinner.Model
	modal   *components.Modal
	toast   components.Toast

	wiz    *wizardScreen
	list   *listScreen
	detail *detailScreen
	login  *loginScreen

	dragging bool
	dragX    int
}

// NewApp creates the model on the home screen.
func NewApp(deps Deps) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot

	styles := theme.New(deps.Theme.Mode())
	s.Style = styles.Spinner

	a := &App{
		deps:    deps,
		keys:    DefaultKeyMap(),
		styles:  styles,
		logger:  logging.WithComponent("tui"),
		now:     time.Now,
		screen:  ScreenHome,
		width:   80,
		height:  24,
		spinner: s,
		modal:   components.NewModal(styles, deps.Lang.Lang()),
	}
	a.wiz = newWizardScreen(deps.Client)
	a.list = newListScreen(deps.Client)
	a.detail = newDetailScreen(deps.Client, deps.Catalog)
	a.login = &loginScreen{}
	return a
}

// Screen returns the active screen.
func (a *App) Screen() Screen { return a.screen }

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.checkIdentity(), a.waitConfig())
}

func (a *App) lang() i18n.Lang { return a.deps.Lang.Lang() }

func (a *App) rtl() bool { return a.lang().Direction() == i18n.RTL }

func (a *App) align() lipgloss.Position { return theme.Align(a.rtl()) }

func (a *App) t(k i18n.Key) string { return a.deps.Lang.T(k) }

func (a *App) notify(tone, text string) {
	a.toast = components.Toast{Text: text, Tone: tone, Expires: a.now().Add(components.ToastDuration)}
}

func (a *App) notifyError(k i18n.Key, err error) {
	a.logger.Warn(i18n.Translate(i18n.English, k), "error", err)
	text := a.t(k)
	if detail := errorDetail(err); detail != "" {
		text += ": " + detail
	}
	a.notify(components.ToastError, text)
}

// errorDetail is the backend's message for an API error.
func errorDetail(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}

func (a *App) checkIdentity() tea.Cmd {
	store := a.deps.Auth
	return func() tea.Msg {
		return IdentityMsg{User: store.CheckIdentity(context.Background())}
	}
}

func (a *App) waitConfig() tea.Cmd {
	ch := a.deps.ConfigChanges
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return ConfigMsg{Config: cfg}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.ready = true
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case components.TipTickMsg:
		return a, a.detail.tips.Update(msg)

	case IdentityMsg:
		if msg.User != nil {
			a.logger.Info("signed in", "user", msg.User.Email)
		}

	case ConfigMsg:
		a.applyConfig(msg.Config)
		return a, a.waitConfig()

	case CatalogMsg:
		return a, a.handleCatalog(msg)
	case ExtractMsg:
		return a, a.handleExtract(msg)
	case UploadMsg:
		return a, a.handleUpload(msg)
	case SubmitMsg:
		return a, a.handleSubmit(msg)

	case ProjectsMsg:
		return a, a.handleProjects(msg)
	case DetailMsg:
		return a, a.handleDetail(msg)
	case GenerateMsg:
		return a, a.handleGenerate(msg)
	case DeleteMsg:
		return a, a.handleDelete(msg)
	case CopyMsg:
		a.handleCopy(msg)
	case ExportMsg:
		a.handleExport(msg)

	case LoginStartedMsg:
		return a, a.handleLoginStarted(msg)
	case LoginDoneMsg:
		return a, a.handleLoginDone(msg)
	case LogoutMsg:
		a.notify(components.ToastInfo, a.t(i18n.KeyLoggedOut))
		a.screen = ScreenHome
	}

	return a, nil
}

func (a *App) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if l, err := i18n.ParseLang(cfg.Language); err == nil && cfg.Language != "" {
		a.setLang(l)
	}
	if m, err := theme.ParseMode(cfg.Theme); err == nil && cfg.Theme != "" {
		a.setMode(m)
	}
}

func (a *App) setLang(l i18n.Lang) {
	a.deps.Lang.Set(l)
	a.modal.SetStyles(a.styles, l)
	a.wiz.relabel(l)
}

func (a *App) setMode(m theme.Mode) {
	a.deps.Theme.Set(m)
	a.styles = theme.New(m)
	a.spinner.Style = a.styles.Spinner
	a.modal.SetStyles(a.styles, a.lang())
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	a.quitting = true
	a.login.cancel()
	return a, tea.Quit
}

// navigate switches screen, loading whatever the screen needs.
func (a *App) navigate(s Screen) tea.Cmd {
	a.screen = s
	switch s {
	case ScreenWizard:
		return a.enterWizard()
	case ScreenProjects:
		return a.loadProjects()
	}
	return nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		return a.quit()
	}

	if a.modal.IsVisible() {
		cmd, result := a.modal.Update(msg)
		if result != nil {
			return a, tea.Batch(cmd, a.handleModalResult(result))
		}
		return a, cmd
	}

	// Generation replaces the whole screen until it returns.
	if a.detail.busy() {
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Language):
		a.setLang(a.lang().Other())
		return a, nil
	case key.Matches(msg, a.keys.Theme):
		a.setMode(a.deps.Theme.Mode().Other())
		return a, nil
	}

	switch a.screen {
	case ScreenWizard:
		return a, a.handleWizardKey(msg)
	case ScreenLogin:
		if key.Matches(msg, a.keys.Back) {
			a.login.cancel()
			a.screen = ScreenHome
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit()
	case key.Matches(msg, a.keys.Tab1):
		return a, a.navigate(ScreenHome)
	case key.Matches(msg, a.keys.Tab2):
		return a, a.navigate(ScreenWizard)
	case key.Matches(msg, a.keys.Tab3):
		return a, a.navigate(ScreenProjects)
	}

	switch a.screen {
	case ScreenHome:
		return a, a.handleHomeKey(msg)
	case ScreenProjects:
		return a, a.handleListKey(msg)
	case ScreenDetail:
		return a, a.handleDetailKey(msg)
	}
	return a, nil
}

func (a *App) handleModalResult(res *components.ModalResult) tea.Cmd {
	if res.Action != components.ModalConfirm {
		return nil
	}

	// Input modals confirm with the typed text; the intent waits on the screen.
	in, ok := res.Payload.(intent)
	if text, isText := res.Payload.(string); isText {
		in, ok = a.detail.pending, true
		a.detail.instructions = text
	}
	if !ok {
		return nil
	}

	switch in.kind {
	case intentDeleteFromList:
		return a.deleteFromList(in.id)
	case intentDeleteFromDetail:
		return a.deleteFromDetail()
	case intentImageInstructions:
		return a.startImages(a.detail.instructions)
	case intentVideoInstructions:
		a.notify(components.ToastInfo, a.t(i18n.KeyVideoStarted))
		return a.startVideo(a.detail.instructions)
	}
	return nil
}

func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.modal.IsVisible() || a.detail.busy() {
		return a, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if msg.Y <= 1 && a.screen != ScreenLogin {
				if s, ok := screenForNav(components.NavFromClick(a.lang(), msg.X)); ok {
					return a, a.navigate(s)
				}
				return a, nil
			}
			a.dragging = true
			a.dragX = msg.X
		case tea.MouseButtonWheelUp:
			a.scroll(-1)
		case tea.MouseButtonWheelDown:
			a.scroll(1)
		}

	case tea.MouseActionRelease:
		if a.dragging && a.screen == ScreenDetail {
			a.detail.carousel.Swipe(a.dragX, msg.X)
		}
		a.dragging = false
	}
	return a, nil
}

func (a *App) scroll(delta int) {
	switch a.screen {
	case ScreenProjects:
		a.list.move(delta)
	case ScreenWizard:
		a.wiz.move(delta)
	case ScreenDetail:
		a.detail.offset = max(a.detail.offset+delta, 0)
	}
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if !a.ready {
		return a.spinner.View() + " " + a.t(i18n.KeyLoading)
	}

	if a.detail.busy() {
		return a.detail.tips.View(a.styles, a.lang(), a.spinner.View(), a.width, a.height)
	}

	header := components.Header(a.styles, a.width, components.HeaderState{
		Active:   a.screen.NavIndex(),
		User:     a.userName(),
		Checking: a.deps.Auth.Checking(),
		Spinner:  a.spinner.View(),
		Lang:     a.lang(),
		Mode:     a.deps.Theme.Mode(),
	})
	footer := components.Footer(a.styles, a.width, a.help(), a.toast, a.now())

	contentHeight := max(a.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)
	width := a.width - 4

	var body string
	switch a.screen {
	case ScreenWizard:
		body = a.viewWizard(width)
	case ScreenProjects:
		body = a.viewList(width, contentHeight)
	case ScreenDetail:
		body = a.viewDetail(width, contentHeight)
	case ScreenLogin:
		body = a.viewLogin(width)
	default:
		body = a.viewHome(width)
	}

	body = lipgloss.NewStyle().Padding(0, 2).Render(
		lipgloss.PlaceHorizontal(width, a.align(), body))
	body = clampHeight(body, contentHeight)

	out := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return a.modal.ViewOverlay(out, a.width, a.height)
}

func (a *App) userName() string {
	u := a.deps.Auth.User()
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

func (a *App) help() string {
	s := a.styles
	t := a.t
	switch a.screen {
	case ScreenWizard:
		return components.HelpLine(s, "ctrl+p", t(i18n.KeyPrevious), "ctrl+n", t(i18n.KeyNext), "esc", t(i18n.KeyBack), "ctrl+l", t(i18n.KeyLanguage))
	case ScreenProjects:
		return components.HelpLine(s, "enter", t(i18n.KeyViewDetails), "d", t(i18n.KeyDelete), "r", t(i18n.KeyRefresh), "n", t(i18n.KeyNewProject), "q", t(i18n.KeyQuit))
	case ScreenDetail:
		return components.HelpLine(s, "g", t(i18n.KeyGenerateImages), "v", t(i18n.KeyGenerateVideo), "c", t(i18n.KeyCopyCaption), "r", t(i18n.KeyRefresh), "esc", t(i18n.KeyBack))
	case ScreenLogin:
		return components.HelpLine(s, "esc", t(i18n.KeyCancel))
	}
	session := "i"
	sessionLabel := t(i18n.KeyLogin)
	if a.deps.Auth.User() != nil {
		session, sessionLabel = "o", t(i18n.KeyLogout)
	}
	return components.HelpLine(s, "1-3", "tabs", session, sessionLabel, "ctrl+l", t(i18n.KeyLanguage), "ctrl+t", t(i18n.KeyTheme), "q", t(i18n.KeyQuit))
}

func clampHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// Run starts the program and blocks until the user quits.
func Run(deps Deps) error {
	app := NewApp(deps)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
