package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/i18n"
	"github.com/neuroad/neuroad-cli/internal/tui/components"
	"github.com/neuroad/neuroad-cli/internal/wizard"
)

// Campaign step sections, cycled with tab.
const (
	sectionGoal = iota
	sectionPlatform
	sectionPrimary
	sectionSecondary
	sectionAccent
	sectionCount
)

// Fields on the analysis step before the strengths.
const (
	fieldURL = iota
	fieldName
	fieldDescription
	fieldStrengths
)

// strategyWindow is how many strategies are listed at once.
const strategyWindow = 7

type wizardScreen struct {
	w *wizard.Wizard

	strategies     []api.Strategy
	platforms      []api.Platform
	catalogLoaded  bool
	catalogLoading bool

	cursor      int
	section     int
	focus       int
	imageCursor int

	url       textinput.Model
	name      textinput.Model
	desc      textinput.Model
	path      textinput.Model
	strengths []textinput.Model
	colors    [3]textinput.Model

	extracting bool
	uploading  bool
	submitting bool

	lang     i18n.Lang
	progress progress.Model
}

func newInput(limit int) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = limit
	ti.Width = 50
	ti.Prompt = ""
	return ti
}

func newWizardScreen(backend wizard.Backend) *wizardScreen {
	ws := &wizardScreen{
		w:        wizard.New(backend),
		url:      newInput(500),
		name:     newInput(200),
		desc:     newInput(1000),
		path:     newInput(2000),
		lang:     i18n.Default,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	for i := range ws.colors {
		ws.colors[i] = newInput(7)
		ws.colors[i].Width = 10
	}
	ws.url.Placeholder = "https://example.com"
	ws.colors[0].Placeholder = wizard.DefaultPrimary
	ws.colors[1].Placeholder = wizard.DefaultSecondary
	ws.colors[2].Placeholder = wizard.DefaultAccent
	ws.sync()
	return ws
}

// relabel sets placeholders for the language.
func (ws *wizardScreen) relabel(l i18n.Lang) {
	ws.lang = l
	ws.name.Placeholder = i18n.Translate(l, i18n.KeyCompanyName)
	ws.desc.Placeholder = i18n.Translate(l, i18n.KeyCompanyDescription)
	ws.path.Placeholder = i18n.Translate(l, i18n.KeyUploadPrompt)
	for i := range ws.strengths {
		ws.strengths[i].Placeholder = i18n.Translate(l, i18n.KeyStrength) + fmt.Sprintf(" %d", i+1)
	}
}

// sync copies the form into the inputs, after an extraction or reset.
func (ws *wizardScreen) sync() {
	f := ws.w.Form()
	ws.url.SetValue(f.WebsiteURL)
	ws.name.SetValue(f.CompanyName)
	ws.desc.SetValue(f.Description)

	ws.strengths = make([]textinput.Model, len(f.Strengths))
	for i, s := range f.Strengths {
		ws.strengths[i] = newInput(200)
		ws.strengths[i].SetValue(s)
	}

	ws.colors[0].SetValue(f.Colors.Primary)
	ws.colors[1].SetValue(f.Colors.Secondary)
	ws.colors[2].SetValue(f.Colors.Accent)
	ws.imageCursor = min(ws.imageCursor, max(len(f.Images)-1, 0))
	ws.relabel(ws.lang)
}

// focused returns the text input that receives keystrokes, if any.
func (ws *wizardScreen) focused() *textinput.Model {
	switch ws.w.Step() {
	case wizard.StepAnalysis:
		switch {
		case ws.focus == fieldURL:
			return &ws.url
		case ws.focus == fieldName:
			return &ws.name
		case ws.focus == fieldDescription:
			return &ws.desc
		case ws.focus-fieldStrengths < len(ws.strengths):
			return &ws.strengths[ws.focus-fieldStrengths]
		}
	case wizard.StepImages:
		return &ws.path
	case wizard.StepCampaign:
		if ws.section >= sectionPrimary {
			return &ws.colors[ws.section-sectionPrimary]
		}
	}
	return nil
}

// refocus blurs every input and focuses the active one.
func (ws *wizardScreen) refocus() tea.Cmd {
	ws.url.Blur()
	ws.name.Blur()
	ws.desc.Blur()
	ws.path.Blur()
	for i := range ws.strengths {
		ws.strengths[i].Blur()
	}
	for i := range ws.colors {
		ws.colors[i].Blur()
	}
	if in := ws.focused(); in != nil {
		return in.Focus()
	}
	return nil
}

// enterStep places the cursor on the current selection of the new step.
func (ws *wizardScreen) enterStep() tea.Cmd {
	f := ws.w.Form()
	ws.cursor = 0
	switch f.Step {
	case wizard.StepContentType:
		for i, ct := range api.ContentTypes {
			if ct == f.ContentType {
				ws.cursor = i
			}
		}
	case wizard.StepAnalysis:
		ws.focus = fieldURL
	case wizard.StepCampaign:
		ws.section = sectionGoal
		ws.cursor = ws.selectedIndex(f)
	case wizard.StepStrategy:
		for i, s := range ws.strategies {
			if s.ID == f.StrategyID {
				ws.cursor = i
			}
		}
	}
	return ws.refocus()
}

// selectedIndex is the cursor position of the current campaign selection.
func (ws *wizardScreen) selectedIndex(f wizard.Form) int {
	switch ws.section {
	case sectionGoal:
		for i, g := range api.DesignGoals {
			if g == f.DesignGoal {
				return i
			}
		}
	case sectionPlatform:
		for i, p := range ws.platforms {
			if p.ID == f.Platform {
				return i
			}
		}
	}
	return 0
}

// optionCount is the length of the list the cursor moves over.
func (ws *wizardScreen) optionCount() int {
	switch ws.w.Step() {
	case wizard.StepContentType:
		return len(api.ContentTypes)
	case wizard.StepCampaign:
		switch ws.section {
		case sectionGoal:
			return len(api.DesignGoals)
		case sectionPlatform:
			return len(ws.platforms)
		}
	case wizard.StepStrategy:
		return len(ws.strategies)
	case wizard.StepImages:
		return len(ws.w.Form().Images)
	}
	return 0
}

func (ws *wizardScreen) move(delta int) {
	n := ws.optionCount()
	if n == 0 {
		return
	}
	if ws.w.Step() == wizard.StepImages {
		ws.imageCursor = max(0, min(n-1, ws.imageCursor+delta))
		return
	}
	ws.cursor = max(0, min(n-1, ws.cursor+delta))
}

func (a *App) enterWizard() tea.Cmd {
	ws := a.wiz
	ws.relabel(a.lang())
	cmds := []tea.Cmd{ws.refocus(), textinput.Blink}
	if !ws.catalogLoaded && !ws.catalogLoading {
		ws.catalogLoading = true
		cmds = append(cmds, a.loadCatalog())
	}
	return tea.Batch(cmds...)
}

func (a *App) loadCatalog() tea.Cmd {
	catalog := a.deps.Catalog
	return func() tea.Msg {
		var msg CatalogMsg
		g, ctx := errgroup.WithContext(context.Background())
		g.Go(func() error {
			var err error
			msg.Strategies, err = catalog.Strategies(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.Platforms, err = catalog.Platforms(ctx)
			return err
		})
		msg.Err = g.Wait()
		return msg
	}
}

func (a *App) handleCatalog(msg CatalogMsg) tea.Cmd {
	ws := a.wiz
	ws.catalogLoading = false
	if msg.Err != nil {
		a.notifyError(i18n.KeyError, msg.Err)
		return nil
	}
	ws.strategies = msg.Strategies
	ws.platforms = msg.Platforms
	ws.catalogLoaded = true
	return nil
}

func isEnter(msg tea.KeyMsg) bool { return msg.Type == tea.KeyEnter }

func (a *App) handleWizardKey(msg tea.KeyMsg) tea.Cmd {
	ws := a.wiz
	if ws.submitting {
		return nil
	}

	switch {
	case key.Matches(msg, a.keys.Back):
		a.screen = ScreenHome
		return ws.refocus()
	case key.Matches(msg, a.keys.NextStep):
		if _, err := ws.w.Next(); err != nil {
			return nil
		}
		return ws.enterStep()
	case key.Matches(msg, a.keys.PrevStep):
		if _, err := ws.w.Previous(); err != nil {
			return nil
		}
		return ws.enterStep()
	case key.Matches(msg, a.keys.Submit):
		if ws.w.Step() == wizard.LastStep {
			return a.submitWizard()
		}
		return nil
	}

	switch ws.w.Step() {
	case wizard.StepContentType:
		return a.contentTypeKey(msg)
	case wizard.StepAnalysis:
		return a.analysisKey(msg)
	case wizard.StepImages:
		return a.imagesKey(msg)
	case wizard.StepCampaign:
		return a.campaignKey(msg)
	case wizard.StepStrategy:
		return a.strategyKey(msg)
	}
	return nil
}

func (a *App) contentTypeKey(msg tea.KeyMsg) tea.Cmd {
	ws := a.wiz
	switch {
	case key.Matches(msg, a.keys.Up):
		ws.move(-1)
	case key.Matches(msg, a.keys.Down):
		ws.move(1)
	case key.Matches(msg, a.keys.Enter):
		ws.w.SetContentType(api.ContentTypes[ws.cursor])
	}
	return nil
}

func (a *App) analysisKey(msg tea.KeyMsg) tea.Cmd {
	ws := a.wiz
	fields := fieldStrengths + len(ws.strengths)

	switch {
	case key.Matches(msg, a.keys.Extract):
		return a.extract()
	case key.Matches(msg, a.keys.AddStrength):
		if err := ws.w.AddStrength(); err != nil {
			return nil
		}
		ws.sync()
		ws.focus = fieldStrengths + len(ws.strengths) - 1
		return ws.refocus()
	case key.Matches(msg, a.keys.RemoveItem):
		if ws.focus < fieldStrengths {
			return nil
		}
		if err := ws.w.RemoveStrength(ws.focus - fieldStrengths); err != nil {
			return nil
		}
		ws.sync()
		ws.focus = min(ws.focus, fieldStrengths+len(ws.strengths)-1)
		return ws.refocus()
	case key.Matches(msg, a.keys.Focus), msg.Type == tea.KeyDown:
		ws.focus = (ws.focus + 1) % fields
		return ws.refocus()
	case key.Matches(msg, a.keys.Blur), msg.Type == tea.KeyUp:
		ws.focus = (ws.focus + fields - 1) % fields
		return ws.refocus()
	case isEnter(msg):
		if ws.focus == fieldURL {
			return a.extract()
		}
		ws.focus = (ws.focus + 1) % fields
		return ws.refocus()
	}

	in := ws.focused()
	if in == nil {
		return nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	switch {
	case ws.focus == fieldURL:
		ws.w.SetWebsiteURL(in.Value())
	case ws.focus == fieldName:
		ws.w.SetCompanyName(in.Value())
	case ws.focus == fieldDescription:
		ws.w.SetDescription(in.Value())
	default:
		ws.w.SetStrength(ws.focus-fieldStrengths, in.Value())
	}
	return cmd
}

func (a *App) extract() tea.Cmd {
	ws := a.wiz
	if ws.extracting {
		return nil
	}
	if strings.TrimSpace(ws.w.Form().WebsiteURL) == "" {
		return nil
	}
	ws.extracting = true
	w := ws.w
	return func() tea.Msg {
		data, err := w.Extract(context.Background())
		return ExtractMsg{Data: data, Err: err}
	}
}

func (a *App) handleExtract(msg ExtractMsg) tea.Cmd {
	ws := a.wiz
	ws.extracting = false
	if msg.Err != nil {
		a.notifyError(i18n.KeyExtractFailed, msg.Err)
		return nil
	}
	ws.sync()
	a.notify(components.ToastSuccess, a.t(i18n.KeyExtractSucceeded))
	return ws.refocus()
}

func (a *App) imagesKey(msg tea.KeyMsg) tea.Cmd {
	ws := a.wiz
	switch {
	case msg.Type == tea.KeyUp:
		ws.move(-1)
		return nil
	case msg.Type == tea.KeyDown:
		ws.move(1)
		return nil
	case key.Matches(msg, a.keys.RemoveItem):
		if err := ws.w.RemoveImage(ws.imageCursor); err == nil {
			ws.sync()
		}
		return nil
	case isEnter(msg):
		return a.upload()
	}
	var cmd tea.Cmd
	ws.path, cmd = ws.path.Update(msg)
	return cmd
}

// splitPaths reads a comma separated list of file paths.
func splitPaths(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (a *App) upload() tea.Cmd {
	ws := a.wiz
	if ws.uploading {
		return nil
	}
	paths := splitPaths(ws.path.Value())
	if len(paths) == 0 {
		return nil
	}
	if len(paths) > ws.w.RemainingImages() {
		a.notify(components.ToastError, a.t(i18n.KeyMaxImages))
		return nil
	}
	ws.uploading = true
	w := ws.w
	return func() tea.Msg {
		results, err := w.Upload(context.Background(), paths)
		return UploadMsg{Results: results, Err: err}
	}
}

func (a *App) handleUpload(msg UploadMsg) tea.Cmd {
	ws := a.wiz
	ws.uploading = false
	if errors.Is(msg.Err, wizard.ErrTooManyImages) {
		a.notify(components.ToastError, a.t(i18n.KeyMaxImages))
		return nil
	}
	if msg.Err != nil {
		a.notifyError(i18n.KeyUploadFailed, msg.Err)
		return nil
	}

	failed := wizard.Failed(msg.Results)
	if len(failed) > 0 {
		names := make([]string, len(failed))
		for i, r := range failed {
			names[i] = r.Path
		}
		a.notify(components.ToastError, a.t(i18n.KeyUploadFailed)+": "+strings.Join(names, ", "))
		// Keep the paths that failed so they can be fixed and retried.
		ws.path.SetValue(strings.Join(names, ", "))
	} else {
		ws.path.SetValue("")
	}
	ws.sync()
	return nil
}

func (a *App) campaignKey(msg tea.KeyMsg) tea.Cmd {
	ws := a.wiz
	switch {
	case key.Matches(msg, a.keys.Focus):
		ws.section = (ws.section + 1) % sectionCount
		ws.cursor = ws.selectedIndex(ws.w.Form())
		return ws.refocus()
	case key.Matches(msg, a.keys.Blur):
		ws.section = (ws.section + sectionCount - 1) % sectionCount
		ws.cursor = ws.selectedIndex(ws.w.Form())
		return ws.refocus()
	}

	if in := ws.focused(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		var c api.BrandColors
		switch ws.section {
		case sectionPrimary:
			c.Primary = in.Value()
		case sectionSecondary:
			c.Secondary = in.Value()
		case sectionAccent:
			c.Accent = in.Value()
		}
		ws.w.SetColors(c)
		return cmd
	}

	switch {
	case key.Matches(msg, a.keys.Up):
		ws.move(-1)
	case key.Matches(msg, a.keys.Down):
		ws.move(1)
	case key.Matches(msg, a.keys.Enter):
		if ws.section == sectionGoal {
			ws.w.SetDesignGoal(api.DesignGoals[ws.cursor])
		} else if ws.cursor < len(ws.platforms) {
			ws.w.SetPlatform(ws.platforms[ws.cursor].ID)
		}
	}
	return nil
}

func (a *App) strategyKey(msg tea.KeyMsg) tea.Cmd {
	ws := a.wiz
	switch {
	case key.Matches(msg, a.keys.Up):
		ws.move(-1)
	case key.Matches(msg, a.keys.Down):
		ws.move(1)
	case key.Matches(msg, a.keys.Enter):
		if ws.cursor < len(ws.strategies) {
			ws.w.SetStrategy(ws.strategies[ws.cursor].ID)
		}
	}
	return nil
}

func (a *App) submitWizard() tea.Cmd {
	ws := a.wiz
	if ws.submitting {
		return nil
	}
	if step, missing := ws.w.FirstIncomplete(); missing {
		a.notify(components.ToastError, a.t(step.Label()))
		return nil
	}
	ws.submitting = true
	w := ws.w
	lang := string(a.lang())
	return func() tea.Msg {
		project, err := w.Submit(context.Background(), lang)
		return SubmitMsg{Project: project, Err: err}
	}
}

func (a *App) handleSubmit(msg SubmitMsg) tea.Cmd {
	ws := a.wiz
	ws.submitting = false
	if msg.Err != nil {
		a.notifyError(i18n.KeyProjectCreateFailed, msg.Err)
		return nil
	}
	a.notify(components.ToastSuccess, a.t(i18n.KeyProjectCreated))
	ws.w.Reset()
	ws.sync()
	ws.enterStep()
	return a.openDetail(msg.Project.ID)
}

// Views

func (a *App) viewWizard(width int) string {
	ws := a.wiz
	s := a.styles
	f := ws.w.Form()

	ws.progress.Width = max(min(width, 80), 20)
	header := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(a.t(i18n.KeyNewProject)),
		a.viewStepper(f.Step, width),
		ws.progress.ViewAs(f.Step.Progress()),
	)

	var body string
	switch f.Step {
	case wizard.StepContentType:
		body = a.viewContentType(f)
	case wizard.StepAnalysis:
		body = a.viewAnalysis(f)
	case wizard.StepImages:
		body = a.viewImages(f, width)
	case wizard.StepCampaign:
		body = a.viewCampaign(f)
	case wizard.StepStrategy:
		body = a.viewStrategy(f, width)
	}

	if ws.catalogLoading && (f.Step == wizard.StepCampaign || f.Step == wizard.StepStrategy) {
		body = a.spinner.View() + " " + a.t(i18n.KeyLoading)
	}

	return lipgloss.JoinVertical(a.align(), header, "", body, "", a.viewWizardNav(f))
}

func (a *App) viewStepper(current wizard.Step, width int) string {
	s := a.styles
	parts := make([]string, len(wizard.Steps))
	for i, step := range wizard.Steps {
		label := fmt.Sprintf("%d", step.Number())
		if width >= 100 || step == current {
			label += " " + a.t(step.Label())
		}
		switch {
		case step < current:
			parts[i] = s.StepDone.Render("✓ " + label)
		case step == current:
			parts[i] = s.StepCurrent.Render("● " + label)
		default:
			parts[i] = s.StepPending.Render("○ " + label)
		}
	}
	if a.rtl() {
		for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
			parts[i], parts[j] = parts[j], parts[i]
		}
	}
	return strings.Join(parts, s.Divider.Render(" ─ "))
}

func (a *App) viewWizardNav(f wizard.Form) string {
	s := a.styles
	ws := a.wiz

	prevLabel, nextLabel := "◀ "+a.t(i18n.KeyPrevious), a.t(i18n.KeyNext)+" ▶"
	if a.rtl() {
		prevLabel, nextLabel = a.t(i18n.KeyPrevious)+" ▶", "◀ "+a.t(i18n.KeyNext)
	}

	prev := s.ButtonDisabled.Render(prevLabel)
	if f.Step > wizard.FirstStep {
		prev = s.ButtonSecondary.Render(prevLabel + " (ctrl+p)")
	}

	var next string
	switch {
	case f.Step == wizard.LastStep && ws.submitting:
		next = s.ButtonDisabled.Render(a.spinner.View() + " " + a.t(i18n.KeyLoading))
	case f.Step == wizard.LastStep && ws.w.Valid(f.Step):
		next = s.ButtonPrimary.Render("✦ " + a.t(i18n.KeyCreateProject) + " (ctrl+s)")
	case f.Step == wizard.LastStep:
		next = s.ButtonDisabled.Render("✦ " + a.t(i18n.KeyCreateProject))
	case ws.w.CanAdvance():
		next = s.ButtonPrimary.Render(nextLabel + " (ctrl+n)")
	default:
		next = s.ButtonDisabled.Render(nextLabel)
	}

	if a.rtl() {
		return next + "  " + prev
	}
	return prev + "  " + next
}

// option renders one selectable row.
func (a *App) option(active, selected bool, text string) string {
	s := a.styles
	cursor := "  "
	if active {
		cursor = s.ListCursor.Render("▸ ")
	}
	radio := s.ValueMuted.Render("○ ")
	if selected {
		radio = s.StepCurrent.Render("● ")
	}
	style := s.ListItem
	if active {
		style = s.ListItemActive
	}
	return cursor + radio + style.Render(text)
}

func (a *App) viewContentType(f wizard.Form) string {
	s := a.styles
	lines := []string{
		s.InputLabel.Render(a.t(i18n.KeyContentType)),
		s.ValueMuted.Render(a.t(i18n.KeyContentTypeHint)),
		"",
	}
	for i, ct := range api.ContentTypes {
		lines = append(lines, a.option(i == a.wiz.cursor, ct == f.ContentType, a.t(wizard.ContentTypeLabels[ct])))
	}
	return strings.Join(lines, "\n")
}

func (a *App) field(label string, in textinput.Model) string {
	s := a.styles
	box := s.Input
	if in.Focused() {
		box = s.InputFocus
	}
	return lipgloss.JoinVertical(lipgloss.Left, s.InputLabel.Render(label), box.Render(in.View()))
}

func (a *App) viewAnalysis(f wizard.Form) string {
	s := a.styles
	ws := a.wiz

	extract := s.ButtonSecondary.Render("ctrl+e  " + a.t(i18n.KeyExtractData))
	if ws.extracting {
		extract = s.ButtonDisabled.Render(a.spinner.View() + " " + a.t(i18n.KeyExtracting))
	}
	urlRow := lipgloss.JoinHorizontal(lipgloss.Bottom, a.field(a.t(i18n.KeyWebsiteURL), ws.url), " ", extract)

	parts := []string{
		urlRow,
		a.field(a.t(i18n.KeyCompanyName)+" *", ws.name),
		a.field(a.t(i18n.KeyCompanyDescription)+" *", ws.desc),
		s.InputLabel.Render(a.t(i18n.KeyStrengths)) + "  " +
			s.Help.Render(fmt.Sprintf("ctrl+a %s  ctrl+x %s  (%d/%d)", a.t(i18n.KeyAddStrength), a.t(i18n.KeyDelete), len(f.Strengths), wizard.MaxStrengths)),
	}
	for i, in := range ws.strengths {
		box := s.Input
		if in.Focused() {
			box = s.InputFocus
		}
		parts = append(parts, box.Render(fmt.Sprintf("%d. ", i+1)+in.View()))
	}

	if summary, ok := ws.w.Analysis(); ok {
		swatches := make([]string, len(summary.Palette))
		for i, c := range summary.Palette {
			swatches[i] = s.Swatch(c)
		}
		analysis := lipgloss.JoinVertical(lipgloss.Left,
			s.Title.Render("✨ "+a.t(i18n.KeyBrandAnalysis)),
			s.Label.Render(a.t(i18n.KeyBrandVoice)+": ")+s.Value.Render(summary.VoiceLabel(a.lang())),
			s.Label.Render(a.t(i18n.KeyColorPalette)+": ")+strings.Join(swatches, "  "),
		)
		parts = append(parts, "", s.Card.Render(analysis))
	}
	if imgs := ws.w.ScrapedImages(); len(imgs) > 0 {
		parts = append(parts, s.ValueMuted.Render(fmt.Sprintf("%s: %d", a.t(i18n.KeyScrapedImages), len(imgs))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) viewImages(f wizard.Form, width int) string {
	s := a.styles
	ws := a.wiz

	status := ""
	if ws.uploading {
		status = a.spinner.View() + " " + a.t(i18n.KeyLoading)
	}
	parts := []string{
		s.InputLabel.Render(a.t(i18n.KeyUploadImages)) + "  " + s.ValueMuted.Render(fmt.Sprintf("%d/%d", len(f.Images), wizard.MaxImages)),
		s.ValueMuted.Render(a.t(i18n.KeyUploadHint)),
		"",
		a.field(a.t(i18n.KeyUploadPrompt), ws.path),
		status,
	}

	for i, img := range f.Images {
		line := fmt.Sprintf("%d. %s", i+1, a.deps.Client.AssetURL(img))
		line = truncateLine(line, width-6)
		if i == ws.imageCursor {
			parts = append(parts, s.ListCursor.Render("▸ ")+s.ListItemActive.Render(line))
		} else {
			parts = append(parts, "  "+s.ListItem.Render(line))
		}
	}
	if len(f.Images) > 0 {
		parts = append(parts, s.Help.Render("↑/↓  ctrl+x "+a.t(i18n.KeyDelete)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) viewCampaign(f wizard.Form) string {
	s := a.styles
	ws := a.wiz

	heading := func(section int, k i18n.Key) string {
		if ws.section == section {
			return s.StepCurrent.Render("▸ " + a.t(k))
		}
		return s.InputLabel.Render("  " + a.t(k))
	}

	parts := []string{heading(sectionGoal, i18n.KeyDesignGoal)}
	for i, g := range api.DesignGoals {
		keys := wizard.GoalLabels[g]
		text := a.t(keys[0]) + "  " + s.ValueMuted.Render(a.t(keys[1]))
		parts = append(parts, a.option(ws.section == sectionGoal && i == ws.cursor, g == f.DesignGoal, text))
	}

	parts = append(parts, "", heading(sectionPlatform, i18n.KeyPlatform))
	for i, p := range ws.platforms {
		name := i18n.PickFor(a.lang(), p.Name, p.NameEn)
		text := fmt.Sprintf("%s  %s", name, s.ValueMuted.Render(fmt.Sprintf("%s · %dx%d", p.Aspect, p.Width, p.Height)))
		parts = append(parts, a.option(ws.section == sectionPlatform && i == ws.cursor, p.ID == f.Platform, text))
	}

	colorKeys := []i18n.Key{i18n.KeyPrimaryColor, i18n.KeySecondaryColor, i18n.KeyAccentColor}
	values := []string{f.Colors.Primary, f.Colors.Secondary, f.Colors.Accent}
	colors := make([]string, len(colorKeys))
	for i, k := range colorKeys {
		box := s.Input
		if ws.colors[i].Focused() {
			box = s.InputFocus
		}
		colors[i] = lipgloss.JoinVertical(lipgloss.Left,
			heading(sectionPrimary+i, k),
			box.Render(ws.colors[i].View()),
			s.Swatch(values[i]),
		)
	}
	parts = append(parts, "", lipgloss.JoinHorizontal(lipgloss.Top, colors[0], "  ", colors[1], "  ", colors[2]))
	parts = append(parts, s.Help.Render("tab / shift+tab"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) viewStrategy(f wizard.Form, width int) string {
	s := a.styles
	ws := a.wiz
	l := a.lang()

	parts := []string{
		s.InputLabel.Render("🧠 " + a.t(i18n.KeyPsychStrategy)),
		s.ValueMuted.Render(a.t(i18n.KeySelectStrategy)),
		"",
	}

	start := max(0, min(ws.cursor-strategyWindow/2, len(ws.strategies)-strategyWindow))
	end := min(len(ws.strategies), start+strategyWindow)
	if start > 0 {
		parts = append(parts, s.ValueMuted.Render("  ↑"))
	}
	for i := start; i < end; i++ {
		st := ws.strategies[i]
		name := i18n.PickFor(l, st.NameAr, st.NameEn)
		desc := truncateLine(i18n.PickFor(l, st.DescriptionAr, st.DescriptionEn), max(width-len(name)-12, 10))
		text := st.Glyph() + " " + name + "  " + s.ValueMuted.Render(desc)
		parts = append(parts, a.option(i == ws.cursor, st.ID == f.StrategyID, text))
	}
	if end < len(ws.strategies) {
		parts = append(parts, s.ValueMuted.Render("  ↓"))
	}

	if st := api.FindStrategy(ws.strategies, f.StrategyID); st != nil {
		visual := i18n.PickFor(l, st.VisualInstructionsAr, st.VisualInstructions)
		parts = append(parts, "", s.Card.Width(min(width, 80)).Render(
			s.Label.Render(a.t(i18n.KeyVisualEffect)+": ")+s.Value.Render(visual)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func truncateLine(s string, n int) string {
	if n <= 1 || lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) > n-1 {
		r = r[:n-1]
	}
	return string(r) + "…"
}
