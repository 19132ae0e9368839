package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/export"
	"github.com/neuroad/neuroad-cli/internal/i18n"
	"github.com/neuroad/neuroad-cli/internal/projects"
	"github.com/neuroad/neuroad-cli/internal/tui/components"
	"github.com/neuroad/neuroad-cli/internal/wizard"
)

var videoSizeKeys = map[api.VideoSize]i18n.Key{
	api.VideoPortrait:  i18n.KeyPortrait,
	api.VideoSquare:    i18n.KeySquare,
	api.VideoLandscape: i18n.KeyLandscape,
}

type detailScreen struct {
	d        *projects.Detail
	id       string
	loading  bool
	offset   int
	carousel *components.Carousel
	tips     *components.TipRotator

	running      projects.Generation
	pending      intent
	instructions string

	duration int
	size     api.VideoSize
}

func newDetailScreen(backend projects.Backend, catalog api.CatalogSource) *detailScreen {
	return &detailScreen{
		d:        projects.NewDetail(backend, catalog),
		carousel: components.NewCarousel(nil),
		tips:     components.NewTipRotator(nil),
		duration: projects.DefaultDuration,
		size:     projects.DefaultVideoSize,
	}
}

// busy reports whether a generation owns the screen.
func (ds *detailScreen) busy() bool { return ds.running != projects.Idle }

func (ds *detailScreen) reset() {
	ds.id = ""
	ds.offset = 0
	ds.carousel.SetItems(nil)
}

// refresh copies the loaded project into the widgets.
func (ds *detailScreen) refresh() {
	if p := ds.d.Project(); p != nil {
		ds.carousel.SetItems(p.GeneratedImages)
	}
	ds.tips.SetTips(ds.d.Tips())
}

func (a *App) openDetail(id string) tea.Cmd {
	ds := a.detail
	if ds.id != id {
		ds.reset()
	}
	ds.id = id
	ds.loading = true
	a.screen = ScreenDetail
	d := ds.d
	return func() tea.Msg {
		return DetailMsg{ID: id, Err: d.Load(context.Background(), id)}
	}
}

func (a *App) reloadDetail() tea.Cmd {
	ds := a.detail
	ds.loading = true
	id, d := ds.id, ds.d
	return func() tea.Msg {
		return DetailMsg{ID: id, Err: d.Reload(context.Background())}
	}
}

func (a *App) handleDetail(msg DetailMsg) tea.Cmd {
	ds := a.detail
	if msg.ID != ds.id {
		return nil
	}
	ds.loading = false
	if msg.Err != nil {
		a.notifyError(i18n.KeyProjectLoadFailed, msg.Err)
		ds.reset()
		if a.screen == ScreenDetail {
			return a.navigate(ScreenProjects)
		}
		return nil
	}
	ds.refresh()
	return nil
}

func (a *App) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	ds := a.detail
	if ds.loading {
		if key.Matches(msg, a.keys.Back) {
			return a.navigate(ScreenProjects)
		}
		return nil
	}

	switch {
	case key.Matches(msg, a.keys.Back):
		return a.navigate(ScreenProjects)
	case key.Matches(msg, a.keys.Left):
		ds.carousel.Left(a.rtl())
	case key.Matches(msg, a.keys.Right):
		ds.carousel.Right(a.rtl())
	case key.Matches(msg, a.keys.Up):
		ds.offset = max(ds.offset-1, 0)
	case key.Matches(msg, a.keys.Down):
		ds.offset++
	case key.Matches(msg, a.keys.Generate):
		ds.pending = intent{kind: intentImageInstructions, id: ds.id}
		a.modal.ShowInput(a.t(i18n.KeyGenerateImages), a.t(i18n.KeyCustomInstructions), a.t(i18n.KeyCustomInstructionsHint), ds.pending)
	case key.Matches(msg, a.keys.Video):
		ds.pending = intent{kind: intentVideoInstructions, id: ds.id}
		a.modal.ShowInput(a.t(i18n.KeyGenerateVideo), a.t(i18n.KeyCustomInstructions), a.t(i18n.KeyCustomInstructionsHint), ds.pending)
	case key.Matches(msg, a.keys.Duration):
		ds.duration = cycle(projects.Durations, ds.duration)
	case key.Matches(msg, a.keys.Size):
		ds.size = cycle(projects.VideoSizes, ds.size)
	case key.Matches(msg, a.keys.Copy):
		return a.copyCaption()
	case key.Matches(msg, a.keys.Export):
		return a.exportProject()
	case key.Matches(msg, a.keys.Refresh):
		return a.reloadDetail()
	case key.Matches(msg, a.keys.Delete):
		if p := ds.d.Project(); p != nil {
			a.modal.Show(a.t(i18n.KeyDelete), a.t(i18n.KeyConfirmDelete)+"\n\n"+p.CompanyName,
				intent{kind: intentDeleteFromDetail, id: p.ID})
		}
	}
	return nil
}

// cycle returns the option after cur, wrapping around.
func cycle[T comparable](options []T, cur T) T {
	for i, o := range options {
		if o == cur {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func (a *App) startImages(instructions string) tea.Cmd {
	ds := a.detail
	if ds.busy() {
		return nil
	}
	ds.running = projects.GeneratingImages
	d := ds.d
	return tea.Batch(ds.tips.Start(), func() tea.Msg {
		err := d.GenerateImages(context.Background(), instructions)
		return GenerateMsg{Kind: projects.GeneratingImages, Err: err}
	})
}

func (a *App) startVideo(instructions string) tea.Cmd {
	ds := a.detail
	if ds.busy() {
		return nil
	}
	ds.running = projects.GeneratingVideo
	d := ds.d
	opts := projects.VideoOptions{Duration: ds.duration, Size: ds.size, Instructions: instructions}
	return tea.Batch(ds.tips.Start(), func() tea.Msg {
		err := d.GenerateVideo(context.Background(), opts)
		return GenerateMsg{Kind: projects.GeneratingVideo, Err: err}
	})
}

func (a *App) handleGenerate(msg GenerateMsg) tea.Cmd {
	ds := a.detail
	ds.running = projects.Idle
	ds.instructions = ""
	ds.tips.Stop()

	failKey, okKey := i18n.KeyImagesFailed, i18n.KeyImagesGenerated
	if msg.Kind == projects.GeneratingVideo {
		failKey, okKey = i18n.KeyVideoFailed, i18n.KeyVideoGenerated
	}
	if msg.Err != nil {
		a.notifyError(failKey, msg.Err)
		return nil
	}
	a.notify(components.ToastSuccess, a.t(okKey))
	ds.refresh()
	return nil
}

func (a *App) deleteFromDetail() tea.Cmd {
	d := a.detail.d
	id := a.detail.id
	return func() tea.Msg {
		err := d.Delete(context.Background(), func() bool { return true })
		return DeleteMsg{ID: id, FromDetail: true, Err: err}
	}
}

func (a *App) copyCaption() tea.Cmd {
	text, ok := a.detail.d.Caption(a.lang())
	if !ok || a.deps.Clipboard == nil {
		return nil
	}
	copier := a.deps.Clipboard
	return func() tea.Msg {
		method, err := copier.Copy(text)
		return CopyMsg{Method: method, Err: err}
	}
}

func (a *App) handleCopy(msg CopyMsg) {
	if msg.Err != nil {
		a.notifyError(i18n.KeyCopyFailed, msg.Err)
		return
	}
	a.logger.Debug("caption copied", "method", msg.Method)
	a.notify(components.ToastSuccess, a.t(i18n.KeyCaptionCopied))
}

func (a *App) exportProject() tea.Cmd {
	d := a.detail.d
	p := d.Project()
	if p == nil {
		return nil
	}
	path := filepath.Join(a.deps.ExportDir, export.FileName(p))
	opts := export.Options{
		Lang:     a.lang(),
		Origin:   a.deps.Client.Origin(),
		Strategy: d.Strategy(),
		Platform: d.Platform(),
	}
	return func() tea.Msg {
		return ExportMsg{Path: path, Err: export.WriteFile(path, p, opts)}
	}
}

func (a *App) handleExport(msg ExportMsg) {
	if msg.Err != nil {
		a.notifyError(i18n.KeyError, msg.Err)
		return
	}
	a.notify(components.ToastSuccess, a.t(i18n.KeySuccess)+": "+msg.Path)
}

// Views

func (a *App) viewDetail(width, height int) string {
	s := a.styles
	ds := a.detail
	l := a.lang()

	p := ds.d.Project()
	if ds.loading && p == nil {
		return a.spinner.View() + " " + a.t(i18n.KeyLoading)
	}
	if p == nil {
		return ""
	}

	badge := projects.StatusBadge(p.Status, l)
	title := s.Title.Render(p.CompanyName)
	if ds.loading {
		title += " " + a.spinner.View()
	}
	head := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", s.Badge(badge.Tone, badge.Label))
	if a.rtl() {
		head = lipgloss.JoinHorizontal(lipgloss.Center, s.Badge(badge.Tone, badge.Label), "  ", title)
	}

	sections := []string{head, a.viewProjectInfo(p, width), ""}

	sections = append(sections, s.InputLabel.Render(fmt.Sprintf("%s (%d)", a.t(i18n.KeyGeneratedImages), len(p.GeneratedImages))))
	if ds.carousel.Len() == 0 {
		sections = append(sections, s.ValueMuted.Render(a.t(i18n.KeyNoContent)))
	} else {
		sections = append(sections, ds.carousel.View(s, l, a.deps.Client.AssetURL, min(width, 80)))
		if ds.carousel.Len() > 1 {
			sections = append(sections, s.Help.Render("←/→  "+a.t(i18n.KeySwipeHint)))
		}
	}

	if len(p.GeneratedVideos) > 0 {
		sections = append(sections, "", s.InputLabel.Render(a.t(i18n.KeyGeneratedVideos)))
		for i, v := range p.GeneratedVideos {
			sections = append(sections, s.Value.Render(fmt.Sprintf("🎬 %d. ", i+1))+s.ValueMuted.Render(a.deps.Client.AssetURL(v)))
		}
	}

	if caption, ok := ds.d.Caption(l); ok {
		sections = append(sections, "",
			s.InputLabel.Render(a.t(i18n.KeyGeneratedCaption))+"  "+s.Help.Render("c "+a.t(i18n.KeyCopyCaption)),
			s.Card.Width(min(width, 80)).Align(a.align()).Render(caption))
	}

	if current := ds.carousel.Current(); current != "" {
		m := components.Mockup{Company: p.CompanyName, Image: a.deps.Client.AssetURL(current)}
		if len(p.GeneratedVideos) > 0 {
			m.Video = a.deps.Client.AssetURL(p.GeneratedVideos[0])
		}
		ig := m.Instagram(s, l, 40)
		tt := m.TikTok(s, l, 30)
		var mockups string
		if width >= 74 {
			mockups = lipgloss.JoinHorizontal(lipgloss.Top, ig, "  ", tt)
		} else {
			mockups = lipgloss.JoinVertical(lipgloss.Left, ig, tt)
		}
		sections = append(sections, "", s.InputLabel.Render(a.t(i18n.KeyMockupPreview)), mockups)
	}

	sections = append(sections, "", a.viewGenerateActions())

	content := lipgloss.JoinVertical(a.align(), sections...)
	lines := strings.Split(content, "\n")
	ds.offset = min(ds.offset, max(len(lines)-height, 0))
	return strings.Join(lines[ds.offset:], "\n")
}

func (a *App) viewProjectInfo(p *api.Project, width int) string {
	s := a.styles
	l := a.lang()
	ds := a.detail

	row := func(k i18n.Key, v string) string {
		if v == "" {
			return ""
		}
		return s.Label.Render(a.t(k)+": ") + s.Value.Render(v)
	}

	var strategy, platform, created string
	if st := ds.d.Strategy(); st != nil {
		strategy = st.Glyph() + " " + i18n.PickFor(l, st.NameAr, st.NameEn)
	}
	if pl := ds.d.Platform(); pl != nil {
		platform = fmt.Sprintf("%s (%s)", i18n.PickFor(l, pl.Name, pl.NameEn), pl.Aspect)
	}
	if t, ok := p.Created(); ok {
		created = i18n.FormatDate(l, t)
	}

	var strengths []string
	for _, st := range p.Strengths {
		strengths = append(strengths, s.Badge("purple", st))
	}

	rows := []string{
		row(i18n.KeyContentType, a.t(wizard.ContentTypeLabels[p.ContentType])),
		row(i18n.KeyPsychStrategy, strategy),
		row(i18n.KeyPlatform, platform),
		row(i18n.KeyCreatedAt, created),
	}
	if len(p.Images) > 0 {
		rows = append(rows, row(i18n.KeyReferenceImages, fmt.Sprintf("%d", len(p.Images))))
	}
	if c := p.BrandColors; c != nil {
		rows = append(rows, s.Label.Render(a.t(i18n.KeyColorPalette)+": ")+
			strings.Join([]string{s.Swatch(c.Primary), s.Swatch(c.Secondary), s.Swatch(c.Accent)}, "  "))
	}
	var kept []string
	for _, r := range rows {
		if r != "" {
			kept = append(kept, r)
		}
	}
	if len(strengths) > 0 {
		kept = append(kept, lipgloss.JoinHorizontal(lipgloss.Top, strengths...))
	}

	return s.Card.Width(min(width, 80)).Render(lipgloss.JoinVertical(a.align(), kept...))
}

func (a *App) viewGenerateActions() string {
	s := a.styles
	ds := a.detail

	images := s.ButtonPrimary.Render("g  ✦ " + a.t(i18n.KeyGenerateImages))
	video := s.ButtonSecondary.Render("v  🎬 " + a.t(i18n.KeyGenerateVideo))
	options := components.HelpLine(s,
		"t", fmt.Sprintf("%s: %d %s", a.t(i18n.KeyVideoDuration), ds.duration, a.t(i18n.KeySeconds)),
		"s", fmt.Sprintf("%s: %s", a.t(i18n.KeyVideoAspect), a.t(videoSizeKeys[ds.size])),
	)
	extra := components.HelpLine(s, "x", "HTML", "d", a.t(i18n.KeyDelete))

	buttons := lipgloss.JoinHorizontal(lipgloss.Top, images, "  ", video)
	if a.rtl() {
		buttons = lipgloss.JoinHorizontal(lipgloss.Top, video, "  ", images)
	}
	return lipgloss.JoinVertical(a.align(), buttons, options, extra)
}
