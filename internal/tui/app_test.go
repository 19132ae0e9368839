package tui

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/auth"
	"github.com/neuroad/neuroad-cli/internal/clipboard"
	"github.com/neuroad/neuroad-cli/internal/export"
	"github.com/neuroad/neuroad-cli/internal/i18n"
	"github.com/neuroad/neuroad-cli/internal/mockapi"
	"github.com/neuroad/neuroad-cli/internal/projects"
	"github.com/neuroad/neuroad-cli/internal/theme"
	"github.com/neuroad/neuroad-cli/internal/tui/components"
	"github.com/neuroad/neuroad-cli/internal/wizard"
)

type fixture struct {
	app     *App
	backend *mockapi.Server
	copied  []string
	mu      sync.Mutex
}

func newFixture(t *testing.T, lang i18n.Lang) *fixture {
	t.Helper()
	backend := mockapi.New()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	client, err := api.NewClient(srv.URL, api.WithRateLimit(0, 0))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	f := &fixture{backend: backend}
	copier := clipboard.NewWith(func(text string) error {
		f.mu.Lock()
		f.copied = append(f.copied, text)
		f.mu.Unlock()
		return nil
	}, nil)

	f.app = NewApp(Deps{
		Client:    client,
		Catalog:   api.NewCatalog(client, time.Minute),
		Auth:      auth.NewStore(client, auth.WithDelay(0)),
		Lang:      i18n.NewStore(lang),
		Theme:     theme.NewStore(theme.Light),
		Clipboard: copier,
		AuthURL:   "https://auth.example.com/",
		ExportDir: t.TempDir(),
	})
	f.app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return f
}

func (f *fixture) seed(name string, images ...string) api.Project {
	return f.backend.AddProject(api.Project{
		ContentType:             api.ContentStore,
		CompanyName:             name,
		CompanyDescription:      "desc",
		DesignGoal:              api.GoalDirectSale,
		Platform:                "post_square",
		PsychologicalStrategyID: "scarcity",
		GeneratedImages:         images,
	})
}

// isAppMsg reports whether msg is one of ours rather than a timer tick.
func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case IdentityMsg, CatalogMsg, ProjectsMsg, DetailMsg, ExtractMsg, UploadMsg,
		SubmitMsg, GenerateMsg, DeleteMsg, LoginStartedMsg, LoginDoneMsg,
		LogoutMsg, ConfigMsg, CopyMsg, ExportMsg:
		return true
	}
	return false
}

// collect runs cmd and returns the app messages it produces. Timers are
// abandoned after a second.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var (
				wg  sync.WaitGroup
				mu  sync.Mutex
				out []tea.Msg
			)
			for _, c := range batch {
				wg.Add(1)
				go func(c tea.Cmd) {
					defer wg.Done()
					msgs := collect(c)
					mu.Lock()
					out = append(out, msgs...)
					mu.Unlock()
				}(c)
			}
			wg.Wait()
			return out
		}
		if isAppMsg(msg) {
			return []tea.Msg{msg}
		}
	case <-time.After(time.Second):
	}
	return nil
}

// process feeds the results of cmd back into the app until it settles.
func (f *fixture) process(cmd tea.Cmd) {
	for _, msg := range collect(cmd) {
		_, next := f.app.Update(msg)
		f.process(next)
	}
}

func (f *fixture) press(msgs ...tea.KeyMsg) {
	for _, msg := range msgs {
		_, cmd := f.app.Update(msg)
		f.process(cmd)
	}
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlN = tea.KeyMsg{Type: tea.KeyCtrlN}
	ctrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
	ctrlL = tea.KeyMsg{Type: tea.KeyCtrlL}
)

func TestTabsNavigate(t *testing.T) {
	f := newFixture(t, i18n.English)
	f.seed("Acme")
	f.seed("Globex")

	f.press(runes("3"))
	if f.app.Screen() != ScreenProjects {
		t.Fatalf("Expected projects screen, got %s", f.app.Screen())
	}
	if len(f.app.list.items) != 2 {
		t.Errorf("Expected 2 projects, got %d", len(f.app.list.items))
	}

	f.press(runes("1"))
	if f.app.Screen() != ScreenHome {
		t.Errorf("Expected home screen, got %s", f.app.Screen())
	}
}

func TestProjectsReloadOnEveryVisit(t *testing.T) {
	f := newFixture(t, i18n.English)

	f.press(runes("3"), runes("1"), runes("3"))
	if got := f.backend.Calls("GET /projects"); got != 2 {
		t.Errorf("Expected 2 list calls, got %d", got)
	}
}

func TestWizardCreatesProject(t *testing.T) {
	f := newFixture(t, i18n.Arabic)

	f.press(runes("2"))
	if f.app.Screen() != ScreenWizard {
		t.Fatalf("Expected wizard screen, got %s", f.app.Screen())
	}
	if !f.app.wiz.catalogLoaded {
		t.Fatal("Expected catalog to load on entry")
	}

	// Next is inert until a content type is chosen.
	f.press(ctrlN)
	if step := f.app.wiz.w.Step(); step != wizard.StepContentType {
		t.Fatalf("Expected to stay on step 1, got %d", step)
	}

	f.press(enter, ctrlN)
	f.press(tab, runes("Acme"), tab, runes("Best coffee"), ctrlN)
	if step := f.app.wiz.w.Step(); step != wizard.StepImages {
		t.Fatalf("Expected step 3, got %d", step)
	}

	f.press(ctrlN, enter, tab, enter, ctrlN, enter, ctrlS)

	if f.app.Screen() != ScreenDetail {
		t.Fatalf("Expected detail screen after submit, got %s", f.app.Screen())
	}
	req := f.backend.LastCreate()
	if req == nil {
		t.Fatal("Expected a create request")
	}
	if req.CompanyName != "Acme" || req.CompanyDescription != "Best coffee" {
		t.Errorf("Expected Acme/Best coffee, got %q/%q", req.CompanyName, req.CompanyDescription)
	}
	if req.ContentType != api.ContentStore {
		t.Errorf("Expected content type store, got %s", req.ContentType)
	}
	if req.Platform != mockapi.Platforms[0].ID {
		t.Errorf("Expected platform %s, got %s", mockapi.Platforms[0].ID, req.Platform)
	}
	if req.PsychologicalStrategyID != mockapi.Strategies[0].ID {
		t.Errorf("Expected strategy %s, got %s", mockapi.Strategies[0].ID, req.PsychologicalStrategyID)
	}
	if req.Language != "ar" {
		t.Errorf("Expected language ar, got %s", req.Language)
	}
	if step := f.app.wiz.w.Step(); step != wizard.StepContentType {
		t.Errorf("Expected wizard reset to step 1, got %d", step)
	}
	if f.app.detail.d.Project() == nil {
		t.Error("Expected the new project to be loaded")
	}
}

func TestWizardSubmitFailureKeepsForm(t *testing.T) {
	f := newFixture(t, i18n.English)
	f.backend.Fail("POST /projects", http.StatusInternalServerError)

	f.press(runes("2"), enter, ctrlN, tab, runes("Acme"), tab, runes("Desc"), ctrlN, ctrlN, enter, tab, enter, ctrlN, enter, ctrlS)

	if f.app.Screen() != ScreenWizard {
		t.Fatalf("Expected to stay on the wizard, got %s", f.app.Screen())
	}
	if got := f.app.wiz.w.Form().CompanyName; got != "Acme" {
		t.Errorf("Expected company name kept, got %q", got)
	}
	if f.app.toast.Tone != components.ToastError {
		t.Errorf("Expected error toast, got %q", f.app.toast.Tone)
	}
}

func TestDeleteFromListNeedsConfirmation(t *testing.T) {
	f := newFixture(t, i18n.English)
	f.seed("Acme")
	f.press(runes("3"))

	f.press(runes("d"))
	if !f.app.modal.IsVisible() {
		t.Fatal("Expected confirmation modal")
	}
	// Focus starts on cancel.
	f.press(enter)
	if got := f.backend.Calls("DELETE /projects/{id}"); got != 0 {
		t.Fatalf("Expected no delete call, got %d", got)
	}

	f.press(runes("d"), runes("y"))
	if got := f.backend.Calls("DELETE /projects/{id}"); got != 1 {
		t.Fatalf("Expected one delete call, got %d", got)
	}
	if len(f.app.list.items) != 0 {
		t.Errorf("Expected the item to be removed, got %d", len(f.app.list.items))
	}
}

func TestDetailLoadFailureReturnsToList(t *testing.T) {
	f := newFixture(t, i18n.English)

	f.process(f.app.openDetail("missing"))

	if f.app.Screen() != ScreenProjects {
		t.Errorf("Expected projects screen, got %s", f.app.Screen())
	}
	if f.app.toast.Tone != components.ToastError {
		t.Errorf("Expected error toast, got %q", f.app.toast.Tone)
	}
}

func TestGenerateImagesWithInstructions(t *testing.T) {
	f := newFixture(t, i18n.English)
	p := f.seed("Acme")
	f.process(f.app.openDetail(p.ID))

	f.press(runes("g"))
	if !f.app.modal.IsVisible() {
		t.Fatal("Expected instructions modal")
	}
	f.press(runes("bright colors"), enter)

	req := f.backend.LastGenerate()
	if req == nil {
		t.Fatal("Expected a generate request")
	}
	if req.CustomInstructions == nil || *req.CustomInstructions != "bright colors" {
		t.Errorf("Expected instructions %q, got %v", "bright colors", req.CustomInstructions)
	}
	if req.VariationCount != projects.VariationCount {
		t.Errorf("Expected %d variations, got %d", projects.VariationCount, req.VariationCount)
	}
	if f.app.detail.busy() {
		t.Error("Expected generation to be finished")
	}
	if f.app.detail.carousel.Len() != 3 {
		t.Errorf("Expected 3 slides after re-fetch, got %d", f.app.detail.carousel.Len())
	}
	if f.app.toast.Text != i18n.Translate(i18n.English, i18n.KeyImagesGenerated) {
		t.Errorf("Expected success toast, got %q", f.app.toast.Text)
	}
}

func TestGenerateVideoUsesSelectedOptions(t *testing.T) {
	f := newFixture(t, i18n.English)
	p := f.seed("Acme")
	f.process(f.app.openDetail(p.ID))

	f.press(runes("t"), runes("s"), runes("v"), enter)

	req := f.backend.LastVideo()
	if req == nil {
		t.Fatal("Expected a video request")
	}
	if req.Duration != 12 {
		t.Errorf("Expected duration 12, got %d", req.Duration)
	}
	if req.VideoSize != api.VideoSquare {
		t.Errorf("Expected square, got %s", req.VideoSize)
	}
	if req.CustomInstructions != nil {
		t.Errorf("Expected null instructions, got %q", *req.CustomInstructions)
	}
	if got := len(f.app.detail.d.Project().GeneratedVideos); got != 1 {
		t.Errorf("Expected 1 video after re-fetch, got %d", got)
	}
}

func TestGenerationFailureKeepsProject(t *testing.T) {
	f := newFixture(t, i18n.English)
	p := f.seed("Acme", "/api/generated/a.png")
	f.process(f.app.openDetail(p.ID))
	f.backend.Fail("POST /generate-content", http.StatusInternalServerError)

	f.press(runes("g"), enter)

	if f.app.toast.Tone != components.ToastError {
		t.Errorf("Expected error toast, got %q", f.app.toast.Tone)
	}
	if f.app.detail.carousel.Len() != 1 {
		t.Errorf("Expected the old image kept, got %d", f.app.detail.carousel.Len())
	}
	if f.app.Screen() != ScreenDetail {
		t.Errorf("Expected to stay on detail, got %s", f.app.Screen())
	}
}

func TestKeysIgnoredWhileGenerating(t *testing.T) {
	f := newFixture(t, i18n.English)
	p := f.seed("Acme")
	f.process(f.app.openDetail(p.ID))

	f.app.detail.running = projects.GeneratingImages
	f.press(runes("3"), esc)
	if f.app.Screen() != ScreenDetail {
		t.Errorf("Expected to stay on detail, got %s", f.app.Screen())
	}
	if !strings.Contains(f.app.View(), i18n.Translate(i18n.English, i18n.KeyCreatingAd)) {
		t.Error("Expected the loading overlay")
	}
}

func TestSwipeAdvancesCarousel(t *testing.T) {
	f := newFixture(t, i18n.Arabic)
	p := f.seed("Acme", "/api/generated/a.png", "/api/generated/b.png")
	f.process(f.app.openDetail(p.ID))

	f.app.Update(tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	f.app.Update(tea.MouseMsg{X: 30, Y: 12, Action: tea.MouseActionRelease})
	if got := f.app.detail.carousel.Index(); got != 1 {
		t.Fatalf("Expected slide 1, got %d", got)
	}

	f.app.Update(tea.MouseMsg{X: 30, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	f.app.Update(tea.MouseMsg{X: 33, Y: 12, Action: tea.MouseActionRelease})
	if got := f.app.detail.carousel.Index(); got != 1 {
		t.Errorf("Expected a short drag to be ignored, got %d", got)
	}
}

func TestCopyCaption(t *testing.T) {
	f := newFixture(t, i18n.English)
	p := f.backend.AddProject(api.Project{
		CompanyName: "Acme",
		GeneratedCaptions: []api.Caption{{
			CaptionAr: "عرض",
			CaptionEn: "Offer",
			Hashtags:  []string{"#a", "#b"},
		}},
	})
	f.process(f.app.openDetail(p.ID))

	f.press(runes("c"))

	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.copied) != 1 || f.copied[0] != "Offer\n\n#a #b" {
		t.Errorf("Expected caption with hashtags copied, got %q", f.copied)
	}
	if f.app.toast.Text != i18n.Translate(i18n.English, i18n.KeyCaptionCopied) {
		t.Errorf("Expected copied toast, got %q", f.app.toast.Text)
	}
}

func TestExportWritesHTML(t *testing.T) {
	f := newFixture(t, i18n.English)
	p := f.seed("Acme", "/api/generated/a.png")
	f.process(f.app.openDetail(p.ID))

	f.press(runes("x"))

	path := filepath.Join(f.app.deps.ExportDir, export.FileName(&p))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected export file: %v", err)
	}
	if !strings.Contains(string(data), "Acme") {
		t.Error("Expected the company name in the export")
	}
}

func TestLanguageToggle(t *testing.T) {
	f := newFixture(t, i18n.English)

	f.press(ctrlL)
	if f.app.lang() != i18n.Arabic {
		t.Fatalf("Expected Arabic, got %s", f.app.lang())
	}
	if !strings.Contains(f.app.View(), "مشاريعي") {
		t.Error("Expected Arabic navigation")
	}

	f.press(tea.KeyMsg{Type: tea.KeyCtrlT})
	if f.app.deps.Theme.Mode() != theme.Dark {
		t.Errorf("Expected dark mode, got %s", f.app.deps.Theme.Mode())
	}
}

func TestLoginDone(t *testing.T) {
	f := newFixture(t, i18n.English)
	f.app.screen = ScreenLogin

	// No user: the exchange did not succeed.
	f.process(f.app.handleLoginDone(LoginDoneMsg{Route: auth.RouteHome}))
	if f.app.Screen() != ScreenHome {
		t.Errorf("Expected home, got %s", f.app.Screen())
	}
	if f.app.toast.Tone != components.ToastError {
		t.Errorf("Expected error toast, got %q", f.app.toast.Tone)
	}

	f.app.deps.Auth = auth.NewStore(f.app.deps.Client, auth.WithUser(&mockapi.DemoUser))
	f.app.screen = ScreenLogin
	f.process(f.app.handleLoginDone(LoginDoneMsg{Route: auth.RouteProjects}))
	if f.app.Screen() != ScreenProjects {
		t.Errorf("Expected projects, got %s", f.app.Screen())
	}
}

func TestCycle(t *testing.T) {
	if got := cycle(projects.Durations, 12); got != 4 {
		t.Errorf("Expected wrap to 4, got %d", got)
	}
	if got := cycle(projects.VideoSizes, api.VideoPortrait); got != api.VideoSquare {
		t.Errorf("Expected square, got %s", got)
	}
	if got := cycle(projects.Durations, 5); got != 4 {
		t.Errorf("Expected unknown value to reset to 4, got %d", got)
	}
}

func TestSplitPaths(t *testing.T) {
	got := splitPaths(" a.png, ,b.jpg ,")
	if len(got) != 2 || got[0] != "a.png" || got[1] != "b.jpg" {
		t.Errorf("Expected [a.png b.jpg], got %q", got)
	}
}
