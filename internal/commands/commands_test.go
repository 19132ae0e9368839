package commands

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/config"
	"github.com/neuroad/neuroad-cli/internal/mockapi"
	"github.com/neuroad/neuroad-cli/internal/projects"
	"github.com/neuroad/neuroad-cli/internal/wizard"
)

var testRoot = func() *cobra.Command {
	root := &cobra.Command{Use: "neuroad", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(LoginCmd, LogoutCmd, WhoamiCmd, NewCmd, ProjectsCmd, GenerateCmd,
		CaptionCmd, CatalogCmd, LangCmd, ThemeCmd)
	return root
}()

// setup points the commands at a fresh mock backend and config directory.
func setup(t *testing.T) *mockapi.Server {
	t.Helper()
	backend := mockapi.New()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	Prepare(Globals{ConfigDir: t.TempDir(), Backend: srv.URL}, io.Discard)

	pasteLogin, noBrowser, loginTimeout = false, true, 5*time.Minute
	newOpts = newOptions{}
	deleteYes, exportPath = false, ""
	genInstructions, videoDuration, videoSize, copyCaption = "", projects.DefaultDuration, string(projects.DefaultVideoSize), false
	return backend
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	testRoot.SetOut(&out)
	testRoot.SetErr(&out)
	testRoot.SetArgs(args)
	err := testRoot.Execute()
	return out.String(), err
}

// script answers prompts in order, then reports EOF.
type script struct {
	answers []string
	asked   []string
}

func (s *script) Prompt(p string) (string, error) {
	s.asked = append(s.asked, p)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func (s *script) Close() error { return nil }

func useScript(t *testing.T, answers ...string) *script {
	t.Helper()
	s := &script{answers: answers}
	prev := newPrompter
	newPrompter = func() prompter { return s }
	t.Cleanup(func() { newPrompter = prev })
	return s
}

func TestLoginPasteWhoamiLogout(t *testing.T) {
	setup(t)
	useScript(t, "http://localhost/auth/callback#session_id=abc123")

	out, err := run(t, "login", "--paste")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !strings.Contains(out, mockapi.DemoUser.Email) {
		t.Errorf("Expected signed-in email in output, got %q", out)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.SessionToken == "" {
		t.Fatal("Expected session token to be saved")
	}
	if !cfg.JustAuthenticated {
		t.Error("Expected just-authenticated marker to be saved")
	}
	if cfg.User == nil || cfg.User.ID != mockapi.DemoUser.UserID {
		t.Errorf("Expected cached user %s, got %+v", mockapi.DemoUser.UserID, cfg.User)
	}

	out, err = run(t, "whoami")
	if err != nil {
		t.Fatalf("whoami failed: %v", err)
	}
	if !strings.Contains(out, mockapi.DemoUser.Name) {
		t.Errorf("Expected user name in output, got %q", out)
	}
	cfg, _ = config.Load()
	if cfg.JustAuthenticated {
		t.Error("Expected marker to be consumed by the identity check")
	}

	if _, err := run(t, "logout"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	cfg, _ = config.Load()
	if cfg.SessionToken != "" || cfg.User != nil {
		t.Errorf("Expected session cleared, got token=%q user=%+v", cfg.SessionToken, cfg.User)
	}

	out, _ = run(t, "whoami")
	if !strings.Contains(out, "Not logged in") {
		t.Errorf("Expected not-logged-in hint, got %q", out)
	}
}

func TestLoginPasteWithoutSession(t *testing.T) {
	backend := setup(t)
	useScript(t, "http://localhost/auth/callback#error=denied")

	if _, err := run(t, "login", "--paste"); err == nil {
		t.Fatal("Expected error for a pasted address without session_id")
	}
	if n := backend.Calls("POST /auth/session"); n != 0 {
		t.Errorf("Expected no session exchange, got %d calls", n)
	}
}

func TestLoginTimesOut(t *testing.T) {
	setup(t)

	_, err := run(t, "login", "--timeout", "50ms")
	if err == nil || !strings.Contains(err.Error(), "timed out") {
		t.Fatalf("Expected timeout error, got %v", err)
	}
}

func TestNewFromFlags(t *testing.T) {
	backend := setup(t)

	out, err := run(t, "new",
		"--content-type", "store",
		"--name", "Acme",
		"--description", "Specialty coffee",
		"--strength", "Fresh beans",
		"--strength", "Fast delivery",
		"--goal", "direct_sale",
		"--platform", "post_square",
		"--strategy", "hook",
		"--accent", "#FF0000",
	)
	if err != nil {
		t.Fatalf("new failed: %v\n%s", err, out)
	}

	req := backend.LastCreate()
	if req == nil {
		t.Fatal("Expected a create request")
	}
	if req.ContentType != api.ContentStore {
		t.Errorf("Expected content type store, got %s", req.ContentType)
	}
	if req.CompanyName != "Acme" {
		t.Errorf("Expected company Acme, got %s", req.CompanyName)
	}
	if len(req.Strengths) != 2 || req.Strengths[1] != "Fast delivery" {
		t.Errorf("Expected two strengths, got %v", req.Strengths)
	}
	if req.BrandColors.Accent != "#FF0000" || req.BrandColors.Primary != wizard.DefaultPrimary {
		t.Errorf("Expected accent override with default primary, got %+v", req.BrandColors)
	}
	if req.Language != "ar" {
		t.Errorf("Expected language ar, got %s", req.Language)
	}
}

func TestNewMissingStep(t *testing.T) {
	backend := setup(t)

	_, err := run(t, "new", "--content-type", "store", "--name", "Acme")
	if !errors.Is(err, wizard.ErrStepIncomplete) {
		t.Fatalf("Expected ErrStepIncomplete, got %v", err)
	}
	if backend.LastCreate() != nil {
		t.Error("Expected no create request")
	}
}

func TestNewRejectsUnknownPlatform(t *testing.T) {
	setup(t)

	_, err := run(t, "new", "--content-type", "store", "--name", "Acme", "--description", "Coffee",
		"--goal", "direct_sale", "--platform", "billboard", "--strategy", "hook")
	if err == nil || !strings.Contains(err.Error(), "billboard") {
		t.Fatalf("Expected unknown platform error, got %v", err)
	}
}

func TestNewPlain(t *testing.T) {
	backend := setup(t)
	s := useScript(t,
		"1",           // content type
		"",            // website url
		"Acme",        // company name
		"Roastery",    // description
		"Fresh",       // strength 1
		"",            // no more strengths
		"",            // no images
		"2",           // brand awareness
		"post_square", // platform by id
		"", "", "#00FF00",
		"scarcity",
	)

	out, err := run(t, "new", "--plain")
	if err != nil {
		t.Fatalf("new --plain failed: %v\nasked: %v\n%s", err, s.asked, out)
	}

	req := backend.LastCreate()
	if req == nil {
		t.Fatal("Expected a create request")
	}
	if req.DesignGoal != api.GoalBrandAwareness {
		t.Errorf("Expected brand_awareness, got %s", req.DesignGoal)
	}
	if req.Platform != "post_square" || req.PsychologicalStrategyID != "scarcity" {
		t.Errorf("Expected post_square/scarcity, got %s/%s", req.Platform, req.PsychologicalStrategyID)
	}
	if req.BrandColors.Accent != "#00FF00" {
		t.Errorf("Expected accent #00FF00, got %s", req.BrandColors.Accent)
	}
	if len(req.Strengths) != 1 || req.Strengths[0] != "Fresh" {
		t.Errorf("Expected [Fresh], got %v", req.Strengths)
	}
}

func TestNewExtractPrefills(t *testing.T) {
	backend := setup(t)
	backend.SetScrapeResult("https://acme.test", &api.ScrapedData{
		Title:       "Acme Roasters",
		Description: "Single origin coffee",
		Services:    []string{"Roasting", "Subscriptions"},
	})

	_, err := run(t, "new", "--content-type", "store", "--url", "https://acme.test", "--extract",
		"--goal", "direct_sale", "--platform", "post_square", "--strategy", "hook")
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	req := backend.LastCreate()
	if req.CompanyName != "Acme Roasters" {
		t.Errorf("Expected scraped name, got %s", req.CompanyName)
	}
	if len(req.Strengths) != 2 {
		t.Errorf("Expected scraped strengths, got %v", req.Strengths)
	}
	if req.ScrapedData == nil {
		t.Error("Expected scraped data in the payload")
	}
}

func TestNewUploadsImages(t *testing.T) {
	backend := setup(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.png")
	if err := os.WriteFile(path, pngBytes(), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := run(t, "new", "--content-type", "specific_product", "--name", "Mug", "--description", "Ceramic",
		"--image", path, "--goal", "educational", "--platform", "ig_story", "--strategy", "story_based")
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	req := backend.LastCreate()
	if len(req.Images) != 1 {
		t.Fatalf("Expected 1 image, got %v", req.Images)
	}
	if _, ok := backend.Upload(req.Images[0]); !ok {
		t.Errorf("Expected %s to be stored by the backend", req.Images[0])
	}
}

func TestProjectsList(t *testing.T) {
	backend := setup(t)
	p := backend.AddProject(api.Project{CompanyName: "Acme", ContentType: api.ContentStore, Status: api.StatusCompleted})

	out, err := run(t, "projects", "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "Acme") || !strings.Contains(out, p.ID) {
		t.Errorf("Expected project in output, got %q", out)
	}
	if !strings.Contains(out, "Total: 1 projects") {
		t.Errorf("Expected total line, got %q", out)
	}
}

func TestProjectsListUnauthenticated(t *testing.T) {
	backend := setup(t)
	backend.Fail("GET /projects", http.StatusUnauthorized)

	out, err := run(t, "projects", "list")
	if err != nil {
		t.Fatalf("Expected 401 to print a hint, got error %v", err)
	}
	if !strings.Contains(out, "Not logged in") {
		t.Errorf("Expected not-logged-in hint, got %q", out)
	}
}

func TestProjectsDeleteConfirmation(t *testing.T) {
	backend := setup(t)
	p := backend.AddProject(api.Project{CompanyName: "Acme"})

	useScript(t, "n")
	out, err := run(t, "projects", "delete", p.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !strings.Contains(out, "Nothing deleted") {
		t.Errorf("Expected declined message, got %q", out)
	}
	if n := backend.Calls("DELETE /projects/{id}"); n != 0 {
		t.Errorf("Expected no DELETE before confirmation, got %d", n)
	}

	useScript(t, "y")
	if _, err := run(t, "projects", "delete", p.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := backend.Project(p.ID); ok {
		t.Error("Expected project to be deleted")
	}
}

func TestProjectsDeleteYes(t *testing.T) {
	backend := setup(t)
	p := backend.AddProject(api.Project{CompanyName: "Acme"})
	s := useScript(t)

	if _, err := run(t, "projects", "delete", p.ID, "--yes"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(s.asked) != 0 {
		t.Errorf("Expected no prompt with --yes, got %v", s.asked)
	}
	if _, ok := backend.Project(p.ID); ok {
		t.Error("Expected project to be deleted")
	}
}

func TestProjectsShowAndExport(t *testing.T) {
	backend := setup(t)
	p := backend.AddProject(api.Project{
		CompanyName:             "Acme",
		Platform:                "post_square",
		PsychologicalStrategyID: "scarcity",
		GeneratedImages:         []string{"/api/uploads/a.png"},
		GeneratedCaptions:       []api.Caption{{CaptionAr: "عرض", CaptionEn: "Offer", Hashtags: []string{"#a"}}},
		Status:                  api.StatusCompleted,
	})

	out, err := run(t, "projects", "show", p.ID)
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out, "/api/uploads/a.png") || !strings.Contains(out, "http") {
		t.Errorf("Expected absolute asset URL, got %q", out)
	}
	if !strings.Contains(out, "عرض") {
		t.Errorf("Expected Arabic caption, got %q", out)
	}

	path := filepath.Join(t.TempDir(), "acme.html")
	if _, err := run(t, "projects", "export", p.ID, "-o", path); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected export file: %v", err)
	}
	if !strings.Contains(string(data), `dir="rtl"`) {
		t.Errorf("Expected an RTL page, got %q", string(data)[:min(200, len(data))])
	}
}

func TestProjectsShowNotFound(t *testing.T) {
	setup(t)

	_, err := run(t, "projects", "show", "missing")
	if !errors.Is(err, api.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestGenerateImages(t *testing.T) {
	backend := setup(t)
	p := backend.AddProject(api.Project{CompanyName: "Acme", PsychologicalStrategyID: "hook"})

	if _, err := run(t, "lang", "en"); err != nil {
		t.Fatalf("lang failed: %v", err)
	}
	out, err := run(t, "generate", "images", p.ID, "--instructions", "warm tones")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	req := backend.LastGenerate()
	if req == nil || req.VariationCount != projects.VariationCount {
		t.Fatalf("Expected %d variations, got %+v", projects.VariationCount, req)
	}
	if req.CustomInstructions == nil || *req.CustomInstructions != "warm tones" {
		t.Errorf("Expected instructions, got %v", req.CustomInstructions)
	}
	if !strings.Contains(out, "3 images generated successfully") {
		t.Errorf("Expected success message, got %q", out)
	}
	if !strings.Contains(out, "Marketing Tip") {
		t.Errorf("Expected a marketing tip while waiting, got %q", out)
	}
}

func TestGenerateVideoOptions(t *testing.T) {
	backend := setup(t)
	p := backend.AddProject(api.Project{CompanyName: "Acme"})

	if _, err := run(t, "generate", "video", p.ID, "--duration", "12", "--size", "landscape"); err != nil {
		t.Fatalf("generate video failed: %v", err)
	}
	req := backend.LastVideo()
	if req == nil || req.Duration != 12 || req.VideoSize != api.VideoLandscape {
		t.Fatalf("Expected 12s landscape, got %+v", req)
	}
	if req.CustomInstructions != nil {
		t.Errorf("Expected null instructions, got %q", *req.CustomInstructions)
	}
}

func TestGenerateVideoRejectsDuration(t *testing.T) {
	backend := setup(t)
	p := backend.AddProject(api.Project{CompanyName: "Acme"})

	_, err := run(t, "generate", "video", p.ID, "--duration", "5")
	if !errors.Is(err, projects.ErrInvalidDuration) {
		t.Fatalf("Expected ErrInvalidDuration, got %v", err)
	}
	if n := backend.Calls("POST /generate-video"); n != 0 {
		t.Errorf("Expected no request, got %d", n)
	}
}

func TestCaption(t *testing.T) {
	backend := setup(t)
	p := backend.AddProject(api.Project{
		CompanyName:       "Acme",
		GeneratedCaptions: []api.Caption{{CaptionAr: "عرض", CaptionEn: "Offer", Hashtags: []string{"#a", "#b"}}},
	})

	out, err := run(t, "caption", p.ID)
	if err != nil {
		t.Fatalf("caption failed: %v", err)
	}
	if !strings.Contains(out, "عرض\n\n#a #b") {
		t.Errorf("Expected Arabic caption with hashtags, got %q", out)
	}
}

func TestCatalog(t *testing.T) {
	backend := setup(t)

	out, err := run(t, "catalog", "strategies")
	if err != nil {
		t.Fatalf("catalog failed: %v", err)
	}
	if !strings.Contains(out, mockapi.Strategies[0].NameAr) {
		t.Errorf("Expected Arabic strategy name, got %q", out)
	}

	out, _ = run(t, "catalog", "platforms")
	if !strings.Contains(out, "post_square") {
		t.Errorf("Expected platform ids, got %q", out)
	}
	out, _ = run(t, "catalog", "tips")
	if !strings.Contains(out, mockapi.Tips[0].Ar) {
		t.Errorf("Expected tips, got %q", out)
	}
	if n := backend.Calls("GET /strategies"); n != 1 {
		t.Errorf("Expected 1 strategies call, got %d", n)
	}
}

func TestLangAndTheme(t *testing.T) {
	setup(t)

	if _, err := run(t, "lang"); err != nil {
		t.Fatalf("lang failed: %v", err)
	}
	cfg, _ := config.Load()
	if cfg.Language != "en" {
		t.Errorf("Expected toggle to en, got %s", cfg.Language)
	}

	out, err := run(t, "lang", "ar-SA")
	if err != nil {
		t.Fatalf("lang failed: %v", err)
	}
	if !strings.Contains(out, "rtl") {
		t.Errorf("Expected rtl direction, got %q", out)
	}
	cfg, _ = config.Load()
	if cfg.Language != "ar" {
		t.Errorf("Expected ar, got %s", cfg.Language)
	}

	if _, err := run(t, "theme", "dark"); err != nil {
		t.Fatalf("theme failed: %v", err)
	}
	cfg, _ = config.Load()
	if cfg.Theme != "dark" {
		t.Errorf("Expected dark, got %s", cfg.Theme)
	}
	if _, err := run(t, "theme", "sepia"); err == nil {
		t.Error("Expected error for unknown theme")
	}
}

func pngBytes() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}
