package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/i18n"
	"github.com/neuroad/neuroad-cli/internal/theme"
)

func TestCarouselClamps(t *testing.T) {
	c := NewCarousel([]string{"a", "b", "c"})

	if c.Prev() {
		t.Error("Expected Prev at the first slide to do nothing")
	}
	c.Next()
	c.Next()
	if c.Next() {
		t.Error("Expected Next at the last slide to do nothing")
	}
	if c.Current() != "c" {
		t.Errorf("Expected c, got %s", c.Current())
	}
	if !c.Jump(0) || c.Current() != "a" {
		t.Error("Expected jump to the first slide")
	}
	if c.Jump(7) {
		t.Error("Expected out of range jump to fail")
	}
}

func TestCarouselMirrorsArrowsInRTL(t *testing.T) {
	c := NewCarousel([]string{"a", "b"})

	c.Left(true)
	if c.Index() != 1 {
		t.Errorf("Expected left to advance in RTL, at %d", c.Index())
	}
	c.Right(true)
	if c.Index() != 0 {
		t.Errorf("Expected right to go back in RTL, at %d", c.Index())
	}
	c.Right(false)
	if c.Index() != 1 {
		t.Errorf("Expected right to advance in LTR, at %d", c.Index())
	}
}

func TestCarouselSwipeThreshold(t *testing.T) {
	c := NewCarousel([]string{"a", "b"})

	if c.Swipe(20, 20-SwipeThreshold) {
		t.Error("Expected a short drag to be ignored")
	}
	if !c.Swipe(20, 10) || c.Index() != 1 {
		t.Error("Expected a left drag to advance")
	}
	if !c.Swipe(10, 20) || c.Index() != 0 {
		t.Error("Expected a right drag to go back")
	}
}

func TestCarouselSetItemsKeepsIndexInRange(t *testing.T) {
	c := NewCarousel([]string{"a", "b", "c"})
	c.Jump(2)
	c.SetItems([]string{"a"})
	if c.Index() != 0 {
		t.Errorf("Expected index clamped to 0, got %d", c.Index())
	}
	c.SetItems(nil)
	if c.Current() != "" {
		t.Error("Expected no current slide when empty")
	}
}

func TestCarouselView(t *testing.T) {
	c := NewCarousel([]string{"/api/generated/x_1.png", "/api/generated/x_2.png"})
	out := c.View(theme.New(theme.Light), i18n.English, func(s string) string { return "http://h" + s }, 60)
	if !strings.Contains(out, "Image 1") || !strings.Contains(out, "http://h/api/generated/x_1.png") {
		t.Errorf("Expected label and resolved URL, got:\n%s", out)
	}
}

func TestTipRotatorWraps(t *testing.T) {
	r := NewTipRotator([]api.MarketingTip{{Ar: "أ", En: "one"}, {Ar: "ب", En: "two"}})

	r.Advance()
	if r.Current(i18n.English) != "two" {
		t.Errorf("Expected two, got %s", r.Current(i18n.English))
	}
	r.Advance()
	if r.Index() != 0 || r.Current(i18n.Arabic) != "أ" {
		t.Errorf("Expected wrap to the first tip, at %d", r.Index())
	}
}

func TestTipRotatorIgnoresStaleTicks(t *testing.T) {
	r := NewTipRotator([]api.MarketingTip{{En: "one"}, {En: "two"}})

	if r.Update(TipTickMsg{id: 0}) != nil {
		t.Error("Expected no tick while stopped")
	}

	r.Start()
	if !r.Running() {
		t.Fatal("Expected rotator running after Start")
	}
	stale := TipTickMsg{id: r.id - 1}
	if r.Update(stale) != nil || r.Index() != 0 {
		t.Error("Expected stale tick ignored")
	}
	if r.Update(TipTickMsg{id: r.id}) == nil || r.Index() != 1 {
		t.Error("Expected own tick to advance and reschedule")
	}

	r.Stop()
	if r.Running() {
		t.Error("Expected rotator stopped")
	}
	if r.Update(TipTickMsg{id: r.id}) != nil {
		t.Error("Expected no tick after stop")
	}
}

func TestModalConfirmation(t *testing.T) {
	m := NewModal(theme.New(theme.Dark), i18n.English)
	m.Show("Delete", "Sure?", "p1")

	_, res := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if res == nil || res.Action != ModalCancel {
		t.Errorf("Expected enter to cancel with cancel focused, got %+v", res)
	}

	m.Show("Delete", "Sure?", "p1")
	_, res = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if res == nil || res.Action != ModalConfirm || res.Payload != "p1" {
		t.Errorf("Expected confirm with payload, got %+v", res)
	}
	if m.IsVisible() {
		t.Error("Expected modal hidden after answer")
	}
}

func TestModalInput(t *testing.T) {
	m := NewModal(theme.New(theme.Light), i18n.Arabic)
	m.ShowInput("Instructions", "Text", "", nil)

	for _, r := range "hi" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, res := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if res == nil || res.Payload != "hi" {
		t.Errorf("Expected typed value, got %+v", res)
	}
}

func TestHandle(t *testing.T) {
	if got := Handle("Acme Widgets Co"); got != "acmewidgetsco" {
		t.Errorf("Expected acmewidgetsco, got %s", got)
	}
	if got := Handle("  "); got != "brand" {
		t.Errorf("Expected brand, got %s", got)
	}
}

func TestToastExpires(t *testing.T) {
	now := time.Now()
	toast := Toast{Text: "saved", Expires: now.Add(ToastDuration)}
	if !toast.Active(now) {
		t.Error("Expected toast active")
	}
	if toast.Active(now.Add(ToastDuration + time.Millisecond)) {
		t.Error("Expected toast expired")
	}
}

func TestPlaceOverlay(t *testing.T) {
	base := "aaaaa\nbbbbb\nccccc"
	got := PlaceOverlay(1, 1, "XY", base)
	if got != "aaaaa\nbXYbb\nccccc" {
		t.Errorf("Unexpected overlay result %q", got)
	}
}
