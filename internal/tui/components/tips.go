package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/i18n"
	"github.com/neuroad/neuroad-cli/internal/theme"
)

// TipInterval is how long each marketing tip stays on screen.
const TipInterval = 4 * time.Second

// TipTickMsg advances a rotator.
type TipTickMsg struct {
	id int
}

// TipRotator is the full-screen loading view shown while generation runs.
// Tips cycle until Stop is called.
type TipRotator struct {
	tips    []api.MarketingTip
	index   int
	id      int
	running bool
}

func NewTipRotator(tips []api.MarketingTip) *TipRotator {
	return &TipRotator{tips: tips}
}

// SetTips replaces the tips and restarts from the first.
func (r *TipRotator) SetTips(tips []api.MarketingTip) {
	r.tips = tips
	r.index = 0
}

func (r *TipRotator) Index() int { return r.index }
func (r *TipRotator) Running() bool { return r.running }

// Advance moves to the next tip, wrapping at the end.
func (r *TipRotator) Advance() {
	if len(r.tips) == 0 {
		return
	}
	r.index = (r.index + 1) % len(r.tips)
}

// Current returns the visible tip in l.
func (r *TipRotator) Current(l i18n.Lang) string {
	if len(r.tips) == 0 {
		return ""
	}
	t := r.tips[r.index]
	return i18n.PickFor(l, t.Ar, t.En)
}

// Start begins rotating and returns the first tick.
func (r *TipRotator) Start() tea.Cmd {
	r.id++
	r.index = 0
	r.running = true
	return r.tick()
}

// Stop ends rotation. Pending ticks are ignored.
func (r *TipRotator) Stop() {
	r.running = false
	r.id++
}

func (r *TipRotator) tick() tea.Cmd {
	id := r.id
	return tea.Tick(TipInterval, func(time.Time) tea.Msg {
		return TipTickMsg{id: id}
	})
}

// Update advances on this rotator's own ticks.
func (r *TipRotator) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TipTickMsg)
	if !ok || !r.running || tick.id != r.id {
		return nil
	}
	r.Advance()
	return r.tick()
}

// View renders the overlay centered in width x height.
func (r *TipRotator) View(s *theme.Styles, l i18n.Lang, spinner string, width, height int) string {
	title := s.Title.Render(spinner + " " + i18n.Translate(l, i18n.KeyCreatingAd))
	sub := s.ValueMuted.Render(i18n.Translate(l, i18n.KeyMayTakeMinutes))

	card := ""
	if len(r.tips) > 0 {
		label := s.HelpKey.Render(strings.ToUpper(i18n.Translate(l, i18n.KeyGeneratingTip)))
		tip := s.Value.Width(min(50, max(width-10, 20))).Align(lipgloss.Center).Render(r.Current(l))
		card = s.Card.Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Center, label, "", tip))
	}

	dots := make([]string, len(r.tips))
	for i := range r.tips {
		if i == r.index {
			dots[i] = s.StepCurrent.Render("━━")
		} else {
			dots[i] = s.StepPending.Render("•")
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Center, title, sub, "", card, "", strings.Join(dots, " "))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
