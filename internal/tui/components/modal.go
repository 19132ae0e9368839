package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neuroad/neuroad-cli/internal/i18n"
	"github.com/neuroad/neuroad-cli/internal/theme"
)

// ModalType is what the modal asks for.
type ModalType int

const (
	ModalConfirmation ModalType = iota
	ModalInput
)

// ModalAction is how the user closed a modal.
type ModalAction int

const (
	ModalConfirm ModalAction = iota
	ModalCancel
)

// ModalResult is returned when a modal closes.
type ModalResult struct {
	Action  ModalAction
	Payload any
}

// Modal is a centered dialog drawn over the current screen.
type Modal struct {
	styles    *theme.Styles
	lang      i18n.Lang
	visible   bool
	modalType ModalType
	title     string
	message   string
	payload   any

	textInput  textinput.Model
	inputLabel string

	focusConfirm bool
}

func NewModal(styles *theme.Styles, lang i18n.Lang) *Modal {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 40

	return &Modal{
		styles:       styles,
		lang:         lang,
		textInput:    ti,
		focusConfirm: true,
	}
}

// SetStyles switches theme or language for the next render.
func (m *Modal) SetStyles(styles *theme.Styles, lang i18n.Lang) {
	m.styles = styles
	m.lang = lang
}

// Show displays a confirmation modal
func (m *Modal) Show(title, message string, payload any) {
	m.visible = true
	m.modalType = ModalConfirmation
	m.title = title
	m.message = message
	m.payload = payload
	m.focusConfirm = false
}

// ShowInput displays an input modal
func (m *Modal) ShowInput(title, label, placeholder string, payload any) {
	m.visible = true
	m.modalType = ModalInput
	m.title = title
	m.inputLabel = label
	m.payload = payload
	m.textInput.Placeholder = placeholder
	m.textInput.SetValue("")
	m.textInput.Focus()
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.visible = false
	m.textInput.Blur()
}

func (m *Modal) IsVisible() bool { return m.visible }

// Payload returns what was passed to Show.
func (m *Modal) Payload() any { return m.payload }

// Update handles modal input. The result is non-nil once the modal closes.
func (m *Modal) Update(msg tea.Msg) (tea.Cmd, *ModalResult) {
	if !m.visible {
		return nil, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("esc"))):
		m.Hide()
		return nil, &ModalResult{Action: ModalCancel, Payload: m.payload}

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		switch m.modalType {
		case ModalInput:
			m.Hide()
			return nil, &ModalResult{Action: ModalConfirm, Payload: m.textInput.Value()}
		case ModalConfirmation:
			m.Hide()
			if m.focusConfirm {
				return nil, &ModalResult{Action: ModalConfirm, Payload: m.payload}
			}
			return nil, &ModalResult{Action: ModalCancel, Payload: m.payload}
		}
	}

	if m.modalType == ModalConfirmation {
		switch {
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("y"))):
			m.Hide()
			return nil, &ModalResult{Action: ModalConfirm, Payload: m.payload}
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("n"))):
			m.Hide()
			return nil, &ModalResult{Action: ModalCancel, Payload: m.payload}
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("tab", "left", "right"))):
			m.focusConfirm = !m.focusConfirm
		}
		return nil, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(keyMsg)
	return cmd, nil
}

// View renders the modal box.
func (m *Modal) View() string {
	if !m.visible {
		return ""
	}

	content := m.renderConfirmation()
	if m.modalType == ModalInput {
		content = m.renderInput()
	}
	return m.styles.ModalContainer.BorderForeground(m.styles.Palette.Accent).Render(content)
}

// ViewOverlay renders the modal centered on top of base.
func (m *Modal) ViewOverlay(base string, width, height int) string {
	if !m.visible {
		return base
	}
	modal := m.View()
	x := (width - lipgloss.Width(modal)) / 2
	y := (height - lipgloss.Height(modal)) / 2
	return PlaceOverlay(x, y, modal, base)
}

func (m *Modal) t(k i18n.Key) string { return i18n.Translate(m.lang, k) }

func (m *Modal) renderConfirmation() string {
	title := m.styles.ModalTitle.Render(m.title)
	message := m.styles.ModalContent.Render(m.message)

	confirm := " " + m.t(i18n.KeyConfirm) + " [y] "
	cancel := " " + m.t(i18n.KeyCancel) + " [n] "
	var confirmBtn, cancelBtn string
	if m.focusConfirm {
		confirmBtn = m.styles.ButtonPrimary.Render(confirm)
		cancelBtn = m.styles.ButtonSecondary.Render(cancel)
	} else {
		confirmBtn = m.styles.ButtonSecondary.Render(confirm)
		cancelBtn = m.styles.ButtonPrimary.Render(cancel)
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, cancelBtn, "  ", confirmBtn)
	if m.lang.Direction() == i18n.RTL {
		buttons = lipgloss.JoinHorizontal(lipgloss.Center, confirmBtn, "  ", cancelBtn)
	}
	return lipgloss.JoinVertical(theme.Align(m.lang.Direction() == i18n.RTL), title, "", message, "", buttons)
}

func (m *Modal) renderInput() string {
	title := m.styles.ModalTitle.Render(m.title)
	label := m.styles.InputLabel.Render(m.inputLabel)
	input := m.styles.InputFocus.Render(m.textInput.View())
	hint := m.styles.Help.Render("enter " + m.t(i18n.KeyConfirm) + " · esc " + m.t(i18n.KeyCancel))

	return lipgloss.JoinVertical(lipgloss.Left, title, "", label, input, "", hint)
}

// PlaceOverlay draws overlay on top of base at column x, row y.
func PlaceOverlay(x, y int, overlay, base string) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}

		baseRunes := []rune(baseLines[row])
		for len(baseRunes) < x {
			baseRunes = append(baseRunes, ' ')
		}

		overlayRunes := []rune(line)
		if x < 0 {
			x = 0
		}
		end := x + len(overlayRunes)
		if end > len(baseRunes) {
			baseRunes = append(baseRunes[:x], overlayRunes...)
		} else {
			copy(baseRunes[x:], overlayRunes)
		}
		baseLines[row] = string(baseRunes)
	}

	return strings.Join(baseLines, "\n")
}
