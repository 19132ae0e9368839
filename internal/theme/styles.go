package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colors a mode renders with.
type Palette struct {
	Background    lipgloss.Color
	Surface       lipgloss.Color
	SurfaceLight  lipgloss.Color
	Border        lipgloss.Color
	Accent        lipgloss.Color
	AccentDim     lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Error         lipgloss.Color
	Info          lipgloss.Color
	Purple        lipgloss.Color
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
	OnAccent      lipgloss.Color
}

// NeuroAd palettes. The accent is the brand violet.
var (
	LightPalette = Palette{
		Background:    lipgloss.Color("#ffffff"),
		Surface:       lipgloss.Color("#f8f8fa"),
		SurfaceLight:  lipgloss.Color("#eeeef2"),
		Border:        lipgloss.Color("#d4d4dc"),
		Accent:        lipgloss.Color("#7c3aed"),
		AccentDim:     lipgloss.Color("#ede9fe"),
		Success:       lipgloss.Color("#15803d"),
		Warning:       lipgloss.Color("#b45309"),
		Error:         lipgloss.Color("#b91c1c"),
		Info:          lipgloss.Color("#1d4ed8"),
		Purple:        lipgloss.Color("#7e22ce"),
		TextPrimary:   lipgloss.Color("#0f0f14"),
		TextSecondary: lipgloss.Color("#3f3f46"),
		TextMuted:     lipgloss.Color("#71717a"),
		OnAccent:      lipgloss.Color("#ffffff"),
	}

	DarkPalette = Palette{
		Background:    lipgloss.Color("#0f0f0f"),
		Surface:       lipgloss.Color("#161616"),
		SurfaceLight:  lipgloss.Color("#1f1f23"),
		Border:        lipgloss.Color("#2a2a2a"),
		Accent:        lipgloss.Color("#a78bfa"),
		AccentDim:     lipgloss.Color("#3b2a66"),
		Success:       lipgloss.Color("#4ade80"),
		Warning:       lipgloss.Color("#fbbf24"),
		Error:         lipgloss.Color("#f87171"),
		Info:          lipgloss.Color("#64d2ff"),
		Purple:        lipgloss.Color("#c084fc"),
		TextPrimary:   lipgloss.Color("#ffffff"),
		TextSecondary: lipgloss.Color("#d0d0d0"),
		TextMuted:     lipgloss.Color("#808080"),
		OnAccent:      lipgloss.Color("#0f0f0f"),
	}
)

// PaletteFor returns the palette of a mode.
func PaletteFor(m Mode) Palette {
	if m == Dark {
		return DarkPalette
	}
	return LightPalette
}

// Styles contains all styled components
type Styles struct {
	Mode    Mode
	Palette Palette

	// Header
	HeaderContainer lipgloss.Style
	Logo            lipgloss.Style
	LogoDot         lipgloss.Style
	UserName        lipgloss.Style
	NavActive       lipgloss.Style
	NavInactive     lipgloss.Style

	// Footer
	FooterContainer lipgloss.Style
	Help            lipgloss.Style
	HelpKey         lipgloss.Style

	// Content
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
	ValueMuted    lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style

	// Cards and lists
	Card           lipgloss.Style
	CardActive     lipgloss.Style
	ListItem       lipgloss.Style
	ListItemActive lipgloss.Style
	ListCursor     lipgloss.Style

	// Buttons
	ButtonPrimary   lipgloss.Style
	ButtonSecondary lipgloss.Style
	ButtonDisabled  lipgloss.Style

	// Modal
	ModalContainer lipgloss.Style
	ModalTitle     lipgloss.Style
	ModalContent   lipgloss.Style

	// Inputs
	Input      lipgloss.Style
	InputFocus lipgloss.Style
	InputLabel lipgloss.Style

	// Step indicator
	StepDone    lipgloss.Style
	StepCurrent lipgloss.Style
	StepPending lipgloss.Style

	// Mockups
	Phone lipgloss.Style

	Spinner lipgloss.Style
	Divider lipgloss.Style
}

// New builds the styles for a mode.
func New(m Mode) *Styles {
	p := PaletteFor(m)
	s := &Styles{Mode: m, Palette: p}

	s.HeaderContainer = lipgloss.NewStyle().
		Padding(0, 2).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Border)

	s.Logo = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextPrimary)

	s.LogoDot = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	s.UserName = lipgloss.NewStyle().
		Foreground(p.TextSecondary)

	s.NavActive = lipgloss.NewStyle().
		Background(p.Accent).
		Foreground(p.OnAccent).
		Bold(true).
		Padding(0, 2).
		MarginRight(1)

	s.NavInactive = lipgloss.NewStyle().
		Background(p.SurfaceLight).
		Foreground(p.TextSecondary).
		Padding(0, 2).
		MarginRight(1)

	s.FooterContainer = lipgloss.NewStyle().
		Padding(0, 2).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(p.Border)

	s.Help = lipgloss.NewStyle().Foreground(p.TextMuted)
	s.HelpKey = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)

	s.Title = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		Bold(true).
		MarginBottom(1)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Italic(true)

	s.Label = lipgloss.NewStyle().Foreground(p.TextSecondary)
	s.Value = lipgloss.NewStyle().Foreground(p.TextPrimary)
	s.ValueMuted = lipgloss.NewStyle().Foreground(p.TextMuted)
	s.StatusSuccess = lipgloss.NewStyle().Foreground(p.Success)
	s.StatusError = lipgloss.NewStyle().Foreground(p.Error)
	s.StatusInfo = lipgloss.NewStyle().Foreground(p.Info)

	s.Card = lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border)

	s.CardActive = lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent)

	s.ListItem = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		Padding(0, 1)

	s.ListItemActive = lipgloss.NewStyle().
		Background(p.AccentDim).
		Foreground(p.TextPrimary).
		Padding(0, 1)

	s.ListCursor = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	s.ButtonPrimary = lipgloss.NewStyle().
		Background(p.Accent).
		Foreground(p.OnAccent).
		Padding(0, 2).
		Bold(true)

	s.ButtonSecondary = lipgloss.NewStyle().
		Background(p.SurfaceLight).
		Foreground(p.TextPrimary).
		Padding(0, 2)

	s.ButtonDisabled = lipgloss.NewStyle().
		Background(p.SurfaceLight).
		Foreground(p.TextMuted).
		Padding(0, 2)

	s.ModalContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(1, 2).
		Width(50)

	s.ModalTitle = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		Bold(true)

	s.ModalContent = lipgloss.NewStyle().
		Foreground(p.TextSecondary)

	s.Input = lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border)

	s.InputFocus = lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent)

	s.InputLabel = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Bold(true)

	s.StepDone = lipgloss.NewStyle().Foreground(p.Success).Bold(true)
	s.StepCurrent = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	s.StepPending = lipgloss.NewStyle().Foreground(p.TextMuted)

	s.Phone = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.TextMuted).
		Padding(0, 1)

	s.Spinner = lipgloss.NewStyle().Foreground(p.Accent)
	s.Divider = lipgloss.NewStyle().Foreground(p.Border)

	return s
}

// Badge renders a pill in one of the named tones: muted, amber, purple,
// green, red. Unknown tones render muted.
func (s *Styles) Badge(tone, text string) string {
	var c lipgloss.Color
	switch tone {
	case "amber":
		c = s.Palette.Warning
	case "purple":
		c = s.Palette.Purple
	case "green":
		c = s.Palette.Success
	case "red":
		c = s.Palette.Error
	default:
		c = s.Palette.TextMuted
	}
	return lipgloss.NewStyle().
		Foreground(c).
		Bold(true).
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Render(text)
}

// Align returns the horizontal alignment for a text direction.
func Align(rtl bool) lipgloss.Position {
	if rtl {
		return lipgloss.Right
	}
	return lipgloss.Left
}

// Swatch renders a hex color as a filled block followed by its value.
func (s *Styles) Swatch(hex string) string {
	if hex == "" {
		return s.ValueMuted.Render("—")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██") + " " + s.Value.Render(hex)
}
