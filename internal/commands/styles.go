package commands

import "github.com/charmbracelet/lipgloss"

// Styles for plain command output
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("141"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 2)
)

var toneColors = map[string]lipgloss.Color{
	"amber":  lipgloss.Color("214"),
	"purple": lipgloss.Color("141"),
	"green":  lipgloss.Color("42"),
	"red":    lipgloss.Color("203"),
}

// badge renders a status label in its tone color.
func badge(tone, label string) string {
	c, ok := toneColors[tone]
	if !ok {
		c = lipgloss.Color("245")
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true).Render("[" + label + "]")
}
