// styles.go - Visual styling for the landing page. Colors follow the
// Skylight brand palette.

package page

import "github.com/charmbracelet/lipgloss"

var (
	// Palette
	brandPrimary = lipgloss.Color("63")  // Indigo
	brandAccent  = lipgloss.Color("213") // Pink
	brandMuted   = lipgloss.Color("240")
	brandBright  = lipgloss.Color("15")

	headlineStyle = lipgloss.NewStyle().
			Foreground(brandPrimary).
			Bold(true)

	taglineStyle = lipgloss.NewStyle().
			Foreground(brandBright)

	sectionTitleStyle = lipgloss.NewStyle().
				Foreground(brandAccent).
				Bold(true).
				MarginTop(1)

	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(brandMuted).
			Padding(0, 2).
			Width(24)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(brandBright).
			Bold(true)

	priceStyle = lipgloss.NewStyle().
			Foreground(brandAccent).
			Bold(true)

	stepStyle = lipgloss.NewStyle().
			Foreground(brandPrimary).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(brandMuted)

	navStyle = lipgloss.NewStyle().
			Foreground(brandBright).
			Background(lipgloss.Color("235")).
			Bold(true).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(brandMuted).
			Background(lipgloss.Color("235")).
			Padding(0, 1)
)
