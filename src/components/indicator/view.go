// view.go - Rendering for the assistant indicator box.

package indicator

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	indicatorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Foreground(lipgloss.Color("15")).
			Align(lipgloss.Center, lipgloss.Center)

	hoveredStyle = indicatorStyle.
			BorderForeground(lipgloss.Color("213")).
			Bold(true)
)

// View renders the indicator at its current rectangle size. While large it
// shows the full invitation; docked it shrinks to a badge.
func (m *Model) View() string {
	st := m.state
	rect := st.Rect.Round()

	w := int(rect.Width)
	h := int(rect.Height)
	if w < 4 || h < 3 {
		return ""
	}

	label := "✳ Ask the Skylight assistant"
	if st.Docked || w < 26 {
		label = "✳ Chat"
	}
	if st.Open {
		label = "✳ …"
	}

	style := indicatorStyle
	if st.Hovered {
		style = hoveredStyle
	}

	// Border eats one cell on each side.
	return style.Width(w - 2).Height(h - 2).Render(label)
}
