// view.go - Rendering for the conversation overlay panel.

package overlay

import (
	"strings"

	"skylight/src/models"

	"github.com/charmbracelet/lipgloss"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	userMsgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	assistantMsgStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("117"))

	composingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// View renders the overlay panel at its placement size.
func (m *Model) View() string {
	if !m.open {
		return ""
	}

	rect := m.placement.Round()
	w := int(rect.Width)
	h := int(rect.Height)
	if w < 10 || h < 6 {
		return ""
	}

	innerWidth := w - 2
	// Title, separator, input and hint rows surround the message area.
	historyHeight := h - 2 - 4

	title := titleStyle.Render("Skylight Assistant")
	separator := strings.Repeat("─", innerWidth)

	history := m.renderHistory(innerWidth-2, historyHeight)

	inputLine := m.input.View()
	hint := composingStyle.Render("enter send · esc close · ctrl+y copy reply")

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		separator,
		history,
		separator,
		inputLine,
		hint,
	)

	return panelStyle.Width(innerWidth).Height(h - 2).Render(body)
}

// renderHistory renders the newest messages that fit in the given height.
func (m *Model) renderHistory(width, height int) string {
	if height < 1 {
		return ""
	}

	var lines []string
	for _, msg := range m.Messages() {
		lines = append(lines, renderMessage(msg, width)...)
	}
	if m.composing {
		lines = append(lines, composingStyle.Render(m.spin.View()+"thinking…"))
	}

	// Keep the tail: the newest messages matter most.
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderMessage(msg models.Message, width int) []string {
	style := assistantMsgStyle
	prefix := "Skylight: "
	if msg.Sender == models.SenderUser {
		style = userMsgStyle
		prefix = "You: "
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(prefix + msg.Text)
	out := strings.Split(wrapped, "\n")
	for i := range out {
		out[i] = style.Render(out[i])
	}
	return out
}
