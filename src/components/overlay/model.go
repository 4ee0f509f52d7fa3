// model.go - The conversation overlay controller: open/closed state, the
// message history, and the send pipeline to the conversation backend.

package overlay

import (
	"context"
	"errors"
	"strings"
	"time"

	"skylight/src/components/indicator"
	"skylight/src/models"
	"skylight/src/services/assistant"
	"skylight/src/types"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Fixed assistant texts.
const (
	greetingText = "Hi! I'm the Skylight assistant. Ask me anything about our services, pricing, or process."
	apologyText  = "Sorry, something went wrong on my end. Please try again in a moment."
	noReplyText  = "Sorry, I couldn't process that. Could you rephrase it?"
)

// Focus is deferred so it lands after the opening transition has started
// and cannot steal the scroll position mid-animation.
const focusDelay = 200 * time.Millisecond

// Backend sends one message and returns the assistant's reply text.
type Backend interface {
	Send(ctx context.Context, text, sessionID string) (string, error)
}

// replyMsg carries one backend response back into the update loop.
// Replies are appended in the order these messages arrive, which under
// concurrent requests is resolution order, not send order.
type replyMsg struct {
	text string
	err  error
}

// focusInputMsg triggers the deferred input focus after opening.
type focusInputMsg struct{}

// Model represents the conversation overlay.
type Model struct {
	backend Backend
	logger  *zap.Logger

	open      bool
	composing bool
	session   *models.Session
	placement types.Rect

	input textinput.Model
	spin  spinner.Model
}

// New creates a closed overlay bound to a conversation backend.
func New(backend Backend, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	input := textinput.New()
	input.Placeholder = "Type a message…"
	input.CharLimit = 500
	input.Prompt = "> "

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))

	return Model{
		backend: backend,
		logger:  logger,
		input:   input,
		spin:    spin,
	}
}

// IsOpen reports whether the overlay is currently shown.
func (m *Model) IsOpen() bool {
	return m.open
}

// Placement returns the overlay's current on-screen rectangle.
func (m *Model) Placement() types.Rect {
	return m.placement
}

// Messages returns the session history, or nil before the first open.
func (m *Model) Messages() []models.Message {
	if m.session == nil {
		return nil
	}
	return m.session.Messages
}

// Composing reports whether a reply is pending.
func (m *Model) Composing() bool {
	return m.composing
}

// Open reveals the overlay, lazily creating the session with its greeting,
// and computes the initial placement from the indicator's rectangle.
func (m *Model) Open(ind indicator.State, viewportWidth, viewportHeight int) tea.Cmd {
	if m.open {
		return nil
	}
	m.open = true

	if m.session == nil {
		m.session = models.NewSession()
		m.session.Append(models.NewMessage(models.SenderAssistant, greetingText))
		m.logger.Info("conversation session started", zap.String("session_id", m.session.ID))
	}

	m.placement = Placement(ind, viewportWidth, viewportHeight)

	cmds := []tea.Cmd{
		tea.Tick(focusDelay, func(time.Time) tea.Msg { return focusInputMsg{} }),
	}
	if m.composing {
		cmds = append(cmds, m.spin.Tick)
	}
	return tea.Batch(cmds...)
}

// Close hides the overlay. History is kept; an in-flight request is not
// cancelled and its reply still lands in the history when it arrives.
func (m *Model) Close() {
	m.open = false
	m.input.Blur()
}

// RecomputePlacement refreshes the placement; called by the app when the
// indicator's docked mode flips while the overlay is open.
func (m *Model) RecomputePlacement(ind indicator.State, viewportWidth, viewportHeight int) {
	if !m.open {
		return
	}
	m.placement = Placement(ind, viewportWidth, viewportHeight)
}

// SendMessage submits the current input value. Empty or whitespace-only
// input is a no-op: nothing is appended and no request is made.
func (m *Model) SendMessage() tea.Cmd {
	if m.session == nil {
		return nil
	}
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return nil
	}

	m.session.Append(models.NewMessage(models.SenderUser, text))
	m.input.Reset()
	m.composing = true

	backend := m.backend
	sessionID := m.session.ID
	send := func() tea.Msg {
		reply, err := backend.Send(context.Background(), text, sessionID)
		return replyMsg{text: reply, err: err}
	}
	return tea.Batch(m.spin.Tick, send)
}

// Update handles overlay messages. Reply messages are processed even while
// the overlay is closed so no response is ever dropped.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case replyMsg:
		m.composing = false
		m.session.Append(models.NewMessage(models.SenderAssistant, m.replyText(msg)))
		return nil

	case focusInputMsg:
		if m.open {
			return m.input.Focus()
		}
		return nil

	case spinner.TickMsg:
		if !m.composing {
			return nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return cmd

	case tea.KeyMsg:
		if !m.open {
			return nil
		}
		switch msg.String() {
		case "enter":
			return m.SendMessage()
		case "esc":
			m.Close()
			return nil
		case "ctrl+y":
			if text := m.session.LastAssistantText(); text != "" {
				_ = clipboard.WriteAll(text)
			}
			return nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	return nil
}

// replyText maps a backend outcome to the assistant text to display.
func (m *Model) replyText(msg replyMsg) string {
	switch {
	case msg.err == nil:
		return msg.text
	case errors.Is(msg.err, assistant.ErrNoReplyField):
		return noReplyText
	default:
		m.logger.Warn("assistant reply failed", zap.Error(msg.err))
		return apologyText
	}
}
