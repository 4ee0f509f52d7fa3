// session.go - Conversation session state for one program run.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one continuous conversation thread. The id is created
// once and reused for every backend request until the process exits; it is
// never regenerated mid-session.
type Session struct {
	ID        string    `json:"id"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSession creates a session with a fresh id and an empty history.
func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
}

// Append adds a message to the history and returns it.
func (s *Session) Append(msg Message) Message {
	s.Messages = append(s.Messages, msg)
	return msg
}

// LastAssistantText returns the text of the most recent assistant message,
// or "" if there is none yet.
func (s *Session) LastAssistantText() string {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Sender == SenderAssistant {
			return s.Messages[i].Text
		}
	}
	return ""
}
