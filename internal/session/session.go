// Package session implements the session state machine: each Session is an
// explicit handle tracking one user's authentication state and active
// conversation, and the Manager drives its transitions.
package session

import (
	"github.com/docbotdev/docbot/internal/chatlog"
	"github.com/google/uuid"
)

// State of a session's authentication.
type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session tracks one user's authentication status and active conversation.
// All mutation goes through the Manager. A Session is not safe for
// concurrent use; it models a single logical user interacting sequentially.
type Session struct {
	ID           string
	state        State
	username     string
	conversation *chatlog.Conversation
	inFlight     bool
}

// NewSession returns a fresh anonymous session with an empty conversation.
func NewSession() *Session {
	return &Session{
		ID:           uuid.NewString(),
		state:        StateAnonymous,
		conversation: chatlog.NewConversation(),
	}
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Authenticated() bool {
	return s.state == StateAuthenticated
}

// Username returns the identity held by the session, "" while anonymous.
func (s *Session) Username() string {
	return s.username
}

// Conversation returns the session's active conversation record.
func (s *Session) Conversation() *chatlog.Conversation {
	return s.conversation
}
