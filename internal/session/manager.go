package session

import (
	"context"

	"github.com/docbotdev/docbot/internal/assistant"
	"github.com/docbotdev/docbot/internal/chatlog"
	"github.com/docbotdev/docbot/internal/common"
	"github.com/docbotdev/docbot/internal/logging"
	"github.com/docbotdev/docbot/internal/users"
)

// MinPasswordLength is the sign-up password policy, enforced here rather
// than in the credential store.
const MinPasswordLength = 6

// Manager drives session transitions: sign-up, login, logout, conversation
// reset, and the assistant round-trip.
type Manager struct {
	users     *users.Service
	assistant assistant.Orchestrator
	log       logging.Logger
}

func NewManager(users *users.Service, orchestrator assistant.Orchestrator, log logging.Logger) *Manager {
	return &Manager{users: users, assistant: orchestrator, log: log}
}

// SignUp creates a new account. Allowed only while anonymous; it does not
// log the new user in. Password policy (confirmation match, minimum length)
// is checked before the store is touched.
func (m *Manager) SignUp(ctx context.Context, sess *Session, username, password, confirm string) error {
	if sess.Authenticated() {
		return common.ErrorAlreadyAuthenticated
	}
	if password != confirm {
		return common.ErrorPasswordMismatch
	}
	if len(password) < MinPasswordLength {
		return common.ErrorPasswordTooShort
	}

	if err := m.users.AddUser(ctx, username, password); err != nil {
		return err
	}

	m.log.Info(ctx, "new user signed up", "username", username)
	return nil
}

// Login authenticates the session. On bad credentials the session stays
// anonymous and common.ErrorInvalidCredentials is returned; an unknown user
// and a wrong password are indistinguishable. A successful login always
// starts with an empty conversation.
func (m *Manager) Login(ctx context.Context, sess *Session, username, password string) error {
	ok, err := m.users.VerifyUser(ctx, username, password)
	if err != nil {
		return err
	}
	if !ok {
		m.log.Warn(ctx, "failed login attempt", "username", username)
		return common.ErrorInvalidCredentials
	}

	sess.state = StateAuthenticated
	sess.username = username
	sess.conversation = chatlog.NewConversation()
	sess.inFlight = false

	m.log.Info(ctx, "user logged in", "username", username, "session_id", sess.ID)
	return nil
}

// Logout clears the held identity and discards the in-memory conversation.
// Already-exported log files are untouched. A no-op while anonymous.
func (m *Manager) Logout(ctx context.Context, sess *Session) {
	if !sess.Authenticated() {
		return
	}
	m.log.Info(ctx, "user logged out", "username", sess.username)

	sess.state = StateAnonymous
	sess.username = ""
	sess.conversation = chatlog.NewConversation()
	sess.inFlight = false
}

// ResetConversation clears the conversation only; identity is unchanged.
func (m *Manager) ResetConversation(ctx context.Context, sess *Session) error {
	if !sess.Authenticated() {
		return common.ErrorNotAuthenticated
	}
	sess.conversation = chatlog.NewConversation()
	m.log.Info(ctx, "conversation reset", "username", sess.username)
	return nil
}

// Ask appends the user's prompt to the conversation and performs the
// blocking assistant call. At most one call may be outstanding per session.
// On failure the user message stays appended, no assistant message is
// recorded, and the caller can Retry without resending the prompt.
func (m *Manager) Ask(ctx context.Context, sess *Session, prompt string) (string, error) {
	if !sess.Authenticated() {
		return "", common.ErrorNotAuthenticated
	}
	if sess.inFlight {
		return "", common.ErrorRequestInFlight
	}

	sess.conversation.Append(chatlog.RoleUser, prompt)
	return m.complete(ctx, sess, prompt)
}

// Retry re-issues the last user prompt after a failed assistant call
// without appending it again.
func (m *Manager) Retry(ctx context.Context, sess *Session) (string, error) {
	if !sess.Authenticated() {
		return "", common.ErrorNotAuthenticated
	}
	if sess.inFlight {
		return "", common.ErrorRequestInFlight
	}

	msgs := sess.conversation.Messages()
	if len(msgs) == 0 || msgs[len(msgs)-1].Role != chatlog.RoleUser {
		return "", common.ErrorNothingToRetry
	}

	return m.complete(ctx, sess, msgs[len(msgs)-1].Content)
}

func (m *Manager) complete(ctx context.Context, sess *Session, prompt string) (string, error) {
	sess.inFlight = true
	defer func() { sess.inFlight = false }()

	// The prompt is passed separately; history covers everything before it.
	history := sess.conversation.Messages()
	history = history[:len(history)-1]

	reply, err := m.assistant.Reply(ctx, history, prompt)
	if err != nil {
		m.log.Error(ctx, "assistant call failed", "username", sess.username, "error", err)
		return "", err
	}

	sess.conversation.Append(chatlog.RoleAssistant, reply)
	return reply, nil
}
