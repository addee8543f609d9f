// Package chatlog holds the in-memory conversation record and the
// timestamped text-file export store for chat logs.
package chatlog

// Role identifies who produced a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one exchanged chat message. Immutable once appended; order is
// the append order.
type Message struct {
	Role    Role
	Content string
}

// Conversation is the append-only ordered record of messages exchanged in
// one session since its last reset.
type Conversation struct {
	messages []Message
}

func NewConversation() *Conversation {
	return &Conversation{}
}

// Append adds a message to the end of the conversation.
func (c *Conversation) Append(role Role, content string) {
	c.messages = append(c.messages, Message{Role: role, Content: content})
}

// Messages returns a copy of the message sequence in append order.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Len() int {
	return len(c.messages)
}

// Clear discards all messages. The conversation stays usable.
func (c *Conversation) Clear() {
	c.messages = nil
}
