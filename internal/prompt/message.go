// Package prompt builds the role-tagged messages sent to a chat-completion model.
package prompt

import (
	"errors"
	"fmt"
)

// Role tags whose turn a message represents.
type Role string

const (
	RoleDeveloper Role = "developer"
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

var (
	ErrEmptyConversation = errors.New("conversation is empty")
	ErrUnknownRole       = errors.New("unknown role")
	ErrIndexOutOfRange   = errors.New("index out of range")
)

// Valid reports whether r is one of the three known tags.
func (r Role) Valid() bool {
	switch r {
	case RoleDeveloper, RoleAssistant, RoleUser:
		return true
	}
	return false
}

// Message is a single role-tagged turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Developer wraps text as an overarching instruction (tone, persona, rules).
func Developer(text string) Message {
	return Message{Role: RoleDeveloper, Content: text}
}

// System is an alias of Developer.
func System(text string) Message {
	return Developer(text)
}

// User wraps text as a user turn.
func User(text string) Message {
	return Message{Role: RoleUser, Content: text}
}

// Assistant wraps text as a model turn, typically used for few-shot examples.
func Assistant(text string) Message {
	return Message{Role: RoleAssistant, Content: text}
}

// Conversation is the ordered context of one request. Earlier entries are prior turns.
type Conversation []Message

// Replace swaps the message at index i in place.
func (c Conversation) Replace(i int, m Message) error {
	if i < 0 || i >= len(c) {
		return fmt.Errorf("replace %d of %d: %w", i, len(c), ErrIndexOutOfRange)
	}
	c[i] = m
	return nil
}

// Clone returns a copy that does not share storage with c.
func (c Conversation) Clone() Conversation {
	if c == nil {
		return nil
	}
	out := make(Conversation, len(c))
	copy(out, c)
	return out
}

// Validate checks the conversation is non-empty and every role is known.
func (c Conversation) Validate() error {
	if len(c) == 0 {
		return ErrEmptyConversation
	}
	for i, m := range c {
		if !m.Role.Valid() {
			return fmt.Errorf("message %d has role %q: %w", i, m.Role, ErrUnknownRole)
		}
	}
	return nil
}
