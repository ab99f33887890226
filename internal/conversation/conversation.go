// Package conversation holds the chat transcript contract the widget relies
// on: an ordered list of turns persisted under a single storage key,
// surviving reloads and wiped by an explicit clear.
package conversation

import "github.com/google/uuid"

// Message is one turn in a conversation. IDs are opaque and assigned when
// the message is created; the synthesized system prompt is never stored here.
type Message struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NewMessage creates a message with a fresh opaque ID.
func NewMessage(role, content string) Message {
	return Message{
		ID:      uuid.NewString(),
		Role:    role,
		Content: content,
	}
}
