package dto

// ChatMessage is one transcript turn as sent by the widget. The system
// prompt is never part of this list; it is injected server-side.
type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required"`
}
