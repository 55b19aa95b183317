package history

import (
	"time"

	"github.com/google/uuid"
)

// Message is one stored turn of a transcript.
type Message struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Model     string    `json:"model,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSessionID returns a fresh transcript identifier.
func NewSessionID() string {
	return uuid.NewString()
}
