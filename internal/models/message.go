package models

import (
	"time"

	"github.com/google/uuid"
)

// Message represents a chat message. Messages are append-only: no update or
// delete path exists anywhere in the system.
type Message struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMessage constructs a message with a freshly generated identifier and a
// server-side UTC timestamp. Sender always comes from the authenticated
// caller's token claim, never from the request body.
func NewMessage(sender, receiver, content string) *Message {
	return &Message{
		ID:        uuid.New().String(),
		Sender:    sender,
		Receiver:  receiver,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}
