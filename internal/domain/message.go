package domain

import "time"

// Message is a chat message between two users. Messages are immutable once
// created; the conversation between A and B is every message whose
// {sender, receiver} pair equals {A, B}, ordered by timestamp ascending.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}
