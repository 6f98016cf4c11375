package service

import (
	"context"
	"errors"
	"time"
	"trainio/internal/domain"
	"trainio/internal/store"
)

// ChatService covers messaging: sending, reading conversations and the
// contact list. Messages are append-only and immutable once stored.
type ChatService interface {
	SendMessage(ctx context.Context, senderID, receiverID, text string) (*domain.Message, error)
	Conversation(ctx context.Context, a, b string) ([]domain.Message, error)
	Contacts(ctx context.Context, userID, nameFilter string) ([]domain.User, error)
}

type chatService struct {
	store *store.Store
	now   func() time.Time
}

// NewChatService creates a new instance of chatService.
func NewChatService(st *store.Store) ChatService {
	return &chatService{store: st, now: time.Now}
}

// SendMessage appends a message. Receiver existence is deliberately not
// checked; the store accepts any id.
func (s *chatService) SendMessage(ctx context.Context, senderID, receiverID, text string) (*domain.Message, error) {
	if senderID == "" || receiverID == "" {
		return nil, errors.New("sender and receiver ids are required")
	}
	if text == "" {
		return nil, errors.New("message text cannot be empty")
	}
	msg := s.store.AddMessage(domain.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
		Timestamp:  s.now(),
	})
	return &msg, nil
}

// Conversation returns the messages between a and b, oldest first.
func (s *chatService) Conversation(ctx context.Context, a, b string) ([]domain.Message, error) {
	msgs := s.store.Snapshot().Conversation(a, b)
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return msgs, nil
}

// Contacts returns everyone except userID, optionally name-filtered.
func (s *chatService) Contacts(ctx context.Context, userID, nameFilter string) ([]domain.User, error) {
	contacts := s.store.Snapshot().Contacts(userID, nameFilter)
	for i := range contacts {
		contacts[i].PasswordHash = ""
	}
	if contacts == nil {
		contacts = []domain.User{}
	}
	return contacts, nil
}
