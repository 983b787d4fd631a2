package service

import (
	"chat-mvp/backend/internal/models"
	"chat-mvp/backend/internal/repository"
)

// MessageService mediates between the API layer and the message store
type MessageService struct {
	repo repository.MessageRepository
}

func NewMessageService(repo repository.MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

// Send constructs and durably persists a message from the authenticated
// sender. The sender argument must be the token's identity claim.
func (s *MessageService) Send(sender, receiver, content string) (*models.Message, error) {
	message := models.NewMessage(sender, receiver, content)
	if err := s.repo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

// Conversation returns every message exchanged between the two users, ordered
// by timestamp (insertion order breaks ties). The full history is returned on
// every call; there is no pagination or delta fetch.
func (s *MessageService) Conversation(currentUser, otherUser string) ([]models.Message, error) {
	return s.repo.GetConversation(currentUser, otherUser)
}
