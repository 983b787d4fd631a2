package repository

import (
	"chat-mvp/backend/internal/models"

	"gorm.io/gorm"
)

// MessageRepository is the message store contract. Create persists a fully
// constructed message; GetConversation returns the symmetric two-party
// conversation in chronological order.
type MessageRepository interface {
	Create(message *models.Message) error
	GetByID(id string) (*models.Message, error)
	GetConversation(userA, userB string) ([]models.Message, error)
}

type GormMessageRepository struct {
	db *gorm.DB
}

func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

func (r *GormMessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *GormMessageRepository) GetByID(id string) (*models.Message, error) {
	var message models.Message
	err := r.db.First(&message, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// GetConversation runs a full-table symmetric filter. Fine for exactly one
// conversation between two fixed users; anything bigger needs a composite
// (participant-pair, timestamp) index.
func (r *GormMessageRepository) GetConversation(userA, userB string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("(sender = ? AND receiver = ?) OR (sender = ? AND receiver = ?)",
			userA, userB, userB, userA).
		Order("timestamp ASC, created_at ASC").
		Find(&messages).Error
	return messages, err
}
