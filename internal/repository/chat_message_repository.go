package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flowboard/flowboard-api/internal/models"
)

// GormChatMessageRepository is a GORM implementation of ChatMessageRepository
type GormChatMessageRepository struct {
	db *gorm.DB
}

// NewChatMessageRepository creates a new ChatMessageRepository
func NewChatMessageRepository(db *gorm.DB) ChatMessageRepository {
	return &GormChatMessageRepository{db: db}
}

// Create stores a chat exchange
func (r *GormChatMessageRepository) Create(ctx context.Context, message *models.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListByUser returns a user's messages, newest first
func (r *GormChatMessageRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ChatMessage, error) {
	messages := []models.ChatMessage{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
