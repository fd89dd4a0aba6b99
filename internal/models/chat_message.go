package models

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	ID       uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:varchar(36);not null" json:"user_id"`
	Message  string    `gorm:"type:text;not null" json:"message"`
	Response string    `gorm:"type:text" json:"response"`
	// Context is the caller-supplied context serialized as JSON.
	Context   *string   `gorm:"type:text" json:"context"`
	CreatedAt time.Time `json:"created_at"`
}
