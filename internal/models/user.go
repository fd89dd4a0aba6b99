package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

type User struct {
	ID                   uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email                string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash         string    `gorm:"type:varchar(255);not null" json:"-"`
	FullName             string    `gorm:"type:varchar(255)" json:"full_name"`
	JobRole              string    `gorm:"type:varchar(255)" json:"job_role"`
	AvatarURL            string    `gorm:"type:varchar(512)" json:"avatar_url"`
	Language             string    `gorm:"type:varchar(10)" json:"language"`
	Theme                string    `gorm:"type:varchar(20)" json:"theme"`
	TotalPoints          int       `gorm:"not null" json:"total_points"`
	Rank                 string    `gorm:"type:varchar(20)" json:"rank"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	SoundEnabled         bool      `json:"sound_enabled"`
	Role                 UserRole  `gorm:"type:varchar(10);not null" json:"role"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
