package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newID fills an empty primary key before insert.
func newID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// BeforeCreate is a GORM hook that runs before creating a new record
func (u *User) BeforeCreate(tx *gorm.DB) error {
	newID(&u.ID)
	return nil
}

// BeforeCreate is a GORM hook that runs before creating a new record
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	newID(&p.ID)
	return nil
}

// BeforeCreate is a GORM hook that runs before creating a new record
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	newID(&t.ID)
	return nil
}

// BeforeCreate is a GORM hook that runs before creating a new record
func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	newID(&m.ID)
	return nil
}
