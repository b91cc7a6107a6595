// Package entity defines the announcement domain model.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Announcement is a post shared with the whole membership. PostedBy records
// the author and drives the mutation policy: authors edit their own posts,
// admins edit anything.
type Announcement struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostedBy  uuid.UUID `gorm:"type:uuid;index" json:"posted_by"`
	Title     string    `gorm:"not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a fresh UUID when none was provided.
func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
