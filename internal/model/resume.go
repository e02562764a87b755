package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resume is a parsed résumé saved by a user. Records are never updated after creation.
type Resume struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Filename    string    `gorm:"type:text;not null" json:"filename"`
	URL         string    `gorm:"type:text;not null" json:"url"`
	TextContent string    `gorm:"type:text" json:"text_content"`
	CreatedAt   time.Time `gorm:"type:timestamptz;not null;index" json:"created_at"`
}

// BeforeCreate assigns the primary key before insert.
func (r *Resume) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
