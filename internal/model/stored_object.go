package model

import (
	"time"

	"github.com/google/uuid"
)

// StoredObject is a binary kept in the database when the database storage backend is selected.
// Key is the storage key, e.g. "<user_id>/<uuid>.pdf".
type StoredObject struct {
	Key         string    `gorm:"type:text;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	ContentType string    `gorm:"type:text"`
	Size        int64
	Content     []byte    `gorm:"type:bytea"`
	CreatedAt   time.Time `gorm:"type:timestamptz"`
}
