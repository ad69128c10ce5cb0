// Package journal implements the CRUD resource protected by the
// authentication strategies. It never inspects credentials: handlers run
// only after the middleware has produced an allowed or exempt decision.
package journal

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Journal is a persisted journal entry.
type Journal struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate generates a UUID if not already set.
func (j *Journal) BeforeCreate(_ *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
