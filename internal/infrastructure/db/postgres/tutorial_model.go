package postgres

import (
	"time"

	"github.com/google/uuid"
)

// The unique index on title backs up the service-level existence check: two
// concurrent creates can both pass the check, but only one insert survives.
type TutorialModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string `gorm:"uniqueIndex;not null"`
	Content   string `gorm:"not null"`
}

func (TutorialModel) TableName() string {
	return "tutorials"
}
