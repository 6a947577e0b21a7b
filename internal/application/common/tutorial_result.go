package common

import (
	"time"

	"github.com/google/uuid"
)

type TutorialResult struct {
	Id        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string
	Content   string
}
