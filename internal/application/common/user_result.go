package common

import (
	"time"

	"github.com/google/uuid"
)

// UserResult is the outward shape of an Identity. The password hash never
// leaves the service layer.
type UserResult struct {
	Id        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Email     string
}
