package repositories

import (
	"github.com/google/uuid"
	"tutorial-service/internal/domain/entities"
)

// UserRepository persists Identity records. Lookups return (nil, nil) when no
// record matches; an error always means a store fault.
type UserRepository interface {
	Create(user *entities.ValidatedUser) (*entities.User, error)
	FindById(id uuid.UUID) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	FindAll(filter UserFilter) ([]*entities.User, error)
	Update(user *entities.ValidatedUser) (*entities.User, error)
	Delete(id uuid.UUID) error
}

// UserFilter narrows and pages a user listing. Zero values mean "no
// constraint"; Page and Limit are normalized by the service before the
// repository sees them.
type UserFilter struct {
	NameContains string
	Page         int
	Limit        int
}

// Offset returns the row offset for the filter's page.
func (f UserFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
