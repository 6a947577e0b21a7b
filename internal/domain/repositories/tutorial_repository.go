package repositories

import (
	"time"

	"github.com/google/uuid"
	"tutorial-service/internal/domain/entities"
)

// TutorialRepository persists Tutorial records. Lookups return (nil, nil)
// when no record matches; an error always means a store fault.
type TutorialRepository interface {
	Create(tutorial *entities.ValidatedTutorial) (*entities.Tutorial, error)
	FindById(id uuid.UUID) (*entities.Tutorial, error)
	FindByTitle(title string) (*entities.Tutorial, error)
	FindAll(filter TutorialFilter) ([]*entities.Tutorial, error)
	Update(tutorial *entities.ValidatedTutorial) (*entities.Tutorial, error)
	Delete(id uuid.UUID) error
}

// TutorialFilter narrows and pages a tutorial listing. All set fields
// combine with AND. TitleContains is a case-sensitive substring match;
// CreatedFrom/CreatedTo bound created_at inclusively.
type TutorialFilter struct {
	TitleContains string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	Page          int
	Limit         int
}

// Offset returns the row offset for the filter's page.
func (f TutorialFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
