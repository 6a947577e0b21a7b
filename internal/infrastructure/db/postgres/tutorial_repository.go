package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tutorial-service/internal/domain/entities"
	"tutorial-service/internal/domain/repositories"
)

type TutorialRepository struct {
	db *gorm.DB
}

func NewTutorialRepository(db *gorm.DB) repositories.TutorialRepository {
	return &TutorialRepository{db: db}
}

func (r *TutorialRepository) Create(tutorial *entities.ValidatedTutorial) (*entities.Tutorial, error) {
	tutorialModel := mapTutorialToModel(tutorial.GetTutorial())

	if err := r.db.Create(&tutorialModel).Error; err != nil {
		return nil, err
	}

	// Read back the created tutorial to ensure data integrity
	return r.FindById(tutorialModel.Id)
}

func (r *TutorialRepository) FindById(id uuid.UUID) (*entities.Tutorial, error) {
	var tutorialModel TutorialModel
	if err := r.db.Where("id = ?", id).First(&tutorialModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapTutorialToEntity(&tutorialModel), nil
}

func (r *TutorialRepository) FindByTitle(title string) (*entities.Tutorial, error) {
	var tutorialModel TutorialModel
	if err := r.db.Where("title = ?", title).First(&tutorialModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapTutorialToEntity(&tutorialModel), nil
}

// FindAll applies the filter options with AND semantics and offset-based
// pagination. Row order is whatever the store iterates; no explicit sort.
func (r *TutorialRepository) FindAll(filter repositories.TutorialFilter) ([]*entities.Tutorial, error) {
	query := r.db.Model(&TutorialModel{})

	if filter.TitleContains != "" {
		query = query.Where("title LIKE ?", "%"+filter.TitleContains+"%")
	}
	if filter.CreatedFrom != nil && filter.CreatedTo != nil {
		query = query.Where("created_at BETWEEN ? AND ?", filter.CreatedFrom, filter.CreatedTo)
	}

	var tutorialModels []TutorialModel
	if err := query.Offset(filter.Offset()).Limit(filter.Limit).Find(&tutorialModels).Error; err != nil {
		return nil, err
	}

	tutorials := make([]*entities.Tutorial, 0, len(tutorialModels))
	for i := range tutorialModels {
		tutorials = append(tutorials, mapTutorialToEntity(&tutorialModels[i]))
	}
	return tutorials, nil
}

func (r *TutorialRepository) Update(tutorial *entities.ValidatedTutorial) (*entities.Tutorial, error) {
	tutorialModel := mapTutorialToModel(tutorial.GetTutorial())

	if err := r.db.Save(&tutorialModel).Error; err != nil {
		return nil, err
	}

	// Read back the updated tutorial to ensure data integrity
	return r.FindById(tutorialModel.Id)
}

func (r *TutorialRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&TutorialModel{}, "id = ?", id).Error
}

func mapTutorialToModel(tutorial *entities.Tutorial) TutorialModel {
	return TutorialModel{
		Id:        tutorial.Id,
		CreatedAt: tutorial.CreatedAt,
		UpdatedAt: tutorial.UpdatedAt,
		Title:     tutorial.Title,
		Content:   tutorial.Content,
	}
}

func mapTutorialToEntity(tutorialModel *TutorialModel) *entities.Tutorial {
	return &entities.Tutorial{
		Id:        tutorialModel.Id,
		CreatedAt: tutorialModel.CreatedAt,
		UpdatedAt: tutorialModel.UpdatedAt,
		Title:     tutorialModel.Title,
		Content:   tutorialModel.Content,
	}
}
