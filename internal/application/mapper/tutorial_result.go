package mapper

import (
	"tutorial-service/internal/application/common"
	"tutorial-service/internal/domain/entities"
)

func NewTutorialResultFromEntity(tutorial *entities.Tutorial) *common.TutorialResult {
	if tutorial == nil {
		return nil
	}

	return &common.TutorialResult{
		Id:        tutorial.Id,
		CreatedAt: tutorial.CreatedAt,
		UpdatedAt: tutorial.UpdatedAt,
		Title:     tutorial.Title,
		Content:   tutorial.Content,
	}
}
