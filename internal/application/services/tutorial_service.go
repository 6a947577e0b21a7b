package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"tutorial-service/internal/application/command"
	"tutorial-service/internal/application/common"
	"tutorial-service/internal/application/interfaces"
	"tutorial-service/internal/application/mapper"
	"tutorial-service/internal/application/query"
	"tutorial-service/internal/domain/apperrors"
	"tutorial-service/internal/domain/entities"
	"tutorial-service/internal/domain/repositories"
)

// tutorialListingCacheKey is the single cached unfiltered listing for
// tutorials. Mutations delete it; population is left to the cache's
// consumers.
const tutorialListingCacheKey = "TutorialService_findAll"

type TutorialService struct {
	tutorialRepo repositories.TutorialRepository
	cache        repositories.ListingCache
}

func NewTutorialService(
	tutorialRepo repositories.TutorialRepository,
	cache repositories.ListingCache,
) interfaces.TutorialService {
	return &TutorialService{
		tutorialRepo: tutorialRepo,
		cache:        cache,
	}
}

func (s *TutorialService) CreateTutorial(createCommand *command.CreateTutorialCommand) (*command.CreateTutorialCommandResult, error) {
	// Check if a tutorial with this title already exists
	existingTutorial, err := s.tutorialRepo.FindByTitle(createCommand.Title)
	if err != nil {
		return nil, err
	}
	if existingTutorial != nil {
		return nil, fmt.Errorf("tutorial with this title %w", apperrors.ErrConflict)
	}

	newTutorial := entities.NewTutorial(createCommand.Title, createCommand.Content)
	validatedTutorial, err := entities.NewValidatedTutorial(newTutorial)
	if err != nil {
		return nil, err
	}

	createdTutorial, err := s.tutorialRepo.Create(validatedTutorial)
	if err != nil {
		return nil, err
	}

	if err := s.invalidateListing(); err != nil {
		return nil, err
	}

	result := command.CreateTutorialCommandResult{
		Result: mapper.NewTutorialResultFromEntity(createdTutorial),
	}

	return &result, nil
}

func (s *TutorialService) FindTutorialById(id uuid.UUID) (*query.TutorialQueryResult, error) {
	tutorial, err := s.tutorialRepo.FindById(id)
	if err != nil {
		return nil, err
	}
	if tutorial == nil {
		return nil, fmt.Errorf("tutorial %w", apperrors.ErrNotFound)
	}

	result := query.TutorialQueryResult{
		Result: mapper.NewTutorialResultFromEntity(tutorial),
	}

	return &result, nil
}

// FindTutorialByTitle returns an absent result rather than an error when no
// tutorial has the title.
func (s *TutorialService) FindTutorialByTitle(title string) (*query.TutorialQueryResult, error) {
	tutorial, err := s.tutorialRepo.FindByTitle(title)
	if err != nil {
		return nil, err
	}
	if tutorial == nil {
		return nil, nil
	}

	result := query.TutorialQueryResult{
		Result: mapper.NewTutorialResultFromEntity(tutorial),
	}

	return &result, nil
}

// ListTutorials applies the provided options with AND semantics. Pagination
// is offset-based: skip (page-1)*limit rows, take limit rows.
func (s *TutorialService) ListTutorials(listQuery *query.ListTutorialsQuery) (*query.TutorialQueryListResult, error) {
	filter := repositories.TutorialFilter{
		TitleContains: listQuery.Title,
		CreatedFrom:   listQuery.CreatedFrom,
		CreatedTo:     listQuery.CreatedTo,
		Page:          listQuery.Page,
		Limit:         listQuery.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	tutorials, err := s.tutorialRepo.FindAll(filter)
	if err != nil {
		return nil, err
	}

	result := query.TutorialQueryListResult{
		Result: make([]*common.TutorialResult, 0, len(tutorials)),
	}
	for _, tutorial := range tutorials {
		result.Result = append(result.Result, mapper.NewTutorialResultFromEntity(tutorial))
	}

	return &result, nil
}

func (s *TutorialService) UpdateTutorial(updateCommand *command.UpdateTutorialCommand) (*command.UpdateTutorialCommandResult, error) {
	tutorial, err := s.tutorialRepo.FindById(updateCommand.Id)
	if err != nil {
		return nil, err
	}
	if tutorial == nil {
		return nil, fmt.Errorf("tutorial %w", apperrors.ErrNotFound)
	}

	// Re-check uniqueness when the patch moves the tutorial to another
	// title, excluding the record's own id.
	if updateCommand.Title != "" && updateCommand.Title != tutorial.Title {
		conflictingTutorial, err := s.tutorialRepo.FindByTitle(updateCommand.Title)
		if err != nil {
			return nil, err
		}
		if conflictingTutorial != nil && conflictingTutorial.Id != tutorial.Id {
			return nil, fmt.Errorf("another tutorial with this title %w", apperrors.ErrConflict)
		}
	}

	if err := tutorial.Update(updateCommand.Title, updateCommand.Content); err != nil {
		return nil, err
	}

	validatedTutorial, err := entities.NewValidatedTutorial(tutorial)
	if err != nil {
		return nil, err
	}

	updatedTutorial, err := s.tutorialRepo.Update(validatedTutorial)
	if err != nil {
		return nil, err
	}

	if err := s.invalidateListing(); err != nil {
		return nil, err
	}

	result := command.UpdateTutorialCommandResult{
		Result: mapper.NewTutorialResultFromEntity(updatedTutorial),
	}

	return &result, nil
}

func (s *TutorialService) DeleteTutorial(id uuid.UUID) error {
	tutorial, err := s.tutorialRepo.FindById(id)
	if err != nil {
		return err
	}
	if tutorial == nil {
		return fmt.Errorf("tutorial %w", apperrors.ErrNotFound)
	}

	if err := s.tutorialRepo.Delete(id); err != nil {
		return err
	}

	return s.invalidateListing()
}

func (s *TutorialService) invalidateListing() error {
	if err := s.cache.Delete(context.Background(), tutorialListingCacheKey); err != nil {
		return fmt.Errorf("failed to invalidate tutorial listing cache: %w", err)
	}
	return nil
}
