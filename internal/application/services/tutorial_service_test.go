package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tutorial-service/internal/application/command"
	"tutorial-service/internal/application/query"
	"tutorial-service/internal/domain/apperrors"
	"tutorial-service/internal/domain/entities"
	"tutorial-service/internal/domain/repositories"
)

func TestCreateTutorial_Success_InvalidatesListing(t *testing.T) {
	repo := &mockTutorialRepo{}
	cache := &mockCache{}
	svc := NewTutorialService(repo, cache)

	result, err := svc.CreateTutorial(&command.CreateTutorialCommand{
		Title:   "Tutorial 1",
		Content: "content",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tutorial 1", result.Result.Title)
	assert.NotEqual(t, uuid.Nil, result.Result.Id)
	assert.Equal(t, []string{"TutorialService_findAll"}, cache.deleted)
}

func TestCreateTutorial_DuplicateTitle_NoWrite(t *testing.T) {
	existing := entities.NewTutorial("Tutorial 1", "content")
	repo := &mockTutorialRepo{
		findByTitleFn: func(title string) (*entities.Tutorial, error) {
			return existing, nil
		},
	}
	cache := &mockCache{}
	svc := NewTutorialService(repo, cache)

	_, err := svc.CreateTutorial(&command.CreateTutorialCommand{
		Title:   "Tutorial 1",
		Content: "other content",
	})
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Zero(t, repo.createCalls, "conflicting create must not persist anything")
	assert.Empty(t, cache.deleted, "failed create must not invalidate the listing")
}

func TestFindTutorialById_NotFound(t *testing.T) {
	svc := NewTutorialService(&mockTutorialRepo{}, &mockCache{})

	_, err := svc.FindTutorialById(uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindTutorialByTitle_AbsenceIsNotAnError(t *testing.T) {
	svc := NewTutorialService(&mockTutorialRepo{}, &mockCache{})

	result, err := svc.FindTutorialByTitle("missing")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestListTutorials_DefaultsApplied(t *testing.T) {
	var got repositories.TutorialFilter
	repo := &mockTutorialRepo{
		findAllFn: func(filter repositories.TutorialFilter) ([]*entities.Tutorial, error) {
			got = filter
			return nil, nil
		},
	}
	svc := NewTutorialService(repo, &mockCache{})

	_, err := svc.ListTutorials(&query.ListTutorialsQuery{Title: "Tutorial"})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 10, got.Limit)
	assert.Equal(t, "Tutorial", got.TitleContains)
	assert.Equal(t, 0, got.Offset())
}

func TestUpdateTutorial_NotFound(t *testing.T) {
	svc := NewTutorialService(&mockTutorialRepo{}, &mockCache{})

	_, err := svc.UpdateTutorial(&command.UpdateTutorialCommand{Id: uuid.New(), Title: "x"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateTutorial_TitleHeldByAnotherRecord(t *testing.T) {
	existing := entities.NewTutorial("Tutorial 1", "content")
	other := entities.NewTutorial("Tutorial 2", "content")
	repo := &mockTutorialRepo{
		findByIdFn: func(id uuid.UUID) (*entities.Tutorial, error) {
			return existing, nil
		},
		findByTitleFn: func(title string) (*entities.Tutorial, error) {
			if title == other.Title {
				return other, nil
			}
			return nil, nil
		},
	}
	cache := &mockCache{}
	svc := NewTutorialService(repo, cache)

	_, err := svc.UpdateTutorial(&command.UpdateTutorialCommand{
		Id:    existing.Id,
		Title: "Tutorial 2",
	})
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Empty(t, cache.deleted)
}

// Updating a record to its own current title is not a conflict.
func TestUpdateTutorial_OwnTitleIsNotAConflict(t *testing.T) {
	existing := entities.NewTutorial("Tutorial 1", "content")
	repo := &mockTutorialRepo{
		findByIdFn: func(id uuid.UUID) (*entities.Tutorial, error) {
			return existing, nil
		},
		findByTitleFn: func(title string) (*entities.Tutorial, error) {
			return existing, nil
		},
	}
	cache := &mockCache{}
	svc := NewTutorialService(repo, cache)

	result, err := svc.UpdateTutorial(&command.UpdateTutorialCommand{
		Id:      existing.Id,
		Title:   "Tutorial 1",
		Content: "new content",
	})
	require.NoError(t, err)
	assert.Equal(t, "new content", result.Result.Content)
	assert.Equal(t, []string{"TutorialService_findAll"}, cache.deleted)
}

func TestUpdateTutorial_EmptyPatchFieldsLeftUnchanged(t *testing.T) {
	existing := entities.NewTutorial("Tutorial 1", "content")
	repo := &mockTutorialRepo{
		findByIdFn: func(id uuid.UUID) (*entities.Tutorial, error) {
			return existing, nil
		},
	}
	svc := NewTutorialService(repo, &mockCache{})

	result, err := svc.UpdateTutorial(&command.UpdateTutorialCommand{
		Id:      existing.Id,
		Content: "new content",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tutorial 1", result.Result.Title)
	assert.Equal(t, "new content", result.Result.Content)
}

func TestDeleteTutorial_NotFound(t *testing.T) {
	cache := &mockCache{}
	svc := NewTutorialService(&mockTutorialRepo{}, cache)

	err := svc.DeleteTutorial(uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, cache.deleted)
}

func TestDeleteTutorial_Success_InvalidatesListingOnce(t *testing.T) {
	existing := entities.NewTutorial("Tutorial 1", "content")
	repo := &mockTutorialRepo{
		findByIdFn: func(id uuid.UUID) (*entities.Tutorial, error) {
			if id == existing.Id {
				return existing, nil
			}
			return nil, nil
		},
	}
	cache := &mockCache{}
	svc := NewTutorialService(repo, cache)

	require.NoError(t, svc.DeleteTutorial(existing.Id))
	assert.Equal(t, []string{"TutorialService_findAll"}, cache.deleted)
}

func TestCreateTutorial_CacheFaultPropagates(t *testing.T) {
	cacheErr := errors.New("redis: connection refused")
	svc := NewTutorialService(&mockTutorialRepo{}, &mockCache{deleteErr: cacheErr})

	_, err := svc.CreateTutorial(&command.CreateTutorialCommand{
		Title:   "Tutorial 1",
		Content: "content",
	})
	assert.ErrorIs(t, err, cacheErr)
}
