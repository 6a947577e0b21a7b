package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"tutorial-service/internal/domain/entities"
	"tutorial-service/internal/domain/repositories"
)

type mockUserRepo struct {
	createFn      func(user *entities.ValidatedUser) (*entities.User, error)
	findByIdFn    func(id uuid.UUID) (*entities.User, error)
	findByEmailFn func(email string) (*entities.User, error)
	findAllFn     func(filter repositories.UserFilter) ([]*entities.User, error)
	updateFn      func(user *entities.ValidatedUser) (*entities.User, error)
	deleteFn      func(id uuid.UUID) error
}

func (m *mockUserRepo) Create(user *entities.ValidatedUser) (*entities.User, error) {
	if m.createFn != nil {
		return m.createFn(user)
	}
	return user.GetUser(), nil
}

func (m *mockUserRepo) FindById(id uuid.UUID) (*entities.User, error) {
	if m.findByIdFn != nil {
		return m.findByIdFn(id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(email string) (*entities.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(email)
	}
	return nil, nil
}

func (m *mockUserRepo) FindAll(filter repositories.UserFilter) ([]*entities.User, error) {
	if m.findAllFn != nil {
		return m.findAllFn(filter)
	}
	return nil, nil
}

func (m *mockUserRepo) Update(user *entities.ValidatedUser) (*entities.User, error) {
	if m.updateFn != nil {
		return m.updateFn(user)
	}
	return user.GetUser(), nil
}

func (m *mockUserRepo) Delete(id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

type mockTutorialRepo struct {
	createFn      func(tutorial *entities.ValidatedTutorial) (*entities.Tutorial, error)
	findByIdFn    func(id uuid.UUID) (*entities.Tutorial, error)
	findByTitleFn func(title string) (*entities.Tutorial, error)
	findAllFn     func(filter repositories.TutorialFilter) ([]*entities.Tutorial, error)
	updateFn      func(tutorial *entities.ValidatedTutorial) (*entities.Tutorial, error)
	deleteFn      func(id uuid.UUID) error

	createCalls int
}

func (m *mockTutorialRepo) Create(tutorial *entities.ValidatedTutorial) (*entities.Tutorial, error) {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(tutorial)
	}
	return tutorial.GetTutorial(), nil
}

func (m *mockTutorialRepo) FindById(id uuid.UUID) (*entities.Tutorial, error) {
	if m.findByIdFn != nil {
		return m.findByIdFn(id)
	}
	return nil, nil
}

func (m *mockTutorialRepo) FindByTitle(title string) (*entities.Tutorial, error) {
	if m.findByTitleFn != nil {
		return m.findByTitleFn(title)
	}
	return nil, nil
}

func (m *mockTutorialRepo) FindAll(filter repositories.TutorialFilter) ([]*entities.Tutorial, error) {
	if m.findAllFn != nil {
		return m.findAllFn(filter)
	}
	return nil, nil
}

func (m *mockTutorialRepo) Update(tutorial *entities.ValidatedTutorial) (*entities.Tutorial, error) {
	if m.updateFn != nil {
		return m.updateFn(tutorial)
	}
	return tutorial.GetTutorial(), nil
}

func (m *mockTutorialRepo) Delete(id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

// mockCache records deletes so tests can assert invalidation happened exactly
// once per mutation.
type mockCache struct {
	deleted   []string
	deleteErr error
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (m *mockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, key)
	return nil
}
