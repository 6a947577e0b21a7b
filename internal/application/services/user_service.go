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

// userListingCacheKey is the single cached unfiltered listing for users.
// Mutations delete it; population is left to the cache's consumers.
const userListingCacheKey = "UserService_findAll"

type UserService struct {
	userRepo repositories.UserRepository
	cache    repositories.ListingCache
}

func NewUserService(
	userRepo repositories.UserRepository,
	cache repositories.ListingCache,
) interfaces.UserService {
	return &UserService{
		userRepo: userRepo,
		cache:    cache,
	}
}

func (s *UserService) CreateUser(createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error) {
	// Check if a user with this email already exists
	existingUser, err := s.userRepo.FindByEmail(createCommand.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, fmt.Errorf("user with this email %w", apperrors.ErrConflict)
	}

	newUser := entities.NewUser(createCommand.Name, createCommand.Email, createCommand.Password)
	if err := newUser.HashPassword(); err != nil {
		return nil, err
	}

	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	createdUser, err := s.userRepo.Create(validatedUser)
	if err != nil {
		return nil, err
	}

	if err := s.invalidateListing(); err != nil {
		return nil, err
	}

	result := command.CreateUserCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}

	return &result, nil
}

func (s *UserService) FindUserById(id uuid.UUID) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindById(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %w", apperrors.ErrNotFound)
	}

	result := query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}

	return &result, nil
}

// FindUserByEmail returns an absent result rather than an error when no user
// has the email.
func (s *UserService) FindUserByEmail(email string) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	result := query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}

	return &result, nil
}

func (s *UserService) ListUsers(listQuery *query.ListUsersQuery) (*query.UserQueryListResult, error) {
	filter := repositories.UserFilter{
		NameContains: listQuery.Name,
		Page:         listQuery.Page,
		Limit:        listQuery.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	users, err := s.userRepo.FindAll(filter)
	if err != nil {
		return nil, err
	}

	result := query.UserQueryListResult{
		Result: make([]*common.UserResult, 0, len(users)),
	}
	for _, user := range users {
		result.Result = append(result.Result, mapper.NewUserResultFromEntity(user))
	}

	return &result, nil
}

func (s *UserService) UpdateUser(updateCommand *command.UpdateUserCommand) (*command.UpdateUserCommandResult, error) {
	user, err := s.userRepo.FindById(updateCommand.Id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %w", apperrors.ErrNotFound)
	}

	// Re-check uniqueness when the patch moves the user to another email,
	// excluding the record's own id.
	if updateCommand.Email != "" && updateCommand.Email != user.Email {
		conflictingUser, err := s.userRepo.FindByEmail(updateCommand.Email)
		if err != nil {
			return nil, err
		}
		if conflictingUser != nil && conflictingUser.Id != user.Id {
			return nil, fmt.Errorf("another user with this email %w", apperrors.ErrConflict)
		}
	}

	name := user.Name
	if updateCommand.Name != "" {
		name = updateCommand.Name
	}
	email := user.Email
	if updateCommand.Email != "" {
		email = updateCommand.Email
	}
	if err := user.UpdateProfile(name, email); err != nil {
		return nil, err
	}

	if updateCommand.Password != "" {
		user.ChangePassword(updateCommand.Password)
		if err := user.HashPassword(); err != nil {
			return nil, err
		}
	}

	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, err
	}

	updatedUser, err := s.userRepo.Update(validatedUser)
	if err != nil {
		return nil, err
	}

	if err := s.invalidateListing(); err != nil {
		return nil, err
	}

	result := command.UpdateUserCommandResult{
		Result: mapper.NewUserResultFromEntity(updatedUser),
	}

	return &result, nil
}

func (s *UserService) DeleteUser(id uuid.UUID) error {
	user, err := s.userRepo.FindById(id)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %w", apperrors.ErrNotFound)
	}

	if err := s.userRepo.Delete(id); err != nil {
		return err
	}

	return s.invalidateListing()
}

func (s *UserService) invalidateListing() error {
	if err := s.cache.Delete(context.Background(), userListingCacheKey); err != nil {
		return fmt.Errorf("failed to invalidate user listing cache: %w", err)
	}
	return nil
}
