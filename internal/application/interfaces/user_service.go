package interfaces

import (
	"github.com/google/uuid"
	"tutorial-service/internal/application/command"
	"tutorial-service/internal/application/query"
)

type UserService interface {
	CreateUser(createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error)
	FindUserById(id uuid.UUID) (*query.UserQueryResult, error)
	FindUserByEmail(email string) (*query.UserQueryResult, error)
	ListUsers(listQuery *query.ListUsersQuery) (*query.UserQueryListResult, error)
	UpdateUser(updateCommand *command.UpdateUserCommand) (*command.UpdateUserCommandResult, error)
	DeleteUser(id uuid.UUID) error
}
