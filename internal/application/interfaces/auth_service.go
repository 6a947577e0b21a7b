package interfaces

import (
	"tutorial-service/internal/application/command"
	"tutorial-service/internal/domain/entities"
)

type AuthService interface {
	// Login verifies credentials and issues a signed token.
	Login(loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)

	// Authenticate resolves a bearer token to an Identity. Any token
	// verification failure resolves to (nil, nil); an error is only returned
	// on a store fault.
	Authenticate(token string) (*entities.User, error)
}
