package command

import "tutorial-service/internal/application/common"

type CreateUserCommand struct {
	Name     string
	Email    string
	Password string
}

type CreateUserCommandResult struct {
	Result *common.UserResult
}
