package command

import "tutorial-service/internal/application/common"

type LoginUserCommand struct {
	Email    string
	Password string
}

type LoginUserCommandResult struct {
	Token string
	User  *common.UserResult
}
