package command

import (
	"github.com/google/uuid"
	"tutorial-service/internal/application/common"
)

// UpdateUserCommand is a partial patch. Empty fields are left unchanged on
// the stored record.
type UpdateUserCommand struct {
	Id       uuid.UUID
	Name     string
	Email    string
	Password string
}

type UpdateUserCommandResult struct {
	Result *common.UserResult
}
