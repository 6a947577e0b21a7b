package command

import (
	"github.com/google/uuid"
	"tutorial-service/internal/application/common"
)

// UpdateTutorialCommand is a partial patch. Empty fields are left unchanged
// on the stored record.
type UpdateTutorialCommand struct {
	Id      uuid.UUID
	Title   string
	Content string
}

type UpdateTutorialCommandResult struct {
	Result *common.TutorialResult
}
