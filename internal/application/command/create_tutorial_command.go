package command

import "tutorial-service/internal/application/common"

type CreateTutorialCommand struct {
	Title   string
	Content string
}

type CreateTutorialCommandResult struct {
	Result *common.TutorialResult
}
