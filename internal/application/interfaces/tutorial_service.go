package interfaces

import (
	"github.com/google/uuid"
	"tutorial-service/internal/application/command"
	"tutorial-service/internal/application/query"
)

type TutorialService interface {
	CreateTutorial(createCommand *command.CreateTutorialCommand) (*command.CreateTutorialCommandResult, error)
	FindTutorialById(id uuid.UUID) (*query.TutorialQueryResult, error)
	FindTutorialByTitle(title string) (*query.TutorialQueryResult, error)
	ListTutorials(listQuery *query.ListTutorialsQuery) (*query.TutorialQueryListResult, error)
	UpdateTutorial(updateCommand *command.UpdateTutorialCommand) (*command.UpdateTutorialCommandResult, error)
	DeleteTutorial(id uuid.UUID) error
}
