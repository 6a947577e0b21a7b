package query

import (
	"time"

	"tutorial-service/internal/application/common"
)

type TutorialQueryResult struct {
	Result *common.TutorialResult
}

type TutorialQueryListResult struct {
	Result []*common.TutorialResult
}

// ListTutorialsQuery carries the recognized listing options. All set options
// combine with AND; Page and Limit fall back to 1 and 10 when unset.
type ListTutorialsQuery struct {
	Title       string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        int
	Limit       int
}
