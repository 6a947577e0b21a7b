package query

import "tutorial-service/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult
}

type UserQueryListResult struct {
	Result []*common.UserResult
}

// ListUsersQuery carries the recognized listing options. Page and Limit fall
// back to 1 and 10 when unset.
type ListUsersQuery struct {
	Name  string
	Page  int
	Limit int
}
