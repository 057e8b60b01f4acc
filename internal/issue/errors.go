package issue

import "errors"

var (
	ErrIssueNotFound = errors.New("issue not found")
	ErrEmptyMessage  = errors.New("message is required")
	ErrInvalidStatus = errors.New("invalid issue status")
)
