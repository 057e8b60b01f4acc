package event

import "errors"

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrInvalidCutoff  = errors.New("prune cutoff is required")
	ErrInvalidIssueID = errors.New("issue id is required")
)
