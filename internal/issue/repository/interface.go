package repository

import (
	"context"

	"crashvault/internal/model"
)

// Repository is the composed interface for the issue index store.
type Repository interface {
	IssueRepository
}

// IssueRepository defines whole-document access to the issue index.
// The index is small; every mutation rewrites it atomically.
type IssueRepository interface {
	ListIssues(ctx context.Context) ([]model.Issue, error)
	GetOneIssue(ctx context.Context, opt GetOneIssueOptions) (model.Issue, error)
	ReplaceIssues(ctx context.Context, issues []model.Issue) error
}
