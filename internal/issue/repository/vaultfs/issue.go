package vaultfs

import (
	"context"
	"errors"
	"os"

	repo "crashvault/internal/issue/repository"
	"crashvault/internal/model"
)

// ListIssues reads the whole issue index. A missing file is an empty
// index; a corrupt file is an error.
func (r *implRepository) ListIssues(ctx context.Context) ([]model.Issue, error) {
	var issues []model.Issue
	err := r.v.ReadJSON(r.v.IssuesPath(), &issues)
	if errors.Is(err, os.ErrNotExist) {
		return []model.Issue{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListIssues"), err)
		return nil, repo.ErrFailedToLoad
	}
	if issues == nil {
		issues = []model.Issue{}
	}
	return issues, nil
}

// GetOneIssue retrieves a single issue by the provided filters (AND
// condition). Returns zero-value Issue (ID == 0) when not found — do
// NOT return error for not-found.
func (r *implRepository) GetOneIssue(ctx context.Context, opt repo.GetOneIssueOptions) (model.Issue, error) {
	if opt.ID == 0 && opt.Fingerprint == "" {
		return model.Issue{}, nil
	}

	issues, err := r.ListIssues(ctx)
	if err != nil {
		return model.Issue{}, err
	}

	for _, is := range issues {
		if opt.ID != 0 && is.ID != opt.ID {
			continue
		}
		if opt.Fingerprint != "" && is.Fingerprint != opt.Fingerprint {
			continue
		}
		return is, nil
	}
	return model.Issue{}, nil
}

// ReplaceIssues atomically rewrites the whole index.
func (r *implRepository) ReplaceIssues(ctx context.Context, issues []model.Issue) error {
	if issues == nil {
		issues = []model.Issue{}
	}
	if err := r.v.WriteJSONAtomic(r.v.IssuesPath(), issues); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReplaceIssues"), err)
		return repo.ErrFailedToSave
	}
	return nil
}
