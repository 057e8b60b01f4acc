package usecase

import (
	"context"
	"time"

	"crashvault/internal/issue"
	"crashvault/internal/model"
)

// maxDerivedTitle caps titles derived from event messages.
const maxDerivedTitle = 80

// ResolveOrCreate maps a message to its issue by fingerprint. On first
// sight of a fingerprint a new issue is appended with id
// max(existing)+1; an existing match is returned as-is, so a resolved
// issue stays resolved.
func (uc *implUseCase) ResolveOrCreate(ctx context.Context, input issue.ResolveInput) (issue.ResolveOutput, error) {
	if input.Message == "" {
		return issue.ResolveOutput{}, issue.ErrEmptyMessage
	}

	fp := issue.Fingerprint(input.Message)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	issues, err := uc.repo.ListIssues(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ResolveOrCreate ListIssues: %v", err)
		return issue.ResolveOutput{}, err
	}

	for _, is := range issues {
		if is.Fingerprint == fp {
			return issue.ResolveOutput{Issue: is, Created: false}, nil
		}
	}

	// Ids of purged issues are never reused.
	next := 1
	for _, is := range issues {
		if is.ID >= next {
			next = is.ID + 1
		}
	}

	created := model.Issue{
		ID:          next,
		Fingerprint: fp,
		Title:       truncate(input.Message, maxDerivedTitle),
		Status:      model.IssueStatusOpen,
		CreatedAt:   model.Timestamp(time.Now()),
	}

	issues = append(issues, created)
	if err := uc.repo.ReplaceIssues(ctx, issues); err != nil {
		uc.l.Errorf(ctx, "uc.ResolveOrCreate ReplaceIssues: %v", err)
		return issue.ResolveOutput{}, err
	}

	uc.l.Infof(ctx, "issue created | id=%d | fingerprint=%s", created.ID, created.Fingerprint)
	return issue.ResolveOutput{Issue: created, Created: true}, nil
}
