package usecase

import (
	"context"
	"strings"

	"crashvault/internal/issue"
	repo "crashvault/internal/issue/repository"
	"crashvault/internal/model"
)

// maxSetTitle caps operator-supplied titles.
const maxSetTitle = 200

// List returns all issues, optionally filtered by status.
func (uc *implUseCase) List(ctx context.Context, input issue.ListIssuesInput) (issue.ListIssuesOutput, error) {
	issues, err := uc.repo.ListIssues(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListIssues: %v", err)
		return issue.ListIssuesOutput{}, err
	}

	if input.Status != "" {
		filtered := make([]model.Issue, 0, len(issues))
		for _, is := range issues {
			if is.Status == input.Status {
				filtered = append(filtered, is)
			}
		}
		issues = filtered
	}

	return issue.ListIssuesOutput{Issues: issues, Total: len(issues)}, nil
}

// Detail fetches one issue by id.
func (uc *implUseCase) Detail(ctx context.Context, id int) (issue.DetailIssueOutput, error) {
	is, err := uc.repo.GetOneIssue(ctx, repo.GetOneIssueOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneIssue: %v", err)
		return issue.DetailIssueOutput{}, err
	}
	if is.ID == 0 {
		return issue.DetailIssueOutput{}, issue.ErrIssueNotFound
	}
	return issue.DetailIssueOutput{Issue: is}, nil
}

// DetailByFingerprint fetches one issue by fingerprint.
func (uc *implUseCase) DetailByFingerprint(ctx context.Context, fingerprint string) (issue.DetailIssueOutput, error) {
	is, err := uc.repo.GetOneIssue(ctx, repo.GetOneIssueOptions{Fingerprint: fingerprint})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailByFingerprint GetOneIssue: %v", err)
		return issue.DetailIssueOutput{}, err
	}
	if is.ID == 0 {
		return issue.DetailIssueOutput{}, issue.ErrIssueNotFound
	}
	return issue.DetailIssueOutput{Issue: is}, nil
}

// SetStatus updates an issue's status after validating it against the
// known status set.
func (uc *implUseCase) SetStatus(ctx context.Context, input issue.SetStatusInput) (issue.DetailIssueOutput, error) {
	status := strings.ToLower(input.Status)
	switch status {
	case model.IssueStatusOpen, model.IssueStatusResolved, model.IssueStatusIgnored:
	default:
		return issue.DetailIssueOutput{}, issue.ErrInvalidStatus
	}

	return uc.mutate(ctx, input.ID, func(is *model.Issue) {
		is.Status = status
	})
}

// SetTitle renames an issue.
func (uc *implUseCase) SetTitle(ctx context.Context, input issue.SetTitleInput) (issue.DetailIssueOutput, error) {
	return uc.mutate(ctx, input.ID, func(is *model.Issue) {
		is.Title = truncate(input.Title, maxSetTitle)
	})
}

// Resolve marks an issue resolved.
func (uc *implUseCase) Resolve(ctx context.Context, id int) (issue.DetailIssueOutput, error) {
	return uc.mutate(ctx, id, func(is *model.Issue) {
		is.Status = model.IssueStatusResolved
	})
}

// Purge removes an issue from the index, then deletes all of its
// stored event files. Event deletion runs outside the index lock.
func (uc *implUseCase) Purge(ctx context.Context, id int) (issue.PurgeIssueOutput, error) {
	if err := uc.removeFromIndex(ctx, id); err != nil {
		return issue.PurgeIssueOutput{}, err
	}

	removed, err := uc.events.DeleteByIssue(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Purge DeleteByIssue: %v", err)
		return issue.PurgeIssueOutput{}, err
	}

	uc.l.Infof(ctx, "issue purged | id=%d | removed_events=%d", id, removed)
	return issue.PurgeIssueOutput{RemovedEvents: removed}, nil
}

// mutate applies fn to one issue under the index lock and saves.
func (uc *implUseCase) mutate(ctx context.Context, id int, fn func(*model.Issue)) (issue.DetailIssueOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	issues, err := uc.repo.ListIssues(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.mutate ListIssues: %v", err)
		return issue.DetailIssueOutput{}, err
	}

	for i := range issues {
		if issues[i].ID != id {
			continue
		}
		fn(&issues[i])
		if err := uc.repo.ReplaceIssues(ctx, issues); err != nil {
			uc.l.Errorf(ctx, "uc.mutate ReplaceIssues: %v", err)
			return issue.DetailIssueOutput{}, err
		}
		return issue.DetailIssueOutput{Issue: issues[i]}, nil
	}

	return issue.DetailIssueOutput{}, issue.ErrIssueNotFound
}

func (uc *implUseCase) removeFromIndex(ctx context.Context, id int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	issues, err := uc.repo.ListIssues(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.removeFromIndex ListIssues: %v", err)
		return err
	}

	kept := make([]model.Issue, 0, len(issues))
	for _, is := range issues {
		if is.ID != id {
			kept = append(kept, is)
		}
	}
	if len(kept) == len(issues) {
		return issue.ErrIssueNotFound
	}

	if err := uc.repo.ReplaceIssues(ctx, kept); err != nil {
		uc.l.Errorf(ctx, "uc.removeFromIndex ReplaceIssues: %v", err)
		return err
	}
	return nil
}
