package usecase

import (
	"context"

	"crashvault/internal/event"
	repo "crashvault/internal/event/repository"
	"crashvault/internal/model"
)

// DeleteByIssue removes every stored event of one issue and returns the
// number of files deleted.
func (uc *implUseCase) DeleteByIssue(ctx context.Context, issueID int) (int, error) {
	if issueID == 0 {
		return 0, event.ErrInvalidIssueID
	}

	removed, err := uc.repo.DeleteEvents(ctx, repo.DeleteEventsOptions{IssueID: issueID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteByIssue DeleteEvents: %v", err)
		return 0, err
	}
	return removed, nil
}

// Prune removes events strictly older than the cutoff.
func (uc *implUseCase) Prune(ctx context.Context, input event.PruneInput) (event.PruneOutput, error) {
	if input.OlderThan.IsZero() {
		return event.PruneOutput{}, event.ErrInvalidCutoff
	}

	cutoff := model.Timestamp(input.OlderThan)
	removed, err := uc.repo.DeleteEvents(ctx, repo.DeleteEventsOptions{Before: cutoff})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Prune DeleteEvents: %v", err)
		return event.PruneOutput{}, err
	}

	if removed > 0 {
		uc.l.Infof(ctx, "events pruned | removed=%d | older_than=%s", removed, cutoff)
	}
	return event.PruneOutput{Removed: removed}, nil
}
