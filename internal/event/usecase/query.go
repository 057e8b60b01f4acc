package usecase

import (
	"context"

	"crashvault/internal/event"
	repo "crashvault/internal/event/repository"
)

// List returns filtered events, newest first.
func (uc *implUseCase) List(ctx context.Context, input event.ListEventsInput) (event.ListEventsOutput, error) {
	events, total, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
		IssueID: input.IssueID,
		Level:   input.Level,
		Tags:    input.Tags,
		Text:    input.Text,
		Limit:   input.Limit,
		Offset:  input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEvents: %v", err)
		return event.ListEventsOutput{}, err
	}
	return event.ListEventsOutput{Events: events, Total: total}, nil
}

// Detail fetches one event by id.
func (uc *implUseCase) Detail(ctx context.Context, id string) (event.DetailEventOutput, error) {
	ev, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneEvent: %v", err)
		return event.DetailEventOutput{}, err
	}
	if ev.ID == "" {
		return event.DetailEventOutput{}, event.ErrEventNotFound
	}
	return event.DetailEventOutput{Event: ev}, nil
}
