package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"crashvault/internal/event"
	repo "crashvault/internal/event/repository"
	"crashvault/internal/model"
)

// Record assigns the event id and timestamp, then persists the event as
// one file in its UTC date partition.
func (uc *implUseCase) Record(ctx context.Context, input event.RecordInput) (event.RecordOutput, error) {
	now := time.Now().UTC()

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	evCtx := input.Context
	if evCtx == nil {
		evCtx = map[string]any{}
	}

	ev := model.Event{
		ID:         uuid.NewString(),
		IssueID:    input.IssueID,
		Message:    input.Message,
		Stacktrace: input.Stacktrace,
		Timestamp:  model.Timestamp(now),
		Level:      input.Level,
		Tags:       tags,
		Context:    evCtx,
		Host:       input.Host,
		PID:        input.PID,
	}

	ev, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{Event: ev, At: now})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Record CreateEvent: %v", err)
		return event.RecordOutput{}, err
	}

	uc.l.Infof(ctx, "event received | issue_id=%d | event_id=%s | level=%s", ev.IssueID, ev.ID, ev.Level)
	return event.RecordOutput{Event: ev}, nil
}
