package usecase

import (
	"context"

	"crashvault/internal/event"
	"crashvault/internal/ingest"
	"crashvault/internal/issue"
	"crashvault/internal/model"
)

func (uc *implUseCase) Stats(ctx context.Context) (ingest.StatsOutput, error) {
	issuesOut, err := uc.issues.List(ctx, issue.ListIssuesInput{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats issues.List: %v", err)
		return ingest.StatsOutput{}, err
	}

	eventsOut, err := uc.events.List(ctx, event.ListEventsInput{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats events.List: %v", err)
		return ingest.StatsOutput{}, err
	}

	byLevel := make(map[string]int)
	for _, ev := range eventsOut.Events {
		// Events written by older versions may predate the level field.
		level := string(ev.Level)
		if level == "" {
			level = "unknown"
		}
		byLevel[level]++
	}

	open := 0
	for _, is := range issuesOut.Issues {
		if is.Status == model.IssueStatusOpen {
			open++
		}
	}

	return ingest.StatsOutput{
		TotalIssues:   issuesOut.Total,
		TotalEvents:   eventsOut.Total,
		EventsByLevel: byLevel,
		OpenIssues:    open,
	}, nil
}
