package usecase

import (
	"context"
	"errors"
	"time"

	"crashvault/internal/event"
	"crashvault/internal/ingest"
	"crashvault/internal/issue"
	"crashvault/internal/metrics"
	"crashvault/internal/model"
)

// dispatchTimeout bounds a background webhook fan-out started by Submit.
const dispatchTimeout = time.Minute

func (uc *implUseCase) Submit(ctx context.Context, input ingest.SubmitInput) (ingest.SubmitOutput, error) {
	n, err := normalize(input.Raw, input.ClientAddr)
	if err != nil {
		return ingest.SubmitOutput{}, err
	}

	issueOut, err := uc.issues.ResolveOrCreate(ctx, issue.ResolveInput{Message: n.message})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Submit ResolveOrCreate: %v", err)
		return ingest.SubmitOutput{}, err
	}
	if issueOut.Created {
		metrics.RecordIssueCreated()
	}

	evOut, err := uc.events.Record(ctx, event.RecordInput{
		IssueID:    issueOut.Issue.ID,
		Message:    n.message,
		Stacktrace: n.stacktrace,
		Level:      n.level,
		Tags:       n.tags,
		Context:    n.context,
		Host:       n.host,
		PID:        n.pid,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Submit Record: %v", err)
		return ingest.SubmitOutput{}, err
	}
	ev := evOut.Event

	metrics.RecordEventIngested(string(ev.Level))
	uc.dispatchAsync(ctx, ev)

	return ingest.SubmitOutput{
		EventID:      ev.ID,
		IssueID:      ev.IssueID,
		IssueCreated: issueOut.Created,
	}, nil
}

func (uc *implUseCase) SubmitBatch(ctx context.Context, input ingest.SubmitBatchInput) (ingest.SubmitBatchOutput, error) {
	if len(input.Events) > ingest.MaxBatchSize {
		return ingest.SubmitBatchOutput{}, ingest.ErrBatchTooLarge
	}

	results := make([]ingest.BatchResult, 0, len(input.Events))
	for _, raw := range input.Events {
		data, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		out, err := uc.Submit(ctx, ingest.SubmitInput{Raw: data, ClientAddr: input.ClientAddr})
		if err != nil {
			// Elements without a message are routine client noise and
			// were already rejected silently; anything else is worth a
			// trace before moving on.
			if !errors.Is(err, ingest.ErrMessageRequired) {
				uc.l.Warnf(ctx, "uc.SubmitBatch Submit: %v", err)
			}
			continue
		}
		results = append(results, ingest.BatchResult{EventID: out.EventID, IssueID: out.IssueID})
	}

	return ingest.SubmitBatchOutput{Processed: len(results), Results: results}, nil
}

// dispatchAsync fans the event out to webhooks in the background so the
// ingestion response never waits on delivery.
func (uc *implUseCase) dispatchAsync(ctx context.Context, ev model.Event) {
	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), dispatchTimeout)
	go func() {
		defer cancel()
		if _, err := uc.webhooks.Dispatch(bg, model.PayloadFromEvent(ev)); err != nil {
			uc.l.Errorf(bg, "uc.Submit Dispatch: %v", err)
		}
	}()
}
