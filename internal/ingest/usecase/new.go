package usecase

import (
	"crashvault/internal/event"
	"crashvault/internal/issue"
	"crashvault/internal/webhook"
	"crashvault/pkg/log"
)

// implUseCase is the private implementation of ingest.UseCase. It owns
// no storage of its own; it composes the issue, event and webhook
// usecases into the ingestion pipeline.
type implUseCase struct {
	issues   issue.UseCase
	events   event.UseCase
	webhooks webhook.UseCase
	l        log.Logger
}

// New creates a new ingest UseCase implementation.
func New(issues issue.UseCase, events event.UseCase, webhooks webhook.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		issues:   issues,
		events:   events,
		webhooks: webhooks,
		l:        l,
	}
}
