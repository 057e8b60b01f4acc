package repository

import (
	"context"

	"crashvault/internal/model"
)

// Repository is the composed interface for the event store.
type Repository interface {
	EventRepository
}

// EventRepository defines file-per-event access, partitioned by UTC
// calendar date.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	GetOneEvent(ctx context.Context, opt GetOneEventOptions) (model.Event, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, int, error)
	DeleteEvents(ctx context.Context, opt DeleteEventsOptions) (int, error)
}
