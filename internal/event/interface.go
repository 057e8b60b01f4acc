package event

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Record persists a normalized event as its own file.
	Record(ctx context.Context, input RecordInput) (RecordOutput, error)

	// Event queries
	List(ctx context.Context, input ListEventsInput) (ListEventsOutput, error)
	Detail(ctx context.Context, id string) (DetailEventOutput, error)

	// Bulk deletion, used by issue purge and the retention sweeper.
	DeleteByIssue(ctx context.Context, issueID int) (int, error)
	Prune(ctx context.Context, input PruneInput) (PruneOutput, error)
}
