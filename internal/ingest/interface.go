package ingest

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Submit normalizes one raw event body, groups it into its issue,
	// stores it and fans it out to webhooks in the background.
	Submit(ctx context.Context, input SubmitInput) (SubmitOutput, error)

	// SubmitBatch submits up to MaxBatchSize events. Elements that fail
	// are skipped instead of failing the batch.
	SubmitBatch(ctx context.Context, input SubmitBatchInput) (SubmitBatchOutput, error)

	// Stats aggregates store-wide counters.
	Stats(ctx context.Context) (StatsOutput, error)
}
