package issue

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// ResolveOrCreate maps a message to its issue by fingerprint,
	// creating the issue on first sight.
	ResolveOrCreate(ctx context.Context, input ResolveInput) (ResolveOutput, error)

	// Issue management
	List(ctx context.Context, input ListIssuesInput) (ListIssuesOutput, error)
	Detail(ctx context.Context, id int) (DetailIssueOutput, error)
	DetailByFingerprint(ctx context.Context, fingerprint string) (DetailIssueOutput, error)
	SetStatus(ctx context.Context, input SetStatusInput) (DetailIssueOutput, error)
	SetTitle(ctx context.Context, input SetTitleInput) (DetailIssueOutput, error)
	Resolve(ctx context.Context, id int) (DetailIssueOutput, error)
	Purge(ctx context.Context, id int) (PurgeIssueOutput, error)
}

// EventPurger deletes the stored events of a purged issue. The event
// usecase satisfies this.
type EventPurger interface {
	DeleteByIssue(ctx context.Context, issueID int) (int, error)
}
