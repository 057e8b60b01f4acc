package repository

// GetOneIssueOptions holds filter parameters for fetching a single
// issue. All non-zero fields are applied as AND conditions.
type GetOneIssueOptions struct {
	ID          int
	Fingerprint string
}
