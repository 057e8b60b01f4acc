package model

// Issue statuses.
const (
	IssueStatusOpen     = "open"
	IssueStatusResolved = "resolved"
	IssueStatusIgnored  = "ignored"
)

// Issue groups every event whose message shares one fingerprint.
type Issue struct {
	ID          int    `json:"id"`          // allocated as max(existing ids)+1
	Fingerprint string `json:"fingerprint"` // first 8 hex chars of SHA-1(message)
	Title       string `json:"title"`       // first 80 chars of the founding message
	Status      string `json:"status"`      // "open", "resolved" or "ignored"
	CreatedAt   string `json:"created_at"`  // UTC ISO-8601 with Z suffix, immutable
}
