package ingest

// MaxBatchSize caps how many events one batch request may carry.
const MaxBatchSize = 100

// --- UseCase Inputs ---

// SubmitInput carries a raw decoded request body. Normalization happens
// inside the usecase so every ingestion path shares it.
type SubmitInput struct {
	Raw        map[string]any
	ClientAddr string
}

type SubmitBatchInput struct {
	Events     []any
	ClientAddr string
}

// --- UseCase Outputs ---

type SubmitOutput struct {
	EventID      string
	IssueID      int
	IssueCreated bool
}

type BatchResult struct {
	EventID string
	IssueID int
}

type SubmitBatchOutput struct {
	Processed int
	Results   []BatchResult
}

type StatsOutput struct {
	TotalIssues   int
	TotalEvents   int
	EventsByLevel map[string]int
	OpenIssues    int
}
