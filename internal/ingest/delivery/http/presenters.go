package http

import "crashvault/internal/ingest"

// The ingestion API keeps the raw wire contract existing SDK clients
// already speak; it does not use the envelope the management API wraps
// responses in.

// eventBody documents the accepted event shape. Handlers decode into a
// plain map instead of binding it: every field except message is
// optional and loosely typed.
type eventBody struct {
	Message    string         `json:"message"`
	Stacktrace string         `json:"stacktrace,omitempty"`
	Level      string         `json:"level,omitempty"`
	Tags       []string       `json:"tags,omitempty"`
	Context    map[string]any `json:"context,omitempty"`
	Host       string         `json:"host,omitempty"`
	PID        int            `json:"pid,omitempty"`
	Source     string         `json:"source,omitempty"`
	Line       int            `json:"line,omitempty"`
	Column     int            `json:"column,omitempty"`
}

type batchBody struct {
	Events []eventBody `json:"events"`
}

type errResp struct {
	Error string `json:"error"`
}

type submitResp struct {
	Success      bool   `json:"success"`
	EventID      string `json:"event_id"`
	IssueID      int    `json:"issue_id"`
	IssueCreated bool   `json:"issue_created"`
}

type batchResultResp struct {
	EventID string `json:"event_id"`
	IssueID int    `json:"issue_id"`
}

type batchResp struct {
	Success   bool              `json:"success"`
	Processed int               `json:"processed"`
	Results   []batchResultResp `json:"results"`
}

type statsResp struct {
	TotalIssues   int            `json:"total_issues"`
	TotalEvents   int            `json:"total_events"`
	EventsByLevel map[string]int `json:"events_by_level"`
	OpenIssues    int            `json:"open_issues"`
}

func (h *handler) newSubmitResp(out ingest.SubmitOutput) submitResp {
	return submitResp{
		Success:      true,
		EventID:      out.EventID,
		IssueID:      out.IssueID,
		IssueCreated: out.IssueCreated,
	}
}

func (h *handler) newBatchResp(out ingest.SubmitBatchOutput) batchResp {
	results := make([]batchResultResp, 0, len(out.Results))
	for _, r := range out.Results {
		results = append(results, batchResultResp{EventID: r.EventID, IssueID: r.IssueID})
	}
	return batchResp{
		Success:   true,
		Processed: out.Processed,
		Results:   results,
	}
}

func (h *handler) newStatsResp(out ingest.StatsOutput) statsResp {
	return statsResp{
		TotalIssues:   out.TotalIssues,
		TotalEvents:   out.TotalEvents,
		EventsByLevel: out.EventsByLevel,
		OpenIssues:    out.OpenIssues,
	}
}
