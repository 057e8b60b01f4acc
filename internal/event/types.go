package event

import (
	"time"

	"crashvault/internal/model"
)

// --- UseCase Inputs ---

// RecordInput carries an already-normalized event body. The usecase
// assigns the event id and timestamp.
type RecordInput struct {
	IssueID    int
	Message    string
	Stacktrace string
	Level      model.Level
	Tags       []string
	Context    map[string]any
	Host       string
	PID        int
}

type ListEventsInput struct {
	IssueID int    // 0 matches all issues
	Level   string // empty matches all levels
	Tags    []string
	Text    string
	Limit   int // 0 means no limit
	Offset  int
}

type PruneInput struct {
	OlderThan time.Time
}

// --- UseCase Outputs ---

type RecordOutput struct {
	Event model.Event
}

type ListEventsOutput struct {
	Events []model.Event
	Total  int
}

type DetailEventOutput struct {
	Event model.Event
}

type PruneOutput struct {
	Removed int
}
