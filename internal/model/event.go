package model

import "time"

// TimestampLayout renders UTC instants as ISO-8601 with microsecond
// precision and a literal Z suffix. Stored timestamps sort
// lexicographically in chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// Timestamp formats t for storage. Stored times are always UTC.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Event is a single error occurrence, persisted as one JSON file under
// events/YYYY/MM/DD/. Field order matches the on-disk key order.
type Event struct {
	ID         string         `json:"event_id"`
	IssueID    int            `json:"issue_id"`
	Message    string         `json:"message"`
	Stacktrace string         `json:"stacktrace"`
	Timestamp  string         `json:"timestamp"`
	Level      Level          `json:"level"`
	Tags       []string       `json:"tags"`
	Context    map[string]any `json:"context"`
	Host       string         `json:"host"`
	PID        int            `json:"pid"`
}
