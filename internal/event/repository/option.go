package repository

import (
	"time"

	"crashvault/internal/model"
)

// CreateEventOptions holds the fully built event and its creation
// instant, which selects the date partition.
type CreateEventOptions struct {
	Event model.Event
	At    time.Time
}

// GetOneEventOptions holds filter parameters for fetching a single
// event.
type GetOneEventOptions struct {
	ID string
}

// ListEventsOptions holds filter and pagination parameters for listing
// events. All non-zero filters are applied as AND conditions; Tags is a
// subset match (every given tag must be present on the event).
type ListEventsOptions struct {
	IssueID int
	Level   string
	Tags    []string
	Text    string // case-insensitive substring of the message
	Limit   int    // 0 means no limit
	Offset  int
}

// DeleteEventsOptions selects events for deletion. At least one filter
// must be set; with none set nothing is deleted.
type DeleteEventsOptions struct {
	IssueID int
	Before  string // delete events with timestamp < Before
}
