package model

import "encoding/json"

// Subscription is one configured webhook target, stored under the
// "webhooks" key of config.json.
type Subscription struct {
	ID      string   `json:"id"`   // 8-char id
	Type    string   `json:"type"` // "slack", "discord" or "http"
	URL     string   `json:"url"`
	Name    string   `json:"name"`
	Secret  string   `json:"secret"`
	Events  []string `json:"events"` // level filter, empty means all
	Enabled bool     `json:"enabled"`
}

// UnmarshalJSON defaults Enabled to true when the key is absent, so
// hand-edited configs keep working.
func (s *Subscription) UnmarshalJSON(data []byte) error {
	type alias Subscription
	tmp := alias{Enabled: true}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*s = Subscription(tmp)
	return nil
}

// NotificationPayload is the normalized projection of an Event shared
// by every provider adapter and used for request signing.
type NotificationPayload struct {
	EventID    string         `json:"event_id"`
	IssueID    int            `json:"issue_id"`
	Message    string         `json:"message"`
	Level      string         `json:"level"`
	Stacktrace string         `json:"stacktrace"`
	Timestamp  string         `json:"timestamp"`
	Tags       []string       `json:"tags"`
	Context    map[string]any `json:"context"`
	Host       string         `json:"host"`
}

// PayloadFromEvent projects a stored event into its notification form.
func PayloadFromEvent(ev Event) NotificationPayload {
	return NotificationPayload{
		EventID:    ev.ID,
		IssueID:    ev.IssueID,
		Message:    ev.Message,
		Level:      string(ev.Level),
		Stacktrace: ev.Stacktrace,
		Timestamp:  ev.Timestamp,
		Tags:       ev.Tags,
		Context:    ev.Context,
		Host:       ev.Host,
	}
}

// CanonicalMap returns the nine payload keys with nil tags and context
// normalized to empty values. Providers embed it in request bodies and
// sign its CanonicalJSON form.
func (p NotificationPayload) CanonicalMap() map[string]any {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	ctx := p.Context
	if ctx == nil {
		ctx = map[string]any{}
	}
	return map[string]any{
		"event_id":   p.EventID,
		"issue_id":   p.IssueID,
		"message":    p.Message,
		"level":      p.Level,
		"stacktrace": p.Stacktrace,
		"timestamp":  p.Timestamp,
		"tags":       tags,
		"context":    ctx,
		"host":       p.Host,
	}
}

// CanonicalJSON is the signing input: the canonical map marshaled with
// sorted keys. A receiver can verify a signature by re-marshaling the
// delivered data object the same way.
func (p NotificationPayload) CanonicalJSON() ([]byte, error) {
	return json.Marshal(p.CanonicalMap())
}
