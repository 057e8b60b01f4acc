package http

import (
	"crashvault/internal/event"
	"crashvault/internal/model"
)

// --- Request DTOs ---

type listReq struct {
	Level   string   `form:"level"`
	Tags    []string `form:"tag"`
	Text    string   `form:"text"`
	IssueID int      `form:"issue_id"`
	Limit   int      `form:"limit"`
	Offset  int      `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() event.ListEventsInput {
	limit := r.Limit
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return event.ListEventsInput{
		IssueID: r.IssueID,
		Level:   r.Level,
		Tags:    r.Tags,
		Text:    r.Text,
		Limit:   limit,
		Offset:  offset,
	}
}

// --- Response DTOs ---

type eventResp struct {
	EventID    string         `json:"event_id"`
	IssueID    int            `json:"issue_id"`
	Message    string         `json:"message"`
	Stacktrace string         `json:"stacktrace"`
	Timestamp  string         `json:"timestamp"`
	Level      string         `json:"level"`
	Tags       []string       `json:"tags"`
	Context    map[string]any `json:"context"`
	Host       string         `json:"host"`
	PID        int            `json:"pid"`
}

func newEventResp(ev model.Event) eventResp {
	return eventResp{
		EventID:    ev.ID,
		IssueID:    ev.IssueID,
		Message:    ev.Message,
		Stacktrace: ev.Stacktrace,
		Timestamp:  ev.Timestamp,
		Level:      string(ev.Level),
		Tags:       ev.Tags,
		Context:    ev.Context,
		Host:       ev.Host,
		PID:        ev.PID,
	}
}

type listResp struct {
	Events []eventResp `json:"events"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

func (h *handler) newListResp(req listReq, out event.ListEventsOutput) listResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	input := req.toInput()
	return listResp{
		Events: events,
		Total:  out.Total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}
}

type detailResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newDetailResp(out event.DetailEventOutput) detailResp {
	return detailResp{Event: newEventResp(out.Event)}
}
