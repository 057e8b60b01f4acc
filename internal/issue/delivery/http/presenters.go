package http

import (
	"net/http"
	"strings"

	"crashvault/internal/event"
	"crashvault/internal/issue"
	"crashvault/internal/model"
	pkgErrors "crashvault/pkg/errors"
)

// --- Request DTOs ---

type listReq struct {
	Status string `form:"status"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() issue.ListIssuesInput {
	return issue.ListIssuesInput{Status: strings.ToLower(r.Status)}
}

// ---

type updateReq struct {
	ID     int     `json:"-"` // populated from URI param
	Status *string `json:"status"`
	Title  *string `json:"title"`
}

func (r updateReq) validate() error {
	if r.Status == nil && r.Title == nil {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "status or title is required")
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "title must not be empty")
	}
	return nil
}

// --- Response DTOs ---

type issueResp struct {
	ID          int    `json:"id"`
	Fingerprint string `json:"fingerprint"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

func newIssueResp(is model.Issue) issueResp {
	return issueResp{
		ID:          is.ID,
		Fingerprint: is.Fingerprint,
		Title:       is.Title,
		Status:      is.Status,
		CreatedAt:   is.CreatedAt,
	}
}

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
	Issues []issueResp `json:"issues"`
	Total  int         `json:"total"`
}

func (h *handler) newListResp(out issue.ListIssuesOutput) listResp {
	issues := make([]issueResp, len(out.Issues))
	for i, is := range out.Issues {
		issues[i] = newIssueResp(is)
	}
	return listResp{Issues: issues, Total: out.Total}
}

type detailResp struct {
	Issue  issueResp   `json:"issue"`
	Events []eventResp `json:"events"`
}

func (h *handler) newDetailResp(out issue.DetailIssueOutput, events event.ListEventsOutput) detailResp {
	evs := make([]eventResp, len(events.Events))
	for i, ev := range events.Events {
		evs[i] = newEventResp(ev)
	}
	return detailResp{Issue: newIssueResp(out.Issue), Events: evs}
}

type issueDetailResp struct {
	Issue issueResp `json:"issue"`
}

func (h *handler) newIssueDetailResp(out issue.DetailIssueOutput) issueDetailResp {
	return issueDetailResp{Issue: newIssueResp(out.Issue)}
}

type purgeResp struct {
	RemovedEvents int `json:"removed_events"`
}

func (h *handler) newPurgeResp(out issue.PurgeIssueOutput) purgeResp {
	return purgeResp{RemovedEvents: out.RemovedEvents}
}
