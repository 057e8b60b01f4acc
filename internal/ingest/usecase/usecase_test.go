package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	eventfs "crashvault/internal/event/repository/vaultfs"
	eventuc "crashvault/internal/event/usecase"
	"crashvault/internal/ingest"
	"crashvault/internal/issue"
	issuefs "crashvault/internal/issue/repository/vaultfs"
	issueuc "crashvault/internal/issue/usecase"
	"crashvault/internal/model"
	"crashvault/internal/vault"
	"crashvault/internal/webhook"
	webhookfs "crashvault/internal/webhook/repository/vaultfs"
	webhookuc "crashvault/internal/webhook/usecase"
)

func newTestUseCase(t *testing.T) *implUseCase {
	t.Helper()

	v := vault.New(t.TempDir())
	if err := v.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs: %v", err)
	}
	l := &mockLogger{}

	events := eventuc.New(eventfs.New(v, l), l)
	issues := issueuc.New(issuefs.New(v, l), events, l)
	webhooks := webhookuc.New(webhookfs.New(v, l), l)

	return New(issues, events, webhooks, l)
}

func countingServer(t *testing.T, status int, hits *atomic.Int32) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func mustSubmit(t *testing.T, uc *implUseCase, raw map[string]any) ingest.SubmitOutput {
	t.Helper()

	out, err := uc.Submit(context.Background(), ingest.SubmitInput{Raw: raw, ClientAddr: "127.0.0.1"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	return out
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the event and creates its issue", func(t *testing.T) {
		uc := newTestUseCase(t)

		out, err := uc.Submit(ctx, ingest.SubmitInput{
			Raw: map[string]any{
				"message":    "database connection refused",
				"stacktrace": "ConnectionError: refused",
				"level":      "CRITICAL",
				"tags":       []any{"db", "prod"},
				"context":    map[string]any{"attempt": float64(3)},
				"host":       "web-1",
				"pid":        float64(4242),
			},
			ClientAddr: "10.0.0.9",
		})
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if !out.IssueCreated {
			t.Error("first event should create its issue")
		}
		if out.IssueID != 1 {
			t.Errorf("issue id = %d, want 1", out.IssueID)
		}
		if len(out.EventID) != 36 {
			t.Errorf("event id = %q, want a uuid", out.EventID)
		}

		evOut, err := uc.events.Detail(ctx, out.EventID)
		if err != nil {
			t.Fatalf("events.Detail: %v", err)
		}
		ev := evOut.Event
		if ev.Level != model.LevelCritical {
			t.Errorf("level = %q, want critical", ev.Level)
		}
		if ev.Host != "web-1" || ev.PID != 4242 {
			t.Errorf("host = %q, pid = %d", ev.Host, ev.PID)
		}
		if len(ev.Tags) != 2 || ev.Context["attempt"] != float64(3) {
			t.Errorf("tags = %v, context = %v", ev.Tags, ev.Context)
		}

		isOut, err := uc.issues.Detail(ctx, out.IssueID)
		if err != nil {
			t.Fatalf("issues.Detail: %v", err)
		}
		if isOut.Issue.Title != "database connection refused" {
			t.Errorf("title = %q", isOut.Issue.Title)
		}
		if isOut.Issue.Status != model.IssueStatusOpen {
			t.Errorf("status = %q, want open", isOut.Issue.Status)
		}
	})

	t.Run("groups repeats into one issue", func(t *testing.T) {
		uc := newTestUseCase(t)

		first := mustSubmit(t, uc, map[string]any{"message": "timeout talking to redis"})
		second := mustSubmit(t, uc, map[string]any{"message": "timeout talking to redis"})

		if !first.IssueCreated || second.IssueCreated {
			t.Errorf("issue_created = %v then %v, want true then false", first.IssueCreated, second.IssueCreated)
		}
		if first.IssueID != second.IssueID {
			t.Errorf("issue ids diverged: %d vs %d", first.IssueID, second.IssueID)
		}
		if first.EventID == second.EventID {
			t.Error("event ids should be unique")
		}
	})

	t.Run("rejects events without a usable message", func(t *testing.T) {
		uc := newTestUseCase(t)

		for _, raw := range []map[string]any{
			{},
			{"message": ""},
			{"message": float64(42)},
		} {
			if _, err := uc.Submit(ctx, ingest.SubmitInput{Raw: raw, ClientAddr: "h"}); !errors.Is(err, ingest.ErrMessageRequired) {
				t.Errorf("Submit(%v) err = %v, want ErrMessageRequired", raw, err)
			}
		}
	})

	t.Run("client address backs the host field", func(t *testing.T) {
		uc := newTestUseCase(t)

		out, err := uc.Submit(ctx, ingest.SubmitInput{
			Raw:        map[string]any{"message": "minimal"},
			ClientAddr: "192.168.1.5",
		})
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}

		evOut, err := uc.events.Detail(ctx, out.EventID)
		if err != nil {
			t.Fatalf("events.Detail: %v", err)
		}
		if evOut.Event.Host != "192.168.1.5" {
			t.Errorf("host = %q, want client address", evOut.Event.Host)
		}
	})

	t.Run("fans out to webhooks without blocking", func(t *testing.T) {
		uc := newTestUseCase(t)

		var hits atomic.Int32
		srv := countingServer(t, http.StatusOK, &hits)
		if _, err := uc.webhooks.Add(ctx, webhook.AddInput{Type: "http", URL: srv.URL}); err != nil {
			t.Fatalf("webhooks.Add: %v", err)
		}

		mustSubmit(t, uc, map[string]any{"message": "notify me"})

		deadline := time.Now().Add(2 * time.Second)
		for hits.Load() == 0 && time.Now().Before(deadline) {
			time.Sleep(10 * time.Millisecond)
		}
		if got := hits.Load(); got != 1 {
			t.Errorf("webhook hits = %d, want 1", got)
		}
	})
}

func TestSubmitBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("processes valid elements and skips the rest", func(t *testing.T) {
		uc := newTestUseCase(t)

		out, err := uc.SubmitBatch(ctx, ingest.SubmitBatchInput{
			Events: []any{
				map[string]any{"message": "first"},
				"not an object",
				map[string]any{"level": "error"},
				map[string]any{"message": "second", "level": "WARNING"},
			},
			ClientAddr: "10.1.1.1",
		})
		if err != nil {
			t.Fatalf("SubmitBatch: %v", err)
		}
		if out.Processed != 2 || len(out.Results) != 2 {
			t.Fatalf("processed = %d, results = %d, want 2", out.Processed, len(out.Results))
		}

		// Batch elements go through the same normalization as singles.
		evOut, err := uc.events.Detail(ctx, out.Results[1].EventID)
		if err != nil {
			t.Fatalf("events.Detail: %v", err)
		}
		if evOut.Event.Level != model.LevelWarning {
			t.Errorf("level = %q, want warning", evOut.Event.Level)
		}
		if evOut.Event.Host != "10.1.1.1" {
			t.Errorf("host = %q, want client address", evOut.Event.Host)
		}
	})

	t.Run("groups batch elements by fingerprint", func(t *testing.T) {
		uc := newTestUseCase(t)

		out, err := uc.SubmitBatch(ctx, ingest.SubmitBatchInput{
			Events: []any{
				map[string]any{"message": "same failure"},
				map[string]any{"message": "same failure"},
				map[string]any{"message": "different failure"},
			},
			ClientAddr: "h",
		})
		if err != nil {
			t.Fatalf("SubmitBatch: %v", err)
		}
		if out.Results[0].IssueID != out.Results[1].IssueID {
			t.Errorf("repeat messages got issues %d and %d", out.Results[0].IssueID, out.Results[1].IssueID)
		}
		if out.Results[2].IssueID == out.Results[0].IssueID {
			t.Error("distinct message should get its own issue")
		}
	})

	t.Run("rejects oversized batches", func(t *testing.T) {
		uc := newTestUseCase(t)

		events := make([]any, ingest.MaxBatchSize+1)
		for i := range events {
			events[i] = map[string]any{"message": fmt.Sprintf("event %d", i)}
		}
		if _, err := uc.SubmitBatch(ctx, ingest.SubmitBatchInput{Events: events, ClientAddr: "h"}); !errors.Is(err, ingest.ErrBatchTooLarge) {
			t.Errorf("err = %v, want ErrBatchTooLarge", err)
		}
	})

	t.Run("empty batch processes nothing", func(t *testing.T) {
		uc := newTestUseCase(t)

		out, err := uc.SubmitBatch(ctx, ingest.SubmitBatchInput{ClientAddr: "h"})
		if err != nil {
			t.Fatalf("SubmitBatch: %v", err)
		}
		if out.Processed != 0 || out.Results == nil || len(out.Results) != 0 {
			t.Errorf("out = %+v, want zero processed with empty results", out)
		}
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		uc := newTestUseCase(t)

		out, err := uc.Stats(ctx)
		if err != nil {
			t.Fatalf("Stats: %v", err)
		}
		if out.TotalIssues != 0 || out.TotalEvents != 0 || out.OpenIssues != 0 {
			t.Errorf("out = %+v, want zeros", out)
		}
		if out.EventsByLevel == nil || len(out.EventsByLevel) != 0 {
			t.Errorf("events_by_level = %v, want empty non-nil", out.EventsByLevel)
		}
	})

	t.Run("aggregates issues and level counts", func(t *testing.T) {
		uc := newTestUseCase(t)

		mustSubmit(t, uc, map[string]any{"message": "boom"})
		mustSubmit(t, uc, map[string]any{"message": "boom"})
		second := mustSubmit(t, uc, map[string]any{"message": "heads up", "level": "info"})

		if _, err := uc.issues.SetStatus(ctx, issue.SetStatusInput{ID: second.IssueID, Status: model.IssueStatusResolved}); err != nil {
			t.Fatalf("SetStatus: %v", err)
		}

		out, err := uc.Stats(ctx)
		if err != nil {
			t.Fatalf("Stats: %v", err)
		}
		if out.TotalIssues != 2 || out.TotalEvents != 3 {
			t.Errorf("totals = %d issues, %d events, want 2 and 3", out.TotalIssues, out.TotalEvents)
		}
		if out.EventsByLevel["error"] != 2 || out.EventsByLevel["info"] != 1 {
			t.Errorf("events_by_level = %v", out.EventsByLevel)
		}
		if out.OpenIssues != 1 {
			t.Errorf("open_issues = %d, want 1", out.OpenIssues)
		}
	})
}
