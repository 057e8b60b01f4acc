package retention

import (
	"context"
	"testing"
	"time"

	"crashvault/internal/event"
	repo "crashvault/internal/event/repository"
	"crashvault/internal/event/repository/vaultfs"
	"crashvault/internal/event/usecase"
	"crashvault/internal/model"
	"crashvault/internal/vault"
)

func newTestEvents(t *testing.T) (event.UseCase, repo.Repository) {
	t.Helper()

	v := vault.New(t.TempDir())
	if err := v.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs: %v", err)
	}
	r := vaultfs.New(v, &mockLogger{})
	return usecase.New(r, &mockLogger{}), r
}

func seedEventAt(t *testing.T, r repo.Repository, id string, at time.Time) {
	t.Helper()

	ev := model.Event{
		ID:        id,
		IssueID:   1,
		Message:   "old news",
		Timestamp: model.Timestamp(at),
		Level:     model.LevelError,
		Tags:      []string{},
		Context:   map[string]any{},
	}
	if _, err := r.CreateEvent(context.Background(), repo.CreateEventOptions{Event: ev, At: at}); err != nil {
		t.Fatalf("CreateEvent %s: %v", id, err)
	}
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	events, r := newTestEvents(t)

	now := time.Now().UTC()
	seedEventAt(t, r, "ev-old", now.AddDate(0, 0, -40))
	seedEventAt(t, r, "ev-edge", now.AddDate(0, 0, -29))
	seedEventAt(t, r, "ev-new", now)

	s := New(Config{Enabled: true}, events, &mockLogger{})

	removed, err := s.Sweep(ctx)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	out, err := events.List(ctx, event.ListEventsInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Total != 2 {
		t.Errorf("remaining = %d, want 2", out.Total)
	}
	for _, ev := range out.Events {
		if ev.ID == "ev-old" {
			t.Error("ev-old survived the sweep")
		}
	}
}

func TestRun(t *testing.T) {
	events, _ := newTestEvents(t)

	t.Run("disabled returns immediately", func(t *testing.T) {
		s := New(Config{}, events, &mockLogger{})

		done := make(chan error, 1)
		go func() { done <- s.Run(context.Background()) }()

		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Run: %v", err)
			}
		case <-time.After(time.Second):
			t.Error("Run did not return for a disabled sweeper")
		}
	})

	t.Run("bad schedule", func(t *testing.T) {
		s := New(Config{Enabled: true, Schedule: "not a cron spec"}, events, &mockLogger{})
		if err := s.Run(context.Background()); err == nil {
			t.Error("Run accepted a bad schedule")
		}
	})

	t.Run("cancel stops the scheduler", func(t *testing.T) {
		s := New(Config{Enabled: true}, events, &mockLogger{})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- s.Run(ctx) }()

		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Run: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("Run did not stop on cancel")
		}
	})
}

func TestDefaults(t *testing.T) {
	s := New(Config{}, nil, &mockLogger{})
	if s.cfg.Schedule != "0 3 * * *" {
		t.Errorf("schedule = %q", s.cfg.Schedule)
	}
	if s.cfg.MaxAgeDays != 30 {
		t.Errorf("max age = %d", s.cfg.MaxAgeDays)
	}
}

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
