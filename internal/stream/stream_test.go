package stream

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"crashvault/internal/model"
	"crashvault/internal/vault"
)

// dialStream connects a WebSocket client to a hub served by a test
// engine and waits for registration to settle.
func dialStream(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/stream", hub.ServeWS)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })

	// The handshake completes before the hub registers the client.
	time.Sleep(50 * time.Millisecond)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) model.Event {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var ev model.Event
	if err := json.Unmarshal(data, &ev); err != nil {
		t.Fatalf("decode %q: %v", data, err)
	}
	return ev
}

func TestHubBroadcast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(&mockLogger{})
	go hub.Run(ctx)

	conn := dialStream(t, hub)

	hub.Broadcast(model.Event{
		ID:      "ev-1",
		IssueID: 3,
		Message: "boom",
		Level:   model.LevelError,
	})

	got := readEvent(t, conn)
	if got.ID != "ev-1" || got.Message != "boom" || got.IssueID != 3 {
		t.Errorf("event = %+v", got)
	}
}

func TestWatcher(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	v := vault.New(t.TempDir())
	if err := v.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs: %v", err)
	}

	hub := NewHub(&mockLogger{})
	go hub.Run(ctx)

	w := NewWatcher(v, hub, &mockLogger{})
	go func() {
		if err := w.Run(ctx); err != nil {
			t.Errorf("watcher: %v", err)
		}
	}()

	conn := dialStream(t, hub)

	// Land an event exactly the way every writer does: temp file, then
	// rename into a fresh partition dir.
	ev := model.Event{
		ID:        "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		IssueID:   7,
		Message:   "from disk",
		Level:     model.LevelWarning,
		Timestamp: model.Timestamp(time.Now()),
		Tags:      []string{"fs"},
	}
	path := v.EventPathFor(ev.ID, time.Now())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	data, err := json.MarshalIndent(ev, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename: %v", err)
	}

	got := readEvent(t, conn)
	if got.ID != ev.ID || got.Message != "from disk" || got.Level != model.LevelWarning {
		t.Errorf("event = %+v", got)
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
