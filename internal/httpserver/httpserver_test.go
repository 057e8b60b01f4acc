package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	eventFS "crashvault/internal/event/repository/vaultfs"
	eventUC "crashvault/internal/event/usecase"
	ingestUC "crashvault/internal/ingest/usecase"
	issueFS "crashvault/internal/issue/repository/vaultfs"
	issueUC "crashvault/internal/issue/usecase"
	"crashvault/internal/stream"
	"crashvault/internal/vault"
	webhookFS "crashvault/internal/webhook/repository/vaultfs"
	webhookUC "crashvault/internal/webhook/usecase"
)

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	v := vault.New(t.TempDir())
	if err := v.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs: %v", err)
	}

	events := eventUC.New(eventFS.New(v, l), l)
	issues := issueUC.New(issueFS.New(v, l), events, l)
	webhooks := webhookUC.New(webhookFS.New(v, l), l)
	ing := ingestUC.New(issues, events, webhooks, l)

	srv, err := New(l, Config{
		Logger:   l,
		Port:     5678,
		Mode:     gin.TestMode,
		Vault:    v,
		Issues:   issues,
		Events:   events,
		Webhooks: webhooks,
		Ingest:   ing,
		Hub:      stream.NewHub(l),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := srv.mapHandlers(); err != nil {
		t.Fatalf("mapHandlers: %v", err)
	}
	return srv
}

func do(t *testing.T, srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/api/health"} {
		w := do(t, srv, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d", path, w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("GET %s body: %v", path, err)
		}
		want := map[string]string{"status": "ok", "service": "crashvault", "version": "1.0.0"}
		for k, v := range want {
			if body[k] != v {
				t.Errorf("GET %s %s = %q, want %q", path, k, body[k], v)
			}
		}
	}
}

func TestNotFound(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodGet, "/no/such/route", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"error":"Not found"}` {
		t.Errorf("body = %s", got)
	}
}

func TestMetricsRoute(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "crashvault_issues_created_total") {
		t.Error("metrics exposition is missing the crashvault collectors")
	}
}

func TestIngestThroughServer(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/v1/events", `{"message":"boom"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("first submit status = %d, body = %s", w.Code, w.Body.String())
	}
	var first struct {
		IssueID      int  `json:"issue_id"`
		IssueCreated bool `json:"issue_created"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &first); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !first.IssueCreated {
		t.Error("first submit should create the issue")
	}

	w = do(t, srv, http.MethodPost, "/api/v1/events", `{"message":"boom"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("second submit status = %d", w.Code)
	}
	var second struct {
		IssueID      int  `json:"issue_id"`
		IssueCreated bool `json:"issue_created"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &second); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if second.IssueCreated {
		t.Error("second submit should dedupe into the existing issue")
	}
	if second.IssueID != first.IssueID {
		t.Errorf("issue id changed between submits: %d then %d", first.IssueID, second.IssueID)
	}
}

func TestValidate(t *testing.T) {
	l := &mockLogger{}

	if _, err := New(l, Config{Logger: l, Mode: gin.TestMode, Port: 5678}); err == nil {
		t.Error("New accepted a config without a vault")
	}
	if _, err := New(l, Config{Logger: l, Mode: gin.TestMode, Vault: vault.New(t.TempDir())}); err == nil {
		t.Error("New accepted a config without a port")
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
