package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestEngine(m Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(m.CORS(), m.BodyLimit(), m.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"pong": true}) })
	r.POST("/echo", func(c *gin.Context) {
		if _, err := c.GetRawData(); err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Payload too large"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORS(t *testing.T) {
	r := newTestEngine(New(&mockLogger{}, 1024, 0))

	t.Run("headers on every response", func(t *testing.T) {
		for _, path := range []string{"/ping", "/no/such/route"} {
			w := do(r, http.MethodGet, path, "")
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("%s: allow-origin = %q, want *", path, got)
			}
			if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, OPTIONS" {
				t.Errorf("%s: allow-methods = %q", path, got)
			}
			if got := w.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type, X-API-Key" {
				t.Errorf("%s: allow-headers = %q", path, got)
			}
		}
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		w := do(r, http.MethodOptions, "/anything", "")
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("allow-origin = %q, want *", got)
		}
	})
}

func TestBodyLimit(t *testing.T) {
	r := newTestEngine(New(&mockLogger{}, 64, 0))

	t.Run("rejects oversized declared bodies", func(t *testing.T) {
		w := do(r, http.MethodPost, "/echo", strings.Repeat("x", 65))
		if w.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("status = %d, want 413", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Payload too large") {
			t.Errorf("body = %s", w.Body.String())
		}
	})

	t.Run("passes bodies under the cap", func(t *testing.T) {
		w := do(r, http.MethodPost, "/echo", strings.Repeat("x", 64))
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("throttles a chatty source", func(t *testing.T) {
		r := newTestEngine(New(&mockLogger{}, 1024, 60))

		var throttled int
		for i := 0; i < 20; i++ {
			if w := do(r, http.MethodGet, "/ping", ""); w.Code == http.StatusTooManyRequests {
				throttled++
			}
		}
		if throttled == 0 {
			t.Error("no request was throttled after 20 rapid calls at 60/min")
		}
	})

	t.Run("zero limit disables throttling", func(t *testing.T) {
		r := newTestEngine(New(&mockLogger{}, 1024, 0))

		for i := 0; i < 20; i++ {
			if w := do(r, http.MethodGet, "/ping", ""); w.Code != http.StatusOK {
				t.Fatalf("request %d: status = %d, want 200", i, w.Code)
			}
		}
	})
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
