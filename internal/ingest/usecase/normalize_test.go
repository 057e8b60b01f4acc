package usecase

import (
	"errors"
	"reflect"
	"testing"

	"crashvault/internal/ingest"
	"crashvault/internal/model"
)

func TestNormalize(t *testing.T) {
	t.Run("message must be a non-empty string", func(t *testing.T) {
		for _, raw := range []map[string]any{
			{},
			{"message": ""},
			{"message": float64(42)},
			{"message": nil},
		} {
			if _, err := normalize(raw, "10.0.0.1"); !errors.Is(err, ingest.ErrMessageRequired) {
				t.Errorf("normalize(%v) err = %v, want ErrMessageRequired", raw, err)
			}
		}
	})

	t.Run("minimal event gets defaults", func(t *testing.T) {
		n, err := normalize(map[string]any{"message": "boom"}, "10.0.0.1")
		if err != nil {
			t.Fatalf("normalize: %v", err)
		}
		if n.level != model.LevelError {
			t.Errorf("level = %q, want error", n.level)
		}
		if n.tags == nil || len(n.tags) != 0 {
			t.Errorf("tags = %v, want empty non-nil", n.tags)
		}
		if n.context == nil || len(n.context) != 0 {
			t.Errorf("context = %v, want empty non-nil", n.context)
		}
		if n.host != "10.0.0.1" {
			t.Errorf("host = %q, want client address", n.host)
		}
		if n.stacktrace != "" || n.pid != 0 {
			t.Errorf("stacktrace = %q, pid = %d, want zero values", n.stacktrace, n.pid)
		}
	})

	t.Run("level collapses to error outside the known set", func(t *testing.T) {
		cases := map[any]model.Level{
			"WARNING":    model.LevelWarning,
			"debug":      model.LevelDebug,
			"fatal":      model.LevelError,
			float64(3):   model.LevelError,
			"CRITICAL  ": model.LevelError,
		}
		for in, want := range cases {
			n, err := normalize(map[string]any{"message": "m", "level": in}, "h")
			if err != nil {
				t.Fatalf("normalize: %v", err)
			}
			if n.level != want {
				t.Errorf("level %v = %q, want %q", in, n.level, want)
			}
		}
	})

	t.Run("tags accept a bare string and stringify loose elements", func(t *testing.T) {
		n, _ := normalize(map[string]any{"message": "m", "tags": "checkout"}, "h")
		if !reflect.DeepEqual(n.tags, []string{"checkout"}) {
			t.Errorf("tags = %v", n.tags)
		}

		n, _ = normalize(map[string]any{"message": "m", "tags": []any{"a", float64(1), nil, true}}, "h")
		if !reflect.DeepEqual(n.tags, []string{"a", "1", "null", "true"}) {
			t.Errorf("tags = %v", n.tags)
		}

		n, _ = normalize(map[string]any{"message": "m", "tags": float64(7)}, "h")
		if len(n.tags) != 0 {
			t.Errorf("tags = %v, want none for a number", n.tags)
		}
	})

	t.Run("source location folds into context", func(t *testing.T) {
		raw := map[string]any{
			"message": "m",
			"context": map[string]any{"release": "1.4.2"},
			"url":     "https://app.example.com/checkout",
			"lineno":  float64(14),
			"colno":   float64(7),
		}
		n, _ := normalize(raw, "h")
		want := map[string]any{
			"release": "1.4.2",
			"source":  "https://app.example.com/checkout",
			"line":    float64(14),
			"column":  float64(7),
		}
		if !reflect.DeepEqual(n.context, want) {
			t.Errorf("context = %v, want %v", n.context, want)
		}
	})

	t.Run("present but empty source stops the alias chain", func(t *testing.T) {
		raw := map[string]any{
			"message": "m",
			"source":  "",
			"url":     "https://fallback.example.com",
			"line":    float64(0),
			"lineno":  float64(9),
		}
		n, _ := normalize(raw, "h")
		if _, ok := n.context["source"]; ok {
			t.Errorf("source = %v, want absent", n.context["source"])
		}
		if _, ok := n.context["line"]; ok {
			t.Errorf("line = %v, want absent for zero", n.context["line"])
		}
	})

	t.Run("stack alias and non-dict context", func(t *testing.T) {
		raw := map[string]any{
			"message": "m",
			"stack":   "at foo (app.js:1:2)",
			"context": "not an object",
		}
		n, _ := normalize(raw, "h")
		if n.stacktrace != "at foo (app.js:1:2)" {
			t.Errorf("stacktrace = %q", n.stacktrace)
		}
		if len(n.context) != 0 {
			t.Errorf("context = %v, want empty", n.context)
		}
	})

	t.Run("host and pid coercion", func(t *testing.T) {
		n, _ := normalize(map[string]any{"message": "m", "host": ""}, "10.0.0.1")
		if n.host != "" {
			t.Errorf("host = %q, want explicit empty kept", n.host)
		}

		n, _ = normalize(map[string]any{"message": "m", "host": float64(1)}, "10.0.0.1")
		if n.host != "10.0.0.1" {
			t.Errorf("host = %q, want client address for non-string", n.host)
		}

		for in, want := range map[any]int{
			float64(4242): 4242,
			"123":         123,
			" 55 ":        55,
			"abc":         0,
			true:          0,
		} {
			n, _ := normalize(map[string]any{"message": "m", "pid": in}, "h")
			if n.pid != want {
				t.Errorf("pid %v = %d, want %d", in, n.pid, want)
			}
		}
	})
}
