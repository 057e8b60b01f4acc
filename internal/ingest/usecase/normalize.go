package usecase

import (
	"encoding/json"
	"strconv"
	"strings"

	"crashvault/internal/ingest"
	"crashvault/internal/model"
)

// normalized is an event body after coercion, ready for storage.
type normalized struct {
	message    string
	stacktrace string
	level      model.Level
	tags       []string
	context    map[string]any
	host       string
	pid        int
}

// normalize coerces a raw JSON body into a storable event shape.
// message must be a non-empty string; every other field has a lenient
// default so sloppy clients still get their event stored. Browser-style
// aliases (stack, url, lineno, colno) are honored.
func normalize(raw map[string]any, clientAddr string) (normalized, error) {
	msg, ok := raw["message"].(string)
	if !ok || msg == "" {
		return normalized{}, ingest.ErrMessageRequired
	}

	n := normalized{
		message: msg,
		level:   model.LevelError,
		host:    clientAddr,
	}

	if v, ok := pick(raw, "stacktrace", "stack"); ok {
		n.stacktrace = stringValue(v)
	}
	if s, ok := raw["level"].(string); ok {
		n.level = model.ParseLevel(s)
	}
	n.tags = normalizeTags(raw["tags"])
	n.context = normalizeContext(raw)
	if s, ok := raw["host"].(string); ok {
		n.host = s
	}
	n.pid = intValue(raw["pid"])

	return n, nil
}

// normalizeTags accepts a bare string as a single tag and keeps list
// elements, stringifying any that are not already strings. Anything
// else collapses to no tags.
func normalizeTags(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []any:
		tags := make([]string, 0, len(t))
		for _, el := range t {
			if s, ok := el.(string); ok {
				tags = append(tags, s)
				continue
			}
			b, err := json.Marshal(el)
			if err != nil {
				continue
			}
			tags = append(tags, string(b))
		}
		return tags
	}
	return []string{}
}

// normalizeContext keeps a client-supplied context object and folds the
// top-level source location fields into it. Set values are stored as
// sent.
func normalizeContext(raw map[string]any) map[string]any {
	c := map[string]any{}
	if m, ok := raw["context"].(map[string]any); ok {
		c = m
	}

	if v, ok := pick(raw, "source", "url"); ok && truthy(v) {
		c["source"] = v
	}
	if v, ok := pick(raw, "line", "lineno"); ok && truthy(v) {
		c["line"] = v
	}
	if v, ok := pick(raw, "column", "colno"); ok && truthy(v) {
		c["column"] = v
	}
	return c
}

// pick returns the first key present in raw. Presence wins over
// truthiness, so an explicit null or empty value stops the chain.
func pick(raw map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// truthy reports whether a decoded JSON value counts as set under loose
// client semantics: null, false, zero, empty strings and empty
// collections are all unset.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	return true
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// intValue coerces a decoded JSON value to an int, tolerating numeric
// strings. Anything else is 0.
func intValue(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return i
	}
	return 0
}
