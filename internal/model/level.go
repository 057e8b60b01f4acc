package model

import "strings"

// Level classifies event severity.
type Level string

const (
	LevelDebug    Level = "debug"
	LevelInfo     Level = "info"
	LevelWarning  Level = "warning"
	LevelError    Level = "error"
	LevelCritical Level = "critical"
)

// ParseLevel normalizes raw client input. Values outside the known set
// collapse to LevelError so clients cannot invent severity buckets.
func ParseLevel(s string) Level {
	l := Level(strings.ToLower(s))
	switch l {
	case LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical:
		return l
	}
	return LevelError
}
