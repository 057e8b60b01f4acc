package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"crashvault/pkg/log"
)

type sample struct {
	message    string
	level      string
	stacktrace string
	tags       []string
}

var samples = []sample{
	{
		message:    "TypeError: Cannot read properties of undefined (reading 'map')",
		level:      "error",
		stacktrace: "TypeError: Cannot read properties of undefined (reading 'map')\n    at render (app.js:42:18)\n    at commitWork (react-dom.js:1180:5)",
		tags:       []string{"web", "frontend"},
	},
	{
		message:    "connection refused: dial tcp 10.0.0.12:5432",
		level:      "critical",
		stacktrace: "",
		tags:       []string{"api", "postgres"},
	},
	{
		message:    "slow query exceeded 2s threshold",
		level:      "warning",
		stacktrace: "",
		tags:       []string{"api", "postgres"},
	},
	{
		message:    "payment webhook signature mismatch",
		level:      "error",
		stacktrace: "",
		tags:       []string{"billing"},
	},
	{
		message:    "cache warmed",
		level:      "info",
		stacktrace: "",
		tags:       []string{"worker"},
	},
}

func main() {
	server := "http://localhost:5678"
	count := 10

	if len(os.Args) > 1 {
		server = os.Args[1]
	}
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fmt.Println("Usage: go run scripts/sendevents/main.go [server-url] [count]")
			os.Exit(1)
		}
		count = n
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()
	client := &http.Client{Timeout: 10 * time.Second}

	logger.Infof(ctx, "Sending %d events to %s", count, server)

	successCount := 0
	for i := 0; i < count; i++ {
		s := samples[i%len(samples)]

		body, err := json.Marshal(map[string]any{
			"message":    s.message,
			"level":      s.level,
			"stacktrace": s.stacktrace,
			"tags":       s.tags,
			"context": map[string]any{
				"request_id": fmt.Sprintf("req-%04d", rand.Intn(10000)),
			},
		})
		if err != nil {
			logger.Fatalf(ctx, "Failed to marshal event: %v", err)
		}

		resp, err := client.Post(server+"/api/v1/events", "application/json", bytes.NewReader(body))
		if err != nil {
			logger.Errorf(ctx, "Failed to send event %d/%d: %v", i+1, count, err)
			continue
		}

		var result struct {
			EventID      string `json:"event_id"`
			IssueID      int    `json:"issue_id"`
			IssueCreated bool   `json:"issue_created"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			resp.Body.Close()
			logger.Errorf(ctx, "Failed to decode response for event %d/%d: %v", i+1, count, err)
			continue
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			logger.Errorf(ctx, "Event %d/%d rejected with status %d", i+1, count, resp.StatusCode)
			continue
		}

		logger.Infof(ctx, "Sent event %d/%d: issue=%d created=%t %q", i+1, count, result.IssueID, result.IssueCreated, s.message)
		successCount++
	}

	logger.Infof(ctx, "Done! %d/%d events accepted.", successCount, count)
}
