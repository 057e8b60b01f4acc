package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"crashvault/internal/model"
)

type slackSender struct {
	sub    model.Subscription
	client *http.Client
}

func newSlack(sub model.Subscription, client *http.Client) Sender {
	return &slackSender{sub: sub, client: client}
}

var slackLevelEmoji = map[string]string{
	"debug":    ":mag:",
	"info":     ":information_source:",
	"warning":  ":warning:",
	"error":    ":x:",
	"critical": ":fire:",
}

type slackText struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

type slackBlock struct {
	Type     string      `json:"type"`
	Text     *slackText  `json:"text,omitempty"`
	Fields   []slackText `json:"fields,omitempty"`
	Elements []slackText `json:"elements,omitempty"`
}

type slackMessage struct {
	Blocks []slackBlock `json:"blocks"`
}

// Send posts a Block Kit message. Slack incoming webhooks answer 200 on
// success; anything else is a failure.
func (s *slackSender) Send(ctx context.Context, payload model.NotificationPayload) error {
	body, err := json.Marshal(s.message(payload))
	if err != nil {
		return err
	}

	status, err := post(ctx, s.client, s.sub.URL, body, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("slack webhook status %d", status)
	}
	return nil
}

func (s *slackSender) message(p model.NotificationPayload) slackMessage {
	emoji, ok := slackLevelEmoji[strings.ToLower(p.Level)]
	if !ok {
		emoji = ":pushpin:"
	}

	blocks := []slackBlock{
		{
			Type: "header",
			Text: &slackText{Type: "plain_text", Text: emoji + " CrashVault Alert", Emoji: true},
		},
		{
			Type: "section",
			Fields: []slackText{
				{Type: "mrkdwn", Text: "*Level:*\n" + strings.ToUpper(p.Level)},
				{Type: "mrkdwn", Text: fmt.Sprintf("*Issue:*\n#%d", p.IssueID)},
			},
		},
		{
			Type: "section",
			Text: &slackText{Type: "mrkdwn", Text: "*Message:*\n" + truncate(p.Message, 500)},
		},
	}

	if p.Host != "" {
		blocks = append(blocks, slackBlock{
			Type:     "context",
			Elements: []slackText{{Type: "mrkdwn", Text: "Host: `" + p.Host + "`"}},
		})
	}

	if len(p.Tags) > 0 {
		tags := make([]string, len(p.Tags))
		for i, tag := range p.Tags {
			tags[i] = "`" + tag + "`"
		}
		blocks = append(blocks, slackBlock{
			Type:     "context",
			Elements: []slackText{{Type: "mrkdwn", Text: "Tags: " + strings.Join(tags, " ")}},
		})
	}

	if p.Stacktrace != "" {
		stack := truncate(p.Stacktrace, 1500)
		if stack != p.Stacktrace {
			stack += "\n..."
		}
		blocks = append(blocks, slackBlock{
			Type: "section",
			Text: &slackText{Type: "mrkdwn", Text: "```" + stack + "```"},
		})
	}

	if p.Timestamp != "" {
		blocks = append(blocks, slackBlock{
			Type:     "context",
			Elements: []slackText{{Type: "mrkdwn", Text: fmt.Sprintf("Event: `%s` | %s", p.EventID, p.Timestamp)}},
		})
	}

	return slackMessage{Blocks: blocks}
}
