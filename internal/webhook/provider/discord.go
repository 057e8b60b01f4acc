package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"crashvault/internal/model"
)

type discordSender struct {
	sub    model.Subscription
	client *http.Client
}

func newDiscord(sub model.Subscription, client *http.Client) Sender {
	return &discordSender{sub: sub, client: client}
}

var discordLevelColor = map[string]int{
	"debug":    0x6B7280,
	"info":     0x3B82F6,
	"warning":  0xF59E0B,
	"error":    0xEF4444,
	"critical": 0x7C2D12,
}

var discordLevelEmoji = map[string]string{
	"debug":    "🔍",
	"info":     "ℹ️",
	"warning":  "⚠️",
	"error":    "❌",
	"critical": "🔥",
}

type discordField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordFooter struct {
	Text string `json:"text"`
}

type discordEmbed struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Color       int            `json:"color"`
	Fields      []discordField `json:"fields"`
	Footer      *discordFooter `json:"footer,omitempty"`
	Timestamp   string         `json:"timestamp,omitempty"`
}

type discordMessage struct {
	Username string         `json:"username"`
	Embeds   []discordEmbed `json:"embeds"`
}

// Send posts an embed message. Discord answers 204 No Content on
// success; 200 is accepted too.
func (d *discordSender) Send(ctx context.Context, payload model.NotificationPayload) error {
	body, err := json.Marshal(d.message(payload))
	if err != nil {
		return err
	}

	status, err := post(ctx, d.client, d.sub.URL, body, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return fmt.Errorf("discord webhook status %d", status)
	}
	return nil
}

func (d *discordSender) message(p model.NotificationPayload) discordMessage {
	level := strings.ToLower(p.Level)
	color, ok := discordLevelColor[level]
	if !ok {
		color = 0x6B7280
	}
	emoji, ok := discordLevelEmoji[level]
	if !ok {
		emoji = "📌"
	}

	fields := []discordField{
		{Name: "Level", Value: emoji + " " + strings.ToUpper(p.Level), Inline: true},
		{Name: "Issue", Value: fmt.Sprintf("#%d", p.IssueID), Inline: true},
	}

	if p.Host != "" {
		fields = append(fields, discordField{Name: "Host", Value: "`" + p.Host + "`", Inline: true})
	}

	if len(p.Tags) > 0 {
		tags := make([]string, len(p.Tags))
		for i, tag := range p.Tags {
			tags[i] = "`" + tag + "`"
		}
		fields = append(fields, discordField{Name: "Tags", Value: strings.Join(tags, ", "), Inline: false})
	}

	if p.Stacktrace != "" {
		stack := truncate(p.Stacktrace, 1000)
		if stack != p.Stacktrace {
			stack += "\n..."
		}
		fields = append(fields, discordField{Name: "Stacktrace", Value: "```\n" + stack + "\n```", Inline: false})
	}

	embed := discordEmbed{
		Title:       "CrashVault Alert",
		Description: truncate(p.Message, 2000),
		Color:       color,
		Fields:      fields,
	}
	if p.Timestamp != "" {
		embed.Footer = &discordFooter{Text: "Event: " + p.EventID}
		embed.Timestamp = p.Timestamp
	}

	return discordMessage{Username: "CrashVault", Embeds: []discordEmbed{embed}}
}
