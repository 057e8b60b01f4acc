// Package provider holds the outbound adapters that turn a notification
// payload into a provider-specific HTTP request.
package provider

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"crashvault/internal/model"
)

const (
	TypeSlack   = "slack"
	TypeDiscord = "discord"
	TypeHTTP    = "http"
)

// SendTimeout bounds a single provider request.
const SendTimeout = 10 * time.Second

var ErrUnknownType = errors.New("unknown webhook type")

// Sender delivers one notification to one subscription target. A non-nil
// error means delivery failed; callers decide whether to log or count it.
type Sender interface {
	Send(ctx context.Context, payload model.NotificationPayload) error
}

// Factory builds a Sender for a subscription.
type Factory func(sub model.Subscription, client *http.Client) Sender

// registry maps subscription types to factories. Registration is
// explicit here, not via package side effects.
var registry = map[string]Factory{
	TypeSlack:   newSlack,
	TypeDiscord: newDiscord,
	TypeHTTP:    newHTTP,
}

// Known reports whether a subscription type has a registered adapter.
func Known(t string) bool {
	_, ok := registry[t]
	return ok
}

// New returns the adapter for the subscription's type. A nil client
// falls back to DefaultClient.
func New(sub model.Subscription, client *http.Client) (Sender, error) {
	factory, ok := registry[sub.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, sub.Type)
	}
	if client == nil {
		client = DefaultClient()
	}
	return factory(sub, client), nil
}

// DefaultClient returns the HTTP client providers share.
func DefaultClient() *http.Client {
	return &http.Client{Timeout: SendTimeout}
}

// Sign returns the hex HMAC-SHA256 of the payload's canonical JSON form.
func Sign(payload model.NotificationPayload, secret string) (string, error) {
	body, err := payload.CanonicalJSON()
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// post sends a JSON body and returns the response status code. The
// response body is drained so the client connection can be reused.
func post(ctx context.Context, client *http.Client, url string, body []byte, headers map[string]string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

// truncate returns s cut to max characters, not bytes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
