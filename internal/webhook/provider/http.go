package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"crashvault/internal/model"
)

type httpSender struct {
	sub    model.Subscription
	client *http.Client
}

func newHTTP(sub model.Subscription, client *http.Client) Sender {
	return &httpSender{sub: sub, client: client}
}

type httpEnvelope struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

// Send posts the full payload to a generic endpoint. The data object is
// the canonical payload form, so a receiver with the shared secret can
// re-marshal it and verify the signature header. Any 2xx is a success.
func (h *httpSender) Send(ctx context.Context, payload model.NotificationPayload) error {
	body, err := json.Marshal(httpEnvelope{Type: "crashvault.event", Data: payload.CanonicalMap()})
	if err != nil {
		return err
	}

	headers := map[string]string{
		"User-Agent":         "CrashVault/1.0",
		"X-CrashVault-Event": payload.EventID,
	}
	if h.sub.Secret != "" {
		sig, err := Sign(payload, h.sub.Secret)
		if err != nil {
			return err
		}
		headers["X-CrashVault-Signature"] = "sha256=" + sig
	}

	status, err := post(ctx, h.client, h.sub.URL, body, headers)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("http webhook status %d", status)
	}
	return nil
}
