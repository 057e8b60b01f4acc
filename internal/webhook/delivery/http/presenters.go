package http

import (
	"crashvault/internal/model"
	"crashvault/internal/webhook"
)

// --- Request DTOs ---

type addReq struct {
	Type   string   `json:"type" binding:"required"`
	URL    string   `json:"url"  binding:"required"`
	Name   string   `json:"name"`
	Secret string   `json:"secret"`
	Events []string `json:"events"`
}

func (r addReq) validate() error { return nil }

func (r addReq) toInput() webhook.AddInput {
	return webhook.AddInput{
		Type:   r.Type,
		URL:    r.URL,
		Name:   r.Name,
		Secret: r.Secret,
		Events: r.Events,
	}
}

// ---

type toggleReq struct {
	ID      string `json:"-"` // populated from URI param
	Enabled *bool  `json:"enabled" binding:"required"`
}

func (r toggleReq) validate() error { return nil }

func (r toggleReq) toInput() webhook.ToggleInput {
	return webhook.ToggleInput{ID: r.ID, Enabled: *r.Enabled}
}

// --- Response DTOs ---

// subscriptionResp omits the secret; it is write-only through the API.
type subscriptionResp struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	URL     string   `json:"url"`
	Name    string   `json:"name"`
	Events  []string `json:"events"`
	Enabled bool     `json:"enabled"`
}

func newSubscriptionResp(sub model.Subscription) subscriptionResp {
	return subscriptionResp{
		ID:      sub.ID,
		Type:    sub.Type,
		URL:     sub.URL,
		Name:    sub.Name,
		Events:  sub.Events,
		Enabled: sub.Enabled,
	}
}

type listResp struct {
	Webhooks []subscriptionResp `json:"webhooks"`
	Total    int                `json:"total"`
}

func (h *handler) newListResp(out webhook.ListSubscriptionsOutput) listResp {
	hooks := make([]subscriptionResp, len(out.Subscriptions))
	for i, sub := range out.Subscriptions {
		hooks[i] = newSubscriptionResp(sub)
	}
	return listResp{Webhooks: hooks, Total: out.Total}
}

type detailResp struct {
	Webhook subscriptionResp `json:"webhook"`
}

func (h *handler) newDetailResp(out webhook.DetailSubscriptionOutput) detailResp {
	return detailResp{Webhook: newSubscriptionResp(out.Subscription)}
}

type testResp struct {
	Success bool `json:"success"`
}

func (h *handler) newTestResp(out webhook.TestOutput) testResp {
	return testResp{Success: out.Success}
}
