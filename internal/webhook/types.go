package webhook

import "crashvault/internal/model"

// --- UseCase Inputs ---

// AddInput carries the fields for registering a new subscription.
type AddInput struct {
	Type   string
	URL    string
	Name   string
	Secret string
	Events []string
}

// ToggleInput sets a subscription's enabled flag to an explicit value.
type ToggleInput struct {
	ID      string
	Enabled bool
}

// --- UseCase Outputs ---

type ListSubscriptionsOutput struct {
	Subscriptions []model.Subscription
	Total         int
}

type DetailSubscriptionOutput struct {
	Subscription model.Subscription
}

// DispatchOutput maps subscription ids to per-delivery success.
type DispatchOutput struct {
	Results map[string]bool
}

type TestOutput struct {
	Success bool
}
