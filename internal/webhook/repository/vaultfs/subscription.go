package vaultfs

import (
	"context"
	"encoding/json"

	"crashvault/internal/model"
	repo "crashvault/internal/webhook/repository"
)

// configKey is where subscriptions live inside the shared config doc.
const configKey = "webhooks"

// ListSubscriptions reads the subscription list from config.json. A
// missing key is an empty list; a corrupt key is an error.
func (r *implRepository) ListSubscriptions(ctx context.Context) ([]model.Subscription, error) {
	doc := r.v.LoadConfigDoc()
	raw, ok := doc[configKey]
	if !ok {
		return []model.Subscription{}, nil
	}

	var subs []model.Subscription
	if err := json.Unmarshal(raw, &subs); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSubscriptions"), err)
		return nil, repo.ErrFailedToLoad
	}
	if subs == nil {
		subs = []model.Subscription{}
	}
	return subs, nil
}

// SaveSubscriptions replaces the subscription list, leaving every other
// key of the config doc untouched.
func (r *implRepository) SaveSubscriptions(ctx context.Context, subs []model.Subscription) error {
	if subs == nil {
		subs = []model.Subscription{}
	}
	raw, err := json.Marshal(subs)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveSubscriptions"), err)
		return repo.ErrFailedToSave
	}

	doc := r.v.LoadConfigDoc()
	doc[configKey] = raw
	if err := r.v.SaveConfigDoc(doc); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveSubscriptions"), err)
		return repo.ErrFailedToSave
	}
	return nil
}
