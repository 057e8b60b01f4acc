package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"crashvault/internal/model"
	"crashvault/internal/webhook"
	"crashvault/internal/webhook/provider"
)

// Add registers a new subscription. The type must have a provider
// adapter; the name defaults to "<type>-webhook" and new subscriptions
// start enabled.
func (uc *implUseCase) Add(ctx context.Context, input webhook.AddInput) (webhook.DetailSubscriptionOutput, error) {
	typ := strings.ToLower(strings.TrimSpace(input.Type))
	if !provider.Known(typ) {
		return webhook.DetailSubscriptionOutput{}, webhook.ErrUnknownType
	}
	if strings.TrimSpace(input.URL) == "" {
		return webhook.DetailSubscriptionOutput{}, webhook.ErrURLRequired
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	subs, err := uc.repo.ListSubscriptions(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Add ListSubscriptions: %v", err)
		return webhook.DetailSubscriptionOutput{}, err
	}

	name := input.Name
	if name == "" {
		name = typ + "-webhook"
	}

	sub := model.Subscription{
		ID:      uuid.NewString()[:8],
		Type:    typ,
		URL:     input.URL,
		Name:    name,
		Secret:  input.Secret,
		Events:  input.Events,
		Enabled: true,
	}

	if err := uc.repo.SaveSubscriptions(ctx, append(subs, sub)); err != nil {
		uc.l.Errorf(ctx, "uc.Add SaveSubscriptions: %v", err)
		return webhook.DetailSubscriptionOutput{}, err
	}

	uc.l.Infof(ctx, "webhook added | id=%s | type=%s", sub.ID, sub.Type)
	return webhook.DetailSubscriptionOutput{Subscription: sub}, nil
}

// Remove deletes a subscription by id.
func (uc *implUseCase) Remove(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	subs, err := uc.repo.ListSubscriptions(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Remove ListSubscriptions: %v", err)
		return err
	}

	kept := make([]model.Subscription, 0, len(subs))
	found := false
	for _, s := range subs {
		if s.ID == id {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return webhook.ErrSubscriptionNotFound
	}

	if err := uc.repo.SaveSubscriptions(ctx, kept); err != nil {
		uc.l.Errorf(ctx, "uc.Remove SaveSubscriptions: %v", err)
		return err
	}

	uc.l.Infof(ctx, "webhook removed | id=%s", id)
	return nil
}

// Toggle sets the enabled flag to the given value and persists it.
func (uc *implUseCase) Toggle(ctx context.Context, input webhook.ToggleInput) (webhook.DetailSubscriptionOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	subs, err := uc.repo.ListSubscriptions(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle ListSubscriptions: %v", err)
		return webhook.DetailSubscriptionOutput{}, err
	}

	for i := range subs {
		if subs[i].ID != input.ID {
			continue
		}
		subs[i].Enabled = input.Enabled
		if err := uc.repo.SaveSubscriptions(ctx, subs); err != nil {
			uc.l.Errorf(ctx, "uc.Toggle SaveSubscriptions: %v", err)
			return webhook.DetailSubscriptionOutput{}, err
		}
		return webhook.DetailSubscriptionOutput{Subscription: subs[i]}, nil
	}

	return webhook.DetailSubscriptionOutput{}, webhook.ErrSubscriptionNotFound
}

// List returns every configured subscription.
func (uc *implUseCase) List(ctx context.Context) (webhook.ListSubscriptionsOutput, error) {
	subs, err := uc.repo.ListSubscriptions(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListSubscriptions: %v", err)
		return webhook.ListSubscriptionsOutput{}, err
	}
	return webhook.ListSubscriptionsOutput{Subscriptions: subs, Total: len(subs)}, nil
}

// Detail returns a single subscription by id.
func (uc *implUseCase) Detail(ctx context.Context, id string) (webhook.DetailSubscriptionOutput, error) {
	subs, err := uc.repo.ListSubscriptions(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail ListSubscriptions: %v", err)
		return webhook.DetailSubscriptionOutput{}, err
	}

	for _, s := range subs {
		if s.ID == id {
			return webhook.DetailSubscriptionOutput{Subscription: s}, nil
		}
	}
	return webhook.DetailSubscriptionOutput{}, webhook.ErrSubscriptionNotFound
}
