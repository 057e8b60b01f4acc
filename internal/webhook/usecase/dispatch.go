package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"crashvault/internal/metrics"
	"crashvault/internal/model"
	"crashvault/internal/webhook"
	"crashvault/internal/webhook/provider"
)

// maxConcurrentSends bounds the dispatch fan-out.
const maxConcurrentSends = 5

// Dispatch fans a payload out to every matching subscription and
// reports per-subscription success. Subscriptions are re-read on every
// call so changes made by other processes apply immediately. Provider
// failures are logged and recorded as false; they never fail the call.
func (uc *implUseCase) Dispatch(ctx context.Context, payload model.NotificationPayload) (webhook.DispatchOutput, error) {
	subs, err := uc.repo.ListSubscriptions(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Dispatch ListSubscriptions: %v", err)
		return webhook.DispatchOutput{}, err
	}

	type target struct {
		id     string
		typ    string
		sender provider.Sender
	}
	var targets []target
	for _, sub := range subs {
		if !shouldSend(sub, payload) {
			continue
		}
		sender, err := provider.New(sub, uc.client)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Dispatch provider.New: id=%s: %v", sub.ID, err)
			continue
		}
		targets = append(targets, target{id: sub.ID, typ: sub.Type, sender: sender})
	}

	results := make(map[string]bool, len(targets))
	if len(targets) == 0 {
		return webhook.DispatchOutput{Results: results}, nil
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(maxConcurrentSends)

	for _, t := range targets {
		t := t
		g.Go(func() error {
			sendCtx, cancel := context.WithTimeout(ctx, provider.SendTimeout)
			defer cancel()

			err := t.sender.Send(sendCtx, payload)
			metrics.RecordWebhookDelivery(t.typ, err == nil)

			mu.Lock()
			results[t.id] = err == nil
			mu.Unlock()

			if err != nil {
				uc.l.Warnf(ctx, "webhook failed | id=%s | error=%v", t.id, err)
			} else {
				uc.l.Infof(ctx, "webhook sent | id=%s", t.id)
			}
			return nil
		})
	}
	_ = g.Wait()

	return webhook.DispatchOutput{Results: results}, nil
}

// Test sends a synthetic notification to one subscription, bypassing
// the enabled flag and level filter.
func (uc *implUseCase) Test(ctx context.Context, id string) (webhook.TestOutput, error) {
	subs, err := uc.repo.ListSubscriptions(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Test ListSubscriptions: %v", err)
		return webhook.TestOutput{}, err
	}

	var sub model.Subscription
	found := false
	for _, s := range subs {
		if s.ID == id {
			sub = s
			found = true
			break
		}
	}
	if !found {
		return webhook.TestOutput{}, webhook.ErrSubscriptionNotFound
	}

	sender, err := provider.New(sub, uc.client)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Test provider.New: %v", err)
		return webhook.TestOutput{}, webhook.ErrUnknownType
	}

	sendCtx, cancel := context.WithTimeout(ctx, provider.SendTimeout)
	defer cancel()

	if err := sender.Send(sendCtx, testPayload()); err != nil {
		uc.l.Warnf(ctx, "webhook failed | id=%s | error=%v", id, err)
		return webhook.TestOutput{Success: false}, nil
	}

	uc.l.Infof(ctx, "webhook sent | id=%s", id)
	return webhook.TestOutput{Success: true}, nil
}

// shouldSend applies the subscription's enabled flag and level filter.
// An empty events list matches every level.
func shouldSend(sub model.Subscription, payload model.NotificationPayload) bool {
	if !sub.Enabled {
		return false
	}
	if len(sub.Events) == 0 {
		return true
	}

	level := strings.ToLower(payload.Level)
	for _, ev := range sub.Events {
		if strings.ToLower(ev) == level {
			return true
		}
	}
	return false
}

func testPayload() model.NotificationPayload {
	return model.NotificationPayload{
		EventID:   "test-" + uuid.NewString()[:8],
		IssueID:   0,
		Message:   "This is a test notification from CrashVault",
		Level:     "info",
		Timestamp: "2024-01-01T00:00:00Z",
		Tags:      []string{"test"},
		Host:      "crashvault-test",
	}
}
