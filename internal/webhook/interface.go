package webhook

import (
	"context"

	"crashvault/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Subscription management
	Add(ctx context.Context, input AddInput) (DetailSubscriptionOutput, error)
	Remove(ctx context.Context, id string) error
	Toggle(ctx context.Context, input ToggleInput) (DetailSubscriptionOutput, error)
	List(ctx context.Context) (ListSubscriptionsOutput, error)
	Detail(ctx context.Context, id string) (DetailSubscriptionOutput, error)

	// Delivery
	Dispatch(ctx context.Context, payload model.NotificationPayload) (DispatchOutput, error)
	Test(ctx context.Context, id string) (TestOutput, error)
}
