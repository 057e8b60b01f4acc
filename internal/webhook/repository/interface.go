package repository

import (
	"context"

	"crashvault/internal/model"
)

// Repository is the composed interface for the webhook domain data store.
type Repository interface {
	SubscriptionRepository
}

// SubscriptionRepository defines all data access methods for webhook
// subscriptions. Subscriptions are always read and written as a whole
// list; callers serialize mutations.
type SubscriptionRepository interface {
	ListSubscriptions(ctx context.Context) ([]model.Subscription, error)
	SaveSubscriptions(ctx context.Context, subs []model.Subscription) error
}
