package webhook

import "errors"

var (
	ErrSubscriptionNotFound = errors.New("webhook subscription not found")
	ErrURLRequired          = errors.New("webhook url is required")
	ErrUnknownType          = errors.New("unknown webhook type")
)
