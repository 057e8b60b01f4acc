package repository

import "errors"

var (
	ErrFailedToLoad = errors.New("failed to load webhook subscriptions")
	ErrFailedToSave = errors.New("failed to save webhook subscriptions")
)
