package repository

import "errors"

var (
	ErrFailedToWrite  = errors.New("failed to write event")
	ErrFailedToList   = errors.New("failed to list events")
	ErrFailedToDelete = errors.New("failed to delete events")
)
