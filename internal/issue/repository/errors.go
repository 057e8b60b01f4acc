package repository

import "errors"

var (
	ErrFailedToLoad = errors.New("failed to load issue index")
	ErrFailedToSave = errors.New("failed to save issue index")
)
