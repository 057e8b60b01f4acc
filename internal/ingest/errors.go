package ingest

import "errors"

var (
	ErrMessageRequired = errors.New("message is required")
	ErrBatchTooLarge   = errors.New("batch exceeds the maximum batch size")
)
