package http

import (
	"crashvault/internal/event"
	pkgErrors "crashvault/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from
// pkg/errors. Unknown errors pass through and are rendered as 500.
func (h *handler) mapError(err error) error {
	switch err {
	case event.ErrEventNotFound:
		return pkgErrors.NewHTTPError(404, "event not found")
	default:
		return err
	}
}
