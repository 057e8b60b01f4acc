package http

import (
	"crashvault/internal/webhook"
	pkgErrors "crashvault/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from
// pkg/errors. Unknown errors pass through and are rendered as 500.
func (h *handler) mapError(err error) error {
	switch err {
	case webhook.ErrSubscriptionNotFound:
		return pkgErrors.NewHTTPError(404, "webhook not found")
	case webhook.ErrUnknownType:
		return pkgErrors.NewHTTPError(400, "unknown webhook type")
	case webhook.ErrURLRequired:
		return pkgErrors.NewHTTPError(400, "webhook url is required")
	default:
		return err
	}
}
