package http

import (
	"crashvault/internal/issue"
	pkgErrors "crashvault/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from
// pkg/errors. Unknown errors pass through and are rendered as 500.
func (h *handler) mapError(err error) error {
	switch err {
	case issue.ErrIssueNotFound:
		return pkgErrors.NewHTTPError(404, "issue not found")
	case issue.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(400, "status must be open, resolved or ignored")
	default:
		return err
	}
}
