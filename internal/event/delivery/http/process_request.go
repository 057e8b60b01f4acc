package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "crashvault/pkg/errors"
)

// processListReq binds and validates the list events query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	return req, req.validate()
}
