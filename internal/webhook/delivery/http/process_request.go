package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "crashvault/pkg/errors"
)

// processAddReq binds and validates the add webhook request body.
func (h *handler) processAddReq(c *gin.Context) (addReq, error) {
	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "type and url are required")
	}
	return req, req.validate()
}

// processToggleReq binds the toggle request body + URI param.
func (h *handler) processToggleReq(c *gin.Context) (toggleReq, error) {
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "enabled is required")
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	return req, req.validate()
}
