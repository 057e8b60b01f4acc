package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"crashvault/internal/issue"
	pkgErrors "crashvault/pkg/errors"
)

// processIDParam parses the numeric issue id from the URI.
func (h *handler) processIDParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid issue id")
	}
	return id, nil
}

// processListReq binds the list issues query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	id, err := h.processIDParam(c)
	if err != nil {
		return req, err
	}
	req.ID = id

	return req, req.validate()
}

// applyUpdate runs the requested mutations in order: status first, then
// title. The returned output reflects the last applied change.
func (h *handler) applyUpdate(ctx context.Context, req updateReq) (issue.DetailIssueOutput, error) {
	var output issue.DetailIssueOutput
	var err error

	if req.Status != nil {
		output, err = h.uc.SetStatus(ctx, issue.SetStatusInput{ID: req.ID, Status: *req.Status})
		if err != nil {
			return issue.DetailIssueOutput{}, err
		}
	}
	if req.Title != nil {
		output, err = h.uc.SetTitle(ctx, issue.SetTitleInput{ID: req.ID, Title: *req.Title})
		if err != nil {
			return issue.DetailIssueOutput{}, err
		}
	}

	return output, nil
}
