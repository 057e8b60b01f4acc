package http

import (
	"github.com/gin-gonic/gin"

	"crashvault/internal/event"
	"crashvault/pkg/response"
)

// List godoc
// @Summary     List issues
// @Description Returns all issues, newest last, optionally filtered by status.
// @Tags        Issues
// @Produce     json
// @Param       status query string false "Filter by status (open/resolved/ignored)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/issues [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get issue detail
// @Description Returns one issue with all of its stored events, newest first.
// @Tags        Issues
// @Produce     json
// @Param       id path int true "Issue ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/issues/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	events, err := h.eventUC.List(ctx, event.ListEventsInput{IssueID: id})
	if err != nil {
		h.l.Errorf(ctx, "eventUC.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output, events))
}

// Update godoc
// @Summary     Update an issue
// @Description Changes the status and/or title of an issue. At least one field is required.
// @Tags        Issues
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Issue ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} issueDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/issues/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.applyUpdate(ctx, req)
	if err != nil {
		h.l.Errorf(ctx, "uc update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newIssueDetailResp(output))
}

// Purge godoc
// @Summary     Purge an issue
// @Description Removes an issue and deletes all of its event files.
// @Tags        Issues
// @Produce     json
// @Param       id path int true "Issue ID"
// @Success     200 {object} purgeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/issues/{id} [DELETE]
func (h *handler) Purge(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Purge(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Purge: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPurgeResp(output))
}
