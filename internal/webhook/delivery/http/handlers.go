package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crashvault/pkg/response"
)

// Add godoc
// @Summary     Register a webhook
// @Description Registers a new webhook subscription. Type must be slack, discord or http.
// @Tags        Webhooks
// @Accept      json
// @Produce     json
// @Param       body body addReq true "Webhook data"
// @Success     201 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/webhooks [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Add(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newDetailResp(output))
}

// List godoc
// @Summary     List webhooks
// @Description Returns every configured webhook subscription.
// @Tags        Webhooks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/webhooks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Remove godoc
// @Summary     Remove a webhook
// @Description Deletes a webhook subscription by id.
// @Tags        Webhooks
// @Produce     json
// @Param       id path string true "Webhook ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/webhooks/{id} [DELETE]
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Remove(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Remove: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Toggle godoc
// @Summary     Enable or disable a webhook
// @Description Sets the enabled flag of a webhook subscription.
// @Tags        Webhooks
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Webhook ID"
// @Param       body body toggleReq  true "Enabled flag"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/webhooks/{id} [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Toggle(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Test godoc
// @Summary     Send a test notification
// @Description Sends a synthetic event to one webhook, ignoring its enabled flag and level filter.
// @Tags        Webhooks
// @Produce     json
// @Param       id path string true "Webhook ID"
// @Success     200 {object} testResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/webhooks/{id}/test [POST]
func (h *handler) Test(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Test(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Test: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTestResp(output))
}
