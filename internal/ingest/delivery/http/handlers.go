package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crashvault/internal/ingest"
)

// Submit godoc
// @Summary     Ingest an event
// @Description Accepts one error event, groups it into an issue by message fingerprint and stores it. Webhooks fire in the background.
// @Tags        Ingestion
// @Accept      json
// @Produce     json
// @Param       body body eventBody true "Event payload"
// @Success     201 {object} submitResp
// @Failure     400 {object} errResp "Bad Request"
// @Failure     413 {object} errResp "Payload Too Large"
// @Failure     500 {object} errResp "Internal Server Error"
// @Router      /api/v1/events [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	raw, ok := h.decodeBody(c)
	if !ok {
		return
	}

	output, err := h.uc.Submit(ctx, ingest.SubmitInput{Raw: raw, ClientAddr: c.ClientIP()})
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.newSubmitResp(output))
}

// SubmitBatch godoc
// @Summary     Ingest a batch of events
// @Description Accepts up to 100 events in one request. Elements that cannot be stored are skipped rather than failing the batch.
// @Tags        Ingestion
// @Accept      json
// @Produce     json
// @Param       body body batchBody true "Batch payload"
// @Success     201 {object} batchResp
// @Failure     400 {object} errResp "Bad Request"
// @Failure     413 {object} errResp "Payload Too Large"
// @Failure     500 {object} errResp "Internal Server Error"
// @Router      /api/v1/batch [POST]
func (h *handler) SubmitBatch(c *gin.Context) {
	ctx := c.Request.Context()

	raw, ok := h.decodeBody(c)
	if !ok {
		return
	}

	events, ok := h.processBatchEvents(c, raw)
	if !ok {
		return
	}

	output, err := h.uc.SubmitBatch(ctx, ingest.SubmitBatchInput{Events: events, ClientAddr: c.ClientIP()})
	if err != nil {
		h.l.Errorf(ctx, "uc.SubmitBatch: %v", err)
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.newBatchResp(output))
}

// Stats godoc
// @Summary     Store statistics
// @Description Returns store-wide totals and a per-level event breakdown.
// @Tags        Ingestion
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     500 {object} errResp "Internal Server Error"
// @Router      /api/v1/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newStatsResp(output))
}
