package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"crashvault/internal/ingest"
)

// writeError renders a usecase error in the ingestion API's raw error
// shape. Unknown errors collapse to a generic 500 so storage details
// never leak to clients.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ingest.ErrMessageRequired):
		c.JSON(http.StatusBadRequest, errResp{Error: "message is required"})
	case errors.Is(err, ingest.ErrBatchTooLarge):
		c.JSON(http.StatusBadRequest, errResp{Error: fmt.Sprintf("Maximum %d events per batch", ingest.MaxBatchSize)})
	default:
		c.JSON(http.StatusInternalServerError, errResp{Error: "Internal server error"})
	}
}
