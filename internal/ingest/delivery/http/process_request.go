package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// decodeBody reads the request body as one JSON object. An empty body
// counts as an empty object. On bad input it writes the error response
// and reports false.
func (h *handler) decodeBody(c *gin.Context) (map[string]any, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		// MaxBytesReader trips here when a chunked body crosses the cap.
		c.JSON(http.StatusRequestEntityTooLarge, errResp{Error: "Payload too large"})
		return nil, false
	}

	raw := map[string]any{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &raw); err != nil {
			c.JSON(http.StatusBadRequest, errResp{Error: "Invalid JSON"})
			return nil, false
		}
	}
	return raw, true
}

// processBatchEvents pulls the events list out of a batch body. A
// missing key is an empty batch; a present non-list value is a client
// error.
func (h *handler) processBatchEvents(c *gin.Context, raw map[string]any) ([]any, bool) {
	v, present := raw["events"]
	if !present {
		return []any{}, true
	}

	events, ok := v.([]any)
	if !ok {
		c.JSON(http.StatusBadRequest, errResp{Error: "events must be an array"})
		return nil, false
	}
	return events, true
}
