package http

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

const maxLimit = 100

type pageReq struct {
	Limit int
}

// processPageReq reads the optional ?limit= of a page request.
func (h *handler) processPageReq(c *gin.Context) (pageReq, error) {
	var req pageReq
	raw := c.Query("limit")
	if raw == "" {
		return req, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxLimit {
		return req, errInvalidLimit
	}
	req.Limit = n
	return req, nil
}

// processBodyReq reads the raw entity JSON of a create or update. The body is
// forwarded verbatim so partial updates only carry the fields being changed.
func (h *handler) processBodyReq(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, errInvalidBody
	}
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return nil, errInvalidBody
	}
	return json.RawMessage(raw), nil
}

func (h *handler) processIDReq(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}
