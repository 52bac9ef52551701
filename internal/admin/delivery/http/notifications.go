package http

import (
	"github.com/gin-gonic/gin"

	"erp-admin/pkg/response"
)

// Notifications godoc
// @Summary     Drain pending notifications
// @Description Returns the mutation outcomes of the session since the last call, oldest first.
// @Tags        Notifications
// @Produce     json
// @Param       X-Session-ID header string false "Dashboard session"
// @Success     200 {object} response.Resp
// @Router      /api/v1/notifications [GET]
func (h *handler) Notifications(c *gin.Context) {
	ws := h.workspace(c)
	response.OK(c, newNotificationsResp(ws.Inbox.Drain()))
}
