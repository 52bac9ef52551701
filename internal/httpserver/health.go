package httpserver

import (
	"github.com/gin-gonic/gin"

	"erp-admin/pkg/response"
)

const (
	HealthMessage = "ERP admin API"
	HealthVersion = "1.0.0"
	ServiceName   = "erp-admin"
)

func statusBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck godoc
// @Summary     Health Check
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp "API is healthy"
// @Router      /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, statusBody("healthy"))
}

// readyCheck reports the open dashboard sessions along with readiness.
// @Summary     Readiness Check
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp "API is ready"
// @Router      /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := statusBody("ready")
	body["workspaces"] = srv.workspaces.Len()
	body["environment"] = srv.environment
	response.OK(c, body)
}

// @Summary     Liveness Check
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp "API is alive"
// @Router      /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, statusBody("alive"))
}
