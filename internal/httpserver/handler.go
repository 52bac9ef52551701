package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	adminHTTP "erp-admin/internal/admin/delivery/http"
	"erp-admin/internal/model"
	"erp-admin/pkg/metrics"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	mw := srv.middleware
	srv.gin.Use(gin.Recovery(), mw.RequestID(), mw.Metrics(), mw.RateLimit())

	ctx := context.Background()
	if srv.environment == model.EnvironmentProduction {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
		srv.gin.Use(gin.Logger())
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(metrics.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes mounts the admin modules under /api/v1.
func (srv HTTPServer) registerDomainRoutes() {
	h := adminHTTP.New(srv.l, srv.workspaces, srv.catalog, srv.searchPolicy, srv.sessions)
	adminHTTP.RegisterRoutes(srv.gin.Group("/api/v1"), h, srv.middleware)

	srv.l.Infof(context.Background(), "Admin modules registered under /api/v1")
}
