package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"erp-admin/internal/actions"
	"erp-admin/internal/erp"
	"erp-admin/internal/middleware"
	"erp-admin/internal/workspace"
	"erp-admin/pkg/log"
	"erp-admin/pkg/session"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Admin modules
	catalog      *erp.Catalog
	workspaces   *workspace.Store
	searchPolicy actions.SearchPolicy
	sessions     session.Provider
	middleware   middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Catalog      *erp.Catalog
	Workspaces   *workspace.Store
	SearchPolicy actions.SearchPolicy
	Sessions     session.Provider
	Middleware   middleware.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		catalog:      cfg.Catalog,
		workspaces:   cfg.Workspaces,
		searchPolicy: cfg.SearchPolicy,
		sessions:     cfg.Sessions,
		middleware:   middleware.New(logger, cfg.Middleware),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.catalog == nil {
		return errors.New("catalog is required")
	}
	if srv.workspaces == nil {
		return errors.New("workspace store is required")
	}
	if srv.sessions == nil {
		return errors.New("session provider is required")
	}
	return nil
}
