package http

import (
	"github.com/gin-gonic/gin"

	"erp-admin/internal/actions"
	"erp-admin/internal/erp"
	"erp-admin/internal/middleware"
	"erp-admin/internal/workspace"
	"erp-admin/pkg/apiclient"
	"erp-admin/pkg/log"
	"erp-admin/pkg/session"
)

type handler struct {
	l        log.Logger
	store    *workspace.Store
	catalog  *erp.Catalog
	policy   actions.SearchPolicy
	sessions session.Provider
}

// New creates the HTTP handler of the admin modules. sessions must be the
// provider the ERP client uses.
func New(l log.Logger, store *workspace.Store, catalog *erp.Catalog, policy actions.SearchPolicy, sessions session.Provider) *handler {
	return &handler{
		l:        l,
		store:    store,
		catalog:  catalog,
		policy:   policy,
		sessions: sessions,
	}
}

// authorize resolves the ERP session before any module state is read, so an
// unusable session is answered 401 even when the page is cached.
func (h *handler) authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := apiclient.Authorize(c.Request.Context(), h.sessions); err != nil {
			h.fail(c, "authorize", err)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *handler) workspace(c *gin.Context) *workspace.Workspace {
	return h.store.Get(middleware.SessionID(c))
}

// search returns the autocomplete action of key with the handler policy, or nil.
func (h *handler) search(key string) actions.SearchFunc {
	s, ok := h.catalog.Search(key)
	if !ok {
		return nil
	}
	return actions.WithPolicy(s, h.policy, h.l)
}
