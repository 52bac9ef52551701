package http

import (
	"github.com/gin-gonic/gin"

	"erp-admin/internal/actions"
	"erp-admin/internal/model"
	"erp-admin/internal/module"
	"erp-admin/internal/workspace"
	"erp-admin/pkg/response"
)

// paginatedResource serves one cursor-paged entity.
type paginatedResource[E model.Entity] struct {
	h       *handler
	key     string
	actions actions.PaginatedActions[E]
}

func (r paginatedResource[E]) module(c *gin.Context) *module.Paginated[E] {
	return workspace.Module(r.h.workspace(c), r.key, func(ws *workspace.Workspace) *module.Paginated[E] {
		return module.NewPaginated[E](r.key, r.actions, ws.Cache, ws.Notifier, r.h.l)
	})
}

// Page godoc
// @Summary     Current page of a module
// @Description Returns the page at the session's cursor. A limit different from the current one goes back to the first page.
// @Tags        Modules
// @Produce     json
// @Param       module       path   string true  "Module key, e.g. banks"
// @Param       limit        query  int    false "Page size (1-100)"
// @Param       X-Session-ID header string false "Dashboard session"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/{module} [GET]
func (r paginatedResource[E]) Page(c *gin.Context) {
	req, err := r.h.processPageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	m := r.module(c)
	if req.Limit > 0 {
		m.SetLimit(req.Limit)
	}
	page, err := m.Query(c.Request.Context())
	if err != nil {
		r.h.fail(c, r.key+".Query", err)
		return
	}
	response.OK(c, newPageResp(page, m.Pagination()))
}

// Next godoc
// @Summary     Move to the next page
// @Tags        Modules
// @Produce     json
// @Param       module path string true "Module key"
// @Success     200 {object} response.Resp
// @Failure     409 {object} response.Resp "No next page"
// @Router      /api/v1/{module}/next [POST]
func (r paginatedResource[E]) Next(c *gin.Context) {
	r.move(c, (*module.Paginated[E]).NextPage, errNoNextPage)
}

// Previous godoc
// @Summary     Move to the previous page
// @Tags        Modules
// @Produce     json
// @Param       module path string true "Module key"
// @Success     200 {object} response.Resp
// @Failure     409 {object} response.Resp "No previous page"
// @Router      /api/v1/{module}/previous [POST]
func (r paginatedResource[E]) Previous(c *gin.Context) {
	r.move(c, (*module.Paginated[E]).PreviousPage, errNoPreviousPage)
}

func (r paginatedResource[E]) move(c *gin.Context, step func(*module.Paginated[E]) bool, refused error) {
	ctx := c.Request.Context()
	m := r.module(c)

	// The transition needs the page info of the current page.
	if _, err := m.Query(ctx); err != nil {
		r.h.fail(c, r.key+".Query", err)
		return
	}
	if !step(m) {
		response.Error(c, refused)
		return
	}

	page, err := m.Query(ctx)
	if err != nil {
		r.h.fail(c, r.key+".Query", err)
		return
	}
	response.OK(c, newPageResp(page, m.Pagination()))
}

// Search godoc
// @Summary     Autocomplete options of a module
// @Tags        Modules
// @Produce     json
// @Param       module path  string true "Module key"
// @Param       q      query string true "Free text"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Module has no search"
// @Router      /api/v1/{module}/search [GET]
func (r paginatedResource[E]) Search(c *gin.Context) {
	r.h.runSearch(c, r.key)
}

// Detail godoc
// @Summary     Get one record
// @Tags        Modules
// @Produce     json
// @Param       module path string true "Module key"
// @Param       id     path string true "Record ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/{module}/{id} [GET]
func (r paginatedResource[E]) Detail(c *gin.Context) {
	detail(r.h, c, r.key, r.actions.FindByID)
}

// Create godoc
// @Summary     Create a record
// @Description The body is forwarded to the ERP API as-is. Every cached page of the module is invalidated on success.
// @Tags        Modules
// @Accept      json
// @Produce     json
// @Param       module path string true "Module key"
// @Param       body   body object true "Record fields"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/{module} [POST]
func (r paginatedResource[E]) Create(c *gin.Context) {
	create[E](r.h, c, r.key, r.module(c))
}

// Update godoc
// @Summary     Update a record
// @Description Partial update: only the fields present in the body change.
// @Tags        Modules
// @Accept      json
// @Produce     json
// @Param       module path string true "Module key"
// @Param       id     path string true "Record ID"
// @Param       body   body object true "Fields to change"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/{module}/{id} [PATCH]
func (r paginatedResource[E]) Update(c *gin.Context) {
	update[E](r.h, c, r.key, r.module(c))
}

// Delete godoc
// @Summary     Delete a record
// @Tags        Modules
// @Produce     json
// @Param       module path string true "Module key"
// @Param       id     path string true "Record ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/{module}/{id} [DELETE]
func (r paginatedResource[E]) Delete(c *gin.Context) {
	remove[E](r.h, c, r.key, r.module(c))
}
