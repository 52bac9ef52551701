package http

import (
	"github.com/gin-gonic/gin"

	"erp-admin/internal/actions"
	"erp-admin/internal/model"
	"erp-admin/internal/module"
	"erp-admin/internal/workspace"
	"erp-admin/pkg/response"
)

// listResource serves one reference table loaded in full.
type listResource[E model.Entity] struct {
	h       *handler
	key     string
	actions actions.ListActions[E]
}

func (r listResource[E]) module(c *gin.Context) *module.List[E] {
	return workspace.Module(r.h.workspace(c), r.key, func(ws *workspace.Workspace) *module.List[E] {
		return module.NewList[E](r.key, r.actions, ws.Cache, ws.Notifier, r.h.l)
	})
}

// All godoc
// @Summary     Full reference table
// @Description Returns every row of a list module, from the session cache when fresh.
// @Tags        Lists
// @Produce     json
// @Param       X-Session-ID header string false "Dashboard session"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/countries [GET]
// @Router      /api/v1/states [GET]
// @Router      /api/v1/departments [GET]
// @Router      /api/v1/document-types [GET]
// @Router      /api/v1/economic-activities [GET]
// @Router      /api/v1/fiscal-regimes [GET]
// @Router      /api/v1/person-types [GET]
// @Router      /api/v1/lot-statuses [GET]
func (r listResource[E]) All(c *gin.Context) {
	items, err := r.module(c).Query(c.Request.Context())
	if err != nil {
		r.h.fail(c, r.key+".Query", err)
		return
	}
	response.OK(c, newListResp(items))
}

// Search godoc
// @Summary     Autocomplete options of a list module
// @Tags        Lists
// @Produce     json
// @Param       q query string true "Free text"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Module has no search"
// @Router      /api/v1/countries/search [GET]
// @Router      /api/v1/states/search [GET]
// @Router      /api/v1/departments/search [GET]
// @Router      /api/v1/document-types/search [GET]
// @Router      /api/v1/economic-activities/search [GET]
// @Router      /api/v1/fiscal-regimes/search [GET]
// @Router      /api/v1/person-types/search [GET]
// @Router      /api/v1/lot-statuses/search [GET]
func (r listResource[E]) Search(c *gin.Context) { r.h.runSearch(c, r.key) }

// Detail godoc
// @Summary     Get one row
// @Tags        Lists
// @Produce     json
// @Param       id path string true "Record ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/countries/{id} [GET]
// @Router      /api/v1/states/{id} [GET]
// @Router      /api/v1/departments/{id} [GET]
// @Router      /api/v1/document-types/{id} [GET]
// @Router      /api/v1/economic-activities/{id} [GET]
// @Router      /api/v1/fiscal-regimes/{id} [GET]
// @Router      /api/v1/person-types/{id} [GET]
// @Router      /api/v1/lot-statuses/{id} [GET]
func (r listResource[E]) Detail(c *gin.Context) { detail(r.h, c, r.key, r.actions.FindByID) }

// Create godoc
// @Summary     Create a row
// @Description The body is forwarded to the ERP API as-is. The cached table is invalidated on success.
// @Tags        Lists
// @Accept      json
// @Produce     json
// @Param       body body object true "Record fields"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/countries [POST]
// @Router      /api/v1/states [POST]
// @Router      /api/v1/departments [POST]
// @Router      /api/v1/document-types [POST]
// @Router      /api/v1/economic-activities [POST]
// @Router      /api/v1/fiscal-regimes [POST]
// @Router      /api/v1/person-types [POST]
// @Router      /api/v1/lot-statuses [POST]
func (r listResource[E]) Create(c *gin.Context) { create[E](r.h, c, r.key, r.module(c)) }

// Update godoc
// @Summary     Update a row
// @Description Partial update: only the fields present in the body change.
// @Tags        Lists
// @Accept      json
// @Produce     json
// @Param       id   path string true "Record ID"
// @Param       body body object true "Fields to change"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/countries/{id} [PATCH]
// @Router      /api/v1/states/{id} [PATCH]
// @Router      /api/v1/departments/{id} [PATCH]
// @Router      /api/v1/document-types/{id} [PATCH]
// @Router      /api/v1/economic-activities/{id} [PATCH]
// @Router      /api/v1/fiscal-regimes/{id} [PATCH]
// @Router      /api/v1/person-types/{id} [PATCH]
// @Router      /api/v1/lot-statuses/{id} [PATCH]
func (r listResource[E]) Update(c *gin.Context) { update[E](r.h, c, r.key, r.module(c)) }

// Delete godoc
// @Summary     Delete a row
// @Tags        Lists
// @Produce     json
// @Param       id path string true "Record ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/countries/{id} [DELETE]
// @Router      /api/v1/states/{id} [DELETE]
// @Router      /api/v1/departments/{id} [DELETE]
// @Router      /api/v1/document-types/{id} [DELETE]
// @Router      /api/v1/economic-activities/{id} [DELETE]
// @Router      /api/v1/fiscal-regimes/{id} [DELETE]
// @Router      /api/v1/person-types/{id} [DELETE]
// @Router      /api/v1/lot-statuses/{id} [DELETE]
func (r listResource[E]) Delete(c *gin.Context) { remove[E](r.h, c, r.key, r.module(c)) }
