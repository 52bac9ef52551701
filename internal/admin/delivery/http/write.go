package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"erp-admin/internal/module"
	"erp-admin/pkg/response"
)

// mutable is what both module kinds expose for writes.
type mutable[E any] interface {
	CreateMutation() *module.Mutation[any, E]
	UpdateMutation() *module.Mutation[module.UpdateInput, E]
	DeleteMutation() *module.Mutation[string, struct{}]
}

func (h *handler) fail(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	mapped := h.mapError(err)
	h.l.Warnf(ctx, "%s: %v", op, err)
	response.Error(c, mapped)
}

func detail[E any](h *handler, c *gin.Context, key string, find func(ctx context.Context, id string) (E, error)) {
	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := find(c.Request.Context(), id)
	if err != nil {
		h.fail(c, key+".FindByID", err)
		return
	}
	response.OK(c, itemResp[E]{Item: item})
}

func create[E any](h *handler, c *gin.Context, key string, m mutable[E]) {
	body, err := h.processBodyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := m.CreateMutation().Mutate(c.Request.Context(), body)
	if err != nil {
		h.fail(c, key+".Create", err)
		return
	}
	response.OK(c, itemResp[E]{Item: item})
}

func update[E any](h *handler, c *gin.Context, key string, m mutable[E]) {
	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	body, err := h.processBodyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := m.UpdateMutation().Mutate(c.Request.Context(), module.UpdateInput{ID: id, Data: body})
	if err != nil {
		h.fail(c, key+".Update", err)
		return
	}
	response.OK(c, itemResp[E]{Item: item})
}

func remove[E any](h *handler, c *gin.Context, key string, m mutable[E]) {
	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if _, err := m.DeleteMutation().Mutate(c.Request.Context(), id); err != nil {
		h.fail(c, key+".Remove", err)
		return
	}
	response.OK(c, deleteResp{ID: id})
}

func (h *handler) runSearch(c *gin.Context, key string) {
	search := h.search(key)
	if search == nil {
		response.Error(c, errNotSearchable)
		return
	}

	options, err := search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, key+".Search", err)
		return
	}
	response.OK(c, newSearchResp(options))
}
