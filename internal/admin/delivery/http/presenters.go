package http

import (
	"erp-admin/internal/actions"
	"erp-admin/internal/module"
	"erp-admin/pkg/notify"
	"erp-admin/pkg/response"
)

type cursorResp struct {
	Limit       int     `json:"limit"`
	StartCursor *string `json:"start_cursor"`
	EndCursor   *string `json:"end_cursor"`
}

type pageInfoResp struct {
	HasNextPage     bool    `json:"has_next_page"`
	HasPreviousPage bool    `json:"has_previous_page"`
	StartCursor     *string `json:"start_cursor"`
	EndCursor       *string `json:"end_cursor"`
}

type pageResp[E any] struct {
	Items      []E          `json:"items"`
	PageCount  int          `json:"page_count"`
	RowCount   int          `json:"row_count"`
	PageInfo   pageInfoResp `json:"page_info"`
	Pagination cursorResp   `json:"pagination"`
}

func newPageResp[E any](page actions.PaginatedResponse[E], state module.PaginationState) pageResp[E] {
	items := page.Data
	if items == nil {
		items = []E{}
	}
	return pageResp[E]{
		Items:     items,
		PageCount: page.PageCount,
		RowCount:  page.RowCount,
		PageInfo: pageInfoResp{
			HasNextPage:     page.PageInfo.HasNextPage,
			HasPreviousPage: page.PageInfo.HasPreviousPage,
			StartCursor:     page.PageInfo.StartCursor,
			EndCursor:       page.PageInfo.EndCursor,
		},
		Pagination: cursorResp{
			Limit:       state.Limit,
			StartCursor: state.StartCursor,
			EndCursor:   state.EndCursor,
		},
	}
}

type listResp[E any] struct {
	Items []E `json:"items"`
	Total int `json:"total"`
}

func newListResp[E any](items []E) listResp[E] {
	if items == nil {
		items = []E{}
	}
	return listResp[E]{Items: items, Total: len(items)}
}

type itemResp[E any] struct {
	Item E `json:"item"`
}

type deleteResp struct {
	ID string `json:"id"`
}

type optionResp struct {
	Code  string         `json:"code"`
	Value string         `json:"value"`
	Meta  map[string]any `json:"meta"`
}

type searchResp struct {
	Options []optionResp `json:"options"`
}

func newSearchResp(options []actions.AutocompleteOption) searchResp {
	out := make([]optionResp, len(options))
	for i, o := range options {
		out[i] = optionResp{Code: o.Code, Value: o.Value, Meta: o.Meta}
	}
	return searchResp{Options: out}
}

type notificationResp struct {
	Level   notify.Level      `json:"level"`
	Module  string            `json:"module"`
	Action  string            `json:"action"`
	Message string            `json:"message"`
	At      response.DateTime `json:"at"`
}

type notificationsResp struct {
	Notifications []notificationResp `json:"notifications"`
}

func newNotificationsResp(ns []notify.Notification) notificationsResp {
	out := make([]notificationResp, len(ns))
	for i, n := range ns {
		out[i] = notificationResp{
			Level:   n.Level,
			Module:  n.Module,
			Action:  n.Action,
			Message: n.Message,
			At:      response.DateTime(n.At),
		}
	}
	return notificationsResp{Notifications: out}
}
