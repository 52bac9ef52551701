package actions

import (
	"context"
)

// CursorPaginationParams is the body of POST {base}/pagination.
// Cursors are opaque: they are only ever copied from a previous PageInfo.
type CursorPaginationParams struct {
	Limit        int     `json:"limit"`
	AfterCursor  *string `json:"afterCursor,omitempty"`
	BeforeCursor *string `json:"beforeCursor,omitempty"`
}

// PageInfo describes where a page sits in the full result set.
type PageInfo struct {
	Limit           int     `json:"limit"`
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	StartCursor     *string `json:"startCursor"`
	EndCursor       *string `json:"endCursor"`
}

// PaginatedResponse is one cursor page of entities.
type PaginatedResponse[E any] struct {
	Data      []E      `json:"data"`
	PageCount int      `json:"pageCount"`
	RowCount  int      `json:"rowCount"`
	PageInfo  PageInfo `json:"pageInfo"`
}

// AutocompleteFieldMapping projects a raw entity into an AutocompleteOption.
// Code and Value name entity JSON fields. SearchFields documents which fields
// the backend matches the free-text search against. When MetaFields is nil,
// every field except Code and Value goes into Meta.
type AutocompleteFieldMapping struct {
	Code         string
	Value        string
	SearchFields []string
	MetaFields   []string
}

// AutocompleteOption is a search suggestion.
type AutocompleteOption struct {
	Code  string         `json:"code"`
	Value string         `json:"value"`
	Meta  map[string]any `json:"meta"`
}

// SearchFunc runs one autocomplete query.
type SearchFunc func(ctx context.Context, query string) ([]AutocompleteOption, error)

// Mutator is the write half shared by paginated and list actions.
// data is any JSON-marshalable value; send only the fields being changed for
// partial updates (a map, json.RawMessage or a struct with omitempty fields).
type Mutator[E any] interface {
	FindByID(ctx context.Context, id string) (E, error)
	Create(ctx context.Context, data any) (E, error)
	Update(ctx context.Context, id string, data any) (E, error)
	Remove(ctx context.Context, id string) error
}

// PaginatedActions is the action set of a cursor-paged entity.
type PaginatedActions[E any] interface {
	Mutator[E]
	FindAllPaginated(ctx context.Context, params CursorPaginationParams) (PaginatedResponse[E], error)
}

// ListActions is the action set of a small reference table loaded in full.
type ListActions[E any] interface {
	Mutator[E]
	FindAll(ctx context.Context) ([]E, error)
}
