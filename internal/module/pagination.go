package module

import "erp-admin/internal/actions"

// DefaultLimit is the page size of a fresh paginated module.
const DefaultLimit = 10

// PaginationState is the cursor position of one paginated module instance.
// Both cursors nil means the first page.
type PaginationState struct {
	Limit       int     `json:"limit"`
	StartCursor *string `json:"startCursor"`
	EndCursor   *string `json:"endCursor"`
}

// InitialPagination returns {10, nil, nil}.
func InitialPagination() PaginationState {
	return PaginationState{Limit: DefaultLimit}
}

// IsFirstPage reports whether neither cursor is set.
func (s PaginationState) IsFirstPage() bool {
	return s.StartCursor == nil && s.EndCursor == nil
}

// Params maps the state onto the request body: the start cursor is sent as
// afterCursor and the end cursor as beforeCursor.
func (s PaginationState) Params() actions.CursorPaginationParams {
	return actions.CursorPaginationParams{
		Limit:        s.Limit,
		AfterCursor:  s.StartCursor,
		BeforeCursor: s.EndCursor,
	}
}

// Next returns the state of the page after the one described by info.
func (s PaginationState) Next(info actions.PageInfo) (PaginationState, bool) {
	if !info.HasNextPage || info.EndCursor == nil {
		return s, false
	}
	return PaginationState{Limit: s.Limit, StartCursor: clone(info.EndCursor)}, true
}

// Previous returns the state of the page before the one described by info.
func (s PaginationState) Previous(info actions.PageInfo) (PaginationState, bool) {
	if !info.HasPreviousPage || info.StartCursor == nil {
		return s, false
	}
	return PaginationState{Limit: s.Limit, EndCursor: clone(info.StartCursor)}, true
}

// WithLimit changes the page size and goes back to the first page.
func (s PaginationState) WithLimit(limit int) PaginationState {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return PaginationState{Limit: limit}
}

func clone(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
