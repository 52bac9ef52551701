package actions

import (
	"context"
	"net/http"

	"erp-admin/pkg/apiclient"
)

// Paginated is the generated action set of a cursor-paged entity.
type Paginated[E any] struct {
	crud[E]
}

var _ PaginatedActions[struct{}] = (*Paginated[struct{}])(nil)

// NewPaginated generates the paginated CRUD actions for basePath (e.g. "/onerp/banks").
func NewPaginated[E any](r apiclient.Requester, basePath string) *Paginated[E] {
	return &Paginated[E]{crud: newCRUD[E](r, basePath)}
}

// FindAllPaginated issues POST {base}/pagination with params as the body.
// Ordering and cursor encoding belong to the backend.
func (p *Paginated[E]) FindAllPaginated(ctx context.Context, params CursorPaginationParams) (PaginatedResponse[E], error) {
	return apiclient.Do[PaginatedResponse[E]](ctx, p.r, p.basePath+"/pagination", apiclient.Options{
		Method: http.MethodPost,
		Body:   params,
	})
}

// BasePath returns the REST resource root.
func (p *Paginated[E]) BasePath() string { return p.basePath }
