package actions

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"erp-admin/pkg/apiclient"
)

// crud holds the four by-id operations both factories share.
type crud[E any] struct {
	r        apiclient.Requester
	basePath string
}

func newCRUD[E any](r apiclient.Requester, basePath string) crud[E] {
	return crud[E]{r: r, basePath: strings.TrimSuffix(basePath, "/")}
}

func (c crud[E]) itemPath(id string) string {
	return c.basePath + "/" + url.PathEscape(id)
}

// FindByID issues GET {base}/{id}.
func (c crud[E]) FindByID(ctx context.Context, id string) (E, error) {
	return apiclient.Do[E](ctx, c.r, c.itemPath(id), apiclient.Options{Method: http.MethodGet})
}

// Create issues POST {base} and returns the entity as stored by the server.
func (c crud[E]) Create(ctx context.Context, data any) (E, error) {
	return apiclient.Do[E](ctx, c.r, c.basePath, apiclient.Options{Method: http.MethodPost, Body: data})
}

// Update issues PATCH {base}/{id}. Fields absent from data are left unchanged server-side.
func (c crud[E]) Update(ctx context.Context, id string, data any) (E, error) {
	return apiclient.Do[E](ctx, c.r, c.itemPath(id), apiclient.Options{Method: http.MethodPatch, Body: data})
}

// Remove issues DELETE {base}/{id}. What a second delete of the same id does is up to the backend.
func (c crud[E]) Remove(ctx context.Context, id string) error {
	return c.r.Request(ctx, c.itemPath(id), apiclient.Options{Method: http.MethodDelete}, nil)
}
