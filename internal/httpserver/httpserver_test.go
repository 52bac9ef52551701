package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp-admin/internal/actions"
	"erp-admin/internal/erp"
	"erp-admin/internal/workspace"
	"erp-admin/pkg/apiclient"
	"erp-admin/pkg/log"
	"erp-admin/pkg/session"
)

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	sessions := session.NewStatic("tok")
	client, err := apiclient.New(apiclient.Config{BaseURL: "http://erp.invalid"}, sessions, l)
	require.NoError(t, err)
	cat, err := erp.NewCatalog(client)
	require.NoError(t, err)

	srv, err := New(l, Config{
		Port:         8080,
		Mode:         "test",
		Environment:  "development",
		Catalog:      cat,
		Workspaces:   workspace.NewStore(workspace.Config{}, nil, l),
		SearchPolicy: actions.DefaultSearchPolicy,
		Sessions:     sessions,
	})
	require.NoError(t, err)
	return srv
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), ServiceName)
		})
	}

	t.Run("/metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		w = httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), "erp_admin_http_requests_total"))
	})
}

func TestNewValidates(t *testing.T) {
	_, err := New(log.NewNop(), Config{Port: 8080, Mode: "test"})
	assert.EqualError(t, err, "catalog is required")

	_, err = New(log.NewNop(), Config{Mode: "test"})
	assert.EqualError(t, err, "port is required")
}
