package actions_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp-admin/internal/actions"
	"erp-admin/pkg/apiclient"
	"erp-admin/pkg/log"
	"erp-admin/pkg/session"
)

const banksPath = "/onerp/banks"

func TestPaginated(t *testing.T) {
	ctx := context.Background()

	t.Run("Create returns the server entity with its id", func(t *testing.T) {
		b := newFakeBackend(0)
		ts := b.server(t, banksPath)
		a := actions.NewPaginated[bank](newTestClient(t, ts.URL, session.NewStatic("tok")), banksPath)

		got, err := a.Create(ctx, map[string]any{"name": "Acme", "code": "X1"})
		require.NoError(t, err)
		assert.NotEmpty(t, got.EntityID())
		assert.Equal(t, "Acme", got.Name)
		assert.Equal(t, "X1", got.Code)
		assert.True(t, got.IsActive, "server-assigned fields are kept")
	})

	t.Run("Cursor pages are disjoint and complete", func(t *testing.T) {
		b := newFakeBackend(25)
		ts := b.server(t, banksPath)
		a := actions.NewPaginated[bank](newTestClient(t, ts.URL, session.NewStatic("tok")), banksPath)

		seen := map[string]bool{}
		params := actions.CursorPaginationParams{Limit: 10}
		pages := 0
		for {
			res, err := a.FindAllPaginated(ctx, params)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(res.Data), 10)
			for _, it := range res.Data {
				assert.False(t, seen[it.BankID], "item %s seen twice", it.BankID)
				seen[it.BankID] = true
			}
			pages++
			if !res.PageInfo.HasNextPage {
				break
			}
			params = actions.CursorPaginationParams{Limit: 10, AfterCursor: res.PageInfo.EndCursor}
		}
		assert.Equal(t, 3, pages)
		assert.Len(t, seen, 25)
	})

	t.Run("Cursor is passed through untouched", func(t *testing.T) {
		b := newFakeBackend(5)
		ts := b.server(t, banksPath)
		a := actions.NewPaginated[bank](newTestClient(t, ts.URL, session.NewStatic("tok")), banksPath)

		cursor := encodeCursor(1)
		_, err := a.FindAllPaginated(ctx, actions.CursorPaginationParams{Limit: 2, BeforeCursor: &cursor})
		require.NoError(t, err)
		assert.Equal(t, cursor, b.lastBody["beforeCursor"])
		_, hasAfter := b.lastBody["afterCursor"]
		assert.False(t, hasAfter, "nil cursors are omitted")
	})

	t.Run("FindByID, Update and Remove", func(t *testing.T) {
		b := newFakeBackend(3)
		ts := b.server(t, banksPath)
		a := actions.NewPaginated[bank](newTestClient(t, ts.URL, session.NewStatic("tok")), banksPath)

		got, err := a.FindByID(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, "Bank 02", got.Name)

		upd, err := a.Update(ctx, "2", map[string]any{"is_active": false})
		require.NoError(t, err)
		assert.Equal(t, "Bank 02", upd.Name, "omitted fields unchanged")
		assert.False(t, upd.IsActive)

		require.NoError(t, a.Remove(ctx, "2"))

		// Second remove: the backend answers 404 and the error is propagated.
		err = a.Remove(ctx, "2")
		require.Error(t, err)
		assert.True(t, apiclient.IsNotFound(err))
		assert.EqualError(t, err, "Bank not found")
	})

	t.Run("FindByID not found", func(t *testing.T) {
		b := newFakeBackend(1)
		ts := b.server(t, banksPath)
		a := actions.NewPaginated[bank](newTestClient(t, ts.URL, session.NewStatic("tok")), banksPath)

		_, err := a.FindByID(ctx, "nope")
		assert.True(t, apiclient.IsNotFound(err))
	})
}

func TestRefreshFailureShortCircuitsEveryAction(t *testing.T) {
	ctx := context.Background()
	b := newFakeBackend(3)
	ts := b.server(t, banksPath)
	expired := session.ProviderFunc(func(ctx context.Context) (session.Session, error) {
		return session.Session{Error: session.ErrorRefreshToken}, nil
	})
	c := newTestClient(t, ts.URL, expired)

	p := actions.NewPaginated[bank](c, banksPath)
	l := actions.NewList[bank](c, banksPath)
	search, err := actions.NewSearch[bank](c, banksPath, actions.AutocompleteFieldMapping{Code: "bank_id", Value: "name"})
	require.NoError(t, err)

	ops := map[string]func() error{
		"FindAllPaginated": func() error {
			_, err := p.FindAllPaginated(ctx, actions.CursorPaginationParams{Limit: 10})
			return err
		},
		"FindByID": func() error { _, err := p.FindByID(ctx, "1"); return err },
		"Create":   func() error { _, err := p.Create(ctx, map[string]any{"name": "x"}); return err },
		"Update":   func() error { _, err := p.Update(ctx, "1", map[string]any{"name": "x"}); return err },
		"Remove":   func() error { return p.Remove(ctx, "1") },
		"FindAll":  func() error { _, err := l.FindAll(ctx); return err },
		"Search":   func() error { _, err := search(ctx, "bank"); return err },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			require.Error(t, err)
			var authErr *apiclient.AuthenticationError
			assert.True(t, errors.As(err, &authErr))
		})
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(&b.hits))
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Bare array", func(t *testing.T) {
		b := newFakeBackend(4)
		ts := b.server(t, "/onerp/states")
		l := actions.NewList[bank](newTestClient(t, ts.URL, session.NewStatic("tok")), "/onerp/states")

		items, err := l.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 4)
	})

	t.Run("Data envelope", func(t *testing.T) {
		b := newFakeBackend(2)
		b.envelope = true
		ts := b.server(t, "/onerp/states")
		l := actions.NewList[bank](newTestClient(t, ts.URL, session.NewStatic("tok")), "/onerp/states")

		items, err := l.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "1", items[0].BankID)
	})

	t.Run("Empty envelope is an empty slice", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":null}`))
		}))
		defer ts.Close()
		l := actions.NewList[bank](newTestClient(t, ts.URL, session.NewStatic("tok")), "/x")

		items, err := l.FindAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("Queries pagination endpoint with fixed limit", func(t *testing.T) {
		var body map[string]any
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/onerp/companies/pagination", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			json.NewDecoder(r.Body).Decode(&body)
			w.Write([]byte(`{"data":[{"id":"1","name":"Acme","code":"X1","extra":true}],"pageCount":1,"rowCount":1,"pageInfo":{"limit":20}}`))
		}))
		defer ts.Close()

		search, err := actions.NewSearch[map[string]any](newTestClient(t, ts.URL, session.NewStatic("tok")), "/onerp/companies",
			actions.AutocompleteFieldMapping{Code: "id", Value: "name", SearchFields: []string{"name", "code"}, MetaFields: []string{"code"}})
		require.NoError(t, err)

		got, err := search(ctx, "ac")
		require.NoError(t, err)
		assert.Equal(t, float64(actions.SearchLimit), body["limit"])
		assert.Equal(t, "ac", body["search"])
		assert.Equal(t, []actions.AutocompleteOption{{Code: "1", Value: "Acme", Meta: map[string]any{"code": "X1"}}}, got)
	})

	t.Run("Factory queries even for one character", func(t *testing.T) {
		b := newFakeBackend(3)
		ts := b.server(t, banksPath)
		search, err := actions.NewSearch[bank](newTestClient(t, ts.URL, session.NewStatic("tok")), banksPath,
			actions.AutocompleteFieldMapping{Code: "bank_id", Value: "name"})
		require.NoError(t, err)

		_, err = search(ctx, "b")
		require.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&b.hits))
	})

	t.Run("Mapping needs code and value", func(t *testing.T) {
		_, err := actions.NewSearch[bank](nil, banksPath, actions.AutocompleteFieldMapping{Code: "bank_id"})
		assert.Error(t, err)
	})
}

func TestProject(t *testing.T) {
	t.Run("Meta defaults to every other field", func(t *testing.T) {
		raw := json.RawMessage(`{"lot_id":42,"lot_number":"L-7","qty":3.5,"active":false,"note":null}`)
		got := actions.Project(raw, actions.AutocompleteFieldMapping{Code: "lot_id", Value: "lot_number"})

		assert.Equal(t, "42", got.Code, "numbers are coerced to string")
		assert.Equal(t, "L-7", got.Value)
		assert.Equal(t, map[string]any{"qty": 3.5, "active": false, "note": nil}, got.Meta)
	})

	t.Run("Explicit meta skips missing fields", func(t *testing.T) {
		raw := json.RawMessage(`{"id":"1","name":"Acme"}`)
		got := actions.Project(raw, actions.AutocompleteFieldMapping{Code: "id", Value: "name", MetaFields: []string{"nit"}})
		assert.Empty(t, got.Meta)
	})
}

func TestWithPolicy(t *testing.T) {
	ctx := context.Background()

	calls := 0
	failing := func(err error) actions.SearchFunc {
		return func(ctx context.Context, q string) ([]actions.AutocompleteOption, error) {
			calls++
			return nil, err
		}
	}

	t.Run("Short query skips the network", func(t *testing.T) {
		calls = 0
		s := actions.WithPolicy(failing(errors.New("x")), actions.SearchPolicy{MinQueryLength: 2}, nil)
		got, err := s(ctx, " a ")
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Equal(t, 0, calls)
	})

	t.Run("Degrade on error", func(t *testing.T) {
		calls = 0
		s := actions.WithPolicy(failing(&apiclient.RequestError{Status: 500, Message: "Error 500"}), actions.DefaultSearchPolicy, log.NewNop())
		got, err := s(ctx, "acme")
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Equal(t, 1, calls)
	})

	t.Run("Authentication is never degraded", func(t *testing.T) {
		s := actions.WithPolicy(failing(&apiclient.AuthenticationError{}), actions.DefaultSearchPolicy, log.NewNop())
		_, err := s(ctx, "acme")
		assert.True(t, apiclient.IsAuthentication(err))
	})

	t.Run("Strict propagates", func(t *testing.T) {
		s := actions.WithPolicy(failing(errors.New("boom")), actions.SearchPolicy{}, nil)
		_, err := s(ctx, "acme")
		assert.EqualError(t, err, "boom")
	})
}
