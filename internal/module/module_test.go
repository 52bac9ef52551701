package module_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp-admin/internal/module"
	"erp-admin/pkg/apiclient"
	"erp-admin/pkg/log"
	"erp-admin/pkg/notify"
	"erp-admin/pkg/querycache"
)

func newPaginated(t *testing.T, f *fakeActions) (*module.Paginated[bank], *querycache.Cache, *notify.Inbox) {
	t.Helper()
	cache := querycache.New(querycache.Config{})
	inbox := notify.NewInbox(10)
	return module.NewPaginated[bank]("banks", f, cache, inbox, log.NewNop()), cache, inbox
}

func TestPaginatedQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("Fresh cache entry skips the backend", func(t *testing.T) {
		f := newFakeActions(15)
		m, _, _ := newPaginated(t, f)

		first, err := m.Query(ctx)
		require.NoError(t, err)
		assert.Len(t, first.Data, 10)

		again, err := m.Query(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, again)
		assert.Equal(t, 1, f.hits())
	})

	t.Run("Next and previous walk the pages", func(t *testing.T) {
		f := newFakeActions(25)
		m, _, _ := newPaginated(t, f)

		assert.False(t, m.NextPage(), "nothing loaded yet")

		_, err := m.Query(ctx)
		require.NoError(t, err)
		assert.False(t, m.PreviousPage(), "first page has no previous")

		require.True(t, m.NextPage())
		p2, err := m.Query(ctx)
		require.NoError(t, err)
		assert.Equal(t, "11", p2.Data[0].BankID)
		require.NotNil(t, f.lastReq.AfterCursor)
		assert.Equal(t, "9", *f.lastReq.AfterCursor)
		assert.Nil(t, f.lastReq.BeforeCursor)

		require.True(t, m.NextPage())
		p3, err := m.Query(ctx)
		require.NoError(t, err)
		assert.Len(t, p3.Data, 5)
		assert.False(t, m.NextPage(), "last page has no next")

		require.True(t, m.PreviousPage())
		back, err := m.Query(ctx)
		require.NoError(t, err)
		assert.Nil(t, f.lastReq.AfterCursor)
		require.NotNil(t, f.lastReq.BeforeCursor)
		assert.Equal(t, "20", *f.lastReq.BeforeCursor)
		assert.Equal(t, p2.Data, back.Data)
	})

	t.Run("SetLimit goes back to the first page", func(t *testing.T) {
		f := newFakeActions(30)
		m, _, _ := newPaginated(t, f)

		_, err := m.Query(ctx)
		require.NoError(t, err)
		require.True(t, m.NextPage())

		m.SetLimit(20)
		assert.Equal(t, module.PaginationState{Limit: 20}, m.Pagination())

		res, err := m.Query(ctx)
		require.NoError(t, err)
		assert.Len(t, res.Data, 20)
		assert.Equal(t, "1", res.Data[0].BankID)
	})

	t.Run("Query error is kept in the snapshot", func(t *testing.T) {
		f := newFakeActions(3)
		f.failWith = &apiclient.RequestError{Status: 500, Message: "Error 500"}
		m, _, _ := newPaginated(t, f)

		_, err := m.Query(ctx)
		require.Error(t, err)
		snap := m.Snapshot()
		assert.EqualError(t, snap.Err, "Error 500")
		assert.Nil(t, snap.Data)
		assert.False(t, snap.IsLoading)
	})

	t.Run("Previous page stays visible after moving", func(t *testing.T) {
		f := newFakeActions(25)
		m, _, _ := newPaginated(t, f)

		first, err := m.Query(ctx)
		require.NoError(t, err)
		require.True(t, m.NextPage())

		snap := m.Snapshot()
		assert.True(t, snap.IsPlaceholder)
		require.NotNil(t, snap.Data)
		assert.Equal(t, first.Data, snap.Data.Data)
	})
}

func TestPaginatedMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("Create invalidates every banks query", func(t *testing.T) {
		f := newFakeActions(25)
		m, cache, inbox := newPaginated(t, f)

		_, err := m.Query(ctx)
		require.NoError(t, err)
		require.True(t, m.NextPage())
		_, err = m.Query(ctx)
		require.NoError(t, err)
		cache.Set("currencies", nil, "untouched")

		created, err := m.CreateMutation().Mutate(ctx, map[string]any{"name": "Acme"})
		require.NoError(t, err)
		assert.Equal(t, "26", created.BankID)
		assert.Equal(t, created, m.CreateMutation().Data())

		assert.True(t, cache.IsStale("banks", module.InitialPagination()))
		assert.True(t, cache.IsStale("banks", m.Pagination()))
		assert.False(t, cache.IsStale("currencies", nil))

		before := f.hits()
		_, err = m.Query(ctx)
		require.NoError(t, err)
		assert.Equal(t, before+1, f.hits(), "stale page refetched")

		got := inbox.Drain()
		require.Len(t, got, 1)
		assert.Equal(t, notify.LevelSuccess, got[0].Level)
		assert.Equal(t, "banks", got[0].Module)
		assert.Equal(t, module.ActionCreate, got[0].Action)
	})

	t.Run("Failure is captured, notified and returned", func(t *testing.T) {
		f := newFakeActions(2)
		m, cache, inbox := newPaginated(t, f)

		_, err := m.Query(ctx)
		require.NoError(t, err)

		f.failWith = &apiclient.RequestError{Status: 400, Message: "name must not be empty"}
		mut := m.CreateMutation()
		_, err = mut.Mutate(ctx, map[string]any{})
		require.Error(t, err)
		assert.EqualError(t, mut.Err(), "name must not be empty")
		assert.False(t, mut.IsPending())
		assert.False(t, cache.IsStale("banks", module.InitialPagination()), "failed mutations keep the cache")

		got := inbox.Drain()
		require.Len(t, got, 1)
		assert.Equal(t, notify.LevelError, got[0].Level)
		assert.Equal(t, "name must not be empty", got[0].Message)

		mut.Reset()
		assert.NoError(t, mut.Err())
	})

	t.Run("Authentication failure is notified and returned", func(t *testing.T) {
		f := newFakeActions(1)
		f.failWith = &apiclient.AuthenticationError{Reason: "token refresh failed"}
		m, _, inbox := newPaginated(t, f)

		_, err := m.CreateMutation().Mutate(ctx, map[string]any{"name": "x"})
		assert.True(t, apiclient.IsAuthentication(err))
		assert.Equal(t, 1, inbox.Len())
	})

	t.Run("Update and delete", func(t *testing.T) {
		f := newFakeActions(3)
		m, cache, inbox := newPaginated(t, f)

		_, err := m.Query(ctx)
		require.NoError(t, err)

		upd, err := m.UpdateMutation().Mutate(ctx, module.UpdateInput{ID: "2", Data: map[string]any{"name": "Renamed"}})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", upd.Name)
		assert.True(t, cache.IsStale("banks", module.InitialPagination()))

		_, err = m.Query(ctx)
		require.NoError(t, err)

		_, err = m.DeleteMutation().Mutate(ctx, "2")
		require.NoError(t, err)
		_, err = m.DeleteMutation().Mutate(ctx, "2")
		assert.EqualError(t, err, "Bank not found")

		levels := []notify.Level{}
		for _, n := range inbox.Drain() {
			levels = append(levels, n.Level)
		}
		assert.Equal(t, []notify.Level{notify.LevelSuccess, notify.LevelSuccess, notify.LevelError}, levels)
	})

	t.Run("Deleting the last row of the last page resets to the first page", func(t *testing.T) {
		f := newFakeActions(11)
		m, _, _ := newPaginated(t, f)

		_, err := m.Query(ctx)
		require.NoError(t, err)
		require.True(t, m.NextPage())
		last, err := m.Query(ctx)
		require.NoError(t, err)
		require.Len(t, last.Data, 1)

		_, err = m.DeleteMutation().Mutate(ctx, last.Data[0].BankID)
		require.NoError(t, err)

		res, err := m.Query(ctx)
		require.NoError(t, err)
		assert.Len(t, res.Data, 10)
		assert.True(t, m.Pagination().IsFirstPage())
		assert.Equal(t, 10, m.Pagination().Limit)
	})
}

func TestListModule(t *testing.T) {
	ctx := context.Background()

	t.Run("Cached until a mutation succeeds", func(t *testing.T) {
		f := newFakeActions(4)
		cache := querycache.New(querycache.Config{})
		m := module.NewList[bank]("states", f, cache, nil, log.NewNop())

		items, err := m.Query(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 4)
		_, err = m.Query(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, f.listHits)

		_, err = m.CreateMutation().Mutate(ctx, map[string]any{"name": "New"})
		require.NoError(t, err)
		assert.True(t, cache.IsStale("states", nil))

		snap := m.Snapshot()
		assert.Len(t, snap.Data, 4)

		items, err = m.Query(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 5)
		assert.Equal(t, 2, f.listHits)
	})

	t.Run("Query error", func(t *testing.T) {
		f := newFakeActions(0)
		f.failWith = errors.New("boom")
		m := module.NewList[bank]("states", f, querycache.New(querycache.Config{}), nil, log.NewNop())

		_, err := m.Query(ctx)
		assert.EqualError(t, err, "boom")
		assert.EqualError(t, m.Snapshot().Err, "boom")
	})
}
