package module

import (
	"context"
	"sync"

	"erp-admin/internal/actions"
	"erp-admin/pkg/log"
	"erp-admin/pkg/notify"
	"erp-admin/pkg/querycache"
)

// ListSnapshot is what a list module shows right now.
type ListSnapshot[E any] struct {
	Data          []E
	IsLoading     bool
	IsPlaceholder bool
	Err           error
}

// List is the module of a reference table loaded in full. Its only cache key is [key].
type List[E any] struct {
	shared
	actions actions.ListActions[E]

	mu      sync.Mutex
	data    []E
	fresh   bool
	loading int
	err     error

	create *Mutation[any, E]
	update *Mutation[UpdateInput, E]
	remove *Mutation[string, struct{}]
}

// NewList wires a list module under key.
func NewList[E any](key string, a actions.ListActions[E], cache *querycache.Cache, n notify.Notifier, l log.Logger) *List[E] {
	if n == nil {
		n = notify.Nop()
	}
	s := shared{key: key, cache: cache, notifier: n, l: l}
	return &List[E]{
		shared:  s,
		actions: a,
		create:  createMutation[E](s, a),
		update:  updateMutation[E](s, a),
		remove:  deleteMutation(s, a),
	}
}

// Key returns the module key.
func (m *List[E]) Key() string { return m.key }

// Actions returns the underlying action set.
func (m *List[E]) Actions() actions.ListActions[E] { return m.actions }

// Query returns the full list, from cache when fresh.
func (m *List[E]) Query(ctx context.Context) ([]E, error) {
	if items, ok := querycache.Lookup[[]E](m.cache, m.key, nil); ok {
		m.mu.Lock()
		m.data, m.fresh, m.err = items, true, nil
		m.mu.Unlock()
		return items, nil
	}

	m.mu.Lock()
	m.loading++
	m.fresh = false
	if m.data == nil {
		if prev, ok := querycache.Placeholder[[]E](m.cache, m.key, nil); ok {
			m.data = prev
		}
	}
	m.mu.Unlock()

	items, err := m.actions.FindAll(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading--
	if err != nil {
		m.l.Warnf(ctx, "module.%s.Query: %v", m.key, err)
		m.err = err
		return nil, err
	}
	if items == nil {
		items = []E{}
	}
	m.cache.Set(m.key, nil, items)
	m.data, m.fresh, m.err = items, true, nil
	return items, nil
}

// Snapshot returns the module state without blocking on an in-flight query.
func (m *List[E]) Snapshot() ListSnapshot[E] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ListSnapshot[E]{
		Data:          m.data,
		IsLoading:     m.loading > 0,
		IsPlaceholder: m.data != nil && !m.fresh,
		Err:           m.err,
	}
}

func (m *List[E]) CreateMutation() *Mutation[any, E]           { return m.create }
func (m *List[E]) UpdateMutation() *Mutation[UpdateInput, E]   { return m.update }
func (m *List[E]) DeleteMutation() *Mutation[string, struct{}] { return m.remove }
