// Package module holds the per-entity state the dashboard works with: the
// current page of a paginated entity or the full list of a reference table,
// plus the create, update and delete mutations that keep it fresh.
package module

import (
	"context"
	"sync"

	"erp-admin/internal/actions"
	"erp-admin/pkg/log"
	"erp-admin/pkg/notify"
	"erp-admin/pkg/querycache"
)

// PaginatedSnapshot is what a paginated module shows right now.
type PaginatedSnapshot[E any] struct {
	Data          *actions.PaginatedResponse[E]
	IsLoading     bool
	IsPlaceholder bool
	Err           error
	Pagination    PaginationState
}

// Paginated is the module of a cursor-paged entity.
type Paginated[E any] struct {
	shared
	actions actions.PaginatedActions[E]

	mu      sync.Mutex
	state   PaginationState
	current *actions.PaginatedResponse[E]
	shown   *actions.PaginatedResponse[E]
	loading int
	err     error

	create *Mutation[any, E]
	update *Mutation[UpdateInput, E]
	remove *Mutation[string, struct{}]
}

// NewPaginated wires a paginated module under key. Cached queries are stored
// in cache as [key, pagination state].
func NewPaginated[E any](key string, a actions.PaginatedActions[E], cache *querycache.Cache, n notify.Notifier, l log.Logger) *Paginated[E] {
	if n == nil {
		n = notify.Nop()
	}
	s := shared{key: key, cache: cache, notifier: n, l: l}
	return &Paginated[E]{
		shared:  s,
		actions: a,
		state:   InitialPagination(),
		create:  createMutation[E](s, a),
		update:  updateMutation[E](s, a),
		remove:  deleteMutation(s, a),
	}
}

// Key returns the module key.
func (p *Paginated[E]) Key() string { return p.key }

// Actions returns the underlying action set.
func (p *Paginated[E]) Actions() actions.PaginatedActions[E] { return p.actions }

// Query returns the page for the current pagination state. A fresh cache entry
// is served without calling the backend.
//
// When a non-first page comes back empty (its rows were deleted since the
// cursor was taken) the module resets to the first page and queries once more.
func (p *Paginated[E]) Query(ctx context.Context) (actions.PaginatedResponse[E], error) {
	p.mu.Lock()
	state := p.state
	p.mu.Unlock()

	res, err := p.query(ctx, state)
	if err != nil {
		return res, err
	}

	if len(res.Data) == 0 && !state.IsFirstPage() {
		p.mu.Lock()
		reset := samePagination(p.state, state)
		if reset {
			p.state = InitialPagination().WithLimit(state.Limit)
			p.current = nil
			state = p.state
		}
		p.mu.Unlock()
		if reset {
			p.l.Debugf(ctx, "module.%s.Query: empty page past the end, back to first page", p.key)
			return p.query(ctx, state)
		}
	}
	return res, nil
}

func (p *Paginated[E]) query(ctx context.Context, state PaginationState) (actions.PaginatedResponse[E], error) {
	if res, ok := querycache.Lookup[actions.PaginatedResponse[E]](p.cache, p.key, state); ok {
		p.settle(state, &res, nil)
		return res, nil
	}

	p.mu.Lock()
	p.loading++
	if p.shown == nil {
		if prev, ok := querycache.Placeholder[actions.PaginatedResponse[E]](p.cache, p.key, state); ok {
			p.shown = &prev
		}
	}
	p.mu.Unlock()

	res, err := p.actions.FindAllPaginated(ctx, state.Params())

	p.mu.Lock()
	p.loading--
	p.mu.Unlock()

	if err != nil {
		p.l.Warnf(ctx, "module.%s.Query: %v", p.key, err)
		p.settle(state, nil, err)
		return actions.PaginatedResponse[E]{}, err
	}
	if res.Data == nil {
		res.Data = []E{}
	}

	p.cache.Set(p.key, state, res)
	p.settle(state, &res, nil)
	return res, nil
}

// settle records the outcome of a query if the state has not moved meanwhile.
func (p *Paginated[E]) settle(state PaginationState, res *actions.PaginatedResponse[E], err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !samePagination(p.state, state) {
		return
	}
	p.err = err
	if res != nil {
		p.current = res
		p.shown = res
	}
}

// Snapshot returns the module state without blocking on in-flight queries.
// While the current page is loading the previous page stays visible and
// IsPlaceholder is set.
func (p *Paginated[E]) Snapshot() PaginatedSnapshot[E] {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := PaginatedSnapshot[E]{
		IsLoading:  p.loading > 0,
		Err:        p.err,
		Pagination: p.state,
	}
	switch {
	case p.current != nil:
		snap.Data = p.current
	case p.shown != nil:
		snap.Data = p.shown
		snap.IsPlaceholder = true
	}
	return snap
}

// Pagination returns the current state.
func (p *Paginated[E]) Pagination() PaginationState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// SetPagination replaces the state. The next Query fetches the new page.
func (p *Paginated[E]) SetPagination(s PaginationState) {
	if s.Limit <= 0 {
		s.Limit = DefaultLimit
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if samePagination(p.state, s) {
		return
	}
	p.state = s
	p.current = nil
	p.err = nil
}

// NextPage moves past the last loaded page. It reports false when no page is
// loaded yet or the backend said there is no next page.
func (p *Paginated[E]) NextPage() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return false
	}
	next, ok := p.state.Next(p.current.PageInfo)
	if !ok {
		return false
	}
	p.state = next
	p.current = nil
	p.err = nil
	return true
}

// PreviousPage moves before the last loaded page. Same rules as NextPage.
func (p *Paginated[E]) PreviousPage() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return false
	}
	prev, ok := p.state.Previous(p.current.PageInfo)
	if !ok {
		return false
	}
	p.state = prev
	p.current = nil
	p.err = nil
	return true
}

// SetLimit changes the page size. A different size goes back to the first page.
func (p *Paginated[E]) SetLimit(limit int) {
	if limit <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if limit == p.state.Limit {
		return
	}
	p.state = p.state.WithLimit(limit)
	p.current = nil
	p.err = nil
}

func (p *Paginated[E]) CreateMutation() *Mutation[any, E]           { return p.create }
func (p *Paginated[E]) UpdateMutation() *Mutation[UpdateInput, E]   { return p.update }
func (p *Paginated[E]) DeleteMutation() *Mutation[string, struct{}] { return p.remove }

func samePagination(a, b PaginationState) bool {
	return a.Limit == b.Limit && sameCursor(a.StartCursor, b.StartCursor) && sameCursor(a.EndCursor, b.EndCursor)
}

func sameCursor(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
