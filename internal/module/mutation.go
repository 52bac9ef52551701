package module

import (
	"context"
	"sync"
	"time"

	"erp-admin/pkg/log"
	"erp-admin/pkg/notify"
	"erp-admin/pkg/querycache"
)

// Mutation action names, as carried by notifications.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// UpdateInput is the argument of an update mutation.
type UpdateInput struct {
	ID   string
	Data any
}

// Mutation wraps one write operation with its observable state.
//
// A successful Mutate invalidates every cached query of the module and sends a
// success notification. A failed one records the error and sends a failure
// notification. The error is also returned so Go callers can branch on it.
type Mutation[I, O any] struct {
	mu      sync.Mutex
	pending bool
	err     error
	data    O

	run func(ctx context.Context, in I) (O, error)

	module  string
	action  string
	success string
	cache   *querycache.Cache
	notify  notify.Notifier
	l       log.Logger
	now     func() time.Time
}

type shared struct {
	key      string
	cache    *querycache.Cache
	notifier notify.Notifier
	l        log.Logger
}

func newMutation[I, O any](s shared, action, success string, run func(ctx context.Context, in I) (O, error)) *Mutation[I, O] {
	return &Mutation[I, O]{
		run:     run,
		module:  s.key,
		action:  action,
		success: success,
		cache:   s.cache,
		notify:  s.notifier,
		l:       s.l,
		now:     time.Now,
	}
}

// Mutate runs the operation. Concurrent calls are not serialized; the last to
// finish owns the exposed state.
func (m *Mutation[I, O]) Mutate(ctx context.Context, in I) (O, error) {
	m.mu.Lock()
	m.pending = true
	m.err = nil
	m.mu.Unlock()

	out, err := m.run(ctx, in)

	m.mu.Lock()
	m.pending = false
	m.err = err
	if err == nil {
		m.data = out
	}
	m.mu.Unlock()

	n := notify.Notification{Module: m.module, Action: m.action, At: m.now()}
	if err != nil {
		n.Level = notify.LevelError
		n.Message = err.Error()
		m.l.Warnf(ctx, "module.%s.%s: %v", m.module, m.action, err)
		m.notify.Failure(ctx, n)
		var zero O
		return zero, err
	}

	invalidated := m.cache.Invalidate(m.module)
	m.l.Debugf(ctx, "module.%s.%s: invalidated %d cached queries", m.module, m.action, invalidated)

	n.Level = notify.LevelSuccess
	n.Message = m.success
	m.notify.Success(ctx, n)
	return out, nil
}

// IsPending reports whether a Mutate call is in flight.
func (m *Mutation[I, O]) IsPending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending
}

// Err returns the error of the last finished call.
func (m *Mutation[I, O]) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Data returns the result of the last successful call.
func (m *Mutation[I, O]) Data() O {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data
}

// Reset clears the exposed state.
func (m *Mutation[I, O]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero O
	m.err = nil
	m.data = zero
}

func createMutation[E any](s shared, m interface {
	Create(ctx context.Context, data any) (E, error)
}) *Mutation[any, E] {
	return newMutation(s, ActionCreate, "Record created successfully", m.Create)
}

func updateMutation[E any](s shared, m interface {
	Update(ctx context.Context, id string, data any) (E, error)
}) *Mutation[UpdateInput, E] {
	return newMutation(s, ActionUpdate, "Record updated successfully", func(ctx context.Context, in UpdateInput) (E, error) {
		return m.Update(ctx, in.ID, in.Data)
	})
}

func deleteMutation(s shared, m interface {
	Remove(ctx context.Context, id string) error
}) *Mutation[string, struct{}] {
	return newMutation(s, ActionDelete, "Record deleted successfully", func(ctx context.Context, id string) (struct{}, error) {
		return struct{}{}, m.Remove(ctx, id)
	})
}
