// Package workspace keeps the module state of each dashboard session.
//
// A workspace is what one open dashboard sees: its own query cache, its own
// notification inbox and the module instances created on first use. Idle
// workspaces expire and take their cache with them.
package workspace

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"erp-admin/pkg/log"
	"erp-admin/pkg/metrics"
	"erp-admin/pkg/notify"
	"erp-admin/pkg/querycache"
)

type Config struct {
	TTL         time.Duration
	MaxSessions int
	InboxSize   int
	Cache       querycache.Config
}

const (
	DefaultTTL         = 30 * time.Minute
	DefaultMaxSessions = 1000
)

// Workspace is the state of one session.
type Workspace struct {
	ID       string
	Cache    *querycache.Cache
	Inbox    *notify.Inbox
	Notifier notify.Notifier

	mu      sync.Mutex
	modules map[string]any
}

// Store maps session ids to workspaces.
type Store struct {
	mu     sync.Mutex
	lru    *expirable.LRU[string, *Workspace]
	cfg    Config
	shared notify.Notifier
	l      log.Logger
	count  atomic.Int64
}

// NewStore creates a store. shared receives every notification of every
// workspace in addition to the workspace inbox; it may be nil.
func NewStore(cfg Config, shared notify.Notifier, l log.Logger) *Store {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	s := &Store{cfg: cfg, shared: shared, l: l}
	s.lru = expirable.NewLRU[string, *Workspace](cfg.MaxSessions, s.evicted, cfg.TTL)
	return s
}

func (s *Store) evicted(id string, ws *Workspace) {
	ws.Cache.Purge()
	metrics.SetWorkspaces(int(s.count.Add(-1)))
}

// Get returns the workspace of sessionID, creating it on first use. Each call
// refreshes the idle timer.
func (s *Store) Get(sessionID string) *Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ws, ok := s.lru.Get(sessionID); ok {
		s.lru.Add(sessionID, ws)
		return ws
	}

	inbox := notify.NewInbox(s.cfg.InboxSize)
	ws := &Workspace{
		ID:       sessionID,
		Cache:    querycache.New(s.cfg.Cache),
		Inbox:    inbox,
		Notifier: notify.Multi(inbox, s.shared),
		modules:  map[string]any{},
	}
	s.lru.Add(sessionID, ws)
	metrics.SetWorkspaces(int(s.count.Add(1)))
	if s.l != nil {
		s.l.Debugf(context.Background(), "workspace: opened %s", sessionID)
	}
	return ws
}

// Peek returns an existing workspace without creating or refreshing it.
func (s *Store) Peek(sessionID string) (*Workspace, bool) {
	return s.lru.Peek(sessionID)
}

// Drop discards the workspace of sessionID.
func (s *Store) Drop(sessionID string) {
	s.lru.Remove(sessionID)
}

// Len returns the number of open workspaces.
func (s *Store) Len() int {
	return s.lru.Len()
}

// Module returns the module registered under key, building it on first use.
func Module[M any](ws *Workspace, key string, build func(ws *Workspace) M) M {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if m, ok := ws.modules[key].(M); ok {
		return m
	}
	m := build(ws)
	ws.modules[key] = m
	return m
}
