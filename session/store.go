// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/votaciones/flow"
)

// DefaultTTL is how long an idle session keeps its voting flow
const DefaultTTL = 30 * time.Minute

type entry struct {
	flow     *flow.Flow
	lastSeen time.Time
}

// Store keeps one voting flow per browser session in memory.
// Evicting a session closes its flow.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	newFlow func() *flow.Flow
	ttl     time.Duration
	salt    string
	now     func() time.Time
}

// NewStore creates a store. newFlow builds the flow for each new session;
// salt signs the session cookie.
func NewStore(newFlow func() *flow.Flow, ttl time.Duration, salt string) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		entries: make(map[string]*entry),
		newFlow: newFlow,
		ttl:     ttl,
		salt:    salt,
		now:     time.Now,
	}
}

// Get returns the flow for id and refreshes its idle timer
func (s *Store) Get(id string) (*flow.Flow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.lastSeen) > s.ttl {
		delete(s.entries, id)
		e.flow.Close()
		return nil, false
	}
	e.lastSeen = s.now()
	return e.flow, true
}

// Create starts a new session and returns its id and flow
func (s *Store) Create() (string, *flow.Flow) {
	id := uuid.NewString()
	f := s.newFlow()

	s.mu.Lock()
	s.entries[id] = &entry{flow: f, lastSeen: s.now()}
	s.mu.Unlock()

	slog.Debug("session created", "session_id", id)
	return id, f
}

// Len reports the number of live sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep evicts sessions idle longer than the TTL and closes their flows.
// It returns the number of evicted sessions.
func (s *Store) Sweep() int {
	s.mu.Lock()
	var expired []*flow.Flow
	now := s.now()
	for id, e := range s.entries {
		if now.Sub(e.lastSeen) > s.ttl {
			expired = append(expired, e.flow)
			delete(s.entries, id)
		}
	}
	s.mu.Unlock()

	for _, f := range expired {
		f.Close()
	}
	if len(expired) > 0 {
		slog.Info("sessions expired", "count", len(expired))
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done, then closes every flow
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-ctx.Done():
			s.closeAll()
			return
		}
	}
}

func (s *Store) closeAll() {
	s.mu.Lock()
	entries := s.entries
	s.entries = make(map[string]*entry)
	s.mu.Unlock()

	for _, e := range entries {
		e.flow.Close()
	}
}
