// Package store holds per-session query state for the lifetime of the
// process. Each browser session gets its own state object, so
// concurrent users never overwrite each other's results.
package store

import (
	"sync"

	"quotedash/internal/domain/models"
)

// result pairs the quotes and stats committed by one successful
// fetch. It is replaced as a whole: readers can never observe quotes
// from one fetch next to stats from another.
type result struct {
	quotes *models.QuoteSeries
	stats  models.RangeStats
}

// Session is the mutable state of one user session. It starts empty
// (no successful fetch yet), becomes populated on the first
// successful fetch, and stays populated from then on; a failed fetch
// never transitions it.
type Session struct {
	mu      sync.RWMutex
	lastReq models.QuoteRequest
	res     *result
}

// RecordQuery stores the most recent request parameters. It is called
// before the network attempt, independent of its outcome, so the UI
// can echo the attempted query even when the fetch fails.
func (s *Session) RecordQuery(req models.QuoteRequest) {
	s.mu.Lock()
	s.lastReq = req
	s.mu.Unlock()
}

// ApplyResult commits the outcome of a successful fetch, replacing
// quotes and stats together as one assignment.
func (s *Session) ApplyResult(quotes *models.QuoteSeries, stats models.RangeStats) {
	s.mu.Lock()
	s.res = &result{quotes: quotes, stats: stats}
	s.mu.Unlock()
}

// Snapshot returns a consistent view of the session. Before the first
// successful fetch the quotes are an empty series and the stats are
// zero-valued.
func (s *Session) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := models.Snapshot{Request: s.lastReq}
	if s.res != nil {
		snap.Quotes = s.res.quotes
		snap.Stats = s.res.stats
	} else {
		snap.Quotes = models.NewQuoteSeries()
	}
	return snap
}

// Populated reports whether at least one fetch has committed.
func (s *Session) Populated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.res != nil
}

// Store maps session IDs to their Session. Sessions are created on
// first use and kept for the process lifetime; there is no eviction.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// New returns an empty Store.
func New() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Session returns the state for id, creating it when absent.
func (st *Store) Session(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		s = &Session{}
		st.sessions[id] = s
	}
	return s
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
