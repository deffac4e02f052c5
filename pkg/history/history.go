// Package history keeps the most recent execution outcome per statement
// position, plus a single cumulative time per document. The data is advisory
// display state, in-memory only and lost on restart by design.
package history

import (
	"log"
	"sort"
	"sync"
	"time"
)

// Entry is the cached outcome of the most recent execution of a statement position.
type Entry struct {
	Elapsed    time.Duration // wall-clock time of the execution
	Rows       int           // number of rows returned
	OK         bool          // false if the execution failed
	ObservedAt time.Time     // when the outcome was recorded
}

type key struct{ start, end int }

// Store is a bounded per-document cache of execution outcomes. Safe for
// concurrent use; concurrent writers to the same key race and the last write
// wins, acceptable for display state.
type Store struct {
	maxEntries int // per-document cap on distinct statement positions
	evictBatch int // how many oldest entries to drop when the cap is exceeded

	mu     sync.RWMutex
	docs   map[string]map[key]Entry
	totals map[string]time.Duration
	nowFn  func() time.Time
}

// NewStore makes a store with the default bounds: 100 statement positions per
// document, 20 oldest evicted on overflow.
func NewStore() *Store {
	return &Store{
		maxEntries: 100,
		evictBatch: 20,
		docs:       map[string]map[key]Entry{},
		totals:     map[string]time.Duration{},
		nowFn:      time.Now,
	}
}

// Record stores the outcome for a statement position, replacing any prior entry
// at the same key. ObservedAt is filled in if the caller left it zero.
func (s *Store) Record(docID string, startLine, endLine int, e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ObservedAt.IsZero() {
		e.ObservedAt = s.nowFn()
	}

	doc, ok := s.docs[docID]
	if !ok {
		doc = map[key]Entry{}
		s.docs[docID] = doc
	}
	doc[key{startLine, endLine}] = e

	if len(doc) > s.maxEntries {
		s.evict(docID, doc)
	}
}

// evict drops the oldest entries by ObservedAt. Caller holds the lock.
func (s *Store) evict(docID string, doc map[key]Entry) {
	type aged struct {
		k  key
		at time.Time
	}
	all := make([]aged, 0, len(doc))
	for k, e := range doc {
		all = append(all, aged{k, e.ObservedAt})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].at.Before(all[j].at) })

	n := s.evictBatch
	if n > len(all) {
		n = len(all)
	}
	for _, a := range all[:n] {
		delete(doc, a.k)
	}
	log.Printf("[DEBUG] evicted %d history entries for %s, %d left", n, docID, len(doc))
}

// RecordFileTotal stores the cumulative elapsed time of the last run over the document.
func (s *Store) RecordFileTotal(docID string, total time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totals[docID] = total
}

// Lookup returns the recorded outcome for a statement position.
func (s *Store) Lookup(docID string, startLine, endLine int) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.docs[docID][key{startLine, endLine}]
	return e, ok
}

// LookupFileTotal returns the cumulative time of the last run over the document.
func (s *Store) LookupFileTotal(docID string) (time.Duration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.totals[docID]
	return d, ok
}

// ClearDocument removes all statement and file-level entries for a document,
// called when the document is closed.
func (s *Store) ClearDocument(docID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, docID)
	delete(s.totals, docID)
}

// Len returns the number of statement positions kept for a document.
func (s *Store) Len(docID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs[docID])
}
