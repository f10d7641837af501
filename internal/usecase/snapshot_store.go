package usecase

import (
	"sync"

	"github.com/vitos/cointrackr/internal/domain"
)

// SnapshotStore holds the most recent market snapshot together with the
// fetch-error state. The refresh service is the only writer; readers
// always see either the previous snapshot or the new one, never a partial
// update. A failed fetch keeps the stale snapshot and only flips the
// error; the next successful fetch clears it.
type SnapshotStore struct {
	mu       sync.RWMutex
	snapshot *domain.Snapshot
	fetchErr error
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Replace swaps in a new snapshot wholesale and clears any fetch error.
func (s *SnapshotStore) Replace(snap *domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snap
	s.fetchErr = nil
}

// SetError records a failed fetch, leaving the current snapshot untouched.
func (s *SnapshotStore) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchErr = err
}

// Current returns the latest snapshot (nil before the first successful
// fetch) and the error from the most recent fetch attempt, if it failed.
func (s *SnapshotStore) Current() (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.fetchErr
}
