// Package state owns the server's single mutable dataset slot.
package state

import (
	"sync"

	"github.com/datawalker/backend/internal/dataset"
	"github.com/datawalker/backend/internal/models"
)

// Slot holds the current dataset, its metadata snapshot, and the
// rendered artifact behind one lock. The three fields only ever change
// together: callers parse and render outside the lock, then swap.
// Readers always observe a matched triple.
type Slot struct {
	mu   sync.RWMutex
	ds   *dataset.Dataset
	info *models.FileInfo
	html string
}

// NewSlot returns an empty slot.
func NewSlot() *Slot {
	return &Slot{}
}

// Replace atomically swaps in a new dataset, metadata, and artifact.
func (s *Slot) Replace(ds *dataset.Dataset, info *models.FileInfo, html string) {
	s.mu.Lock()
	s.ds, s.info, s.html = ds, info, html
	s.mu.Unlock()
}

// Snapshot returns the current triple. The FileInfo always describes
// the dataset and artifact it is returned with.
func (s *Slot) Snapshot() (*dataset.Dataset, *models.FileInfo, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds, s.info, s.html
}

// Info returns just the current metadata snapshot.
func (s *Slot) Info() *models.FileInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}
