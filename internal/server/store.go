package server

import (
	"sync"

	"github.com/ironsheep/image-select-mcp/internal/selection"
)

// selectionStore keeps the current selection of each image, keyed by the
// image path. It is safe for concurrent use.
type selectionStore struct {
	mu    sync.RWMutex
	masks map[string]*selection.Mask
}

func newSelectionStore() *selectionStore {
	return &selectionStore{masks: make(map[string]*selection.Mask)}
}

// Get returns a copy of the stored selection for path.
func (s *selectionStore) Get(path string) (*selection.Mask, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.masks[path]
	if !ok {
		return nil, false
	}
	return m.Clone(), true
}

// Put replaces the stored selection for path.
func (s *selectionStore) Put(path string, m *selection.Mask) {
	s.mu.Lock()
	s.masks[path] = m.Clone()
	s.mu.Unlock()
}

// Delete drops the selection for path and reports whether one existed.
func (s *selectionStore) Delete(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.masks[path]
	delete(s.masks, path)
	return ok
}

// Combine merges m into the stored selection for path with op and returns a
// copy of the result. Without a stored selection, m is combined with an
// empty mask, so Add yields m and Subtract or Intersect yield nothing.
func (s *selectionStore) Combine(path string, m *selection.Mask, op selection.Operation) (*selection.Mask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.masks[path]
	if !ok || op == selection.Replace {
		cur = selection.NewMask(m.Width(), m.Height())
	} else {
		cur = cur.Clone()
	}
	if err := cur.Combine(m, op); err != nil {
		return nil, err
	}
	s.masks[path] = cur
	return cur.Clone(), nil
}

// Len returns the number of stored selections.
func (s *selectionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.masks)
}
