// Package editor owns pending-edit state: the sparse change overlay layered
// over the base dataset, and the single actively-editing cell.
package editor

import (
	"sync"
	"time"

	"github.com/Giang-Dang/parallel-corpus-tool/internal/domain"
)

// Service is the change overlay store. All operations recompute the
// pending-change count synchronously with the mutation, so readers never
// see a stale count.
type Service struct {
	mu      sync.RWMutex
	changes map[domain.ChangeKey]domain.CellChange

	editMode   bool
	activeCell *domain.ChangeKey

	now func() time.Time
}

func New() *Service {
	return &Service{
		changes: map[domain.ChangeKey]domain.CellChange{},
		now:     time.Now,
	}
}

// SetCell records an edit. When newValue equals originalValue (set
// equality for the links column) any existing entry for that key is
// removed instead: the overlay never stores no-op changes.
func (s *Service) SetCell(rowID, column, originalValue, newValue string) {
	key := domain.ChangeKey{RowID: rowID, Column: column}
	s.mu.Lock()
	defer s.mu.Unlock()
	if domain.ValuesEqual(column, originalValue, newValue) {
		delete(s.changes, key)
		return
	}
	s.changes[key] = domain.CellChange{
		RowID:         rowID,
		Column:        column,
		OriginalValue: originalValue,
		NewValue:      newValue,
		Timestamp:     s.now(),
	}
}

// RevertCell removes exactly one overlay entry; no-op when absent.
func (s *Service) RevertCell(rowID, column string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.changes, domain.ChangeKey{RowID: rowID, Column: column})
}

// ClearAll empties the overlay and clears the active-edit pointer.
// Validation derived from an empty overlay is the empty list, so any
// cached issue flag downstream resets with it.
func (s *Service) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.changes = map[domain.ChangeKey]domain.CellChange{}
	s.activeCell = nil
}

// ResolveDisplayValue returns the overlay's newValue when an entry exists
// for the exact (rowID, column) key, else the given original value.
func (s *Service) ResolveDisplayValue(rowID, column, originalValue string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.changes[domain.ChangeKey{RowID: rowID, Column: column}]; ok {
		return c.NewValue
	}
	return originalValue
}

// Change returns the overlay entry for a key, if any.
func (s *Service) Change(rowID, column string) (domain.CellChange, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.changes[domain.ChangeKey{RowID: rowID, Column: column}]
	return c, ok
}

// Changes returns a snapshot of all pending changes.
func (s *Service) Changes() []domain.CellChange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CellChange, 0, len(s.changes))
	for _, c := range s.changes {
		out = append(out, c)
	}
	return out
}

// Count returns the number of pending changes.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.changes)
}

// HasChanges reports whether any change is pending.
func (s *Service) HasChanges() bool { return s.Count() > 0 }

// SetEditMode toggles edit mode. Disabling it clears the active cell.
func (s *Service) SetEditMode(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editMode = enabled
	if !enabled {
		s.activeCell = nil
	}
}

func (s *Service) EditMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editMode
}

// SetActiveCell marks one cell as actively editing, implicitly
// deactivating any previous one. Only one cell edits at a time.
func (s *Service) SetActiveCell(rowID, column string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeCell = &domain.ChangeKey{RowID: rowID, Column: column}
}

// ClearActiveCell deactivates the editing cell.
func (s *Service) ClearActiveCell() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeCell = nil
}

// ActiveCell returns the actively-editing cell key, or false when none.
func (s *Service) ActiveCell() (domain.ChangeKey, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeCell == nil {
		return domain.ChangeKey{}, false
	}
	return *s.activeCell, true
}
