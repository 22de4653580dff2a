// Package memory holds the authoritative in-memory corpus state: dataset
// rows, file records and the per-language entry-ID index. All mutations
// replace whole values (copy-on-write) so readers never observe partial
// state while an update is pending.
package memory

import (
	"sync"

	"github.com/Giang-Dang/parallel-corpus-tool/internal/domain"
)

type Store struct {
	mu sync.RWMutex

	rows    []*domain.CorpusRow
	byID    map[string]*domain.CorpusRow
	files   []domain.FileRecord
	idIndex map[string]map[string]struct{}
}

func NewStore() *Store {
	return &Store{
		byID:    map[string]*domain.CorpusRow{},
		idIndex: map[string]map[string]struct{}{},
	}
}

// AppendRows commits rows in input order. The slice header is replaced
// wholesale rather than grown in place.
func (s *Store) AppendRows(rows []*domain.CorpusRow) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]*domain.CorpusRow, 0, len(s.rows)+len(rows))
	next = append(next, s.rows...)
	next = append(next, rows...)
	s.rows = next

	byID := make(map[string]*domain.CorpusRow, len(s.byID)+len(rows))
	for k, v := range s.byID {
		byID[k] = v
	}
	for _, r := range rows {
		byID[r.EntryID] = r
	}
	s.byID = byID
}

func (s *Store) Rows() []*domain.CorpusRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rows
}

func (s *Store) RowByEntryID(entryID string) (*domain.CorpusRow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[entryID]
	return r, ok
}

// SetLanguageIDs replaces the whole ID set for one language partition.
func (s *Store) SetLanguageIDs(language string, ids map[string]struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make(map[string]map[string]struct{}, len(s.idIndex)+1)
	for k, v := range s.idIndex {
		next[k] = v
	}
	next[language] = ids
	s.idIndex = next
}

func (s *Store) LanguageIDs() map[string]map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idIndex
}

func (s *Store) AppendFile(f domain.FileRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.FileRecord, 0, len(s.files)+1)
	next = append(next, s.files...)
	next = append(next, f)
	s.files = next
}

func (s *Store) Files() []domain.FileRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.files
}

func (s *Store) CountByLanguage() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int)
	for _, r := range s.rows {
		counts[r.Language]++
	}
	return counts
}

// Clear resets the store for a new load operation.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = nil
	s.byID = map[string]*domain.CorpusRow{}
	s.files = nil
	s.idIndex = map[string]map[string]struct{}{}
}
