package ports

import (
	"context"

	"github.com/Giang-Dang/parallel-corpus-tool/internal/domain"
)

// Dataset is the in-memory corpus state owned by the ingestion pipeline.
// Mutations replace whole values so concurrent reads never observe partial
// state.
type Dataset interface {
	AppendRows(rows []*domain.CorpusRow)
	Rows() []*domain.CorpusRow
	RowByEntryID(entryID string) (*domain.CorpusRow, bool)
	// SetLanguageIDs replaces the entry-ID set for one language partition.
	SetLanguageIDs(language string, ids map[string]struct{})
	LanguageIDs() map[string]map[string]struct{}
	AppendFile(f domain.FileRecord)
	Files() []domain.FileRecord
	CountByLanguage() map[string]int
	Clear()
}

// SnapshotStore optionally mirrors committed loads into durable storage.
type SnapshotStore interface {
	ReplaceLanguage(ctx context.Context, language string, rows []*domain.CorpusRow) error
	ListByLanguage(ctx context.Context, language string, offset, limit int) ([]*domain.CorpusRow, error)
	CountByLanguage(ctx context.Context, language string) (int, error)
	AddFile(ctx context.Context, f domain.FileRecord) error
	ListFiles(ctx context.Context) ([]domain.FileRecord, error)
	Clear(ctx context.Context) error
}
