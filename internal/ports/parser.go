package ports

import (
	"github.com/Giang-Dang/parallel-corpus-tool/internal/domain"
)

// ParseResult is the outcome of parsing one whole corpus file.
type ParseResult struct {
	Rows []*domain.CorpusRow
	// IDSet holds every entry ID seen in the file, duplicates included.
	IDSet map[string]struct{}
	// Duplicates holds entry IDs that occurred more than once, in first-seen
	// order. A non-empty set makes the file ineligible for commit.
	Duplicates []string
	// SkippedLines counts empty, short or malformed lines dropped per line.
	SkippedLines int
	TotalLines   int
}

// Parser turns raw file content into corpus rows for one language.
type Parser interface {
	Format() string
	Parse(language string, data []byte) (ParseResult, error)
}

// LineParser parses a single line. Exposed separately so the ingestion
// pipeline can interleave parsing with cooperative yields between batches.
type LineParser interface {
	ParseLine(language, line string) (*domain.CorpusRow, bool)
}
