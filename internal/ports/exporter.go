package ports

import (
	"github.com/Giang-Dang/parallel-corpus-tool/internal/domain"
)

// Exporter reserializes rows of one language back to file content.
type Exporter interface {
	Format() string
	Export(language string, rows []*domain.CorpusRow) ([]byte, error)
}
