// Package corpustsv reserializes corpus rows back to the 10-column
// tab-separated format, one language per file.
package corpustsv

import (
	"bytes"

	"github.com/Giang-Dang/parallel-corpus-tool/internal/domain"
)

type Exporter struct{}

func New() *Exporter { return &Exporter{} }

func (e *Exporter) Format() string { return "corpustsv" }

// Export writes rows of the given language in input order. Links serialize
// as a sorted comma-joined integer list. Rows of other languages are
// filtered out so a bilingual dataset exports one file per language.
func (e *Exporter) Export(language string, rows []*domain.CorpusRow) ([]byte, error) {
	var buf bytes.Buffer
	first := true
	for _, r := range rows {
		if r.Language != language {
			continue
		}
		if !first {
			buf.WriteByte('\n')
		}
		first = false
		buf.WriteString(r.EntryID)
		buf.WriteByte('\t')
		buf.WriteString(r.Word)
		buf.WriteByte('\t')
		buf.WriteString(r.Lemma)
		buf.WriteByte('\t')
		buf.WriteString(domain.FormatLinks(r.Links))
		buf.WriteByte('\t')
		buf.WriteString(r.Morph)
		buf.WriteByte('\t')
		buf.WriteString(r.POS)
		buf.WriteByte('\t')
		buf.WriteString(r.Phrase)
		buf.WriteByte('\t')
		buf.WriteString(r.Grm)
		buf.WriteByte('\t')
		buf.WriteString(r.NER)
		buf.WriteByte('\t')
		buf.WriteString(r.Semantic)
	}
	return buf.Bytes(), nil
}
