// Package export applies the pending change overlay to the base dataset
// and regenerates per-language tab-delimited content with a timestamped
// filename.
package export

import (
	"errors"
	"fmt"
	"time"

	exreg "github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/exporter/registry"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/domain"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/ports"
)

type Deps struct {
	Dataset ports.Dataset
	Reg     *exreg.Registry
	// Now is injectable for deterministic filenames in tests.
	Now func() time.Time
}

type Service struct {
	d      Deps
	format string
}

func New(d Deps) *Service {
	if d.Now == nil {
		d.Now = time.Now
	}
	return &Service{d: d, format: "corpustsv"}
}

// Result is one generated export file.
type Result struct {
	Filename string `json:"filename"`
	Content  []byte `json:"content"`
	Language string `json:"language"`
}

// ApplyChanges returns a copy of rows with all matching overlay changes
// applied. Source rows are never mutated; a row's change set is matched by
// its entry ID at edit time.
func ApplyChanges(rows []*domain.CorpusRow, changes []domain.CellChange) []*domain.CorpusRow {
	byRow := make(map[string][]domain.CellChange)
	for _, c := range changes {
		byRow[c.RowID] = append(byRow[c.RowID], c)
	}
	out := make([]*domain.CorpusRow, len(rows))
	for i, r := range rows {
		cs, ok := byRow[r.EntryID]
		if !ok {
			out[i] = r
			continue
		}
		updated := *r
		for _, c := range cs {
			applyChange(&updated, c)
		}
		updated.UpdatedAt = time.Now().UTC()
		out[i] = &updated
	}
	return out
}

func applyChange(r *domain.CorpusRow, c domain.CellChange) {
	switch c.Column {
	case domain.ColumnEntryID:
		r.EntryID = c.NewValue
	case domain.ColumnWord:
		r.Word = c.NewValue
	case domain.ColumnLemma:
		r.Lemma = c.NewValue
	case domain.ColumnLinks:
		r.Links = domain.ParseLinks(c.NewValue)
	case domain.ColumnMorph:
		r.Morph = c.NewValue
	case domain.ColumnPOS:
		r.POS = c.NewValue
	case domain.ColumnPhrase:
		r.Phrase = c.NewValue
	case domain.ColumnGrm:
		r.Grm = c.NewValue
	case domain.ColumnNER:
		r.NER = c.NewValue
	case domain.ColumnSemantic:
		r.Semantic = c.NewValue
	}
}

// Filename builds "<base>_<timestamp>_<language>.txt" with the timestamp
// formatted as an ISO date-time with colons replaced by dashes.
func Filename(baseName, language string, at time.Time) string {
	ts := at.UTC().Format("2006-01-02T15-04-05")
	return fmt.Sprintf("%s_%s_%s.txt", baseName, ts, language)
}

// ExportLanguage regenerates one language partition with the given overlay
// applied.
func (s *Service) ExportLanguage(languageCode string, changes []domain.CellChange) (Result, error) {
	exp, ok := s.d.Reg.Get(s.format)
	if !ok {
		return Result{}, errors.New("no exporter for format: " + s.format)
	}
	rows := ApplyChanges(s.d.Dataset.Rows(), changes)
	content, err := exp.Export(languageCode, rows)
	if err != nil {
		return Result{}, err
	}
	base := s.baseNameFor(languageCode)
	return Result{
		Filename: Filename(base, languageCode, s.d.Now()),
		Content:  content,
		Language: languageCode,
	}, nil
}

// ExportAll regenerates every loaded language, one file per language.
func (s *Service) ExportAll(changes []domain.CellChange) ([]Result, error) {
	files := s.d.Dataset.Files()
	if len(files) == 0 {
		return nil, errors.New("no files loaded")
	}
	out := make([]Result, 0, len(files))
	for _, f := range files {
		res, err := s.ExportLanguage(f.Language, changes)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (s *Service) baseNameFor(languageCode string) string {
	for _, f := range s.d.Dataset.Files() {
		if f.Language == languageCode {
			return f.BaseName
		}
	}
	return "corpus"
}
