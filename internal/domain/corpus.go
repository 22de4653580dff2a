package domain

import "time"

// Column names of the 10-column corpus line format, in file order.
const (
	ColumnEntryID  = "entryId"
	ColumnWord     = "word"
	ColumnLemma    = "lemma"
	ColumnLinks    = "links"
	ColumnMorph    = "morph"
	ColumnPOS      = "pos"
	ColumnPhrase   = "phrase"
	ColumnGrm      = "grm"
	ColumnNER      = "ner"
	ColumnSemantic = "semantic"
)

// TotalColumns is the expected number of tab-separated columns per line.
const TotalColumns = 10

// CorpusRow is one annotated token. Rows are created in bulk during
// ingestion and never mutated in place; edits live in the change overlay
// until exported.
type CorpusRow struct {
	Language      string    `json:"language"`
	EntryID       string    `json:"entryId"`
	SentenceIndex int       `json:"sentenceIndex"`
	WordIndex     int       `json:"wordIndex"`
	Word          string    `json:"word"`
	Lemma         string    `json:"lemma"`
	Links         []int     `json:"links"`
	Morph         string    `json:"morph"`
	POS           string    `json:"pos"`
	Phrase        string    `json:"phrase"`
	Grm           string    `json:"grm"`
	NER           string    `json:"ner"`
	Semantic      string    `json:"semantic"`
	InsertedAt    time.Time `json:"inserted_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FileRecord is metadata for one successfully ingested source file.
type FileRecord struct {
	Name       string    `json:"name"`
	BaseName   string    `json:"base_name"`
	Language   string    `json:"language"`
	InsertedAt time.Time `json:"inserted_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LanguageFile is one selected file parsed by the <base>_<lang>.<ext>
// filename convention.
type LanguageFile struct {
	Name     string `json:"name"`
	BaseName string `json:"base_name"`
	Language string `json:"language"`
	Content  []byte `json:"-"`
}

// FileGroup is a transient grouping of 1-2 language files sharing a base
// name, used only during the ingestion confirmation flow.
type FileGroup struct {
	BaseName string         `json:"base_name"`
	Files    []LanguageFile `json:"files"`
}

// ColumnValue returns the string representation of a row column as used by
// filtering and cell rendering. Links serialize as a sorted comma list.
func (r *CorpusRow) ColumnValue(column string) string {
	switch column {
	case ColumnEntryID:
		return r.EntryID
	case ColumnWord:
		return r.Word
	case ColumnLemma:
		return r.Lemma
	case ColumnLinks:
		return FormatLinks(r.Links)
	case ColumnMorph:
		return r.Morph
	case ColumnPOS:
		return r.POS
	case ColumnPhrase:
		return r.Phrase
	case ColumnGrm:
		return r.Grm
	case ColumnNER:
		return r.NER
	case ColumnSemantic:
		return r.Semantic
	case "language":
		return r.Language
	}
	return ""
}
