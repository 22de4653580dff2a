// Package corpustsv parses the 10-column tab-separated corpus format:
// entryId, word, lemma, links, morph, pos, phrase, grm, ner, semantic.
package corpustsv

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/Giang-Dang/parallel-corpus-tool/internal/domain"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/ports"
)

// minLineLength is the minimal byte length a line must have to be
// considered at all; anything shorter cannot hold 10 columns.
const minLineLength = 10

// wordIndexWidth is the fixed width of the word-index suffix inside an
// entry ID. The sentence index occupies everything between the 2-byte
// prefix and this suffix. Positional convention of the source format, not
// semantic parsing.
const wordIndexWidth = 2

const entryIDPrefixWidth = 2

type Parser struct{}

func New() *Parser { return &Parser{} }

func (p *Parser) Format() string { return "corpustsv" }

// Parse reads the whole file content and returns rows plus the per-file
// entry-ID bookkeeping. Malformed lines are skipped; duplicate IDs are
// collected so the caller can refuse the commit atomically.
func (p *Parser) Parse(language string, data []byte) (ports.ParseResult, error) {
	data = stripBOM(data)
	lines := strings.Split(string(data), "\n")

	res := ports.ParseResult{
		IDSet:      make(map[string]struct{}),
		TotalLines: len(lines),
	}
	dupSeen := make(map[string]struct{})

	for _, line := range lines {
		row, ok := p.ParseLine(language, line)
		if !ok {
			res.SkippedLines++
			continue
		}
		if _, seen := res.IDSet[row.EntryID]; seen {
			if _, already := dupSeen[row.EntryID]; !already {
				dupSeen[row.EntryID] = struct{}{}
				res.Duplicates = append(res.Duplicates, row.EntryID)
			}
		}
		res.IDSet[row.EntryID] = struct{}{}
		res.Rows = append(res.Rows, row)
	}
	return res, nil
}

// ParseLine parses one line. The bool result is false when the line is
// empty, too short, has fewer than 10 columns, or carries an entry ID whose
// positional slices do not parse as integers.
func (p *Parser) ParseLine(language, line string) (*domain.CorpusRow, bool) {
	line = strings.TrimRight(line, "\r")
	if len(line) < minLineLength {
		return nil, false
	}

	// Bounded split: a surplus column beyond the 10th is discarded, the
	// same truncation the source format's tools perform.
	columns := strings.SplitN(line, "\t", domain.TotalColumns+1)
	if len(columns) < domain.TotalColumns {
		return nil, false
	}
	columns = columns[:domain.TotalColumns]

	entryID := columns[0]
	sentenceIdx, wordIdx, ok := DecodeEntryID(entryID)
	if !ok {
		return nil, false
	}

	now := time.Now().UTC()
	return &domain.CorpusRow{
		Language:      language,
		EntryID:       entryID,
		SentenceIndex: sentenceIdx,
		WordIndex:     wordIdx,
		Word:          columns[1],
		Lemma:         columns[2],
		Links:         domain.ParseLinks(columns[3]),
		Morph:         columns[4],
		POS:           columns[5],
		Phrase:        columns[6],
		Grm:           columns[7],
		NER:           columns[8],
		Semantic:      columns[9],
		InsertedAt:    now,
		UpdatedAt:     now,
	}, true
}

// DecodeEntryID extracts (sentenceIndex, wordIndex) from an entry ID using
// the fixed slicing: the last 2 characters are the word index and the
// characters between the 2-byte prefix and that suffix are the sentence
// index. IDs too short for both slices are invalid.
func DecodeEntryID(entryID string) (sentenceIndex, wordIndex int, ok bool) {
	if len(entryID) <= entryIDPrefixWidth+wordIndexWidth {
		return 0, 0, false
	}
	sentencePart := entryID[entryIDPrefixWidth : len(entryID)-wordIndexWidth]
	wordPart := entryID[len(entryID)-wordIndexWidth:]

	sentenceIndex, err := strconv.Atoi(sentencePart)
	if err != nil {
		return 0, 0, false
	}
	wordIndex, err = strconv.Atoi(wordPart)
	if err != nil {
		return 0, 0, false
	}
	return sentenceIndex, wordIndex, true
}

func stripBOM(b []byte) []byte {
	bom := []byte{0xEF, 0xBB, 0xBF}
	if len(b) >= 3 && bytes.Equal(b[:3], bom) {
		return b[3:]
	}
	return b
}
