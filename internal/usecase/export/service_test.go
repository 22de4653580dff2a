package export

import (
	"strings"
	"testing"
	"time"

	exportadapter "github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/exporter/corpustsv"
	exreg "github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/exporter/registry"

	"github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/db/memory"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/parser/corpustsv"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/domain"
)

func seedStore(t *testing.T, language string, lines ...string) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	p := corpustsv.New()
	res, err := p.Parse(language, []byte(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("seed parse: %v", err)
	}
	store.AppendRows(res.Rows)
	store.AppendFile(domain.FileRecord{
		Name: "corpus_" + language + ".txt", BaseName: "corpus", Language: language,
	})
	return store
}

func newService(store *memory.Store, at time.Time) *Service {
	reg := exreg.New()
	reg.Register(exportadapter.New())
	return New(Deps{Dataset: store, Reg: reg, Now: func() time.Time { return at }})
}

func TestFilename(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	got := Filename("corpus", "en", at)
	if got != "corpus_2026-03-14T09-26-53_en.txt" {
		t.Errorf("Filename = %q", got)
	}
}

func TestApplyChanges(t *testing.T) {
	rows := []*domain.CorpusRow{
		{Language: "en", EntryID: "10000101", Word: "cat", Links: []int{1}},
		{Language: "en", EntryID: "10000102", Word: "sat"},
	}
	changes := []domain.CellChange{
		{RowID: "10000101", Column: domain.ColumnWord, OriginalValue: "cat", NewValue: "cats"},
		{RowID: "10000101", Column: domain.ColumnLinks, OriginalValue: "1", NewValue: "3,2"},
	}

	out := ApplyChanges(rows, changes)
	if out[0].Word != "cats" {
		t.Errorf("Word = %q", out[0].Word)
	}
	if got := domain.FormatLinks(out[0].Links); got != "2,3" {
		t.Errorf("Links = %q", got)
	}
	if out[1].Word != "sat" {
		t.Errorf("untouched row changed: %q", out[1].Word)
	}
	// source rows stay untouched
	if rows[0].Word != "cat" {
		t.Error("ApplyChanges mutated its input")
	}
}

func TestExportLanguage_roundTrip(t *testing.T) {
	line1 := strings.Join([]string{"10000101", "the", "the", "", "m", "DT", "NP", "g", "O", "s"}, "\t")
	line2 := strings.Join([]string{"10000102", "cat", "cat", "1", "m", "NN", "NP", "g", "O", "s"}, "\t")
	store := seedStore(t, "en", line1, line2)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc := newService(store, at)

	changes := []domain.CellChange{
		{RowID: "10000102", Column: domain.ColumnWord, NewValue: "dog"},
	}
	res, err := svc.ExportLanguage("en", changes)
	if err != nil {
		t.Fatalf("ExportLanguage: %v", err)
	}
	if res.Filename != "corpus_2026-01-02T03-04-05_en.txt" {
		t.Errorf("Filename = %q", res.Filename)
	}

	lines := strings.Split(string(res.Content), "\n")
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d", len(lines))
	}
	if lines[0] != line1 {
		t.Errorf("unedited line changed:\n got %q\nwant %q", lines[0], line1)
	}
	cols := strings.Split(lines[1], "\t")
	if cols[1] != "dog" {
		t.Errorf("edited word = %q, want dog", cols[1])
	}

	// the exported content re-parses to the post-edit state
	reparsed, err := corpustsv.New().Parse("en", res.Content)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if len(reparsed.Rows) != 2 || reparsed.Rows[1].Word != "dog" {
		t.Errorf("reparsed rows = %d", len(reparsed.Rows))
	}
}

func TestExportAll_oneFilePerLanguage(t *testing.T) {
	store := memory.NewStore()
	store.AppendRows([]*domain.CorpusRow{
		{Language: "en", EntryID: "10000101", Word: "cat"},
		{Language: "vn", EntryID: "10000101", Word: "mèo"},
	})
	store.AppendFile(domain.FileRecord{Name: "corpus_en.txt", BaseName: "corpus", Language: "en"})
	store.AppendFile(domain.FileRecord{Name: "corpus_vn.txt", BaseName: "corpus", Language: "vn"})

	svc := newService(store, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	results, err := svc.ExportAll(nil)
	if err != nil {
		t.Fatalf("ExportAll: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Language != "en" || results[1].Language != "vn" {
		t.Errorf("languages = %s, %s", results[0].Language, results[1].Language)
	}
	if !strings.Contains(string(results[0].Content), "cat") || strings.Contains(string(results[0].Content), "mèo") {
		t.Error("en export must contain only en rows")
	}
}

func TestExportAll_noFiles(t *testing.T) {
	svc := newService(memory.NewStore(), time.Now())
	if _, err := svc.ExportAll(nil); err == nil {
		t.Error("expected error with nothing loaded")
	}
}
