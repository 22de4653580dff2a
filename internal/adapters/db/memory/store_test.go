package memory

import (
	"testing"

	"github.com/Giang-Dang/parallel-corpus-tool/internal/domain"
)

func TestAppendRowsAndLookup(t *testing.T) {
	s := NewStore()
	s.AppendRows([]*domain.CorpusRow{
		{Language: "en", EntryID: "10000101", Word: "cat"},
		{Language: "en", EntryID: "10000102", Word: "sat"},
	})
	s.AppendRows([]*domain.CorpusRow{
		{Language: "vn", EntryID: "10000101", Word: "mèo"},
	})

	if len(s.Rows()) != 3 {
		t.Fatalf("len(Rows) = %d, want 3", len(s.Rows()))
	}

	// the ID map keeps the last writer for a shared entry ID
	r, ok := s.RowByEntryID("10000102")
	if !ok || r.Word != "sat" {
		t.Errorf("RowByEntryID = %+v, %v", r, ok)
	}

	counts := s.CountByLanguage()
	if counts["en"] != 2 || counts["vn"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestRowsSnapshotStableAcrossAppend(t *testing.T) {
	s := NewStore()
	s.AppendRows([]*domain.CorpusRow{{Language: "en", EntryID: "10000101"}})

	snap := s.Rows()
	s.AppendRows([]*domain.CorpusRow{{Language: "en", EntryID: "10000102"}})
	if len(snap) != 1 {
		t.Errorf("earlier snapshot grew: %d", len(snap))
	}
	if len(s.Rows()) != 2 {
		t.Errorf("len(Rows) = %d, want 2", len(s.Rows()))
	}
}

func TestLanguageIDsReplacedWholesale(t *testing.T) {
	s := NewStore()
	s.SetLanguageIDs("en", map[string]struct{}{"a": {}, "b": {}})

	snap := s.LanguageIDs()
	s.SetLanguageIDs("vn", map[string]struct{}{"c": {}})
	if _, ok := snap["vn"]; ok {
		t.Error("earlier index snapshot saw a later write")
	}
	if len(s.LanguageIDs()) != 2 {
		t.Errorf("index languages = %d, want 2", len(s.LanguageIDs()))
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.AppendRows([]*domain.CorpusRow{{Language: "en", EntryID: "10000101"}})
	s.SetLanguageIDs("en", map[string]struct{}{"10000101": {}})
	s.AppendFile(domain.FileRecord{Name: "corpus_en.txt"})

	s.Clear()
	if len(s.Rows()) != 0 || len(s.Files()) != 0 || len(s.LanguageIDs()) != 0 {
		t.Error("Clear left state behind")
	}
	if _, ok := s.RowByEntryID("10000101"); ok {
		t.Error("Clear left the ID map populated")
	}
}
