package domain

import (
	"reflect"
	"testing"
)

func TestParseLinks(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"", nil},
		{"  ", nil},
		{"3", []int{3}},
		{"3,1,2", []int{1, 2, 3}},
		{"1, 2 ,3", []int{1, 2, 3}},
		{"1,1,2", []int{1, 2}},
		{"1,x,2", []int{1, 2}},
		{"x", nil},
	}
	for _, tc := range tests {
		got := ParseLinks(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseLinks(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatLinks(t *testing.T) {
	if got := FormatLinks(nil); got != "" {
		t.Errorf("FormatLinks(nil) = %q", got)
	}
	if got := FormatLinks([]int{3, 1, 2}); got != "1,2,3" {
		t.Errorf("FormatLinks = %q, want 1,2,3", got)
	}
}

func TestValuesEqual(t *testing.T) {
	if !ValuesEqual(ColumnWord, "cat", "cat") {
		t.Error("identical words should be equal")
	}
	if ValuesEqual(ColumnWord, "cat", "Cat") {
		t.Error("word comparison is case-sensitive")
	}
	// Links compare as integer sets, not strings.
	if !ValuesEqual(ColumnLinks, "1,2,3", "3, 2, 1") {
		t.Error("reordered links should be equal")
	}
	if !ValuesEqual(ColumnLinks, "1,1,2", "2,1") {
		t.Error("duplicated links should be equal")
	}
	if ValuesEqual(ColumnLinks, "1,2", "1,2,3") {
		t.Error("different link sets should not be equal")
	}
}

func TestColumnValue(t *testing.T) {
	r := &CorpusRow{
		Language: "en",
		EntryID:  "10000101",
		Word:     "cats",
		Lemma:    "cat",
		Links:    []int{3, 1},
		Morph:    "m",
		POS:      "NNS",
		Phrase:   "NP",
		Grm:      "g",
		NER:      "O",
		Semantic: "animal",
	}
	tests := map[string]string{
		ColumnEntryID:  "10000101",
		ColumnWord:     "cats",
		ColumnLemma:    "cat",
		ColumnLinks:    "1,3",
		ColumnMorph:    "m",
		ColumnPOS:      "NNS",
		ColumnPhrase:   "NP",
		ColumnGrm:      "g",
		ColumnNER:      "O",
		ColumnSemantic: "animal",
	}
	for column, want := range tests {
		if got := r.ColumnValue(column); got != want {
			t.Errorf("ColumnValue(%q) = %q, want %q", column, got, want)
		}
	}
}

func TestTableStateResetsPage(t *testing.T) {
	s := NewTableState(20)
	s.SetPage(3)
	if s.CurrentPage != 3 {
		t.Fatalf("CurrentPage = %d, want 3", s.CurrentPage)
	}

	s.SetFilter(ColumnWord, ColumnFilter{Value: "cat", Type: FilterContain})
	if s.CurrentPage != 1 {
		t.Error("SetFilter should reset page to 1")
	}

	s.SetPage(3)
	s.SetLanguage("en")
	if s.CurrentPage != 1 {
		t.Error("SetLanguage should reset page to 1")
	}

	s.SetPage(3)
	s.SetSort(ColumnWord)
	if s.CurrentPage != 1 {
		t.Error("SetSort should reset page to 1")
	}

	s.SetPage(3)
	s.ClearFilter(ColumnWord)
	if s.CurrentPage != 1 {
		t.Error("ClearFilter should reset page to 1")
	}
}

func TestTableStateSortToggle(t *testing.T) {
	s := NewTableState(20)
	s.SetSort(ColumnWord)
	if s.SortColumn != ColumnWord || s.SortDirection != SortAsc {
		t.Fatalf("first sort = (%s, %s), want (word, asc)", s.SortColumn, s.SortDirection)
	}
	s.SetSort(ColumnWord)
	if s.SortDirection != SortDesc {
		t.Error("same-column sort should toggle to desc")
	}
	s.SetSort(ColumnLemma)
	if s.SortColumn != ColumnLemma || s.SortDirection != SortAsc {
		t.Error("new-column sort should reset to asc")
	}
}
