// Package view is the derived table view: a pure filter → sort → paginate
// chain from the dataset and a TableState to a bounded page of rows.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Giang-Dang/parallel-corpus-tool/internal/domain"
)

// Page is one rendered slice of the filtered, sorted dataset.
type Page struct {
	Rows          []*domain.CorpusRow `json:"rows"`
	FilteredCount int                 `json:"filtered_count"`
	TotalPages    int                 `json:"total_pages"`
	CurrentPage   int                 `json:"current_page"`
}

// numeric-aware collation so "2" orders before "10".
var collator = collate.New(language.Und, collate.Numeric)

// Process applies language selection, column filters, sorting and
// pagination in that order. It never mutates its inputs.
func Process(rows []*domain.CorpusRow, state domain.TableState) Page {
	filtered := Filter(rows, state.Filters, state.SelectedLanguage)
	sorted := Sort(filtered, state.SortColumn, state.SortDirection)
	pageRows, totalPages := Paginate(sorted, state.CurrentPage, state.ItemsPerPage)
	return Page{
		Rows:          pageRows,
		FilteredCount: len(filtered),
		TotalPages:    totalPages,
		CurrentPage:   state.CurrentPage,
	}
}

// MatchesFilter reports whether one column value satisfies a filter.
// Matching is case-insensitive unless the filter sets MatchCase.
func MatchesFilter(value string, f domain.ColumnFilter) bool {
	term := f.Value
	target := value
	if !f.MatchCase {
		term = strings.ToLower(term)
		target = strings.ToLower(target)
	}
	switch f.Type {
	case domain.FilterContain:
		return strings.Contains(target, term)
	case domain.FilterExact:
		return target == term
	case domain.FilterStartsWith:
		return strings.HasPrefix(target, term)
	case domain.FilterEndsWith:
		return strings.HasSuffix(target, term)
	}
	return true
}

// Filter keeps rows matching the selected language (when set) and every
// active column filter (logical AND). Filters with an empty value are
// inactive.
func Filter(rows []*domain.CorpusRow, filters map[string]domain.ColumnFilter, selectedLanguage string) []*domain.CorpusRow {
	out := make([]*domain.CorpusRow, 0, len(rows))
	for _, r := range rows {
		if selectedLanguage != "" && r.Language != selectedLanguage {
			continue
		}
		keep := true
		for column, f := range filters {
			if f.Value == "" {
				continue
			}
			if !MatchesFilter(r.ColumnValue(column), f) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out
}

// Sort orders rows by the string value of sortColumn with numeric-aware
// collation. An empty sort column preserves the original order. The sort
// is stable.
func Sort(rows []*domain.CorpusRow, sortColumn string, direction domain.SortDirection) []*domain.CorpusRow {
	if sortColumn == "" {
		return rows
	}
	sorted := make([]*domain.CorpusRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := collator.CompareString(sorted[i].ColumnValue(sortColumn), sorted[j].ColumnValue(sortColumn))
		if direction == domain.SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted
}

// Paginate returns the 1-based page slice and the total page count,
// clipped to the available rows.
func Paginate(rows []*domain.CorpusRow, currentPage, itemsPerPage int) ([]*domain.CorpusRow, int) {
	if itemsPerPage <= 0 {
		return nil, 0
	}
	totalPages := (len(rows) + itemsPerPage - 1) / itemsPerPage
	if currentPage < 1 {
		currentPage = 1
	}
	start := (currentPage - 1) * itemsPerPage
	if start >= len(rows) {
		return []*domain.CorpusRow{}, totalPages
	}
	end := start + itemsPerPage
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], totalPages
}
