package app

import (
	"sync"

	"github.com/Giang-Dang/parallel-corpus-tool/internal/domain"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/ports"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/usecase/editor"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/usecase/view"
)

// TableAPI owns the table presentation state (filters, sort, language,
// pagination) and serves derived pages with the change overlay applied.
type TableAPI struct {
	mu      sync.Mutex
	state   domain.TableState
	dataset ports.Dataset
	overlay *editor.Service
}

func NewTableAPI(dataset ports.Dataset, overlay *editor.Service, itemsPerPage int) *TableAPI {
	return &TableAPI{
		state:   domain.NewTableState(itemsPerPage),
		dataset: dataset,
		overlay: overlay,
	}
}

type RowDTO struct {
	EntryID       string `json:"entryId"`
	Language      string `json:"language"`
	SentenceIndex int    `json:"sentenceIndex"`
	WordIndex     int    `json:"wordIndex"`
	Word          string `json:"word"`
	Lemma         string `json:"lemma"`
	Links         string `json:"links"`
	Morph         string `json:"morph"`
	POS           string `json:"pos"`
	Phrase        string `json:"phrase"`
	Grm           string `json:"grm"`
	NER           string `json:"ner"`
	Semantic      string `json:"semantic"`
	// EditedColumns lists the columns of this row with a pending change.
	EditedColumns []string `json:"edited_columns"`
}

type PageDTO struct {
	Rows          []RowDTO `json:"rows"`
	FilteredCount int      `json:"filtered_count"`
	TotalPages    int      `json:"total_pages"`
	CurrentPage   int      `json:"current_page"`
	ItemsPerPage  int      `json:"items_per_page"`
}

func (a *TableAPI) rowDTO(r *domain.CorpusRow) RowDTO {
	cell := func(column string) string {
		return a.overlay.ResolveDisplayValue(r.EntryID, column, r.ColumnValue(column))
	}
	dto := RowDTO{
		EntryID:       cell(domain.ColumnEntryID),
		Language:      r.Language,
		SentenceIndex: r.SentenceIndex,
		WordIndex:     r.WordIndex,
		Word:          cell(domain.ColumnWord),
		Lemma:         cell(domain.ColumnLemma),
		Links:         cell(domain.ColumnLinks),
		Morph:         cell(domain.ColumnMorph),
		POS:           cell(domain.ColumnPOS),
		Phrase:        cell(domain.ColumnPhrase),
		Grm:           cell(domain.ColumnGrm),
		NER:           cell(domain.ColumnNER),
		Semantic:      cell(domain.ColumnSemantic),
	}
	for _, c := range a.overlay.Changes() {
		if c.RowID == r.EntryID {
			dto.EditedColumns = append(dto.EditedColumns, c.Column)
		}
	}
	return dto
}

// GetPage applies the current filters, sort, and pagination to the loaded
// rows and resolves each cell through the pending change overlay.
func (a *TableAPI) GetPage() PageDTO {
	a.mu.Lock()
	state := a.state
	page := view.Process(a.dataset.Rows(), state)
	a.mu.Unlock()
	out := PageDTO{
		Rows:          make([]RowDTO, 0, len(page.Rows)),
		FilteredCount: page.FilteredCount,
		TotalPages:    page.TotalPages,
		CurrentPage:   page.CurrentPage,
		ItemsPerPage:  state.ItemsPerPage,
	}
	for _, r := range page.Rows {
		out.Rows = append(out.Rows, a.rowDTO(r))
	}
	return out
}

func (a *TableAPI) SetFilter(column, value, filterType string, matchCase bool) PageDTO {
	a.mu.Lock()
	a.state.SetFilter(column, domain.ColumnFilter{
		Value:     value,
		Type:      domain.FilterType(filterType),
		MatchCase: matchCase,
	})
	a.mu.Unlock()
	return a.GetPage()
}

func (a *TableAPI) ClearFilter(column string) PageDTO {
	a.mu.Lock()
	a.state.ClearFilter(column)
	a.mu.Unlock()
	return a.GetPage()
}

func (a *TableAPI) ResetFilters() PageDTO {
	a.mu.Lock()
	a.state.ResetFilters()
	a.mu.Unlock()
	return a.GetPage()
}

func (a *TableAPI) SetLanguage(code string) PageDTO {
	a.mu.Lock()
	a.state.SetLanguage(code)
	a.mu.Unlock()
	return a.GetPage()
}

// SetSort sorts by the given column, toggling direction when the column is
// already the sort key.
func (a *TableAPI) SetSort(column string) PageDTO {
	a.mu.Lock()
	a.state.SetSort(column)
	a.mu.Unlock()
	return a.GetPage()
}

func (a *TableAPI) SetPage(page int) PageDTO {
	a.mu.Lock()
	a.state.SetPage(page)
	a.mu.Unlock()
	return a.GetPage()
}

func (a *TableAPI) SetItemsPerPage(n int) PageDTO {
	a.mu.Lock()
	a.state.SetItemsPerPage(n)
	a.mu.Unlock()
	return a.GetPage()
}

// Reset restores the default table state, keeping the configured page size.
func (a *TableAPI) Reset() {
	a.mu.Lock()
	a.state = domain.NewTableState(a.state.ItemsPerPage)
	a.mu.Unlock()
}
