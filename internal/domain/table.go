package domain

// FilterType is a per-column filter matching mode.
type FilterType string

const (
	FilterContain    FilterType = "contain"
	FilterExact      FilterType = "exact"
	FilterStartsWith FilterType = "startswith"
	FilterEndsWith   FilterType = "endswith"
)

// ColumnFilter is one active per-column filter.
type ColumnFilter struct {
	Value     string     `json:"value"`
	Type      FilterType `json:"type"`
	MatchCase bool       `json:"match_case"`
}

// SortDirection orders a sorted column ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// TableState holds the derived-view inputs: language selection, per-column
// filters, sort key and pagination. Mutations go through the methods below
// so that any filter, sort or language change resets the page to 1.
type TableState struct {
	CurrentPage      int                     `json:"current_page"`
	ItemsPerPage     int                     `json:"items_per_page"`
	SelectedLanguage string                  `json:"selected_language"`
	Filters          map[string]ColumnFilter `json:"filters"`
	SortColumn       string                  `json:"sort_column"`
	SortDirection    SortDirection           `json:"sort_direction"`
}

// NewTableState returns the initial table state.
func NewTableState(itemsPerPage int) TableState {
	if itemsPerPage <= 0 {
		itemsPerPage = 20
	}
	return TableState{
		CurrentPage:   1,
		ItemsPerPage:  itemsPerPage,
		Filters:       map[string]ColumnFilter{},
		SortDirection: SortAsc,
	}
}

// SetFilter installs or replaces the filter for a column and resets paging.
func (s *TableState) SetFilter(column string, f ColumnFilter) {
	if f.Type == "" {
		f.Type = FilterContain
	}
	if s.Filters == nil {
		s.Filters = map[string]ColumnFilter{}
	}
	s.Filters[column] = f
	s.CurrentPage = 1
}

// ClearFilter removes the filter for a column and resets paging.
func (s *TableState) ClearFilter(column string) {
	delete(s.Filters, column)
	s.CurrentPage = 1
}

// ResetFilters drops all column filters and resets paging.
func (s *TableState) ResetFilters() {
	s.Filters = map[string]ColumnFilter{}
	s.CurrentPage = 1
}

// SetLanguage selects a language partition and resets paging.
func (s *TableState) SetLanguage(language string) {
	s.SelectedLanguage = language
	s.CurrentPage = 1
}

// SetSort sorts by column, toggling direction when the column is already
// the sort key. Resets paging.
func (s *TableState) SetSort(column string) {
	if s.SortColumn == column && s.SortDirection == SortAsc {
		s.SortDirection = SortDesc
	} else {
		s.SortDirection = SortAsc
	}
	s.SortColumn = column
	s.CurrentPage = 1
}

// SetPage moves to a page without touching filters or sorting.
func (s *TableState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.CurrentPage = page
}

// SetItemsPerPage changes the page size and resets paging.
func (s *TableState) SetItemsPerPage(n int) {
	if n <= 0 {
		return
	}
	s.ItemsPerPage = n
	s.CurrentPage = 1
}
