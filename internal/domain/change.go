package domain

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// ChangeKey identifies one edited cell. A composite key is used instead of
// the "rowId-column" string so entry IDs containing the separator cannot
// collide.
type ChangeKey struct {
	RowID  string `json:"row_id"`
	Column string `json:"column"`
}

// CellChange is one pending, unsaved edit layered over the base dataset.
type CellChange struct {
	RowID         string    `json:"row_id"`
	Column        string    `json:"column"`
	OriginalValue string    `json:"original_value"`
	NewValue      string    `json:"new_value"`
	Timestamp     time.Time `json:"timestamp"`
}

// Key returns the overlay key for the change.
func (c CellChange) Key() ChangeKey {
	return ChangeKey{RowID: c.RowID, Column: c.Column}
}

// ValuesEqual reports whether two cell values are equal for the given
// column. The links column compares by integer-set equality, every other
// column by strict string equality.
func ValuesEqual(column, a, b string) bool {
	if column != ColumnLinks {
		return a == b
	}
	return linksEqual(ParseLinks(a), ParseLinks(b))
}

// ParseLinks splits a comma-separated list into a sorted, de-duplicated
// slice of integers. Non-numeric tokens are dropped.
func ParseLinks(s string) []int {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	seen := make(map[int]struct{})
	var out []int
	for _, tok := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// FormatLinks serializes a link set as a sorted comma-joined list.
func FormatLinks(links []int) string {
	if len(links) == 0 {
		return ""
	}
	sorted := make([]int, len(links))
	copy(sorted, links)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, n := range sorted {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func linksEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
