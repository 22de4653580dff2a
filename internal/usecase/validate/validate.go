// Package validate derives identifier-collision issues from the change
// overlay, the per-language entry-ID index and the current dataset. It
// owns no state; every call is a fresh pure derivation.
package validate

import (
	"fmt"
	"sort"

	"github.com/Giang-Dang/parallel-corpus-tool/internal/domain"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/ports"
)

// Derive scans pending entry-ID edits and reports conflicts. Two classes:
//
//  1. The same new ID claimed by more than one edited row.
//  2. A new ID that already exists in the row's language partition, unless
//     it equals the original ID, or the existing holder of that ID is itself
//     being renamed in this overlay (the swap exception).
//
// Edits to non-identifier columns are never examined.
func Derive(changes []domain.CellChange, dataset ports.Dataset) []domain.ValidationIssue {
	idChanges := make(map[string]string) // originalId -> newId
	for _, c := range changes {
		if c.Column == domain.ColumnEntryID {
			idChanges[c.RowID] = c.NewValue
		}
	}
	if len(idChanges) == 0 {
		return nil
	}

	var issues []domain.ValidationIssue

	// Duplicates among the edits themselves.
	claimants := make(map[string][]string) // newId -> originalIds
	for originalID, newID := range idChanges {
		claimants[newID] = append(claimants[newID], originalID)
	}
	for newID, originalIDs := range claimants {
		if len(originalIDs) < 2 {
			continue
		}
		sort.Strings(originalIDs)
		for _, originalID := range originalIDs {
			conflicts := make([]string, 0, len(originalIDs)-1)
			for _, other := range originalIDs {
				if other != originalID {
					conflicts = append(conflicts, other)
				}
			}
			issues = append(issues, domain.ValidationIssue{
				Kind:          domain.IssueDuplicateEntryID,
				RowID:         originalID,
				Column:        domain.ColumnEntryID,
				NewValue:      newID,
				ConflictsWith: conflicts,
				Message: fmt.Sprintf("Entry ID %q conflicts with %d other changed entries",
					newID, len(originalIDs)-1),
			})
		}
	}

	// Collisions against unedited dataset entries, partitioned by language.
	index := dataset.LanguageIDs()
	ordered := make([]string, 0, len(idChanges))
	for originalID := range idChanges {
		ordered = append(ordered, originalID)
	}
	sort.Strings(ordered)
	for _, originalID := range ordered {
		newID := idChanges[originalID]
		row, ok := dataset.RowByEntryID(originalID)
		if !ok {
			continue
		}
		existing, ok := index[row.Language]
		if !ok {
			continue
		}
		_, exists := existing[newID]
		_, holderEdited := idChanges[newID]
		if exists && newID != originalID && !holderEdited {
			issues = append(issues, domain.ValidationIssue{
				Kind:     domain.IssueDuplicateEntryID,
				RowID:    originalID,
				Column:   domain.ColumnEntryID,
				NewValue: newID,
				Message: fmt.Sprintf("Entry ID %q already exists in language %q and is not being changed",
					newID, row.Language),
			})
		}
	}

	return issues
}

// IssuesFor filters issues down to one cell.
func IssuesFor(issues []domain.ValidationIssue, rowID, column string) []domain.ValidationIssue {
	var out []domain.ValidationIssue
	for _, is := range issues {
		if is.RowID == rowID && is.Column == column {
			out = append(out, is)
		}
	}
	return out
}

// CanSave gates the save action: at least one pending change and zero
// validation issues.
func CanSave(pendingChanges int, issues []domain.ValidationIssue) bool {
	return pendingChanges > 0 && len(issues) == 0
}
