package validate

import (
	"testing"

	"github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/db/memory"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/domain"
)

func seedDataset(t *testing.T, language string, ids ...string) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	rows := make([]*domain.CorpusRow, 0, len(ids))
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		rows = append(rows, &domain.CorpusRow{Language: language, EntryID: id})
		idSet[id] = struct{}{}
	}
	store.AppendRows(rows)
	store.SetLanguageIDs(language, idSet)
	return store
}

func idChange(originalID, newID string) domain.CellChange {
	return domain.CellChange{
		RowID:         originalID,
		Column:        domain.ColumnEntryID,
		OriginalValue: originalID,
		NewValue:      newID,
	}
}

func TestDerive_noIDChanges(t *testing.T) {
	store := seedDataset(t, "en", "10000101")
	changes := []domain.CellChange{
		{RowID: "10000101", Column: domain.ColumnWord, OriginalValue: "cat", NewValue: "cats"},
	}
	if issues := Derive(changes, store); len(issues) != 0 {
		t.Errorf("non-identifier edits produced issues: %v", issues)
	}
}

func TestDerive_collisionWithUneditedEntry(t *testing.T) {
	store := seedDataset(t, "en", "10000101", "10000102")
	changes := []domain.CellChange{idChange("10000101", "10000102")}

	issues := Derive(changes, store)
	if len(issues) != 1 {
		t.Fatalf("len(issues) = %d, want 1", len(issues))
	}
	is := issues[0]
	if is.Kind != domain.IssueDuplicateEntryID || is.RowID != "10000101" {
		t.Errorf("issue = %+v", is)
	}
	if is.Message != `Entry ID "10000102" already exists in language "en" and is not being changed` {
		t.Errorf("message = %q", is.Message)
	}
}

func TestDerive_swapProducesNoIssues(t *testing.T) {
	store := seedDataset(t, "en", "10000101", "10000102")
	// both holders are renamed in the same overlay: a legal swap
	changes := []domain.CellChange{
		idChange("10000101", "10000102"),
		idChange("10000102", "10000101"),
	}
	if issues := Derive(changes, store); len(issues) != 0 {
		t.Errorf("swap flagged as conflict: %v", issues)
	}
}

func TestDerive_renameToOwnIDIsClean(t *testing.T) {
	store := seedDataset(t, "en", "10000101")
	changes := []domain.CellChange{idChange("10000101", "10000101")}
	if issues := Derive(changes, store); len(issues) != 0 {
		t.Errorf("identity rename flagged: %v", issues)
	}
}

func TestDerive_twoEditsClaimSameID(t *testing.T) {
	store := seedDataset(t, "en", "10000101", "10000102")
	changes := []domain.CellChange{
		idChange("10000101", "10000999"),
		idChange("10000102", "10000999"),
	}

	issues := Derive(changes, store)
	if len(issues) != 2 {
		t.Fatalf("len(issues) = %d, want one per claimant", len(issues))
	}
	for _, is := range issues {
		if is.NewValue != "10000999" {
			t.Errorf("NewValue = %q", is.NewValue)
		}
		if len(is.ConflictsWith) != 1 {
			t.Errorf("ConflictsWith = %v", is.ConflictsWith)
		}
		if is.Message != `Entry ID "10000999" conflicts with 1 other changed entries` {
			t.Errorf("message = %q", is.Message)
		}
	}
}

func TestDerive_languagePartitionsIsolated(t *testing.T) {
	store := memory.NewStore()
	store.AppendRows([]*domain.CorpusRow{
		{Language: "en", EntryID: "10000101"},
		{Language: "vn", EntryID: "10000102"},
	})
	store.SetLanguageIDs("en", map[string]struct{}{"10000101": {}})
	store.SetLanguageIDs("vn", map[string]struct{}{"10000102": {}})

	// renaming an en row onto an ID that exists only in vn is fine
	changes := []domain.CellChange{idChange("10000101", "10000102")}
	if issues := Derive(changes, store); len(issues) != 0 {
		t.Errorf("cross-language rename flagged: %v", issues)
	}
}

func TestIssuesFor(t *testing.T) {
	issues := []domain.ValidationIssue{
		{RowID: "a", Column: domain.ColumnEntryID},
		{RowID: "b", Column: domain.ColumnEntryID},
	}
	got := IssuesFor(issues, "a", domain.ColumnEntryID)
	if len(got) != 1 || got[0].RowID != "a" {
		t.Errorf("IssuesFor = %v", got)
	}
	if got := IssuesFor(issues, "a", domain.ColumnWord); len(got) != 0 {
		t.Errorf("wrong-column lookup = %v", got)
	}
}

func TestCanSave(t *testing.T) {
	if CanSave(0, nil) {
		t.Error("no pending changes must not be savable")
	}
	if !CanSave(2, nil) {
		t.Error("pending changes without issues must be savable")
	}
	if CanSave(2, []domain.ValidationIssue{{}}) {
		t.Error("issues must block saving")
	}
}
