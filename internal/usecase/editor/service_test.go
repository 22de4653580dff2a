package editor

import (
	"testing"

	"github.com/Giang-Dang/parallel-corpus-tool/internal/domain"
)

func TestSetCell_recordsAndResolves(t *testing.T) {
	s := New()
	s.SetCell("10000101", domain.ColumnWord, "cat", "cats")

	if s.Count() != 1 {
		t.Fatalf("Count = %d, want 1", s.Count())
	}
	if got := s.ResolveDisplayValue("10000101", domain.ColumnWord, "cat"); got != "cats" {
		t.Errorf("display = %q, want %q", got, "cats")
	}
	// other cells of the same row stay untouched
	if got := s.ResolveDisplayValue("10000101", domain.ColumnLemma, "cat"); got != "cat" {
		t.Errorf("lemma display = %q, want original", got)
	}

	c, ok := s.Change("10000101", domain.ColumnWord)
	if !ok {
		t.Fatal("expected change entry")
	}
	if c.OriginalValue != "cat" || c.NewValue != "cats" {
		t.Errorf("change = %+v", c)
	}
}

func TestSetCell_noOpRemovesEntry(t *testing.T) {
	s := New()
	s.SetCell("10000101", domain.ColumnWord, "cat", "cats")
	// typing the original value back converges to zero pending changes
	s.SetCell("10000101", domain.ColumnWord, "cat", "cat")

	if s.HasChanges() {
		t.Errorf("Count = %d, want 0 after edit back to original", s.Count())
	}
}

func TestSetCell_linksSetEquality(t *testing.T) {
	s := New()
	// reordering or duplicating links is not a change
	s.SetCell("10000101", domain.ColumnLinks, "1,2,3", "3, 2, 1, 1")
	if s.HasChanges() {
		t.Fatal("reordered links must not record a change")
	}

	s.SetCell("10000101", domain.ColumnLinks, "1,2,3", "1,2")
	if s.Count() != 1 {
		t.Errorf("Count = %d, want 1", s.Count())
	}
}

func TestSetCell_sameKeyOverwrites(t *testing.T) {
	s := New()
	s.SetCell("10000101", domain.ColumnWord, "cat", "cats")
	s.SetCell("10000101", domain.ColumnWord, "cat", "kitten")

	if s.Count() != 1 {
		t.Fatalf("Count = %d, want 1", s.Count())
	}
	if got := s.ResolveDisplayValue("10000101", domain.ColumnWord, "cat"); got != "kitten" {
		t.Errorf("display = %q, want latest value", got)
	}
}

func TestRevertCell(t *testing.T) {
	s := New()
	s.SetCell("10000101", domain.ColumnWord, "cat", "cats")
	s.SetCell("10000101", domain.ColumnLemma, "cat", "kitty")

	s.RevertCell("10000101", domain.ColumnWord)
	if s.Count() != 1 {
		t.Fatalf("Count = %d, want 1 after revert", s.Count())
	}
	if got := s.ResolveDisplayValue("10000101", domain.ColumnWord, "cat"); got != "cat" {
		t.Errorf("reverted display = %q, want original", got)
	}
	// reverting an absent cell is a no-op
	s.RevertCell("10000101", domain.ColumnWord)
	if s.Count() != 1 {
		t.Errorf("Count = %d after double revert", s.Count())
	}
}

func TestClearAll(t *testing.T) {
	s := New()
	s.SetCell("10000101", domain.ColumnWord, "cat", "cats")
	s.SetCell("10000102", domain.ColumnWord, "dog", "dogs")
	s.SetActiveCell("10000101", domain.ColumnWord)

	s.ClearAll()
	if s.HasChanges() {
		t.Error("changes must be empty after ClearAll")
	}
	if _, ok := s.ActiveCell(); ok {
		t.Error("active cell must be cleared with the overlay")
	}
}

func TestEditModeAndActiveCell(t *testing.T) {
	s := New()
	if s.EditMode() {
		t.Fatal("edit mode must start disabled")
	}
	s.SetEditMode(true)
	s.SetActiveCell("10000101", domain.ColumnWord)

	// activating a second cell replaces the first
	s.SetActiveCell("10000102", domain.ColumnLemma)
	key, ok := s.ActiveCell()
	if !ok || key.RowID != "10000102" || key.Column != domain.ColumnLemma {
		t.Errorf("active = %+v, %v", key, ok)
	}

	// leaving edit mode deactivates the cell
	s.SetEditMode(false)
	if _, ok := s.ActiveCell(); ok {
		t.Error("disabling edit mode must clear the active cell")
	}
}

func TestChanges_snapshot(t *testing.T) {
	s := New()
	s.SetCell("10000101", domain.ColumnWord, "cat", "cats")

	snap := s.Changes()
	s.SetCell("10000102", domain.ColumnWord, "dog", "dogs")
	if len(snap) != 1 {
		t.Errorf("snapshot grew with later edits: %d", len(snap))
	}
}
