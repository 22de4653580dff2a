package app

import (
	"fmt"

	"github.com/Giang-Dang/parallel-corpus-tool/internal/ports"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/usecase/editor"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/usecase/validate"
)

// EditAPI exposes the pending change overlay and its validation state.
type EditAPI struct {
	overlay *editor.Service
	dataset ports.Dataset
}

func NewEditAPI(overlay *editor.Service, dataset ports.Dataset) *EditAPI {
	return &EditAPI{overlay: overlay, dataset: dataset}
}

type ChangeDTO struct {
	RowID         string `json:"row_id"`
	Column        string `json:"column"`
	OriginalValue string `json:"original_value"`
	NewValue      string `json:"new_value"`
}

type IssueDTO struct {
	Kind          string   `json:"kind"`
	RowID         string   `json:"row_id"`
	Column        string   `json:"column"`
	NewValue      string   `json:"new_value"`
	ConflictsWith []string `json:"conflicts_with"`
	Message       string   `json:"message"`
}

type EditStatus struct {
	EditMode       bool       `json:"edit_mode"`
	PendingChanges int        `json:"pending_changes"`
	Issues         []IssueDTO `json:"issues"`
	CanSave        bool       `json:"can_save"`
}

func (a *EditAPI) status() EditStatus {
	issues := validate.Derive(a.overlay.Changes(), a.dataset)
	st := EditStatus{
		EditMode:       a.overlay.EditMode(),
		PendingChanges: a.overlay.Count(),
		Issues:         make([]IssueDTO, 0, len(issues)),
	}
	for _, is := range issues {
		st.Issues = append(st.Issues, IssueDTO{
			Kind:          string(is.Kind),
			RowID:         is.RowID,
			Column:        is.Column,
			NewValue:      is.NewValue,
			ConflictsWith: is.ConflictsWith,
			Message:       is.Message,
		})
	}
	st.CanSave = validate.CanSave(st.PendingChanges, issues)
	return st
}

// SetCell records an edit against the loaded row. Setting a cell back to its
// original value drops the change.
func (a *EditAPI) SetCell(rowID, column, newValue string) (EditStatus, error) {
	row, ok := a.dataset.RowByEntryID(rowID)
	if !ok {
		return EditStatus{}, fmt.Errorf("unknown row: %s", rowID)
	}
	a.overlay.SetCell(rowID, column, row.ColumnValue(column), newValue)
	return a.status(), nil
}

func (a *EditAPI) RevertCell(rowID, column string) EditStatus {
	a.overlay.RevertCell(rowID, column)
	return a.status()
}

func (a *EditAPI) ClearAll() EditStatus {
	a.overlay.ClearAll()
	return a.status()
}

func (a *EditAPI) Changes() []ChangeDTO {
	cs := a.overlay.Changes()
	out := make([]ChangeDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, ChangeDTO{
			RowID:         c.RowID,
			Column:        c.Column,
			OriginalValue: c.OriginalValue,
			NewValue:      c.NewValue,
		})
	}
	return out
}

func (a *EditAPI) Status() EditStatus { return a.status() }

func (a *EditAPI) SetEditMode(enabled bool) EditStatus {
	a.overlay.SetEditMode(enabled)
	return a.status()
}

type ActiveCellDTO struct {
	RowID  string `json:"row_id"`
	Column string `json:"column"`
	Active bool   `json:"active"`
}

func (a *EditAPI) SetActiveCell(rowID, column string) ActiveCellDTO {
	a.overlay.SetActiveCell(rowID, column)
	return ActiveCellDTO{RowID: rowID, Column: column, Active: true}
}

func (a *EditAPI) ClearActiveCell() {
	a.overlay.ClearActiveCell()
}

func (a *EditAPI) ActiveCell() ActiveCellDTO {
	key, ok := a.overlay.ActiveCell()
	if !ok {
		return ActiveCellDTO{}
	}
	return ActiveCellDTO{RowID: key.RowID, Column: key.Column, Active: true}
}

// IssuesFor returns only the issues attached to one cell, for inline
// highlighting.
func (a *EditAPI) IssuesFor(rowID, column string) []IssueDTO {
	issues := validate.IssuesFor(validate.Derive(a.overlay.Changes(), a.dataset), rowID, column)
	out := make([]IssueDTO, 0, len(issues))
	for _, is := range issues {
		out = append(out, IssueDTO{
			Kind:          string(is.Kind),
			RowID:         is.RowID,
			Column:        is.Column,
			NewValue:      is.NewValue,
			ConflictsWith: is.ConflictsWith,
			Message:       is.Message,
		})
	}
	return out
}
