package app

import (
	"context"
	"sort"
	"time"

	"github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/lang"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/ports"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/usecase/editor"
)

// FileAPI reports what is currently loaded and resets the workspace.
type FileAPI struct {
	dataset  ports.Dataset
	snapshot ports.SnapshotStore
	overlay  *editor.Service
	table    *TableAPI
}

func NewFileAPI(dataset ports.Dataset, snapshot ports.SnapshotStore, overlay *editor.Service, table *TableAPI) *FileAPI {
	return &FileAPI{dataset: dataset, snapshot: snapshot, overlay: overlay, table: table}
}

type FileDTO struct {
	Name       string `json:"name"`
	BaseName   string `json:"base_name"`
	Language   string `json:"language"`
	EntryCount int    `json:"entry_count"`
	ImportedAt string `json:"imported_at"`
}

func (a *FileAPI) List() []FileDTO {
	files := a.dataset.Files()
	counts := a.dataset.CountByLanguage()
	out := make([]FileDTO, 0, len(files))
	for _, f := range files {
		out = append(out, FileDTO{
			Name:       f.Name,
			BaseName:   f.BaseName,
			Language:   f.Language,
			EntryCount: counts[f.Language],
			ImportedAt: f.InsertedAt.Format(time.RFC3339),
		})
	}
	return out
}

type LanguageDTO struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Languages lists the loaded language partitions with display names and row
// counts, sorted by code.
func (a *FileAPI) Languages() []LanguageDTO {
	counts := a.dataset.CountByLanguage()
	out := make([]LanguageDTO, 0, len(counts))
	for code, n := range counts {
		out = append(out, LanguageDTO{Code: code, Name: lang.Name(code), Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Clear discards everything: the dataset, the snapshot, pending changes, and
// the table state.
func (a *FileAPI) Clear() error {
	a.dataset.Clear()
	a.overlay.ClearAll()
	a.table.Reset()
	if a.snapshot != nil {
		return a.snapshot.Clear(context.Background())
	}
	return nil
}
