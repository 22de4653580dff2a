package app

import (
	"context"
	"encoding/base64"
	"log/slog"

	corpusparser "github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/parser/corpustsv"
	parreg "github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/parser/registry"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/usecase/ingest"
)

type ImportAPI struct {
	svc *ingest.Service
	log *slog.Logger
}

func NewImportAPI(svc *ingest.Service, log *slog.Logger) *ImportAPI {
	return &ImportAPI{svc: svc, log: log}
}

type ImportFile struct {
	Name string `json:"name"`
	// ContentB64 is base64-encoded text bytes
	ContentB64 string `json:"content_b64"`
}

type GroupInfo struct {
	BaseName          string   `json:"base_name"`
	Languages         []string `json:"languages"`
	FileNames         []string `json:"file_names"`
	NeedsConfirmation bool     `json:"needs_confirmation"`
}

func (a *ImportAPI) decode(files []ImportFile) ([]ingest.NamedFile, error) {
	out := make([]ingest.NamedFile, 0, len(files))
	for _, f := range files {
		b, err := base64.StdEncoding.DecodeString(f.ContentB64)
		if err != nil {
			return nil, err
		}
		out = append(out, ingest.NamedFile{Name: f.Name, Content: b})
	}
	return out, nil
}

// Inspect validates the selection without loading anything. The frontend
// uses the result to show the two-file confirmation prompt.
func (a *ImportAPI) Inspect(files []ImportFile) (GroupInfo, error) {
	named, err := a.decode(files)
	if err != nil {
		return GroupInfo{}, err
	}
	group, err := ingest.BuildFileGroup(named)
	if err != nil {
		return GroupInfo{}, err
	}
	info := GroupInfo{BaseName: group.BaseName, NeedsConfirmation: ingest.NeedsConfirmation(group)}
	for _, lf := range group.Files {
		info.Languages = append(info.Languages, lf.Language)
		info.FileNames = append(info.FileNames, lf.Name)
	}
	return info, nil
}

// Start kicks off ingestion in the background. Completion and failure are
// reported through runtime events; Progress polls the running state.
func (a *ImportAPI) Start(files []ImportFile) (bool, error) {
	named, err := a.decode(files)
	if err != nil {
		return false, err
	}
	group, err := ingest.BuildFileGroup(named)
	if err != nil {
		return false, err
	}
	go func() {
		if err := a.svc.Process(context.Background(), group); err != nil {
			a.log.Error("import failed", "base_name", group.BaseName, "error", err)
		}
	}()
	return true, nil
}

type ProgressInfo struct {
	Processed int `json:"processed"`
	Total     int `json:"total"`
}

func (a *ImportAPI) Progress() ProgressInfo {
	processed, total := a.svc.Progress()
	return ProgressInfo{Processed: processed, Total: total}
}

// Helper to create a default parser registry for wiring.
func NewDefaultParserRegistry() *parreg.Registry {
	reg := parreg.New()
	reg.Register(corpusparser.New())
	return reg
}
