package app

import (
	"encoding/base64"

	corpusexp "github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/exporter/corpustsv"
	exreg "github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/exporter/registry"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/usecase/editor"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/usecase/export"
)

type ExportAPI struct {
	svc     *export.Service
	overlay *editor.Service
}

func NewExportAPI(svc *export.Service, overlay *editor.Service) *ExportAPI {
	return &ExportAPI{svc: svc, overlay: overlay}
}

type ExportFileResponse struct {
	Filename   string `json:"filename"`
	ContentB64 string `json:"content_b64"`
	Language   string `json:"language"`
}

// ExportLanguageBase64 regenerates one language file with all pending
// changes applied.
func (a *ExportAPI) ExportLanguageBase64(languageCode string) (ExportFileResponse, error) {
	res, err := a.svc.ExportLanguage(languageCode, a.overlay.Changes())
	if err != nil {
		return ExportFileResponse{}, err
	}
	return ExportFileResponse{
		Filename:   res.Filename,
		ContentB64: base64.StdEncoding.EncodeToString(res.Content),
		Language:   res.Language,
	}, nil
}

// ExportAllBase64 regenerates every loaded language, one response per file.
func (a *ExportAPI) ExportAllBase64() ([]ExportFileResponse, error) {
	results, err := a.svc.ExportAll(a.overlay.Changes())
	if err != nil {
		return nil, err
	}
	out := make([]ExportFileResponse, 0, len(results))
	for _, res := range results {
		out = append(out, ExportFileResponse{
			Filename:   res.Filename,
			ContentB64: base64.StdEncoding.EncodeToString(res.Content),
			Language:   res.Language,
		})
	}
	return out, nil
}

// Helper to build default exporter registry
func NewDefaultExporterRegistry() *exreg.Registry {
	reg := exreg.New()
	reg.Register(corpusexp.New())
	return reg
}
