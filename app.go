package main

import (
	"context"
	"log/slog"

	ingestusecase "github.com/Giang-Dang/parallel-corpus-tool/internal/usecase/ingest"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App struct
type App struct {
	ctx    context.Context
	log    *slog.Logger
	ingest *ingestusecase.Service
}

// NewApp creates a new App application struct
func NewApp(log *slog.Logger) *App {
	return &App{log: log}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	if a.ingest != nil {
		a.ingest.SetEmitter(wailsEmitter{ctx: a.ctx})
	}
	a.log.Info("application started")
}

// SetIngest allows main() to provide the ingestion service so the event
// emitter can be wired on startup
func (a *App) SetIngest(s *ingestusecase.Service) {
	a.ingest = s
}

// SaveFileDialog asks the user where to write an exported file and returns
// the chosen path, or "" when cancelled.
func (a *App) SaveFileDialog(defaultFilename string) (string, error) {
	return runtime.SaveFileDialog(a.ctx, runtime.SaveDialogOptions{
		DefaultFilename: defaultFilename,
		Title:           "Save exported file",
		Filters: []runtime.FileFilter{
			{DisplayName: "Text files (*.txt)", Pattern: "*.txt"},
		},
	})
}

type wailsEmitter struct{ ctx context.Context }

func (w wailsEmitter) Emit(name string, payload any) {
	runtime.EventsEmit(w.ctx, name, payload)
}
