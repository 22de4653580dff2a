package main

import (
	"context"
	"time"

	dbmemory "github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/db/memory"
	dbsqlite "github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/db/sqlite"
	corpusparser "github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/parser/corpustsv"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/sched"
	apiapp "github.com/Giang-Dang/parallel-corpus-tool/internal/api/app"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/config"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/logging"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/ports"
	editorusecase "github.com/Giang-Dang/parallel-corpus-tool/internal/usecase/editor"
	exportusecase "github.com/Giang-Dang/parallel-corpus-tool/internal/usecase/export"
	ingestusecase "github.com/Giang-Dang/parallel-corpus-tool/internal/usecase/ingest"

	"embed"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		println("Config Error:", err.Error())
		return
	}
	log := logging.New(cfg.Log)

	// Create an instance of the app structure
	app := NewApp(log)

	// The dataset lives in memory; SQLite mirrors committed loads so a
	// session survives a restart.
	dataset := dbmemory.NewStore()
	var snapshot ports.SnapshotStore
	if cfg.Database.Enabled {
		db, dberr := dbsqlite.Init(cfg.Database.Path)
		if dberr != nil {
			log.Error("snapshot store unavailable", "path", cfg.Database.Path, "error", dberr)
		} else {
			snapshot = dbsqlite.NewSnapshotRepo(db)
		}
	}

	parserRegistry := apiapp.NewDefaultParserRegistry()
	lineParser, ok := parserRegistry.GetLine(corpusparser.New().Format())
	if !ok {
		log.Error("no line parser registered for corpus format")
		return
	}
	frames := sched.NewFrame(time.Duration(cfg.Ingest.FrameIntervalMS) * time.Millisecond)

	ingestSvc := ingestusecase.New(ingestusecase.Deps{
		Dataset:  dataset,
		Parser:   lineParser,
		Sched:    frames,
		Snapshot: snapshot,
		Logger:   log,
	}, cfg.Ingest.BatchSize)
	app.SetIngest(ingestSvc)

	if snapshot != nil {
		if err := ingestusecase.Restore(context.Background(), snapshot, dataset, log); err != nil {
			log.Warn("session restore failed", "error", err)
		}
	}

	overlay := editorusecase.New()

	expReg := apiapp.NewDefaultExporterRegistry()
	exportSvc := exportusecase.New(exportusecase.Deps{Dataset: dataset, Reg: expReg})

	// API bindings
	importAPI := apiapp.NewImportAPI(ingestSvc, log)
	tableAPI := apiapp.NewTableAPI(dataset, overlay, cfg.Table.ItemsPerPage)
	editAPI := apiapp.NewEditAPI(overlay, dataset)
	exportAPI := apiapp.NewExportAPI(exportSvc, overlay)
	fileAPI := apiapp.NewFileAPI(dataset, snapshot, overlay, tableAPI)

	// Create application with options
	err = wails.Run(&options.App{
		Title:  cfg.App.Title,
		Width:  cfg.App.Width,
		Height: cfg.App.Height,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.startup,
		Bind: []interface{}{
			app,
			importAPI,
			tableAPI,
			editAPI,
			exportAPI,
			fileAPI,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
