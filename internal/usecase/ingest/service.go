// Package ingest implements the file ingestion pipeline: batched line
// parsing with cooperative yields, whole-file duplicate-ID validation, and
// atomic commit of rows into the in-memory dataset.
package ingest

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Giang-Dang/parallel-corpus-tool/internal/domain"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/ports"
)

type Deps struct {
	Dataset ports.Dataset
	Parser  ports.LineParser
	Sched   ports.FrameScheduler
	// Emitter may be nil in headless runs; progress is then only available
	// through Progress().
	Emitter ports.Emitter
	// Snapshot may be nil; when set, committed loads are mirrored into it
	// best-effort.
	Snapshot ports.SnapshotStore
	Logger   *slog.Logger
}

// Service owns dataset construction. One load operation processes a file
// group sequentially; it is the only long-running operation in the app.
type Service struct {
	d         Deps
	batchSize int

	mu        sync.Mutex
	processed int
	total     int
}

const defaultBatchSize = 100000

func New(d Deps, batchSize int) *Service {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return &Service{d: d, batchSize: batchSize}
}

// Progress returns the lines processed and total lines of the file
// currently being ingested. Valid at every yield point.
func (s *Service) Progress() (processed, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processed, s.total
}

// Process ingests a validated file group. It clears all prior dataset
// state first: a new load operation is an explicit reset, never a merge.
// Files are processed sequentially; the first file that fails duplicate
// validation aborts its own commit and stops the remaining queue. Rows of
// files committed earlier in the same group stay committed.
func (s *Service) Process(ctx context.Context, group domain.FileGroup) error {
	opID := uuid.NewString()

	s.d.Dataset.Clear()
	if s.d.Snapshot != nil {
		if err := s.d.Snapshot.Clear(ctx); err != nil {
			s.d.Logger.Warn("snapshot clear failed", "error", err)
		}
	}

	s.emit("ingest.started", map[string]any{
		"operation_id": opID,
		"base_name":    group.BaseName,
		"files":        len(group.Files),
	})
	s.d.Logger.Info("ingest started",
		"operation_id", opID, "base_name", group.BaseName, "files", len(group.Files))

	for _, lf := range group.Files {
		if err := s.processFile(ctx, opID, lf); err != nil {
			s.emit("ingest.failed", map[string]any{
				"operation_id": opID,
				"file":         lf.Name,
				"error":        err.Error(),
			})
			s.d.Logger.Error("ingest failed", "operation_id", opID, "file", lf.Name, "error", err)
			return err
		}
	}

	s.emit("ingest.done", map[string]any{"operation_id": opID})
	s.d.Logger.Info("ingest done", "operation_id", opID)
	return nil
}

// processFile parses one file in batches, yielding one rendering frame
// between batches. Commit is all-or-nothing per file: rows reach the
// dataset only after the whole file parsed without duplicate entry IDs.
func (s *Service) processFile(ctx context.Context, opID string, lf domain.LanguageFile) error {
	lines := strings.Split(string(lf.Content), "\n")
	total := len(lines)

	s.setProgress(0, total)

	rows := make([]*domain.CorpusRow, 0, total)
	idSet := make(map[string]struct{}, total)
	dupSeen := make(map[string]struct{})
	var duplicates []string

	processed := 0
	sinceYield := 0
	for _, line := range lines {
		processed++
		sinceYield++

		row, ok := s.d.Parser.ParseLine(lf.Language, line)
		if ok {
			if _, seen := idSet[row.EntryID]; seen {
				if _, already := dupSeen[row.EntryID]; !already {
					dupSeen[row.EntryID] = struct{}{}
					duplicates = append(duplicates, row.EntryID)
				}
			}
			idSet[row.EntryID] = struct{}{}
			rows = append(rows, row)
		}

		if sinceYield >= s.batchSize {
			sinceYield = 0
			s.setProgress(processed, total)
			s.emit("ingest.progress", map[string]any{
				"operation_id": opID,
				"file":         lf.Name,
				"processed":    processed,
				"total":        total,
			})
			if err := s.d.Sched.Wait(ctx); err != nil {
				return err
			}
		}
	}

	s.setProgress(processed, total)
	s.emit("ingest.progress", map[string]any{
		"operation_id": opID,
		"file":         lf.Name,
		"processed":    processed,
		"total":        total,
	})

	if len(duplicates) > 0 {
		return &DuplicateIDError{File: lf.Name, IDs: duplicates}
	}

	s.d.Dataset.AppendRows(rows)
	s.d.Dataset.SetLanguageIDs(lf.Language, idSet)

	now := time.Now().UTC()
	rec := domain.FileRecord{
		Name:       lf.Name,
		BaseName:   lf.BaseName,
		Language:   lf.Language,
		InsertedAt: now,
		UpdatedAt:  now,
	}
	s.d.Dataset.AppendFile(rec)

	if s.d.Snapshot != nil {
		if err := s.d.Snapshot.ReplaceLanguage(ctx, lf.Language, rows); err != nil {
			s.d.Logger.Warn("snapshot mirror failed", "file", lf.Name, "error", err)
		} else if err := s.d.Snapshot.AddFile(ctx, rec); err != nil {
			s.d.Logger.Warn("snapshot file record failed", "file", lf.Name, "error", err)
		}
	}

	s.d.Logger.Info("file committed",
		"operation_id", opID, "file", lf.Name, "language", lf.Language, "rows", len(rows))
	return nil
}

func (s *Service) setProgress(processed, total int) {
	s.mu.Lock()
	s.processed = processed
	s.total = total
	s.mu.Unlock()
}

// SetEmitter wires the event sink after startup, once the runtime context
// exists.
func (s *Service) SetEmitter(e ports.Emitter) {
	s.mu.Lock()
	s.d.Emitter = e
	s.mu.Unlock()
}

func (s *Service) emit(name string, payload any) {
	s.mu.Lock()
	e := s.d.Emitter
	s.mu.Unlock()
	if e != nil {
		e.Emit(name, payload)
	}
}
