package ingest

import (
	"context"
	"log/slog"

	"github.com/Giang-Dang/parallel-corpus-tool/internal/ports"
)

// restorePageSize bounds one snapshot read so restore never materializes a
// second full copy of a large partition while scanning.
const restorePageSize = 5000

// Restore rebuilds the in-memory dataset from the snapshot left by the
// previous session. An empty snapshot restores nothing and is not an
// error. Restore must run before the first load operation; it appends
// into a fresh dataset.
func Restore(ctx context.Context, snapshot ports.SnapshotStore, dataset ports.Dataset, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	files, err := snapshot.ListFiles(ctx)
	if err != nil {
		return err
	}
	for _, f := range files {
		total, err := snapshot.CountByLanguage(ctx, f.Language)
		if err != nil {
			return err
		}
		idSet := make(map[string]struct{}, total)
		for offset := 0; offset < total; offset += restorePageSize {
			rows, err := snapshot.ListByLanguage(ctx, f.Language, offset, restorePageSize)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				break
			}
			for _, r := range rows {
				idSet[r.EntryID] = struct{}{}
			}
			dataset.AppendRows(rows)
		}
		dataset.SetLanguageIDs(f.Language, idSet)
		dataset.AppendFile(f)
		logger.Info("session restored", "file", f.Name, "language", f.Language, "rows", total)
	}
	return nil
}
