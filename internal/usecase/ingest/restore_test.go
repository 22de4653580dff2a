package ingest

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/db/memory"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/db/sqlite"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/parser/corpustsv"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/sched"
)

func TestRestore_roundTripThroughSnapshot(t *testing.T) {
	db, err := sqlite.Init(filepath.Join(t.TempDir(), "snapshot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	snapshot := sqlite.NewSnapshotRepo(db)
	ctx := context.Background()

	// first session: ingest with mirroring enabled
	first := memory.NewStore()
	svc := New(Deps{
		Dataset:  first,
		Parser:   corpustsv.New(),
		Sched:    sched.Immediate{},
		Snapshot: snapshot,
	}, 0)

	content := strings.Join([]string{
		tsvLine("10000101", "the"),
		tsvLine("10000102", "cat"),
	}, "\n")
	group := mustGroup(t, NamedFile{Name: "corpus_en.txt", Content: []byte(content)})
	require.NoError(t, svc.Process(ctx, group))

	// second session: a fresh dataset restored from the snapshot alone
	second := memory.NewStore()
	require.NoError(t, Restore(ctx, snapshot, second, nil))

	require.Len(t, second.Rows(), 2)
	assert.Equal(t, "the", second.Rows()[0].Word)

	row, ok := second.RowByEntryID("10000102")
	require.True(t, ok)
	assert.Equal(t, "cat", row.Word)

	assert.Len(t, second.LanguageIDs()["en"], 2)
	require.Len(t, second.Files(), 1)
	assert.Equal(t, "corpus", second.Files()[0].BaseName)
}

func TestRestore_emptySnapshot(t *testing.T) {
	db, err := sqlite.Init(filepath.Join(t.TempDir(), "snapshot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := memory.NewStore()
	require.NoError(t, Restore(context.Background(), sqlite.NewSnapshotRepo(db), store, nil))
	assert.Empty(t, store.Rows())
	assert.Empty(t, store.Files())
}
