package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Giang-Dang/parallel-corpus-tool/internal/domain"
)

// SnapshotRepo mirrors committed loads into the local SQLite database so a
// session can be reopened without re-reading the source files. The
// in-memory store stays authoritative.
type SnapshotRepo struct{ *Repo }

func NewSnapshotRepo(db *sql.DB) *SnapshotRepo { return &SnapshotRepo{NewRepo(db)} }

const insertChunk = 500

// ReplaceLanguage swaps the snapshot rows of one language partition for the
// given set, inside a single transaction.
func (r *SnapshotRepo) ReplaceLanguage(ctx context.Context, language string, rows []*domain.CorpusRow) error {
	return WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		delQ := r.SQ.Delete("corpus").Where(sq.Eq{"language": language})
		sqlStr, args, err := delQ.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, sqlStr, args...); err != nil {
			return err
		}
		for start := 0; start < len(rows); start += insertChunk {
			end := start + insertChunk
			if end > len(rows) {
				end = len(rows)
			}
			ib := r.SQ.Insert("corpus").Columns(
				"language", "entry_id", "sentence_index", "word_index",
				"word", "lemma", "links", "morph", "pos", "phrase",
				"grm", "ner", "semantic", "inserted_at", "updated_at")
			for _, row := range rows[start:end] {
				ib = ib.Values(
					row.Language, row.EntryID, row.SentenceIndex, row.WordIndex,
					row.Word, row.Lemma, domain.FormatLinks(row.Links), row.Morph,
					row.POS, row.Phrase, row.Grm, row.NER, row.Semantic,
					row.InsertedAt.UTC().Format(time.RFC3339),
					row.UpdatedAt.UTC().Format(time.RFC3339))
			}
			sqlStr, args, err := ib.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, sqlStr, args...); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SnapshotRepo) ListByLanguage(ctx context.Context, language string, offset, limit int) ([]*domain.CorpusRow, error) {
	q := r.SQ.Select(
		"language", "entry_id", "sentence_index", "word_index",
		"word", "lemma", "links", "morph", "pos", "phrase",
		"grm", "ner", "semantic", "inserted_at", "updated_at").
		From("corpus").Where(sq.Eq{"language": language}).OrderBy("id")
	if offset > 0 {
		q = q.Offset(uint64(offset))
	}
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.CorpusRow
	for rows.Next() {
		var cr domain.CorpusRow
		var links, inserted, updated string
		if err := rows.Scan(
			&cr.Language, &cr.EntryID, &cr.SentenceIndex, &cr.WordIndex,
			&cr.Word, &cr.Lemma, &links, &cr.Morph, &cr.POS, &cr.Phrase,
			&cr.Grm, &cr.NER, &cr.Semantic, &inserted, &updated); err != nil {
			return nil, err
		}
		cr.Links = domain.ParseLinks(links)
		cr.InsertedAt, _ = time.Parse(time.RFC3339, inserted)
		cr.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
		out = append(out, &cr)
	}
	return out, rows.Err()
}

func (r *SnapshotRepo) CountByLanguage(ctx context.Context, language string) (int, error) {
	q := r.SQ.Select("COUNT(1)").From("corpus").Where(sq.Eq{"language": language})
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.DB.QueryRowContext(ctx, sqlStr, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *SnapshotRepo) AddFile(ctx context.Context, f domain.FileRecord) error {
	q := r.SQ.Insert("files").Columns("name", "base_name", "language", "inserted_at", "updated_at").
		Values(f.Name, f.BaseName, f.Language,
			f.InsertedAt.UTC().Format(time.RFC3339),
			f.UpdatedAt.UTC().Format(time.RFC3339))
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *SnapshotRepo) ListFiles(ctx context.Context) ([]domain.FileRecord, error) {
	q := r.SQ.Select("name", "base_name", "language", "inserted_at", "updated_at").
		From("files").OrderBy("id")
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.FileRecord
	for rows.Next() {
		var f domain.FileRecord
		var inserted, updated string
		if err := rows.Scan(&f.Name, &f.BaseName, &f.Language, &inserted, &updated); err != nil {
			return nil, err
		}
		f.InsertedAt, _ = time.Parse(time.RFC3339, inserted)
		f.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
		out = append(out, f)
	}
	return out, rows.Err()
}

// Clear drops all snapshot rows and file records.
func (r *SnapshotRepo) Clear(ctx context.Context) error {
	return WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM corpus`); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM files`)
		return err
	})
}
