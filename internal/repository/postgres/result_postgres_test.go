package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"readapi/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestResultPostgres_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewResultPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	rec := &model.ReadabilityResult{
		DocumentID:    "doc-1",
		Title:         "walden",
		Sentences:     120,
		Polysyllables: 90,
		SMOG:          8.42,
		AnalyzedAt:    now,
	}

	t.Run("insert", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"document_id", "title", "sentences", "polysyllables", "smog", "analyzed_at"}).
			AddRow(rec.DocumentID, rec.Title, rec.Sentences, rec.Polysyllables, rec.SMOG, rec.AnalyzedAt)

		mock.ExpectQuery("INSERT INTO readability_results").
			WithArgs(rec.DocumentID, rec.Title, rec.Sentences, rec.Polysyllables, rec.SMOG, rec.AnalyzedAt).
			WillReturnRows(rows)

		result, err := repo.Upsert(ctx, rec)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, rec.DocumentID, result.DocumentID)
		assert.InDelta(t, rec.SMOG, result.SMOG, 1e-9)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflict replaces the record", func(t *testing.T) {
		updated := *rec
		updated.Sentences = 121
		updated.SMOG = 8.5

		rows := sqlmock.NewRows([]string{"document_id", "title", "sentences", "polysyllables", "smog", "analyzed_at"}).
			AddRow(updated.DocumentID, updated.Title, updated.Sentences, updated.Polysyllables, updated.SMOG, updated.AnalyzedAt)

		mock.ExpectQuery("INSERT INTO readability_results").
			WithArgs(updated.DocumentID, updated.Title, updated.Sentences, updated.Polysyllables, updated.SMOG, updated.AnalyzedAt).
			WillReturnRows(rows)

		result, err := repo.Upsert(ctx, &updated)

		assert.NoError(t, err)
		assert.Equal(t, 121, result.Sentences)
	})
}

func TestResultPostgres_FindByDocumentID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewResultPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"document_id", "title", "sentences", "polysyllables", "smog", "analyzed_at"}).
			AddRow("doc-1", "walden", 120, 90, 8.42, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM readability_results WHERE document_id = ?").
			WithArgs("doc-1").
			WillReturnRows(rows)

		res, err := repo.FindByDocumentID(ctx, "doc-1")

		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Equal(t, 120, res.Sentences)
		assert.Equal(t, 90, res.Polysyllables)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM readability_results WHERE document_id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		res, err := repo.FindByDocumentID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, res)
	})
}
