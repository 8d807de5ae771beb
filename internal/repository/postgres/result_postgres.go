package postgres

import (
	"context"
	"database/sql"

	"readapi/internal/model"
	"readapi/internal/repository"
)

// ResultPostgres is a PostgreSQL implementation of
// repository.ResultRepository.
type ResultPostgres struct {
	db *sql.DB
}

// NewResultPostgres creates a new ResultPostgres repository.
func NewResultPostgres(db *sql.DB) *ResultPostgres {
	return &ResultPostgres{db: db}
}

var _ repository.ResultRepository = (*ResultPostgres)(nil)

// Upsert inserts or replaces the readability record for a document.
func (r *ResultPostgres) Upsert(ctx context.Context, res *model.ReadabilityResult) (*model.ReadabilityResult, error) {
	const q = `
		INSERT INTO readability_results (document_id, title, sentences, polysyllables, smog, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (document_id) DO UPDATE
		SET title = EXCLUDED.title,
		    sentences = EXCLUDED.sentences,
		    polysyllables = EXCLUDED.polysyllables,
		    smog = EXCLUDED.smog,
		    analyzed_at = EXCLUDED.analyzed_at
		RETURNING document_id, title, sentences, polysyllables, smog, analyzed_at
	`
	row := r.db.QueryRowContext(ctx, q,
		res.DocumentID,
		res.Title,
		res.Sentences,
		res.Polysyllables,
		res.SMOG,
		res.AnalyzedAt,
	)
	var out model.ReadabilityResult
	if err := row.Scan(
		&out.DocumentID,
		&out.Title,
		&out.Sentences,
		&out.Polysyllables,
		&out.SMOG,
		&out.AnalyzedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByDocumentID fetches the readability record for a document.
func (r *ResultPostgres) FindByDocumentID(ctx context.Context, documentID string) (*model.ReadabilityResult, error) {
	const q = `
		SELECT document_id, title, sentences, polysyllables, smog, analyzed_at
		FROM readability_results
		WHERE document_id = $1
	`
	row := r.db.QueryRowContext(ctx, q, documentID)
	var res model.ReadabilityResult
	if err := row.Scan(
		&res.DocumentID,
		&res.Title,
		&res.Sentences,
		&res.Polysyllables,
		&res.SMOG,
		&res.AnalyzedAt,
	); err != nil {
		return nil, err
	}
	return &res, nil
}
