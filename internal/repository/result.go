package repository

import (
	"context"

	"readapi/internal/model"
)

// ResultRepository stores per-document readability records. A document has
// at most one current record; re-analysis replaces it.
type ResultRepository interface {
	// Upsert inserts the record or replaces the existing one for the same
	// document, returning the stored row.
	Upsert(ctx context.Context, res *model.ReadabilityResult) (*model.ReadabilityResult, error)

	// FindByDocumentID returns the record for a document.
	FindByDocumentID(ctx context.Context, documentID string) (*model.ReadabilityResult, error)
}
