package repository

import (
	"context"

	"readapi/internal/model"
)

// DocumentRepository defines data access for document metadata. SQL only,
// no business logic.
type DocumentRepository interface {
	// Create inserts a new document record. The caller provides ID and
	// CreatedAt; the stored row is returned.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// List returns a page of documents plus the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Document], error)

	// Delete removes a document by ID. Missing rows are not an error.
	Delete(ctx context.Context, id string) error
}
