package storage

import (
	"context"

	"github.com/leon-matthews/tinysearch/core"
)

// Repository provides common storage operations shared by all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// DocumentRepository provides operations for managing searchable documents.
type DocumentRepository interface {
	Repository

	// AddDocuments adds one or more documents to storage.
	// Documents with ID=0 are assigned a content-based ID, making the
	// operation idempotent: re-adding identical content overwrites the
	// existing record but preserves its InsertedAt timestamp.
	// Returns the documents with IDs and timestamps populated.
	AddDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// UpdateDocuments updates existing documents.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any document doesn't exist.
	UpdateDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// DeleteDocuments removes documents by their IDs.
	// Returns ErrNotFound if any document doesn't exist.
	DeleteDocuments(ctx context.Context, ids ...core.ID) error

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.Document, error)

	// GetDocuments retrieves multiple documents by their IDs.
	// Returns only the documents that exist (no error for missing documents).
	GetDocuments(ctx context.Context, ids ...core.ID) ([]*core.Document, error)

	// GetRecentDocuments retrieves the N most recently updated documents.
	// Returns up to limit documents, most recent first.
	GetRecentDocuments(ctx context.Context, limit int) ([]*core.Document, error)

	// CountDocuments returns the number of documents in storage.
	CountDocuments(ctx context.Context) (int, error)

	// FindContaining retrieves documents whose named fields loosely match
	// at least one token: a case-insensitive substring test of every token
	// against every field path. Each matching document is returned exactly
	// once, regardless of how many fields or tokens matched.
	// An empty token list returns no documents without scanning storage.
	FindContaining(ctx context.Context, fields []string, tokens []string) ([]*core.Document, error)
}
