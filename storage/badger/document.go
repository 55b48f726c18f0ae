package badger

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/leon-matthews/tinysearch/core"
	"github.com/leon-matthews/tinysearch/storage"
)

// DocumentRepository implements storage.DocumentRepository for BadgerDB.
//
// Lookups that cannot use the primary key walk every document. That is the
// backend's version of a database LIKE query, and puts the same ceiling on
// collection size as the search engine itself: hundreds to low-thousands
// of documents.
type DocumentRepository struct {
	backend *Backend
}

var _ storage.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(backend *Backend) *DocumentRepository {
	return &DocumentRepository{backend: backend}
}

// Close releases repository resources. The backend itself is closed by
// its owner.
func (r *DocumentRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *DocumentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddDocuments adds one or more documents to storage.
//
// Documents with ID=0 are assigned the content-based ID of their title and
// body, so adding identical content twice writes a single record. The
// original InsertedAt timestamp survives such overwrites.
func (r *DocumentRepository) AddDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Truncate to the precision stored on disk so timestamps survive
		// a round trip unchanged.
		now := time.Now().UTC().Truncate(time.Microsecond)
		for _, doc := range docs {
			if doc.Id == 0 {
				doc.Id = doc.ContentID()
			}

			key := makeDocumentKey(doc.Id)
			existing, err := r.readDocument(tx, key)
			if err != nil {
				return err
			}

			doc.InsertedAt = now
			if existing != nil {
				doc.InsertedAt = existing.InsertedAt
			}
			doc.UpdatedAt = now

			if err := tx.Set(key, storage.MarshalDocument(doc)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return docs, err
}

// UpdateDocuments updates existing documents.
func (r *DocumentRepository) UpdateDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, doc := range docs {
			key := makeDocumentKey(doc.Id)

			old, err := r.readDocument(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			doc.InsertedAt = old.InsertedAt
			doc.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

			if err := tx.Set(key, storage.MarshalDocument(doc)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return docs, err
}

// DeleteDocuments removes documents by their IDs.
func (r *DocumentRepository) DeleteDocuments(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeDocumentKey(id)

			doc, err := r.readDocument(tx, key)
			if err != nil {
				return err
			}
			if doc == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetDocument retrieves a single document by ID.
func (r *DocumentRepository) GetDocument(ctx context.Context, id core.ID) (*core.Document, error) {
	var doc *core.Document
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		doc, err = r.readDocument(tx, makeDocumentKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, storage.ErrNotFound
	}
	return doc, nil
}

// GetDocuments retrieves multiple documents by their IDs.
// Missing documents are skipped without error.
func (r *DocumentRepository) GetDocuments(ctx context.Context, ids ...core.ID) ([]*core.Document, error) {
	docs := make([]*core.Document, 0, len(ids))
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			doc, err := r.readDocument(tx, makeDocumentKey(id))
			if err != nil {
				return err
			}
			if doc != nil {
				docs = append(docs, doc)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// GetRecentDocuments retrieves the N most recently updated documents.
func (r *DocumentRepository) GetRecentDocuments(ctx context.Context, limit int) ([]*core.Document, error) {
	if limit < 0 {
		return nil, storage.ErrInvalidQuery
	}

	var docs []*core.Document
	err := r.scanDocuments(func(doc *core.Document) error {
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(docs, func(a, b *core.Document) int {
		if cmp := b.UpdatedAt.Compare(a.UpdatedAt); cmp != 0 {
			return cmp
		}
		if a.Id < b.Id {
			return -1
		}
		if a.Id > b.Id {
			return 1
		}
		return 0
	})

	if len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

// CountDocuments returns the number of documents in storage.
func (r *DocumentRepository) CountDocuments(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = documentKeyPrefix()
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// FindContaining retrieves documents whose named fields loosely match at
// least one token.
//
// Every document is unmarshalled and every token substring-tested against
// every field, case-insensitively. A document is returned at most once no
// matter how many fields or tokens matched. An empty token or field list
// returns no documents without touching storage.
func (r *DocumentRepository) FindContaining(ctx context.Context, fields []string, tokens []string) ([]*core.Document, error) {
	matches := []*core.Document{}
	if len(fields) == 0 || len(tokens) == 0 {
		return matches, nil
	}

	lowered := make([]string, len(tokens))
	for i, token := range tokens {
		lowered[i] = strings.ToLower(token)
	}

	err := r.scanDocuments(func(doc *core.Document) error {
		for _, field := range fields {
			value, err := core.FieldString(doc, field)
			if err != nil {
				return err
			}
			value = strings.ToLower(value)
			for _, token := range lowered {
				if strings.Contains(value, token) {
					matches = append(matches, doc)
					return nil
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// scanDocuments walks every document record, invoking fn for each.
func (r *DocumentRepository) scanDocuments(fn func(doc *core.Document) error) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = documentKeyPrefix()
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()

			var doc *core.Document
			err := item.Value(func(val []byte) error {
				var err error
				doc, err = storage.UnmarshalDocument(val)
				return err
			})
			if err != nil {
				return err
			}
			if doc == nil {
				continue
			}

			if err := fn(doc); err != nil {
				return err
			}
		}
		return nil
	}, false)
}

// readDocument reads a document by key within a transaction.
// Returns nil (and no error) if the key does not exist.
func (r *DocumentRepository) readDocument(tx *badger.Txn, key []byte) (*core.Document, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var doc *core.Document
	err = item.Value(func(val []byte) error {
		var err error
		doc, err = storage.UnmarshalDocument(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}
