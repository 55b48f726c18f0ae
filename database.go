// Copyright 2026 Leon Matthews
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package tinysearch is a brute-force text search library for small
// document collections, backed by an embedded key-value store.
package tinysearch

import (
	"log/slog"

	"github.com/leon-matthews/tinysearch/ingest"
	"github.com/leon-matthews/tinysearch/search"
	"github.com/leon-matthews/tinysearch/storage"
	"github.com/leon-matthews/tinysearch/storage/badger"
)

// Database bundles a storage backend with the repositories and factories
// built on top of it.
type Database struct {
	backend   *badger.Backend
	documents storage.DocumentRepository
	logger    *slog.Logger
}

// NewDatabase opens (or creates) a document database at the given path.
func NewDatabase(filePath string) (*Database, error) {
	return newDatabase(filePath, false)
}

// NewMemoryDatabase creates a transient in-memory document database,
// useful for tests and experiments.
func NewMemoryDatabase() (*Database, error) {
	return newDatabase("", true)
}

func newDatabase(filePath string, inMemory bool) (*Database, error) {
	backend, err := badger.OpenBackend(filePath, inMemory)
	if err != nil {
		return nil, err
	}

	return &Database{
		backend:   backend,
		documents: badger.NewDocumentRepository(backend),
		logger:    slog.Default(),
	}, nil
}

// Close closes the underlying storage.
func (db *Database) Close() error {
	if err := db.documents.Close(); err != nil {
		db.logger.Error("error closing document repository", "err", err)
		return err
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Documents returns the document repository.
func (db *Database) Documents() storage.DocumentRepository {
	return db.documents
}

// NewSearcher creates a searcher over this database's documents.
func (db *Database) NewSearcher(weights search.FieldWeights, opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db.documents, weights, opts...)
}

// NewLoader creates a bulk document loader for this database.
func (db *Database) NewLoader(opts ...ingest.Option) (*ingest.Loader, error) {
	return ingest.NewLoader(db.documents, opts...)
}
