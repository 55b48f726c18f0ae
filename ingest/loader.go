package ingest

import (
	"context"
	"iter"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/leon-matthews/tinysearch/core"
	"github.com/leon-matthews/tinysearch/storage"
)

const defaultBatchSize = 50

// Loader performs batched, concurrent bulk imports of documents.
type Loader struct {
	documents storage.DocumentRepository
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader) error

// WithPoolSize sets the worker pool size for concurrent batch writes.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}

		if l.pool != nil {
			l.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		l.pool = pool
		return nil
	}
}

// WithBatchSize sets the number of documents written per batch.
// Default is 50.
func WithBatchSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}
		l.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a new bulk loader over the given repository.
func NewLoader(documents storage.DocumentRepository, opts ...Option) (*Loader, error) {
	if documents == nil {
		return nil, ErrRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		documents: documents,
		pool:      pool,
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(l); optErr != nil {
			l.Release()
			return nil, optErr
		}
	}

	return l, nil
}

// Load validates and stores every document from the source iterator.
//
// Documents are written in batches from the worker pool. Returns the
// number of documents queued for writing and the first error encountered;
// a validation failure stops the load before the bad document is queued.
func (l *Loader) Load(ctx context.Context, source iter.Seq[*core.Document]) (int, error) {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	setErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	submit := func(batch []*core.Document) {
		wg.Add(1)
		err := l.pool.Submit(func() {
			defer wg.Done()
			if _, err := l.documents.AddDocuments(ctx, batch...); err != nil {
				l.logger.Error("error writing document batch", "count", len(batch), "err", err)
				setErr(err)
			}
		})
		if err != nil {
			wg.Done()
			setErr(err)
		}
	}

	count := 0
	batch := make([]*core.Document, 0, l.batchSize)
	for doc := range source {
		if err := core.ValidateDocument(doc); err != nil {
			setErr(err)
			break
		}

		batch = append(batch, doc)
		count++
		if len(batch) == l.batchSize {
			submit(batch)
			batch = make([]*core.Document, 0, l.batchSize)
		}
	}

	if len(batch) > 0 {
		submit(batch)
	}

	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if firstErr != nil {
		return count, firstErr
	}
	return count, nil
}

// Release releases the worker pool.
// The loader should not be used after calling Release.
func (l *Loader) Release() {
	if l.pool != nil {
		l.pool.Release()
	}
}
