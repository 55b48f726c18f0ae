// Package ingest provides batched bulk loading of documents.
//
// The Loader validates documents, groups them into batches, and writes
// each batch to the repository from a worker pool. Concurrency stays on
// the write path only; searching remains a single synchronous call.
package ingest
