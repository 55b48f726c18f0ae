package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated deterministically from document content.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs, which makes
// repeated imports of the same documents idempotent.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Document is a single searchable record.
//
// Searchable fields are addressed by dotted path, eg. "title", "body",
// or "metadata.category". See FieldValue.
type Document struct {
	Id         ID
	Title      string
	Body       string
	Metadata   map[string]string // Optional metadata (eg. "category", "source")
	InsertedAt time.Time         // When the document was inserted into the database
	UpdatedAt  time.Time         // When the document was last updated
}

// ContentKey returns the string hashed to produce content-based document IDs.
func (d *Document) ContentKey() string {
	return d.Title + "\x00" + d.Body
}

// ContentID returns the deterministic ID for this document's content.
func (d *Document) ContentID() ID {
	return IDFromContent(d.ContentKey())
}
