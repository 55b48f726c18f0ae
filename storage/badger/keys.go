package badger

import (
	"fmt"

	"github.com/leon-matthews/tinysearch/core"
)

// Key prefixes for different data types
const (
	documentPrefix = "docrec"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPrefix, id))
}

// documentKeyPrefix returns the iteration prefix covering all documents.
func documentKeyPrefix() []byte {
	return []byte(documentPrefix + ":")
}
