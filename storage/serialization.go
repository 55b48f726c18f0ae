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


package storage

import (
	"fmt"
	"sort"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/leon-matthews/tinysearch/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	v, _, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return core.ID(v), nil
}

// MarshalDocument serializes a Document to bytes.
//
// Metadata keys are written in sorted order so that identical documents
// always produce identical bytes.
func MarshalDocument(doc *core.Document) []byte {
	buf := make([]byte, sizeDocument(doc))
	n := varint.Uint64.Marshal(uint64(doc.Id), buf)
	n += ord.String.Marshal(doc.Title, buf[n:])
	n += ord.String.Marshal(doc.Body, buf[n:])

	keys := sortedKeys(doc.Metadata)
	n += varint.Int.Marshal(len(keys), buf[n:])
	for _, key := range keys {
		n += ord.String.Marshal(key, buf[n:])
		n += ord.String.Marshal(doc.Metadata[key], buf[n:])
	}

	n += varint.Int64.Marshal(doc.InsertedAt.UnixMicro(), buf[n:])
	varint.Int64.Marshal(doc.UpdatedAt.UnixMicro(), buf[n:])
	return buf
}

// UnmarshalDocument deserializes a Document from bytes.
func UnmarshalDocument(data []byte) (doc *core.Document, err error) {
	defer func() {
		if err != nil {
			doc, err = nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
		}
	}()

	doc = &core.Document{}
	id, n, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	doc.Id = core.ID(id)

	var m int
	doc.Title, m, err = ord.String.Unmarshal(data[n:])
	n += m
	if err != nil {
		return nil, err
	}
	doc.Body, m, err = ord.String.Unmarshal(data[n:])
	n += m
	if err != nil {
		return nil, err
	}

	count, m, err := varint.Int.Unmarshal(data[n:])
	n += m
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("negative metadata count %d", count)
	}
	if count > 0 {
		doc.Metadata = make(map[string]string, count)
		for i := 0; i < count; i++ {
			var key, value string
			key, m, err = ord.String.Unmarshal(data[n:])
			n += m
			if err != nil {
				return nil, err
			}
			value, m, err = ord.String.Unmarshal(data[n:])
			n += m
			if err != nil {
				return nil, err
			}
			doc.Metadata[key] = value
		}
	}

	inserted, m, err := varint.Int64.Unmarshal(data[n:])
	n += m
	if err != nil {
		return nil, err
	}
	updated, _, err := varint.Int64.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	doc.InsertedAt = time.UnixMicro(inserted).UTC()
	doc.UpdatedAt = time.UnixMicro(updated).UTC()
	return doc, nil
}

// sizeDocument returns the marshalled size of a document in bytes.
func sizeDocument(doc *core.Document) int {
	size := varint.Uint64.Size(uint64(doc.Id))
	size += ord.String.Size(doc.Title)
	size += ord.String.Size(doc.Body)
	size += varint.Int.Size(len(doc.Metadata))
	for key, value := range doc.Metadata {
		size += ord.String.Size(key)
		size += ord.String.Size(value)
	}
	size += varint.Int64.Size(doc.InsertedAt.UnixMicro())
	size += varint.Int64.Size(doc.UpdatedAt.UnixMicro())
	return size
}

// sortedKeys returns map keys in ascending order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
