package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leon-matthews/tinysearch/core"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("test content")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestMarshalUnmarshalDocument(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name string
		doc  *core.Document
	}{
		{
			name: "minimal document",
			doc: &core.Document{
				Id:         core.ID(1),
				Title:      "Apple",
				Body:       "An apple is greater than a banana!",
				InsertedAt: now,
				UpdatedAt:  now,
			},
		},
		{
			name: "document with metadata",
			doc: &core.Document{
				Id:    core.ID(2),
				Title: "Banana",
				Body:  "An banana is better than an apple!",
				Metadata: map[string]string{
					"category": "produce",
					"source":   "import",
				},
				InsertedAt: now,
				UpdatedAt:  now.Add(time.Minute),
			},
		},
		{
			name: "unicode content",
			doc: &core.Document{
				Id:         core.ID(3),
				Title:      "Egg Plant",
				Body:       "串 句 is not another name for aubergines.",
				InsertedAt: now,
				UpdatedAt:  now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalDocument(tt.doc)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalDocument(data)
			require.NoError(t, err)
			assert.Equal(t, tt.doc, decoded)
		})
	}
}

func TestMarshalDocument_Deterministic(t *testing.T) {
	doc := &core.Document{
		Id:    core.ID(9),
		Title: "Carrot",
		Body:  "Does anybody still think carrots are sweet?",
		Metadata: map[string]string{
			"a": "1", "b": "2", "c": "3", "d": "4", "e": "5",
		},
	}

	first := MarshalDocument(doc)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, MarshalDocument(doc))
	}
}

func TestUnmarshalDocument_Truncated(t *testing.T) {
	doc := &core.Document{
		Id:    core.ID(4),
		Title: "Durian",
		Body:  "I have always been too scared to eat it.",
	}
	data := MarshalDocument(doc)

	for _, cut := range []int{0, 1, len(data) / 2, len(data) - 1} {
		_, err := UnmarshalDocument(data[:cut])
		assert.ErrorIs(t, err, ErrSerializationFailed, "cut at %d", cut)
	}
}
