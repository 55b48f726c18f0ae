package core

import (
	"errors"
	"testing"
)

func TestFieldValue_Struct(t *testing.T) {
	doc := &Document{
		Id:    ID(42),
		Title: "Apple",
		Body:  "The most boring of fruit.",
	}

	tests := []struct {
		name string
		path string
		want any
	}{
		{"title", "title", "Apple"},
		{"body", "body", "The most boring of fruit."},
		{"id", "id", ID(42)},
		{"case insensitive", "Title", "Apple"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FieldValue(doc, tt.path)
			if err != nil {
				t.Fatalf("FieldValue(%q) returned error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("FieldValue(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFieldValue_DottedPath(t *testing.T) {
	doc := &Document{
		Title:    "Apple",
		Body:     "A fruit.",
		Metadata: map[string]string{"category": "produce"},
	}

	got, err := FieldValue(doc, "metadata.category")
	if err != nil {
		t.Fatalf("FieldValue() returned error: %v", err)
	}
	if got != "produce" {
		t.Errorf("FieldValue() = %v, want %q", got, "produce")
	}

	// Missing metadata keys read as the zero value, not an error.
	got, err = FieldValue(doc, "metadata.colour")
	if err != nil {
		t.Fatalf("FieldValue() returned error for missing key: %v", err)
	}
	if got != "" {
		t.Errorf("FieldValue() = %v, want empty string", got)
	}
}

func TestFieldValue_Errors(t *testing.T) {
	doc := &Document{Title: "Apple", Body: "A fruit."}

	tests := []struct {
		name string
		v    any
		path string
		want error
	}{
		{"unknown field", doc, "nope", ErrFieldNotFound},
		{"path through scalar", doc, "title.length", ErrFieldUnreachable},
		{"nil value", (*Document)(nil), "title", ErrFieldUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FieldValue(tt.v, tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("FieldValue(%q) error = %v, want %v", tt.path, err, tt.want)
			}
		})
	}
}

func TestFieldString(t *testing.T) {
	doc := &Document{Id: ID(7), Title: "Apple", Body: "A fruit."}

	got, err := FieldString(doc, "id")
	if err != nil {
		t.Fatalf("FieldString() returned error: %v", err)
	}
	if got != "7" {
		t.Errorf("FieldString() = %q, want %q", got, "7")
	}
}
