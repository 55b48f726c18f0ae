package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateDocument(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name    string
		doc     *Document
		wantErr error
	}{
		{
			name: "valid document",
			doc: &Document{
				Title:      "Apple",
				Body:       "An apple is greater than a banana!",
				InsertedAt: now,
				UpdatedAt:  now,
			},
			wantErr: nil,
		},
		{
			name:    "valid without timestamps",
			doc:     &Document{Body: "Body only."},
			wantErr: nil,
		},
		{
			name:    "nil document",
			doc:     nil,
			wantErr: ErrInvalidDocument,
		},
		{
			name:    "empty body",
			doc:     &Document{Title: "Apple"},
			wantErr: ErrEmptyBody,
		},
		{
			name: "future timestamp",
			doc: &Document{
				Body:       "A fruit.",
				InsertedAt: now.Add(time.Hour),
			},
			wantErr: ErrInvalidTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.doc)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDocument() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDocument() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsValidTimestamp(t *testing.T) {
	if !IsValidTimestamp(time.Now().Add(-time.Minute)) {
		t.Errorf("IsValidTimestamp() rejected a past timestamp")
	}
	if IsValidTimestamp(time.Now().Add(time.Minute)) {
		t.Errorf("IsValidTimestamp() accepted a future timestamp")
	}
}
