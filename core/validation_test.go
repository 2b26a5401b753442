package core

import (
	"errors"
	"testing"
)

func TestValidateResourceEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   *ResourceEntry
		wantErr error
	}{
		{
			name: "valid entry",
			entry: &ResourceEntry{
				Name: "Westlaw Edge",
				Type: TypeExternalDatabase,
			},
			wantErr: nil,
		},
		{
			name: "valid entry without classification",
			entry: &ResourceEntry{
				Name: "Nolo",
			},
			wantErr: nil,
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantErr: ErrInvalidResource,
		},
		{
			name: "empty name",
			entry: &ResourceEntry{
				Name: "",
				Type: TypeLocalGuide,
			},
			wantErr: ErrEmptyResourceName,
		},
		{
			name: "name normalizes to nothing",
			entry: &ResourceEntry{
				Name: "™®!",
				Type: TypeLocalGuide,
			},
			wantErr: ErrEmptyResourceName,
		},
		{
			name: "unrecognized tag",
			entry: &ResourceEntry{
				Name: "Westlaw Edge",
				Type: TypeTag(42),
			},
			wantErr: ErrInvalidTypeTag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResourceEntry(tt.entry)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateResourceEntry() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateResourceEntry() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClampRelevance(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{60, 60},
		{100, 100},
		{250, 100},
	}

	for _, tt := range tests {
		if got := ClampRelevance(tt.in); got != tt.want {
			t.Errorf("ClampRelevance(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
