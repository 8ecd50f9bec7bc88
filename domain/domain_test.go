package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewCategory(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		wantErr error
	}{
		{name: "placeholder id", id: 0},
		{name: "assigned id", id: 7},
		{name: "negative id", id: -1, wantErr: ErrNegativeID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCategory(tt.id, "Books")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && (c.ID != tt.id || c.Name != "Books") {
				t.Fatalf("unexpected category %+v", c)
			}
		})
	}
}

func TestNewItemRejectsNegativeID(t *testing.T) {
	if _, err := NewItem(-5, "Pen", nil); !errors.Is(err, ErrNegativeID) {
		t.Fatalf("expected ErrNegativeID, got %v", err)
	}
}

func TestUniqueCategoryIDs(t *testing.T) {
	tests := []struct {
		name string
		in   []int64
		want []int64
	}{
		{name: "nil", in: nil, want: []int64{}},
		{name: "empty", in: []int64{}, want: []int64{}},
		{name: "duplicates", in: []int64{1, 1, 2, 2}, want: []int64{1, 2}},
		{name: "keeps order", in: []int64{3, 1, 3, 2}, want: []int64{3, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &Item{CategoryIDs: tt.in}
			got := item.UniqueCategoryIDs()
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
