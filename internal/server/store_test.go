package server

import (
	"testing"

	"github.com/ironsheep/image-select-mcp/internal/selection"
)

func TestSelectionStore_GetReturnsCopy(t *testing.T) {
	st := newSelectionStore()
	m := selection.NewMask(4, 4)
	m.Set(1, 1, 1)
	st.Put("a.png", m)

	m.Set(2, 2, 1)
	got, ok := st.Get("a.png")
	if !ok {
		t.Fatal("stored selection not found")
	}
	if got.At(2, 2) != 0 {
		t.Error("Put should store a copy")
	}

	got.Set(3, 3, 1)
	again, _ := st.Get("a.png")
	if again.At(3, 3) != 0 {
		t.Error("Get should return a copy")
	}
}

func TestSelectionStore_Combine(t *testing.T) {
	left := selection.NewMask(4, 1)
	left.Set(0, 0, 1)
	left.Set(1, 0, 1)
	right := selection.NewMask(4, 1)
	right.Set(1, 0, 1)
	right.Set(2, 0, 1)

	tests := []struct {
		name   string
		stored *selection.Mask
		op     selection.Operation
		want   int
	}{
		{"replace", left, selection.Replace, 2},
		{"add", left, selection.Add, 3},
		{"subtract", left, selection.Subtract, 1},
		{"intersect", left, selection.Intersect, 1},
		{"add without stored", nil, selection.Add, 2},
		{"subtract without stored", nil, selection.Subtract, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newSelectionStore()
			if tt.stored != nil {
				st.Put("a.png", tt.stored)
			}
			got, err := st.Combine("a.png", right, tt.op)
			if err != nil {
				t.Fatalf("Combine failed: %v", err)
			}
			if n := got.Stats().SelectedPixels; n != tt.want {
				t.Errorf("selected %d, want %d", n, tt.want)
			}
			stored, _ := st.Get("a.png")
			if stored.Stats().SelectedPixels != tt.want {
				t.Error("combined mask was not stored")
			}
		})
	}
}

func TestSelectionStore_CombineSizeMismatch(t *testing.T) {
	st := newSelectionStore()
	st.Put("a.png", selection.NewMask(4, 4))

	if _, err := st.Combine("a.png", selection.NewMask(2, 2), selection.Add); err == nil {
		t.Error("expected error for mismatched mask size")
	}
	// Replace ignores the stored mask.
	if _, err := st.Combine("a.png", selection.NewMask(2, 2), selection.Replace); err != nil {
		t.Errorf("replace with new size failed: %v", err)
	}
}

func TestSelectionStore_Delete(t *testing.T) {
	st := newSelectionStore()
	st.Put("a.png", selection.NewMask(1, 1))

	if !st.Delete("a.png") {
		t.Error("Delete should report an existing selection")
	}
	if st.Delete("a.png") {
		t.Error("second Delete should report nothing removed")
	}
	if st.Len() != 0 {
		t.Errorf("Len: got %d, want 0", st.Len())
	}
}
