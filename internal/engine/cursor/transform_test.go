package cursor

import (
	"testing"

	"github.com/dshills/quill/internal/engine/buffer"
)

func TestTransformOffset(t *testing.T) {
	tests := []struct {
		name   string
		offset ByteOffset
		edit   Edit
		want   ByteOffset
	}{
		{"insert before", 10, buffer.NewInsert(2, "abc"), 13},
		{"insert at offset", 10, buffer.NewInsert(10, "abc"), 13},
		{"insert after", 10, buffer.NewInsert(12, "abc"), 10},
		{"delete before", 10, buffer.NewDelete(2, 5), 7},
		{"delete spanning", 10, buffer.NewDelete(8, 12), 8},
		{"replace spanning", 10, buffer.NewEdit(buffer.NewRange(8, 12), "xy"), 10},
		{"delete after", 10, buffer.NewDelete(10, 12), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TransformOffset(tt.offset, tt.edit); got != tt.want {
				t.Errorf("TransformOffset(%d, %s) = %d, want %d", tt.offset, tt.edit, got, tt.want)
			}
		})
	}
}

func TestTransformOffsetSticky(t *testing.T) {
	edit := buffer.NewInsert(4, "xx")
	if got := TransformOffsetSticky(4, edit, true); got != 4 {
		t.Errorf("sticky offset moved to %d", got)
	}
	if got := TransformOffsetSticky(4, edit, false); got != 6 {
		t.Errorf("non-sticky offset = %d, want 6", got)
	}
}

func TestTransformSelection(t *testing.T) {
	sel := NewSelection(10, 4)
	got := TransformSelection(sel, buffer.NewInsert(0, "ab"))
	if got.Anchor != 12 || got.Head != 6 {
		t.Errorf("expected Selection(12←6), got %s", got)
	}
}

func TestTransformOffsetsDropsDeleted(t *testing.T) {
	offsets := []ByteOffset{1, 5, 9}

	got := TransformOffsets(offsets, buffer.NewDelete(4, 6))
	if len(got) != 2 || got[0] != 1 || got[1] != 7 {
		t.Errorf("expected [1 7], got %v", got)
	}

	got = TransformOffsets(got, buffer.NewInsert(7, "z"))
	if len(got) != 2 || got[1] != 8 {
		t.Errorf("insert at offset should push it, got %v", got)
	}
}
