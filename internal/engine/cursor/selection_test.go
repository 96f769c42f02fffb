package cursor

import "testing"

func TestSelectionBounds(t *testing.T) {
	tests := []struct {
		name        string
		sel         Selection
		start, end  ByteOffset
		orientation Orientation
		empty       bool
	}{
		{"cursor", NewCursorSelection(5), 5, 5, CursorAtEnd, true},
		{"forward", NewSelection(2, 9), 2, 9, CursorAtEnd, false},
		{"backward", NewSelection(9, 2), 2, 9, CursorAtStart, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.sel.Start() != tt.start || tt.sel.End() != tt.end {
				t.Errorf("expected [%d, %d], got [%d, %d]", tt.start, tt.end, tt.sel.Start(), tt.sel.End())
			}
			if tt.sel.Orientation() != tt.orientation {
				t.Errorf("expected %s, got %s", tt.orientation, tt.sel.Orientation())
			}
			if tt.sel.IsEmpty() != tt.empty {
				t.Errorf("IsEmpty = %v, want %v", tt.sel.IsEmpty(), tt.empty)
			}
			if tt.sel.Len() != tt.end-tt.start {
				t.Errorf("Len = %d, want %d", tt.sel.Len(), tt.end-tt.start)
			}
		})
	}
}

func TestOrientedPreservesDirection(t *testing.T) {
	back := NewSelection(10, 4)
	got := Oriented(6, 14, back.Orientation())
	if got.Anchor != 14 || got.Head != 6 {
		t.Errorf("expected Selection(14←6), got %s", got)
	}

	fwd := NewSelection(4, 10)
	got = Oriented(6, 14, fwd.Orientation())
	if got.Anchor != 6 || got.Head != 14 {
		t.Errorf("expected Selection(6→14), got %s", got)
	}

	got = Oriented(14, 6, CursorAtEnd)
	if got.Start() != 6 || got.End() != 14 || got.Head != 14 {
		t.Errorf("reversed bounds should be swapped, got %s", got)
	}
}

func TestSelectionClamp(t *testing.T) {
	sel := NewSelection(-3, 50).Clamp(20)
	if sel.Anchor != 0 || sel.Head != 20 {
		t.Errorf("expected Selection(0→20), got %s", sel)
	}
}

func TestSelectionContains(t *testing.T) {
	sel := NewSelection(8, 3)
	if !sel.Contains(3) || !sel.Contains(7) {
		t.Error("expected 3 and 7 inside selection")
	}
	if sel.Contains(8) {
		t.Error("end offset is exclusive")
	}
	if NewCursorSelection(4).Contains(4) {
		t.Error("cursor contains nothing")
	}
}

func TestSelectionString(t *testing.T) {
	if got := NewCursorSelection(3).String(); got != "Cursor(3)" {
		t.Errorf("got %q", got)
	}
	if got := NewSelection(5, 1).String(); got != "Selection(5←1)" {
		t.Errorf("got %q", got)
	}
}
