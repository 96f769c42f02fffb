package cursor

import (
	"fmt"

	"github.com/dshills/quill/internal/engine/buffer"
)

type (
	ByteOffset = buffer.ByteOffset
	Range      = buffer.Range
)

// Orientation records which bound of a selection the head sits on.
type Orientation uint8

const (
	// CursorAtEnd: anchor <= head. Typing continues at End.
	CursorAtEnd Orientation = iota
	// CursorAtStart: head < anchor. Typing continues at Start.
	CursorAtStart
)

func (o Orientation) String() string {
	if o == CursorAtStart {
		return "cursor-at-start"
	}
	return "cursor-at-end"
}

// Selection is the span between a fixed Anchor and a moving Head. A
// collapsed selection (Anchor == Head) is a plain cursor.
type Selection struct {
	Anchor ByteOffset
	Head   ByteOffset
}

// NewSelection returns the selection dragged from anchor to head.
func NewSelection(anchor, head ByteOffset) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// NewCursorSelection returns a collapsed selection at offset.
func NewCursorSelection(offset ByteOffset) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// Oriented rebuilds a selection over [start, end] with its head on the
// bound o names. Reversed bounds are swapped first.
func Oriented(start, end ByteOffset, o Orientation) Selection {
	r := buffer.NewRange(start, end)
	if o == CursorAtStart {
		return Selection{Anchor: r.End, Head: r.Start}
	}
	return Selection{Anchor: r.Start, Head: r.End}
}

func (s Selection) IsEmpty() bool { return s.Anchor == s.Head }

func (s Selection) Start() ByteOffset { return min(s.Anchor, s.Head) }

func (s Selection) End() ByteOffset { return max(s.Anchor, s.Head) }

func (s Selection) Len() ByteOffset { return s.End() - s.Start() }

// Range returns the selected span.
func (s Selection) Range() Range { return buffer.NewRange(s.Anchor, s.Head) }

// Cursor is where typing happens.
func (s Selection) Cursor() ByteOffset { return s.Head }

// Orientation reports which bound the head is on. Collapsed selections
// are CursorAtEnd.
func (s Selection) Orientation() Orientation {
	if s.Head < s.Anchor {
		return CursorAtStart
	}
	return CursorAtEnd
}

// Extend moves the head to offset, keeping the anchor.
func (s Selection) Extend(offset ByteOffset) Selection {
	s.Head = offset
	return s
}

// MoveTo collapses the selection onto offset.
func (s Selection) MoveTo(offset ByteOffset) Selection {
	return NewCursorSelection(offset)
}

// Contains reports whether offset is selected. The end bound is excluded,
// so a cursor contains nothing.
func (s Selection) Contains(offset ByteOffset) bool {
	return s.Range().Contains(offset)
}

// Clamp limits both ends to [0, n].
func (s Selection) Clamp(n ByteOffset) Selection {
	r := Range{Start: s.Anchor, End: s.Head}.Clamp(n)
	return Selection{Anchor: r.Start, Head: r.End}
}

func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor(%d)", s.Head)
	}
	arrow := "→"
	if s.Orientation() == CursorAtStart {
		arrow = "←"
	}
	return fmt.Sprintf("Selection(%d%s%d)", s.Anchor, arrow, s.Head)
}
