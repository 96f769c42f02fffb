package buffer

import "fmt"

// Edit replaces the bytes of Range with NewText. Insertions have an empty
// Range, deletions an empty NewText.
type Edit struct {
	Range   Range
	NewText string
}

// NewEdit returns an edit replacing r with text.
func NewEdit(r Range, text string) Edit {
	return Edit{Range: r, NewText: text}
}

// NewInsert returns an edit inserting text at offset.
func NewInsert(offset ByteOffset, text string) Edit {
	return NewEdit(Range{Start: offset, End: offset}, text)
}

// NewDelete returns an edit removing [start, end).
func NewDelete(start, end ByteOffset) Edit {
	return NewEdit(NewRange(start, end), "")
}

func (e Edit) String() string {
	switch {
	case e.Range.IsEmpty():
		return fmt.Sprintf("insert %q at %d", e.NewText, e.Range.Start)
	case e.NewText == "":
		return "delete " + e.Range.String()
	}
	return fmt.Sprintf("replace %s with %q", e.Range, e.NewText)
}

// IsNoOp reports whether applying e leaves any text unchanged.
func (e Edit) IsNoOp() bool {
	return e.Range.IsEmpty() && e.NewText == ""
}

// Delta is the change in text length e causes.
func (e Edit) Delta() ByteOffset {
	return ByteOffset(len(e.NewText)) - e.Range.Len()
}

// Apply returns text with e applied. The range is clamped to text.
func (e Edit) Apply(text string) string {
	r := e.Range.Clamp(ByteOffset(len(text)))
	return text[:r.Start] + e.NewText + text[r.End:]
}

// EditResult describes a replacement the buffer committed.
type EditResult struct {
	OldRange Range  // clamped span that was replaced
	NewRange Range  // span now holding NewText
	OldText  string
	NewText  string // after line ending normalization
	Delta    int64
}

// Edit returns the committed edit.
func (r EditResult) Edit() Edit {
	return Edit{Range: r.OldRange, NewText: r.NewText}
}
