package cursor

import "github.com/dshills/quill/internal/engine/buffer"

type Edit = buffer.Edit

// TransformOffset maps offset across edit. Offsets at or after the end of
// the replaced span shift by the edit's delta, offsets before its start
// stay put, and offsets strictly inside it land after the new text. An
// insertion exactly at offset pushes it forward.
func TransformOffset(offset ByteOffset, edit Edit) ByteOffset {
	switch {
	case offset >= edit.Range.End:
		return offset + edit.Delta()
	case offset <= edit.Range.Start:
		return offset
	}
	return edit.Range.Start + ByteOffset(len(edit.NewText))
}

// TransformOffsetSticky is TransformOffset except that a sticky offset
// sitting on an insertion point stays in front of the inserted text.
func TransformOffsetSticky(offset ByteOffset, edit Edit, sticky bool) ByteOffset {
	if sticky && edit.Range.IsEmpty() && edit.Range.Start == offset {
		return offset
	}
	return TransformOffset(offset, edit)
}

// TransformSelection maps both ends of sel across edit.
func TransformSelection(sel Selection, edit Edit) Selection {
	return Selection{
		Anchor: TransformOffset(sel.Anchor, edit),
		Head:   TransformOffset(sel.Head, edit),
	}
}

// TransformOffsets maps offsets across edit and drops those whose byte
// was replaced. The input slice is reused.
func TransformOffsets(offsets []ByteOffset, edit Edit) []ByteOffset {
	out := offsets[:0]
	for _, off := range offsets {
		if edit.Range.Contains(off) {
			continue
		}
		out = append(out, TransformOffset(off, edit))
	}
	return out
}
