package transform

import (
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/cursor"
)

// SwapLinesUp exchanges the lines the selection touches with the line above
// them. The selection moves with the lines. Refused on the first line.
func SwapLinesUp(doc Document, sel cursor.Selection) (Result, bool) {
	sel = clampSelection(doc, sel)
	span := spanOf(doc, sel)
	if span.first == 0 {
		return Result{}, false
	}

	above := doc.LineText(span.first - 1)
	block := doc.TextRange(span.start, span.end)
	shift := ByteOffset(len(above)) + 1

	return Result{
		Edit: buffer.NewEdit(
			buffer.NewRange(doc.LineStartOffset(span.first-1), span.end),
			block+"\n"+above,
		),
		Selection: cursor.Oriented(sel.Start()-shift, sel.End()-shift, sel.Orientation()),
	}, true
}

// SwapLinesDown exchanges the lines the selection touches with the line
// below them. The selection moves with the lines. Refused on the last line.
func SwapLinesDown(doc Document, sel cursor.Selection) (Result, bool) {
	sel = clampSelection(doc, sel)
	span := spanOf(doc, sel)
	if span.last+1 >= doc.LineCount() {
		return Result{}, false
	}

	below := doc.LineText(span.last + 1)
	block := doc.TextRange(span.start, span.end)
	shift := ByteOffset(len(below)) + 1

	return Result{
		Edit: buffer.NewEdit(
			buffer.NewRange(span.start, doc.LineEndOffset(span.last+1)),
			below+"\n"+block,
		),
		Selection: cursor.Oriented(sel.Start()+shift, sel.End()+shift, sel.Orientation()),
	}, true
}

// DeleteLines removes every line the selection touches, separators
// included. When the range reaches the last line the separator before it
// goes instead, so no dangling empty line remains; deleting every line
// empties the document. An empty document is refused.
//
// The cursor collapses onto the line now at the deleted position (the
// preceding line when the tail was deleted), keeping the head's column
// where that line allows it.
func DeleteLines(doc Document, sel cursor.Selection) (Result, bool) {
	if doc.Len() == 0 {
		return Result{}, false
	}
	sel = clampSelection(doc, sel)
	span := spanOf(doc, sel)
	lastLine := doc.LineCount() - 1

	headLine := doc.LineOfOffset(sel.Head)
	headCol := int(sel.Head - doc.LineStartOffset(headLine))

	var (
		del     buffer.Range
		landing ByteOffset
		line    string
	)
	switch {
	case span.last == lastLine && span.first == 0:
		del = buffer.NewRange(0, doc.Len())
		return Result{Edit: buffer.NewEdit(del, "")}, true
	case span.last == lastLine:
		del = buffer.NewRange(doc.LineEndOffset(span.first-1), doc.Len())
		line = doc.LineText(span.first - 1)
		landing = doc.LineStartOffset(span.first - 1)
	default:
		del = buffer.NewRange(span.start, doc.LineStartOffset(span.last+1))
		line = doc.LineText(span.last + 1)
		landing = span.start
	}

	pos := landing + ByteOffset(snapColumn(line, headCol))
	return Result{
		Edit:      buffer.NewEdit(del, ""),
		Selection: cursor.NewCursorSelection(pos),
	}, true
}
