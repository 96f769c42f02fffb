package transform

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/cursor"
)

// ByteOffset is an alias for buffer.ByteOffset for convenience.
type ByteOffset = buffer.ByteOffset

// Document is the read-only view transforms operate on.
// *buffer.Buffer and *buffer.Snapshot satisfy it.
type Document interface {
	Len() ByteOffset
	LineCount() uint32
	LineText(line uint32) string
	LineStartOffset(line uint32) ByteOffset
	LineEndOffset(line uint32) ByteOffset
	LineOfOffset(offset ByteOffset) uint32
	TextRange(start, end ByteOffset) string
}

// Result is the outcome of a transform: one replacement and the selection
// that follows it.
type Result struct {
	Edit      buffer.Edit
	Selection cursor.Selection
}

// Apply returns text with the result's edit applied. text must be the
// content the result was computed from.
func (r Result) Apply(text string) string {
	return r.Edit.Apply(text)
}

// lineSpan is the inclusive line range covered by a selection together with
// the byte span from the start of the first line to the end of the last.
type lineSpan struct {
	first, last uint32
	start, end  ByteOffset
}

func spanOf(doc Document, sel cursor.Selection) lineSpan {
	first := doc.LineOfOffset(sel.Start())
	last := doc.LineOfOffset(sel.End())
	return lineSpan{
		first: first,
		last:  last,
		start: doc.LineStartOffset(first),
		end:   doc.LineEndOffset(last),
	}
}

func (s lineSpan) lines() int {
	return int(s.last-s.first) + 1
}

// lineChange rewrites one line: del bytes at col are replaced by ins.
type lineChange struct {
	col int
	del int
	ins string
}

func (c lineChange) apply(text string) string {
	return text[:c.col] + c.ins + text[c.col+c.del:]
}

func (c lineChange) delta() ByteOffset {
	return ByteOffset(len(c.ins) - c.del)
}

// mapColumn moves a column on the changed line. Columns at or past the
// removed run shift by the change's delta; columns strictly inside it land
// after the inserted text.
func (c lineChange) mapColumn(col int) int {
	switch {
	case col >= c.col+c.del:
		return col + len(c.ins) - c.del
	case col > c.col:
		return c.col + len(c.ins)
	default:
		return col
	}
}

// rewriteLines applies one change per line of span as a single edit and
// remaps the selection bounds.
func rewriteLines(doc Document, sel cursor.Selection, span lineSpan, changes []lineChange) Result {
	lines := make([]string, len(changes))
	for i, ch := range changes {
		lines[i] = ch.apply(doc.LineText(span.first + uint32(i)))
	}

	start := remap(doc, span, changes, sel.Start())
	end := remap(doc, span, changes, sel.End())

	return Result{
		Edit:      buffer.NewEdit(buffer.NewRange(span.start, span.end), strings.Join(lines, "\n")),
		Selection: cursor.Oriented(start, end, sel.Orientation()),
	}
}

func remap(doc Document, span lineSpan, changes []lineChange, offset ByteOffset) ByteOffset {
	line := doc.LineOfOffset(offset)
	idx := int(line - span.first)

	lineStart := doc.LineStartOffset(line)
	var shift ByteOffset
	for _, ch := range changes[:idx] {
		shift += ch.delta()
	}
	col := changes[idx].mapColumn(int(offset - lineStart))
	return lineStart + shift + ByteOffset(col)
}

// clampSelection bounds sel to the document.
func clampSelection(doc Document, sel cursor.Selection) cursor.Selection {
	return sel.Clamp(doc.Len())
}

// snapColumn limits col to text and moves it back onto a rune start.
func snapColumn(text string, col int) int {
	if col > len(text) {
		return len(text)
	}
	for col > 0 && col < len(text) && !utf8.RuneStart(text[col]) {
		col--
	}
	return col
}
