package buffer

// view implements the read operations shared by Buffer and Snapshot.
// All offsets and line numbers are clamped; reads never fail.
type view struct {
	store *lineStore
}

// Text returns the full content as a string, lines separated by "\n".
func (v view) Text() string {
	return v.store.text()
}

// TextRange returns text in the given byte range.
func (v view) TextRange(start, end ByteOffset) string {
	return v.store.textRange(start, end)
}

// Len returns the total byte length.
func (v view) Len() ByteOffset {
	return v.store.length
}

// IsEmpty returns true if there is no text.
func (v view) IsEmpty() bool {
	return v.store.length == 0
}

// LineCount returns the number of lines. An empty buffer has one line.
func (v view) LineCount() uint32 {
	return v.store.lineCount()
}

// LineText returns the text of a specific line (without newline).
func (v view) LineText(line uint32) string {
	return v.store.lineText(line)
}

// LineLen returns the length of a specific line in bytes (without newline).
func (v view) LineLen(line uint32) int {
	return len(v.store.lineText(line))
}

// LineStartOffset returns the byte offset of the start of a line.
func (v view) LineStartOffset(line uint32) ByteOffset {
	return v.store.lineStart(line)
}

// LineEndOffset returns the byte offset of the end of a line (before newline).
func (v view) LineEndOffset(line uint32) ByteOffset {
	return v.store.lineEnd(line)
}

// LineRange returns the [start, end) span of a line's content.
func (v view) LineRange(line uint32) Range {
	return Range{Start: v.store.lineStart(line), End: v.store.lineEnd(line)}
}

// LineOfOffset returns the line containing offset.
func (v view) LineOfOffset(offset ByteOffset) uint32 {
	return v.store.lineOf(offset)
}

// OffsetToPoint converts a byte offset to line/column.
func (v view) OffsetToPoint(offset ByteOffset) Point {
	return v.store.point(offset)
}

// PointToOffset converts line/column to byte offset.
func (v view) PointToOffset(p Point) ByteOffset {
	return v.store.offset(p)
}

// RuneAt returns the rune starting at offset and its size.
// A line separator reads as '\n'. Returns utf8.RuneError and size 0 at or
// past the end of the text.
func (v view) RuneAt(offset ByteOffset) (rune, int) {
	return v.store.runeAt(offset)
}

// RuneBefore returns the rune ending at offset and its size.
// Returns utf8.RuneError and size 0 at the start of the text.
func (v view) RuneBefore(offset ByteOffset) (rune, int) {
	return v.store.runeBefore(offset)
}

// Clamp bounds offset to [0, Len()] and snaps it onto a rune boundary.
func (v view) Clamp(offset ByteOffset) ByteOffset {
	return v.store.clamp(offset)
}
