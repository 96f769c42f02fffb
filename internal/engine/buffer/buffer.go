package buffer

import (
	"io"
	"strings"
)

// Buffer is the line-addressable text store of the editing engine.
// ReplaceSpan is its only mutation primitive, so every change to the text
// passes through one point where offsets are clamped and revisions bumped.
//
// A Buffer is owned by a single editing thread and is not safe for
// concurrent mutation. Use Snapshot to hand a stable view to collaborators.
type Buffer struct {
	view
	revisionID RevisionID
	lineEnding LineEnding
	tabWidth   int
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		view:       view{store: newLineStore("")},
		revisionID: NewRevisionID(),
		lineEnding: LineEndingLF,
		tabWidth:   4,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content. The line ending
// style is detected from the content unless overridden by an option.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	detected := WithLineEnding(DetectLineEnding(s))
	b := NewBuffer(append([]Option{detected}, opts...)...)
	b.store = newLineStore(normalizeLineEndings(s))
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	// Read everything first: CRLF pairs may straddle read boundaries.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBufferFromString(string(data), opts...), nil
}

// Contents returns the text with the buffer's line ending style applied.
func (b *Buffer) Contents() string {
	text := b.Text()
	if b.lineEnding == LineEndingLF {
		return text
	}
	return strings.ReplaceAll(text, "\n", b.lineEnding.Sequence())
}

// ReplaceSpan replaces [start, end) with text.
// Offsets are clamped to the buffer and swapped if reversed; a stale offset
// is never an error. Line endings in text are normalized to "\n".
func (b *Buffer) ReplaceSpan(start, end ByteOffset, text string) EditResult {
	span := NewRange(b.Clamp(start), b.Clamp(end))

	text = normalizeLineEndings(text)
	oldText := b.store.textRange(span.Start, span.End)
	b.store = b.store.replace(span.Start, span.End, text)
	b.revisionID = NewRevisionID()

	return EditResult{
		OldRange: span,
		NewRange: Range{Start: span.Start, End: span.Start + ByteOffset(len(text))},
		OldText:  oldText,
		NewText:  text,
		Delta:    int64(len(text)) - int64(span.Len()),
	}
}

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	return b.revisionID
}

// LineEnding returns the buffer's export line ending style.
func (b *Buffer) LineEnding() LineEnding {
	return b.lineEnding
}

// TabWidth returns the buffer's tab width.
func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

// SetTabWidth sets the buffer's tab width.
func (b *Buffer) SetTabWidth(width int) {
	if width > 0 {
		b.tabWidth = width
	}
}

// Snapshot returns a read-only snapshot of the current buffer state.
// Safe for concurrent access from other goroutines.
func (b *Buffer) Snapshot() *Snapshot {
	return &Snapshot{
		view:       b.view,
		revisionID: b.revisionID,
		tabWidth:   b.tabWidth,
	}
}
