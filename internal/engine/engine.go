package engine

import (
	"io"
	"strings"

	"github.com/dshills/quill/internal/engine/brackets"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/cursor"
	"github.com/dshills/quill/internal/language"
	"github.com/dshills/quill/internal/logging"
	"github.com/dshills/quill/internal/renderer/gutter"
	"github.com/dshills/quill/internal/renderer/highlight"
	"github.com/dshills/quill/internal/renderer/style"
)

type (
	// ByteOffset is a byte position in the buffer.
	ByteOffset = buffer.ByteOffset

	// Range is a byte range in the buffer.
	Range = buffer.Range

	// Selection is the anchor/head selection of the engine.
	Selection = cursor.Selection
)

// Change describes one committed edit.
type Change struct {
	Result buffer.EditResult
	Before Selection
	After  Selection
}

// EditListener is notified after every committed edit. A host undo stack
// attaches here.
type EditListener interface {
	EditApplied(c Change)
}

// EditListenerFunc adapts a function to EditListener.
type EditListenerFunc func(c Change)

// EditApplied calls f(c).
func (f EditListenerFunc) EditApplied(c Change) {
	f(c)
}

// Engine owns a buffer and its selection and applies editing operations
// to them. See the package documentation for the commit protocol.
type Engine struct {
	buf *buffer.Buffer
	sel Selection

	tabWidth    int
	indent      string
	lineEnding  *buffer.LineEnding
	pairs       brackets.Table
	profile     language.Profile
	readOnly    bool
	initContent string

	highlighter highlight.Highlighter
	styles      style.Provider
	gutter      gutter.Surface
	listeners   []EditListener
	log         *logging.Logger

	structural  []HighlightSpan
	occurrences []HighlightSpan
}

func newEngine(opts []Option) *Engine {
	e := &Engine{
		tabWidth: DefaultTabWidth,
		pairs:    brackets.DefaultTable(),
		profile:  language.Plain,
		styles:   style.Default(),
		log:      logging.Null(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.indent == "" {
		e.indent = strings.Repeat(" ", e.tabWidth)
	}
	e.log = e.log.WithComponent("engine")
	return e
}

func (e *Engine) bufferOptions() []buffer.Option {
	opts := []buffer.Option{buffer.WithTabWidth(e.tabWidth)}
	if e.lineEnding != nil {
		opts = append(opts, buffer.WithLineEnding(*e.lineEnding))
	}
	return opts
}

// New creates a new Engine with the given options. The cursor starts at
// offset 0 and the highlighter, if any, runs once.
func New(opts ...Option) *Engine {
	e := newEngine(opts)
	e.buf = buffer.NewBufferFromString(e.initContent, e.bufferOptions()...)
	e.reapply()
	e.refresh()
	return e
}

// NewFromReader creates an Engine from an io.Reader.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	e := newEngine(opts)
	buf, err := buffer.NewBufferFromReader(r, e.bufferOptions()...)
	if err != nil {
		return nil, err
	}
	e.buf = buf
	e.reapply()
	e.refresh()
	return e, nil
}

// Text returns the buffer content with "\n" line separators.
func (e *Engine) Text() string {
	return e.buf.Text()
}

// Contents returns the buffer content with its line ending style applied.
func (e *Engine) Contents() string {
	return e.buf.Contents()
}

// Len returns the byte length of the buffer.
func (e *Engine) Len() ByteOffset {
	return e.buf.Len()
}

// LineCount returns the number of lines.
func (e *Engine) LineCount() uint32 {
	return e.buf.LineCount()
}

// LineText returns the text of a line without its separator.
func (e *Engine) LineText(line uint32) string {
	return e.buf.LineText(line)
}

// Snapshot returns a read-only view of the current text.
func (e *Engine) Snapshot() *buffer.Snapshot {
	return e.buf.Snapshot()
}

// RevisionID returns the buffer revision; it changes on every edit.
func (e *Engine) RevisionID() buffer.RevisionID {
	return e.buf.RevisionID()
}

// Selection returns the current selection.
func (e *Engine) Selection() Selection {
	return e.sel
}

// SetSelection moves the selection. Offsets are clamped to the buffer and
// snapped to rune starts. Highlights are rebuilt.
func (e *Engine) SetSelection(sel Selection) {
	e.sel = e.clampSelection(sel)
	e.refresh()
}

func (e *Engine) clampSelection(sel Selection) Selection {
	return cursor.NewSelection(e.buf.Clamp(sel.Anchor), e.buf.Clamp(sel.Head))
}

// TabWidth returns the tab width.
func (e *Engine) TabWidth() int {
	return e.tabWidth
}

// SetTabWidth changes the tab width. Non-positive widths are ignored.
func (e *Engine) SetTabWidth(width int) {
	if width > 0 {
		e.tabWidth = width
		e.buf.SetTabWidth(width)
	}
}

// IndentString returns the string inserted by one level of indentation.
func (e *Engine) IndentString() string {
	return e.indent
}

// SetIndentString changes the indentation string. Empty restores the
// default of TabWidth spaces.
func (e *Engine) SetIndentString(indent string) {
	if indent == "" {
		indent = strings.Repeat(" ", e.tabWidth)
	}
	e.indent = indent
}

// Pairs returns the delimiter table.
func (e *Engine) Pairs() brackets.Table {
	return e.pairs
}

// Language returns the active language profile.
func (e *Engine) Language() language.Profile {
	return e.profile
}

// SetLanguage changes the active language profile.
func (e *Engine) SetLanguage(p language.Profile) {
	e.profile = p
	e.log.Debug("language set to %s", p.Name)
}

// ReadOnly reports whether edits are refused.
func (e *Engine) ReadOnly() bool {
	return e.readOnly
}

// SetReadOnly toggles read-only mode.
func (e *Engine) SetReadOnly(readOnly bool) {
	e.readOnly = readOnly
	e.refresh()
}

// AddEditListener registers a listener for committed edits.
func (e *Engine) AddEditListener(l EditListener) {
	if l != nil {
		e.listeners = append(e.listeners, l)
	}
}

// Insert replaces the selection with text and collapses the cursor after
// it.
func (e *Engine) Insert(text string) bool {
	start, end := e.sel.Start(), e.sel.End()
	after := cursor.NewCursorSelection(start + ByteOffset(len(normalize(text))))
	_, ok := e.Replace(start, end, text, after)
	return ok
}

// Replace replaces [start, end) with text and sets the selection to after.
// Offsets are clamped. It returns false only on a read-only engine.
func (e *Engine) Replace(start, end ByteOffset, text string, after Selection) (buffer.EditResult, bool) {
	if e.readOnly {
		e.log.Debug("replace refused: read-only")
		return buffer.EditResult{}, false
	}
	return e.commit(buffer.NewEdit(buffer.NewRange(start, end), text), after), true
}

// commit is the single path through which the engine mutates its buffer.
func (e *Engine) commit(edit buffer.Edit, after Selection) buffer.EditResult {
	before := e.sel
	result := e.buf.ReplaceSpan(edit.Range.Start, edit.Range.End, edit.NewText)
	e.sel = e.clampSelection(after)

	change := Change{Result: result, Before: before, After: e.sel}
	for _, l := range e.listeners {
		l.EditApplied(change)
	}
	e.reapply()
	e.refresh()
	return result
}

func (e *Engine) reapply() {
	if e.highlighter != nil {
		e.highlighter.Reapply(e.buf.Snapshot())
	}
}

func normalize(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
