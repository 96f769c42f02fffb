package engine

import (
	"github.com/dshills/quill/internal/engine/brackets"
	"github.com/dshills/quill/internal/engine/occurrence"
	"github.com/dshills/quill/internal/renderer/gutter"
	"github.com/dshills/quill/internal/renderer/highlight"
	"github.com/dshills/quill/internal/renderer/style"
)

// StyleKind names the decoration a HighlightSpan is drawn with.
type StyleKind uint8

const (
	StyleCurrentLine StyleKind = iota
	StylePairedDelimiter
	StyleOccurrence
)

// StyleName returns the style name the kind is resolved through.
func (k StyleKind) StyleName() string {
	switch k {
	case StyleCurrentLine:
		return style.NameCurrentLine
	case StylePairedDelimiter:
		return style.NameParentheses
	case StyleOccurrence:
		return style.NameOccurrence
	}
	return style.NameText
}

// String returns the style name of the kind.
func (k StyleKind) String() string {
	return k.StyleName()
}

// HighlightSpan is one decoration over a byte range.
type HighlightSpan struct {
	Range Range
	Kind  StyleKind
}

// StructuralHighlights returns the current line highlight (omitted when
// read-only) followed by the matched delimiter pair, if any.
func (e *Engine) StructuralHighlights() []HighlightSpan {
	return append([]HighlightSpan(nil), e.structural...)
}

// OccurrenceHighlights returns the other whole-word occurrences of the
// selected token. Empty unless the selection is a token.
func (e *Engine) OccurrenceHighlights() []HighlightSpan {
	return append([]HighlightSpan(nil), e.occurrences...)
}

// Highlights returns the union of the structural and occurrence sets.
func (e *Engine) Highlights() []HighlightSpan {
	spans := make([]HighlightSpan, 0, len(e.structural)+len(e.occurrences))
	spans = append(spans, e.structural...)
	return append(spans, e.occurrences...)
}

// BracketMatch returns the delimiter pair matched at the cursor.
func (e *Engine) BracketMatch() (brackets.Match, bool) {
	return brackets.Find(e.buf, e.sel.Cursor(), e.pairs)
}

// refresh clears and rebuilds both highlight sets.
func (e *Engine) refresh() {
	e.structural = e.structural[:0]
	if !e.readOnly {
		line := e.buf.LineOfOffset(e.sel.Cursor())
		e.structural = append(e.structural, HighlightSpan{Range: e.buf.LineRange(line), Kind: StyleCurrentLine})
	}
	if m, ok := e.BracketMatch(); ok {
		e.structural = append(e.structural,
			HighlightSpan{Range: m.Seed, Kind: StylePairedDelimiter},
			HighlightSpan{Range: m.Partner, Kind: StylePairedDelimiter},
		)
	}

	e.occurrences = e.occurrences[:0]
	if !e.sel.IsEmpty() {
		for _, r := range occurrence.Find(e.buf.Text(), e.sel.Range()) {
			e.occurrences = append(e.occurrences, HighlightSpan{Range: r, Kind: StyleOccurrence})
		}
	}
}

// ResolveStyle looks up the format of a highlight kind. An occurrence
// style the provider does not define is drawn underlined.
func (e *Engine) ResolveStyle(kind StyleKind) style.Format {
	f := e.styles.Lookup(kind.StyleName())
	if kind == StyleOccurrence && f == style.Neutral {
		return style.Neutral.Underlined()
	}
	return f
}

// Palette holds the base text and selection formats.
type Palette struct {
	Text      style.Format
	Selection style.Format
}

// Palette resolves the base text and selection formats.
func (e *Engine) Palette() Palette {
	return Palette{
		Text:      e.styles.Lookup(style.NameText),
		Selection: e.styles.Lookup(style.NameSelection),
	}
}

// StyleProvider returns the active style provider.
func (e *Engine) StyleProvider() style.Provider {
	return e.styles
}

// SetStyleProvider replaces the style provider and re-runs the
// highlighter. A nil provider is ignored.
func (e *Engine) SetStyleProvider(p style.Provider) {
	if p == nil {
		return
	}
	e.styles = p
	e.reapply()
}

// SetHighlighter replaces the highlighter and runs it once.
func (e *Engine) SetHighlighter(h highlight.Highlighter) {
	e.highlighter = h
	e.reapply()
}

// Lint annotates lines from through to (inclusive) on the gutter surface.
// It does nothing without a gutter.
func (e *Engine) Lint(from, to uint32, severity gutter.Severity) {
	if e.gutter == nil {
		e.log.Warn("lint on lines %d-%d dropped: no gutter", from, to)
		return
	}
	e.gutter.Annotate(from, to, severity)
}

// ClearLint removes all gutter annotations.
func (e *Engine) ClearLint() {
	if e.gutter != nil {
		e.gutter.ClearAnnotations()
	}
}
