package transform

import (
	"strings"
	"unicode"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/cursor"
)

// ToggleLineComment comments or uncomments every line the selection
// touches with token.
//
// Removal is tried first: if every line starts (after optional whitespace)
// with token, the token and one following space are removed. Otherwise
// token plus a space is inserted at each line's first non-whitespace
// column, or at column 0 for a blank line. An empty token refuses the
// operation.
func ToggleLineComment(doc Document, sel cursor.Selection, token string) (Result, bool) {
	if token == "" {
		return Result{}, false
	}
	sel = clampSelection(doc, sel)
	span := spanOf(doc, sel)

	if res, ok := uncommentLines(doc, sel, span, token); ok {
		return res, true
	}

	changes := make([]lineChange, span.lines())
	for i := range changes {
		line := doc.LineText(span.first + uint32(i))
		col := firstNonSpace(line)
		if col == len(line) {
			col = 0
		}
		changes[i] = lineChange{col: col, ins: token + " "}
	}
	return rewriteLines(doc, sel, span, changes), true
}

func uncommentLines(doc Document, sel cursor.Selection, span lineSpan, token string) (Result, bool) {
	changes := make([]lineChange, span.lines())
	for i := range changes {
		line := doc.LineText(span.first + uint32(i))
		col := firstNonSpace(line)
		if !strings.HasPrefix(line[col:], token) {
			return Result{}, false
		}
		n := len(token)
		if col+n < len(line) && line[col+n] == ' ' {
			n++
		}
		changes[i] = lineChange{col: col, del: n}
	}
	return rewriteLines(doc, sel, span, changes), true
}

// firstNonSpace returns the byte column of the first non-whitespace rune,
// or len(line) if there is none.
func firstNonSpace(line string) int {
	for i, r := range line {
		if !unicode.IsSpace(r) {
			return i
		}
	}
	return len(line)
}

// ToggleBlockComment wraps the selected text in open and close, or strips
// them when the selection already starts with open and ends with close.
// The selection grows or shrinks by the marker lengths and keeps its
// orientation. Missing markers refuse the operation.
func ToggleBlockComment(doc Document, sel cursor.Selection, open, close string) (Result, bool) {
	if open == "" || close == "" {
		return Result{}, false
	}
	sel = clampSelection(doc, sel)
	start, end := sel.Start(), sel.End()
	text := doc.TextRange(start, end)
	markers := ByteOffset(len(open) + len(close))

	if len(text) >= len(open)+len(close) && strings.HasPrefix(text, open) && strings.HasSuffix(text, close) {
		inner := text[len(open) : len(text)-len(close)]
		return Result{
			Edit:      buffer.NewEdit(buffer.NewRange(start, end), inner),
			Selection: cursor.Oriented(start, end-markers, sel.Orientation()),
		}, true
	}

	return Result{
		Edit:      buffer.NewEdit(buffer.NewRange(start, end), open+text+close),
		Selection: cursor.Oriented(start, end+markers, sel.Orientation()),
	}, true
}
