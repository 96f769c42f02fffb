package transform

import "github.com/dshills/quill/internal/engine/cursor"

// DefaultTabWidth is the unindent width used when none is given.
const DefaultTabWidth = 4

// Indent inserts indent at column 0 of every line the selection touches,
// empty lines included.
func Indent(doc Document, sel cursor.Selection, indent string) (Result, bool) {
	if indent == "" {
		return Result{}, false
	}
	sel = clampSelection(doc, sel)
	span := spanOf(doc, sel)

	changes := make([]lineChange, span.lines())
	for i := range changes {
		changes[i] = lineChange{ins: indent}
	}
	return rewriteLines(doc, sel, span, changes), true
}

// Unindent removes one leading tab, or up to tabWidth leading spaces, from
// every line the selection touches.
//
// Without force the operation is all-or-nothing: if any line has nothing
// to remove, nothing changes and false is returned. With force, lines
// without indentation are skipped. Either way false is returned when no
// line changed.
func Unindent(doc Document, sel cursor.Selection, tabWidth int, force bool) (Result, bool) {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	sel = clampSelection(doc, sel)
	span := spanOf(doc, sel)

	changes := make([]lineChange, span.lines())
	removed := false
	for i := range changes {
		n := indentPrefix(doc.LineText(span.first+uint32(i)), tabWidth)
		if n == 0 && !force {
			return Result{}, false
		}
		if n > 0 {
			removed = true
		}
		changes[i] = lineChange{del: n}
	}
	if !removed {
		return Result{}, false
	}
	return rewriteLines(doc, sel, span, changes), true
}

// indentPrefix returns the length of a leading tab or of up to tabWidth
// leading spaces.
func indentPrefix(line string, tabWidth int) int {
	if len(line) > 0 && line[0] == '\t' {
		return 1
	}
	n := 0
	for n < len(line) && n < tabWidth && line[n] == ' ' {
		n++
	}
	return n
}

// Indentation returns the leading run of spaces and tabs of line.
func Indentation(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return line[:i]
		}
	}
	return line
}
