package engine

import (
	"github.com/dshills/quill/internal/engine/cursor"
	"github.com/dshills/quill/internal/engine/transform"
)

// Indent inserts one indentation level at the start of every line touched
// by the selection.
func (e *Engine) Indent() bool {
	return e.apply("indent", func(doc transform.Document, sel cursor.Selection) (transform.Result, bool) {
		return transform.Indent(doc, sel, e.indent)
	})
}

// Unindent removes one leading tab or up to TabWidth spaces from every
// touched line. Without force the whole operation is refused when any line
// has nothing to remove.
func (e *Engine) Unindent(force bool) bool {
	return e.apply("unindent", func(doc transform.Document, sel cursor.Selection) (transform.Result, bool) {
		return transform.Unindent(doc, sel, e.tabWidth, force)
	})
}

// ToggleComment comments or uncomments the touched lines with the line
// comment token of the active language.
func (e *Engine) ToggleComment() bool {
	if !e.profile.HasLineComment() {
		e.log.Debug("toggle comment: %s has no line comment", e.profile.Name)
		return false
	}
	return e.apply("toggle comment", func(doc transform.Document, sel cursor.Selection) (transform.Result, bool) {
		return transform.ToggleLineComment(doc, sel, e.profile.LineComment)
	})
}

// ToggleBlockComment wraps the selection in the block comment markers of
// the active language, or strips them when already present.
func (e *Engine) ToggleBlockComment() bool {
	if !e.profile.HasBlockComment() {
		e.log.Debug("toggle block comment: %s has no block comment", e.profile.Name)
		return false
	}
	return e.apply("toggle block comment", func(doc transform.Document, sel cursor.Selection) (transform.Result, bool) {
		return transform.ToggleBlockComment(doc, sel, e.profile.BlockStart, e.profile.BlockEnd)
	})
}

// SwapLineUp exchanges the touched lines with the line above.
func (e *Engine) SwapLineUp() bool {
	return e.apply("swap line up", transform.SwapLinesUp)
}

// SwapLineDown exchanges the touched lines with the line below.
func (e *Engine) SwapLineDown() bool {
	return e.apply("swap line down", transform.SwapLinesDown)
}

// DeleteLine removes every line touched by the selection.
func (e *Engine) DeleteLine() bool {
	return e.apply("delete line", transform.DeleteLines)
}

func (e *Engine) apply(name string, op func(transform.Document, cursor.Selection) (transform.Result, bool)) bool {
	if e.readOnly {
		e.log.Debug("%s refused: read-only", name)
		return false
	}
	res, ok := op(e.buf.Snapshot(), e.sel)
	if !ok {
		e.log.Debug("%s refused at %s", name, e.sel)
		return false
	}
	e.commit(res.Edit, res.Selection)
	return true
}
