// Package engine is the editing core of quill.
//
// An Engine owns one buffer and one selection. Every structural operation
// (indent, unindent, comment toggles, line swaps, line deletion) is computed
// by the pure functions of package transform and committed through a single
// call to Buffer.ReplaceSpan, after which the selection is replaced by the
// remapped one and the collaborators are notified:
//
//   - the Highlighter is re-run synchronously on a snapshot,
//   - every EditListener receives the change with selections before/after,
//   - the structural and occurrence highlight sets are rebuilt.
//
// Operations never fail with an error. An operation that cannot apply
// (swap at a document edge, unindent without a removable prefix, comment
// toggle without comment syntax, any edit on a read-only engine) returns
// false and leaves the buffer and selection untouched.
//
// # Basic Usage
//
//	e := engine.New(
//		engine.WithContent("a\nb\nc"),
//		engine.WithLanguage(profile),
//	)
//	e.SetSelection(cursor.NewSelection(0, 3))
//	e.Indent()           // "    a\n    b\nc"
//	e.ToggleComment()
//	spans := e.Highlights()
//
// # Concurrency
//
// An Engine belongs to one editing goroutine. Each call runs to completion
// before the next; no locks are taken. Hand Snapshot values to other
// goroutines instead of the engine itself.
package engine
