// Package transform implements the line-range editing operations: indent,
// unindent, line and block comment toggling, line swapping and line
// deletion.
//
// Every operation is a pure function of a read-only Document and a
// selection. It computes one replacement Edit plus the selection that
// should follow it, and reports false when the operation is refused
// (selection at a document boundary, nothing to unindent, no comment
// syntax). Callers commit the Edit through a single ReplaceSpan call.
//
//	res, ok := transform.Indent(buf.Snapshot(), sel, "    ")
//	if ok {
//		buf.ReplaceSpan(res.Edit.Range.Start, res.Edit.Range.End, res.Edit.NewText)
//		sel = res.Selection
//	}
//
// Selection bounds are remapped from the original start and end offsets.
// The orientation of the selection (which end holds the cursor) is kept.
package transform
