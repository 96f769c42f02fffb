// Package cursor provides the selection model of the editing engine.
//
// Selections use an anchor/head model where:
//   - Anchor: The position where the selection started
//   - Head: The current cursor position (where typing would occur)
//
// When Anchor == Head, the selection represents just a cursor with no
// selected text.
//
// Orientation:
//
// Transforms that rewrite text recompute selection bounds from the old
// start/end offsets. Which end the head sits on is carried through that
// recomputation as an explicit Orientation value:
//
//	o := sel.Orientation()
//	// ... compute newStart, newEnd ...
//	sel = cursor.Oriented(newStart, newEnd, o)
//
// Offsets held outside a selection (for example the position of an
// auto-inserted closing delimiter) are kept valid across edits with
// TransformOffset.
//
// Selection is an immutable value type and safe for concurrent use.
package cursor
