// Package editor turns keystrokes into engine operations.
//
// An Editor wraps an engine.Engine and interprets key.Event values the way
// a code editing widget does:
//
//   - Tab indents a selection or inserts one indentation unit; Shift+Tab
//     unindents.
//   - Enter copies the current line's indentation. Between a block-open and
//     block-close delimiter it opens an indented blank line; after a lone
//     block-open delimiter it indents one extra level.
//   - Typing an opening delimiter inserts its partner, or wraps a non-empty
//     selection. Typing a closing delimiter over an auto-inserted one steps
//     over it.
//   - Backspace between an empty delimiter pair removes both.
//
// After each keystroke the editor decides whether the completion session
// should be closed, left alone or (re)queried with the identifier prefix
// at the cursor.
package editor
