// Package key defines the keystroke model consumed by the editor.
//
// An Event pairs a Key with the held Modifiers and, for printable keys, the
// rune produced. Text reports the literal text a keystroke carries, which is
// what the editor inserts when no feature intercepts the key.
//
// Keystrokes can be written in a compact notation used by tests, scripts
// and the command line:
//
//	a  A  (  <Tab>  <S-Tab>  <CR>  <BS>  <C-Space>  <C-S-Enter>
//
// ParseSequence splits a string such as "foo(<BS>" into events.
package key
