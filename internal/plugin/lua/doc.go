// Package lua runs editing scripts against an editor.
//
// Scripts see a sandboxed gopher-lua state: the base, string, table and
// math libraries are open; io, os, debug, package and every way of
// loading code from disk are not. A global "editor" table drives the
// editor the State was created for:
//
//	editor.select(0, 0)
//	editor.keys("<Tab>foo(<BS>")
//	if not editor.toggle_comment() then
//	    editor.log("no line comment for " .. editor.language())
//	end
//	local anchor, head = editor.selection()
//
// Offsets are byte offsets into the text and start at 0, the same as
// everywhere else in quill. Operations return false when they are
// refused, for instance on a read-only buffer.
//
// A State is safe for use by one goroutine at a time; Run serializes
// callers.
package lua
