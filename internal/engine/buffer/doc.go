// Package buffer provides the line-addressable text store of the editing
// engine.
//
// The buffer is an ordered sequence of lines addressed through one linear
// byte-offset space [0, Len()]. Lines are separated by "\n" internally;
// "\r\n" and "\r" are normalized on the way in and the detected style is
// restored by Contents.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("Hello, World!")
//	buf.ReplaceSpan(7, 7, "Beautiful ") // "Hello, Beautiful World!"
//	buf.ReplaceSpan(0, 7, "")           // "Beautiful World!"
//
// ReplaceSpan is the only mutation primitive. Every offset passed to the
// buffer, for reads or writes, is clamped to [0, Len()] and snapped onto a
// rune boundary instead of being rejected, so a stale offset left over from
// a previous edit can never make an editing operation fail.
//
// Snapshot returns an immutable view that collaborators (highlighters,
// completion providers) may read while the buffer keeps changing.
package buffer
