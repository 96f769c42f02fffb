package buffer

import (
	"fmt"
	"sync/atomic"
)

// ByteOffset indexes the UTF-8 text of a buffer. Valid offsets lie in
// [0, Len()] and fall on rune starts.
type ByteOffset = int64

// Point addresses text by line and byte column, both counted from zero.
type Point struct {
	Line   uint32
	Column uint32
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p comes earlier in the text than q.
func (p Point) Before(q Point) bool {
	return p.Line < q.Line || (p.Line == q.Line && p.Column < q.Column)
}

// RevisionID identifies one state of a buffer. Every ReplaceSpan moves the
// buffer to a fresh revision.
type RevisionID uint64

var lastRevision atomic.Uint64

// NewRevisionID returns an ID no buffer in this process has used.
func NewRevisionID() RevisionID {
	return RevisionID(lastRevision.Add(1))
}
