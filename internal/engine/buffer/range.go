package buffer

import "fmt"

// Range is the half-open byte span [Start, End).
type Range struct {
	Start ByteOffset
	End   ByteOffset
}

// NewRange returns the span between a and b, whichever comes first.
func NewRange(a, b ByteOffset) Range {
	if b < a {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the number of bytes covered.
func (r Range) Len() ByteOffset {
	return r.End - r.Start
}

// IsEmpty reports whether the span covers no bytes.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether offset lies inside the span. End is excluded.
func (r Range) Contains(offset ByteOffset) bool {
	return r.Start <= offset && offset < r.End
}

// Clamp limits both ends to [0, n].
func (r Range) Clamp(n ByteOffset) Range {
	return Range{Start: clampOffset(r.Start, n), End: clampOffset(r.End, n)}
}

func clampOffset(off, n ByteOffset) ByteOffset {
	switch {
	case off < 0:
		return 0
	case off > n:
		return n
	}
	return off
}
