package brackets

import "github.com/dshills/quill/internal/engine/buffer"

// Text is the read access the matcher needs. *buffer.Buffer and
// *buffer.Snapshot satisfy it.
type Text interface {
	Len() buffer.ByteOffset
	RuneAt(offset buffer.ByteOffset) (rune, int)
	RuneBefore(offset buffer.ByteOffset) (rune, int)
}

// Direction is the scan direction of a match.
type Direction int8

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Match is a matched delimiter pair.
type Match struct {
	Pair      Pair
	Direction Direction
	Seed      buffer.Range // delimiter next to the cursor
	Partner   buffer.Range // delimiter it pairs with
}

// Find looks for the partner of the delimiter at the cursor.
//
// The first pair in table order whose Open is the rune at pos (scan
// forward) or whose Close is the rune before pos (scan backward) is tried,
// and only that one. The scan counts nesting of the seed symbol against its
// counterpart; a symmetric pair matches the nearest identical rune.
// A line separator never seeds a match.
func Find(text Text, pos buffer.ByteOffset, table Table) (Match, bool) {
	cur, curSize := text.RuneAt(pos)
	prev, prevSize := text.RuneBefore(pos)

	for _, p := range table {
		switch {
		case curSize > 0 && cur == p.Open:
			seed := buffer.NewRange(pos, pos+buffer.ByteOffset(curSize))
			return scan(text, p, seed, Forward)
		case prevSize > 0 && prev == p.Close:
			seed := buffer.NewRange(pos-buffer.ByteOffset(prevSize), pos)
			return scan(text, p, seed, Backward)
		}
	}
	return Match{}, false
}

func scan(text Text, p Pair, seed buffer.Range, dir Direction) (Match, bool) {
	symbol, counterpart := p.Open, p.Close
	if dir == Backward {
		symbol, counterpart = p.Close, p.Open
	}

	depth := 1
	if dir == Forward {
		for off := seed.End; off < text.Len(); {
			r, size := text.RuneAt(off)
			if size == 0 {
				break
			}
			if depth = step(r, symbol, counterpart, depth); depth == 0 {
				return Match{Pair: p, Direction: dir, Seed: seed, Partner: buffer.NewRange(off, off+buffer.ByteOffset(size))}, true
			}
			off += buffer.ByteOffset(size)
		}
		return Match{}, false
	}

	for off := seed.Start; off > 0; {
		r, size := text.RuneBefore(off)
		if size == 0 {
			break
		}
		off -= buffer.ByteOffset(size)
		if depth = step(r, symbol, counterpart, depth); depth == 0 {
			return Match{Pair: p, Direction: dir, Seed: seed, Partner: buffer.NewRange(off, off+buffer.ByteOffset(size))}, true
		}
	}
	return Match{}, false
}

// step updates the nesting depth for one rune. The counterpart is checked
// first so a symmetric pair closes on its first repeat.
func step(r, symbol, counterpart rune, depth int) int {
	switch r {
	case counterpart:
		return depth - 1
	case symbol:
		return depth + 1
	}
	return depth
}
