package buffer

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// lineStore is the immutable line-addressable representation shared by
// Buffer and Snapshot. Every replacement produces a new store, so a store
// handed to a snapshot never changes underneath it.
type lineStore struct {
	lines  []string
	starts []ByteOffset
	length ByteOffset
}

func newLineStore(text string) *lineStore {
	return buildLineStore(strings.Split(text, "\n"))
}

func buildLineStore(lines []string) *lineStore {
	if len(lines) == 0 {
		lines = []string{""}
	}
	starts := make([]ByteOffset, len(lines))
	var off ByteOffset
	for i, l := range lines {
		starts[i] = off
		off += ByteOffset(len(l)) + 1
	}
	return &lineStore{
		lines:  lines,
		starts: starts,
		length: off - 1,
	}
}

func (s *lineStore) lineCount() uint32 {
	return uint32(len(s.lines))
}

func (s *lineStore) clampLine(line uint32) int {
	if int(line) >= len(s.lines) {
		return len(s.lines) - 1
	}
	return int(line)
}

func (s *lineStore) lineText(line uint32) string {
	return s.lines[s.clampLine(line)]
}

func (s *lineStore) lineStart(line uint32) ByteOffset {
	return s.starts[s.clampLine(line)]
}

func (s *lineStore) lineEnd(line uint32) ByteOffset {
	i := s.clampLine(line)
	return s.starts[i] + ByteOffset(len(s.lines[i]))
}

// lineOf returns the line containing offset. An offset sitting on a line
// separator belongs to the line the separator terminates.
func (s *lineStore) lineOf(offset ByteOffset) uint32 {
	offset = s.clampRaw(offset)
	i := sort.Search(len(s.starts), func(i int) bool { return s.starts[i] > offset }) - 1
	if i < 0 {
		i = 0
	}
	return uint32(i)
}

func (s *lineStore) clampRaw(offset ByteOffset) ByteOffset {
	return clampOffset(offset, s.length)
}

// clamp bounds offset to [0, length] and moves it back onto a rune start.
func (s *lineStore) clamp(offset ByteOffset) ByteOffset {
	offset = s.clampRaw(offset)
	line := s.lineOf(offset)
	text := s.lines[line]
	col := int(offset - s.starts[line])
	for col > 0 && col < len(text) && !utf8.RuneStart(text[col]) {
		col--
	}
	return s.starts[line] + ByteOffset(col)
}

func (s *lineStore) point(offset ByteOffset) Point {
	offset = s.clampRaw(offset)
	line := s.lineOf(offset)
	return Point{Line: line, Column: uint32(offset - s.starts[line])}
}

func (s *lineStore) offset(p Point) ByteOffset {
	line := s.clampLine(p.Line)
	col := ByteOffset(p.Column)
	if n := ByteOffset(len(s.lines[line])); col > n {
		col = n
	}
	return s.starts[line] + col
}

func (s *lineStore) text() string {
	return strings.Join(s.lines, "\n")
}

func (s *lineStore) textRange(start, end ByteOffset) string {
	start, end = s.clampRaw(start), s.clampRaw(end)
	if start >= end {
		return ""
	}
	la, lb := s.lineOf(start), s.lineOf(end)
	ca := int(start - s.starts[la])
	cb := int(end - s.starts[lb])
	if la == lb {
		return s.lines[la][ca:cb]
	}

	var sb strings.Builder
	sb.Grow(int(end - start))
	sb.WriteString(s.lines[la][ca:])
	for l := la + 1; l < lb; l++ {
		sb.WriteByte('\n')
		sb.WriteString(s.lines[l])
	}
	sb.WriteByte('\n')
	sb.WriteString(s.lines[lb][:cb])
	return sb.String()
}

func (s *lineStore) runeAt(offset ByteOffset) (rune, int) {
	if offset < 0 || offset >= s.length {
		return utf8.RuneError, 0
	}
	line := s.lineOf(offset)
	text := s.lines[line]
	col := int(offset - s.starts[line])
	if col >= len(text) {
		return '\n', 1
	}
	return utf8.DecodeRuneInString(text[col:])
}

func (s *lineStore) runeBefore(offset ByteOffset) (rune, int) {
	if offset <= 0 || offset > s.length {
		return utf8.RuneError, 0
	}
	line := s.lineOf(offset)
	col := int(offset - s.starts[line])
	if col == 0 {
		return '\n', 1
	}
	return utf8.DecodeLastRuneInString(s.lines[line][:col])
}

// replace returns a new store with [start, end) replaced by text. Offsets
// must already be clamped and ordered; text must be normalized.
func (s *lineStore) replace(start, end ByteOffset, text string) *lineStore {
	la, lb := s.lineOf(start), s.lineOf(end)
	ca := start - s.starts[la]
	cb := end - s.starts[lb]

	middle := s.lines[la][:ca] + text + s.lines[lb][cb:]
	inserted := strings.Split(middle, "\n")

	lines := make([]string, 0, len(s.lines)-int(lb-la)-1+len(inserted))
	lines = append(lines, s.lines[:la]...)
	lines = append(lines, inserted...)
	lines = append(lines, s.lines[lb+1:]...)
	return buildLineStore(lines)
}
