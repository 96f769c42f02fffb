// Package gutter provides the line-annotation surface to the left of the
// text: line numbers and per-line severity marks.
package gutter

import (
	"sort"
	"strconv"
	"strings"
)

// Severity is the level of a line annotation. Higher values win.
type Severity uint8

const (
	SeverityNone Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "none"
	}
}

// ParseSeverity parses "info", "warning"/"warn" or "error".
// Anything else is SeverityNone.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(s) {
	case "info":
		return SeverityInfo
	case "warn", "warning":
		return SeverityWarning
	case "error":
		return SeverityError
	default:
		return SeverityNone
	}
}

// Glyph returns the sign drawn for the severity.
func (s Severity) Glyph() rune {
	switch s {
	case SeverityInfo:
		return 'I'
	case SeverityWarning:
		return 'W'
	case SeverityError:
		return 'E'
	default:
		return ' '
	}
}

// Surface is the annotation API the engine writes to.
type Surface interface {
	// Annotate marks the inclusive line range. A line keeps the highest
	// severity it has been given.
	Annotate(from, to uint32, severity Severity)
	// ClearAnnotations removes every mark.
	ClearAnnotations()
}

// Annotations is an in-memory Surface.
type Annotations struct {
	lines map[uint32]Severity
}

// NewAnnotations creates an empty annotation set.
func NewAnnotations() *Annotations {
	return &Annotations{lines: make(map[uint32]Severity)}
}

// Annotate marks lines from..to, keeping the maximum severity per line.
// Reversed bounds are swapped.
func (a *Annotations) Annotate(from, to uint32, severity Severity) {
	if from > to {
		from, to = to, from
	}
	for line := from; ; line++ {
		if severity > a.lines[line] {
			a.lines[line] = severity
		}
		if line == to {
			break
		}
	}
}

// ClearAnnotations removes every mark.
func (a *Annotations) ClearAnnotations() {
	a.lines = make(map[uint32]Severity)
}

// At returns the severity of a line.
func (a *Annotations) At(line uint32) Severity {
	return a.lines[line]
}

// Lines returns the annotated lines in order.
func (a *Annotations) Lines() []uint32 {
	lines := make([]uint32, 0, len(a.lines))
	for l := range a.lines {
		lines = append(lines, l)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i] < lines[j] })
	return lines
}

// Padding is the number of extra cells around the line number column.
const Padding = 4

// Width returns the gutter width in cells for a document of lineCount
// lines: the digits of the largest line number plus Padding.
func Width(lineCount uint32) int {
	return countDigits(lineCount) + Padding
}

// countDigits returns the number of decimal digits in n.
func countDigits(n uint32) int {
	if n == 0 {
		return 1
	}
	digits := 0
	for n > 0 {
		digits++
		n /= 10
	}
	return digits
}

// Render formats the gutter cell of a line: its severity glyph, the
// one-based line number right-aligned, and a separating space.
func (a *Annotations) Render(line, lineCount uint32) string {
	num := strconv.FormatUint(uint64(line)+1, 10)
	width := countDigits(lineCount)
	var sb strings.Builder
	sb.WriteRune(a.At(line).Glyph())
	sb.WriteString(strings.Repeat(" ", max(0, width-len(num))))
	sb.WriteString(num)
	sb.WriteByte(' ')
	return sb.String()
}
