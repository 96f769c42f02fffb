package buffer

import "strings"

// LineEnding is the line separator a buffer exports with.
type LineEnding uint8

const (
	LineEndingLF LineEnding = iota
	LineEndingCRLF
	LineEndingCR
)

var lineEndings = [...]string{LineEndingLF: "\n", LineEndingCRLF: "\r\n", LineEndingCR: "\r"}

// String returns the escaped separator, such as `\r\n`.
func (le LineEnding) String() string {
	return strings.NewReplacer("\r", `\r`, "\n", `\n`).Replace(le.Sequence())
}

// Sequence returns the separator bytes.
func (le LineEnding) Sequence() string {
	if int(le) < len(lineEndings) {
		return lineEndings[le]
	}
	return "\n"
}

type Option func(*Buffer)

// WithLineEnding sets the separator Contents writes. Lines are always
// held with "\n".
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}

// WithTabWidth sets the tab width reported to collaborators. Non-positive
// widths are ignored.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}

// DetectLineEnding returns the separator used most in text. Ties prefer
// CRLF, then CR; text without separators is LF.
func DetectLineEnding(text string) LineEnding {
	crlf := strings.Count(text, "\r\n")
	cr := strings.Count(text, "\r") - crlf
	lf := strings.Count(text, "\n") - crlf
	switch {
	case crlf > 0 && crlf >= lf && crlf >= cr:
		return LineEndingCRLF
	case cr > 0 && cr >= lf:
		return LineEndingCR
	}
	return LineEndingLF
}

var crNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// normalizeLineEndings rewrites every separator as "\n".
func normalizeLineEndings(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	return crNormalizer.Replace(s)
}
