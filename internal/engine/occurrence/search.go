package occurrence

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/quill/internal/engine/buffer"
)

// Find returns the spans of every whole-word, case-sensitive occurrence of
// the text selected by sel, except sel itself. It returns nil when the
// selection is empty or not a token. A selection past the end of text is
// clamped first.
func Find(text string, sel buffer.Range) []buffer.Range {
	sel = sel.Clamp(buffer.ByteOffset(len(text)))
	if sel.IsEmpty() {
		return nil
	}
	needle := text[sel.Start:sel.End]
	if !IsToken(needle) {
		return nil
	}

	var spans []buffer.Range
	for _, r := range WholeWords(text, needle) {
		if r != sel {
			spans = append(spans, r)
		}
	}
	return spans
}

// WholeWords returns the non-overlapping occurrences of needle in text that
// are bounded on both sides by a non-word rune or the edge of the text.
func WholeWords(text, needle string) []buffer.Range {
	if needle == "" {
		return nil
	}

	var spans []buffer.Range
	for from := 0; from <= len(text)-len(needle); {
		i := strings.Index(text[from:], needle)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(needle)
		if isBoundary(text, start, end) {
			spans = append(spans, buffer.NewRange(buffer.ByteOffset(start), buffer.ByteOffset(end)))
			from = end
			continue
		}
		from = start + 1
	}
	return spans
}

func isBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
