// Package style resolves named text formats for the editor surface.
//
// Formats are looked up by name through a Provider. The editing engine asks
// for a small set of names (CurrentLine, Parentheses, Occurrence, Text,
// Selection); a missing name always resolves to Neutral.
package style

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned while building schemes.
var (
	// ErrInvalidColor indicates a color string could not be parsed.
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidUnderline indicates an unknown underline style name.
	ErrInvalidUnderline = errors.New("invalid underline style")

	// ErrUnknownScheme indicates a named color scheme does not exist.
	ErrUnknownScheme = errors.New("unknown color scheme")
)

// UnderlineStyle is the kind of underline drawn under text.
type UnderlineStyle uint8

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDash
	UnderlineDot
	UnderlineDashDot
	UnderlineDashDotDot
	UnderlineWave
	UnderlineSpellCheck
)

var underlineNames = map[UnderlineStyle]string{
	UnderlineNone:       "NoUnderline",
	UnderlineSingle:     "SingleUnderline",
	UnderlineDash:       "DashUnderline",
	UnderlineDot:        "DotLine",
	UnderlineDashDot:    "DashDotLine",
	UnderlineDashDotDot: "DashDotDotLine",
	UnderlineWave:       "WaveUnderline",
	UnderlineSpellCheck: "SpellCheckUnderline",
}

// String returns the underline style name.
func (u UnderlineStyle) String() string {
	if name, ok := underlineNames[u]; ok {
		return name
	}
	return "NoUnderline"
}

// ParseUnderlineStyle parses an underline style name such as
// "WaveUnderline". Matching is case-insensitive; "" means none.
func ParseUnderlineStyle(s string) (UnderlineStyle, error) {
	if s == "" {
		return UnderlineNone, nil
	}
	for u, name := range underlineNames {
		if strings.EqualFold(name, s) {
			return u, nil
		}
	}
	return UnderlineNone, fmt.Errorf("%w: %q", ErrInvalidUnderline, s)
}

// Format is the visual format of a span of text.
type Format struct {
	Foreground     Color
	Background     Color
	Bold           bool
	Italic         bool
	Underline      UnderlineStyle
	UnderlineColor Color
}

// Neutral is the format returned for names a provider does not know.
var Neutral = Format{
	Foreground:     ColorDefault,
	Background:     ColorDefault,
	UnderlineColor: ColorDefault,
}

// Underlined returns f with a single underline.
func (f Format) Underlined() Format {
	f.Underline = UnderlineSingle
	return f
}

// Provider resolves style names to formats. Lookup never fails; unknown
// names yield Neutral.
type Provider interface {
	Lookup(name string) Format
}

// Style names used by the editor.
const (
	NameText              = "Text"
	NameSelection         = "Selection"
	NameCurrentLine       = "CurrentLine"
	NameParentheses       = "Parentheses"
	NameOccurrence        = "Occurrence"
	NameLineNumber        = "LineNumber"
	NameCurrentLineNumber = "CurrentLineNumber"
	NameKeyword           = "Keyword"
	NameComment           = "Comment"
	NameString            = "String"
	NameNumber            = "Number"
	NameFunction          = "Function"
	NameType              = "Type"
	NamePreprocessor      = "Preprocessor"
)
