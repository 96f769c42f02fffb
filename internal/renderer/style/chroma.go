package style

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// chromaNames maps editor style names to the chroma token types they are
// read from.
var chromaNames = map[string]chroma.TokenType{
	NameText:              chroma.Background,
	NameKeyword:           chroma.Keyword,
	NameComment:           chroma.Comment,
	NameString:            chroma.LiteralString,
	NameNumber:            chroma.LiteralNumber,
	NameFunction:          chroma.NameFunction,
	NameType:              chroma.KeywordType,
	NamePreprocessor:      chroma.CommentPreproc,
	NameLineNumber:        chroma.LineNumbers,
	NameCurrentLineNumber: chroma.LineNumbers,
	NameParentheses:       chroma.Punctuation,
}

// FromChroma builds a scheme from a registered chroma style such as
// "monokai" or "github".
func FromChroma(name string) (*Scheme, error) {
	sty, ok := styles.Registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, name)
	}
	return fromChromaStyle(sty), nil
}

// ChromaSchemes returns the names of the available chroma styles.
func ChromaSchemes() []string {
	return styles.Names()
}

func fromChromaStyle(sty *chroma.Style) *Scheme {
	s := NewScheme(sty.Name)
	for name, tt := range chromaNames {
		s.Set(name, formatFromEntry(sty.Get(tt)))
	}

	hl := sty.Get(chroma.LineHighlight)
	cur := Neutral
	cur.Background = colour(hl.Background)
	s.Set(NameCurrentLine, cur)

	sel := Neutral
	sel.Background = colour(hl.Background)
	sel.Foreground = colour(sty.Get(chroma.Background).Colour)
	s.Set(NameSelection, sel)

	paren := s.Lookup(NameParentheses)
	paren.Bold = true
	paren.Background = cur.Background
	s.Set(NameParentheses, paren)

	cln := s.Lookup(NameCurrentLineNumber)
	cln.Bold = true
	s.Set(NameCurrentLineNumber, cln)

	s.Set(NameOccurrence, Neutral.Underlined())
	return s
}

func formatFromEntry(e chroma.StyleEntry) Format {
	return Format{
		Foreground:     colour(e.Colour),
		Background:     colour(e.Background),
		Bold:           e.Bold == chroma.Yes,
		Italic:         e.Italic == chroma.Yes,
		Underline:      underline(e.Underline),
		UnderlineColor: ColorDefault,
	}
}

func underline(t chroma.Trilean) UnderlineStyle {
	if t == chroma.Yes {
		return UnderlineSingle
	}
	return UnderlineNone
}

func colour(c chroma.Colour) Color {
	if !c.IsSet() {
		return ColorDefault
	}
	return RGB(c.Red(), c.Green(), c.Blue())
}
