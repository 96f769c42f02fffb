package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/renderer/style"
)

// Chroma tokenizes snapshots with a chroma lexer and keeps the resulting
// spans per line until the next Reapply.
type Chroma struct {
	lexer    chroma.Lexer
	lines    [][]Span
	revision buffer.RevisionID
	runs     int
}

// NewChroma creates a highlighter for a language name or alias known to
// chroma ("go", "python", "c++"). Unknown languages use the plain-text
// fallback lexer.
func NewChroma(language string) *Chroma {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &Chroma{lexer: chroma.Coalesce(lexer)}
}

// ChromaForFile creates a highlighter from a file name.
func ChromaForFile(filename string) *Chroma {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &Chroma{lexer: chroma.Coalesce(lexer)}
}

// Language returns the name of the lexer in use.
func (c *Chroma) Language() string {
	return c.lexer.Config().Name
}

// Reapply retokenizes the whole snapshot. A tokenizer failure leaves every
// line unstyled rather than keeping stale spans.
func (c *Chroma) Reapply(snap *buffer.Snapshot) {
	c.runs++
	c.revision = snap.RevisionID()
	c.lines = make([][]Span, snap.LineCount())

	iterator, err := c.lexer.Tokenise(nil, snap.Text())
	if err != nil {
		return
	}

	line, col := 0, 0
	for _, tok := range iterator.Tokens() {
		name := StyleName(tok.Type)
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				line++
				col = 0
			}
			if line >= len(c.lines) {
				return
			}
			if part != "" && name != style.NameText {
				c.lines[line] = append(c.lines[line], Span{Start: col, End: col + len(part), Style: name})
			}
			col += len(part)
		}
	}
}

// Line returns the spans of a line from the last Reapply.
func (c *Chroma) Line(line uint32) []Span {
	if int(line) >= len(c.lines) {
		return nil
	}
	return c.lines[line]
}

// Revision returns the revision of the last snapshot tokenized.
func (c *Chroma) Revision() buffer.RevisionID {
	return c.revision
}

// Runs returns how many times Reapply has been called.
func (c *Chroma) Runs() int {
	return c.runs
}

// StyleName maps a chroma token type to an editor style name.
func StyleName(tt chroma.TokenType) string {
	switch {
	case tt == chroma.CommentPreproc || tt.InSubCategory(chroma.CommentPreproc):
		return style.NamePreprocessor
	case tt.InCategory(chroma.Comment):
		return style.NameComment
	case tt == chroma.KeywordType:
		return style.NameType
	case tt.InCategory(chroma.Keyword):
		return style.NameKeyword
	case tt.InSubCategory(chroma.LiteralString):
		return style.NameString
	case tt.InSubCategory(chroma.LiteralNumber):
		return style.NameNumber
	case tt == chroma.NameFunction || tt == chroma.NameBuiltin:
		return style.NameFunction
	case tt == chroma.NameClass:
		return style.NameType
	default:
		return style.NameText
	}
}
