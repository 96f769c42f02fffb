// Package view draws an engine onto a terminal screen.
//
// Each frame composes, from bottom to top: the Text format, the current
// line, syntax token colors, the engine's paired-delimiter and occurrence
// highlights, and finally the selection.
package view

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/renderer/gutter"
	"github.com/dshills/quill/internal/renderer/highlight"
	"github.com/dshills/quill/internal/renderer/style"
)

// Tokens supplies syntax spans per line. highlight.Chroma implements it.
type Tokens interface {
	Line(line uint32) []highlight.Span
}

// View renders one engine. It remembers the first visible line between
// frames so the cursor line stays in view.
type View struct {
	eng    *engine.Engine
	tokens Tokens
	gutter *gutter.Annotations
	status func() string
	top    uint32
}

// Option configures a View.
type Option func(*View)

// WithTokens colors text with syntax spans.
func WithTokens(t Tokens) Option {
	return func(v *View) {
		v.tokens = t
	}
}

// WithGutter draws severity glyphs from a. Without it the gutter shows
// line numbers only.
func WithGutter(a *gutter.Annotations) Option {
	return func(v *View) {
		v.gutter = a
	}
}

// WithStatus reserves the bottom row for the text fn returns.
func WithStatus(fn func() string) Option {
	return func(v *View) {
		v.status = fn
	}
}

// New creates a view of eng.
func New(eng *engine.Engine, opts ...Option) *View {
	v := &View{eng: eng}
	for _, opt := range opts {
		opt(v)
	}
	if v.gutter == nil {
		v.gutter = gutter.NewAnnotations()
	}
	return v
}

// Top returns the first visible line of the last frame.
func (v *View) Top() uint32 {
	return v.top
}

// scroll keeps line within height rows starting at top.
func (v *View) scroll(line uint32, height int) {
	if height <= 0 {
		return
	}
	switch {
	case line < v.top:
		v.top = line
	case line >= v.top+uint32(height):
		v.top = line - uint32(height) + 1
	}
}

// Draw renders a full frame and places the terminal cursor.
func (v *View) Draw(s tcell.Screen) {
	width, height := s.Size()
	if v.status != nil {
		height--
	}
	snap := v.eng.Snapshot()
	sel := v.eng.Selection()
	count := snap.LineCount()
	cursorLine := snap.LineOfOffset(sel.Cursor())
	v.scroll(cursorLine, height)

	pal := v.eng.Palette()
	provider := v.eng.StyleProvider()
	lineNumber := overlay(pal.Text, provider.Lookup(style.NameLineNumber))
	currentNumber := overlay(pal.Text, provider.Lookup(style.NameCurrentLineNumber))
	current := overlay(pal.Text, v.eng.ResolveStyle(engine.StyleCurrentLine))
	spans := v.eng.Highlights()
	gw := gutter.Width(count)
	tabWidth := v.eng.TabWidth()

	cx, cy := -1, -1
	for row := 0; row < height; row++ {
		line := v.top + uint32(row)
		if line >= count {
			fill(s, 0, row, width, toTcell(pal.Text))
			continue
		}

		numFmt, lineFmt := lineNumber, pal.Text
		if line == cursorLine && !v.eng.ReadOnly() {
			numFmt, lineFmt = currentNumber, current
		}
		x := put(s, 0, row, width, v.gutter.Render(line, count), toTcell(numFmt))
		x = fill(s, x, row, gw, toTcell(numFmt))

		start := snap.LineStartOffset(line)
		var tokens []highlight.Span
		if v.tokens != nil {
			tokens = v.tokens.Line(line)
		}
		for i, r := range snap.LineText(line) {
			off := start + buffer.ByteOffset(i)
			if off == sel.Cursor() {
				cx, cy = x, row
			}
			f := lineFmt
			if t, ok := tokenAt(tokens, i); ok {
				f = overlay(f, provider.Lookup(t.Style))
			}
			for _, h := range spans {
				if h.Kind != engine.StyleCurrentLine && h.Range.Contains(off) {
					f = overlay(f, v.eng.ResolveStyle(h.Kind))
				}
			}
			if !sel.IsEmpty() && off >= sel.Start() && off < sel.End() {
				f = overlay(f, pal.Selection)
			}

			st := toTcell(f)
			if r == '\t' {
				n := tabWidth - (x-gw)%tabWidth
				x = fill(s, x, row, min(width, x+n), st)
				continue
			}
			w := runewidth.RuneWidth(r)
			if w == 0 {
				w = 1
			}
			if x+w > width {
				break
			}
			s.SetContent(x, row, r, nil, st)
			x += w
		}
		if sel.Cursor() == snap.LineEndOffset(line) && cx < 0 {
			cx, cy = x, row
		}
		fill(s, x, row, width, toTcell(lineFmt))
	}

	if v.status != nil && height >= 0 {
		st := toTcell(pal.Text).Reverse(true)
		x := put(s, 0, height, width, v.status(), st)
		fill(s, x, height, width, st)
	}

	if cx >= 0 && cx < width {
		s.ShowCursor(cx, cy)
	} else {
		s.HideCursor()
	}
	s.Show()
}

func tokenAt(tokens []highlight.Span, col int) (highlight.Span, bool) {
	for _, t := range tokens {
		if col >= t.Start && col < t.End {
			return t, true
		}
	}
	return highlight.Span{}, false
}

// put writes text from x and returns the next column.
func put(s tcell.Screen, x, y, width int, text string, st tcell.Style) int {
	for _, r := range text {
		if x >= width {
			break
		}
		s.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// fill paints blanks from x up to end and returns end.
func fill(s tcell.Screen, x, y, end int, st tcell.Style) int {
	for ; x < end; x++ {
		s.SetContent(x, y, ' ', nil, st)
	}
	return max(x, end)
}

// overlay draws top over base. Default colors and a missing underline
// let base show through.
func overlay(base, top style.Format) style.Format {
	if !top.Foreground.IsDefault() {
		base.Foreground = top.Foreground
	}
	if !top.Background.IsDefault() {
		base.Background = top.Background
	}
	base.Bold = base.Bold || top.Bold
	base.Italic = base.Italic || top.Italic
	if top.Underline != style.UnderlineNone {
		base.Underline = top.Underline
		base.UnderlineColor = top.UnderlineColor
	}
	return base
}

func toTcell(f style.Format) tcell.Style {
	return tcell.StyleDefault.
		Foreground(color(f.Foreground)).
		Background(color(f.Background)).
		Bold(f.Bold).
		Italic(f.Italic).
		Underline(f.Underline != style.UnderlineNone)
}

func color(c style.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
