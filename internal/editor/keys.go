package editor

import (
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/cursor"
	"github.com/dshills/quill/internal/engine/transform"
	"github.com/dshills/quill/internal/input/key"
)

// caret is the cursor and its line at the moment of a keystroke.
type caret struct {
	snap      *buffer.Snapshot
	sel       cursor.Selection
	pos       buffer.ByteOffset
	line      uint32
	lineStart buffer.ByteOffset
	lineText  string
}

func (ed *Editor) caret() caret {
	snap := ed.eng.Snapshot()
	sel := ed.eng.Selection()
	line := snap.LineOfOffset(sel.Cursor())
	return caret{
		snap:      snap,
		sel:       sel,
		pos:       sel.Cursor(),
		line:      line,
		lineStart: snap.LineStartOffset(line),
		lineText:  snap.LineText(line),
	}
}

// col is the byte column of the cursor on its line.
func (c caret) col() int {
	return int(c.pos - c.lineStart)
}

// around returns the runes before and after the cursor on its line.
// Zero means none.
func (c caret) around() (prev rune, prevSize int, next rune, nextSize int) {
	if c.col() > 0 {
		prev, prevSize = c.snap.RuneBefore(c.pos)
	}
	if c.col() < len(c.lineText) {
		next, nextSize = c.snap.RuneAt(c.pos)
	}
	return prev, prevSize, next, nextSize
}

func isEnter(ev key.Event) bool {
	return ev.Key == key.KeyEnter
}

// edit dispatches a keystroke to the first behavior that claims it.
func (ed *Editor) edit(ev key.Event) bool {
	switch {
	case ev.Is(key.KeyTab, key.ModNone):
		return ed.tab()
	case ev.Key == key.KeyTab && ev.Modifiers == key.ModShift:
		ed.eng.Unindent(true)
		return true
	}

	if isEnter(ev) && ev.Modifiers == key.ModNone && ed.features.AutoIndentation {
		if ed.blockBreak() {
			return true
		}
	}

	if ev.Is(key.KeyBackspace, key.ModNone) && ed.features.AutoRemoveParentheses {
		if ed.removePair() {
			return true
		}
	}

	if ed.features.AutoParentheses && ev.IsRune() && ev.Text() != "" {
		if ed.wrapSelection(ev.Rune) {
			return true
		}
	}

	if isEnter(ev) && !ev.Modifiers.HasAlt() {
		return ed.lineBreak(ev.Modifiers)
	}

	return ed.basic(ev)
}

func (ed *Editor) tab() bool {
	if !ed.eng.Selection().IsEmpty() {
		ed.eng.Indent()
		return true
	}
	return ed.eng.Insert(ed.features.TabString())
}


// blockBreak handles Enter right after a block-open delimiter.
func (ed *Editor) blockBreak() bool {
	c := ed.caret()
	if !c.sel.IsEmpty() {
		return false
	}
	prev, _, next, _ := c.around()
	ind := transform.Indentation(c.lineText)
	tab := ed.features.TabString()

	for _, p := range ed.blockPairs {
		if prev != p.Open {
			continue
		}
		if next == p.Close {
			text := "\n" + ind + tab + "\n" + ind
			park := c.pos + buffer.ByteOffset(1+len(ind)+len(tab))
			_, ok := ed.eng.Replace(c.pos, c.pos, text, cursor.NewCursorSelection(park))
			return ok
		}
		return ed.eng.Insert("\n" + ind + tab)
	}
	return false
}

// lineBreak inserts a new line carrying the indentation. Ctrl opens a line
// below the current one; Ctrl+Shift opens one above.
func (ed *Editor) lineBreak(mods key.Modifier) bool {
	c := ed.caret()
	ind := transform.Indentation(c.lineText)

	switch mods {
	case key.ModCtrl:
		end := c.lineStart + buffer.ByteOffset(len(c.lineText))
		after := cursor.NewCursorSelection(end + buffer.ByteOffset(1+len(ind)))
		_, ok := ed.eng.Replace(end, end, "\n"+ind, after)
		return ok
	case key.ModCtrl | key.ModShift:
		above := ""
		if c.line > 0 {
			above = transform.Indentation(c.snap.LineText(c.line - 1))
		}
		after := cursor.NewCursorSelection(c.lineStart + buffer.ByteOffset(len(above)))
		_, ok := ed.eng.Replace(c.lineStart, c.lineStart, above+"\n", after)
		return ok
	}
	return ed.eng.Insert("\n" + ind)
}

// removePair deletes an empty delimiter pair around the cursor.
func (ed *Editor) removePair() bool {
	c := ed.caret()
	if !c.sel.IsEmpty() {
		return false
	}
	prev, prevSize, next, nextSize := c.around()
	if prevSize == 0 || nextSize == 0 {
		return false
	}
	for _, p := range ed.eng.Pairs() {
		if p.Open == prev && p.Close == next {
			start := c.pos - buffer.ByteOffset(prevSize)
			_, ok := ed.eng.Replace(start, c.pos+buffer.ByteOffset(nextSize), "", cursor.NewCursorSelection(start))
			return ok
		}
	}
	return false
}

// wrapSelection surrounds a non-empty selection with the pair opened by r
// and selects the wrapped text.
func (ed *Editor) wrapSelection(r rune) bool {
	sel := ed.eng.Selection()
	if sel.IsEmpty() {
		return false
	}
	p, ok := ed.eng.Pairs().ByOpen(r)
	if !ok {
		return false
	}
	start, end := sel.Start(), sel.End()
	text := string(p.Open) + ed.eng.Snapshot().TextRange(start, end) + string(p.Close)
	after := cursor.Oriented(start, start+buffer.ByteOffset(len(text)), sel.Orientation())
	_, ok = ed.eng.Replace(start, end, text, after)
	return ok
}

// basic is the behavior of a plain text field.
func (ed *Editor) basic(ev key.Event) bool {
	switch ev.Key {
	case key.KeyRune:
		text := ev.Text()
		if text == "" {
			return false
		}
		return ed.typeRune(ev.Rune, text)
	case key.KeyTab:
		if ev.Modifiers != key.ModNone {
			return false
		}
		return ed.eng.Insert("\t")
	case key.KeyBackspace:
		if ev.IsModified() {
			return false
		}
		return ed.deleteBackward()
	case key.KeyDelete:
		if ev.IsModified() {
			return false
		}
		return ed.deleteForward()
	case key.KeyLeft, key.KeyRight, key.KeyHome, key.KeyEnd, key.KeyUp, key.KeyDown:
		return ed.move(ev)
	}
	return false
}

// typeRune inserts typed text, stepping over a pending close and
// auto-inserting the partner of an opening delimiter.
func (ed *Editor) typeRune(r rune, text string) bool {
	if ed.features.AutoParentheses && ed.overtype(r) {
		return true
	}
	if !ed.eng.Insert(text) {
		return false
	}
	if !ed.features.AutoParentheses {
		return true
	}
	for _, p := range ed.eng.Pairs() {
		if p.Open == r {
			pos := ed.eng.Selection().Cursor()
			if _, ok := ed.eng.Replace(pos, pos, string(p.Close), cursor.NewCursorSelection(pos)); ok {
				ed.pending = append(ed.pending, pos)
			}
			break
		}
		if p.Close == r {
			break
		}
	}
	return true
}

func (ed *Editor) overtype(r rune) bool {
	c := ed.caret()
	if !c.sel.IsEmpty() {
		return false
	}
	if _, ok := ed.eng.Pairs().ByClose(r); !ok {
		return false
	}
	next, size := c.snap.RuneAt(c.pos)
	if size == 0 || next != r {
		return false
	}
	for i, off := range ed.pending {
		if off == c.pos {
			ed.pending = append(ed.pending[:i], ed.pending[i+1:]...)
			ed.eng.SetSelection(cursor.NewCursorSelection(c.pos + buffer.ByteOffset(size)))
			return true
		}
	}
	return false
}

func (ed *Editor) deleteBackward() bool {
	sel := ed.eng.Selection()
	if !sel.IsEmpty() {
		return ed.eng.Insert("")
	}
	_, size := ed.eng.Snapshot().RuneBefore(sel.Head)
	if size == 0 {
		return true
	}
	start := sel.Head - buffer.ByteOffset(size)
	_, ok := ed.eng.Replace(start, sel.Head, "", cursor.NewCursorSelection(start))
	return ok
}

func (ed *Editor) deleteForward() bool {
	sel := ed.eng.Selection()
	if !sel.IsEmpty() {
		return ed.eng.Insert("")
	}
	_, size := ed.eng.Snapshot().RuneAt(sel.Head)
	if size == 0 {
		return true
	}
	_, ok := ed.eng.Replace(sel.Head, sel.Head+buffer.ByteOffset(size), "", sel)
	return ok
}

// move handles cursor keys. Shift extends the selection; without it a
// selection collapses toward the key's direction first.
func (ed *Editor) move(ev key.Event) bool {
	c := ed.caret()
	extend := ev.Modifiers.HasShift()
	target := c.pos

	switch ev.Key {
	case key.KeyLeft:
		if !extend && !c.sel.IsEmpty() {
			target = c.sel.Start()
			break
		}
		_, size := c.snap.RuneBefore(c.pos)
		target -= buffer.ByteOffset(size)
	case key.KeyRight:
		if !extend && !c.sel.IsEmpty() {
			target = c.sel.End()
			break
		}
		_, size := c.snap.RuneAt(c.pos)
		target += buffer.ByteOffset(size)
	case key.KeyHome:
		target = c.lineStart
	case key.KeyEnd:
		target = c.lineStart + buffer.ByteOffset(len(c.lineText))
	case key.KeyUp, key.KeyDown:
		line := c.line
		switch {
		case ev.Key == key.KeyUp && line > 0:
			line--
		case ev.Key == key.KeyDown && line+1 < c.snap.LineCount():
			line++
		}
		col := buffer.ByteOffset(c.col())
		if n := buffer.ByteOffset(c.snap.LineLen(line)); col > n {
			col = n
		}
		target = c.snap.Clamp(c.snap.LineStartOffset(line) + col)
	}

	if extend {
		ed.eng.SetSelection(c.sel.Extend(target))
	} else {
		ed.eng.SetSelection(c.sel.MoveTo(target))
	}
	return true
}
