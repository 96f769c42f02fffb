package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/quill/internal/completion"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/cursor"
	"github.com/dshills/quill/internal/input/key"
)

// popupOwns reports whether a visible completion popup handles ev itself.
func (ed *Editor) popupOwns(ev key.Event) bool {
	if ed.provider == nil || !ed.session.Visible() {
		return false
	}
	switch ev.Key {
	case key.KeyEnter, key.KeyEscape, key.KeyTab:
		return true
	}
	return false
}

func (ed *Editor) isCompletionShortcut(ev key.Event) bool {
	return ev.Modifiers.HasCtrl() && ev.IsRune() && ev.Rune == ' '
}

// updateCompletion decides, after a keystroke, whether the session closes,
// stays as it is or is (re)queried with the prefix at the cursor.
func (ed *Editor) updateCompletion(ev key.Event) {
	if ed.provider == nil || ev.Key == key.KeyDelete {
		return
	}
	text := ev.Text()
	if text == "" && (ev.Modifiers.HasCtrl() || ev.Modifiers.HasShift()) && !ed.isCompletionShortcut(ev) {
		return
	}

	prefix := ed.Prefix()
	if !ed.isCompletionShortcut(ev) {
		last, _ := utf8.DecodeLastRuneInString(text)
		if text == "" || utf8.RuneCountInString(prefix) < ed.minPrefix || strings.ContainsRune(ed.endOfWord, last) {
			ed.session.Hide()
			return
		}
	}

	if !ed.session.SetPrefix(prefix) && ed.session.Visible() {
		return
	}
	ed.query(prefix)
}

func (ed *Editor) query(prefix string) {
	items, err := ed.provider.Complete(completion.Query{
		Prefix:  prefix,
		Offset:  ed.eng.Selection().Cursor(),
		Session: ed.session.ID(),
	})
	if err != nil {
		ed.log.Warn("completion session %s for %q: %v", ed.session.ID(), prefix, err)
		ed.session.Hide()
		return
	}
	if len(items) == 0 {
		ed.session.Hide()
		return
	}
	ed.session.Show(items)
}

// Prefix returns the identifier run ending at the cursor.
func (ed *Editor) Prefix() string {
	c := ed.caret()
	return completion.PrefixAt(c.lineText, c.col())
}

// DismissCompletion hides the completion popup.
func (ed *Editor) DismissCompletion() {
	ed.session.Hide()
}

// AcceptCompletion replaces the word under the cursor with text and closes
// the session.
func (ed *Editor) AcceptCompletion(text string) bool {
	c := ed.caret()
	from, to := completion.WordBounds(c.lineText, c.col())
	start := c.lineStart + buffer.ByteOffset(from)
	end := c.lineStart + buffer.ByteOffset(to)
	_, ok := ed.eng.Replace(start, end, text, cursor.NewCursorSelection(start+buffer.ByteOffset(len(text))))
	ed.session.Reset()
	return ok
}

// AcceptCurrent accepts the selected item of a visible session.
func (ed *Editor) AcceptCurrent() bool {
	item, ok := ed.session.Current()
	if !ok {
		return false
	}
	return ed.AcceptCompletion(item.Text())
}
