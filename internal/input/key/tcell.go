package key

import "github.com/gdamore/tcell/v2"

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

// FromTcell converts a terminal key event into an Event.
// Control characters reported as their own keys (Ctrl+A..Ctrl+Z,
// Ctrl+Space) become rune events with Ctrl held; Backtab becomes Shift+Tab.
func FromTcell(ev *tcell.EventKey) Event {
	mods := convertMod(ev.Modifiers())
	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		return stamped(NewRuneEvent(ev.Rune(), mods), ev)
	case k == tcell.KeyBacktab:
		return stamped(NewSpecialEvent(KeyTab, mods.With(ModShift)), ev)
	}
	if mapped, ok := tcellKeys[k]; ok {
		return stamped(NewSpecialEvent(mapped, mods), ev)
	}
	switch {
	case k == tcell.KeyCtrlSpace:
		return stamped(NewRuneEvent(' ', mods.With(ModCtrl)), ev)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return stamped(NewRuneEvent(r, mods.With(ModCtrl)), ev)
	}
	return stamped(NewSpecialEvent(KeyNone, mods), ev)
}

func stamped(e Event, ev *tcell.EventKey) Event {
	e.Timestamp = ev.When()
	return e
}

func convertMod(m tcell.ModMask) Modifier {
	var result Modifier
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModMeta
	}
	return result
}
