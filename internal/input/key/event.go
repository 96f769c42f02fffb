package key

import (
	"fmt"
	"time"
	"unicode"
)

// Event is a single keystroke.
type Event struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
	Timestamp time.Time
}

// NewRuneEvent creates an event for a printable key.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods, Timestamp: time.Now()}
}

// NewSpecialEvent creates an event for a non-printable key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods, Timestamp: time.Now()}
}

// IsRune reports whether the event carries a character.
func (e Event) IsRune() bool { return e.Key == KeyRune }

// IsModified reports whether Ctrl, Alt or Meta is held.
// Shift alone does not count; it only changes the character produced.
func (e Event) IsModified() bool {
	return e.Modifiers.HasCtrl() || e.Modifiers.HasAlt() || e.Modifiers.HasMeta()
}

// Is reports whether the event is key k with exactly the modifiers mods.
func (e Event) Is(k Key, mods Modifier) bool {
	return e.Key == k && e.Modifiers == mods
}

// IsChar reports whether the event types r without Ctrl, Alt or Meta.
func (e Event) IsChar(r rune) bool {
	return e.IsRune() && e.Rune == r && !e.IsModified()
}

// Text returns the text carried by the keystroke, or "" if none.
// Printable keys yield their character unless Ctrl, Alt or Meta is held.
// Enter, Tab, Backspace, Escape and Delete yield their control characters.
func (e Event) Text() string {
	switch e.Key {
	case KeyRune:
		if e.IsModified() || !unicode.IsPrint(e.Rune) {
			return ""
		}
		return string(e.Rune)
	case KeyEnter:
		return "\r"
	case KeyTab:
		return "\t"
	case KeyBackspace:
		return "\b"
	case KeyEscape:
		return "\x1b"
	case KeyDelete:
		return "\x7f"
	}
	return ""
}

// String returns the event in the notation accepted by Parse.
func (e Event) String() string {
	if e.IsRune() {
		switch {
		case e.Rune == ' ':
			return "<" + e.Modifiers.short() + "Space>"
		case e.Rune == '<':
			return "<" + e.Modifiers.short() + "lt>"
		case e.Modifiers.Without(ModShift) == ModNone:
			return string(e.Rune)
		}
		return "<" + e.Modifiers.Without(ModShift).short() + string(e.Rune) + ">"
	}
	name := e.Key.String()
	switch e.Key {
	case KeyEnter:
		name = "CR"
	case KeyBackspace:
		name = "BS"
	case KeyEscape:
		name = "Esc"
	case KeyDelete:
		name = "Del"
	}
	return "<" + e.Modifiers.short() + name + ">"
}

// Equals reports whether two events describe the same keystroke.
// Timestamps are not compared.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key && e.Rune == other.Rune && e.Modifiers == other.Modifiers
}

// GoString implements fmt.GoStringer.
func (e Event) GoString() string {
	return fmt.Sprintf("key.Event{Key: %s, Rune: %q, Modifiers: %s}", e.Key, e.Rune, e.Modifiers)
}
