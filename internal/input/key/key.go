package key

import "strings"

// Key identifies a keyboard key. Printable keys use KeyRune together with
// the Rune field of Event.
type Key uint16

const (
	KeyNone Key = iota
	KeyRune

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
}

// String returns the canonical name of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsFunction reports whether k is one of F1 through F12.
func (k Key) IsFunction() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsNavigation reports whether k moves the cursor without editing.
func (k Key) IsNavigation() bool {
	switch k {
	case KeyHome, KeyEnd, KeyPageUp, KeyPageDown, KeyUp, KeyDown, KeyLeft, KeyRight:
		return true
	}
	return false
}

// aliases accepted by KeyFromName in addition to the canonical names.
var keyAliases = map[string]Key{
	"esc":      KeyEscape,
	"cr":       KeyEnter,
	"return":   KeyEnter,
	"ret":      KeyEnter,
	"bs":       KeyBackspace,
	"del":      KeyDelete,
	"ins":      KeyInsert,
	"pgup":     KeyPageUp,
	"pgdn":     KeyPageDown,
	"backtab":  KeyTab,
	"pageup":   KeyPageUp,
	"pagedown": KeyPageDown,
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames)+len(keyAliases))
	for k, name := range keyNames {
		if k == KeyNone || k == KeyRune {
			continue
		}
		m[strings.ToLower(name)] = k
	}
	for name, k := range keyAliases {
		m[name] = k
	}
	return m
}()

// KeyFromName looks up a key by name, case-insensitively.
// Returns KeyNone when the name is not recognized.
func KeyFromName(name string) Key {
	return keysByName[strings.ToLower(name)]
}
