package key

import "strings"

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether every modifier in mod is held.
func (m Modifier) Has(mod Modifier) bool { return m&mod == mod }

// HasShift reports whether Shift is held.
func (m Modifier) HasShift() bool { return m&ModShift != 0 }

// HasCtrl reports whether Ctrl is held.
func (m Modifier) HasCtrl() bool { return m&ModCtrl != 0 }

// HasAlt reports whether Alt is held.
func (m Modifier) HasAlt() bool { return m&ModAlt != 0 }

// HasMeta reports whether Meta is held.
func (m Modifier) HasMeta() bool { return m&ModMeta != 0 }

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier { return m | mod }

// Without returns m with mod cleared.
func (m Modifier) Without(mod Modifier) Modifier { return m &^ mod }

// modifierOrder is the order modifiers are written in, with their long and
// angle-bracket names.
var modifierOrder = []struct {
	mod         Modifier
	long, short string
}{
	{ModCtrl, "Ctrl", "C-"},
	{ModAlt, "Alt", "A-"},
	{ModShift, "Shift", "S-"},
	{ModMeta, "Meta", "M-"},
}

// String returns a representation like "Ctrl+Shift".
func (m Modifier) String() string {
	if m == ModNone {
		return "None"
	}
	parts := make([]string, 0, len(modifierOrder))
	for _, o := range modifierOrder {
		if m.Has(o.mod) {
			parts = append(parts, o.long)
		}
	}
	return strings.Join(parts, "+")
}

// short returns the angle-bracket prefix, e.g. "C-S-".
func (m Modifier) short() string {
	var b strings.Builder
	for _, o := range modifierOrder {
		if m.Has(o.mod) {
			b.WriteString(o.short)
		}
	}
	return b.String()
}

var modifierNames = map[string]Modifier{
	"c":       ModCtrl,
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"a":       ModAlt,
	"alt":     ModAlt,
	"opt":     ModAlt,
	"option":  ModAlt,
	"s":       ModShift,
	"shift":   ModShift,
	"m":       ModMeta,
	"d":       ModMeta,
	"meta":    ModMeta,
	"cmd":     ModMeta,
	"super":   ModMeta,
}

// ModifierFromName returns the modifier for a name such as "C" or "ctrl".
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	return modifierNames[strings.ToLower(name)]
}
