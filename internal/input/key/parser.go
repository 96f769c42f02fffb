package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// Parse parses a single keystroke: a character such as "a" or "(",
// or an angle-bracket form such as "<Tab>", "<C-Space>" or "<C-S-Enter>".
func Parse(spec string) (Event, error) {
	if spec == "" {
		return Event{}, ErrEmptySpec
	}
	if strings.HasPrefix(spec, "<") && len(spec) > 1 {
		if !strings.HasSuffix(spec, ">") {
			return Event{}, fmt.Errorf("%w: %q", ErrUnmatchedBracket, spec)
		}
		return parseBracketed(spec[1 : len(spec)-1])
	}
	r, size := utf8.DecodeRuneInString(spec)
	if size != len(spec) {
		return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}
	return runeEvent(r, ModNone), nil
}

// MustParse is like Parse but panics on error.
func MustParse(spec string) Event {
	e, err := Parse(spec)
	if err != nil {
		panic("key: " + err.Error())
	}
	return e
}

// ParseSequence splits s into keystrokes. Characters outside angle brackets
// are typed literally. A bracketed group that is not a named key or a
// modified key, such as "<a>" or "<b c>", is typed literally too.
func ParseSequence(s string) ([]Event, error) {
	var events []Event
	for len(s) > 0 {
		if s[0] == '<' {
			if end := strings.IndexByte(s, '>'); end > 1 {
				if e, ok := keyForm(s[1:end]); ok {
					events = append(events, e)
					s = s[end+1:]
					continue
				}
			}
		}
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size <= 1 {
			return nil, fmt.Errorf("%w: invalid UTF-8", ErrInvalidSpec)
		}
		events = append(events, typedEvent(r))
		s = s[size:]
	}
	return events, nil
}

// FormatSequence is the inverse of ParseSequence.
func FormatSequence(events []Event) string {
	var b strings.Builder
	for _, e := range events {
		b.WriteString(e.String())
	}
	return b.String()
}

func keyForm(inner string) (Event, bool) {
	if utf8.RuneCountInString(inner) == 1 {
		return Event{}, false
	}
	e, err := parseBracketed(inner)
	return e, err == nil
}

func parseBracketed(inner string) (Event, error) {
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}
	var mods Modifier
	for {
		i := strings.IndexByte(inner, '-')
		if i <= 0 || i == len(inner)-1 {
			break
		}
		mod := ModifierFromName(inner[:i])
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, inner[:i])
		}
		mods = mods.With(mod)
		inner = inner[i+1:]
	}

	switch strings.ToLower(inner) {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	case "bar":
		return NewRuneEvent('|', mods), nil
	case "backtab":
		return NewSpecialEvent(KeyTab, mods.With(ModShift)), nil
	}
	if k := KeyFromName(inner); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}
	r, size := utf8.DecodeRuneInString(inner)
	if size == len(inner) && r != utf8.RuneError {
		if mods.HasCtrl() {
			r = unicode.ToLower(r)
		}
		return runeEvent(r, mods), nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, inner)
}

// typedEvent maps a literal character in a sequence to its keystroke.
func typedEvent(r rune) Event {
	switch r {
	case '\n', '\r':
		return NewSpecialEvent(KeyEnter, ModNone)
	case '\t':
		return NewSpecialEvent(KeyTab, ModNone)
	case '\b':
		return NewSpecialEvent(KeyBackspace, ModNone)
	case 0x1b:
		return NewSpecialEvent(KeyEscape, ModNone)
	case 0x7f:
		return NewSpecialEvent(KeyDelete, ModNone)
	}
	return runeEvent(r, ModNone)
}

func runeEvent(r rune, mods Modifier) Event {
	if unicode.IsUpper(r) {
		mods = mods.With(ModShift)
	}
	return NewRuneEvent(r, mods)
}
