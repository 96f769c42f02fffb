package style

import (
	"fmt"
	"sort"
)

// Scheme is a named set of formats. It implements Provider.
type Scheme struct {
	name    string
	formats map[string]Format
}

// NewScheme creates an empty scheme.
func NewScheme(name string) *Scheme {
	return &Scheme{name: name, formats: make(map[string]Format)}
}

// Name returns the scheme name.
func (s *Scheme) Name() string {
	return s.name
}

// Set stores the format for name.
func (s *Scheme) Set(name string, f Format) {
	s.formats[name] = f
}

// Lookup returns the format for name, or Neutral.
func (s *Scheme) Lookup(name string) Format {
	if f, ok := s.formats[name]; ok {
		return f
	}
	return Neutral
}

// Has reports whether the scheme defines name.
func (s *Scheme) Has(name string) bool {
	_, ok := s.formats[name]
	return ok
}

// Names returns the defined style names, sorted.
func (s *Scheme) Names() []string {
	names := make([]string, 0, len(s.formats))
	for n := range s.formats {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Spec is the textual form of a Format as it appears in configuration.
type Spec struct {
	Foreground     string `toml:"foreground,omitempty" yaml:"foreground,omitempty" json:"foreground,omitempty"`
	Background     string `toml:"background,omitempty" yaml:"background,omitempty" json:"background,omitempty"`
	Bold           bool   `toml:"bold,omitempty" yaml:"bold,omitempty" json:"bold,omitempty"`
	Italic         bool   `toml:"italic,omitempty" yaml:"italic,omitempty" json:"italic,omitempty"`
	Underline      string `toml:"underline,omitempty" yaml:"underline,omitempty" json:"underline,omitempty" jsonschema:"enum=,enum=SingleUnderline,enum=DashUnderline,enum=DotLine,enum=DashDotLine,enum=DashDotDotLine,enum=WaveUnderline,enum=SpellCheckUnderline"`
	UnderlineColor string `toml:"underline_color,omitempty" yaml:"underline_color,omitempty" json:"underline_color,omitempty"`
}

// Format parses the spec.
func (sp Spec) Format() (Format, error) {
	var (
		f   Format
		err error
	)
	if f.Foreground, err = ParseColor(sp.Foreground); err != nil {
		return Format{}, fmt.Errorf("foreground: %w", err)
	}
	if f.Background, err = ParseColor(sp.Background); err != nil {
		return Format{}, fmt.Errorf("background: %w", err)
	}
	if f.Underline, err = ParseUnderlineStyle(sp.Underline); err != nil {
		return Format{}, err
	}
	if f.UnderlineColor, err = ParseColor(sp.UnderlineColor); err != nil {
		return Format{}, fmt.Errorf("underline_color: %w", err)
	}
	f.Bold = sp.Bold
	f.Italic = sp.Italic
	return f, nil
}

// SchemeFromSpecs builds a scheme from configuration entries. On top of
// base, when non-nil, every spec overrides the base format of its name.
func SchemeFromSpecs(name string, base *Scheme, specs map[string]Spec) (*Scheme, error) {
	s := NewScheme(name)
	if base != nil {
		for n, f := range base.formats {
			s.formats[n] = f
		}
	}
	for n, sp := range specs {
		f, err := sp.Format()
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", n, err)
		}
		s.formats[n] = f
	}
	return s, nil
}

// Default returns the built-in light scheme.
func Default() *Scheme {
	s := NewScheme("default")
	s.Set(NameText, Format{Foreground: RGB(0x00, 0x00, 0x00), Background: RGB(0xFF, 0xFF, 0xFF), UnderlineColor: ColorDefault})
	s.Set(NameSelection, Format{Foreground: ColorDefault, Background: RGB(0xC0, 0xDD, 0xFF), UnderlineColor: ColorDefault})
	s.Set(NameCurrentLine, Format{Foreground: ColorDefault, Background: RGB(0xEE, 0xF6, 0xFF), UnderlineColor: ColorDefault})
	s.Set(NameParentheses, Format{Foreground: RGB(0x00, 0x00, 0x00), Background: RGB(0xB4, 0xEE, 0xB4), Bold: true, UnderlineColor: ColorDefault})
	s.Set(NameOccurrence, Neutral.Underlined())
	s.Set(NameLineNumber, Format{Foreground: RGB(0x99, 0x99, 0x99), Background: ColorDefault, UnderlineColor: ColorDefault})
	s.Set(NameCurrentLineNumber, Format{Foreground: RGB(0x33, 0x33, 0x33), Background: ColorDefault, Bold: true, UnderlineColor: ColorDefault})
	s.Set(NameKeyword, Format{Foreground: RGB(0x00, 0x00, 0x80), Background: ColorDefault, Bold: true, UnderlineColor: ColorDefault})
	s.Set(NameComment, Format{Foreground: RGB(0x80, 0x80, 0x80), Background: ColorDefault, Italic: true, UnderlineColor: ColorDefault})
	s.Set(NameString, Format{Foreground: RGB(0x00, 0x80, 0x00), Background: ColorDefault, UnderlineColor: ColorDefault})
	s.Set(NameNumber, Format{Foreground: RGB(0x00, 0x00, 0xFF), Background: ColorDefault, UnderlineColor: ColorDefault})
	return s
}
