package language

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// ErrUnknownLanguage is returned when no profile matches a name.
var ErrUnknownLanguage = errors.New("unknown language")

// Registry maps language names and aliases to profiles.
// It is not safe for concurrent mutation.
type Registry struct {
	profiles map[string]Profile
	keys     map[string]string
}

// NewRegistry creates a registry holding the builtin profiles.
func NewRegistry() *Registry {
	r := &Registry{
		profiles: make(map[string]Profile),
		keys:     make(map[string]string),
	}
	for _, p := range Builtins() {
		_ = r.Register(p)
	}
	return r
}

// Register adds or replaces a profile. Its name and aliases become lookup
// keys, case-insensitively.
func (r *Registry) Register(p Profile) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("register language: %w: empty name", ErrUnknownLanguage)
	}
	name := strings.ToLower(p.Name)
	r.profiles[name] = p
	r.keys[name] = name
	for _, a := range p.Aliases {
		r.keys[strings.ToLower(a)] = name
	}
	return nil
}

// Get returns the profile registered under name or one of its aliases.
func (r *Registry) Get(name string) (Profile, error) {
	key, ok := r.keys[strings.ToLower(name)]
	if !ok {
		return Plain, fmt.Errorf("%w: %s", ErrUnknownLanguage, name)
	}
	return r.profiles[key], nil
}

// Names returns the registered profile names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for _, p := range r.profiles {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// ForFile picks a profile from a file name. The language is recognized by
// the chroma lexer whose filename patterns match; Plain and false are
// returned when no lexer or no profile matches.
func (r *Registry) ForFile(filename string) (Profile, bool) {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return Plain, false
	}
	return r.forLexer(lexer)
}

func (r *Registry) forLexer(lexer chroma.Lexer) (Profile, bool) {
	cfg := lexer.Config()
	if p, err := r.Get(cfg.Name); err == nil {
		return p, true
	}
	for _, alias := range cfg.Aliases {
		if p, err := r.Get(alias); err == nil {
			return p, true
		}
	}
	return Plain, false
}
