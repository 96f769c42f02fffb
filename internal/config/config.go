package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dshills/quill/internal/completion"
	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/engine/brackets"
	"github.com/dshills/quill/internal/input/key"
	"github.com/dshills/quill/internal/language"
	"github.com/dshills/quill/internal/logging"
	"github.com/dshills/quill/internal/renderer/style"
)

// Config is the complete quill configuration.
type Config struct {
	Editor     EditorConfig       `toml:"editor" yaml:"editor" json:"editor"`
	Completion CompletionConfig   `toml:"completion" yaml:"completion" json:"completion"`
	Pairs      []string           `toml:"pairs" yaml:"pairs" json:"pairs" jsonschema:"description=Delimiter pairs as two-character strings; order decides which pair wins"`
	BlockPairs []string           `toml:"block_pairs" yaml:"block_pairs" json:"block_pairs" jsonschema:"description=Pairs that Enter expands between"`
	Languages  []language.Profile `toml:"languages,omitempty" yaml:"languages,omitempty" json:"languages,omitempty"`
	Bindings   map[string]string  `toml:"bindings,omitempty" yaml:"bindings,omitempty" json:"bindings,omitempty" jsonschema:"description=Interactive shortcuts from key spec to operation name"`
	Style      StyleConfig        `toml:"style" yaml:"style" json:"style"`
	Logging    LoggingConfig      `toml:"logging" yaml:"logging" json:"logging"`
}

// EditorConfig holds the editing behavior settings.
type EditorConfig struct {
	TabWidth              int  `toml:"tab_width" yaml:"tab_width" json:"tab_width" jsonschema:"minimum=1,maximum=16"`
	ReplaceTab            bool `toml:"replace_tab" yaml:"replace_tab" json:"replace_tab"`
	TabReplaceSize        int  `toml:"tab_replace_size" yaml:"tab_replace_size" json:"tab_replace_size" jsonschema:"minimum=1,maximum=16"`
	AutoIndentation       bool `toml:"auto_indentation" yaml:"auto_indentation" json:"auto_indentation"`
	AutoParentheses       bool `toml:"auto_parentheses" yaml:"auto_parentheses" json:"auto_parentheses"`
	AutoRemoveParentheses bool `toml:"auto_remove_parentheses" yaml:"auto_remove_parentheses" json:"auto_remove_parentheses"`
	ReadOnly              bool `toml:"read_only" yaml:"read_only" json:"read_only"`
}

// CompletionConfig holds the completion settings.
type CompletionConfig struct {
	Enabled   bool     `toml:"enabled" yaml:"enabled" json:"enabled"`
	MinPrefix int      `toml:"min_prefix" yaml:"min_prefix" json:"min_prefix" jsonschema:"minimum=1"`
	EndOfWord string   `toml:"end_of_word" yaml:"end_of_word" json:"end_of_word"`
	Keywords  []string `toml:"keywords,omitempty" yaml:"keywords,omitempty" json:"keywords,omitempty"`
	Limit     int      `toml:"limit" yaml:"limit" json:"limit" jsonschema:"minimum=1"`
}

// StyleConfig selects the color scheme and overrides individual formats.
type StyleConfig struct {
	Scheme  string                `toml:"scheme" yaml:"scheme" json:"scheme" jsonschema:"description=default or the name of a chroma style"`
	Formats map[string]style.Spec `toml:"formats,omitempty" yaml:"formats,omitempty" json:"formats,omitempty"`
}

// LoggingConfig holds the logger settings.
type LoggingConfig struct {
	Level      string `toml:"level" yaml:"level" json:"level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
	Timestamps bool   `toml:"timestamps" yaml:"timestamps" json:"timestamps"`
}

// Default returns the built-in configuration.
func Default() *Config {
	f := editor.DefaultFeatures()
	return &Config{
		Editor: EditorConfig{
			TabWidth:              4,
			ReplaceTab:            f.ReplaceTab,
			TabReplaceSize:        f.TabReplaceSize,
			AutoIndentation:       f.AutoIndentation,
			AutoParentheses:       f.AutoParentheses,
			AutoRemoveParentheses: f.AutoRemoveParentheses,
		},
		Completion: CompletionConfig{
			Enabled:   true,
			MinPrefix: editor.DefaultMinPrefix,
			EndOfWord: editor.DefaultEndOfWord,
			Limit:     completion.DefaultLimit,
		},
		Pairs:      brackets.DefaultTable().Strings(),
		BlockPairs: []string{"{}"},
		Style:      StyleConfig{Scheme: "default"},
		Logging:    LoggingConfig{Level: "info"},
	}
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(path, msg string, value any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}

	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		invalid("editor.tab_width", "must be between 1 and 16", c.Editor.TabWidth)
	}
	if c.Editor.TabReplaceSize < 1 || c.Editor.TabReplaceSize > 16 {
		invalid("editor.tab_replace_size", "must be between 1 and 16", c.Editor.TabReplaceSize)
	}
	if c.Completion.MinPrefix < 1 {
		invalid("completion.min_prefix", "must be at least 1", c.Completion.MinPrefix)
	}
	if c.Completion.Limit < 1 {
		invalid("completion.limit", "must be at least 1", c.Completion.Limit)
	}
	for i, p := range c.Pairs {
		if utf8.RuneCountInString(p) != 2 {
			invalid(fmt.Sprintf("pairs[%d]", i), "must be exactly two characters", p)
		}
	}
	for i, p := range c.BlockPairs {
		if utf8.RuneCountInString(p) != 2 {
			invalid(fmt.Sprintf("block_pairs[%d]", i), "must be exactly two characters", p)
		}
	}
	for i, l := range c.Languages {
		if strings.TrimSpace(l.Name) == "" {
			invalid(fmt.Sprintf("languages[%d].name", i), "must not be empty", l.Name)
		}
		if (l.BlockStart == "") != (l.BlockEnd == "") {
			invalid(fmt.Sprintf("languages[%d]", i), "block_start and block_end must be set together", l.Name)
		}
	}
	for spec := range c.Bindings {
		if _, err := key.Parse(spec); err != nil {
			invalid("bindings."+spec, err.Error(), spec)
		}
	}
	if _, err := c.StyleProvider(); err != nil {
		invalid("style", err.Error(), c.Style.Scheme)
	}
	if !logLevels[strings.ToLower(c.Logging.Level)] {
		invalid("logging.level", "unknown level", c.Logging.Level)
	}
	return errors.Join(errs...)
}

// Features returns the editor feature toggles.
func (c *Config) Features() editor.Features {
	return editor.Features{
		AutoIndentation:       c.Editor.AutoIndentation,
		AutoParentheses:       c.Editor.AutoParentheses,
		AutoRemoveParentheses: c.Editor.AutoRemoveParentheses,
		ReplaceTab:            c.Editor.ReplaceTab,
		TabReplaceSize:        c.Editor.TabReplaceSize,
	}
}

// PairTable returns the delimiter table.
func (c *Config) PairTable() brackets.Table {
	return brackets.ParseTable(c.Pairs)
}

// BlockPairTable returns the delimiters Enter expands between.
func (c *Config) BlockPairTable() brackets.Table {
	return brackets.ParseTable(c.BlockPairs)
}

// StyleProvider builds the configured scheme: the built-in default or a
// chroma style, with the configured formats layered on top.
func (c *Config) StyleProvider() (*style.Scheme, error) {
	var base *style.Scheme
	switch name := c.Style.Scheme; name {
	case "", "default":
		base = style.Default()
	default:
		var err error
		if base, err = style.FromChroma(name); err != nil {
			return nil, err
		}
	}
	if len(c.Style.Formats) == 0 {
		return base, nil
	}
	return style.SchemeFromSpecs(base.Name(), base, c.Style.Formats)
}

// Registry returns the builtin languages plus the configured ones.
// Configured profiles replace builtins of the same name.
func (c *Config) Registry() (*language.Registry, error) {
	r := language.NewRegistry()
	for _, p := range c.Languages {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Logger creates a logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *logging.Logger {
	cfg := logging.DefaultConfig()
	cfg.Output = w
	cfg.Level = logging.ParseLevel(c.Logging.Level)
	cfg.Timestamps = c.Logging.Timestamps
	return logging.New(cfg)
}

// EditorOptions returns the editor options the configuration implies.
// source feeds the word completion provider.
func (c *Config) EditorOptions(source func() string) []editor.Option {
	opts := []editor.Option{
		editor.WithFeatures(c.Features()),
		editor.WithBlockPairs(c.BlockPairTable()),
	}
	if c.Completion.Enabled {
		provider := completion.NewWordProvider(source,
			completion.WithKeywords(c.Completion.Keywords...),
			completion.WithLimit(c.Completion.Limit),
		)
		opts = append(opts,
			editor.WithCompletion(provider),
			editor.WithMinPrefix(c.Completion.MinPrefix),
			editor.WithEndOfWord(c.Completion.EndOfWord),
		)
	}
	return opts
}
