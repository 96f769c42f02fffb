package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file syntax.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Load reads the file at path over Default, applies QUILL_* environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := Default()
	if err := Decode(cfg, path, data, format); err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays data onto cfg. Unknown keys are rejected. source names
// the data in errors.
func Decode(cfg *Config, source string, data []byte, format Format) error {
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return tomlError(source, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return yamlError(source, err)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}
	return nil
}

func tomlError(source string, err error) error {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		pe.Line, pe.Column = derr.Position()
	}
	var serr *toml.StrictMissingError
	if errors.As(err, &serr) && len(serr.Errors) > 0 {
		pe.Line, pe.Column = serr.Errors[0].Position()
		pe.Message = "unknown key " + strings.Join(serr.Errors[0].Key(), ".")
	}
	return pe
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

func yamlError(source string, err error) error {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}
	if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
	}
	return pe
}

// envSetting maps one QUILL_* variable onto the configuration.
type envSetting struct {
	name string
	set  func(c *Config, v string) error
}

func envInt(dst func(*Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst(c) = n
		return nil
	}
}

func envBool(dst func(*Config) *bool) func(*Config, string) error {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst(c) = b
		return nil
	}
}

func envString(dst func(*Config) *string) func(*Config, string) error {
	return func(c *Config, v string) error {
		*dst(c) = v
		return nil
	}
}

func envList(dst func(*Config) *[]string) func(*Config, string) error {
	return func(c *Config, v string) error {
		*dst(c) = strings.Fields(v)
		return nil
	}
}

var envSettings = []envSetting{
	{"QUILL_TAB_WIDTH", envInt(func(c *Config) *int { return &c.Editor.TabWidth })},
	{"QUILL_REPLACE_TAB", envBool(func(c *Config) *bool { return &c.Editor.ReplaceTab })},
	{"QUILL_TAB_REPLACE_SIZE", envInt(func(c *Config) *int { return &c.Editor.TabReplaceSize })},
	{"QUILL_AUTO_INDENTATION", envBool(func(c *Config) *bool { return &c.Editor.AutoIndentation })},
	{"QUILL_AUTO_PARENTHESES", envBool(func(c *Config) *bool { return &c.Editor.AutoParentheses })},
	{"QUILL_AUTO_REMOVE_PARENTHESES", envBool(func(c *Config) *bool { return &c.Editor.AutoRemoveParentheses })},
	{"QUILL_READ_ONLY", envBool(func(c *Config) *bool { return &c.Editor.ReadOnly })},
	{"QUILL_COMPLETION", envBool(func(c *Config) *bool { return &c.Completion.Enabled })},
	{"QUILL_MIN_PREFIX", envInt(func(c *Config) *int { return &c.Completion.MinPrefix })},
	{"QUILL_KEYWORDS", envList(func(c *Config) *[]string { return &c.Completion.Keywords })},
	{"QUILL_PAIRS", envList(func(c *Config) *[]string { return &c.Pairs })},
	{"QUILL_STYLE_SCHEME", envString(func(c *Config) *string { return &c.Style.Scheme })},
	{"QUILL_LOG_LEVEL", envString(func(c *Config) *string { return &c.Logging.Level })},
}

// ApplyEnv overrides settings from QUILL_* environment variables.
// Empty values count as set. List variables are whitespace separated.
func ApplyEnv(cfg *Config) error {
	var errs []error
	for _, s := range envSettings {
		v, ok := os.LookupEnv(s.name)
		if !ok {
			continue
		}
		if err := s.set(cfg, v); err != nil {
			errs = append(errs, &ValidationError{Path: s.name, Message: err.Error(), Value: v})
		}
	}
	return errors.Join(errs...)
}
