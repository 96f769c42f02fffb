package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/cursor"
	"github.com/dshills/quill/internal/language"
	"github.com/dshills/quill/internal/logging"
	"github.com/dshills/quill/internal/renderer/style"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Features() != editor.DefaultFeatures() {
		t.Errorf("Features() = %+v, want %+v", cfg.Features(), editor.DefaultFeatures())
	}
	if got := cfg.PairTable().Strings(); strings.Join(got, " ") != strings.Join(cfg.Pairs, " ") {
		t.Errorf("PairTable().Strings() = %v, want %v", got, cfg.Pairs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		path   string
	}{
		{"tab width zero", func(c *Config) { c.Editor.TabWidth = 0 }, "editor.tab_width"},
		{"tab width large", func(c *Config) { c.Editor.TabWidth = 17 }, "editor.tab_width"},
		{"tab replace size", func(c *Config) { c.Editor.TabReplaceSize = 0 }, "editor.tab_replace_size"},
		{"min prefix", func(c *Config) { c.Completion.MinPrefix = 0 }, "completion.min_prefix"},
		{"limit", func(c *Config) { c.Completion.Limit = -1 }, "completion.limit"},
		{"pair length", func(c *Config) { c.Pairs = []string{"()", "<<>"} }, "pairs[1]"},
		{"block pair length", func(c *Config) { c.BlockPairs = []string{"{"} }, "block_pairs[0]"},
		{"language name", func(c *Config) { c.Languages = append(c.Languages, language.Profile{}) }, "languages[0].name"},
		{"scheme", func(c *Config) { c.Style.Scheme = "no-such-scheme" }, "style"},
		{"format", func(c *Config) {
			c.Style.Formats = map[string]style.Spec{"Text": {Foreground: "chartreuse-ish"}}
		}, "style"},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"binding", func(c *Config) { c.Bindings = map[string]string{"<Nope>": "comment"} }, "bindings.<Nope>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("Validate() = %v, want ErrValidationFailed", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if verr.Path != tt.path {
				t.Errorf("Path = %q, want %q", verr.Path, tt.path)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Editor.TabWidth = 0
	cfg.Logging.Level = "loud"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil")
	}
	for _, want := range []string{"editor.tab_width", "logging.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "quill.toml", `
pairs = ["()", "[]"]

[editor]
tab_width = 8
replace_tab = false
auto_parentheses = false

[completion]
min_prefix = 3
keywords = ["func", "return"]

[[languages]]
name = "Zig"
aliases = ["zig"]
line_comment = "//"

[style]
scheme = "monokai"

[style.formats.CurrentLine]
background = "#303030"
bold = true

[logging]
level = "debug"

[bindings]
"<C-l>" = "comment"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.TabWidth != 8 {
		t.Errorf("TabWidth = %d, want 8", cfg.Editor.TabWidth)
	}
	if cfg.Editor.ReplaceTab || cfg.Editor.AutoParentheses {
		t.Errorf("editor = %+v, want replace_tab and auto_parentheses off", cfg.Editor)
	}
	if !cfg.Editor.AutoIndentation {
		t.Error("AutoIndentation lost its default")
	}
	if cfg.Completion.MinPrefix != 3 || len(cfg.Completion.Keywords) != 2 {
		t.Errorf("completion = %+v", cfg.Completion)
	}
	if cfg.Bindings["<C-l>"] != "comment" {
		t.Errorf("Bindings = %v", cfg.Bindings)
	}
	if len(cfg.Pairs) != 2 {
		t.Errorf("Pairs = %v, want 2 entries", cfg.Pairs)
	}

	reg, err := cfg.Registry()
	if err != nil {
		t.Fatalf("Registry: %v", err)
	}
	zig, err := reg.Get("zig")
	if err != nil || zig.LineComment != "//" {
		t.Errorf("Get(zig) = %+v, %v", zig, err)
	}

	scheme, err := cfg.StyleProvider()
	if err != nil {
		t.Fatalf("StyleProvider: %v", err)
	}
	cur := scheme.Lookup(style.NameCurrentLine)
	if cur.Background != style.RGB(0x30, 0x30, 0x30) || !cur.Bold {
		t.Errorf("CurrentLine = %+v", cur)
	}
	if !scheme.Has(style.NameKeyword) {
		t.Error("chroma base formats missing")
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "quill.yaml", `
editor:
  tab_width: 2
  read_only: true
block_pairs: ["{}", "[]"]
completion:
  enabled: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.TabWidth != 2 || !cfg.Editor.ReadOnly {
		t.Errorf("editor = %+v", cfg.Editor)
	}
	if cfg.Completion.Enabled {
		t.Error("completion still enabled")
	}
	if got := cfg.BlockPairTable().Strings(); len(got) != 2 {
		t.Errorf("BlockPairTable = %v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "none.toml"))
		if !errors.Is(err, ErrFileNotFound) {
			t.Errorf("err = %v, want ErrFileNotFound", err)
		}
	})

	t.Run("extension", func(t *testing.T) {
		_, err := Load(writeFile(t, "quill.ini", "x=1"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("err = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("toml syntax", func(t *testing.T) {
		_, err := Load(writeFile(t, "quill.toml", "[editor]\ntab_width = = 4\n"))
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("err = %v, want *ParseError", err)
		}
		if perr.Line != 2 {
			t.Errorf("Line = %d, want 2", perr.Line)
		}
	})

	t.Run("toml unknown key", func(t *testing.T) {
		_, err := Load(writeFile(t, "quill.toml", "[editor]\ntab_size = 4\n"))
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("err = %v, want *ParseError", err)
		}
		if !strings.Contains(perr.Message, "tab_size") {
			t.Errorf("Message = %q, want the key named", perr.Message)
		}
	})

	t.Run("yaml unknown key", func(t *testing.T) {
		_, err := Load(writeFile(t, "quill.yml", "editor:\n  tab_size: 4\n"))
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("err = %v, want *ParseError", err)
		}
		if perr.Line != 2 {
			t.Errorf("Line = %d, want 2", perr.Line)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := Load(writeFile(t, "quill.toml", "[editor]\ntab_width = 99\n"))
		if !errors.Is(err, ErrValidationFailed) {
			t.Errorf("err = %v, want ErrValidationFailed", err)
		}
	})
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("QUILL_TAB_WIDTH", "3")
	t.Setenv("QUILL_AUTO_PARENTHESES", "false")
	t.Setenv("QUILL_KEYWORDS", "alpha  beta")
	t.Setenv("QUILL_LOG_LEVEL", "warn")

	cfg := Default()
	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Editor.TabWidth != 3 {
		t.Errorf("TabWidth = %d, want 3", cfg.Editor.TabWidth)
	}
	if cfg.Editor.AutoParentheses {
		t.Error("AutoParentheses still on")
	}
	if strings.Join(cfg.Completion.Keywords, ",") != "alpha,beta" {
		t.Errorf("Keywords = %v", cfg.Completion.Keywords)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
}

func TestApplyEnvOverridesFile(t *testing.T) {
	t.Setenv("QUILL_TAB_WIDTH", "6")
	cfg, err := Load(writeFile(t, "quill.toml", "[editor]\ntab_width = 2\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.TabWidth != 6 {
		t.Errorf("TabWidth = %d, want 6", cfg.Editor.TabWidth)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv("QUILL_REPLACE_TAB", "maybe")
	err := ApplyEnv(Default())
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Path != "QUILL_REPLACE_TAB" {
		t.Errorf("ApplyEnv = %v, want a QUILL_REPLACE_TAB validation error", err)
	}
}

func TestEditorOptions(t *testing.T) {
	cfg := Default()
	cfg.Editor.ReplaceTab = false

	eng := engine.New(engine.WithContent("alpha alps "))
	eng.SetSelection(cursor.NewCursorSelection(eng.Len()))
	ed := editor.New(eng, cfg.EditorOptions(eng.Text)...)

	if ed.Features().ReplaceTab {
		t.Error("ReplaceTab not applied")
	}
	if eng.IndentString() != "\t" {
		t.Errorf("IndentString = %q, want tab", eng.IndentString())
	}
	if err := ed.Type("al"); err != nil {
		t.Fatal(err)
	}
	if !ed.Session().Visible() {
		t.Error("completion not shown with completion enabled")
	}

	cfg.Completion.Enabled = false
	eng = engine.New(engine.WithContent("alpha alps "))
	eng.SetSelection(cursor.NewCursorSelection(eng.Len()))
	ed = editor.New(eng, cfg.EditorOptions(eng.Text)...)
	if err := ed.Type("al"); err != nil {
		t.Fatal(err)
	}
	if ed.Session().Visible() {
		t.Error("completion shown with completion disabled")
	}
}

func TestLogger(t *testing.T) {
	var sb strings.Builder
	cfg := Default()
	cfg.Logging.Level = "warn"
	log := cfg.Logger(&sb)

	log.Info("hidden")
	log.Warn("shown %d", 1)
	if strings.Contains(sb.String(), "hidden") {
		t.Errorf("info written at warn level: %q", sb.String())
	}
	if !strings.Contains(sb.String(), "shown 1") {
		t.Errorf("warning missing: %q", sb.String())
	}
	if !log.Enabled(logging.LevelError) || log.Enabled(logging.LevelInfo) {
		t.Error("Enabled does not follow the configured level")
	}
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	if err != nil {
		t.Fatalf("Schema: %v", err)
	}
	for _, want := range []string{`"tab_width"`, `"min_prefix"`, `"block_pairs"`, `"additionalProperties": false`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("schema lacks %s", want)
		}
	}
}

func TestWatch(t *testing.T) {
	path := writeFile(t, "quill.toml", "[editor]\ntab_width = 4\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan *Config, 8)
	err := Watch(ctx, path, func(cfg *Config, err error) {
		if err == nil {
			reloads <- cfg
		}
	}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(path, []byte("[editor]\ntab_width = 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-reloads:
			if cfg.Editor.TabWidth == 8 {
				return
			}
		case <-timeout:
			t.Fatal("no reload after the file changed")
		}
	}
}

func TestWatchUnsupported(t *testing.T) {
	err := Watch(context.Background(), "quill.json", func(*Config, error) {})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Watch = %v, want ErrUnsupportedFormat", err)
	}
}
