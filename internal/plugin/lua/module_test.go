package lua

import (
	"context"
	"errors"
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/cursor"
	"github.com/dshills/quill/internal/language"
	"github.com/dshills/quill/internal/logging"
	"github.com/dshills/quill/internal/renderer/gutter"
)

func TestEditorOperations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    string
		want    string
	}{
		{"indent", "a\nb", "editor.select(0, 3) editor.indent()", "    a\n    b"},
		{"unindent", "    a", "editor.unindent()", "a"},
		{"unindent force", "  a", "editor.unindent(true)", "a"},
		{"swap down", "one\ntwo", "editor.swap_down()", "two\none"},
		{"swap up", "one\ntwo", "editor.select(5) editor.swap_up()", "two\none"},
		{"delete line", "one\ntwo\nthree", "editor.select(5) editor.delete_line()", "one\nthree"},
		{"insert", "ab", "editor.select(1) editor.insert('X')", "aXb"},
		{"replace", "hello world", "editor.replace(0, 5, 'bye')", "bye world"},
		{"keys", "", "editor.keys('<Tab>foo(<BS>')", "    foo"},
		{"keys pair", "", "editor.keys('f(x')", "f(x)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newState(t, tt.content)
			run(t, s, tt.code)
			if got := s.ed.Engine().Text(); got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelection(t *testing.T) {
	s := newState(t, "héllo")
	run(t, s, `a, h = editor.select(0, 2)`)

	want := cursor.NewSelection(0, 1)
	if got := s.ed.Engine().Selection(); got != want {
		t.Errorf("selection = %s, want %s", got, want)
	}
	if a, h := s.L.GetGlobal("a"), s.L.GetGlobal("h"); a != lua.LNumber(0) || h != lua.LNumber(1) {
		t.Errorf("select returned %v, %v; want 0, 1", a, h)
	}

	run(t, s, `editor.select(99) a, h = editor.selection()`)
	if h := s.L.GetGlobal("h"); h != lua.LNumber(6) {
		t.Errorf("selection head = %v, want 6", h)
	}
}

func TestReadAccessors(t *testing.T) {
	s := newState(t, "one\ntwo")
	run(t, s, `
		text = editor.text()
		count = editor.line_count()
		second = editor.line(1)
		ro = editor.read_only()
	`)

	checks := map[string]lua.LValue{
		"text":   lua.LString("one\ntwo"),
		"count":  lua.LNumber(2),
		"second": lua.LString("two"),
		"ro":     lua.LFalse,
	}
	for name, want := range checks {
		if got := s.L.GetGlobal(name); got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}

	err := s.Run(context.Background(), "range", "editor.line(5)")
	if !errors.Is(err, ErrScript) {
		t.Errorf("line(5) = %v, want ErrScript", err)
	}
}

func TestReadOnlyRefusal(t *testing.T) {
	ed := editor.New(engine.New(engine.WithContent("x"), engine.WithReadOnly()))
	s := NewState(ed)
	defer s.Close()

	run(t, s, `ok = editor.insert("y") ro = editor.read_only() r = editor.replace(0, 1, "z")`)
	for _, name := range []string{"ok", "r"} {
		if got := s.L.GetGlobal(name); got != lua.LFalse {
			t.Errorf("%s = %v, want false", name, got)
		}
	}
	if got := s.L.GetGlobal("ro"); got != lua.LTrue {
		t.Errorf("read_only() = %v, want true", got)
	}
	if ed.Engine().Text() != "x" {
		t.Errorf("text changed to %q", ed.Engine().Text())
	}
}

func TestLanguages(t *testing.T) {
	s := newState(t, "x = 1")
	run(t, s, `
		editor.register_language{name = "Nim", aliases = {"nim"}, line_comment = "#"}
		found = editor.set_language("nim")
		missing = editor.set_language("cobol-2099")
		name = editor.language()
		editor.toggle_comment()
	`)

	if got := s.L.GetGlobal("found"); got != lua.LTrue {
		t.Errorf("set_language(nim) = %v", got)
	}
	if got := s.L.GetGlobal("missing"); got != lua.LFalse {
		t.Errorf("set_language(unknown) = %v", got)
	}
	if got := s.L.GetGlobal("name"); got != lua.LString("Nim") {
		t.Errorf("language() = %v, want Nim", got)
	}
	if got := s.ed.Engine().Text(); got != "# x = 1" {
		t.Errorf("text = %q, want commented", got)
	}
	if _, err := s.Registry().Get("nim"); err != nil {
		t.Errorf("registry lookup: %v", err)
	}
}

func TestSharedRegistry(t *testing.T) {
	reg := language.NewRegistry()
	ed := editor.New(engine.New())
	s := NewState(ed, WithRegistry(reg))
	defer s.Close()

	run(t, s, `editor.register_language{name = "Odin", line_comment = "//"}`)
	if _, err := reg.Get("odin"); err != nil {
		t.Errorf("profile not registered in the shared registry: %v", err)
	}

	err := s.Run(context.Background(), "bad", `editor.register_language{}`)
	if !errors.Is(err, ErrScript) {
		t.Errorf("register_language without name = %v, want ErrScript", err)
	}
}

func TestHighlights(t *testing.T) {
	s := newState(t, "(a)")
	run(t, s, `
		editor.select(0)
		spans = editor.highlights()
		n = #spans
		first = spans[1].style
		last_end = spans[n]["end"]
	`)

	if got := s.L.GetGlobal("n"); got != lua.LNumber(3) {
		t.Fatalf("#spans = %v, want 3", got)
	}
	if got := s.L.GetGlobal("first"); got != lua.LString("CurrentLine") {
		t.Errorf("first style = %v", got)
	}
	if got := s.L.GetGlobal("last_end"); got != lua.LNumber(3) {
		t.Errorf("last end = %v, want 3", got)
	}
}

func TestLint(t *testing.T) {
	ann := gutter.NewAnnotations()
	ed := editor.New(engine.New(engine.WithContent("a\nb\nc"), engine.WithGutter(ann)))
	s := NewState(ed)
	defer s.Close()

	run(t, s, `editor.lint(1, 2, "warning")`)
	if got := ann.At(1); got != gutter.SeverityWarning {
		t.Errorf("At(1) = %v, want warning", got)
	}

	run(t, s, `editor.clear_lint()`)
	if got := ann.At(1); got != gutter.SeverityNone {
		t.Errorf("At(1) after clear = %v", got)
	}

	err := s.Run(context.Background(), "bad", `editor.lint(0, 0, "fatal")`)
	if !errors.Is(err, ErrScript) {
		t.Errorf("lint with bad severity = %v, want ErrScript", err)
	}
}

func TestLog(t *testing.T) {
	var sb strings.Builder
	cfg := logging.DefaultConfig()
	cfg.Output = &sb
	cfg.Timestamps = false
	s := newState(t, "", WithLogger(logging.New(cfg)))

	run(t, s, `editor.log("hello from lua")`)
	if !strings.Contains(sb.String(), "hello from lua") || !strings.Contains(sb.String(), "component=lua") {
		t.Errorf("log output = %q", sb.String())
	}
}

func TestKeysError(t *testing.T) {
	s := newState(t, "")
	err := s.Run(context.Background(), "keys", `editor.keys("\255")`)
	if !errors.Is(err, ErrScript) {
		t.Errorf("keys with bad sequence = %v, want ErrScript", err)
	}
}
