package lua

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
)

func newState(t *testing.T, content string, opts ...Option) *State {
	t.Helper()
	ed := editor.New(engine.New(engine.WithContent(content)))
	s := NewState(ed, opts...)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func run(t *testing.T, s *State, code string) {
	t.Helper()
	if err := s.Run(context.Background(), "test", code); err != nil {
		t.Fatalf("Run(%q): %v", code, err)
	}
}

func TestSandbox(t *testing.T) {
	s := newState(t, "")

	tests := []struct {
		name string
		code string
	}{
		{"io", "io.write('x')"},
		{"os", "os.exit(1)"},
		{"require", "require('os')"},
		{"dofile", "dofile('/etc/passwd')"},
		{"loadstring", "loadstring('return 1')()"},
		{"load", "load(function() return nil end)"},
		{"debug", "debug.getinfo(1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Run(context.Background(), tt.name, tt.code)
			if !errors.Is(err, ErrScript) {
				t.Errorf("Run(%q) = %v, want ErrScript", tt.code, err)
			}
		})
	}
}

func TestSafeLibraries(t *testing.T) {
	var out strings.Builder
	s := newState(t, "", WithOutput(&out))
	run(t, s, `print(string.upper("ab"), math.max(1, 3), #table.concat({"x", "y"}))`)
	if got := out.String(); got != "AB\t3\t2\n" {
		t.Errorf("print output = %q", got)
	}
}

func TestSyntaxError(t *testing.T) {
	s := newState(t, "")
	err := s.Run(context.Background(), "broken", "if then")
	if !errors.Is(err, ErrScript) {
		t.Errorf("Run = %v, want ErrScript", err)
	}
}

func TestTimeout(t *testing.T) {
	s := newState(t, "", WithTimeout(50*time.Millisecond))
	err := s.Run(context.Background(), "spin", "while true do end")
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Errorf("Run = %v, want ErrExecutionTimeout", err)
	}
	run(t, s, "local x = 1")
}

func TestCancel(t *testing.T) {
	s := newState(t, "", WithTimeout(0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Run(ctx, "spin", "while true do end")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}

func TestClosed(t *testing.T) {
	s := newState(t, "")
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
	if err := s.Run(context.Background(), "x", "local a = 1"); !errors.Is(err, ErrStateClosed) {
		t.Errorf("Run after Close = %v, want ErrStateClosed", err)
	}
}

func TestRunFile(t *testing.T) {
	s := newState(t, "abc")
	path := filepath.Join(t.TempDir(), "edit.lua")
	if err := os.WriteFile(path, []byte(`editor.select(3) editor.insert("def")`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.RunFile(context.Background(), path); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if got := s.ed.Engine().Text(); got != "abcdef" {
		t.Errorf("text = %q, want abcdef", got)
	}

	if err := s.RunFile(context.Background(), filepath.Join(t.TempDir(), "none.lua")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("RunFile(missing) = %v, want ErrNotExist", err)
	}
}
