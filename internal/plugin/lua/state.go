package lua

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/language"
	"github.com/dshills/quill/internal/logging"
)

// DefaultTimeout bounds a single Run.
const DefaultTimeout = 5 * time.Second

// State is a sandboxed Lua interpreter bound to one editor.
type State struct {
	mu sync.Mutex

	L         *lua.LState
	ed        *editor.Editor
	languages *language.Registry
	timeout   time.Duration
	output    io.Writer
	log       *logging.Logger

	closed bool
}

// Option configures a State.
type Option func(*State)

// WithTimeout sets how long a script may run. Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(s *State) {
		s.timeout = d
	}
}

// WithOutput redirects the print function. The default discards output.
func WithOutput(w io.Writer) Option {
	return func(s *State) {
		if w != nil {
			s.output = w
		}
	}
}

// WithRegistry sets the language registry scripts look up and extend.
func WithRegistry(r *language.Registry) Option {
	return func(s *State) {
		if r != nil {
			s.languages = r
		}
	}
}

// WithLogger sets the logger behind editor.log.
func WithLogger(l *logging.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.log = l
		}
	}
}

// NewState creates a sandboxed state whose editor table drives ed.
func NewState(ed *editor.Editor, opts ...Option) *State {
	s := &State{
		ed:        ed,
		languages: language.NewRegistry(),
		timeout:   DefaultTimeout,
		output:    io.Discard,
		log:       logging.Null(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithComponent("lua")

	s.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(s.L)
	s.sandbox()
	s.installEditor()
	return s
}

// openSafeLibraries opens only the libraries that cannot reach the host.
func openSafeLibraries(L *lua.LState) {
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
}

// sandbox removes the base functions that load code and replaces print.
func (s *State) sandbox() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module", "getfenv", "setfenv"} {
		s.L.SetGlobal(name, lua.LNil)
	}
	s.L.SetGlobal("print", s.L.NewFunction(s.print))
}

func (s *State) print(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, n)
	for i := 1; i <= n; i++ {
		parts[i-1] = L.ToStringMeta(L.Get(i)).String()
	}
	_, _ = io.WriteString(s.output, strings.Join(parts, "\t")+"\n")
	return 0
}

// Run executes code. name appears in error messages.
func (s *State) Run(ctx context.Context, name, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	fn, err := s.L.Load(strings.NewReader(code), name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScript, err)
	}

	err = s.doWithRecovery(func() error {
		s.L.Push(fn)
		return s.L.PCall(0, 0, nil)
	})
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", name, ErrExecutionTimeout)
	case ctx.Err() != nil:
		return fmt.Errorf("%s: %w", name, ctx.Err())
	}
	return fmt.Errorf("%w: %v", ErrScript, err)
}

// RunFile executes the script at path.
func (s *State) RunFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script %s: %w", path, err)
	}
	return s.Run(ctx, filepath.Base(path), string(data))
}

func (s *State) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// Registry returns the language registry scripts see.
func (s *State) Registry() *language.Registry {
	return s.languages
}

// Close releases the interpreter. Later calls to Run return
// ErrStateClosed.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}
