package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/cursor"
	"github.com/dshills/quill/internal/language"
	"github.com/dshills/quill/internal/renderer/gutter"
)

func (s *State) installEditor() {
	mod := s.L.SetFuncs(s.L.NewTable(), map[string]lua.LGFunction{
		"text":                 s.text,
		"line_count":           s.lineCount,
		"line":                 s.line,
		"selection":            s.selection,
		"select":               s.selectRange,
		"insert":               s.insert,
		"replace":              s.replace,
		"indent":               s.op(func(e *engine.Engine) bool { return e.Indent() }),
		"unindent":             s.unindent,
		"toggle_comment":       s.op(func(e *engine.Engine) bool { return e.ToggleComment() }),
		"toggle_block_comment": s.op(func(e *engine.Engine) bool { return e.ToggleBlockComment() }),
		"swap_up":              s.op(func(e *engine.Engine) bool { return e.SwapLineUp() }),
		"swap_down":            s.op(func(e *engine.Engine) bool { return e.SwapLineDown() }),
		"delete_line":          s.op(func(e *engine.Engine) bool { return e.DeleteLine() }),
		"keys":                 s.keys,
		"read_only":            s.readOnly,
		"language":             s.language,
		"set_language":         s.setLanguage,
		"register_language":    s.registerLanguage,
		"highlights":           s.highlights,
		"lint":                 s.lint,
		"clear_lint":           s.clearLint,
		"log":                  s.logMessage,
	})
	s.L.SetGlobal("editor", mod)
}

func (s *State) eng() *engine.Engine {
	return s.ed.Engine()
}

func (s *State) op(fn func(*engine.Engine) bool) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LBool(fn(s.eng())))
		return 1
	}
}

func (s *State) text(L *lua.LState) int {
	L.Push(lua.LString(s.eng().Text()))
	return 1
}

func (s *State) lineCount(L *lua.LState) int {
	L.Push(lua.LNumber(s.eng().LineCount()))
	return 1
}

// line(n) returns line n, counted from 0, without its newline.
func (s *State) line(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 0 || uint32(n) >= s.eng().LineCount() {
		L.ArgError(1, "line out of range")
	}
	L.Push(lua.LString(s.eng().LineText(uint32(n))))
	return 1
}

func (s *State) pushSelection(L *lua.LState) int {
	sel := s.eng().Selection()
	L.Push(lua.LNumber(sel.Anchor))
	L.Push(lua.LNumber(sel.Head))
	return 2
}

// selection() returns anchor and head.
func (s *State) selection(L *lua.LState) int {
	return s.pushSelection(L)
}

// select(anchor [, head]) sets the selection and returns it clamped.
func (s *State) selectRange(L *lua.LState) int {
	anchor := buffer.ByteOffset(L.CheckInt64(1))
	head := buffer.ByteOffset(L.OptInt64(2, int64(anchor)))
	s.eng().SetSelection(cursor.NewSelection(anchor, head))
	return s.pushSelection(L)
}

func (s *State) insert(L *lua.LState) int {
	L.Push(lua.LBool(s.eng().Insert(L.CheckString(1))))
	return 1
}

// replace(start, end, text) replaces a span and leaves the cursor after
// the new text.
func (s *State) replace(L *lua.LState) int {
	start := buffer.ByteOffset(L.CheckInt64(1))
	end := buffer.ByteOffset(L.CheckInt64(2))
	text := L.CheckString(3)
	res, ok := s.eng().Replace(start, end, text, s.eng().Selection())
	if !ok {
		L.Push(lua.LFalse)
		return 1
	}
	s.eng().SetSelection(cursor.NewCursorSelection(res.NewRange.End))
	L.Push(lua.LTrue)
	L.Push(lua.LNumber(res.NewRange.End))
	return 2
}

// unindent([force]) outdents; force also trims short indentation.
func (s *State) unindent(L *lua.LState) int {
	L.Push(lua.LBool(s.eng().Unindent(L.OptBool(1, false))))
	return 1
}

// keys(sequence) replays a key sequence through the editor.
func (s *State) keys(L *lua.LState) int {
	if err := s.ed.Type(L.CheckString(1)); err != nil {
		L.ArgError(1, err.Error())
	}
	return 0
}

func (s *State) readOnly(L *lua.LState) int {
	L.Push(lua.LBool(s.eng().ReadOnly()))
	return 1
}

func (s *State) language(L *lua.LState) int {
	L.Push(lua.LString(s.eng().Language().Name))
	return 1
}

// set_language(name) switches the comment syntax; false if unknown.
func (s *State) setLanguage(L *lua.LState) int {
	p, err := s.languages.Get(L.CheckString(1))
	if err != nil {
		L.Push(lua.LFalse)
		return 1
	}
	s.eng().SetLanguage(p)
	L.Push(lua.LTrue)
	return 1
}

// register_language{name=, aliases={...}, line_comment=, block_start=,
// block_end=} adds a profile to the registry.
func (s *State) registerLanguage(L *lua.LState) int {
	tbl := L.CheckTable(1)
	p := language.Profile{
		Name:        lua.LVAsString(tbl.RawGetString("name")),
		LineComment: lua.LVAsString(tbl.RawGetString("line_comment")),
		BlockStart:  lua.LVAsString(tbl.RawGetString("block_start")),
		BlockEnd:    lua.LVAsString(tbl.RawGetString("block_end")),
	}
	if aliases, ok := tbl.RawGetString("aliases").(*lua.LTable); ok {
		aliases.ForEach(func(_, v lua.LValue) {
			p.Aliases = append(p.Aliases, lua.LVAsString(v))
		})
	}
	if err := s.languages.Register(p); err != nil {
		L.ArgError(1, err.Error())
	}
	return 0
}

// highlights() returns every decoration as {start=, ["end"]=, style=}.
func (s *State) highlights(L *lua.LState) int {
	list := L.NewTable()
	for _, h := range s.eng().Highlights() {
		span := L.NewTable()
		span.RawSetString("start", lua.LNumber(h.Range.Start))
		span.RawSetString("end", lua.LNumber(h.Range.End))
		span.RawSetString("style", lua.LString(h.Kind.StyleName()))
		list.Append(span)
	}
	L.Push(list)
	return 1
}

// lint(from, to, severity) marks lines from..to in the gutter.
func (s *State) lint(L *lua.LState) int {
	from := L.CheckInt(1)
	to := L.CheckInt(2)
	sev := gutter.ParseSeverity(L.CheckString(3))
	if sev == gutter.SeverityNone {
		L.ArgError(3, "severity must be info, warning or error")
	}
	if from < 0 || to < 0 {
		L.ArgError(1, "negative line")
	}
	s.eng().Lint(uint32(from), uint32(to), sev)
	return 0
}

func (s *State) clearLint(L *lua.LState) int {
	s.eng().ClearLint()
	return 0
}

func (s *State) logMessage(L *lua.LState) int {
	s.log.Info("%s", L.CheckString(1))
	return 0
}
