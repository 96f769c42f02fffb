package engine

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/cursor"
	"github.com/dshills/quill/internal/language"
	"github.com/dshills/quill/internal/renderer/gutter"
	"github.com/dshills/quill/internal/renderer/highlight"
	"github.com/dshills/quill/internal/renderer/style"
)

func goProfile(t *testing.T) language.Profile {
	t.Helper()
	p, err := language.NewRegistry().Get("go")
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNewWithContent(t *testing.T) {
	e := New(WithContent("Hello\r\nWorld"))
	if e.Text() != "Hello\nWorld" {
		t.Errorf("Text() = %q", e.Text())
	}
	if e.Contents() != "Hello\r\nWorld" {
		t.Errorf("Contents() = %q", e.Contents())
	}
	if e.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", e.LineCount())
	}
	if e.Selection() != cursor.NewCursorSelection(0) {
		t.Errorf("Selection() = %s", e.Selection())
	}
	if e.IndentString() != "    " {
		t.Errorf("IndentString() = %q", e.IndentString())
	}
}

func TestNewFromReader(t *testing.T) {
	e, err := NewFromReader(strings.NewReader("a\nb"), WithTabWidth(2))
	if err != nil {
		t.Fatal(err)
	}
	if e.Text() != "a\nb" || e.TabWidth() != 2 || e.IndentString() != "  " {
		t.Errorf("got text %q tab %d indent %q", e.Text(), e.TabWidth(), e.IndentString())
	}
}

func TestOperations(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		sel      cursor.Selection
		op       func(*Engine) bool
		wantOK   bool
		wantText string
		wantSel  cursor.Selection
	}{
		{"indent", "a\nb\nc", cursor.NewSelection(0, 3), (*Engine).Indent, true, "    a\n    b\nc", cursor.NewSelection(4, 11)},
		{"unindent refused", "  a\nb", cursor.NewSelection(0, 5), func(e *Engine) bool { return e.Unindent(false) }, false, "  a\nb", cursor.NewSelection(0, 5)},
		{"unindent forced", "  a\nb", cursor.NewSelection(0, 5), func(e *Engine) bool { return e.Unindent(true) }, true, "a\nb", cursor.NewSelection(0, 3)},
		{"swap up at top", "a\nb", cursor.NewCursorSelection(0), (*Engine).SwapLineUp, false, "a\nb", cursor.NewCursorSelection(0)},
		{"swap down", "a\nb", cursor.NewCursorSelection(0), (*Engine).SwapLineDown, true, "b\na", cursor.NewCursorSelection(2)},
		{"delete only line", "only", cursor.NewCursorSelection(2), (*Engine).DeleteLine, true, "", cursor.NewCursorSelection(0)},
		{"comment without language", "x", cursor.NewCursorSelection(0), (*Engine).ToggleComment, false, "x", cursor.NewCursorSelection(0)},
		{"block comment without language", "x", cursor.NewSelection(0, 1), (*Engine).ToggleBlockComment, false, "x", cursor.NewSelection(0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(WithContent(tt.content))
			e.SetSelection(tt.sel)
			if ok := tt.op(e); ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if e.Text() != tt.wantText {
				t.Errorf("text = %q, want %q", e.Text(), tt.wantText)
			}
			if e.Selection() != tt.wantSel {
				t.Errorf("selection = %s, want %s", e.Selection(), tt.wantSel)
			}
		})
	}
}

func TestToggleCommentWithLanguage(t *testing.T) {
	e := New(WithContent("x := 1\ny := 2"), WithLanguage(goProfile(t)))
	e.SetSelection(cursor.NewSelection(0, 8))
	if !e.ToggleComment() {
		t.Fatal("ToggleComment refused")
	}
	if e.Text() != "// x := 1\n// y := 2" {
		t.Fatalf("after comment: %q", e.Text())
	}
	if !e.ToggleComment() {
		t.Fatal("second ToggleComment refused")
	}
	if e.Text() != "x := 1\ny := 2" {
		t.Errorf("after uncomment: %q", e.Text())
	}
}

func TestToggleBlockCommentWithLanguage(t *testing.T) {
	e := New(WithContent("a b c"), WithLanguage(goProfile(t)))
	e.SetSelection(cursor.NewSelection(2, 3))
	if !e.ToggleBlockComment() {
		t.Fatal("refused")
	}
	if e.Text() != "a /*b*/ c" {
		t.Fatalf("text = %q", e.Text())
	}
	if got := e.Selection(); got != cursor.NewSelection(2, 7) {
		t.Errorf("selection = %s", got)
	}
	e.ToggleBlockComment()
	if e.Text() != "a b c" {
		t.Errorf("text = %q", e.Text())
	}
}

func TestInsertReplacesSelection(t *testing.T) {
	e := New(WithContent("hello world"))
	e.SetSelection(cursor.NewSelection(6, 11))
	if !e.Insert("gopher") {
		t.Fatal("Insert refused")
	}
	if e.Text() != "hello gopher" {
		t.Errorf("text = %q", e.Text())
	}
	if e.Selection() != cursor.NewCursorSelection(12) {
		t.Errorf("selection = %s", e.Selection())
	}
}

func TestReadOnlyRefusesEdits(t *testing.T) {
	e := New(WithContent("abc"), WithReadOnly())
	e.SetSelection(cursor.NewSelection(0, 3))
	if e.Insert("x") || e.Indent() || e.DeleteLine() {
		t.Error("edit accepted on read-only engine")
	}
	if _, ok := e.Replace(0, 1, "z", cursor.NewCursorSelection(0)); ok {
		t.Error("Replace accepted on read-only engine")
	}
	if e.Text() != "abc" {
		t.Errorf("text = %q", e.Text())
	}
}

func TestSetSelectionClamps(t *testing.T) {
	e := New(WithContent("héllo"))
	e.SetSelection(cursor.NewSelection(-5, 2))
	if got := e.Selection(); got != cursor.NewSelection(0, 1) {
		t.Errorf("selection = %s, want Selection(0→1)", got)
	}
	e.SetSelection(cursor.NewCursorSelection(100))
	if got := e.Selection(); got != cursor.NewCursorSelection(6) {
		t.Errorf("selection = %s", got)
	}
}

func TestHighlighterReapplied(t *testing.T) {
	var revisions []buffer.RevisionID
	h := highlight.Func(func(snap *buffer.Snapshot) {
		revisions = append(revisions, snap.RevisionID())
	})
	e := New(WithContent("a"), WithHighlighter(h))
	if len(revisions) != 1 {
		t.Fatalf("after New: %d calls, want 1", len(revisions))
	}
	e.Insert("b")
	if len(revisions) != 2 || revisions[1] != e.RevisionID() {
		t.Fatalf("after Insert: %v", revisions)
	}
	e.SetStyleProvider(style.NewScheme("plain"))
	if len(revisions) != 3 {
		t.Errorf("after SetStyleProvider: %d calls, want 3", len(revisions))
	}
	e.SetSelection(cursor.NewCursorSelection(0))
	if len(revisions) != 3 {
		t.Errorf("selection change re-ran the highlighter")
	}
}

func TestEditListener(t *testing.T) {
	var changes []Change
	e := New(WithContent("ab"), WithEditListener(EditListenerFunc(func(c Change) {
		changes = append(changes, c)
	})))
	e.SetSelection(cursor.NewCursorSelection(1))
	e.Insert("x")

	if len(changes) != 1 {
		t.Fatalf("got %d changes, want 1", len(changes))
	}
	c := changes[0]
	if c.Result.NewText != "x" || c.Result.OldRange != buffer.NewRange(1, 1) {
		t.Errorf("result = %+v", c.Result)
	}
	if c.Before != cursor.NewCursorSelection(1) || c.After != cursor.NewCursorSelection(2) {
		t.Errorf("before %s after %s", c.Before, c.After)
	}
}

func TestStructuralHighlights(t *testing.T) {
	tests := []struct {
		name     string
		readOnly bool
		pos      ByteOffset
		want     []HighlightSpan
	}{
		{"forward", false, 0, []HighlightSpan{
			{buffer.NewRange(0, 7), StyleCurrentLine},
			{buffer.NewRange(0, 1), StylePairedDelimiter},
			{buffer.NewRange(6, 7), StylePairedDelimiter},
		}},
		{"backward", false, 7, []HighlightSpan{
			{buffer.NewRange(0, 7), StyleCurrentLine},
			{buffer.NewRange(6, 7), StylePairedDelimiter},
			{buffer.NewRange(0, 1), StylePairedDelimiter},
		}},
		{"read-only", true, 0, []HighlightSpan{
			{buffer.NewRange(0, 1), StylePairedDelimiter},
			{buffer.NewRange(6, 7), StylePairedDelimiter},
		}},
		{"no delimiter", false, 1, []HighlightSpan{
			{buffer.NewRange(0, 7), StyleCurrentLine},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := []Option{WithContent("(a(b)c)")}
			if tt.readOnly {
				opts = append(opts, WithReadOnly())
			}
			e := New(opts...)
			e.SetSelection(cursor.NewCursorSelection(tt.pos))
			if got := e.StructuralHighlights(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StructuralHighlights() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnbalancedDelimiterHasNoMatch(t *testing.T) {
	e := New(WithContent("(a(b"))
	if _, ok := e.BracketMatch(); ok {
		t.Error("unexpected match")
	}
}

func TestOccurrenceHighlights(t *testing.T) {
	e := New(WithContent("foo bar foo\nfood foo"))
	e.SetSelection(cursor.NewSelection(0, 3))

	want := []HighlightSpan{
		{buffer.NewRange(8, 11), StyleOccurrence},
		{buffer.NewRange(17, 20), StyleOccurrence},
	}
	if got := e.OccurrenceHighlights(); !reflect.DeepEqual(got, want) {
		t.Errorf("OccurrenceHighlights() = %v, want %v", got, want)
	}
	if got := len(e.Highlights()); got != 3 {
		t.Errorf("len(Highlights()) = %d, want 3", got)
	}

	e.SetSelection(cursor.NewCursorSelection(0))
	if got := e.OccurrenceHighlights(); len(got) != 0 {
		t.Errorf("empty selection produced %v", got)
	}
}

func TestOccurrencesRebuiltAfterEdit(t *testing.T) {
	e := New(WithContent("x x"))
	e.SetSelection(cursor.NewSelection(0, 1))
	if len(e.OccurrenceHighlights()) != 1 {
		t.Fatal("expected one occurrence")
	}
	e.Replace(2, 3, "y", cursor.NewSelection(0, 1))
	if got := e.OccurrenceHighlights(); len(got) != 0 {
		t.Errorf("stale occurrences %v", got)
	}
}

func TestResolveStyle(t *testing.T) {
	e := New(WithStyleProvider(style.NewScheme("empty")))
	if got := e.ResolveStyle(StyleCurrentLine); got != style.Neutral {
		t.Errorf("CurrentLine = %+v, want neutral", got)
	}
	if got := e.ResolveStyle(StyleOccurrence); got.Underline != style.UnderlineSingle {
		t.Errorf("Occurrence underline = %v", got.Underline)
	}

	e.SetStyleProvider(style.Default())
	if got := e.ResolveStyle(StylePairedDelimiter); !got.Bold {
		t.Errorf("Parentheses = %+v, want bold", got)
	}
	if p := e.Palette(); p.Selection.Background.IsDefault() {
		t.Errorf("Palette().Selection has no background")
	}
}

func TestLint(t *testing.T) {
	g := gutter.NewAnnotations()
	e := New(WithContent("a\nb\nc"), WithGutter(g))
	e.Lint(1, 2, gutter.SeverityWarning)
	e.Lint(2, 2, gutter.SeverityInfo)
	if g.At(1) != gutter.SeverityWarning || g.At(2) != gutter.SeverityWarning {
		t.Errorf("annotations: %v %v", g.At(1), g.At(2))
	}
	e.ClearLint()
	if len(g.Lines()) != 0 {
		t.Errorf("annotations left after ClearLint: %v", g.Lines())
	}

	New().Lint(0, 0, gutter.SeverityError)
}
