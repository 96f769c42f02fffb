package app

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/cursor"
	"github.com/dshills/quill/internal/language"
	"github.com/dshills/quill/internal/renderer/gutter"
	"github.com/dshills/quill/internal/renderer/highlight"
)

// Document is an open file with its editing state.
type Document struct {
	// Path is the file path, empty for standard input.
	Path string

	// Name is the display name.
	Name string

	Engine *engine.Engine
	Editor *editor.Editor
	Tokens *highlight.Chroma
	Gutter *gutter.Annotations
}

// NewDocument reads r into a document configured for path.
func (app *Application) NewDocument(path string, r io.Reader) (*Document, error) {
	profile, tokens, err := app.detectLanguage(path)
	if err != nil {
		return nil, err
	}

	cfg := app.config
	ann := gutter.NewAnnotations()
	opts := []engine.Option{
		engine.WithTabWidth(cfg.Editor.TabWidth),
		engine.WithPairs(cfg.PairTable()),
		engine.WithLanguage(profile),
		engine.WithHighlighter(tokens),
		engine.WithStyleProvider(app.styles),
		engine.WithGutter(ann),
		engine.WithLogger(app.log),
	}
	if cfg.Editor.ReadOnly || app.opts.ReadOnly {
		opts = append(opts, engine.WithReadOnly())
	}

	eng, err := engine.NewFromReader(r, opts...)
	if err != nil {
		return nil, &OperationError{Op: "read", Target: path, Err: err}
	}
	ed := editor.New(eng, append(cfg.EditorOptions(eng.Text), editor.WithLogger(app.log))...)

	name := filepath.Base(path)
	if path == "" {
		name = "stdin"
	}
	app.log.Debug("opened %s as %s", name, profile.Name)
	return &Document{Path: path, Name: name, Engine: eng, Editor: ed, Tokens: tokens, Gutter: ann}, nil
}

// detectLanguage resolves the forced language or the one matching path.
func (app *Application) detectLanguage(path string) (language.Profile, *highlight.Chroma, error) {
	if name := app.opts.Language; name != "" {
		p, err := app.languages.Get(name)
		if err != nil {
			return language.Plain, nil, &InitError{Component: "language", Err: err}
		}
		return p, highlight.NewChroma(name), nil
	}
	if path == "" {
		return language.Plain, highlight.NewChroma(""), nil
	}
	p, _ := app.languages.ForFile(path)
	return p, highlight.ChromaForFile(path), nil
}

var operations = map[string]func(*engine.Engine) bool{
	"indent":         (*engine.Engine).Indent,
	"unindent":       func(e *engine.Engine) bool { return e.Unindent(false) },
	"unindent-force": func(e *engine.Engine) bool { return e.Unindent(true) },
	"comment":        (*engine.Engine).ToggleComment,
	"block-comment":  (*engine.Engine).ToggleBlockComment,
	"swap-up":        (*engine.Engine).SwapLineUp,
	"swap-down":      (*engine.Engine).SwapLineDown,
	"delete-line":    (*engine.Engine).DeleteLine,
}

// Apply runs a named operation. It reports whether the engine accepted it.
func (d *Document) Apply(name string) (bool, error) {
	op, ok := operations[name]
	if !ok {
		return false, unknownOperation(name)
	}
	return op(d.Engine), nil
}

// ParseSelection parses "offset" or "anchor:head".
func ParseSelection(s string) (cursor.Selection, error) {
	anchorText, headText, ranged := strings.Cut(s, ":")
	anchor, err := strconv.ParseInt(strings.TrimSpace(anchorText), 10, 64)
	if err != nil || anchor < 0 {
		return cursor.Selection{}, fmt.Errorf("%w: %q", ErrInvalidSelection, s)
	}
	if !ranged {
		return cursor.NewCursorSelection(buffer.ByteOffset(anchor)), nil
	}
	head, err := strconv.ParseInt(strings.TrimSpace(headText), 10, 64)
	if err != nil || head < 0 {
		return cursor.Selection{}, fmt.Errorf("%w: %q", ErrInvalidSelection, s)
	}
	return cursor.NewSelection(buffer.ByteOffset(anchor), buffer.ByteOffset(head)), nil
}

// Write prints the document text followed by the reports opts asks for.
func (d *Document) Write(w io.Writer, opts Options) error {
	bw := bufio.NewWriter(w)

	if opts.ShowGutter {
		count := d.Engine.LineCount()
		for line := uint32(0); line < count; line++ {
			fmt.Fprintf(bw, "%s%s\n", d.Gutter.Render(line, count), d.Engine.LineText(line))
		}
	} else {
		text := d.Engine.Contents()
		bw.WriteString(text)
		if (opts.ShowSelection || opts.ShowHighlights) && text != "" && !strings.HasSuffix(text, "\n") {
			bw.WriteByte('\n')
		}
	}

	if opts.ShowSelection {
		sel := d.Engine.Selection()
		fmt.Fprintf(bw, "selection %d:%d\n", sel.Anchor, sel.Head)
	}
	if opts.ShowHighlights {
		for _, h := range d.Engine.Highlights() {
			fmt.Fprintf(bw, "highlight %d:%d %s\n", h.Range.Start, h.Range.End, h.Kind)
		}
	}
	return bw.Flush()
}
