package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/quill/internal/input/key"
	"github.com/dshills/quill/internal/renderer/view"
)

// defaultBindings are host shortcuts handled before the editor sees a key.
// Configured bindings are merged over them.
var defaultBindings = map[string]string{
	"<C-k>":    "comment",
	"<C-b>":    "block-comment",
	"<C-d>":    "delete-line",
	"<A-Up>":   "swap-up",
	"<A-Down>": "swap-down",
}

type binding struct {
	event key.Event
	op    string
}

var (
	quitKey = key.MustParse("<C-q>")
	saveKey = key.MustParse("<C-s>")
)

// session is the state of one interactive run.
type session struct {
	app     *Application
	doc      *Document
	view     *view.View
	bindings []binding
	message  string
}

// bindings resolves the default shortcuts merged with the configured ones.
func (app *Application) bindings() ([]binding, error) {
	merged := make(map[string]string, len(defaultBindings))
	for spec, op := range defaultBindings {
		merged[spec] = op
	}
	for spec, op := range app.config.Bindings {
		merged[spec] = op
	}
	specs := make([]string, 0, len(merged))
	for spec := range merged {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	out := make([]binding, 0, len(specs))
	for _, spec := range specs {
		op := merged[spec]
		if _, ok := operations[op]; !ok {
			return nil, unknownOperation(op)
		}
		ev, err := key.Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", spec, err)
		}
		out = append(out, binding{event: ev, op: op})
	}
	return out, nil
}

// Interactive edits doc on screen until Ctrl+Q or until ctx is done.
// The caller owns screen and must have initialized it.
func (app *Application) Interactive(ctx context.Context, doc *Document, screen tcell.Screen) error {
	bindings, err := app.bindings()
	if err != nil {
		return &InitError{Component: "bindings", Err: err}
	}
	s := &session{app: app, doc: doc, bindings: bindings}
	s.view = view.New(doc.Engine,
		view.WithTokens(doc.Tokens),
		view.WithGutter(doc.Gutter),
		view.WithStatus(s.status),
	)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	s.view.Draw(screen)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if err := s.handleKey(key.FromTcell(ev)); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			s.view.Draw(screen)
		}
	}
}

func (s *session) handleKey(ev key.Event) error {
	s.message = ""
	switch {
	case ev.Equals(quitKey):
		return ErrQuit
	case ev.Equals(saveKey):
		s.save()
		return nil
	}
	for _, b := range s.bindings {
		if ev.Equals(b.event) {
			if ok, _ := s.doc.Apply(b.op); !ok {
				s.message = b.op + " refused"
			}
			return nil
		}
	}

	ed := s.doc.Editor
	if ed.HandleKey(ev) || !ed.Session().Visible() {
		return nil
	}
	switch {
	case ev.Is(key.KeyEnter, key.ModNone):
		ed.AcceptCurrent()
	case ev.Is(key.KeyTab, key.ModNone):
		ed.Session().Next()
	case ev.Is(key.KeyTab, key.ModShift):
		ed.Session().Prev()
	case ev.Is(key.KeyEscape, key.ModNone):
		ed.DismissCompletion()
	}
	return nil
}

func (s *session) save() {
	if s.doc.Path == "" {
		s.message = "no file name"
		return
	}
	if err := os.WriteFile(s.doc.Path, []byte(s.doc.Engine.Contents()), 0o644); err != nil {
		s.app.log.Error("save %s: %v", s.doc.Path, err)
		s.message = "save failed"
		return
	}
	s.message = "saved " + s.doc.Name
}

// status shows the completion list while it is open, otherwise the
// document name, cursor position and the last message.
func (s *session) status() string {
	cs := s.doc.Editor.Session()
	if cs.Visible() {
		current, _ := cs.Current()
		line := ""
		for _, item := range cs.Items() {
			if item.Label == current.Label {
				line += "[" + item.Label + "] "
			} else {
				line += item.Label + " "
			}
		}
		return line
	}

	eng := s.doc.Engine
	p := eng.Snapshot().OffsetToPoint(eng.Selection().Cursor())
	text := fmt.Sprintf(" %s  %s  %d:%d", s.doc.Name, eng.Language().Name, p.Line+1, p.Column+1)
	if eng.ReadOnly() {
		text += "  [read-only]"
	}
	if s.message != "" {
		text += "  " + s.message
	}
	return text
}
