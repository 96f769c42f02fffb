package editor

import (
	"strings"

	"github.com/dshills/quill/internal/completion"
	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/brackets"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/cursor"
	"github.com/dshills/quill/internal/input/key"
	"github.com/dshills/quill/internal/logging"
)

// Defaults for the completion decision.
const (
	DefaultEndOfWord = `~!@#$%^&*()_+{}|:"<>?,./;'[]\-=`
	DefaultMinPrefix = 2
)

// Features toggles the automatic editing behaviors.
type Features struct {
	AutoIndentation       bool
	AutoParentheses       bool
	AutoRemoveParentheses bool
	ReplaceTab            bool
	TabReplaceSize        int
}

// DefaultFeatures enables everything and replaces tabs with four spaces.
func DefaultFeatures() Features {
	return Features{
		AutoIndentation:       true,
		AutoParentheses:       true,
		AutoRemoveParentheses: true,
		ReplaceTab:            true,
		TabReplaceSize:        4,
	}
}

// TabString is the text one indentation level inserts.
func (f Features) TabString() string {
	if f.ReplaceTab && f.TabReplaceSize > 0 {
		return strings.Repeat(" ", f.TabReplaceSize)
	}
	return "\t"
}

// Editor is the keystroke state machine over an Engine.
type Editor struct {
	eng        *engine.Engine
	features   Features
	blockPairs brackets.Table

	provider  completion.Provider
	session   *completion.Session
	endOfWord string
	minPrefix int

	// offsets of auto-inserted closing delimiters, kept valid across edits
	pending []buffer.ByteOffset

	log *logging.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithFeatures sets the feature toggles.
func WithFeatures(f Features) Option {
	return func(ed *Editor) {
		ed.features = f
	}
}

// WithBlockPairs sets the delimiters that Enter expands between.
// The default is {}.
func WithBlockPairs(t brackets.Table) Option {
	return func(ed *Editor) {
		ed.blockPairs = t
	}
}

// WithCompletion attaches a completion provider.
func WithCompletion(p completion.Provider) Option {
	return func(ed *Editor) {
		ed.provider = p
	}
}

// WithEndOfWord sets the characters that close the completion session
// when typed.
func WithEndOfWord(chars string) Option {
	return func(ed *Editor) {
		ed.endOfWord = chars
	}
}

// WithMinPrefix sets the shortest prefix, in runes, that opens completion.
func WithMinPrefix(n int) Option {
	return func(ed *Editor) {
		if n > 0 {
			ed.minPrefix = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(ed *Editor) {
		if l != nil {
			ed.log = l
		}
	}
}

// New creates an editor driving eng. The engine's indentation string and
// tab width are set from the features.
func New(eng *engine.Engine, opts ...Option) *Editor {
	ed := &Editor{
		eng:        eng,
		features:   DefaultFeatures(),
		blockPairs: brackets.Table{{Open: '{', Close: '}'}},
		session:    completion.NewSession(),
		endOfWord:  DefaultEndOfWord,
		minPrefix:  DefaultMinPrefix,
		log:        logging.Null(),
	}
	for _, opt := range opts {
		opt(ed)
	}
	ed.log = ed.log.WithComponent("editor")
	ed.applyFeatures()
	eng.AddEditListener(engine.EditListenerFunc(ed.trackPending))
	return ed
}

// Engine returns the engine the editor drives.
func (ed *Editor) Engine() *engine.Engine {
	return ed.eng
}

// Features returns the feature toggles.
func (ed *Editor) Features() Features {
	return ed.features
}

// SetFeatures replaces the feature toggles.
func (ed *Editor) SetFeatures(f Features) {
	ed.features = f
	ed.applyFeatures()
}

func (ed *Editor) applyFeatures() {
	ed.eng.SetIndentString(ed.features.TabString())
	ed.eng.SetTabWidth(ed.features.TabReplaceSize)
}

// Session returns the completion session.
func (ed *Editor) Session() *completion.Session {
	return ed.session
}

// PendingCloses returns the offsets of auto-inserted closing delimiters
// that typing the same delimiter will step over.
func (ed *Editor) PendingCloses() []buffer.ByteOffset {
	return append([]buffer.ByteOffset(nil), ed.pending...)
}

func (ed *Editor) trackPending(c engine.Change) {
	if len(ed.pending) > 0 {
		ed.pending = cursor.TransformOffsets(ed.pending, c.Result.Edit())
	}
}

// HandleKey processes one keystroke and reports whether the editor
// consumed it. Keys reserved for a visible completion popup are not
// consumed and change nothing.
func (ed *Editor) HandleKey(ev key.Event) bool {
	if ed.popupOwns(ev) {
		return false
	}

	consumed := false
	if ed.isCompletionShortcut(ev) && ed.provider != nil {
		consumed = true
	} else {
		consumed = ed.edit(ev)
	}

	ed.updateCompletion(ev)
	return consumed
}

// Type feeds every keystroke of a sequence such as "foo(<BS>" to
// HandleKey.
func (ed *Editor) Type(seq string) error {
	events, err := key.ParseSequence(seq)
	if err != nil {
		return err
	}
	for _, ev := range events {
		ed.HandleKey(ev)
	}
	return nil
}
