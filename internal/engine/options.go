package engine

import (
	"github.com/dshills/quill/internal/engine/brackets"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/language"
	"github.com/dshills/quill/internal/logging"
	"github.com/dshills/quill/internal/renderer/gutter"
	"github.com/dshills/quill/internal/renderer/highlight"
	"github.com/dshills/quill/internal/renderer/style"
)

// DefaultTabWidth is the tab width used when none is configured.
const DefaultTabWidth = 4

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithTabWidth sets the tab width used by unindent.
func WithTabWidth(width int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.tabWidth = width
		}
	}
}

// WithIndent sets the string inserted by Indent. The default is
// TabWidth spaces.
func WithIndent(indent string) Option {
	return func(e *Engine) {
		e.indent = indent
	}
}

// WithLineEnding sets the line ending used by Contents.
func WithLineEnding(ending buffer.LineEnding) Option {
	return func(e *Engine) {
		e.lineEnding = &ending
	}
}

// WithPairs sets the delimiter table used for bracket matching.
func WithPairs(table brackets.Table) Option {
	return func(e *Engine) {
		e.pairs = table
	}
}

// WithLanguage sets the comment syntax of the document.
func WithLanguage(p language.Profile) Option {
	return func(e *Engine) {
		e.profile = p
	}
}

// WithHighlighter sets the syntax highlighting collaborator.
func WithHighlighter(h highlight.Highlighter) Option {
	return func(e *Engine) {
		e.highlighter = h
	}
}

// WithStyleProvider sets the provider used to resolve highlight formats.
func WithStyleProvider(p style.Provider) Option {
	return func(e *Engine) {
		if p != nil {
			e.styles = p
		}
	}
}

// WithGutter sets the surface that receives lint annotations.
func WithGutter(s gutter.Surface) Option {
	return func(e *Engine) {
		e.gutter = s
	}
}

// WithReadOnly creates a read-only engine. Edits are refused and the
// current line is not highlighted.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.readOnly = true
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithEditListener registers a listener for committed edits.
func WithEditListener(l EditListener) Option {
	return func(e *Engine) {
		if l != nil {
			e.listeners = append(e.listeners, l)
		}
	}
}
