// Package highlight provides the syntax highlighting collaborator of the
// editing engine.
//
// The engine does not classify tokens itself. After every committed edit
// it hands a snapshot to a Highlighter, which may retokenize however it
// likes. Chroma is the default implementation, backed by chroma lexers.
package highlight

import (
	"github.com/dshills/quill/internal/engine/buffer"
)

// Highlighter is re-run synchronously after each edit or style change.
type Highlighter interface {
	Reapply(snap *buffer.Snapshot)
}

// Func adapts a function to the Highlighter interface.
type Func func(snap *buffer.Snapshot)

// Reapply calls f(snap).
func (f Func) Reapply(snap *buffer.Snapshot) {
	f(snap)
}

// Span is one highlighted token on a line. Start and End are byte columns.
type Span struct {
	Start int
	End   int
	// Style is the style name to resolve through a style.Provider.
	Style string
}
