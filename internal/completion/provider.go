// Package completion provides the completion collaborator of the editor:
// the provider interface queried with a word prefix, the session state the
// editor keeps between keystrokes, and a provider that suggests words
// found in the buffer.
package completion

import (
	"errors"

	"github.com/dshills/quill/internal/engine/buffer"
)

// ErrProviderFailed wraps errors returned by a provider.
var ErrProviderFailed = errors.New("completion provider failed")

// Kind indicates the type of completion item.
type Kind int

const (
	KindText Kind = iota
	KindKeyword
	KindVariable
	KindFunction
	KindSnippet
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "keyword"
	case KindVariable:
		return "variable"
	case KindFunction:
		return "function"
	case KindSnippet:
		return "snippet"
	default:
		return "text"
	}
}

// Item represents a single completion suggestion.
type Item struct {
	// Label is the display text for the completion.
	Label string
	// Kind indicates the type of completion.
	Kind Kind
	// Detail provides additional information.
	Detail string
	// InsertText is the text to insert (if different from Label).
	InsertText string
}

// Text returns the text inserted when the item is accepted.
func (i Item) Text() string {
	if i.InsertText != "" {
		return i.InsertText
	}
	return i.Label
}

// Query is what the editor sends to a provider.
type Query struct {
	// Prefix is the word being completed.
	Prefix string
	// Offset is the cursor position.
	Offset buffer.ByteOffset
	// Session identifies the completion session issuing the query. It is
	// stable across the keystrokes of one editor.
	Session string
}

// Provider supplies completion candidates.
type Provider interface {
	Complete(q Query) ([]Item, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(q Query) ([]Item, error)

// Complete calls f(q).
func (f ProviderFunc) Complete(q Query) ([]Item, error) {
	return f(q)
}
