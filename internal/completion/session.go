package completion

import "github.com/google/uuid"

// Session is the state of the completion popup between keystrokes.
type Session struct {
	id       string
	prefix   string
	items    []Item
	selected int
	visible  bool
}

// NewSession creates a hidden session with a fresh ID.
func NewSession() *Session {
	return &Session{id: uuid.New().String()}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Prefix returns the last prefix issued.
func (s *Session) Prefix() string {
	return s.prefix
}

// SetPrefix records prefix and reports whether it differs from the last
// one.
func (s *Session) SetPrefix(prefix string) bool {
	if prefix == s.prefix {
		return false
	}
	s.prefix = prefix
	return true
}

// Show makes the session visible with items and selects the first one.
func (s *Session) Show(items []Item) {
	s.items = items
	s.selected = 0
	s.visible = true
}

// Hide closes the popup. The prefix is kept so an unchanged prefix is not
// reissued.
func (s *Session) Hide() {
	s.visible = false
	s.items = nil
	s.selected = 0
}

// Reset hides the session and forgets the prefix.
func (s *Session) Reset() {
	s.Hide()
	s.prefix = ""
}

// Visible reports whether the popup is shown.
func (s *Session) Visible() bool {
	return s.visible
}

// Items returns the current candidates.
func (s *Session) Items() []Item {
	return s.items
}

// Next moves the selection down, wrapping around.
func (s *Session) Next() {
	if len(s.items) > 0 {
		s.selected = (s.selected + 1) % len(s.items)
	}
}

// Prev moves the selection up, wrapping around.
func (s *Session) Prev() {
	if len(s.items) > 0 {
		s.selected = (s.selected - 1 + len(s.items)) % len(s.items)
	}
}

// Current returns the selected item.
func (s *Session) Current() (Item, bool) {
	if !s.visible || len(s.items) == 0 {
		return Item{}, false
	}
	return s.items[s.selected], true
}
