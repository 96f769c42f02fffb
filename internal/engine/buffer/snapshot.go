package buffer

// Snapshot is the text of a buffer frozen at one revision. Later edits to
// the buffer build a new line store, so a snapshot may be read from any
// goroutine.
type Snapshot struct {
	view
	revisionID RevisionID
	tabWidth   int
}

// FromString returns a snapshot over text without creating a buffer.
// Line endings are normalized to "\n".
func FromString(text string) *Snapshot {
	return &Snapshot{
		view:     view{store: newLineStore(normalizeLineEndings(text))},
		tabWidth: 4,
	}
}

// RevisionID returns the revision this snapshot was taken at.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}

// TabWidth returns the tab width at snapshot time.
func (s *Snapshot) TabWidth() int {
	return s.tabWidth
}
