// Package brackets finds the partner of a paired delimiter next to the
// cursor.
package brackets

// Pair is an open/close delimiter pair. Open and Close may be equal, as for
// quote marks.
type Pair struct {
	Open  rune
	Close rune
}

// String returns the pair as its two delimiters.
func (p Pair) String() string {
	return string(p.Open) + string(p.Close)
}

// Symmetric reports whether the pair opens and closes with the same rune.
func (p Pair) Symmetric() bool {
	return p.Open == p.Close
}

// Table is an ordered delimiter table. Order matters: lookups return the
// first pair that matches, shadowing later ones.
type Table []Pair

// DefaultTable returns the default delimiter table: () {} [] "" ''.
func DefaultTable() Table {
	return Table{
		{Open: '(', Close: ')'},
		{Open: '{', Close: '}'},
		{Open: '[', Close: ']'},
		{Open: '"', Close: '"'},
		{Open: '\'', Close: '\''},
	}
}

// ParseTable builds a table from two-rune strings such as "()" or `""`.
// Entries that are not exactly two runes are skipped.
func ParseTable(pairs []string) Table {
	t := make(Table, 0, len(pairs))
	for _, s := range pairs {
		r := []rune(s)
		if len(r) != 2 {
			continue
		}
		t = append(t, Pair{Open: r[0], Close: r[1]})
	}
	return t
}

// ByOpen returns the first pair opened by r.
func (t Table) ByOpen(r rune) (Pair, bool) {
	for _, p := range t {
		if p.Open == r {
			return p, true
		}
	}
	return Pair{}, false
}

// ByClose returns the first pair closed by r.
func (t Table) ByClose(r rune) (Pair, bool) {
	for _, p := range t {
		if p.Close == r {
			return p, true
		}
	}
	return Pair{}, false
}

// Strings returns the table as two-rune strings.
func (t Table) Strings() []string {
	out := make([]string, len(t))
	for i, p := range t {
		out[i] = p.String()
	}
	return out
}
