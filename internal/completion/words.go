package completion

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultLimit caps the number of suggestions a WordProvider returns.
const DefaultLimit = 50

// IsWordRune reports whether r belongs to an identifier-class word.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// WordBounds returns the byte columns of the word around col in line:
// the run of word runes ending at col and the run continuing after it.
func WordBounds(line string, col int) (start, end int) {
	if col > len(line) {
		col = len(line)
	}
	start = col
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(line[:start])
		if !IsWordRune(r) {
			break
		}
		start -= size
	}
	end = col
	for end < len(line) {
		r, size := utf8.DecodeRuneInString(line[end:])
		if !IsWordRune(r) {
			break
		}
		end += size
	}
	return start, end
}

// PrefixAt returns the word run ending at col.
func PrefixAt(line string, col int) string {
	start, _ := WordBounds(line, col)
	if col > len(line) {
		col = len(line)
	}
	return line[start:col]
}

// WordProvider suggests identifiers found in a text source plus a fixed
// keyword list.
type WordProvider struct {
	source   func() string
	keywords []string
	limit    int
}

// WordOption configures a WordProvider.
type WordOption func(*WordProvider)

// WithKeywords adds static keyword suggestions.
func WithKeywords(keywords ...string) WordOption {
	return func(p *WordProvider) {
		p.keywords = append(p.keywords, keywords...)
	}
}

// WithLimit caps the number of suggestions.
func WithLimit(n int) WordOption {
	return func(p *WordProvider) {
		if n > 0 {
			p.limit = n
		}
	}
}

// NewWordProvider creates a provider reading words from source on every
// query.
func NewWordProvider(source func() string, opts ...WordOption) *WordProvider {
	p := &WordProvider{source: source, limit: DefaultLimit}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Complete returns the words that start with the query prefix, excluding
// the prefix itself. Keywords come first, then buffer words, each sorted.
func (p *WordProvider) Complete(q Query) ([]Item, error) {
	if q.Prefix == "" {
		return nil, nil
	}

	seen := map[string]bool{q.Prefix: true}
	var keywords, words []Item
	for _, kw := range p.keywords {
		if strings.HasPrefix(kw, q.Prefix) && !seen[kw] {
			seen[kw] = true
			keywords = append(keywords, Item{Label: kw, Kind: KindKeyword})
		}
	}
	if p.source != nil {
		for _, w := range splitWords(p.source()) {
			if strings.HasPrefix(w, q.Prefix) && !seen[w] {
				seen[w] = true
				words = append(words, Item{Label: w, Kind: KindText})
			}
		}
	}

	byLabel := func(items []Item) {
		sort.Slice(items, func(i, j int) bool { return items[i].Label < items[j].Label })
	}
	byLabel(keywords)
	byLabel(words)

	items := append(keywords, words...)
	if len(items) > p.limit {
		items = items[:p.limit]
	}
	return items, nil
}

// splitWords returns the identifier-class words of text that do not start
// with a digit.
func splitWords(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool { return !IsWordRune(r) })
	words := fields[:0]
	for _, f := range fields {
		r, _ := utf8.DecodeRuneInString(f)
		if !unicode.IsDigit(r) {
			words = append(words, f)
		}
	}
	return words
}
