package completion

import (
	"errors"
	"testing"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		line       string
		col        int
		start, end int
		prefix     string
	}{
		{"foo.barBaz()", 7, 4, 10, "bar"},
		{"foo.barBaz()", 4, 4, 10, ""},
		{"x := café", 8, 5, 10, "caf"},
		{"abc", 3, 0, 3, "abc"},
		{"abc", 10, 0, 3, "abc"},
		{"", 0, 0, 0, ""},
		{"a b", 1, 0, 1, "a"},
	}

	for _, tt := range tests {
		start, end := WordBounds(tt.line, tt.col)
		if start != tt.start || end != tt.end {
			t.Errorf("WordBounds(%q, %d) = %d,%d want %d,%d", tt.line, tt.col, start, end, tt.start, tt.end)
		}
		if got := PrefixAt(tt.line, tt.col); got != tt.prefix {
			t.Errorf("PrefixAt(%q, %d) = %q, want %q", tt.line, tt.col, got, tt.prefix)
		}
	}
}

func TestWordProviderComplete(t *testing.T) {
	text := "value valid 9values vacant value_2 other"
	p := NewWordProvider(func() string { return text }, WithKeywords("var", "void"))

	items, err := p.Complete(Query{Prefix: "va"})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"var", "vacant", "valid", "value", "value_2"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %v", len(want), items)
	}
	for i, w := range want {
		if items[i].Label != w {
			t.Errorf("item %d = %q, want %q", i, items[i].Label, w)
		}
	}
	if items[0].Kind != KindKeyword {
		t.Error("keywords should be marked as such")
	}
}

func TestWordProviderExcludesPrefixAndLimits(t *testing.T) {
	p := NewWordProvider(func() string { return "ab abc abd abe" }, WithLimit(2))

	items, _ := p.Complete(Query{Prefix: "ab"})
	if len(items) != 2 || items[0].Label != "abc" || items[1].Label != "abd" {
		t.Errorf("unexpected items %v", items)
	}

	if items, _ := p.Complete(Query{}); items != nil {
		t.Errorf("empty prefix should give no items, got %v", items)
	}
}

func TestSession(t *testing.T) {
	s := NewSession()
	other := NewSession()
	if s.ID() == "" || s.ID() == other.ID() {
		t.Error("sessions should have distinct IDs")
	}

	if !s.SetPrefix("fo") {
		t.Error("first prefix should count as a change")
	}
	if s.SetPrefix("fo") {
		t.Error("same prefix should not count as a change")
	}

	s.Show([]Item{{Label: "foo"}, {Label: "for", InsertText: "for "}})
	if !s.Visible() {
		t.Fatal("session should be visible")
	}
	s.Next()
	if it, _ := s.Current(); it.Text() != "for " {
		t.Errorf("expected second item, got %+v", it)
	}
	s.Next()
	if it, _ := s.Current(); it.Label != "foo" {
		t.Errorf("selection should wrap, got %+v", it)
	}
	s.Prev()
	if it, _ := s.Current(); it.Label != "for" {
		t.Errorf("prev should wrap, got %+v", it)
	}

	s.Hide()
	if _, ok := s.Current(); ok {
		t.Error("hidden session has no current item")
	}
	if s.Prefix() != "fo" {
		t.Error("hide should keep the prefix")
	}
	s.Reset()
	if s.Prefix() != "" {
		t.Error("reset should clear the prefix")
	}
}

func TestProviderFunc(t *testing.T) {
	boom := errors.New("boom")
	var p Provider = ProviderFunc(func(q Query) ([]Item, error) { return nil, boom })
	if _, err := p.Complete(Query{Prefix: "x"}); !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}
