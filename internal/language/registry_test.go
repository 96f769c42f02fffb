package language

import (
	"errors"
	"testing"
)

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name        string
		wantName    string
		lineComment string
	}{
		{"go", "Go", "//"},
		{"GOLANG", "Go", "//"},
		{"py", "Python", "#"},
		{"cpp", "C++", "//"},
		{"sh", "Bash", "#"},
	}

	for _, tt := range tests {
		p, err := r.Get(tt.name)
		if err != nil {
			t.Fatalf("Get(%q): %v", tt.name, err)
		}
		if p.Name != tt.wantName || p.LineComment != tt.lineComment {
			t.Errorf("Get(%q) = %+v", tt.name, p)
		}
	}
}

func TestRegistryUnknown(t *testing.T) {
	r := NewRegistry()
	p, err := r.Get("cobol")
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("expected ErrUnknownLanguage, got %v", err)
	}
	if p.HasLineComment() || p.HasBlockComment() {
		t.Error("unknown language should fall back to Plain")
	}
}

func TestJavaHasNoBlockComment(t *testing.T) {
	p, err := NewRegistry().Get("java")
	if err != nil {
		t.Fatal(err)
	}
	if !p.HasLineComment() || p.HasBlockComment() {
		t.Errorf("unexpected java profile %+v", p)
	}
}

func TestRegisterOverrides(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Profile{Name: "Go", LineComment: ";;"}); err != nil {
		t.Fatal(err)
	}
	p, _ := r.Get("go")
	if p.LineComment != ";;" {
		t.Errorf("expected override, got %q", p.LineComment)
	}
	if err := r.Register(Profile{Name: " "}); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("expected error for empty name, got %v", err)
	}
}

func TestForFile(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		file  string
		want  string
		found bool
	}{
		{"main.go", "Go", true},
		{"script.py", "Python", true},
		{"widget.cpp", "C++", true},
		{"Main.java", "Java", true},
		{"notes.unknownext", "plaintext", false},
	}

	for _, tt := range tests {
		p, ok := r.ForFile(tt.file)
		if ok != tt.found || p.Name != tt.want {
			t.Errorf("ForFile(%q) = %q/%v, want %q/%v", tt.file, p.Name, ok, tt.want, tt.found)
		}
	}
}
