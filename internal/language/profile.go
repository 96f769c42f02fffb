// Package language holds the comment syntax of the languages quill edits.
//
// A Profile is chosen by the host, usually from a file name through
// ForFile, and handed to the engine alongside the highlighter. Comment
// toggling is disabled when the profile lacks the markers it needs.
package language

// Profile describes the comment syntax of one language.
type Profile struct {
	Name        string   `toml:"name" yaml:"name" json:"name"`
	Aliases     []string `toml:"aliases,omitempty" yaml:"aliases,omitempty" json:"aliases,omitempty"`
	LineComment string   `toml:"line_comment,omitempty" yaml:"line_comment,omitempty" json:"line_comment,omitempty"`
	BlockStart  string   `toml:"block_start,omitempty" yaml:"block_start,omitempty" json:"block_start,omitempty"`
	BlockEnd    string   `toml:"block_end,omitempty" yaml:"block_end,omitempty" json:"block_end,omitempty"`
}

// Plain is the profile of text with no comment syntax.
var Plain = Profile{Name: "plaintext"}

// HasLineComment reports whether line comments can be toggled.
func (p Profile) HasLineComment() bool {
	return p.LineComment != ""
}

// HasBlockComment reports whether block comments can be toggled.
func (p Profile) HasBlockComment() bool {
	return p.BlockStart != "" && p.BlockEnd != ""
}

// Builtins returns the profiles registered by default.
func Builtins() []Profile {
	return []Profile{
		{Name: "C", Aliases: []string{"c", "h"}, LineComment: "//", BlockStart: "/*", BlockEnd: "*/"},
		{Name: "C++", Aliases: []string{"cpp", "c++", "cxx", "hpp"}, LineComment: "//", BlockStart: "/*", BlockEnd: "*/"},
		{Name: "Java", Aliases: []string{"java"}, LineComment: "//"},
		{Name: "Go", Aliases: []string{"go", "golang"}, LineComment: "//", BlockStart: "/*", BlockEnd: "*/"},
		{Name: "Python", Aliases: []string{"python", "py", "python3"}, LineComment: "#", BlockStart: `"""`, BlockEnd: `"""`},
		{Name: "JavaScript", Aliases: []string{"javascript", "js"}, LineComment: "//", BlockStart: "/*", BlockEnd: "*/"},
		{Name: "Rust", Aliases: []string{"rust", "rs"}, LineComment: "//", BlockStart: "/*", BlockEnd: "*/"},
		{Name: "Lua", Aliases: []string{"lua"}, LineComment: "--", BlockStart: "--[[", BlockEnd: "]]"},
		{Name: "Bash", Aliases: []string{"bash", "sh", "shell", "zsh"}, LineComment: "#"},
		{Name: "SQL", Aliases: []string{"sql"}, LineComment: "--", BlockStart: "/*", BlockEnd: "*/"},
	}
}
