// Package config loads quill's configuration.
//
// A Config starts from Default and is overlaid by a TOML (.toml) or YAML
// (.yaml, .yml) file, then by QUILL_* environment variables:
//
//	pairs = ["()", "{}", "[]", "\"\"", "''"]
//
//	[editor]
//	tab_width = 4
//	replace_tab = true
//
//	[completion]
//	min_prefix = 2
//	keywords = ["func", "return"]
//
//	[style]
//	scheme = "monokai"
//	[style.formats.CurrentLine]
//	background = "#303030"
//
//	[bindings]
//	"<C-l>" = "comment"
//
// Watch reloads the file whenever it is written. Schema describes the
// file format as JSON Schema.
package config
