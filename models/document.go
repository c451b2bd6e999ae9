package models

import "strings"

// Document is the raw input handed to an action, after any HTML extraction.
type Document struct {
	Source string `json:"source" yaml:"source"` // file path, "stdin" or "text"
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
	Format string `json:"format" yaml:"format"` // "text" or "html"
	Text   string `json:"-" yaml:"-"`
}

// IsEmpty reports whether the document has no non-whitespace content.
func (d *Document) IsEmpty() bool {
	return strings.TrimSpace(d.Text) == ""
}
