// Package markup builds the HTML fragment markup returned by the analysis
// actions and converts it back to the plain text a reader sees.
package markup

import (
	"strings"
)

const LineBreak = "<br>"

// Wrap encloses s in an element named tag. Content is not escaped.
func Wrap(tag, s string) string {
	return "<" + tag + ">" + s + "</" + tag + ">"
}

func Bold(s string) string {
	return Wrap("b", s)
}

func Italic(s string) string {
	return Wrap("i", s)
}

// List renders items as an unordered list.
func List(items []string) string {
	var sb strings.Builder
	sb.WriteString("<ul>")
	for _, item := range items {
		sb.WriteString(Wrap("li", item))
	}
	sb.WriteString("</ul>")
	return sb.String()
}

// Newlines converts literal newlines to line-break markup.
func Newlines(s string) string {
	return strings.ReplaceAll(s, "\n", LineBreak)
}
