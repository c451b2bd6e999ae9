// Package highlighter marks the most frequent keywords inside the original text.
package highlighter

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/study-notes/pkg/analytics"
	"github.com/dtnitsch/study-notes/pkg/markup"
)

type Options struct {
	TopKeywords int
	Marker      string // element name wrapped around each occurrence
}

func DefaultOptions() Options {
	return Options{TopKeywords: 10, Marker: "mark"}
}

type Highlighter struct {
	opts Options
}

func New(opts Options) *Highlighter {
	return &Highlighter{opts: opts}
}

// Highlight uses DefaultOptions.
func Highlight(text string) string {
	return New(DefaultOptions()).Highlight(text)
}

// segment is a slice of the original text; marked segments are final and
// never scanned again by later keywords.
type segment struct {
	text   string
	marked bool
}

// Highlight wraps every whole-word, case-insensitive occurrence of the top
// keywords in the marker element, keeping the matched casing, then turns
// newlines into line breaks. The full text is preserved.
func (h *Highlighter) Highlight(text string) string {
	segments := []segment{{text: text}}

	for _, word := range analytics.TopNWords(text, h.opts.TopKeywords) {
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
		segments = markOccurrences(segments, pattern)
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for _, seg := range segments {
		if seg.marked {
			sb.WriteString(markup.Wrap(h.opts.Marker, seg.text))
		} else {
			sb.WriteString(seg.text)
		}
	}

	return markup.Newlines(sb.String())
}

func markOccurrences(segments []segment, pattern *regexp.Regexp) []segment {
	out := make([]segment, 0, len(segments))
	for _, seg := range segments {
		if seg.marked {
			out = append(out, seg)
			continue
		}

		last := 0
		for _, loc := range pattern.FindAllStringIndex(seg.text, -1) {
			if loc[0] > last {
				out = append(out, segment{text: seg.text[last:loc[0]]})
			}
			out = append(out, segment{text: seg.text[loc[0]:loc[1]], marked: true})
			last = loc[1]
		}
		if last < len(seg.text) {
			out = append(out, segment{text: seg.text[last:]})
		}
	}
	return out
}
