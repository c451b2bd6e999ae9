// Package analytics holds the shared text-analysis stage: sentence and word
// segmentation, stop-word filtering and keyword ranking.
package analytics

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/study-notes/models"
)

var (
	// Any terminator ends a sentence; abbreviations like "Dr." split too.
	sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+`)
	wordPattern     = regexp.MustCompile(`\b\w+\b`)
)

// Sentences splits text into runs ending in one or more '.', '!' or '?'.
// Text after the last terminator is not part of any sentence. When no
// terminator is found the whole text is returned as a single sentence.
func Sentences(text string) []models.Sentence {
	matches := sentencePattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return []models.Sentence{{Index: 0, Text: text}}
	}

	sentences := make([]models.Sentence, len(matches))
	for i, m := range matches {
		sentences[i] = models.Sentence{Index: i, Text: m}
	}
	return sentences
}

// Words lowercases text and returns its maximal runs of letters, digits and underscores.
func Words(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}
