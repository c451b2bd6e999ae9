package analytics

import (
	"regexp"
	"sort"

	"github.com/dtnitsch/study-notes/models"
)

var numberPattern = regexp.MustCompile(`^\d+$`)

// IsKeyword reports whether a lowercase token qualifies as a keyword:
// not a stopword, longer than two characters and not purely numeric.
func IsKeyword(word string) bool {
	if len(word) <= 2 || IsStopword(word) {
		return false
	}
	return !numberPattern.MatchString(word)
}

// WordFrequency counts qualifying keywords in text.
func WordFrequency(text string) map[string]int {
	frequencies := make(map[string]int)
	for _, word := range Words(text) {
		if IsKeyword(word) {
			frequencies[word]++
		}
	}
	return frequencies
}

// Keywords returns the distinct keywords of text ranked by descending
// frequency. Words with equal counts keep their first-seen order.
// An empty result means the text has no usable content.
func Keywords(text string) []models.Keyword {
	counts := make(map[string]int)
	var order []string

	for _, word := range Words(text) {
		if !IsKeyword(word) {
			continue
		}
		if _, seen := counts[word]; !seen {
			order = append(order, word)
		}
		counts[word]++
	}

	ranked := make([]models.Keyword, len(order))
	for i, word := range order {
		ranked[i] = models.Keyword{Word: word, Count: counts[word]}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	return ranked
}

// TopNWords returns at most n keyword strings from the ranked list of text.
func TopNWords(text string, n int) []string {
	return Head(Keywords(text), n)
}

// Head returns the words of the first n ranked keywords (all of them when n exceeds the list).
func Head(keywords []models.Keyword, n int) []string {
	limit := n
	if len(keywords) < n {
		limit = len(keywords)
	}
	if limit < 0 {
		limit = 0
	}

	words := make([]string, limit)
	for i := 0; i < limit; i++ {
		words[i] = keywords[i].Word
	}
	return words
}
