package mapreduce

import (
	"fmt"
	"sort"

	"github.com/dtnitsch/study-notes/models"
)

// Rank orders aggregated counts by descending count. Map iteration has no
// first-seen order, so ties are broken alphabetically to keep output stable.
func Rank(wordCounts map[string]int) []models.Keyword {
	ranked := make([]models.Keyword, 0, len(wordCounts))
	for k, v := range wordCounts {
		ranked = append(ranked, models.Keyword{Word: k, Count: v})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	return ranked
}

// TopKeywords returns the top N keywords formatted as "word:count" (e.g., "mammals:4").
func TopKeywords(wordCounts map[string]int, n int) []string {
	return Format(Rank(wordCounts), n)
}

// Format renders at most n ranked keywords as "word:count".
func Format(ranked []models.Keyword, n int) []string {
	limit := n
	if len(ranked) < n {
		limit = len(ranked)
	}
	if limit < 0 {
		limit = 0
	}

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", ranked[i].Word, ranked[i].Count)
	}
	return keywords
}
