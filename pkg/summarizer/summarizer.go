// Package summarizer builds extractive summaries by keyword density.
package summarizer

import (
	"math"
	"sort"
	"strings"

	"github.com/dtnitsch/study-notes/models"
	"github.com/dtnitsch/study-notes/pkg/analytics"
	"github.com/dtnitsch/study-notes/pkg/markup"
)

// Options controls sentence selection.
type Options struct {
	KeywordRatio  float64 // share of ranked keywords treated as salient, rounded up
	SentenceRatio float64 // share of sentences kept, rounded up
	MinSentences  int     // threshold below which text is returned verbatim; also the minimum kept
}

func DefaultOptions() Options {
	return Options{
		KeywordRatio:  0.2,
		SentenceRatio: 0.3,
		MinSentences:  3,
	}
}

// OptionsFromConfig maps the summary section of the configuration.
func OptionsFromConfig(cfg models.SummaryConfig) Options {
	return Options{
		KeywordRatio:  cfg.KeywordRatio,
		SentenceRatio: cfg.SentenceRatio,
		MinSentences:  cfg.MinSentences,
	}
}

type Summarizer struct {
	opts Options
}

func New(opts Options) *Summarizer {
	return &Summarizer{opts: opts}
}

// Summarize uses DefaultOptions.
func Summarize(text string) string {
	return New(DefaultOptions()).Summarize(text)
}

// Summarize returns a labeled list of the highest-scoring sentences in their
// original order. Text with fewer than MinSentences sentences is returned unchanged.
func (s *Summarizer) Summarize(text string) string {
	sentences := analytics.Sentences(text)
	if len(sentences) < s.opts.MinSentences {
		return text
	}

	selected := s.Select(text, sentences)

	items := make([]string, len(selected))
	for i, sc := range selected {
		items[i] = strings.TrimSpace(sc.Sentence.Text)
	}

	return markup.Bold("Summary:") + markup.LineBreak + markup.List(items)
}

// Select scores every sentence and returns the chosen ones sorted by original index.
func (s *Summarizer) Select(text string, sentences []models.Sentence) []models.SentenceScore {
	scores := Score(sentences, s.salientKeywords(text))

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	count := max(s.opts.MinSentences, ceilRatio(len(sentences), s.opts.SentenceRatio))
	if count > len(scores) {
		count = len(scores)
	}
	selected := scores[:count]

	sort.Slice(selected, func(i, j int) bool {
		return selected[i].Sentence.Index < selected[j].Sentence.Index
	})

	return selected
}

// salientKeywords returns the top KeywordRatio share of ranked keywords as a set.
func (s *Summarizer) salientKeywords(text string) map[string]struct{} {
	keywords := analytics.Keywords(text)
	top := analytics.Head(keywords, ceilRatio(len(keywords), s.opts.KeywordRatio))

	salient := make(map[string]struct{}, len(top))
	for _, word := range top {
		salient[word] = struct{}{}
	}
	return salient
}

// Score computes, per sentence, the fraction of its words found in salient.
// Sentences without words are divided by one.
func Score(sentences []models.Sentence, salient map[string]struct{}) []models.SentenceScore {
	scores := make([]models.SentenceScore, len(sentences))
	for i, sentence := range sentences {
		words := analytics.Words(sentence.Text)
		hits := 0
		for _, w := range words {
			if _, ok := salient[w]; ok {
				hits++
			}
		}
		scores[i] = models.SentenceScore{
			Sentence: sentence,
			Score:    float64(hits) / float64(max(len(words), 1)),
		}
	}
	return scores
}

func ceilRatio(n int, ratio float64) int {
	return int(math.Ceil(float64(n) * ratio))
}
