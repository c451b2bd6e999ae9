// Package questions generates templated study questions from ranked keywords
// and the sentences they appear in.
package questions

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dtnitsch/study-notes/models"
	"github.com/dtnitsch/study-notes/pkg/analytics"
	"github.com/dtnitsch/study-notes/pkg/markup"
)

// InsufficientContent is returned instead of questions when the text has no keywords.
const InsufficientContent = "Not enough content to generate questions."

type Options struct {
	TopKeywords   int
	SnippetLength int // runes of context shown in multiple-choice prompts
}

func DefaultOptions() Options {
	return Options{TopKeywords: 5, SnippetLength: 40}
}

type Generator struct {
	opts Options
}

func New(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Generate uses DefaultOptions.
func Generate(text, style string) string {
	return New(DefaultOptions()).Generate(text, style)
}

// Generate renders one question block per top keyword that occurs in some
// sentence. Keywords without a context sentence are skipped; question numbers
// follow keyword rank.
//
// The header repeats selector in upper case, even when it is not a known style
// and the blocks fall back to short answer. An empty selector means short answer.
func (g *Generator) Generate(text, selector string) string {
	if selector == "" {
		selector = models.QuestionStyleShortAnswer.String()
	}
	style := models.ParseQuestionStyle(selector)

	keywords := analytics.TopNWords(text, g.opts.TopKeywords)
	if len(keywords) == 0 {
		return InsufficientContent
	}
	sentences := analytics.Sentences(text)

	// Casers are stateful, so one per call keeps Generate safe for concurrent use.
	upper := cases.Upper(language.English)

	var sb strings.Builder
	sb.WriteString(markup.Bold(upper.String(selector) + " Questions:"))
	sb.WriteString(markup.LineBreak + markup.LineBreak)

	for i, word := range keywords {
		context, ok := findContext(sentences, word)
		if !ok {
			continue
		}
		label := markup.Bold(fmt.Sprintf("Q%d:", i+1))

		switch style {
		case models.QuestionStyleMultipleChoice:
			fmt.Fprintf(&sb, "%s Which concept is related to: \"%s...\"?%s", label, truncate(context, g.opts.SnippetLength), markup.LineBreak)
			fmt.Fprintf(&sb, "A) %s %s B) %s %s C) %s%s%s",
				word, markup.LineBreak,
				keywords[(i+1)%len(keywords)], markup.LineBreak,
				keywords[(i+2)%len(keywords)], markup.LineBreak, markup.LineBreak)
		case models.QuestionStyleEssay:
			fmt.Fprintf(&sb, "%s Discuss the significance of \"%s\" in the context of the text provided.%s%s",
				label, markup.Bold(word), markup.LineBreak, markup.LineBreak)
		default:
			fmt.Fprintf(&sb, "%s What is the role of \"%s\" described in the text?%s", label, markup.Bold(word), markup.LineBreak)
			sb.WriteString(markup.Italic("Context: " + context))
			sb.WriteString(markup.LineBreak + markup.LineBreak)
		}
	}

	return sb.String()
}

// findContext returns the first sentence, trimmed, whose lowercase form contains word.
func findContext(sentences []models.Sentence, word string) (string, bool) {
	for _, s := range sentences {
		if strings.Contains(strings.ToLower(s.Text), word) {
			return strings.TrimSpace(s.Text), true
		}
	}
	return "", false
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
