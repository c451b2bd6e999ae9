// Package study implements the study-notes command actions: it reads input,
// runs one analysis action and presents, exports or copies the result.
package study

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/study-notes/models"
	"github.com/dtnitsch/study-notes/pkg/highlighter"
	"github.com/dtnitsch/study-notes/pkg/questions"
	"github.com/dtnitsch/study-notes/pkg/summarizer"
)

// Action names one of the three analysis actions.
type Action string

const (
	ActionSummary   Action = "summary"
	ActionHighlight Action = "highlight"
	ActionQuestions Action = "questions"
)

// AllActions lists the actions in the order batch mode runs them.
func AllActions() []Action {
	return []Action{ActionSummary, ActionHighlight, ActionQuestions}
}

// ParseAction accepts the action names plus "qa" for questions.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "summary", "summarize":
		return ActionSummary, nil
	case "highlight":
		return ActionHighlight, nil
	case "questions", "qa":
		return ActionQuestions, nil
	}
	return "", fmt.Errorf("unknown action %q (want summary, highlight or questions)", s)
}

// NormalizeStyle maps command-line spellings of a question style to its
// canonical name: case, surrounding space and '-'/'_' separators are ignored
// and "mc" means multiple choice. Unrecognized values are only trimmed.
func NormalizeStyle(value string) string {
	v := strings.TrimSpace(value)
	key := strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(v))

	switch key {
	case "":
		return models.QuestionStyleShortAnswer.String()
	case "multiple choice", "mc":
		return models.QuestionStyleMultipleChoice.String()
	case "essay", "short answer":
		return key
	}
	return v
}

// Pipeline runs analysis actions with options taken from the configuration.
// It holds no mutable state and is safe for concurrent use.
type Pipeline struct {
	summarizer   *summarizer.Summarizer
	highlighter  *highlighter.Highlighter
	questions    *questions.Generator
	defaultStyle string
}

func NewPipeline(cfg *models.Config) *Pipeline {
	return &Pipeline{
		summarizer: summarizer.New(summarizer.OptionsFromConfig(cfg.Summary)),
		highlighter: highlighter.New(highlighter.Options{
			TopKeywords: cfg.Highlight.TopKeywords,
			Marker:      cfg.Highlight.Marker,
		}),
		questions: questions.New(questions.Options{
			TopKeywords:   cfg.Questions.TopKeywords,
			SnippetLength: cfg.Questions.SnippetLength,
		}),
		defaultStyle: NormalizeStyle(cfg.Questions.DefaultStyle),
	}
}

// Run trims text, rejects empty input with ErrEmptyInput and returns the
// action's markup. Unexpected faults in the analysis come back as *ComputationError.
// An empty style selects the configured default; others pass through NormalizeStyle.
func (p *Pipeline) Run(action Action, text, style string) (out string, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyInput
	}

	defer func() {
		if r := recover(); r != nil {
			out, err = "", &ComputationError{Action: action, Fault: r}
		}
	}()

	switch action {
	case ActionSummary:
		return p.summarizer.Summarize(text), nil
	case ActionHighlight:
		return p.highlighter.Highlight(text), nil
	case ActionQuestions:
		s := p.defaultStyle
		if strings.TrimSpace(style) != "" {
			s = NormalizeStyle(style)
		}
		return p.questions.Generate(text, s), nil
	}
	return "", fmt.Errorf("unknown action %q", action)
}
