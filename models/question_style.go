package models

// QuestionStyle selects how generated questions are rendered.
type QuestionStyle int

const (
	// QuestionStyleShortAnswer is the default and the fallback for unknown values.
	QuestionStyleShortAnswer QuestionStyle = iota
	QuestionStyleMultipleChoice
	QuestionStyleEssay
)

func (s QuestionStyle) String() string {
	switch s {
	case QuestionStyleMultipleChoice:
		return "multiple choice"
	case QuestionStyleEssay:
		return "essay"
	default:
		return "short answer"
	}
}

// ParseQuestionStyle maps a selector to a style. Only the exact names
// "multiple choice" and "essay" select those styles; anything else is short answer.
func ParseQuestionStyle(value string) QuestionStyle {
	switch value {
	case QuestionStyleMultipleChoice.String():
		return QuestionStyleMultipleChoice
	case QuestionStyleEssay.String():
		return QuestionStyleEssay
	default:
		return QuestionStyleShortAnswer
	}
}
