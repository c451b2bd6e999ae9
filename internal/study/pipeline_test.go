package study

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dtnitsch/study-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catsText = "Cats are mammals. Dogs are mammals too. Both are popular pets. Many people love pets."

func TestPipelineRun(t *testing.T) {
	p := NewPipeline(models.DefaultConfig())

	tests := []struct {
		name   string
		action Action
		text   string
		style  string
		want   string
	}{
		{
			name:   "summary",
			action: ActionSummary,
			text:   "\n  " + catsText + "  \n",
			want:   "<b>Summary:</b><br><ul><li>Cats are mammals.</li><li>Dogs are mammals too.</li><li>Both are popular pets.</li></ul>",
		},
		{
			name:   "short text summary is trimmed input",
			action: ActionSummary,
			text:   "  apple apple banana banana banana cherry ",
			want:   "apple apple banana banana banana cherry",
		},
		{
			name:   "highlight",
			action: ActionHighlight,
			text:   "The Cat sat. The cat ran.",
			want:   "The <mark>Cat</mark> <mark>sat</mark>. The <mark>cat</mark> <mark>ran</mark>.",
		},
		{
			name:   "questions without keywords",
			action: ActionQuestions,
			text:   "It is what it is.",
			style:  "essay",
			want:   "Not enough content to generate questions.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Run(tt.action, tt.text, tt.style)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := p.Run(tt.action, tt.text, tt.style)
			require.NoError(t, err)
			assert.Equal(t, got, again, "idempotent")
		})
	}
}

func TestPipelineEmptyInput(t *testing.T) {
	p := NewPipeline(models.DefaultConfig())
	for _, action := range AllActions() {
		_, err := p.Run(action, " \n\t ", "")
		assert.ErrorIs(t, err, ErrEmptyInput, string(action))
	}
}

func TestPipelineDefaultStyle(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.Questions.DefaultStyle = "essay"
	p := NewPipeline(cfg)

	out, err := p.Run(ActionQuestions, catsText, "")
	require.NoError(t, err)
	assert.Contains(t, out, "<b>ESSAY Questions:</b>")

	out, err = p.Run(ActionQuestions, catsText, "multiple choice")
	require.NoError(t, err)
	assert.Contains(t, out, "<b>MULTIPLE CHOICE Questions:</b>")
}

func TestNormalizeStyle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "short answer"},
		{"Short_Answer", "short answer"},
		{"multiple choice", "multiple choice"},
		{"Multiple-Choice", "multiple choice"},
		{"multiple_choice", "multiple choice"},
		{"MC", "multiple choice"},
		{" Essay ", "essay"},
		{" flashcards ", "flashcards"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeStyle(tt.in), tt.in)
	}
}

func TestPipelineStyleSelectors(t *testing.T) {
	p := NewPipeline(models.DefaultConfig())

	out, err := p.Run(ActionQuestions, catsText, "mc")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<b>MULTIPLE CHOICE Questions:</b>"))
	assert.Contains(t, out, "A) ")

	out, err = p.Run(ActionQuestions, catsText, "flashcards")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<b>FLASHCARDS Questions:</b>"))
	assert.Contains(t, out, "<i>Context: ")
}

func TestPipelineUnknownAction(t *testing.T) {
	p := NewPipeline(models.DefaultConfig())
	_, err := p.Run(Action("translate"), catsText, "")
	assert.Error(t, err)
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in      string
		want    Action
		wantErr bool
	}{
		{"summary", ActionSummary, false},
		{"Summarize", ActionSummary, false},
		{"highlight", ActionHighlight, false},
		{"qa", ActionQuestions, false},
		{" questions ", ActionQuestions, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAction(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestComputationError(t *testing.T) {
	cause := errors.New("index out of range")
	err := fmt.Errorf("run: %w", &ComputationError{Action: ActionHighlight, Fault: cause})

	var ce *ComputationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "error processing text (highlight): index out of range", ce.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "computation_error", errorType(err))

	assert.Nil(t, (&ComputationError{Fault: "boom"}).Unwrap())
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		format   string
		terminal bool
		want     string
		wantErr  bool
	}{
		{"auto", true, FormatText, false},
		{"auto", false, FormatHTML, false},
		{"", false, FormatHTML, false},
		{"HTML", true, FormatHTML, false},
		{"text", false, FormatText, false},
		{"pdf", false, "", true},
	}
	for _, tt := range tests {
		got, err := resolveFormat(tt.format, tt.terminal)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "Error: please enter some text first", FormatError(ErrEmptyInput, false))
	assert.Equal(t, "\x1b[31mError: please enter some text first\x1b[0m", FormatError(ErrEmptyInput, true))
}
