package summarizer

import (
	"testing"

	"github.com/dtnitsch/study-notes/models"
	"github.com/dtnitsch/study-notes/pkg/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "four sentences keep three in order",
			text: "Cats are mammals. Dogs are mammals too. Both are popular pets. Many people love pets.",
			want: "<b>Summary:</b><br><ul><li>Cats are mammals.</li><li>Dogs are mammals too.</li><li>Both are popular pets.</li></ul>",
		},
		{
			name: "selection restored to original order",
			text: "Rust is fast. Birds sing songs. Rust is safe. Cats nap daily. Rust rocks.",
			want: "<b>Summary:</b><br><ul><li>Rust is fast.</li><li>Rust is safe.</li><li>Rust rocks.</li></ul>",
		},
		{
			name: "single sentence returned verbatim",
			text: "apple apple banana banana banana cherry",
			want: "apple apple banana banana banana cherry",
		},
		{
			name: "two sentences returned verbatim",
			text: "  First point. Second point!  ",
			want: "  First point. Second point!  ",
		},
		{
			name: "no keywords still selects leading sentences",
			text: "It is. So it was. It is not. He is.",
			want: "<b>Summary:</b><br><ul><li>It is.</li><li>So it was.</li><li>It is not.</li></ul>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.text))
		})
	}
}

func TestSummarizeIsIdempotent(t *testing.T) {
	text := "Rust is fast. Birds sing songs. Rust is safe. Cats nap daily. Rust rocks."
	assert.Equal(t, Summarize(text), Summarize(text))
}

func TestSelectCount(t *testing.T) {
	// 12 sentences: ceil(12*0.3) = 4 beats the minimum of 3
	text := ""
	for i := 0; i < 12; i++ {
		text += "Topic sentence here. "
	}
	s := New(DefaultOptions())
	selected := s.Select(text, analytics.Sentences(text))
	assert.Len(t, selected, 4)
	for i := 1; i < len(selected); i++ {
		assert.Less(t, selected[i-1].Sentence.Index, selected[i].Sentence.Index)
	}
}

func TestScore(t *testing.T) {
	sentences := []models.Sentence{
		{Index: 0, Text: "Cats are mammals."},
		{Index: 1, Text: "..."},
	}
	salient := map[string]struct{}{"mammals": {}}

	scores := Score(sentences, salient)
	require.Len(t, scores, 2)
	assert.InDelta(t, 1.0/3.0, scores[0].Score, 1e-9)
	assert.Equal(t, 0.0, scores[1].Score)
}

func TestOptionsFromConfig(t *testing.T) {
	opts := OptionsFromConfig(models.SummaryConfig{KeywordRatio: 0.5, SentenceRatio: 0.4, MinSentences: 2})
	assert.Equal(t, Options{KeywordRatio: 0.5, SentenceRatio: 0.4, MinSentences: 2}, opts)

	short := New(opts).Summarize("One idea. Two ideas.")
	assert.Contains(t, short, "<li>One idea.</li>")
}
