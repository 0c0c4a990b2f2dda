package summarize

import (
	"context"
	"strings"
	"testing"

	"github.com/patrickprogramme/tubesum/internal/linguistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeErrors(t *testing.T) {
	s := New(linguistics.Basic())

	cases := []struct {
		name string
		text string
		max  int
		want error
	}{
		{"vide", "", 3, ErrEmptyInput},
		{"blancs", "  \n\t ", 3, ErrEmptyInput},
		{"ponctuation seule", "... !!! ???", 3, ErrNoSentences},
		{"stopwords seuls", "The and. Or but. In on. At to.", 2, ErrNoMeaningfulContent},
		{"stopwords seuls, texte court", "the a an and or", 10, ErrNoMeaningfulContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Summarize(tc.text, tc.max)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSummarizeVerbatim(t *testing.T) {
	s := New(nil)
	sum, err := s.Summarize("First   sentence here.\nSecond one!", 5)
	require.NoError(t, err)
	assert.True(t, sum.Verbatim)
	assert.Equal(t, "First sentence here. Second one!", sum.Text)
	assert.Len(t, sum.Sentences, 2)
}

func TestSummarizeKeepsTopSentencesInOrder(t *testing.T) {
	s := New(linguistics.Basic())
	text := "Alpha beta gamma. Unrelated words here. Alpha beta again. Nothing else matters. Gamma alpha beta."
	sum, err := s.Summarize(text, 2)
	require.NoError(t, err)
	assert.False(t, sum.Verbatim)
	require.Len(t, sum.Sentences, 2)
	// "Alpha beta gamma" (3+3+2) et "Gamma alpha beta" (2+3+3) ont le plus haut score
	assert.Equal(t, []string{"Alpha beta gamma", "Gamma alpha beta"}, sum.Sentences)
	assert.Equal(t, "Alpha beta gamma Gamma alpha beta", sum.Text)
}

func TestSummarizeTiesKeepFirstSentences(t *testing.T) {
	s := New(linguistics.Basic())
	sum, err := s.Summarize("One word. Two word. Three word. Four word.", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"One word", "Two word"}, sum.Sentences)
}

func TestSummarizeDuplicateSentenceCountsOnce(t *testing.T) {
	s := New(linguistics.Basic())
	text := "Rust compiler speed. Other topic now. Rust compiler speed. Final remark made."
	sum, err := s.Summarize(text, 2)
	require.NoError(t, err)
	assert.Equal(t, "Rust compiler speed", sum.Sentences[0])
	assert.NotEqual(t, sum.Sentences[0], sum.Sentences[1])
}

func TestSummarizeDefaultMax(t *testing.T) {
	s := New(linguistics.Basic())
	var b strings.Builder
	for i := 0; i < 15; i++ {
		b.WriteString("Sentence about topics number. ")
	}
	b.WriteString("Distinct closing statement.")
	sum, err := s.Summarize(b.String(), 0)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(sum.Sentences), DefaultMaxSentences)
}

func TestSummarizeFullResources(t *testing.T) {
	s := New(linguistics.Load(linguistics.ModeFull, zeroLog()))
	text := "Go is a programming language. Go programs compile quickly. " +
		"The weather was nice. Programming in Go is fun. I had lunch."
	sum, err := s.Summarize(text, 2)
	require.NoError(t, err)
	require.Len(t, sum.Sentences, 2)
	for _, sent := range sum.Sentences {
		assert.Contains(t, sent, "Go")
	}

	_, err = s.Summarize("... !!! ???", 3)
	require.ErrorIs(t, err, ErrNoSentences)
}

func TestLocalEngine(t *testing.T) {
	e := LocalEngine{Summarizer: New(nil), MaxSentences: 3}
	assert.Equal(t, "local", e.Name())

	out, err := e.Summarize(context.Background(), "Short text. Really short.")
	require.NoError(t, err)
	assert.Equal(t, "Short text. Really short.", out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Summarize(ctx, "x")
	require.ErrorIs(t, err, context.Canceled)
}
