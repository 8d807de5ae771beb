package readability

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMOG(t *testing.T) {
	t.Run("known value", func(t *testing.T) {
		// 1.0430 * sqrt(30*10/3) + 3.1291 = 1.0430*10 + 3.1291
		got, err := SMOG(3, 10)
		require.NoError(t, err)
		assert.InDelta(t, 13.5591, got, 1e-4)
	})

	t.Run("zero sentences is a domain error", func(t *testing.T) {
		_, err := SMOG(0, 10)
		assert.ErrorIs(t, err, ErrNoSentences)
	})

	t.Run("zero polysyllables is fine", func(t *testing.T) {
		got, err := SMOG(5, 0)
		require.NoError(t, err)
		assert.InDelta(t, 3.1291, got, 1e-4)
	})
}

func TestScorerScore(t *testing.T) {
	s := NewScorer(nil)

	t.Run("simple prose", func(t *testing.T) {
		res, err := s.Score("simple", "The dog sat. The cat sat too.")
		require.NoError(t, err)
		assert.Equal(t, "simple", res.Title)
		assert.Equal(t, 2, res.Sentences)
		assert.Equal(t, 0, res.Polysyllables)
		assert.InDelta(t, 3.1291, res.SMOG, 1e-4)
	})

	t.Run("counts polysyllable occurrences, not distinct words", func(t *testing.T) {
		res, err := s.Score("rep", "Readability matters. Readability is measurable.")
		require.NoError(t, err)
		assert.Equal(t, 2, res.Sentences)
		// readability x2, measurable x1
		assert.Equal(t, 3, res.Polysyllables)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := s.Score("empty", "   ")
		assert.ErrorIs(t, err, ErrNoSentences)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("denser polysyllables score strictly higher", func(t *testing.T) {
		plain := "The sky was grey. Rain fell on the town all day."
		dense := "The atmosphere was miserable. Precipitation inundated the municipality continuously."
		lo, err := s.Score("plain", plain)
		require.NoError(t, err)
		hi, err := s.Score("dense", dense)
		require.NoError(t, err)
		assert.Equal(t, lo.Sentences, hi.Sentences)
		assert.Greater(t, hi.Polysyllables, lo.Polysyllables)
		assert.Greater(t, hi.SMOG, lo.SMOG)
	})
}

// fixedTokenizer returns canned counts so batch behavior can be pinned down
// without depending on segmentation details.
type fixedTokenizer struct{}

func (fixedTokenizer) Sentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return strings.Split(text, "|")
}

func (fixedTokenizer) Words(sentence string) []string {
	return strings.Fields(sentence)
}

func TestScorerScoreBatch(t *testing.T) {
	s := NewScorer(fixedTokenizer{})
	ctx := context.Background()

	t.Run("one empty document does not sink the batch", func(t *testing.T) {
		docs := []Input{
			{Title: "a", Text: "one sentence here"},
			{Title: "b", Text: ""},
			{Title: "c", Text: "first part|second part"},
		}
		out := s.ScoreBatch(ctx, docs, 2)
		require.Len(t, out, len(docs))

		assert.NoError(t, out[0].Err)
		assert.Equal(t, "a", out[0].Result.Title)
		assert.Equal(t, 1, out[0].Result.Sentences)

		assert.ErrorIs(t, out[1].Err, ErrNoSentences)
		assert.Nil(t, out[1].Result)

		assert.NoError(t, out[2].Err)
		assert.Equal(t, 2, out[2].Result.Sentences)
	})

	t.Run("outcomes stay at their input index", func(t *testing.T) {
		var docs []Input
		for i := 0; i < 50; i++ {
			docs = append(docs, Input{Title: fmt.Sprintf("doc-%d", i), Text: "a sentence"})
		}
		out := s.ScoreBatch(ctx, docs, 8)
		require.Len(t, out, 50)
		for i, o := range out {
			require.NoError(t, o.Err)
			assert.Equal(t, fmt.Sprintf("doc-%d", i), o.Result.Title)
		}
	})

	t.Run("scaled polysyllable count raises the grade", func(t *testing.T) {
		// Same sentence counts; the second document repeats the polysyllabic
		// word more often.
		docs := []Input{
			{Title: "lo", Text: "familiarity bred here|plain words follow now"},
			{Title: "hi", Text: "familiarity familiarity familiarity|plain words follow now"},
		}
		out := s.ScoreBatch(ctx, docs, 0)
		require.NoError(t, out[0].Err)
		require.NoError(t, out[1].Err)
		assert.Equal(t, out[0].Result.Sentences, out[1].Result.Sentences)
		assert.Greater(t, out[1].Result.SMOG, out[0].Result.SMOG)
	})

	t.Run("empty batch", func(t *testing.T) {
		assert.Empty(t, s.ScoreBatch(ctx, nil, 4))
	})
}
