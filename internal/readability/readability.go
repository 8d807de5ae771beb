// Package readability estimates how hard English prose is to read using the
// SMOG grade: a function of how densely polysyllabic words occur per
// sentence. Tokenization and syllable counting are heuristic; the package
// trades dictionary-level accuracy for a fast, dependency-light pipeline.
package readability

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// SMOG formula constants, fixed by the external definition of the grade.
const (
	smogCoeff     = 1.0430
	smogSentences = 30
	smogIntercept = 3.1291

	polysyllableMin = 3

	defaultWorkers = 4
)

// ErrNoSentences marks a document whose text yields zero sentences; the
// SMOG denominator is undefined for it.
var ErrNoSentences = errors.New("document has no sentences")

// Result holds the per-document readability record.
type Result struct {
	Title         string  `json:"title"`
	Sentences     int     `json:"n_sentences"`
	Polysyllables int     `json:"n_polysyllables"`
	SMOG          float64 `json:"smog"`
}

// Input is one document to score: a title identifier plus its full text.
type Input struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Outcome pairs a batch input with its result or its per-document error.
// Exactly one of the fields is set.
type Outcome struct {
	Result *Result
	Err    error
}

// SMOG computes the grade from sentence and polysyllable counts. A zero
// sentence count is a domain error, never NaN or Inf.
func SMOG(sentenceCount, polysyllableCount int) (float64, error) {
	if sentenceCount <= 0 {
		return 0, ErrNoSentences
	}
	return smogCoeff*math.Sqrt(smogSentences*float64(polysyllableCount)/float64(sentenceCount)) + smogIntercept, nil
}

// Scorer folds tokenized documents into readability results. It is stateless
// apart from its tokenizer and safe for concurrent use.
type Scorer struct {
	tok Tokenizer
}

// NewScorer builds a Scorer on the given tokenizer; nil selects the default
// UAX #29 tokenizer.
func NewScorer(tok Tokenizer) *Scorer {
	if tok == nil {
		tok = NewTokenizer()
	}
	return &Scorer{tok: tok}
}

// Score computes the readability record for a single document. Sentences are
// counted per occurrence: a document that repeats a sentence verbatim has
// genuinely more sentences, and collapsing duplicates would shrink the SMOG
// denominator for no reason.
func (s *Scorer) Score(title, text string) (*Result, error) {
	sents := s.tok.Sentences(text)
	if len(sents) == 0 {
		return nil, fmt.Errorf("%q: %w", title, ErrNoSentences)
	}

	poly := 0
	for _, sent := range sents {
		for _, w := range s.tok.Words(sent) {
			if Syllables(w) >= polysyllableMin {
				poly++
			}
		}
	}

	grade, err := SMOG(len(sents), poly)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", title, err)
	}
	return &Result{
		Title:         title,
		Sentences:     len(sents),
		Polysyllables: poly,
		SMOG:          grade,
	}, nil
}

// ScoreBatch scores documents concurrently on a bounded pool. Word counts
// have no cross-document dependency, so ordering inside the pool does not
// matter; outcomes are returned at the index of their input. A failing
// document never aborts the rest of the batch: len(out) == len(docs) always,
// with per-document errors carried in their Outcome.
func (s *Scorer) ScoreBatch(ctx context.Context, docs []Input, workers int) []Outcome {
	if workers <= 0 {
		workers = defaultWorkers
	}

	out := make([]Outcome, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, d := range docs {
		i, d := i, d
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				out[i] = Outcome{Err: err}
				return nil
			}
			r, err := s.Score(d.Title, d.Text)
			out[i] = Outcome{Result: r, Err: err}
			return nil
		})
	}
	// Workers only report through their Outcome slot.
	_ = g.Wait()
	return out
}
