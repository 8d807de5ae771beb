package model

import "time"

// ReadabilityResult is the stored per-document readability record. It is
// derived data: recomputable at any time from the document's text, keyed
// one-to-one on the document.
type ReadabilityResult struct {
	DocumentID    string    `json:"document_id"`
	Title         string    `json:"title"`
	Sentences     int       `json:"n_sentences"`
	Polysyllables int       `json:"n_polysyllables"`
	SMOG          float64   `json:"smog"`
	AnalyzedAt    time.Time `json:"analyzed_at"`
}
