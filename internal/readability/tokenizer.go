package readability

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/clipperhouse/uax29/v2/words"
)

// Tokenizer splits raw document text into sentences and sentences into words.
// Implementations operate on UTF-8 text; encoding repair is an upstream
// concern. The scorer only relies on the ordered sequences returned here.
type Tokenizer interface {
	Sentences(text string) []string
	Words(sentence string) []string
}

// uaxTokenizer segments text per Unicode UAX #29 rules.
type uaxTokenizer struct{}

// NewTokenizer returns the default UAX #29 tokenizer. It is stateless and
// safe for concurrent use.
func NewTokenizer() Tokenizer {
	return uaxTokenizer{}
}

func (uaxTokenizer) Sentences(text string) []string {
	var out []string
	seg := sentences.FromString(text)
	for seg.Next() {
		s := strings.TrimSpace(seg.Value())
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Words returns the lower-cased word tokens of a sentence. Segments without
// a single letter (punctuation, spaces, numerals) are dropped.
func (uaxTokenizer) Words(sentence string) []string {
	var out []string
	seg := words.FromString(sentence)
	for seg.Next() {
		w := seg.Value()
		if !hasLetter(w) {
			continue
		}
		out = append(out, strings.ToLower(w))
	}
	return out
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
