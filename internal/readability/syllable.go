package readability

import (
	"regexp"
	"strings"
)

// Syllable counting is a rule-based approximation: count maximal vowel runs,
// then correct with pattern lists tuned against common English orthography.
// Word-level accuracy is around 85%, with misses usually off by one. That is
// good enough for the polysyllable threshold SMOG needs, and avoids shipping
// a pronunciation dictionary.

// Words the rules systematically mis-score. Looked up after the trailing
// silent "e" has been stripped, so entries are stored in stripped form
// (e.g. "anyon" for "anyone").
var twoSyllableWords = map[string]struct{}{
	"every":     {},
	"different": {},
	"family":    {},
	"girl":      {},
	"girls":     {},
	"world":     {},
	"worlds":    {},
	"bein":      {},
	"being":     {},
	"something": {},
}

var threeSyllableWords = map[string]struct{}{
	"anyon":   {},
	"everyon": {},
}

// Patterns where the vowel-run count over-counts: silent or merged nuclei.
// Each pattern subtracts at most once per token.
var subtractPatterns = compilePatterns(
	`cial`,
	`tia`,
	`cius`,
	`cious`,
	`giu`,           // belgium
	`ion`,           // motion
	`iou`,           // delicious
	`^every`,        // everything, everybody
	`sia$`,          // amnesia
	`.ely$`,         // absolutely (but not "ely")
	`[^szaeiou]es$`, // makes, but not passes
	`[^tdaeiou]ed$`, // walked, but not fated
	`^ninet`,        // ninety, nineteen
	`^awe`,          // awesome
)

// Patterns where the vowel-run count under-counts: hiatuses and syllabic
// consonants hidden inside a single run or behind a stripped "e".
var addPatterns = compilePatterns(
	`ia`,   // piano
	`riet`, // variety
	`iu`,   // medium
	`io`,   // radio
	`ii`,
	`ienc`,         // science, ambience
	`[aeiouym]bl$`, // table, humble (after "e" strip)
	`[aeiou]{3}`,   // agreeable
	`^mc`,
	`ism$`, // prisms
	// Doubled consonant plus syllabic "le": middle, battle, puzzle.
	// RE2 has no backreferences, so the doublings are spelled out.
	`(bb|dd|ff|gg|ll|mm|nn|pp|rr|ss|tt|zz)l(ed)?$`,
	`ndl(ed)?$`, // handle, handled
	`mpl(ed)?$`, // trample, trampled
	`[^aeiou][aeiou]ing$`, // going, doing (seeing is already caught by the triplet rule)
	`[cs]hes$`,    // wishes, churches (restores the es$ subtraction)
	`ges$`,        // pages, oranges
	`[^l]lien`,    // alien, salient
	`^coa[dglx].`, // coagulate, coaxial
	`[^gq]ua[^aeiou]`, // dual, actual
	`dnt$`, // couldn't, shouldn't
	`thm$`, // algorithm, rhythm
)

func compilePatterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// Syllables estimates the number of syllables in an English word. A word may
// decompose into several sub-tokens (hyphenated compounds, contractions glued
// to punctuation); their counts are summed. Any input containing at least one
// letter yields at least 1. Empty or fully non-alphabetic input yields 0.
// The function never fails and holds no state across calls.
func Syllables(word string) int {
	total := 0
	for _, tok := range splitTokens(word) {
		total += tokenSyllables(tok)
	}
	return total
}

// Polysyllabic reports whether a word counts three or more syllables, the
// threshold the SMOG grade is defined over.
func Polysyllabic(word string) bool {
	return Syllables(word) >= polysyllableMin
}

// splitTokens lower-cases the word, drops apostrophes and brackets without
// inserting a separator (so "couldn't" stays one token), and treats every
// other non-letter as a separator.
func splitTokens(word string) []string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range strings.ToLower(word) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r == '\'' || r == '’' || r == '[' || r == ']' || r == '(' || r == ')':
			// joined: removed without splitting the token
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Fields(b.String())
}

func tokenSyllables(tok string) int {
	stripped := strings.TrimSuffix(tok, "e")
	if stripped == "" {
		// "e" on its own still carries a nucleus
		return 1
	}

	if _, ok := twoSyllableWords[stripped]; ok {
		return 2
	}
	if _, ok := threeSyllableWords[stripped]; ok {
		return 3
	}

	adjust := 0
	for _, p := range subtractPatterns {
		if p.MatchString(stripped) {
			adjust--
		}
	}
	for _, p := range addPatterns {
		if p.MatchString(stripped) {
			adjust++
		}
	}

	base := 1
	if len(stripped) > 1 {
		base = vowelRuns(stripped)
	}

	if n := base + adjust; n > 1 {
		return n
	}
	return 1
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// vowelRuns counts maximal runs of vowel characters, the base syllable
// estimate before corrections.
func vowelRuns(tok string) int {
	runs := 0
	inRun := false
	for i := 0; i < len(tok); i++ {
		v := isVowel(tok[i])
		if v && !inRun {
			runs++
		}
		inRun = v
	}
	return runs
}
