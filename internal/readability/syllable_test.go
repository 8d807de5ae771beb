package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		// degenerate inputs: no letters, no syllables, no error
		{"", 0},
		{"123", 0},
		{"?!...", 0},
		{"''", 0},

		// base vowel-run counting
		{"dog", 1},
		{"a", 1},
		{"the", 1},
		{"cat's", 1},
		{"readability", 5},
		{"gobbledygook", 4},

		// silent-e stripping
		{"make", 1},
		{"home", 1},

		// subtract rules
		{"motion", 2},
		{"delicious", 3},
		{"walked", 1},
		{"makes", 1},
		{"absolutely", 4},
		{"ninety", 2},
		{"nineteen", 2},
		{"awesome", 2},
		{"everything", 3},

		// add rules
		{"science", 2},
		{"couldn't", 2},
		{"piano", 3},
		{"radio", 3},
		{"medium", 3},
		{"variety", 4},
		{"table", 2},
		{"middle", 2},
		{"handle", 2},
		{"prism", 2},
		{"algorithm", 4},
		{"agreeable", 4},
		{"going", 2},
		{"wishes", 2},
		{"fated", 2},

		// exception lists override the rules
		{"every", 2},
		{"EVERY", 2},
		{"family", 2},
		{"being", 2},
		{"anyone", 3},
		{"everyone", 3},

		// compounds decompose into sub-tokens and sum
		{"mother-in-law", 4},
		{"well-made", 2},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Syllables(tt.word), "Syllables(%q)", tt.word)
		})
	}
}

func TestSyllablesAtLeastOneForLetters(t *testing.T) {
	// Any input with at least one letter scores >= 1, however the rules land.
	words := []string{
		"b", "e", "th", "rhythm", "strengths", "ooze", "psst-ok",
		"x-ray", "it's", "don't", "fly", "sky",
	}
	for _, w := range words {
		assert.GreaterOrEqual(t, Syllables(w), 1, "Syllables(%q)", w)
	}
}

func TestSyllablesIsPure(t *testing.T) {
	// Identical input, identical output; no state carries across calls.
	for i := 0; i < 3; i++ {
		assert.Equal(t, 2, Syllables("science"))
		assert.Equal(t, 2, Syllables("every"))
		assert.Equal(t, 0, Syllables(""))
	}
}

func TestPolysyllabic(t *testing.T) {
	assert.False(t, Polysyllabic("dog"))
	assert.False(t, Polysyllabic("science"))
	assert.True(t, Polysyllabic("delicious"))
	assert.True(t, Polysyllabic("readability"))
}
