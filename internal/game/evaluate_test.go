package game

import (
	"testing"

	"wordy/internal/domain"

	"github.com/stretchr/testify/assert"
)

const (
	hit   = domain.LetterHit
	found = domain.LetterFound
	miss  = domain.LetterMiss
)

func graded(word string, states ...domain.LetterState) []domain.TypedLetter {
	out := make([]domain.TypedLetter, len(word))
	for i := range word {
		out[i] = domain.TypedLetter{Letter: string(word[i]), State: states[i]}
	}
	return out
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		guess    string
		expected []domain.TypedLetter
	}{
		{
			name:     "single found letter",
			target:   "bigot",
			guess:    "hello",
			expected: graded("hello", miss, miss, miss, miss, found),
		},
		{
			name:     "exact match",
			target:   "bigot",
			guess:    "bigot",
			expected: graded("bigot", hit, hit, hit, hit, hit),
		},
		{
			name:     "exact match with repeated letters",
			target:   "halal",
			guess:    "halal",
			expected: graded("halal", hit, hit, hit, hit, hit),
		},
		{
			name:     "claims cap found grades at multiplicity",
			target:   "halal",
			guess:    "lalla",
			expected: graded("lalla", found, hit, hit, miss, found),
		},
		{
			name:     "extra copies beyond multiplicity miss",
			target:   "alert",
			guess:    "eerie",
			expected: graded("eerie", found, miss, found, miss, miss),
		},
		{
			name:     "all letters present in wrong order",
			target:   "alert",
			guess:    "later",
			expected: graded("later", found, found, found, found, found),
		},
		{
			name:     "later hit reserves its letter",
			target:   "abbey",
			guess:    "bbbxx",
			expected: graded("bbbxx", miss, hit, hit, miss, miss),
		},
		{
			name:     "hit still consumes a claim",
			target:   "abbey",
			guess:    "bobby",
			expected: graded("bobby", found, miss, hit, miss, hit),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(tt.guess, Analyze(tt.target))
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEvaluate_Properties(t *testing.T) {
	pairs := [][2]string{
		{"bigot", "hello"},
		{"halal", "lalla"},
		{"abbey", "bobby"},
		{"alert", "eerie"},
		{"sassy", "asses"},
		{"llama", "allay"},
		{"geese", "eeeee"},
		{"abbey", "bbbxx"},
	}

	for _, p := range pairs {
		target, guess := p[0], p[1]
		t.Run(target+"/"+guess, func(t *testing.T) {
			analysis := Analyze(target)
			result := Evaluate(guess, analysis)

			graded := make(map[byte]int)
			for i, tl := range result {
				assert.Equal(t, guess[i] == target[i], tl.State == domain.LetterHit,
					"hit at %d iff letters equal", i)
				if tl.State != domain.LetterMiss {
					graded[guess[i]]++
				}
			}
			for letter, n := range graded {
				assert.LessOrEqual(t, n, analysis.LetterFrequency[letter],
					"letter %q graded more often than it appears", letter)
			}
		})
	}
}

func TestEvaluate_ClaimsAreFreshPerGuess(t *testing.T) {
	analysis := Analyze("bigot")

	first := Evaluate("oxbow", analysis)
	second := Evaluate("oxbow", analysis)

	assert.Equal(t, first, second)
	assert.Equal(t, graded("oxbow", miss, miss, found, hit, miss), second)
}

func TestAnalyze(t *testing.T) {
	a := Analyze("halal")
	assert.Equal(t, "halal", a.Word)
	assert.Equal(t, map[byte]int{'h': 1, 'a': 2, 'l': 2}, a.LetterFrequency)
}

func TestMergeKeys(t *testing.T) {
	tests := []struct {
		name     string
		keys     domain.KeyStates
		graded   []domain.TypedLetter
		expected domain.KeyStates
	}{
		{
			name:     "first guess",
			keys:     domain.KeyStates{},
			graded:   graded("hello", miss, miss, miss, miss, found),
			expected: domain.KeyStates{"h": miss, "e": miss, "l": miss, "o": found},
		},
		{
			name:     "upgrade found to hit",
			keys:     domain.KeyStates{"o": found},
			graded:   graded("bigot", hit, hit, hit, hit, hit),
			expected: domain.KeyStates{"b": hit, "i": hit, "g": hit, "o": hit, "t": hit},
		},
		{
			name:     "never downgrade hit",
			keys:     domain.KeyStates{"a": hit},
			graded:   graded("aaaaa", hit, miss, miss, miss, miss),
			expected: domain.KeyStates{"a": hit},
		},
		{
			name:     "never downgrade found",
			keys:     domain.KeyStates{"e": found},
			graded:   graded("eerie", miss, miss, hit, miss, miss),
			expected: domain.KeyStates{"e": found, "r": hit, "i": miss},
		},
		{
			name:     "same guess upgrades within itself",
			keys:     nil,
			graded:   graded("lalla", found, hit, hit, miss, found),
			expected: domain.KeyStates{"l": hit, "a": hit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(tt.keys)
			result := MergeKeys(tt.keys, tt.graded)
			assert.Equal(t, tt.expected, result)
			assert.Len(t, tt.keys, before, "input keys must not be modified")
		})
	}
}

func TestIsWin(t *testing.T) {
	assert.True(t, IsWin(graded("bigot", hit, hit, hit, hit, hit)))
	assert.False(t, IsWin(graded("bigot", hit, hit, hit, hit, found)))
	assert.False(t, IsWin(nil))
}
