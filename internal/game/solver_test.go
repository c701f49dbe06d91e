package game

import (
	"errors"
	"testing"

	"wordy/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wordList []string

func (w wordList) Each(fn func(string) bool) {
	for _, word := range w {
		if !fn(word) {
			return
		}
	}
}

func TestPossibleWords(t *testing.T) {
	dict := wordList{"forty", "moral", "porch", "sorta", "torch"}

	tests := []struct {
		name     string
		filter   Filter
		expected []string
	}{
		{
			name: "pattern with found and misses",
			filter: Filter{
				Hits:   [5]string{"", "o", "r", "", ""},
				Found:  []string{"t"},
				Misses: []string{"c", "h"},
			},
			expected: []string{"forty", "sorta"},
		},
		{
			name:     "empty filter matches everything",
			filter:   Filter{},
			expected: []string{"forty", "moral", "porch", "sorta", "torch"},
		},
		{
			name:     "found is containment only",
			filter:   Filter{Hits: [5]string{"t", "", "", "", ""}, Found: []string{"t"}},
			expected: []string{"torch"},
		},
		{
			name:     "uppercase letters are normalized",
			filter:   Filter{Hits: [5]string{"", "O", "R", "", ""}, Misses: []string{"C"}},
			expected: []string{"forty", "moral", "sorta"},
		},
		{
			name:     "no match returns empty slice",
			filter:   Filter{Found: []string{"z"}},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := PossibleWords(dict, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPossibleWords_InvalidCharacters(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
	}{
		{name: "digit hit", filter: Filter{Hits: [5]string{"1", "", "", "", ""}}},
		{name: "multi letter hit", filter: Filter{Hits: [5]string{"", "ab", "", "", ""}}},
		{name: "punctuation found", filter: Filter{Found: []string{"!"}}},
		{name: "empty miss", filter: Filter{Misses: []string{""}}},
		{name: "non ascii miss", filter: Filter{Misses: []string{"é"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := PossibleWords(wordList{"forty"}, tt.filter)
			assert.True(t, errors.Is(err, domain.ErrInvalidCharacters))
			assert.Nil(t, result)
		})
	}
}

func TestParsePattern(t *testing.T) {
	hits, err := ParsePattern("_or.?")
	require.NoError(t, err)
	assert.Equal(t, [5]string{"", "o", "r", "", ""}, hits)

	_, err = ParsePattern("_or")
	assert.True(t, errors.Is(err, domain.ErrInvalidGuessLength))
}

func TestSplitLetters(t *testing.T) {
	assert.Equal(t, []string{"c", "h"}, SplitLetters("ch"))
	assert.Equal(t, []string{}, SplitLetters(""))
}
