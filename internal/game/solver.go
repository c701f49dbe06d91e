package game

import (
	"fmt"
	"strings"

	"wordy/internal/domain"
)

// Words is the dictionary the solver filters
type Words interface {
	Each(fn func(word string) bool)
}

// Filter is a solver query. Hits holds the known letter per position with
// "" as a wildcard; Found letters must appear somewhere; Misses must not.
type Filter struct {
	Hits   [domain.WordLength]string
	Found  []string
	Misses []string
}

// Normalize lowercases every letter and validates it is a-z
func (f Filter) Normalize() (Filter, error) {
	var out Filter
	for i, h := range f.Hits {
		h = strings.ToLower(h)
		if h != "" && !isLetter(h) {
			return Filter{}, fmt.Errorf("%w: %q at position %d", domain.ErrInvalidCharacters, h, i+1)
		}
		out.Hits[i] = h
	}

	var err error
	if out.Found, err = normalizeLetters(f.Found); err != nil {
		return Filter{}, err
	}
	if out.Misses, err = normalizeLetters(f.Misses); err != nil {
		return Filter{}, err
	}
	return out, nil
}

// Matches reports whether word satisfies the filter. The filter must be
// normalized.
func (f Filter) Matches(word string) bool {
	if len(word) != domain.WordLength {
		return false
	}
	for i, h := range f.Hits {
		if h != "" && word[i] != h[0] {
			return false
		}
	}
	for _, l := range f.Found {
		if !strings.Contains(word, l) {
			return false
		}
	}
	for _, l := range f.Misses {
		if strings.Contains(word, l) {
			return false
		}
	}
	return true
}

// PossibleWords returns every dictionary word matching the filter, in
// dictionary order. This is a plain containment filter: it does not reason
// about letter counts or positions of found letters.
func PossibleWords(words Words, f Filter) ([]string, error) {
	normalized, err := f.Normalize()
	if err != nil {
		return nil, err
	}

	matches := []string{}
	words.Each(func(w string) bool {
		if normalized.Matches(w) {
			matches = append(matches, w)
		}
		return true
	})
	return matches, nil
}

// ParsePattern turns a pattern such as "_or__" into positional hits. "_",
// "." and "?" are wildcards.
func ParsePattern(pattern string) ([domain.WordLength]string, error) {
	var hits [domain.WordLength]string
	if len(pattern) != domain.WordLength {
		return hits, fmt.Errorf("%w: pattern %q", domain.ErrInvalidGuessLength, pattern)
	}
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '_', '.', '?':
		default:
			hits[i] = string(c)
		}
	}
	return hits, nil
}

// SplitLetters splits "tch" into ["t", "c", "h"]
func SplitLetters(s string) []string {
	letters := make([]string, 0, len(s))
	for _, r := range s {
		letters = append(letters, string(r))
	}
	return letters
}

func normalizeLetters(letters []string) ([]string, error) {
	out := make([]string, 0, len(letters))
	for _, l := range letters {
		l = strings.ToLower(l)
		if !isLetters(l) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCharacters, l)
		}
		out = append(out, l)
	}
	return out, nil
}

func isLetter(s string) bool {
	return len(s) == 1 && isLetters(s)
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
