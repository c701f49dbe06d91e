// Package dictionary holds the playable word list.
//
// Words are kept in a single sorted buffer of fixed-width records so that
// membership checks are a binary search with no allocation per lookup.
package dictionary

import (
	"bytes"
	"fmt"
	"sort"

	"wordy/internal/domain"
)

const width = domain.WordLength

// Index is an immutable sorted set of five letter words
type Index struct {
	buf []byte
}

// NewIndex builds an index from words. Duplicates are collapsed; any word
// that is not five lowercase letters is rejected.
func NewIndex(words []string) (*Index, error) {
	sorted := make([]string, 0, len(words))
	for _, w := range words {
		if !IsValidWord(w) {
			return nil, fmt.Errorf("invalid dictionary word %q", w)
		}
		sorted = append(sorted, w)
	}
	sort.Strings(sorted)

	buf := make([]byte, 0, len(sorted)*width)
	for i, w := range sorted {
		if i > 0 && sorted[i-1] == w {
			continue
		}
		buf = append(buf, w...)
	}
	return &Index{buf: buf}, nil
}

// Len returns the number of words
func (ix *Index) Len() int {
	return len(ix.buf) / width
}

// At returns the i-th word in sorted order
func (ix *Index) At(i int) string {
	return string(ix.record(i))
}

func (ix *Index) record(i int) []byte {
	return ix.buf[i*width : (i+1)*width]
}

// Contains reports whether word is in the index
func (ix *Index) Contains(word string) bool {
	if len(word) != width {
		return false
	}
	key := []byte(word)
	n := ix.Len()
	i := sort.Search(n, func(i int) bool {
		return bytes.Compare(ix.record(i), key) >= 0
	})
	return i < n && bytes.Equal(ix.record(i), key)
}

// Each calls fn for every word in sorted order until fn returns false
func (ix *Index) Each(fn func(word string) bool) {
	for i := 0; i < ix.Len(); i++ {
		if !fn(ix.At(i)) {
			return
		}
	}
}

// IsValidWord reports whether s is exactly five letters a-z
func IsValidWord(s string) bool {
	return len(s) == width && IsLetters(s)
}

// IsLetters reports whether s is non-empty and only contains a-z
func IsLetters(s string) bool {
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
