// Package game implements the scoring rules of the daily word puzzle.
// Everything here is pure: no storage, no clock.
package game

import "wordy/internal/domain"

// Analyze counts how many times each letter appears in target
func Analyze(target string) domain.TargetWordAnalysis {
	freq := make(map[byte]int, len(target))
	for i := 0; i < len(target); i++ {
		freq[target[i]]++
	}
	return domain.TargetWordAnalysis{Word: target, LetterFrequency: freq}
}

// Evaluate grades each letter of guess against the target.
//
// Letters are scanned left to right with a per-letter claim count that is
// incremented at every position, hit or not. A letter in the wrong position
// is FOUND only while its claim count, plus the exact hits of that letter
// still ahead in the guess, does not exceed its frequency in the target.
// FOUND and HIT grades together are therefore capped by the letter's real
// multiplicity, earlier occurrences win over later ones, and a later exact
// hit is never starved. Claim counts start fresh for every guess.
func Evaluate(guess string, target domain.TargetWordAnalysis) []domain.TypedLetter {
	pendingHits := make(map[byte]int, len(guess))
	for i := 0; i < len(guess); i++ {
		if isHit(guess, target.Word, i) {
			pendingHits[guess[i]]++
		}
	}

	claims := make(map[byte]int, len(guess))
	result := make([]domain.TypedLetter, len(guess))

	for i := 0; i < len(guess); i++ {
		letter := guess[i]
		claims[letter]++

		state := domain.LetterMiss
		if isHit(guess, target.Word, i) {
			state = domain.LetterHit
			pendingHits[letter]--
		} else if claims[letter]+pendingHits[letter] <= target.LetterFrequency[letter] {
			state = domain.LetterFound
		}
		result[i] = domain.TypedLetter{Letter: string(letter), State: state}
	}
	return result
}

func isHit(guess, target string, i int) bool {
	return i < len(target) && guess[i] == target[i]
}

// MergeKeys folds a graded guess into the keyboard state. A letter's grade
// may only move from miss to found to hit. keys is not modified.
func MergeKeys(keys domain.KeyStates, graded []domain.TypedLetter) domain.KeyStates {
	merged := make(domain.KeyStates, len(keys)+len(graded))
	for k, v := range keys {
		merged[k] = v
	}
	for _, tl := range graded {
		current, ok := merged[tl.Letter]
		if !ok || tl.State.Rank() > current.Rank() {
			merged[tl.Letter] = tl.State
		}
	}
	return merged
}

// IsWin reports whether every letter was a hit
func IsWin(graded []domain.TypedLetter) bool {
	if len(graded) == 0 {
		return false
	}
	for _, tl := range graded {
		if tl.State != domain.LetterHit {
			return false
		}
	}
	return true
}
