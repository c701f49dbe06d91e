package domain

// WordLength is the number of letters in every puzzle word
const WordLength = 5

// MaxAttempts is the number of guesses allowed per puzzle
const MaxAttempts = 6

// Word is the word of the day for a single calendar date
type Word struct {
	ID   int64
	Text string
	Date Date
}

// TargetWordAnalysis holds data derived from a target word for scoring
type TargetWordAnalysis struct {
	Word            string
	LetterFrequency map[byte]int
}
