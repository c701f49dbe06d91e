package domain

// LetterState is the grade given to a typed letter
type LetterState string

const (
	// LetterMiss means the letter is not in the word (gray)
	LetterMiss LetterState = "miss"
	// LetterFound means the letter is in the word at another position (yellow)
	LetterFound LetterState = "found"
	// LetterHit means the letter is in the correct position (green)
	LetterHit LetterState = "hit"
)

// Rank orders states so that a stronger grade compares greater
func (s LetterState) Rank() int {
	switch s {
	case LetterHit:
		return 2
	case LetterFound:
		return 1
	default:
		return 0
	}
}

// TypedLetter is a letter the user typed along with its grade
type TypedLetter struct {
	Letter string      `json:"letter"`
	State  LetterState `json:"state"`
}

// KeyStates maps each typed letter to the best grade seen for it
type KeyStates map[string]LetterState
