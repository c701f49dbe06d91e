package domain

import "errors"

var (
	// ErrInvalidGuessLength is returned when a guess is not five letters long
	ErrInvalidGuessLength = errors.New("word must be 5 characters long")
	// ErrInvalidCharacters is returned for letters outside a-z
	ErrInvalidCharacters = errors.New("only letters a-z are allowed")
	// ErrWordNotInDictionary is returned for well-formed words that are not playable
	ErrWordNotInDictionary = errors.New("word is not in the dictionary")
	// ErrAlreadySolved is returned when guessing on a finished puzzle
	ErrAlreadySolved = errors.New("puzzle is already finished")
	// ErrFutureDate is returned when asking for a puzzle after today
	ErrFutureDate = errors.New("puzzle date is in the future")
	// ErrNotFound is returned when a strict lookup finds no record
	ErrNotFound = errors.New("record not found")
)

var userErrors = []error{
	ErrInvalidGuessLength,
	ErrInvalidCharacters,
	ErrWordNotInDictionary,
	ErrAlreadySolved,
	ErrFutureDate,
	ErrNotFound,
}

// IsUserError reports whether err is an expected validation error that can
// be shown to the user as is
func IsUserError(err error) bool {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
