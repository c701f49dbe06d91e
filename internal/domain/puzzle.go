package domain

import "time"

// PuzzleState is one user's attempt record for one day's word
type PuzzleState struct {
	ID          int64
	UserID      int64
	WordID      int64
	Date        Date
	CreatedAt   time.Time
	UpdatedAt   time.Time
	GuessNumber int
	Attempts    [][]TypedLetter
	Keys        KeyStates
	// Solved is nil while in progress, true on a win and false on a loss
	Solved *bool
}

// IsFinished reports whether no more guesses are accepted
func (p *PuzzleState) IsFinished() bool {
	return p.Solved != nil
}

// IsWon reports whether the puzzle was solved
func (p *PuzzleState) IsWon() bool {
	return p.Solved != nil && *p.Solved
}

// Clone returns a deep copy so cached states are never shared
func (p *PuzzleState) Clone() *PuzzleState {
	c := *p
	c.Attempts = make([][]TypedLetter, len(p.Attempts))
	for i, a := range p.Attempts {
		c.Attempts[i] = append([]TypedLetter(nil), a...)
	}
	c.Keys = make(KeyStates, len(p.Keys))
	for k, v := range p.Keys {
		c.Keys[k] = v
	}
	if p.Solved != nil {
		solved := *p.Solved
		c.Solved = &solved
	}
	return &c
}

// UserPointer records which puzzle a user is currently working on
type UserPointer struct {
	UserID        int64
	PuzzleStateID int64
	WordID        int64
	WordDate      Date
	// LastDatePlayed is the date of the last completed daily puzzle
	LastDatePlayed *Date
}
