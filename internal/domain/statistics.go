package domain

import "math"

// Statistics is a user's aggregate win and streak record
type Statistics struct {
	UserID        int64
	Played        int
	Won           int
	CurrentStreak int
	MaxStreak     int
	// Distribution counts wins by the guess number they were won on (0-5)
	Distribution [MaxAttempts]int
}

// WinRate returns the rounded percentage of played puzzles that were won
func (s *Statistics) WinRate() int {
	if s.Played == 0 {
		return 0
	}
	return int(math.Round(float64(s.Won) / float64(s.Played) * 100))
}
