package game

import "wordy/internal/domain"

// Completion describes a puzzle that just finished
type Completion struct {
	Won         bool
	GuessNumber int
	Date        domain.Date
	Today       domain.Date
	// LastDatePlayed is the user's last completed daily puzzle, if any
	LastDatePlayed *domain.Date
}

// IsDaily reports whether the completed puzzle is today's
func (c Completion) IsDaily() bool {
	return c.Date.Equal(c.Today)
}

// ApplyCompletion returns stats updated for c. Played, won and the
// distribution always change; streaks only change when today's puzzle is
// the one completed. The second result reports whether the last played
// date must move to c.Date.
func ApplyCompletion(stats domain.Statistics, c Completion) (domain.Statistics, bool) {
	stats.Played++
	if c.Won {
		stats.Won++
		if c.GuessNumber >= 0 && c.GuessNumber < len(stats.Distribution) {
			stats.Distribution[c.GuessNumber]++
		}
	}

	if !c.IsDaily() {
		return stats, false
	}

	yesterday := c.Date.AddDays(-1)
	if c.LastDatePlayed == nil || c.LastDatePlayed.Equal(yesterday) {
		stats.CurrentStreak++
	} else {
		stats.CurrentStreak = 1
	}
	if stats.CurrentStreak > stats.MaxStreak {
		stats.MaxStreak = stats.CurrentStreak
	}
	return stats, true
}
