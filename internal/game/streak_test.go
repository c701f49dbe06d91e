package game

import (
	"testing"
	"time"

	"wordy/internal/domain"

	"github.com/stretchr/testify/assert"
)

func datePtr(d domain.Date) *domain.Date {
	return &d
}

func TestApplyCompletion(t *testing.T) {
	today := domain.NewDate(2025, time.September, 10)

	tests := []struct {
		name           string
		stats          domain.Statistics
		completion     Completion
		expected       domain.Statistics
		expectedUpdate bool
	}{
		{
			name:  "first win today",
			stats: domain.Statistics{},
			completion: Completion{
				Won: true, GuessNumber: 0, Date: today, Today: today,
			},
			expected: domain.Statistics{
				Played: 1, Won: 1, CurrentStreak: 1, MaxStreak: 1,
				Distribution: [6]int{1, 0, 0, 0, 0, 0},
			},
			expectedUpdate: true,
		},
		{
			name:  "win continues streak from yesterday",
			stats: domain.Statistics{Played: 3, Won: 3, CurrentStreak: 3, MaxStreak: 3},
			completion: Completion{
				Won: true, GuessNumber: 3, Date: today, Today: today,
				LastDatePlayed: datePtr(today.AddDays(-1)),
			},
			expected: domain.Statistics{
				Played: 4, Won: 4, CurrentStreak: 4, MaxStreak: 4,
				Distribution: [6]int{0, 0, 0, 1, 0, 0},
			},
			expectedUpdate: true,
		},
		{
			name:  "gap resets streak but keeps max",
			stats: domain.Statistics{Played: 5, Won: 5, CurrentStreak: 5, MaxStreak: 5},
			completion: Completion{
				Won: true, GuessNumber: 5, Date: today, Today: today,
				LastDatePlayed: datePtr(today.AddDays(-2)),
			},
			expected: domain.Statistics{
				Played: 6, Won: 6, CurrentStreak: 1, MaxStreak: 5,
				Distribution: [6]int{0, 0, 0, 0, 0, 1},
			},
			expectedUpdate: true,
		},
		{
			name:  "loss today counts toward streak",
			stats: domain.Statistics{Played: 1, Won: 1, CurrentStreak: 1, MaxStreak: 1},
			completion: Completion{
				Won: false, GuessNumber: 5, Date: today, Today: today,
				LastDatePlayed: datePtr(today.AddDays(-1)),
			},
			expected: domain.Statistics{
				Played: 2, Won: 1, CurrentStreak: 2, MaxStreak: 2,
			},
			expectedUpdate: true,
		},
		{
			name:  "backfilled win leaves streak alone",
			stats: domain.Statistics{Played: 2, Won: 2, CurrentStreak: 2, MaxStreak: 2},
			completion: Completion{
				Won: true, GuessNumber: 2, Date: today.AddDays(-5), Today: today,
				LastDatePlayed: datePtr(today.AddDays(-1)),
			},
			expected: domain.Statistics{
				Played: 3, Won: 3, CurrentStreak: 2, MaxStreak: 2,
				Distribution: [6]int{0, 0, 1, 0, 0, 0},
			},
			expectedUpdate: false,
		},
		{
			name:  "backfilled loss only counts as played",
			stats: domain.Statistics{},
			completion: Completion{
				Won: false, GuessNumber: 5, Date: today.AddDays(-1), Today: today,
			},
			expected:       domain.Statistics{Played: 1},
			expectedUpdate: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, update := ApplyCompletion(tt.stats, tt.completion)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.expectedUpdate, update)
		})
	}
}
