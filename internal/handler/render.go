package handler

import (
	"fmt"
	"sort"
	"strings"

	"wordy/internal/domain"
)

const (
	tileHit   = "🟩"
	tileFound = "🟨"
	tileMiss  = "⬛"
	tileEmpty = "⬜"

	barBlock = "▇"
	barWidth = 10
)

func tile(s domain.LetterState) string {
	switch s {
	case domain.LetterHit:
		return tileHit
	case domain.LetterFound:
		return tileFound
	default:
		return tileMiss
	}
}

// RenderPuzzle draws the board, the letters tried so far and the status line
func RenderPuzzle(p *domain.PuzzleState) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Wordy #%d · %s\n\n", p.WordID, p.Date)

	for _, row := range p.Attempts {
		var word strings.Builder
		for _, l := range row {
			b.WriteString(tile(l.State))
			word.WriteString(l.Letter)
		}
		b.WriteString("  ")
		b.WriteString(strings.ToUpper(word.String()))
		b.WriteString("\n")
	}
	if !p.IsFinished() {
		for i := len(p.Attempts); i < domain.MaxAttempts; i++ {
			b.WriteString(strings.Repeat(tileEmpty, domain.WordLength))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(renderKeys(p.Keys))
	b.WriteString("\n\n")
	b.WriteString(puzzleStatus(p))
	return b.String()
}

func renderKeys(keys domain.KeyStates) string {
	var lines []string
	for _, state := range []domain.LetterState{domain.LetterHit, domain.LetterFound, domain.LetterMiss} {
		var letters []string
		for l, s := range keys {
			if s == state {
				letters = append(letters, strings.ToUpper(l))
			}
		}
		if len(letters) == 0 {
			continue
		}
		sort.Strings(letters)
		lines = append(lines, tile(state)+" "+strings.Join(letters, " "))
	}
	if len(lines) == 0 {
		return "No letters tried yet"
	}
	return strings.Join(lines, "\n")
}

func puzzleStatus(p *domain.PuzzleState) string {
	switch {
	case p.IsWon():
		return fmt.Sprintf("🎉 Solved in %d/%d", len(p.Attempts), domain.MaxAttempts)
	case p.IsFinished():
		return "😔 Out of guesses. Catch up on older puzzles with /past"
	default:
		return fmt.Sprintf("Guess %d of %d. Send a five letter word.", len(p.Attempts)+1, domain.MaxAttempts)
	}
}

// RenderStats formats statistics with a guess distribution chart
func RenderStats(s *domain.Statistics) string {
	var b strings.Builder

	b.WriteString("📊 Statistics\n\n")
	fmt.Fprintf(&b, "Played: %d\n", s.Played)
	fmt.Fprintf(&b, "Win rate: %d%%\n", s.WinRate())
	fmt.Fprintf(&b, "Current streak: %d\n", s.CurrentStreak)
	fmt.Fprintf(&b, "Max streak: %d\n\n", s.MaxStreak)
	b.WriteString("Guess distribution")

	peak := 0
	for _, n := range s.Distribution {
		if n > peak {
			peak = n
		}
	}
	for i, n := range s.Distribution {
		width := 0
		if peak > 0 {
			width = n * barWidth / peak
		}
		if n > 0 && width == 0 {
			width = 1
		}
		fmt.Fprintf(&b, "\n%d %s %d", i+1, strings.Repeat(barBlock, width), n)
	}
	return b.String()
}

// RenderFriends lists how every friend is doing on the caller's puzzle
func RenderFriends(r *domain.FriendResults) string {
	var b strings.Builder

	fmt.Fprintf(&b, "👥 Wordy #%d · %s\n", r.PuzzleNumber, r.PuzzleDate)
	if len(r.Results) == 0 {
		b.WriteString("\nNo other players yet.")
		return b.String()
	}
	for _, f := range r.Results {
		fmt.Fprintf(&b, "\n%s: %s", f.Name, friendStatus(f))
	}
	return b.String()
}

func friendStatus(f domain.FriendResult) string {
	switch {
	case f.Solved != nil && *f.Solved:
		return fmt.Sprintf("solved in %d/%d", f.NumGuesses, domain.MaxAttempts)
	case f.Solved != nil:
		return "out of guesses"
	case f.NumGuesses == 0:
		return "not started"
	default:
		return fmt.Sprintf("%d/%d, playing", f.NumGuesses, domain.MaxAttempts)
	}
}

// RenderSolve shows up to limit candidate words
func RenderSolve(words []string, limit int) string {
	if len(words) == 0 {
		return "🔎 No words match."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔎 %d possible words\n\n", len(words))

	shown := words
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	b.WriteString(strings.Join(shown, " "))
	if rest := len(words) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "\n…and %d more", rest)
	}
	return b.String()
}
