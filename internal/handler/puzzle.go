package handler

import (
	"errors"
	"fmt"
	"strings"

	"wordy/internal/domain"
	"wordy/internal/game"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// solveLimit caps how many candidates /solve prints
const solveLimit = 50

const msgSolveUsage = "Usage: /solve PATTERN [FOUND] [MISSES]\n" +
	"PATTERN has five characters, _ for unknown. Use - to leave FOUND empty.\n" +
	"Example: /solve _or__ t ch"

// handleToday shows the puzzle the user is working on
func (h *Handler) handleToday(c tele.Context) error {
	puzzle, err := h.puzzleService.GetCurrentPuzzle(c.Sender().ID)
	if err != nil {
		return h.replyError(c, err)
	}
	return h.reply(c, RenderPuzzle(puzzle), puzzleMarkup())
}

// handlePlay opens the puzzle for the date given as /play YYYY-MM-DD
func (h *Handler) handlePlay(c tele.Context) error {
	arg := strings.TrimSpace(c.Message().Payload)
	if arg == "" {
		return c.Send("Usage: /play YYYY-MM-DD")
	}

	date, err := domain.ParseDate(arg)
	if err != nil {
		return c.Send("Dates look like 2025-03-01")
	}

	puzzle, err := h.puzzleService.GetPuzzleByDate(c.Sender().ID, date)
	if err != nil {
		return h.replyError(c, err)
	}
	return c.Send(RenderPuzzle(puzzle), puzzleMarkup())
}

// handlePast opens the latest past puzzle the user has not finished
func (h *Handler) handlePast(c tele.Context) error {
	puzzle, err := h.puzzleService.GetFirstUnfinishedPuzzle(c.Sender().ID)
	if errors.Is(err, domain.ErrNotFound) {
		return h.reply(c, "🏁 You are all caught up on past puzzles.", mainMenuMarkup())
	}
	if err != nil {
		return h.replyError(c, err)
	}
	return h.reply(c, RenderPuzzle(puzzle), puzzleMarkup())
}

// handleStats shows the user's statistics
func (h *Handler) handleStats(c tele.Context) error {
	stats, err := h.statsService.GetStatistics(c.Sender().ID)
	if err != nil {
		return h.replyError(c, err)
	}
	return h.reply(c, RenderStats(stats), backMarkup())
}

// handleFriends compares the user's active puzzle with everyone else's
func (h *Handler) handleFriends(c tele.Context) error {
	userID := c.Sender().ID

	// Make sure the user has an active puzzle to compare against
	if _, err := h.puzzleService.GetCurrentPuzzle(userID); err != nil {
		return h.replyError(c, err)
	}

	friends, err := h.authService.Friends(userID)
	if err != nil {
		return h.replyError(c, err)
	}

	results, err := h.puzzleService.FriendResults(userID, friends)
	if err != nil {
		return h.replyError(c, err)
	}
	return h.reply(c, RenderFriends(results), backMarkup())
}

// handleSolve lists dictionary words matching the given clues
func (h *Handler) handleSolve(c tele.Context) error {
	hits, found, misses, err := parseSolveArgs(c.Message().Payload)
	if err != nil {
		return c.Send(msgSolveUsage)
	}

	words, err := h.puzzleService.PossibleWords(hits, found, misses)
	if err != nil {
		return h.replyError(c, err)
	}
	return c.Send(RenderSolve(words, solveLimit))
}

// parseSolveArgs parses "PATTERN [FOUND] [MISSES]"
func parseSolveArgs(payload string) ([domain.WordLength]string, []string, []string, error) {
	var hits [domain.WordLength]string

	fields := strings.Fields(payload)
	if len(fields) == 0 || len(fields) > 3 {
		return hits, nil, nil, fmt.Errorf("expected 1 to 3 arguments, got %d", len(fields))
	}

	hits, err := game.ParsePattern(fields[0])
	if err != nil {
		return hits, nil, nil, err
	}

	letters := func(i int) []string {
		if i >= len(fields) || fields[i] == "-" {
			return nil
		}
		return game.SplitLetters(fields[i])
	}
	return hits, letters(1), letters(2), nil
}

// replyError shows expected errors to the user and logs the rest
func (h *Handler) replyError(c tele.Context, err error) error {
	if domain.IsUserError(err) {
		return c.Send(userMessage(err))
	}

	h.logger.Error("Request failed",
		zap.Int64("user_id", c.Sender().ID),
		zap.Error(err),
	)
	return c.Send(msgInternalError)
}

// userMessage turns a user error into chat text
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidGuessLength):
		return "✋ The word must be 5 letters long."
	case errors.Is(err, domain.ErrInvalidCharacters):
		return "✋ Only English letters a-z, please."
	case errors.Is(err, domain.ErrWordNotInDictionary):
		return "🤷 Not in the word list."
	case errors.Is(err, domain.ErrAlreadySolved):
		return "This puzzle is finished. Open /today or catch up with /past."
	case errors.Is(err, domain.ErrFutureDate):
		return "⏳ That puzzle is not out yet."
	case errors.Is(err, domain.ErrNotFound):
		return "No puzzle here. Start with /today."
	default:
		return msgInternalError
	}
}
