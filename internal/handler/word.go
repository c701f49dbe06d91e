package handler

import (
	"errors"
	"strings"

	"wordy/internal/domain"
	"wordy/internal/middleware"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles password entry for new users and guesses for everyone else
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Unknown commands are not guesses
	if strings.HasPrefix(text, "/") {
		return c.Send("Unknown command. Try /help")
	}

	if err := h.authService.EnsureUserExists(userID, middleware.DisplayName(c.Sender())); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(msgInternalError)
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgInternalError)
	}

	if !authorized {
		return h.handlePassword(c, userID, text)
	}
	return h.handleGuess(c, userID, text)
}

func (h *Handler) handlePassword(c tele.Context, userID int64, password string) error {
	if !h.authService.CheckPassword(password) {
		h.logger.Info("Wrong password", zap.Int64("user_id", userID))
		return c.Send("Wrong password. Try again:")
	}

	if err := h.authService.AuthorizeUser(userID); err != nil {
		h.logger.Error("Failed to authorize user", zap.Error(err))
		return c.Send(msgInternalError)
	}

	h.logger.Info("User authorized", zap.Int64("user_id", userID))
	if err := c.Send("✅ Welcome aboard!"); err != nil {
		return err
	}
	return c.Send(msgMainMenu, mainMenuMarkup())
}

func (h *Handler) handleGuess(c tele.Context, userID int64, guess string) error {
	unlock := h.locks.lock(userID)
	defer unlock()

	puzzle, err := h.puzzleService.SubmitGuess(userID, guess)
	if errors.Is(err, domain.ErrNotFound) {
		// No active puzzle yet: open the current one and retry
		if _, err = h.puzzleService.GetCurrentPuzzle(userID); err == nil {
			puzzle, err = h.puzzleService.SubmitGuess(userID, guess)
		}
	}
	if err != nil {
		return h.replyError(c, err)
	}
	return c.Send(RenderPuzzle(puzzle), puzzleMarkup())
}
