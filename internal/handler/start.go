package handler

import (
	"wordy/internal/middleware"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgInternalError = "Something went wrong. Please try again later."
	msgPasswordAsk   = "Hi! Wordy is invite only. Send the password to join:"
	msgMainMenu      = "🏠 Main menu\n\nGuess the five letter word of the day in six tries. Send a word to play, or pick an action:"
	msgHelp          = "Send any five letter word to guess.\n\n" +
		"/today - today's puzzle\n" +
		"/play YYYY-MM-DD - a past puzzle\n" +
		"/past - latest unfinished puzzle\n" +
		"/stats - your statistics\n" +
		"/friends - how the others did\n" +
		"/solve _or__ t ch - list words matching hits, found letters and misses"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	// Ensure user exists in database
	if err := h.authService.EnsureUserExists(userID, middleware.DisplayName(c.Sender())); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(msgInternalError)
	}

	// Check if authorized
	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgInternalError)
	}

	if !authorized {
		return c.Send(msgPasswordAsk)
	}

	if c.Callback() != nil {
		return h.edit(c, userID, msgMainMenu, mainMenuMarkup())
	}
	return c.Send(msgMainMenu, mainMenuMarkup())
}

// handleHelp handles /help command
func (h *Handler) handleHelp(c tele.Context) error {
	return c.Send(msgHelp, backMarkup())
}
