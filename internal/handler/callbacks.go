package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// callbackAction extracts the button Unique from raw callback data,
// which telebot sends as "\f<unique>|<data>"
func callbackAction(data string) string {
	action, _, _ := strings.Cut(cleanCallbackData(data), "|")
	return action
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// The same board was rendered again, nothing to change
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// edit replaces the callback's message, falling back to a new message
func (h *Handler) edit(c tele.Context, userID int64, text string, markup *tele.ReplyMarkup) error {
	if err := h.handleEditError(c.Edit(text, markup), c, userID); err != nil {
		return c.Send(text, markup)
	}
	return nil
}

// reply edits the message when answering a button press and sends otherwise
func (h *Handler) reply(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		return h.edit(c, c.Sender().ID, text, markup)
	}
	return c.Send(text, markup)
}

// handleCallback handles callback queries not matched by a button endpoint
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	action := callbackAction(callback.Data)
	h.logger.Debug("Callback received",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("action", action),
	)

	switch action {
	case btnToday.Unique:
		return h.handleToday(c)
	case btnPast.Unique:
		return h.handlePast(c)
	case btnStats.Unique:
		return h.handleStats(c)
	case btnFriends.Unique:
		return h.handleFriends(c)
	case btnMainMenu.Unique:
		return h.handleStart(c)
	}

	h.logger.Warn("Unknown callback action", zap.String("action", action))
	return c.Respond(&tele.CallbackResponse{Text: "This button is no longer available"})
}
