package middleware

import (
	"wordy/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgInternalError = "Something went wrong. Please try again later."
	msgPasswordAsk   = "Hi! Wordy is invite only. Send the password to join:"
)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}

			// Ensure user exists
			if err := authService.EnsureUserExists(sender.ID, DisplayName(sender)); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return c.Send(msgInternalError)
			}

			// Check authorization
			authorized, err := authService.IsAuthorized(sender.ID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Send(msgInternalError)
			}

			// If not authorized and not /start command, prompt for password
			if !authorized && c.Text() != "/start" {
				if c.Callback() != nil {
					_ = c.Respond()
				}
				return c.Send(msgPasswordAsk)
			}

			return next(c)
		}
	}
}

// DisplayName picks the name other players see
func DisplayName(u *tele.User) string {
	if u == nil {
		return ""
	}
	if u.Username != "" {
		return u.Username
	}
	if u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.FirstName
}
