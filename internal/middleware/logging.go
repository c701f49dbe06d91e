package middleware

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// RequestIDKey is the context key holding the update's request id
const RequestIDKey = "request_id"

// RequestLogger tags every update with a request id and logs how it went
func RequestLogger(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			requestID := uuid.NewString()
			c.Set(RequestIDKey, requestID)

			fields := []zap.Field{
				zap.String("request_id", requestID),
				zap.Int("update_id", c.Update().ID),
			}
			if sender := c.Sender(); sender != nil {
				fields = append(fields, zap.Int64("user_id", sender.ID))
			}
			if cb := c.Callback(); cb != nil {
				fields = append(fields, zap.String("kind", "callback"))
			} else {
				fields = append(fields, zap.String("kind", "message"))
			}

			start := time.Now()
			err := next(c)
			fields = append(fields, zap.Duration("latency", time.Since(start)))

			if err != nil {
				logger.Error("Update failed", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}
