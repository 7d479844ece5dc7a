package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"room-booking/pkg/response"
)

const TelegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"

// TelegramSecret rejects webhook calls that do not carry the secret token
// registered with setWebhook.
func (m Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.telegramSecret == "" {
			c.Next()
			return
		}

		got := c.GetHeader(TelegramSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.telegramSecret)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.TelegramSecret: rejected webhook from %s", c.ClientIP())
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
