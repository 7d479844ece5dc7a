package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"room-booking/internal/booking"
	"room-booking/pkg/datemath"
	pkgLog "room-booking/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender delivers replies to a chat. *telegram.Bot satisfies it.
type Sender interface {
	SendMessageWithMode(ctx context.Context, chatID int64, text, parseMode string) error
}

type handler struct {
	l        pkgLog.Logger
	uc       booking.UseCase
	bot      Sender
	dateMath *datemath.Parser
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc booking.UseCase, bot Sender, dateMath *datemath.Parser) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		bot:      bot,
		dateMath: dateMath,
	}
}
