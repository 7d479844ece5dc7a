package telegram

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"room-booking/internal/booking"
	"room-booking/internal/calendar"
	"room-booking/internal/room"
	pkgResponse "room-booking/pkg/response"
	pkgTelegram "room-booking/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine, since a booking makes several calendar round trips.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	// Ignore non-message updates (edits, channel posts, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		// Detach from the request context, which is cancelled after the response.
		bgCtx := context.WithoutCancel(ctx)
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	cmd, args := splitCommand(msg.Text)

	switch cmd {
	case "/start":
		return h.reply(ctx, msg.Chat.ID, startText)
	case "/help":
		return h.reply(ctx, msg.Chat.ID, helpText)
	case "/rooms", "/locations":
		return h.reply(ctx, msg.Chat.ID, formatRooms(h.uc.Rooms(ctx).Names))
	case "/event":
		return h.handleEvent(ctx, msg.Chat.ID, args)
	case "":
		return nil
	default:
		return h.reply(ctx, msg.Chat.ID, formatError("unknown command "+cmd+", try /help"))
	}
}

func (h *handler) handleEvent(ctx context.Context, chatID int64, args string) error {
	input, err := parseEvent(args, h.dateMath)
	if err != nil {
		return h.reply(ctx, chatID, formatError(err.Error()))
	}

	out, err := h.uc.Book(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: Book %q: %v", input.Name, err)
		return h.reply(ctx, chatID, h.formatBookError(err))
	}

	return h.reply(ctx, chatID, formatCreated(out))
}

func (h *handler) formatBookError(err error) string {
	var (
		conflictErr   *booking.ConflictError
		validationErr *booking.ValidationError
	)
	switch {
	case errors.As(err, &conflictErr):
		return formatConflicts(conflictErr.Conflicts)
	case errors.As(err, &validationErr):
		return formatError(validationErr.Error())
	case errors.Is(err, room.ErrRoomNotFound):
		return formatError("unknown location, see /rooms")
	case errors.Is(err, calendar.ErrUpstream), errors.Is(err, calendar.ErrPrimaryHost):
		return formatError("error creating event: the calendar service failed, please try again")
	default:
		return formatError("error creating event")
	}
}

func (h *handler) reply(ctx context.Context, chatID int64, text string) error {
	return h.bot.SendMessageWithMode(ctx, chatID, text, pkgTelegram.ParseModeHTML)
}
