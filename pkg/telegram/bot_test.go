package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"room-booking/pkg/telegram"
)

func TestBot(t *testing.T) {
	var lastWebhook telegram.SetWebhookRequest
	var lastMessage telegram.SendMessageRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if strings.HasSuffix(path, "/setWebhook") {
			json.NewDecoder(r.Body).Decode(&lastWebhook)
			if lastWebhook.URL == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "error_code": 400, "description": "invalid url"}`))
				return
			}
			if lastWebhook.URL == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"ok": true, "description": "webhook set"}`))
			return
		}

		if strings.HasSuffix(path, "/sendMessage") {
			json.NewDecoder(r.Body).Decode(&lastMessage)
			if lastMessage.Text == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "error_code": 400, "description": "invalid text"}`))
				return
			}
			w.Write([]byte(`{"ok": true}`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)
	ctx := context.Background()

	t.Run("SetWebhook Success", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, "https://example.com/webhook/telegram", "s3cret"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastWebhook.SecretToken != "s3cret" || len(lastWebhook.AllowedUpdates) != 1 {
			t.Errorf("unexpected payload %+v", lastWebhook)
		}
	})

	t.Run("SetWebhook API Failed", func(t *testing.T) {
		err := bot.SetWebhook(ctx, "cause_error", "")
		if err == nil || !strings.Contains(err.Error(), "invalid url") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SetWebhook HTTP Failed", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, "cause_500", ""); err == nil {
			t.Fatalf("expected http decoding error")
		}
	})

	t.Run("SendMessageWithMode", func(t *testing.T) {
		if err := bot.SendMessageWithMode(ctx, 42, "<b>hi</b>", telegram.ParseModeHTML); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastMessage.ChatID != 42 || lastMessage.ParseMode != "HTML" {
			t.Errorf("unexpected payload %+v", lastMessage)
		}
	})

	t.Run("SendMessage API Failed", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 42, "cause_error"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		if err := bot.SendMessage(cancelled, 42, "hello"); err == nil {
			t.Fatalf("expected context error")
		}
	})
}
