package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"room-booking/internal/booking/usecase"
	"room-booking/internal/calendar/mock"
	"room-booking/internal/conflict"
	"room-booking/internal/middleware"
	"room-booking/internal/model"
	"room-booking/internal/room"
	"room-booking/pkg/datemath"
	"room-booking/pkg/log"
)

type fakeTelegram struct{ called bool }

func (f *fakeTelegram) HandleWebhook(c *gin.Context) {
	f.called = true
	c.JSON(http.StatusOK, gin.H{"status": "accepted"})
}

func newTestServer(t *testing.T, buildings []model.Building, tg *fakeTelegram) *HTTPServer {
	t.Helper()
	dm, err := datemath.NewParser("America/Los_Angeles")
	if err != nil {
		t.Fatalf("parser: %v", err)
	}
	reg, err := room.New(buildings)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	l := log.NewNop()
	cal := mock.New(l, mock.Options{Rooms: reg, NoSeed: true})
	uc := usecase.New(l, cal, conflict.New(15*time.Minute, reg), reg, dm)

	cfg := Config{
		Logger:         l,
		Port:           8080,
		Mode:           gin.TestMode,
		Environment:    string(model.EnvironmentDevelopment),
		BookingUseCase: uc,
		Middleware:     middleware.Config{RequestsPerMin: 600, TelegramSecret: "s3cret"},
	}
	if tg != nil {
		cfg.TelegramHandler = tg
	}
	srv, err := New(l, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return srv
}

var hq = []model.Building{{ID: "hq", Address: "1 Main St, Springfield", Rooms: []model.Room{{Name: "Room A"}}}}

func serve(srv *HTTPServer, method, path string, body []byte, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNewValidation(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Logger: log.NewNop(), Port: 8080, Mode: gin.TestMode}); err == nil {
		t.Error("expected error without a booking use case")
	}
	if _, err := New(nil, Config{}); err == nil {
		t.Error("expected error without a logger")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, hq, nil)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := serve(srv, http.MethodGet, path, nil, nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
		if w.Header().Get(middleware.RequestIDHeader) == "" {
			t.Errorf("%s: expected a request id header", path)
		}
	}

	t.Run("not ready without rooms", func(t *testing.T) {
		empty := newTestServer(t, nil, nil)
		if w := serve(empty, http.MethodGet, "/ready", nil, nil); w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
	})
}

func TestBookingRoutes(t *testing.T) {
	srv := newTestServer(t, hq, nil)
	loc, _ := time.LoadLocation("America/Los_Angeles")
	start := time.Date(2025, 1, 15, 10, 0, 0, 0, loc)

	body, _ := json.Marshal(map[string]any{
		"name":       "Standup",
		"start_time": start,
		"end_time":   start.Add(30 * time.Minute),
		"location":   "Room A",
	})

	if w := serve(srv, http.MethodPost, "/api/v1/events", body, nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200 on first booking, got %d: %s", w.Code, w.Body.String())
	}
	if w := serve(srv, http.MethodPost, "/api/v1/events", body, nil); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on double booking, got %d: %s", w.Code, w.Body.String())
	}

	w := serve(srv, http.MethodGet, "/api/v1/events?date=2025-01-15", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 listing events, got %d", w.Code)
	}
	var list struct {
		Data struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || list.Data.Count != 1 {
		t.Errorf("expected one listed event, got %s (%v)", w.Body.String(), err)
	}

	for _, path := range []string{"/api/v1/locations", "/api/v1/rooms", "/api/v1/calendar.ics?date=2025-01-15"} {
		if w := serve(srv, http.MethodGet, path, nil, nil); w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestTelegramRoute(t *testing.T) {
	t.Run("not registered without a handler", func(t *testing.T) {
		srv := newTestServer(t, hq, nil)
		if w := serve(srv, http.MethodPost, "/webhook/telegram", []byte(`{}`), nil); w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("guarded by the secret token", func(t *testing.T) {
		tg := &fakeTelegram{}
		srv := newTestServer(t, hq, tg)

		if w := serve(srv, http.MethodPost, "/webhook/telegram", []byte(`{}`), nil); w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 without secret, got %d", w.Code)
		}
		if tg.called {
			t.Fatal("handler must not run without the secret")
		}

		w := serve(srv, http.MethodPost, "/webhook/telegram", []byte(`{}`), map[string]string{middleware.TelegramSecretHeader: "s3cret"})
		if w.Code != http.StatusOK || !tg.called {
			t.Errorf("expected handler to run, got %d", w.Code)
		}
	})
}

func TestRunShutsDownOnCancel(t *testing.T) {
	srv := newTestServer(t, hq, nil)
	srv.port = 0 // any free port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
