package luma

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"room-booking/internal/calendar"
)

const (
	DefaultBaseURL = "https://api.lu.ma/public/v1"
	apiKeyHeader   = "x-luma-api-key"
	maxErrorBody   = 512
)

// Client is the HTTP wrapper for the Luma public API.
// Non-2xx responses and undecodable bodies are returned as *calendar.UpstreamError.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Luma HTTP client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListEvents fetches one page of GET /calendar/list-events.
func (c *Client) ListEvents(ctx context.Context, p ListEventsParams) (ListEventsResponse, error) {
	q := url.Values{}
	if p.After != "" {
		q.Set("after", p.After)
	}
	if p.Before != "" {
		q.Set("before", p.Before)
	}
	if p.Limit > 0 {
		q.Set("pagination_limit", strconv.Itoa(p.Limit))
	}
	if p.Cursor != "" {
		q.Set("pagination_cursor", p.Cursor)
	}

	var out ListEventsResponse
	err := c.do(ctx, "luma.ListEvents", http.MethodGet, "/calendar/list-events", q, nil, &out)
	return out, err
}

// GetEvent fetches GET /event/get. A 404 yields calendar.ErrEventNotFound.
func (c *Client) GetEvent(ctx context.Context, id string) (Event, error) {
	q := url.Values{}
	q.Set("api_id", id)

	var out GetEventResponse
	if err := c.do(ctx, "luma.GetEvent", http.MethodGet, "/event/get", q, nil, &out); err != nil {
		return Event{}, err
	}
	if out.Event.APIID == "" {
		out.Event.APIID = id
	}
	return out.Event, nil
}

// CreateEvent calls POST /event/create and returns the new event id.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (string, error) {
	var out CreateEventResponse
	if err := c.do(ctx, "luma.CreateEvent", http.MethodPost, "/event/create", nil, req, &out); err != nil {
		return "", err
	}
	if out.APIID == "" {
		return "", &calendar.UpstreamError{Op: "luma.CreateEvent", Err: fmt.Errorf("response has no api_id")}
	}
	return out.APIID, nil
}

// AddHost calls POST /event/add-host.
func (c *Client) AddHost(ctx context.Context, req AddHostRequest) error {
	return c.do(ctx, "luma.AddHost", http.MethodPost, "/event/add-host", nil, req, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to marshal request: %w", op, err)
		}
		reader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%s: failed to build request: %w", op, err)
	}
	httpReq.Header.Set(apiKeyHeader, c.apiKey)
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &calendar.UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && method == http.MethodGet && path == "/event/get" {
		return fmt.Errorf("%s: %w", op, calendar.ErrEventNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &calendar.UpstreamError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &calendar.UpstreamError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
