// Package chatclient talks to a running chatbot API.
package chatclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"realestate_chatbot/internal/adapters/observability"
	"realestate_chatbot/internal/domain"
)

const service = "chatapi"

type Client struct {
	base  string
	hc    *http.Client
	token string
	rl    *rate.Limiter
}

// Reply mirrors the POST /chat response body.
type Reply struct {
	Reply      string `json:"reply"`
	Prediction *int64 `json:"prediction"`
}

func New(base string, rps int) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server URL %q", base)
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// WithToken authenticates subsequent calls (sent as x-access-token).
func (c *Client) WithToken(tok string) *Client {
	c.token = tok
	return c
}

// ---- Public API ----

func (c *Client) Chat(ctx context.Context, msg string, details *domain.PropertyDetails) (Reply, error) {
	body := map[string]any{"message": msg}
	if details != nil {
		body["propertyDetails"] = details
	}
	var out Reply
	_, err := c.do(ctx, http.MethodPost, "/chat", body, &out)
	return out, err
}

// Login signs in and keeps the issued token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (domain.PublicUser, error) {
	var out struct {
		User domain.PublicUser `json:"user"`
	}
	resp, err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return domain.PublicUser{}, err
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == "token" {
			c.token = ck.Value
		}
	}
	return out.User, nil
}

// History fetches a transcript; an empty userID means the caller's own.
func (c *Client) History(ctx context.Context, userID string) ([]domain.ChatTurn, error) {
	path := "/chat/history"
	if userID != "" {
		path += "/" + url.PathEscape(userID)
	}
	var out struct {
		Messages []domain.ChatTurn `json:"messages"`
	}
	_, err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out.Messages, err
}

// ---- Internals ----

var (
	ErrBadRequest   = errors.New("chatapi: bad request")
	ErrUnauthorized = errors.New("chatapi: unauthorized")
	ErrForbidden    = errors.New("chatapi: forbidden")
	ErrNotFound     = errors.New("chatapi: not found")
)

type problem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// do sends one request with client-side rate limiting, retries, and JSON
// decode into out. Retries on 429 and transient 5xx, honoring Retry-After
// when provided.
func (c *Client) do(ctx context.Context, method, path string, in, out any) (*http.Response, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}
	var payload []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		payload = b
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		// build a fresh request each attempt
		req, err := http.NewRequestWithContext(ctx, method, c.base+path, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("x-access-token", c.token)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "chatctl/1.0")

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			observability.ObserveExternal(service, path, 0, time.Since(start))
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, lastErr
		}
		observability.ObserveExternal(service, path, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return resp, err

		case http.StatusBadRequest:
			var p problem
			_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&p)
			resp.Body.Close()
			return resp, fmt.Errorf("%w: %s", ErrBadRequest, p.Detail)

		case http.StatusUnauthorized:
			resp.Body.Close()
			return resp, ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return resp, ErrForbidden

		case http.StatusNotFound:
			resp.Body.Close()
			return resp, ErrNotFound

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			// Prefer server-provided Retry-After; otherwise exponential backoff.
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return resp, lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return resp, fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}
	return nil, lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles from 200ms per attempt with up to +50% jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}
