// Package api is the single point of outbound communication with the
// Spicy Trolly backend. One configured client attaches bearer-token
// auth, unwraps the uniform response envelope and applies the global
// 401 policy; per-resource services expose the operation sets.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"spicytrolly/internal/session"
)

// envelope is the uniform wrapper every API response uses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type Config struct {
	BaseURL string
	// Session stores the token/identity pair. Defaults to an
	// in-memory store.
	Session session.Store
	// OnUnauthorized fires after any 401 response, once the session
	// has been cleared. The composing application decides what to do
	// (typically: show the login screen). May be nil.
	OnUnauthorized func()
	// Timeout applies to every request. Defaults to 30 seconds.
	Timeout time.Duration
	// Logger receives per-request debug logs. Nil disables logging.
	Logger *zerolog.Logger
	// HTTPClient overrides the underlying client, mainly for tests.
	HTTPClient *http.Client
}

type Client struct {
	baseURL        string
	http           *http.Client
	session        session.Store
	onUnauthorized func()
	log            zerolog.Logger

	Auth        *AuthService
	Menu        *MenuService
	Orders      *OrderService
	RawProducts *RawProductService
	Purchases   *PurchaseService
	Sales       *SaleService
	Reports     *ReportService
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	store := cfg.Session
	if store == nil {
		store = session.NewMemoryStore()
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	c := &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		http:           httpClient,
		session:        store,
		onUnauthorized: cfg.OnUnauthorized,
		log:            logger,
	}
	c.Auth = &AuthService{c: c}
	c.Menu = &MenuService{c: c}
	c.Orders = &OrderService{c: c}
	c.RawProducts = &RawProductService{c: c}
	c.Purchases = &PurchaseService{c: c}
	c.Sales = &SaleService{c: c}
	c.Reports = &ReportService{c: c}
	return c
}

// Session exposes the injected store so the composing application can
// inspect the current identity without issuing a request.
func (c *Client) Session() session.Store {
	return c.session
}

// do performs one HTTP call: marshal body, attach auth, unwrap the
// envelope into out. Callers sequence their own calls; do never
// retries, batches or caches.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	// Attach the bearer token when one is stored. No token means an
	// anonymous request, not an error.
	sess, err := c.session.Get()
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	if sess.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Str("method", method).Str("path", path).Str("request_id", requestID).Err(err).Msg("request failed")
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: "failed to read response body"}
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	// Global policy: a rejected token ends the session no matter
	// which call triggered it. Callers must not treat this as locally
	// recoverable.
	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.session.Clear(); err != nil {
			return fmt.Errorf("failed to clear session after 401: %w", err)
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Message: serverMessage(respBody, resp.StatusCode)}
	}

	// Every successful response is enveloped, even for operations
	// with no data payload. A 2xx whose body is not an envelope is a
	// defect, not a success.
	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return &DecodeError{Path: path, Reason: "response is not a valid envelope"}
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		if msg == "" {
			msg = "request was not successful"
		}
		return &Error{Status: resp.StatusCode, Message: msg}
	}
	if out == nil {
		return nil
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return &DecodeError{Path: path, Reason: "successful response carried no data"}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &DecodeError{Path: path, Reason: err.Error()}
	}
	return nil
}

// serverMessage pulls the server-supplied message out of an error
// response, falling back to a generic transport message.
func serverMessage(body []byte, status int) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		if env.Error != "" {
			return env.Error
		}
		if env.Message != "" {
			return env.Message
		}
	}
	return fmt.Sprintf("request failed with status %d", status)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
