// Package api is the authenticated client for the coaching platform's REST backend.
//
// A single Client is built per backend and shared by every resource service. The
// client injects the bearer credential before each request and turns every failure
// into an *Error, so callers always have a message they can show to the user.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTimeout   = 30 * time.Second
	maxResponseBytes = 10 << 20

	HeaderRequestID = "X-Request-ID"
)

// Interceptor runs against every outgoing request before it is sent.
type Interceptor func(ctx context.Context, req *http.Request) error

type Client struct {
	baseURL      *url.URL
	httpClient   *http.Client
	headers      http.Header
	timeout      time.Duration
	interceptors []Interceptor
	logger       *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the default per-call deadline. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout >= 0 {
			c.timeout = timeout
		}
	}
}

func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

func WithUserAgent(userAgent string) Option {
	return WithHeader("User-Agent", userAgent)
}

func WithInterceptor(interceptor Interceptor) Option {
	return func(c *Client) {
		if interceptor != nil {
			c.interceptors = append(c.interceptors, interceptor)
		}
	}
}

// WithTokenSource installs the bearer-credential interceptor.
func WithTokenSource(source TokenSource) Option {
	return func(c *Client) {
		if source != nil {
			c.interceptors = append(c.interceptors, BearerAuth(source))
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:    parsed,
		httpClient: &http.Client{},
		headers: http.Header{
			"Content-Type": {"application/json"},
			"Accept":       {"application/json"},
		},
		timeout: DefaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) Get(ctx context.Context, path string, opts ...CallOption) (*Response, error) {
	return c.Do(ctx, newRequest(http.MethodGet, path, nil, opts))
}

func (c *Client) Post(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error) {
	return c.Do(ctx, newRequest(http.MethodPost, path, body, opts))
}

func (c *Client) Put(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error) {
	return c.Do(ctx, newRequest(http.MethodPut, path, body, opts))
}

func (c *Client) Delete(ctx context.Context, path string, opts ...CallOption) (*Response, error) {
	return c.Do(ctx, newRequest(http.MethodDelete, path, nil, opts))
}

// Do sends req and returns the response for any 2xx status. Every other outcome
// is returned as an *Error carrying req.Fallback when the server gave no message.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	res, err := c.do(ctx, req)
	if err != nil {
		return nil, Normalize(err, req.Fallback)
	}

	return res, nil
}

func (c *Client) do(ctx context.Context, req Request) (*Response, error) {
	timeout := c.timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	httpReq, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, newRequestError(err)
	}

	for _, intercept := range c.interceptors {
		if err := intercept(ctx, httpReq); err != nil {
			return nil, newRequestError(err)
		}
	}

	requestID := httpReq.Header.Get(HeaderRequestID)
	start := time.Now()

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelDebug, "api request failed",
			slog.String("request_id", requestID),
			slog.String("method", httpReq.Method),
			slog.String("path", httpReq.URL.Path),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return nil, newTransportError(err)
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return nil, newTransportError(fmt.Errorf("read response body: %w", err))
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "api request completed",
		slog.String("request_id", requestID),
		slog.String("method", httpReq.Method),
		slog.String("path", httpReq.URL.Path),
		slog.Int("status", res.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.Int("bytes", len(body)),
	)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, newHTTPError(res.StatusCode, res.Header, body)
	}

	return &Response{
		StatusCode: res.StatusCode,
		Header:     res.Header,
		Body:       body,
	}, nil
}

func (c *Client) newHTTPRequest(ctx context.Context, req Request) (*http.Request, error) {
	if strings.TrimSpace(req.Method) == "" {
		return nil, errors.New("request method is empty")
	}

	endpoint := c.baseURL.JoinPath(req.Path)
	if len(req.Query) > 0 {
		endpoint.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header = c.headers.Clone()
	for key, values := range req.Header {
		httpReq.Header[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
	}
	if httpReq.Header.Get(HeaderRequestID) == "" {
		httpReq.Header.Set(HeaderRequestID, uuid.NewString())
	}

	return httpReq, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, errors.New("api base url is empty")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("api base url must use http or https, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("api base url host is required")
	}

	parsed.RawQuery = ""
	parsed.Fragment = ""

	return parsed, nil
}
