package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/ojtportal/internal/pkg/apperrors"
	"github.com/yigit/ojtportal/internal/pkg/auth"
	"github.com/yigit/ojtportal/internal/pkg/logger"
)

// maxErrorBody caps how much of a failed response is read for its message
const maxErrorBody = 64 << 10

// TokenSource supplies the bearer token attached to outgoing requests
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a fixed token, mostly for tests and scripts
type StaticToken string

// Token implements TokenSource
func (t StaticToken) Token(context.Context) (string, error) {
	return string(t), nil
}

// Config holds the client settings
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// Client talks to the OJT REST API
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	tokens    TokenSource
	userAgent string
	log       zerolog.Logger
}

// New creates a client for the API rooted at cfg.BaseURL
func New(cfg Config, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("api base url %q must be absolute", cfg.BaseURL)
	}

	c := &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
		log:       logger.Get(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// WithTokenSource returns a copy of the client authenticating with ts
func (c *Client) WithTokenSource(ts TokenSource) *Client {
	clone := *c
	clone.tokens = ts
	return &clone
}

// BaseURL returns the API root
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// endpoint joins the base URL and an already escaped path
func (c *Client) endpoint(path string, query url.Values) string {
	target := c.baseURL.String() + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}

// request is one API call. body is sent as is with contentType.
type request struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
}

func jsonRequest(method, path string, in interface{}) (request, error) {
	req := request{method: method, path: path}
	if in == nil {
		return req, nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return req, fmt.Errorf("encode %s %s: %w", method, path, err)
	}
	req.body = bytes.NewReader(data)
	req.contentType = "application/json"
	return req, nil
}

// do sends r and decodes a 2xx JSON body into out when out is non-nil
func (c *Client) do(ctx context.Context, r request, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, r.method, c.endpoint(r.path, r.query), r.body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", r.method, r.path, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		httpReq.Header.Set("Content-Type", r.contentType)
	}
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("read session token: %w", err)
		}
		if token != "" {
			httpReq.Header.Set("Authorization", auth.BearerHeader(token))
		}
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.log.Error().Err(err).Str("method", r.method).Str("path", r.path).Msg("OJT API unreachable")
		return fmt.Errorf("%w: %s %s: %v", apperrors.ErrUpstreamUnreachable, r.method, r.path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", r.method).
		Str("path", r.path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("OJT API call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(r, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: decode %s %s: %v", apperrors.ErrUpstream, r.method, r.path, err)
	}
	return nil
}

func (c *Client) decodeError(r request, resp *http.Response) error {
	apiErr := &apperrors.APIError{
		StatusCode: resp.StatusCode,
		Method:     r.method,
		Path:       r.path,
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &body) == nil {
		apiErr.Message = body.Message
	}
	return apiErr
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, request{method: http.MethodGet, path: path, query: query}, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out interface{}) error {
	req, err := jsonRequest(method, path, in)
	if err != nil {
		return err
	}
	return c.do(ctx, req, out)
}

// dataEnvelope is the {message, data} wrapper most endpoints answer with
type dataEnvelope[T any] struct {
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}
