// Package apiclient talks to the Drepalife platform REST API.
package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"drepalife-app/internal/utils"
)

var (
	// ErrUnauthorized matches API errors with status 401 or 403.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidRequest is returned before any network call when a request body fails validation.
	ErrInvalidRequest = errors.New("invalid request")
)

// APIError is a non-successful answer from the platform.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 || e.StatusCode == http.StatusOK {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// Is lets errors.Is(err, ErrUnauthorized) match 401 and 403 answers.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden)
}

// TokenSource supplies the bearer token of the logged-in user, or "".
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Options configures the HTTP side of the client.
type Options struct {
	BaseURL        string
	ConsultBaseURL string
	Timeout        time.Duration
}

// Client is the platform API client
type Client struct {
	api     *resty.Client
	consult *resty.Client
	tokens  TokenSource
	logger  *zap.Logger
}

// errorBody is the envelope the platform uses for failures
type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func newResty(baseURL string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
}

// New creates a Client. Consult calls go to opts.ConsultBaseURL, or to
// opts.BaseURL when it is empty. tokens may be nil for anonymous use.
func New(opts Options, tokens TokenSource, logger *zap.Logger) *Client {
	consultURL := opts.ConsultBaseURL
	if consultURL == "" {
		consultURL = opts.BaseURL
	}
	return &Client{
		api:     newResty(opts.BaseURL, opts.Timeout),
		consult: newResty(consultURL, opts.Timeout),
		tokens:  tokens,
		logger:  logger,
	}
}

type call struct {
	client *resty.Client
	method string
	path   string
	auth   bool
	body   interface{}
	result interface{}
}

func (c *Client) do(ctx context.Context, in call) error {
	if in.body != nil {
		if err := utils.Validate(in.body); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidRequest, utils.FormatValidationError(err))
		}
	}

	var failure errorBody
	req := in.client.R().SetContext(ctx).SetError(&failure)
	if in.body != nil {
		req.SetBody(in.body)
	}
	if in.result != nil {
		req.SetResult(in.result)
	}
	if in.auth && c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return err
		}
		if token != "" {
			req.SetAuthToken(token)
		}
	}

	resp, err := req.Execute(in.method, in.path)
	if err != nil {
		c.logger.Error("platform API call failed",
			zap.String("method", in.method),
			zap.String("path", in.path),
			zap.Error(err),
		)
		return fmt.Errorf("failed to call %s %s: %w", in.method, in.path, err)
	}

	if resp.IsError() {
		msg := failure.Message
		if msg == "" {
			msg = failure.Error
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		c.logger.Warn("platform API returned error",
			zap.String("method", in.method),
			zap.String("path", in.path),
			zap.Int("status_code", resp.StatusCode()),
			zap.String("message", msg),
		)
		return &APIError{StatusCode: resp.StatusCode(), Message: msg}
	}

	c.logger.Debug("platform API call succeeded",
		zap.String("method", in.method),
		zap.String("path", in.path),
		zap.Int("status_code", resp.StatusCode()),
	)
	return nil
}

// rejected builds the error for a 2xx answer that carries success=false.
func rejected(message, fallback string) error {
	if message == "" {
		message = fallback
	}
	return &APIError{StatusCode: http.StatusOK, Message: message}
}
