package api

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

	"mandapdash/metrics"
	"mandapdash/models"
	"mandapdash/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "http://localhost:4000/api"
	DefaultTimeout = 15 * time.Second

	maxResponseBytes = 10 << 20
)

// Credentials yields the provider bearer token at dispatch time. A missing
// token is not an error: the request goes out unauthenticated and the
// backend decides.
type Credentials interface {
	ProviderToken() (string, bool)
}

// StaticToken is a fixed credential.
type StaticToken string

func (t StaticToken) ProviderToken() (string, bool) {
	return string(t), t != ""
}

// Session is what every resource client is constructed with.
type Session struct {
	Credentials Credentials
	Notifier    notification.Notifier
}

// Config describes the upstream backend.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client is the shared transport of the resource clients. Every request
// passes through Do, which attaches the credential, picks the content type
// and turns failures into a notification plus a returned *Error.
type Client struct {
	resource string
	baseURL  string
	http     *http.Client
	creds    Credentials
	notifier notification.Notifier
	logger   *zap.Logger
}

func NewClient(resource string, cfg Config, sess Session) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	notifier := sess.Notifier
	if notifier == nil {
		notifier = notification.Discard{}
	}
	return &Client{
		resource: resource,
		baseURL:  baseURL,
		http:     httpClient,
		creds:    sess.Credentials,
		notifier: notifier,
		logger:   logger.With(zap.String("resource", resource)),
	}
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Do sends the request and returns the data member of the success envelope.
// body may be nil, a *Form or any JSON-encodable value.
func (c *Client) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamDuration.WithLabelValues(c.resource).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(c.resource, method, "error").Inc()
		if ctxErr := ctx.Err(); ctxErr != nil {
			// The caller went away; nobody is left to show a toast to.
			return nil, ctxErr
		}
		return nil, c.fail(ctx, req, &Error{
			Resource: c.resource,
			Message:  NetworkErrorMessage,
			Network:  true,
			Err:      err,
		})
	}
	defer resp.Body.Close()
	metrics.UpstreamRequests.WithLabelValues(c.resource, method, strconv.Itoa(resp.StatusCode)).Inc()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, c.fail(ctx, req, &Error{
			Resource: c.resource,
			Status:   resp.StatusCode,
			Message:  NetworkErrorMessage,
			Network:  true,
			Err:      err,
		})
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.fail(ctx, req, errorFromResponse(c.resource, resp.StatusCode, payload))
	}

	var env envelope
	if len(bytes.TrimSpace(payload)) > 0 {
		if err := json.Unmarshal(payload, &env); err != nil {
			return nil, fmt.Errorf("%s %w: %w", c.resource, ErrBadResponse, err)
		}
	}
	return env.Data, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var (
		reader      io.Reader
		contentType string
	)
	switch b := body.(type) {
	case nil:
	case *Form:
		buf, ct, err := b.Encode()
		if err != nil {
			return nil, fmt.Errorf("%s api: encode form: %w", c.resource, err)
		}
		reader, contentType = buf, ct
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("%s api: encode body: %w", c.resource, err)
		}
		reader, contentType = bytes.NewReader(data), "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%s api: build request: %w", c.resource, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.creds != nil {
		if token, ok := c.creds.ProviderToken(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func errorFromResponse(resource string, status int, payload []byte) *Error {
	var body errorBody
	if err := json.Unmarshal(payload, &body); err == nil && body.Error != "" {
		return &Error{Resource: resource, Status: status, Message: body.Error}
	}
	return &Error{
		Resource: resource,
		Status:   status,
		Message:  NetworkErrorMessage,
		Network:  true,
		Err:      fmt.Errorf("unexpected status %d", status),
	}
}

// fail logs and notifies once, then hands the error back to the caller.
func (c *Client) fail(ctx context.Context, req *http.Request, apiErr *Error) error {
	c.logger.Error(displayName(c.resource)+" API Error",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.String("requestID", req.Header.Get("X-Request-ID")),
		zap.Int("status", apiErr.Status),
		zap.String("message", apiErr.Message),
		zap.Error(apiErr.Err),
	)
	c.notifier.Notify(ctx, models.NotifyError, apiErr.Message)
	return apiErr
}

func displayName(resource string) string {
	if resource == "" {
		return "Backend"
	}
	return strings.ToUpper(resource[:1]) + resource[1:]
}

// DecodeKey decodes data.<key> into out. A null member leaves out untouched.
func DecodeKey(data json.RawMessage, key string, out any) error {
	if isEmpty(data) {
		return ErrMissingPayload
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: data: %w", ErrBadResponse, err)
	}
	raw, ok := fields[key]
	if !ok {
		return fmt.Errorf("%w: missing %q", ErrMissingPayload, key)
	}
	if isEmpty(raw) {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBadResponse, key, err)
	}
	return nil
}

// DecodeRecord decodes data.<key> when present and data itself otherwise.
// Create and update endpoints are not consistent about wrapping the record.
func DecodeRecord(data json.RawMessage, key string, out any) error {
	if isEmpty(data) {
		return ErrMissingPayload
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err == nil {
		if raw, ok := fields[key]; ok && !isEmpty(raw) {
			data = raw
		}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBadResponse, key, err)
	}
	return nil
}

func isEmpty(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// PathID escapes a resource id for use in a path, rejecting empty ids.
func PathID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrMissingID
	}
	return url.PathEscape(id), nil
}
