package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/amelnikov/learnly/internal/logging"
)

// DefaultBaseURL is used when no API base URL is configured.
const DefaultBaseURL = "http://localhost:8080/api"

const defaultTimeout = 10 * time.Second

// TokenSource yields the current bearer token, or "" when none is stored.
// Implemented by the session store.
type TokenSource interface {
	Token(ctx context.Context) string
}

// Client is the single outbound HTTP pipeline. Every request reads the
// current token from the TokenSource and attaches it as a bearer
// credential; every failed response is normalized into *Error.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (tests, custom transports).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout on the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New creates a Client rooted at baseURL. A nil tokens source means
// requests are always sent unauthenticated.
func New(baseURL string, tokens TokenSource, log logging.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		tokens:  tokens,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

// Post marshals in as JSON, performs a POST request and decodes into out.
// A nil in sends an empty body.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	body, contentType, err := jsonBody(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, body, contentType, out)
}

// Put marshals in as JSON, performs a PUT request and decodes into out.
func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	body, contentType, err := jsonBody(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, body, contentType, out)
}

// Delete performs a DELETE request and decodes the JSON response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", out)
}

// PostMultipart performs a multipart/form-data POST with the given string
// fields and a single file part read from r.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, fileField, fileName string, r io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("failed to write form field %q: %w", k, err)
		}
	}
	fw, err := mw.CreateFormFile(fileField, fileName)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, &buf, mw.FormDataContentType(), out)
}

func jsonBody(in any) (io.Reader, string, error) {
	if in == nil {
		return nil, "application/json", nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode request body: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}

// do runs the full pipeline: build request, attach credentials, execute,
// and either decode the success body into out or normalize the failure
// into *Error. It performs no side effects beyond the request itself.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if c.tokens != nil {
		if token := c.tokens.Token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed without response", "method", method, "path", path, "error", err)
		return &Error{
			Status:  http.StatusInternalServerError,
			Message: DefaultErrorMessage,
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.mapFailure(ctx, method, path, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// mapFailure builds the error envelope for a non-2xx response. The backend
// reports details as {"error": "..."}; that field is carried through so
// callers can map it to form messages.
func (c *Client) mapFailure(ctx context.Context, method, path string, resp *http.Response) error {
	apiErr := &Error{
		Status:  resp.StatusCode,
		Message: statusMessage(resp.StatusCode),
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && len(data) > 0 {
		var body struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &body) == nil {
			if body.Error != "" {
				apiErr.Detail = body.Error
			} else if body.Message != "" {
				apiErr.Detail = body.Message
			}
		}
	}

	c.log.Warn(ctx, "request rejected", "method", method, "path", path, "status", apiErr.Status, "detail", apiErr.Detail)
	return apiErr
}
