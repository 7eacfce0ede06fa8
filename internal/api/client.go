package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Envelope is the backend's uniform response wrapper. Every endpoint,
// list or single-entity, wraps its payload like this.
type Envelope struct {
	ErrorCode int             `json:"errorCode"`
	Message   string          `json:"message,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Paginated is the list payload carried inside Envelope.Data.
type Paginated[T any] struct {
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	Items       []T `json:"items"`
}

// ListParams standard paging query parameters.
type ListParams struct {
	Page int
	Size int
}

func (p ListParams) query() map[string]string {
	q := map[string]string{}
	if p.Page > 0 {
		q["page"] = fmt.Sprintf("%d", p.Page)
	}
	if p.Size > 0 {
		q["size"] = fmt.Sprintf("%d", p.Size)
	}
	return q
}

// Client is the one gateway to the reservation backend. It owns token
// injection and 401 handling so nothing else in the module touches
// auth state (no ambient globals).
type Client struct {
	http    *resty.Client
	session *Session
	logger  *zap.Logger
}

// New builds a Client against baseURL. The session may start empty;
// Login fills it. No automatic retries: failed calls surface to the
// caller, who decides whether to re-invoke.
func New(baseURL string, timeout time.Duration, session *Session, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:    httpClient,
		session: session,
		logger:  logger,
	}
}

// Session returns the session this client injects into requests.
func (c *Client) Session() *Session {
	return c.session
}

// Get issues a GET and decodes Envelope.Data into out (out may be nil).
func (c *Client) Get(ctx context.Context, path string, query map[string]string, out any) error {
	req := c.request(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	return c.do(req, resty.MethodGet, path, out)
}

// GetList issues a GET with paging parameters.
func (c *Client) GetList(ctx context.Context, path string, params ListParams, out any) error {
	return c.Get(ctx, path, params.query(), out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	req := c.request(ctx)
	if body != nil {
		req.SetBody(body)
	}
	return c.do(req, resty.MethodPost, path, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	req := c.request(ctx)
	if body != nil {
		req.SetBody(body)
	}
	return c.do(req, resty.MethodPut, path, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(c.request(ctx), resty.MethodDelete, path, nil)
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if c.session != nil {
		if token := c.session.Token(); token != "" {
			req.SetAuthToken(token)
		}
	}
	return req
}

func (c *Client) do(req *resty.Request, method, path string, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode() == http.StatusUnauthorized && c.session != nil {
		// Expired or missing token: drop the session so the caller's
		// logout hook runs exactly once per invalidation.
		c.session.Invalidate()
	}

	envelope, decodeErr := decodeEnvelope(resp.Body())

	if resp.IsError() {
		apiErr := &APIError{
			StatusCode: resp.StatusCode(),
			Method:     method,
			Path:       path,
		}
		if decodeErr == nil {
			apiErr.ErrorCode = envelope.ErrorCode
			apiErr.Message = envelope.Message
		}
		c.logger.Warn("backend rejected request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if decodeErr != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, decodeErr)
	}
	if len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%s %s: decode data: %w", method, path, err)
	}
	return nil
}

func decodeEnvelope(body []byte) (*Envelope, error) {
	if len(body) == 0 {
		return &Envelope{}, nil
	}
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}
