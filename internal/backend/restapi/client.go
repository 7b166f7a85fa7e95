// Package restapi implements the service.Service interface over the to-do REST API.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"todoview/internal/config"
	"todoview/internal/service"
)

// API paths, relative to the base URL.
const (
	ListPath         = "/api/v1/tasks/todo"
	AddPath          = "/api/v1/addtask"
	UpdateTitlePath  = "/api/v1/updatetask"
	UpdateStatusPath = "/api/v1/updatestatus"
	DeletePath       = "/api/v1/deletetask"
)

// RequestIDHeader carries a per-request UUID for correlating server logs.
const RequestIDHeader = "X-Request-ID"

// Client implements service.Service using the REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	logger     *log.Logger
	validator  *listValidator
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the API server root.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithHTTPClient replaces the HTTP client (for testing or custom transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds each API call. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client from the configuration.
// When token.json exists every request carries it as a bearer token.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Client, error) {
	httpClient := &http.Client{}
	if cfg.HasToken() {
		token, err := cfg.LoadToken()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", service.ErrUnauthorized, err)
		}
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	}

	base := []Option{
		WithHTTPClient(httpClient),
		WithBaseURL(cfg.BaseURL),
		WithTimeout(cfg.Timeout.Duration),
	}
	return NewClient(append(base, opts...)...)
}

// NewClient creates a client from options alone.
func NewClient(opts ...Option) (*Client, error) {
	validator, err := newListValidator()
	if err != nil {
		return nil, err
	}
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(config.DefaultBaseURL, "/"),
		logger:     log.New(io.Discard),
		validator:  validator,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type taskJSON struct {
	ID     string `json:"_id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

type addRequest struct {
	Title  string         `json:"title"`
	Status service.Status `json:"status"`
}

type updateTitleRequest struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type updateStatusRequest struct {
	ID     string         `json:"id"`
	Status service.Status `json:"status"`
}

type deleteRequest struct {
	ID string `json:"id"`
}

// ListTasks returns the full task collection.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	data, err := c.do(ctx, http.MethodGet, ListPath, nil)
	if err != nil {
		return nil, err
	}
	return c.decodeTasks(data)
}

// AddTask creates a task.
func (c *Client) AddTask(ctx context.Context, title string, status service.Status) error {
	_, err := c.do(ctx, http.MethodPost, AddPath, addRequest{Title: title, Status: status})
	return err
}

// UpdateTitle renames a task.
func (c *Client) UpdateTitle(ctx context.Context, id, title string) error {
	_, err := c.do(ctx, http.MethodPut, UpdateTitlePath, updateTitleRequest{ID: id, Title: title})
	return err
}

// UpdateStatus sets the open/done flag of a task.
func (c *Client) UpdateStatus(ctx context.Context, id string, status service.Status) error {
	_, err := c.do(ctx, http.MethodPut, UpdateStatusPath, updateStatusRequest{ID: id, Status: status})
	return err
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, DeletePath, deleteRequest{ID: id})
	return err
}

// do sends one request and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var buf io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		buf = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	c.logger.Debug("api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapError(err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		c.logger.Debug("api response", "request_id", requestID, "status", resp.StatusCode)
		return nil, wrapError(err)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(fmt.Errorf("read response: %w", err))
	}
	c.logger.Debug("api response", "request_id", requestID, "status", resp.StatusCode, "bytes", len(data))
	return data, nil
}

// decodeTasks validates and converts a list response.
func (c *Client) decodeTasks(data []byte) ([]service.Task, error) {
	if err := c.validator.validate(data); err != nil {
		return nil, err
	}

	var raw []taskJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	tasks := make([]service.Task, 0, len(raw))
	for _, t := range raw {
		status, err := service.ParseStatus(t.Status)
		if err != nil {
			return nil, fmt.Errorf("decode response: task %s: %w", t.ID, err)
		}
		tasks = append(tasks, service.Task{
			ID:     t.ID,
			Title:  t.Title,
			Status: status,
		})
	}
	return tasks, nil
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	// Check for timeout
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", service.ErrTimeout, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %w", service.ErrUnauthorized, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", service.ErrNotFound, err)
		}
		return fmt.Errorf("server returned %d: %w", apiErr.Code, err)
	}

	return err
}
