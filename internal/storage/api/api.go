package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"delivery-admin/internal/config"
	"delivery-admin/internal/storage"
)

const requestIDHeader = "X-Request-ID"

// maxErrorBody caps how much of a failed response is kept on StatusError.
const maxErrorBody = 512

// Storage is the backend REST API seen as a storage layer. It is safe for
// concurrent use.
type Storage struct {
	baseURL string
	client  *http.Client
}

// StatusError is returned for any non-2xx backend response.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: backend responded %d: %s", e.Method, e.Path, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusNotFound {
		return storage.ErrNotFound
	}
	return nil
}

func New(cfg config.Backend) (*Storage, error) {
	const op = "storage.api.New"

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%s: backend base url is required", op)
	}

	return NewWithClient(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout}), nil
}

func NewWithClient(baseURL string, client *http.Client) *Storage {
	return &Storage{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// do sends one request and decodes a JSON response into out when out is non-nil.
func (s *Storage) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID(ctx))

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method: method,
			Path:   path,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(msg)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := render.DecodeJSON(resp.Body, out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s %s: empty response body", method, path)
		}
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
