// Package api is the typed client for the remote storefront REST API. Each
// method maps one endpoint to domain values through a single explicit
// deserialization contract: one canonical source field per attribute, failing
// loudly on schema drift instead of silently falling back.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/jerseystore/storefront-go/errors"
	"github.com/jerseystore/storefront-go/httpclient"
	"github.com/jerseystore/storefront-go/logger"
)

// Doer executes HTTP requests. Both httpclient.Client and
// httpclient.CircuitBreakerClient satisfy it.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Client calls the storefront backend.
type Client struct {
	baseURL string
	doer    Doer
	logger  *slog.Logger
}

// New creates a storefront API client for the given base URL.
func New(baseURL string, doer Doer, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		doer:    doer,
		logger:  log,
	}
}

// do executes one request against the backend. op names the endpoint for
// logs and metrics. body, when non-nil, is sent as JSON; out, when non-nil,
// receives the decoded 2xx response body. bearer, when non-empty, is sent as
// an Authorization header.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any, bearer string) error {
	requestID := uuid.NewString()
	ctx = logger.WithRequestID(ctx, requestID)
	log := logger.WithContext(ctx, c.logger)

	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request body: %w", op, err)
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	start := time.Now()
	resp, err := c.doer.Do(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		observeRequest(op, "error", elapsed)
		log.ErrorContext(ctx, "storefront request failed",
			slog.String("op", op),
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return &apperrors.AppError{
			Code:    "SERVICE_UNAVAILABLE",
			Message: "could not reach the store, please try again",
			Status:  http.StatusServiceUnavailable,
			Err:     err,
		}
	}

	observeRequest(op, statusClass(resp.StatusCode), elapsed)
	log.DebugContext(ctx, "storefront request",
		slog.String("op", op),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", elapsed),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return httpclient.ParseResponseError(resp, op)
	}

	defer func() { _ = resp.Body.Close() }()
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func statusClass(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "other"
	}
}
