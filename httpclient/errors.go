package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/jerseystore/storefront-go/errors"
)

// BackendErrorResponse mirrors the error body returned by the storefront
// backend on non-2xx responses.
type BackendErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ParseResponseError reads the body of a non-2xx HTTP response and translates
// it into an appropriate AppError. If the response body carries the backend's
// message field, that message is preserved. Otherwise a generic error is
// returned with the status code and raw body.
//
// The caller should only invoke this when resp.StatusCode indicates an error
// (i.e., not 2xx). The response body is fully consumed and closed.
func ParseResponseError(resp *http.Response, endpoint string) error {
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB limit
	if err != nil {
		return fmt.Errorf("%s returned status %d (failed to read body: %w)", endpoint, resp.StatusCode, err)
	}

	// Try to parse a structured error body.
	var backend BackendErrorResponse
	if json.Unmarshal(bodyBytes, &backend) == nil {
		msg := backend.Message
		if msg == "" {
			msg = backend.Error
		}
		if msg != "" {
			return mapBackendError(resp.StatusCode, msg, endpoint)
		}
	}

	// Fallback: unstructured error body.
	return mapBackendError(resp.StatusCode, string(bodyBytes), endpoint)
}

// mapBackendError translates the backend's HTTP status code and message into
// an AppError that preserves the error semantics.
func mapBackendError(status int, message, endpoint string) error {
	qualifiedMsg := fmt.Sprintf("%s: %s", endpoint, message)

	switch {
	case status == http.StatusNotFound:
		return apperrors.NotFound(endpoint, message)
	case status == http.StatusBadRequest:
		return apperrors.InvalidInput(qualifiedMsg)
	case status == http.StatusUnauthorized:
		return apperrors.Unauthorized(qualifiedMsg)
	case status == http.StatusForbidden:
		return apperrors.Forbidden(qualifiedMsg)
	case status == http.StatusServiceUnavailable:
		return apperrors.Unavailable(qualifiedMsg)
	case status >= 500:
		return fmt.Errorf("%s server error (%d): %s", endpoint, status, message)
	default:
		return &apperrors.AppError{
			Code:    "BACKEND_ERROR",
			Message: qualifiedMsg,
			Status:  status,
		}
	}
}

// IsClientError returns true if the HTTP status code is a 4xx client error.
func IsClientError(status int) bool {
	return status >= 400 && status < 500
}
