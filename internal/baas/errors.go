package baas

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrNotFound maps 404 responses. Callers treat it as expected control
	// flow (create-on-demand), not as a failure.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized maps 401 and 403 responses.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError carries the status code and the human-readable message returned
// by the record service. The message is surfaced to end users on sign-in,
// sign-up and password-reset failures.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("record service: %d %s", e.StatusCode, e.Message)
}

// mapAPIError converts a non-2xx response into a sentinel or an *APIError.
// 2xx responses yield nil.
func mapAPIError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	message := apiMessage(resp.Body())
	switch code {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	}

	return &APIError{StatusCode: code, Message: message}
}

// apiMessage extracts the "message" field of the service's error body,
// falling back to the raw body text.
func apiMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return "request failed"
	}
	return text
}

// UserMessage returns the remote error message suitable for an interruptive
// user notification, or a generic fallback for transport-level failures.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, ErrUnauthorized) {
		return "invalid credentials"
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
