package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrNoSession = errors.New("no session cookie")

var ErrUnauthorized = errors.New("unauthorized")

var ErrForbidden = errors.New("forbidden")

var ErrNotFound = errors.New("resource not found")

// Error is a non-2xx answer from the remote API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

const maxErrorText = 200

func newError(status int, body []byte) *Error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		if len(payload.Error) != 0 {
			return &Error{StatusCode: status, Message: payload.Error}
		}
		if len(payload.Message) != 0 {
			return &Error{StatusCode: status, Message: payload.Message}
		}
	}

	text := strings.TrimSpace(string(body))

	if len(text) > maxErrorText {
		text = text[:maxErrorText]
	}

	if len(text) == 0 {
		text = http.StatusText(status)
	}

	return &Error{StatusCode: status, Message: text}
}

// Message returns the remote message carried by err, or fallback.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && len(apiErr.Message) != 0 {
		return apiErr.Message
	}
	return fallback
}
