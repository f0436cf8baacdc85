package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/bnema/nutricoach-cli/internal/domain"
)

const (
	DefaultNetworkMessage = "Network error. Please check your connection and try again."
	DefaultFailureMessage = "Something went wrong. Please try again."
	requestMessage        = "The request could not be sent."

	maxPlainTextMessage = 512
)

// Error is the only failure shape returned by the client.
// StatusCode 0 means no response was received.
type Error struct {
	StatusCode int
	Message    string
	// Data holds the server's JSON error object when it sent one.
	Data  map[string]any
	Cause error

	fromServer bool
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) HasResponse() bool {
	return e.StatusCode != 0
}

// ServerProvided reports whether Message came from the response body.
func (e *Error) ServerProvided() bool {
	return e.fromServer
}

func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("status", e.StatusCode),
		slog.String("message", e.Message),
	}
	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}

	return slog.GroupValue(attrs...)
}

// Normalize converts err into an *Error. fallback replaces the message whenever the
// server did not supply one; a server message is never overwritten. Local
// validation errors are returned unchanged.
func Normalize(err error, fallback string) error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.fromServer || fallback == "" {
			return apiErr
		}
		normalized := *apiErr
		normalized.Message = fallback
		return &normalized
	}

	if errors.Is(err, domain.ErrInvalidID) || errors.Is(err, domain.ErrInvalidArgument) {
		return err
	}

	message := fallback
	if message == "" {
		message = DefaultFailureMessage
	}

	return &Error{Message: message, Cause: err}
}

func newTransportError(err error) *Error {
	return &Error{Message: DefaultNetworkMessage, Cause: err}
}

func newRequestError(err error) *Error {
	return &Error{Message: requestMessage, Cause: err}
}

func newHTTPError(status int, header http.Header, body []byte) *Error {
	e := &Error{
		StatusCode: status,
		Message:    fmt.Sprintf("Request failed with status code %d", status),
		Cause:      fmt.Errorf("unexpected status %d", status),
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return e
	}

	var data map[string]any
	if err := json.Unmarshal(trimmed, &data); err == nil {
		e.Data = data
		if msg := serverMessage(data); msg != "" {
			e.Message = msg
			e.fromServer = true
		}
		return e
	}

	if isPlainText(header) && utf8.Valid(trimmed) {
		text := string(trimmed)
		text = truncateText(text, maxPlainTextMessage)
		e.Message = text
		e.Data = map[string]any{"message": text}
		e.fromServer = true
	}

	return e
}

func serverMessage(data map[string]any) string {
	for _, key := range []string{"message", "Message", "error", "title"} {
		if msg, ok := data[key].(string); ok && strings.TrimSpace(msg) != "" {
			return msg
		}
	}

	return ""
}

func isPlainText(header http.Header) bool {
	mediaType, _, err := mime.ParseMediaType(header.Get("Content-Type"))
	if err != nil {
		return false
	}

	return mediaType == "text/plain"
}

// truncateText cuts text to at most n bytes without splitting a rune.
func truncateText(text string, n int) string {
	if len(text) <= n {
		return text
	}
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}

	return text[:n]
}
