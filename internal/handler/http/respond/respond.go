// Package respond provides utilities for sending HTTP responses.
// Error responses are sanitized so backend details never reach the client.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; only logging is left.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// AppError carries a message that is safe to show to users.
type AppError struct {
	UserMsg string // Message to display to users
	Err     error  // Internal error (logged for debugging)
	Code    int    // HTTP status code
}

// Error returns the internal error message.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}

// safePhrases mark error messages that describe the request, not the system.
var safePhrases = []string{
	"required",
	"invalid",
	"not found",
	"must be",
	"cannot be",
}

// Resolve returns the status code and the message to show the user for err.
// AppErrors supply both. Any other error keeps code and is shown only when it
// is a 4xx whose message looks like a request problem; 5xx messages are
// always replaced with "internal server error" and logged sanitized.
func Resolve(code int, err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil && appErr.Code >= 500 {
			logInternal(appErr.Code, appErr.Err)
		}
		return appErr.Code, appErr.UserMsg
	}

	msg := err.Error()
	if code < 500 && isSafe(msg) {
		return code, msg
	}
	logInternal(code, err)
	if code < 500 {
		return code, http.StatusText(code)
	}
	return code, "internal server error"
}

// SafeError writes {"error": msg} with the message chosen by Resolve.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}
	code, msg := Resolve(code, err)
	JSON(w, code, map[string]string{"error": msg})
}

// SafeText writes a plain-text error for HTML routes, using Resolve.
func SafeText(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}
	code, msg := Resolve(code, err)
	http.Error(w, msg, code)
}

func isSafe(msg string) bool {
	lower := strings.ToLower(msg)
	for _, phrase := range safePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func logInternal(code int, err error) {
	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
}
