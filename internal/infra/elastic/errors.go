package elastic

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// BackendError is a non-2xx answer from Elasticsearch.
type BackendError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *BackendError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("elasticsearch: status %d: %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("elasticsearch: status %d: %s: %s", e.StatusCode, e.Type, e.Reason)
}

// newBackendError extracts error.type and error.reason from an error body.
// Older clusters answer with a plain string in "error".
func newBackendError(status int, raw []byte) *BackendError {
	e := &BackendError{StatusCode: status}
	errField := gjson.GetBytes(raw, "error")
	switch {
	case errField.IsObject():
		e.Type = errField.Get("type").String()
		e.Reason = errField.Get("reason").String()
	case errField.Exists():
		e.Reason = errField.String()
	default:
		e.Reason = http.StatusText(status)
	}
	return e
}

// IsClientError reports whether err is a 4xx answer caused by the request
// itself (a malformed query string, a missing index). Such errors do not
// indicate an unhealthy backend. 429 is excluded.
func IsClientError(err error) bool {
	var be *BackendError
	if !errors.As(err, &be) {
		return false
	}
	return be.StatusCode >= 400 && be.StatusCode < 500 && be.StatusCode != http.StatusTooManyRequests
}
