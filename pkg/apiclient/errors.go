package apiclient

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrAuthentication matches every *AuthenticationError through errors.Is.
var ErrAuthentication = errors.New("authentication required")

// AuthenticationError means the session is absent, could not be refreshed,
// or the ERP API answered 401. Callers are expected to re-authenticate.
type AuthenticationError struct {
	Reason string
	Err    error
}

func (e *AuthenticationError) Error() string {
	if e.Reason == "" {
		return ErrAuthentication.Error()
	}
	return fmt.Sprintf("%s: %s", ErrAuthentication.Error(), e.Reason)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

func (e *AuthenticationError) Is(target error) bool { return target == ErrAuthentication }

// RequestError is any other non-2xx answer. Error() returns the human message
// extracted from the body.
type RequestError struct {
	Status  int
	Code    int
	Message string
}

func (e *RequestError) Error() string { return e.Message }

// IsAuthentication reports whether err is an authentication failure.
func IsAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

// IsNotFound reports whether err is a 404 from the ERP API.
func IsNotFound(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Status == http.StatusNotFound
}

// extractMessage builds the user-facing message for a failed response body.
// Priority: message array (joined), message string, error string, "Error <status>".
// A statusCode field that differs from the HTTP status is prepended as "[code] ".
func extractMessage(status int, body []byte) (string, int) {
	fallback := fmt.Sprintf("Error %d", status)
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return fallback, status
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return fallback, status
	}

	msg := ""
	if m := doc.Get("message"); m.IsArray() {
		parts := make([]string, 0, len(m.Array()))
		for _, p := range m.Array() {
			parts = append(parts, p.String())
		}
		msg = strings.Join(parts, ", ")
	} else if m.Type == gjson.String {
		msg = m.String()
	}
	if msg == "" {
		if e := doc.Get("error"); e.Type == gjson.String {
			msg = e.String()
		}
	}
	if msg == "" {
		msg = fallback
	}

	code := status
	if c := doc.Get("statusCode"); c.Type == gjson.Number {
		code = int(c.Int())
	}
	if code != status {
		msg = fmt.Sprintf("[%d] %s", code, msg)
	}

	return msg, code
}
