package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-recipe-share/models"
	"github.com/go-resty/resty/v2"
)

// statusErrors mirrors the server's error-to-status table in reverse, so
// callers can match API failures with errors.Is.
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError turns a non-2xx API response into an error that wraps the
// matching sentinel and carries the server's message.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	message := responseMessage(resp.Body())
	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, message)
	}

	if message == "" {
		message = http.StatusText(status)
	}
	return fmt.Errorf("http %d: %s", status, message)
}

// responseMessage renders a {"message", "errors"} body as one line, e.g.
// "Validation failed; email: Valid email is required". Bodies that are not
// JSON are returned trimmed.
func responseMessage(raw []byte) string {
	var body models.MessageResponse
	if err := json.Unmarshal(raw, &body); err != nil || body.Message == "" {
		return strings.TrimSpace(string(raw))
	}

	var b strings.Builder
	b.WriteString(body.Message)
	for _, f := range body.Errors {
		fmt.Fprintf(&b, "; %s: %s", f.Field, f.Message)
	}
	return b.String()
}
