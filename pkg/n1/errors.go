package n1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fivetwenty-io/n1-client/pkg/apimodel"
)

// HTTPError is returned by the transport for any non-2xx response.
type HTTPError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Message    string `json:"message"     yaml:"message"`
	Body       string `json:"-"           yaml:"-"`
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}

	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// ParseHTTPError builds an HTTPError from a failed response. The message is taken from a
// {"message": ...} body when present; any other body is used verbatim.
func ParseHTTPError(statusCode int, body []byte) *HTTPError {
	httpErr := &HTTPError{
		StatusCode: statusCode,
		Body:       string(body),
		Message:    strings.TrimSpace(string(body)),
	}

	var payload struct {
		Message *string `json:"message"`
	}

	err := json.Unmarshal(body, &payload)
	if err == nil && payload.Message != nil {
		httpErr.Message = *payload.Message
	}

	return httpErr
}

// DecodeError reports a response body that could not be parsed.
type DecodeError = apimodel.DecodeError

// ErrDecode is matched by every DecodeError.
var ErrDecode = apimodel.ErrDecode

// ConfigurationError reports a programming or assembly mistake, such as a collection type
// with no wire conversion.
type ConfigurationError struct {
	Type string
	Err  error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error for %s: %v", e.Type, e.Err)
}

// Unwrap returns the sentinel describing the failure.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Static errors for err113 compliance.
var (
	ErrFactoryNotRegistered = errors.New("no FromWire conversion registered")
	ErrNoApp                = errors.New("no app bound to the context and no default app set")
	ErrBlankValue           = errors.New("value cannot be blank")
	ErrMalformedEntity      = errors.New("malformed entity")
	ErrConfigRequired       = errors.New("config is required")
	ErrAPIKeyRequired       = errors.New("API key is required")
	ErrInvalidBaseURL       = errors.New("invalid API base URL")
	ErrNoClient             = errors.New("no client bound to the context")
	ErrUploadSessionMissing = errors.New("cloud storage did not return an upload session URL")
	ErrUploadRejected       = errors.New("cloud storage rejected the upload")
	ErrMalformedFlatFile    = errors.New("flat file row must have one or two columns")
)

// ValidateID returns an error wrapping ErrBlankValue when id is blank.
func ValidateID(name, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s: %w", name, ErrBlankValue)
	}

	return nil
}

func statusIs(err error, code int) bool {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}

	return false
}

// IsNotFound checks if the error is a 404 from the service.
func IsNotFound(err error) bool {
	return statusIs(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is a 401 from the service.
func IsUnauthorized(err error) bool {
	return statusIs(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a 403 from the service.
func IsForbidden(err error) bool {
	return statusIs(err, http.StatusForbidden)
}
