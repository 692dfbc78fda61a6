package n1_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/n1-client/pkg/n1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		status          int
		body            string
		expectedMessage string
		expectedError   string
	}{
		{
			name:            "message field",
			status:          http.StatusBadRequest,
			body:            `{"message":"Name is required"}`,
			expectedMessage: "Name is required",
			expectedError:   "HTTP 400: Name is required",
		},
		{
			name:            "plain text body",
			status:          http.StatusInternalServerError,
			body:            "upstream timeout\n",
			expectedMessage: "upstream timeout",
			expectedError:   "HTTP 500: upstream timeout",
		},
		{
			name:            "json without message",
			status:          http.StatusConflict,
			body:            `{"error":"dup"}`,
			expectedMessage: `{"error":"dup"}`,
			expectedError:   `HTTP 409: {"error":"dup"}`,
		},
		{
			name:            "empty body",
			status:          http.StatusNotFound,
			body:            "",
			expectedMessage: "",
			expectedError:   "HTTP 404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			httpErr := n1.ParseHTTPError(tt.status, []byte(tt.body))

			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.expectedMessage, httpErr.Message)
			assert.Equal(t, tt.body, httpErr.Body)
			assert.Equal(t, tt.expectedError, httpErr.Error())
		})
	}
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("getting field: %w", n1.ParseHTTPError(http.StatusNotFound, nil))

	assert.True(t, n1.IsNotFound(wrapped))
	assert.False(t, n1.IsUnauthorized(wrapped))
	assert.True(t, n1.IsUnauthorized(n1.ParseHTTPError(http.StatusUnauthorized, nil)))
	assert.True(t, n1.IsForbidden(n1.ParseHTTPError(http.StatusForbidden, nil)))
	assert.False(t, n1.IsNotFound(errors.New("plain")))
	assert.False(t, n1.IsNotFound(nil))
}

func TestValidateID(t *testing.T) {
	t.Parallel()

	require.NoError(t, n1.ValidateID("organizationID", "org-1"))

	err := n1.ValidateID("organizationID", "  ")
	require.ErrorIs(t, err, n1.ErrBlankValue)
	assert.Equal(t, "organizationID: value cannot be blank", err.Error())
}

func TestConfigurationError(t *testing.T) {
	t.Parallel()

	err := &n1.ConfigurationError{Type: "*n1.Widget", Err: n1.ErrFactoryNotRegistered}

	require.ErrorIs(t, err, n1.ErrFactoryNotRegistered)
	assert.Contains(t, err.Error(), "*n1.Widget")
}
