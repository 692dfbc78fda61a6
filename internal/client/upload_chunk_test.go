package client

import (
	"testing"

	"github.com/fivetwenty-io/n1-client/internal/constants"
	"github.com/fivetwenty-io/n1-client/pkg/n1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignChunkSize(t *testing.T) {
	t.Parallel()

	const kib = 1024

	tests := []struct {
		name     string
		size     int
		expected int
	}{
		{"zero selects the default", 0, constants.UploadChunkSize},
		{"negative selects the default", -1, constants.UploadChunkSize},
		{"below the alignment is raised", 4, 256 * kib},
		{"exact multiple is kept", 512 * kib, 512 * kib},
		{"remainder is dropped", 300 * kib, 256 * kib},
		{"large size is rounded down", 5*1024*kib + 1, 5 * 1024 * kib},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, alignChunkSize(tt.size))
			assert.Zero(t, alignChunkSize(tt.size)%constants.UploadChunkAlignment)
		})
	}
}

func TestNew_AlignsUploadChunkSize(t *testing.T) {
	t.Parallel()

	client, err := New(&n1.Config{APIBaseURL: "https://example.com", APIKey: "key", UploadChunkSize: 1000 * 1024})
	require.NoError(t, err)
	assert.Equal(t, 768*1024, client.uploadChunkSize)
}
