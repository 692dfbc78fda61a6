package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fivetwenty-io/n1-client/internal/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSetConfigValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		value   string
		want    Config
		wantErr error
	}{
		{name: "base URL", key: keyAPIBaseURL, value: "https://n1.example.com", want: Config{APIBaseURL: "https://n1.example.com"}},
		{name: "API key trimmed", key: keyAPIKey, value: " secret ", want: Config{APIKey: "secret"}},
		{name: "empty API key", key: keyAPIKey, value: "  ", wantErr: constants.ErrEmptyAPIKey},
		{name: "output", key: keyOutput, value: "yaml", want: Config{Output: "yaml"}},
		{name: "bad output", key: keyOutput, value: "xml", wantErr: constants.ErrInvalidOutputFormat},
		{name: "unknown key", key: "color", value: "red", wantErr: constants.ErrUnknownConfigKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			config := &Config{}

			err := setConfigValue(config, tt.key, tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, *config)
		})
	}
}

func TestMaskSecret(t *testing.T) {
	t.Parallel()

	assert.Empty(t, maskSecret(""))
	assert.Equal(t, "***", maskSecret("abcd"))
	assert.Equal(t, "***6789", maskSecret("0123456789"))
}

func TestReadSecret(t *testing.T) {
	t.Parallel()

	secret, err := readSecret(strings.NewReader("  my-key  \nignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "my-key", secret)

	secret, err = readSecret(strings.NewReader("no-newline"))
	require.NoError(t, err)
	assert.Equal(t, "no-newline", secret)
}

// Not parallel: these tests use the global viper instance.
func TestConfigSetAndShow(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "nested", "config.yml")

	useViper(t, map[string]interface{}{keyAPIKey: "0123456789"})
	viper.SetConfigFile(configFile)

	stdout, _, err := execute(t, NewConfigCommand(), "set", keyAPIBaseURL, "https://n1.example.com")
	require.NoError(t, err)
	assert.Equal(t, "Set api_base_url\n", stdout)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)

	var saved Config
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, "https://n1.example.com", saved.APIBaseURL)
	assert.Equal(t, "0123456789", saved.APIKey)

	viper.Set(keyAPIBaseURL, saved.APIBaseURL)

	stdout, _, err = execute(t, NewConfigCommand(), "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "https://n1.example.com")
	assert.Contains(t, stdout, "***6789")
	assert.NotContains(t, stdout, "0123456789")
}

func TestConfigSetKey(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yml")

	useViper(t, nil)
	viper.SetConfigFile(configFile)

	cmd := NewConfigCommand()
	cmd.SetIn(strings.NewReader("new-secret-key\n"))

	stdout, stderr, err := execute(t, cmd, "set-key")
	require.NoError(t, err)
	assert.Contains(t, stderr, "API key: ")
	assert.Equal(t, "API key ***-key saved\n", stdout)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "api_key: new-secret-key")
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	useViper(t, nil)
	viper.SetConfigFile(filepath.Join(t.TempDir(), "config.yml"))

	_, _, err := execute(t, NewConfigCommand(), "set", "color", "red")
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)
}
