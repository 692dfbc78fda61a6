package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/n1-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Viper keys. Environment variables are the upper-cased key behind the N1_ prefix.
const (
	keyAPIKey     = "api_key"
	keyAPIBaseURL = "api_base_url"
	keyOutput     = "output"
	keyVerbose    = "verbose"
)

// Config represents the persisted CLI configuration.
type Config struct {
	APIBaseURL string `json:"api_base_url,omitempty" yaml:"api_base_url,omitempty"`
	APIKey     string `json:"api_key,omitempty"      yaml:"api_key,omitempty"`
	Output     string `json:"output,omitempty"       yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in ~/.n1/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigSetKeyCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration with the API key masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.APIKey = maskSecret(config.APIKey)

			rows := func() [][]string {
				return [][]string{
					{"API Base URL", valueOrNA(config.APIBaseURL)},
					{"API Key", valueOrNA(config.APIKey)},
					{"Output", valueOrNA(config.Output)},
					{"Config File", valueOrNA(viper.ConfigFileUsed())},
				}
			}

			return render(cmd.OutOrStdout(), config, []string{"Property", "Value"}, rows, "")
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of api_base_url, api_key or output",
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key",
		Short: "Store the API key",
		Long:  "Prompt for the API key without echoing it and store it in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _ = fmt.Fprint(cmd.ErrOrStderr(), "API key: ")

			apiKey, err := readSecret(cmd.InOrStdin())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.ErrOrStderr())

			config := loadConfig()

			err = setConfigValue(config, keyAPIKey, apiKey)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "API key %s saved\n", maskSecret(config.APIKey))

			return nil
		},
	}
}

// readSecret reads a line from in, without echo when in is a terminal.
func readSecret(in io.Reader) (string, error) {
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) { //nolint:gosec // file descriptors fit in int
		secret, err := term.ReadPassword(int(file.Fd())) //nolint:gosec // file descriptors fit in int
		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		return strings.TrimSpace(string(secret)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func setConfigValue(config *Config, key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case keyAPIBaseURL:
		config.APIBaseURL = value
	case keyAPIKey:
		if value == "" {
			return constants.ErrEmptyAPIKey
		}

		config.APIKey = value
	case keyOutput:
		err := validateOutputFormat(value)
		if err != nil {
			return err
		}

		config.Output = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// loadConfig reads the effective configuration from viper.
func loadConfig() *Config {
	return &Config{
		APIBaseURL: viper.GetString(keyAPIBaseURL),
		APIKey:     viper.GetString(keyAPIKey),
		Output:     viper.GetString(keyOutput),
	}
}

// configFilePath returns the file in use, or ~/.n1/config.yml when none was read.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// maskSecret hides all but the last few characters of secret.
func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}

	if len(secret) <= constants.SecretVisibleSuffix {
		return constants.MaskedSecret
	}

	return constants.MaskedSecret + secret[len(secret)-constants.SecretVisibleSuffix:]
}
