//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIKey         string
	APIBaseURL     string
	OrganizationID string
	ProjectID      string
	N1Path         string
	Verbose        bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:         os.Getenv("N1_API_KEY"),
		APIBaseURL:     os.Getenv("N1_API_BASE_URL"),
		OrganizationID: os.Getenv("N1_TEST_ORGANIZATION_ID"),
		ProjectID:      os.Getenv("N1_TEST_PROJECT_ID"),
		N1Path:         getN1Path(),
		Verbose:        os.Getenv("N1_VERBOSE") == "true",
	}
}

// getN1Path determines the path to the n1 binary.
func getN1Path() string {
	if path := os.Getenv("N1_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../n1",
		"./n1",
		"../n1",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "n1"
}

// SkipIfMissingConfig skips the test unless an API key, a target project and the binary are available.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("N1_API_KEY not set, skipping integration test")
	}

	if config.OrganizationID == "" || config.ProjectID == "" {
		t.Skip("N1_TEST_ORGANIZATION_ID or N1_TEST_PROJECT_ID not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.N1Path); err != nil {
		t.Skipf("n1 binary not found at %s, skipping integration test", config.N1Path)
	}
}

// CommandRunner runs n1 commands against the configured account.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes an n1 command and returns its output.
func (runner *CommandRunner) Run(args ...string) (string, string, error) {
	cmd := exec.Command(runner.config.N1Path, args...) //nolint:gosec // test binary path comes from the environment
	cmd.Env = append(os.Environ(), "N1_API_KEY="+runner.config.APIKey)

	if runner.config.APIBaseURL != "" {
		cmd.Env = append(cmd.Env, "N1_API_BASE_URL="+runner.config.APIBaseURL)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.N1Path, strings.Join(args, " "))
	}

	err := cmd.Run()
	stdout := stdoutBuf.String()
	stderr := stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// ProjectArgs appends the --org and --project flags of the target project.
func (runner *CommandRunner) ProjectArgs(args ...string) []string {
	return append(args, "--org", runner.config.OrganizationID, "--project", runner.config.ProjectID)
}

// GenerateTestName creates a unique test resource name.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// CleanupFolder attempts to delete a document folder created by a test.
func (runner *CommandRunner) CleanupFolder(folderID string) {
	stdout, stderr, err := runner.Run(runner.ProjectArgs("folders", "delete", folderID)...)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for folder %s: %s\nStderr: %s", folderID, stdout, stderr)
	}
}

// DecodeJSONOutput decodes command output produced with --output json.
func DecodeJSONOutput(t *testing.T, output string, into any) {
	t.Helper()

	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), into); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, output)
	}
}
