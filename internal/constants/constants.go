package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Configuration locations.
const (
	// ConfigDirName is the directory under the user's home holding CLI state.
	ConfigDirName = ".n1"

	// ConfigFileName is the base name of the CLI configuration file.
	ConfigFileName = "config"

	// ConfigFileType is the viper config type of the CLI configuration file.
	ConfigFileType = "yml"

	// EnvPrefix prefixes environment variables read by the CLI.
	EnvPrefix = "N1"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// UploadHTTPTimeout is used for chunked document uploads.
	UploadHTTPTimeout = 5 * time.Minute
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Upload limits.
const (
	// UploadChunkSize is the size of each resumable upload chunk (1 MiB).
	UploadChunkSize = 1024 * 1024

	// UploadChunkAlignment is the granularity cloud storage requires of every chunk but the last.
	UploadChunkAlignment = 256 * 1024

	// DefaultContentType is used when a document's content type is unknown.
	DefaultContentType = "application/octet-stream"
)

// Request headers.
const (
	// DefaultAccept is sent with every API request.
	DefaultAccept = "application/json, text/plain, */*"

	// DefaultUserAgent identifies this client to the API.
	DefaultUserAgent = "n1-client-go"

	// NoCache is sent in the Pragma and Cache-Control headers.
	NoCache = "no-cache"
)

// Format constants.
const (
	// FormatTable for tabular output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// SecretVisibleSuffix is the number of trailing characters left unmasked.
	SecretVisibleSuffix = 4
)
