package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'n1 config set-key' or set N1_API_KEY")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrEmptyAPIKey        = errors.New("API key cannot be empty")
)

// Validation errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format, use table, json, or yaml")
	ErrInvalidFieldFilter  = errors.New("field filter must be in the form <fieldID>=<value>")
	ErrInvalidAccessLevel  = errors.New("access level must be 'unrestricted' or 'restrictive'")
	ErrMemberNotFound      = errors.New("member not found")
)

// File system errors.
var (
	ErrNotRegularFile             = errors.New("path is not a regular file")
	ErrDirectoryTraversalDetected = errors.New("directory traversal detected in file path")
)
