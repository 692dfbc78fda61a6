package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// Static errors for err113 compliance.
var (
	ErrNoAPIKey = errors.New("no API key available")
)

// TokenManager supplies the bearer credential attached to every API request.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// APIKeyTokenManager serves a static Nucleus One API key as the bearer token.
// The key can be rotated while requests are in flight.
type APIKeyTokenManager struct {
	mutex  sync.RWMutex
	apiKey string
}

// NewAPIKeyTokenManager creates a token manager for the given API key.
func NewAPIKeyTokenManager(apiKey string) *APIKeyTokenManager {
	return &APIKeyTokenManager{apiKey: strings.TrimSpace(apiKey)}
}

// GetToken returns the configured API key.
func (m *APIKeyTokenManager) GetToken(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.apiKey == "" {
		return "", ErrNoAPIKey
	}

	return m.apiKey, nil
}

// SetAPIKey replaces the API key used for subsequent requests.
func (m *APIKeyTokenManager) SetAPIKey(apiKey string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.apiKey = strings.TrimSpace(apiKey)
}
