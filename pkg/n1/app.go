package n1

import (
	"strings"
)

const (
	// DefaultAPIBaseURL is the production Nucleus One endpoint.
	DefaultAPIBaseURL = "https://client-api.nucleus.one"
	// APIBaseURLPath is appended to the base URL for every API call.
	APIBaseURLPath = "/api/v1"
)

// Options configure an App.
type Options struct {
	APIBaseURL string
	APIKey     string
}

// App is the root of the object hierarchy. Every client-side entity keeps a reference to the App
// it was materialized under.
type App struct {
	options Options
}

// NewApp creates an App, defaulting the base URL when it is empty.
func NewApp(options Options) *App {
	if options.APIBaseURL == "" {
		options.APIBaseURL = DefaultAPIBaseURL
	}

	options.APIBaseURL = strings.TrimRight(options.APIBaseURL, "/")

	return &App{options: options}
}

// Options returns a copy of the options the App was created with.
func (a *App) Options() Options {
	return a.options
}

// APIBaseURL returns the service root without the API path.
func (a *App) APIBaseURL() string {
	return a.options.APIBaseURL
}

// APIKey returns the key used to authenticate requests.
func (a *App) APIKey() string {
	return a.options.APIKey
}

// APIURL returns the base URL including the API version path.
func (a *App) APIURL() string {
	return a.options.APIBaseURL + APIBaseURLPath
}

// FullURL returns the absolute URL of an API path.
func (a *App) FullURL(apiRelativePath string) string {
	if !strings.HasPrefix(apiRelativePath, "/") {
		apiRelativePath = "/" + apiRelativePath
	}

	return a.APIURL() + apiRelativePath
}
