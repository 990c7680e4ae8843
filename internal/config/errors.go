package config

import "errors"

// Settings validation errors returned by Settings.Validate.
var (
	// ErrEmptyHomepage is returned when the homepage is blank.
	ErrEmptyHomepage = errors.New("invalid homepage: must not be empty")

	// ErrInvalidTheme is returned when the theme is not one of Themes.
	ErrInvalidTheme = errors.New("invalid theme: must be light or dark")

	// ErrInvalidTimeout is returned when the render timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidConcurrency is returned when the tab render concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidProxyAddress is returned when the proxy is not in host:port form.
	ErrInvalidProxyAddress = errors.New("invalid proxy address: must be host:port")
)
