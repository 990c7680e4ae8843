package render

import "errors"

var (
	// ErrUnsupportedScheme is returned for URLs the headless renderer
	// cannot load.
	ErrUnsupportedScheme = errors.New("unsupported URL scheme")

	// ErrInvalidProxyAddress is returned when the proxy is not "host:port".
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")
)
