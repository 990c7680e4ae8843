package extension

import (
	"fmt"
	"log/slog"
)

// Extension is the base every extension implements.
type Extension interface {
	// ID returns the registered slug of the extension.
	ID() string
}

// Loadable is implemented by extensions that need a one-time hook after
// they are added to the loaded set.
type Loadable interface {
	Extension
	OnLoad() error
}

// URLRewriter is implemented by extensions that rewrite URLs before they
// are rendered. Returning an error keeps the URL unchanged.
type URLRewriter interface {
	Extension
	RewriteURL(url string) (string, error)
}

// PageLoadObserver is implemented by extensions that want to know when a
// page has finished loading.
type PageLoadObserver interface {
	Extension
	OnPageLoad(url string) error
}

// Describer is implemented by extensions that provide a human readable
// description for listings.
type Describer interface {
	Description() string
}

// Host is the handle an extension receives from the window that loads it.
type Host interface {
	// CurrentURL returns the URL of the current tab.
	CurrentURL() string

	// CurrentTitle returns the title of the current tab.
	CurrentTitle() string

	// Logger returns the logger extensions should write to.
	Logger() *slog.Logger
}

// Factory builds an extension for host. settings come from the manifest
// and may be empty, never nil.
type Factory func(host Host, settings map[string]string) (Extension, error)

// Capabilities returns the names of the optional capabilities ext
// implements, in a fixed order.
func Capabilities(ext Extension) []string {
	var caps []string
	if _, ok := ext.(Loadable); ok {
		caps = append(caps, "on_load")
	}
	if _, ok := ext.(URLRewriter); ok {
		caps = append(caps, "rewrite_url")
	}
	if _, ok := ext.(PageLoadObserver); ok {
		caps = append(caps, "on_page_load")
	}
	return caps
}

// Description returns ext's description, or "" if it has none.
func Description(ext Extension) string {
	if d, ok := ext.(Describer); ok {
		return d.Description()
	}
	return ""
}

// guard runs fn and converts a panic into an error wrapping ErrExtensionPanic.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrExtensionPanic, r)
		}
	}()
	return fn()
}

// options holds the settings shared by Loader and Dispatcher.
type options struct {
	logger *slog.Logger
}

// Option configures a Loader or a Dispatcher.
type Option func(*options)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}
