package extension

import (
	"log/slog"
	"sync"
)

// Dispatcher owns the loaded extensions and runs the hook chains over them
// in load order.
//
// Only one chain runs at a time. Extension hooks must not call back into
// the Dispatcher.
type Dispatcher struct {
	mu         sync.Mutex
	extensions []Extension
	logger     *slog.Logger
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher(opts ...Option) *Dispatcher {
	o := newOptions(opts)
	return &Dispatcher{
		extensions: make([]Extension, 0),
		logger:     o.logger,
	}
}

// Add appends ext to the loaded set.
func (d *Dispatcher) Add(ext Extension) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.extensions = append(d.extensions, ext)
}

// Extensions returns a snapshot of the loaded set in load order.
func (d *Dispatcher) Extensions() []Extension {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Extension, len(d.extensions))
	copy(out, d.extensions)
	return out
}

// Len returns the number of loaded extensions.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.extensions)
}

// ApplyURLHooks passes url through every URLRewriter in load order and
// returns the result. A rewriter that fails leaves the URL as it was before
// its call; the next rewriter still runs.
func (d *Dispatcher) ApplyURLHooks(url string) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, ext := range d.extensions {
		rewriter, ok := ext.(URLRewriter)
		if !ok {
			continue
		}

		var rewritten string
		err := guard(func() error {
			var err error
			rewritten, err = rewriter.RewriteURL(url)
			return err
		})
		if err != nil {
			d.logger.Error("extension URL hook failed",
				"extension", ext.ID(),
				"url", url,
				"error", err,
			)
			continue
		}

		if rewritten != url {
			d.logger.Debug("extension rewrote URL",
				"extension", ext.ID(),
				"from", url,
				"to", rewritten,
			)
		}
		url = rewritten
	}
	return url
}

// NotifyPageLoaded tells every PageLoadObserver that url finished loading.
// Failures are logged; nothing is returned.
func (d *Dispatcher) NotifyPageLoaded(url string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, ext := range d.extensions {
		observer, ok := ext.(PageLoadObserver)
		if !ok {
			continue
		}

		if err := guard(func() error { return observer.OnPageLoad(url) }); err != nil {
			d.logger.Error("extension page load hook failed",
				"extension", ext.ID(),
				"url", url,
				"error", err,
			)
		}
	}
}
