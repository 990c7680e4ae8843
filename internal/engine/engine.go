// Package engine is the browser's logic layer. It owns the settings, the
// bookmark list and the visit history, and turns address-bar text into URLs.
// It has no knowledge of tabs or rendering.
package engine

import (
	"log/slog"
	"sync"

	"github.com/nao1215/neodynium/internal/config"
	"github.com/nao1215/neodynium/internal/model"
	"github.com/nao1215/neodynium/internal/search"
	"github.com/nao1215/neodynium/internal/urlnorm"
)

// Persister loads and saves the bookmark and history lists.
// *store.Store implements it.
type Persister interface {
	LoadBookmarks(into *model.Bookmarks)
	SaveBookmarks(bookmarks model.Bookmarks)
	LoadHistory(into *model.History)
	SaveHistory(history model.History)
}

// Engine holds the session's settings, bookmarks and history.
// It is safe for concurrent use.
type Engine struct {
	settings   config.Settings
	store      Persister
	search     *search.Builder
	normalizer *urlnorm.Normalizer
	logger     *slog.Logger

	mu        sync.Mutex
	bookmarks model.Bookmarks
	history   model.History
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine and loads the stored bookmarks and history.
// settings is copied and never changes for the life of the Engine.
func New(settings config.Settings, store Persister, opts ...Option) *Engine {
	e := &Engine{
		settings:  settings,
		store:     store,
		bookmarks: model.Bookmarks{},
		history:   model.History{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}

	e.search = search.NewBuilder(search.WithLogger(e.logger))
	e.normalizer = urlnorm.New(e.search, settings.SearchEngine, urlnorm.WithLogger(e.logger))

	e.store.LoadBookmarks(&e.bookmarks)
	e.store.LoadHistory(&e.history)
	if len(e.history) > model.MaxHistorySize {
		e.logger.Warn("stored history exceeds limit, keeping most recent entries",
			"entries", len(e.history),
			"limit", model.MaxHistorySize,
		)
		e.history = e.history.Trim()
	}

	e.logger.Debug("engine initialized",
		"homepage", settings.Homepage,
		"search_engine", settings.SearchEngine,
		"theme", settings.Theme,
		"bookmarks", len(e.bookmarks),
		"history", len(e.history),
	)
	return e
}

// Settings returns the engine's settings.
func (e *Engine) Settings() config.Settings {
	return e.settings
}

// HomeURL returns the configured homepage, or the default homepage when
// none is set.
func (e *Engine) HomeURL() string {
	if e.settings.Homepage == "" {
		return config.DefaultHomepage
	}
	return e.settings.Homepage
}

// NormalizeURL turns address-bar text into a URL.
func (e *Engine) NormalizeURL(text string) string {
	return e.normalizer.Normalize(text)
}

// BuildSearchURL returns the search URL for query on the configured engine.
func (e *Engine) BuildSearchURL(query string) string {
	return e.search.Build(query, e.settings.SearchEngine)
}

// SearchEngines returns the known search engine keys.
func (e *Engine) SearchEngines() []string {
	return e.search.Catalog().Engines()
}

// AddBookmark bookmarks url. A URL that is already bookmarked is left
// alone and false is returned.
func (e *Engine) AddBookmark(url, title string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	bookmarks, added := e.bookmarks.Add(url, title)
	if !added {
		e.logger.Debug("already bookmarked", "url", url)
		return false
	}
	e.bookmarks = bookmarks
	e.store.SaveBookmarks(e.bookmarks.Clone())
	e.logger.Info("bookmark added", "title", title, "url", url)
	return true
}

// RemoveBookmark deletes the bookmark for url. It returns false when url
// was not bookmarked.
func (e *Engine) RemoveBookmark(url string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	bookmarks, removed := e.bookmarks.Remove(url)
	if !removed {
		e.logger.Debug("bookmark not found", "url", url)
		return false
	}
	e.bookmarks = bookmarks
	e.store.SaveBookmarks(e.bookmarks.Clone())
	e.logger.Info("bookmark removed", "url", url)
	return true
}

// Bookmarks returns a copy of the bookmark list.
func (e *Engine) Bookmarks() model.Bookmarks {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.bookmarks.Clone()
}

// AddToHistory records a visit to url. Repeating the most recent entry is
// ignored and false is returned.
func (e *Engine) AddToHistory(url string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	history, added := e.history.Add(url)
	if !added {
		return false
	}
	e.history = history
	e.store.SaveHistory(e.history.Clone())
	e.logger.Debug("added to history", "url", url)
	return true
}

// History returns a copy of the visit history, oldest first.
func (e *Engine) History() model.History {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.history.Clone()
}

// ClearHistory empties the visit history.
func (e *Engine) ClearHistory() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.history = model.History{}
	e.store.SaveHistory(e.history)
	e.logger.Info("history cleared")
}
