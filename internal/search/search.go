package search

import (
	"log/slog"
	"sort"
	"strings"
)

// Placeholder is the token replaced by the query in a template.
const Placeholder = "{query}"

// FallbackEngine is used when the configured engine is not in the catalog.
const FallbackEngine = "google"

// Catalog maps engine keys to URL templates.
type Catalog map[string]string

// DefaultCatalog returns the built-in search engines.
func DefaultCatalog() Catalog {
	return Catalog{
		"google":     "https://www.google.com/search?q={query}",
		"duckduckgo": "https://duckduckgo.com/?q={query}",
		"bing":       "https://www.bing.com/search?q={query}",
	}
}

// Engines returns the catalog keys in sorted order.
func (c Catalog) Engines() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether engine is in the catalog.
func (c Catalog) Has(engine string) bool {
	_, ok := c[engine]
	return ok
}

// Builder builds search URLs from a catalog.
type Builder struct {
	catalog Catalog
	logger  *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for fallback warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithCatalog replaces the default catalog.
// The catalog must contain FallbackEngine.
func WithCatalog(c Catalog) Option {
	return func(b *Builder) {
		b.catalog = c
	}
}

// NewBuilder creates a Builder over DefaultCatalog.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{catalog: DefaultCatalog()}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// Catalog returns the catalog the builder uses.
func (b *Builder) Catalog() Catalog {
	return b.catalog
}

// Build returns the search URL for query on engine.
// An unknown engine falls back to google and logs a warning; Build never fails.
func (b *Builder) Build(query, engine string) string {
	template, ok := b.catalog[engine]
	if !ok {
		b.logger.Warn("unknown search engine, falling back",
			"engine", engine,
			"fallback", FallbackEngine,
		)
		template = b.catalog[FallbackEngine]
	}

	url := strings.ReplaceAll(template, Placeholder, strings.ReplaceAll(query, " ", "+"))
	b.logger.Debug("search URL built", "url", url)
	return url
}
