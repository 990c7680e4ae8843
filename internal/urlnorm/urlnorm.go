// Package urlnorm classifies address-bar input and turns it into a fully
// qualified URL.
package urlnorm

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"
)

// hostPortPattern matches "localhost" or a dotted quad, with an optional port.
var hostPortPattern = regexp.MustCompile(`^(localhost|\d{1,3}(\.\d{1,3}){3})(:\d+)?$`)

// SearchBuilder builds a search URL from a free-text query.
type SearchBuilder interface {
	Build(query, engine string) string
}

// Kind is the classification Normalize applied to its input.
type Kind int

const (
	// KindURL means the input already had an http or https scheme.
	KindURL Kind = iota
	// KindHostPort means the input was localhost or an IPv4 address.
	KindHostPort
	// KindDomain means the input looked like a bare domain.
	KindDomain
	// KindSearch means the input was treated as a search query.
	KindSearch
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindURL:
		return "url"
	case KindHostPort:
		return "host"
	case KindDomain:
		return "domain"
	case KindSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Normalizer turns free text into a URL.
type Normalizer struct {
	search SearchBuilder
	engine string
	logger *slog.Logger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Normalizer) {
		n.logger = logger
	}
}

// New creates a Normalizer that delegates queries to search using engine.
func New(search SearchBuilder, engine string, opts ...Option) *Normalizer {
	n := &Normalizer{
		search: search,
		engine: engine,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.logger == nil {
		n.logger = slog.Default()
	}
	return n
}

// Normalize returns the URL for text. It never fails.
func (n *Normalizer) Normalize(text string) string {
	url, _ := n.Classify(text)
	return url
}

// Classify is Normalize that also reports which rule matched.
// Rules are tried in order: explicit scheme, host/IP, bare domain, search.
func (n *Normalizer) Classify(text string) (string, Kind) {
	text = strings.TrimSpace(text)

	var (
		url  string
		kind Kind
	)
	switch {
	case strings.HasPrefix(text, "http://"), strings.HasPrefix(text, "https://"):
		url, kind = text, KindURL
	case hostPortPattern.MatchString(text):
		url, kind = "http://"+text, KindHostPort
	case strings.Contains(text, ".") && !strings.ContainsFunc(text, unicode.IsSpace):
		url, kind = "https://"+text, KindDomain
	default:
		url, kind = n.search.Build(text, n.engine), KindSearch
	}

	n.logger.Debug("address normalized", "input", text, "kind", kind.String(), "url", url)
	return url, kind
}
