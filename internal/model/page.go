package model

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

// BlankURL is the address of the empty page.
// Extensions rewrite blocked navigations to it.
const BlankURL = "about:blank"

// MaxPageSize is the maximum number of body bytes the renderer keeps.
// Larger bodies are truncated to this size.
const MaxPageSize = 5 * 1024 * 1024 // 5 MB

// Page is what the renderer reports for a loaded tab.
// It covers the collaborator calls currentUrl() and currentTitle().
type Page struct {
	// URL is the final address after redirects.
	URL string `json:"url"`

	// StatusCode is the HTTP status code, or 0 for non-network pages.
	StatusCode int `json:"status_code,omitempty"`

	// Headers contains the HTTP response headers in canonical form.
	Headers map[string][]string `json:"headers,omitempty"`

	// ContentType is the MIME type from the Content-Type header.
	ContentType string `json:"content_type,omitempty"`

	// Title is the text of the <title> element. Empty for non-HTML content.
	Title string `json:"title,omitempty"`

	// Raw is the response body, capped at MaxPageSize.
	Raw []byte `json:"-"`

	// Hash is the hex SHA3-256 digest of Raw.
	Hash string `json:"hash,omitempty"`
}

// NewBlankPage returns the page shown for about: URLs.
func NewBlankPage(url string) *Page {
	return &Page{URL: url}
}

// ComputeHash calculates and sets the SHA3-256 hash of the page's raw content.
// An empty body produces an empty hash.
func (p *Page) ComputeHash() {
	if len(p.Raw) == 0 {
		p.Hash = ""
		return
	}

	sum := sha3.Sum256(p.Raw)
	p.Hash = hex.EncodeToString(sum[:])
}

// GetHeader returns the first value of the specified header, or "".
func (p *Page) GetHeader(name string) string {
	if values, ok := p.Headers[name]; ok && len(values) > 0 {
		return values[0]
	}
	return ""
}

// IsHTML returns true if the content type indicates HTML.
func (p *Page) IsHTML() bool {
	return strings.HasPrefix(p.ContentType, "text/html") ||
		p.ContentType == "application/xhtml+xml"
}

// TruncateRaw ensures the raw content doesn't exceed MaxPageSize.
func (p *Page) TruncateRaw() {
	if len(p.Raw) > MaxPageSize {
		p.Raw = p.Raw[:MaxPageSize]
	}
}

// DisplayTitle returns the title, falling back to the URL when the page
// has none.
func (p *Page) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return p.URL
}
