package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/proxy"

	"github.com/nao1215/neodynium/internal/model"
)

const (
	// DefaultTimeout bounds a single page load.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) neodynium"

	// maxRedirects stops redirect loops.
	maxRedirects = 10
)

// Headless fetches pages over HTTP.
type Headless struct {
	client      *http.Client
	proxyAddr   string
	userAgent   string
	timeout     time.Duration
	maxBodySize int64
	logger      *slog.Logger
}

// Option configures a Headless renderer.
type Option func(*Headless)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Headless) {
		h.logger = logger
	}
}

// WithProxy routes requests through the SOCKS5 proxy at addr ("host:port").
// An empty addr connects directly.
func WithProxy(addr string) Option {
	return func(h *Headless) {
		h.proxyAddr = addr
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(h *Headless) {
		h.userAgent = ua
	}
}

// WithTimeout sets the per-page timeout.
func WithTimeout(d time.Duration) Option {
	return func(h *Headless) {
		h.timeout = d
	}
}

// WithMaxBodySize caps the number of body bytes read per page.
func WithMaxBodySize(size int64) Option {
	return func(h *Headless) {
		h.maxBodySize = size
	}
}

// WithHTTPClient replaces the HTTP client. WithProxy is ignored when a
// client is supplied.
func WithHTTPClient(client *http.Client) Option {
	return func(h *Headless) {
		h.client = client
	}
}

// NewHeadless creates a Headless renderer.
func NewHeadless(opts ...Option) (*Headless, error) {
	h := &Headless{
		userAgent:   DefaultUserAgent,
		timeout:     DefaultTimeout,
		maxBodySize: model.MaxPageSize,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}

	if h.client == nil {
		client, err := newHTTPClient(h.proxyAddr, h.timeout)
		if err != nil {
			return nil, err
		}
		h.client = client
	}
	return h, nil
}

// newHTTPClient builds a client that dials directly or through a SOCKS5
// proxy, keeps cookies for the session and follows a bounded number of
// redirects.
func newHTTPClient(proxyAddr string, timeout time.Duration) (*http.Client, error) {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     30 * time.Second,
	}

	if proxyAddr != "" {
		if _, _, err := net.SplitHostPort(proxyAddr); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidProxyAddress, proxyAddr)
		}
		dialer, err := proxy.SOCKS5("tcp", proxyAddr, nil, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
		}
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			transport.DialContext = cd.DialContext
		} else {
			transport.DialContext = func(_ context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		}
	} else {
		transport.DialContext = (&net.Dialer{Timeout: timeout}).DialContext
	}

	jar, _ := cookiejar.New(nil) //nolint:errcheck // cookiejar.New only fails with invalid options

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
		Jar:       jar,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}, nil
}

// Render loads url. about: URLs produce an empty page. Non-2xx responses
// are still pages; only transport failures are errors.
func (h *Headless) Render(ctx context.Context, url string) (*model.Page, error) {
	switch {
	case strings.HasPrefix(url, "about:"):
		return model.NewBlankPage(url), nil
	case strings.HasPrefix(url, "http://"), strings.HasPrefix(url, "https://"):
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, h.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	page := &model.Page{
		URL:         resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		Headers:     resp.Header,
		ContentType: resp.Header.Get("Content-Type"),
		Raw:         body,
	}
	page.TruncateRaw()
	page.ComputeHash()

	if page.IsHTML() {
		page.Title = extractTitle(page.Raw)
	}

	h.logger.Debug("page rendered",
		"url", page.URL,
		"status", page.StatusCode,
		"bytes", len(page.Raw),
		"elapsed", time.Since(start),
	)
	return page, nil
}

// extractTitle returns the trimmed text of the first <title> element.
func extractTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(doc.Find("title").First().Text()), " ")
}
