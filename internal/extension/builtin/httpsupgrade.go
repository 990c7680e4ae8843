package builtin

import (
	"fmt"
	"net"
	neturl "net/url"
	"strings"

	"github.com/nao1215/neodynium/internal/extension"
)

// HTTPSUpgrade rewrites http URLs to https. Loopback, private and
// excluded hosts keep plain http.
type HTTPSUpgrade struct {
	host    extension.Host
	exclude map[string]struct{}
}

// NewHTTPSUpgrade builds the https-upgrade extension. The "exclude"
// setting lists comma separated host names that stay on http.
func NewHTTPSUpgrade(host extension.Host, settings map[string]string) (extension.Extension, error) {
	exclude := map[string]struct{}{"localhost": {}}
	for _, h := range splitList(settings["exclude"]) {
		if strings.Contains(h, "/") {
			return nil, fmt.Errorf("invalid exclude host %q", h)
		}
		exclude[strings.ToLower(h)] = struct{}{}
	}
	return &HTTPSUpgrade{host: host, exclude: exclude}, nil
}

// ID implements extension.Extension.
func (u *HTTPSUpgrade) ID() string { return HTTPSUpgradeID }

// Description implements extension.Describer.
func (u *HTTPSUpgrade) Description() string { return "Upgrades plain http navigations to https" }

// RewriteURL implements extension.URLRewriter.
func (u *HTTPSUpgrade) RewriteURL(url string) (string, error) {
	if !strings.HasPrefix(url, "http://") {
		return url, nil
	}

	parsed, err := neturl.Parse(url)
	if err != nil {
		return url, fmt.Errorf("failed to parse URL: %w", err)
	}

	hostname := strings.ToLower(parsed.Hostname())
	if _, ok := u.exclude[hostname]; ok {
		return url, nil
	}
	if ip := net.ParseIP(hostname); ip != nil && (ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast()) {
		return url, nil
	}

	return "https://" + strings.TrimPrefix(url, "http://"), nil
}
