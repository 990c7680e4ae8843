package builtin

import (
	"strings"

	"github.com/nao1215/neodynium/internal/extension"
	"github.com/nao1215/neodynium/internal/model"
)

// DefaultBlockedDomains are the ad domains adblock always blocks.
var DefaultBlockedDomains = []string{
	"ads.google.com",
	"doubleclick.net",
	"googlesyndication.com",
	"amazon-adsystem.com",
}

// Adblock replaces URLs containing a blocked domain with about:blank.
// Matching is a plain substring test on the whole URL.
type Adblock struct {
	host    extension.Host
	domains []string
}

// NewAdblock builds the adblock extension. The "domains" setting adds
// comma separated domains to DefaultBlockedDomains.
func NewAdblock(host extension.Host, settings map[string]string) (extension.Extension, error) {
	domains := make([]string, 0, len(DefaultBlockedDomains))
	domains = append(domains, DefaultBlockedDomains...)
	domains = append(domains, splitList(settings["domains"])...)

	return &Adblock{host: host, domains: domains}, nil
}

// ID implements extension.Extension.
func (a *Adblock) ID() string { return AdblockID }

// Description implements extension.Describer.
func (a *Adblock) Description() string { return "Blocks navigation to known ad domains" }

// OnLoad implements extension.Loadable.
func (a *Adblock) OnLoad() error {
	a.host.Logger().Info("adblock loaded", "domains", len(a.domains))
	return nil
}

// RewriteURL implements extension.URLRewriter.
func (a *Adblock) RewriteURL(url string) (string, error) {
	for _, domain := range a.domains {
		if strings.Contains(url, domain) {
			a.host.Logger().Info("blocked ad", "url", url, "domain", domain)
			return model.BlankURL, nil
		}
	}
	return url, nil
}
