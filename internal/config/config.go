package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Default settings values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "neodynium"

	// DefaultHomepage is loaded by the home action when no homepage is configured.
	DefaultHomepage = "https://www.google.com"

	// DefaultSearchEngine is the catalog key used for search queries.
	DefaultSearchEngine = "google"

	// DefaultTheme is the UI theme name.
	DefaultTheme = "light"

	// DefaultTimeout is the per-page render timeout for the headless renderer.
	DefaultTimeout = 30 * time.Second

	// DefaultConcurrency is the number of tabs rendered in parallel by OpenTabs.
	DefaultConcurrency = 4

	// DefaultUserAgent identifies the headless renderer in HTTP requests.
	DefaultUserAgent = "Neodynium/1.0 (+https://github.com/nao1215/neodynium)"

	// SettingsFileName is the settings file name inside XDGConfigDir.
	SettingsFileName = "settings.yaml"

	// ExtensionsDirName is the extensions directory name inside XDGDataDir.
	ExtensionsDirName = "extensions"

	// LogFileName is the log file name inside XDGStateDir.
	LogFileName = "browser.log"
)

// Themes lists the accepted theme names.
var Themes = []string{"light", "dark"}

// Settings holds the user-facing browser settings.
// The YAML keys match the settings file. Environment overrides use the
// field name split into words after the NEODYNIUM_ prefix, for example
// NEODYNIUM_SEARCH_ENGINE; unprefixed variables are never read.
type Settings struct {
	// Homepage is the URL opened by the home action.
	Homepage string `yaml:"homepage" split_words:"true"`

	// SearchEngine is the search catalog key. Unknown keys fall back to
	// google at query time rather than failing validation.
	SearchEngine string `yaml:"search_engine" split_words:"true"`

	// Theme is the UI theme name (light or dark).
	Theme string `yaml:"theme" split_words:"true"`

	// ExtensionsDir is the directory scanned for extension manifests.
	// Empty means XDGDataDir()/extensions.
	ExtensionsDir string `yaml:"extensions_dir,omitempty" split_words:"true"`

	// BuiltinExtensions lists compiled-in extensions loaded without a
	// manifest directory, in order.
	BuiltinExtensions []string `yaml:"builtin_extensions,omitempty" split_words:"true"`

	// Proxy is an optional SOCKS5 proxy in "host:port" form used by the
	// headless renderer.
	Proxy string `yaml:"proxy,omitempty" split_words:"true"`

	// UserAgent is the User-Agent header sent by the headless renderer.
	UserAgent string `yaml:"user_agent,omitempty" split_words:"true"`

	// Timeout is the per-page render timeout.
	Timeout time.Duration `yaml:"timeout,omitempty" split_words:"true"`

	// Concurrency is the number of tabs rendered in parallel.
	Concurrency int `yaml:"concurrency,omitempty" split_words:"true"`

	// Journal enables the SQLite visit journal.
	Journal bool `yaml:"journal" split_words:"true"`
}

// NewSettings returns Settings populated with the defaults.
func NewSettings() Settings {
	return Settings{
		Homepage:     DefaultHomepage,
		SearchEngine: DefaultSearchEngine,
		Theme:        DefaultTheme,
		UserAgent:    DefaultUserAgent,
		Timeout:      DefaultTimeout,
		Concurrency:  DefaultConcurrency,
		Journal:      true,
	}
}

// ResolvedExtensionsDir returns ExtensionsDir, or the XDG default when empty.
func (s Settings) ResolvedExtensionsDir() string {
	if s.ExtensionsDir != "" {
		return s.ExtensionsDir
	}
	return filepath.Join(XDGDataDir(), ExtensionsDirName)
}

// Validate checks if the settings are usable.
// It returns the first problem found as a sentinel error.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.Homepage) == "" {
		return ErrEmptyHomepage
	}

	if !isKnownTheme(s.Theme) {
		return ErrInvalidTheme
	}

	if s.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if s.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if s.Proxy != "" && !isValidProxyAddress(s.Proxy) {
		return ErrInvalidProxyAddress
	}

	return nil
}

func isKnownTheme(theme string) bool {
	for _, t := range Themes {
		if t == theme {
			return true
		}
	}
	return false
}

// isValidProxyAddress checks if the address is in "host:port" form with a
// port between 1 and 65535.
func isValidProxyAddress(address string) bool {
	parts := strings.Split(address, ":")
	if len(parts) != 2 {
		return false
	}

	host, port := parts[0], parts[1]
	if host == "" || port == "" {
		return false
	}

	portNum := 0
	for _, c := range port {
		if c < '0' || c > '9' {
			return false
		}
		portNum = portNum*10 + int(c-'0')
		if portNum > 65535 {
			return false
		}
	}

	return portNum >= 1
}

// XDGDataDir returns the per-user data directory for Neodynium.
// Bookmarks, history, the visit journal and extensions live here.
// On Linux: ~/.local/share/neodynium
// On macOS: ~/Library/Application Support/neodynium
// On Windows: %LOCALAPPDATA%\neodynium
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the per-user config directory for Neodynium.
// On Linux: ~/.config/neodynium
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGStateDir returns the per-user state directory, used for logs.
// On Linux: ~/.local/state/neodynium
func XDGStateDir() string {
	return filepath.Join(xdg.StateHome, AppName)
}

// DefaultSettingsPath returns the settings file location inside XDGConfigDir.
func DefaultSettingsPath() string {
	return filepath.Join(XDGConfigDir(), SettingsFileName)
}

// DefaultLogPath returns the log file location inside XDGStateDir.
func DefaultLogPath() string {
	return filepath.Join(XDGStateDir(), "logs", LogFileName)
}
