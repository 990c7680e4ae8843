package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestNewSettings verifies that NewSettings returns the documented defaults.
func TestNewSettings(t *testing.T) {
	t.Parallel()

	s := NewSettings()

	t.Run("default homepage is google", func(t *testing.T) {
		t.Parallel()
		if s.Homepage != "https://www.google.com" {
			t.Errorf("expected homepage 'https://www.google.com', got %q", s.Homepage)
		}
	})

	t.Run("default search engine is google", func(t *testing.T) {
		t.Parallel()
		if s.SearchEngine != "google" {
			t.Errorf("expected search engine 'google', got %q", s.SearchEngine)
		}
	})

	t.Run("default theme is light", func(t *testing.T) {
		t.Parallel()
		if s.Theme != "light" {
			t.Errorf("expected theme 'light', got %q", s.Theme)
		}
	})

	t.Run("default timeout is 30 seconds", func(t *testing.T) {
		t.Parallel()
		if s.Timeout != 30*time.Second {
			t.Errorf("expected 30s, got %v", s.Timeout)
		}
	})

	t.Run("defaults pass validation", func(t *testing.T) {
		t.Parallel()
		if err := s.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

// TestSettingsValidate tests each validation rule in isolation.
func TestSettingsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr error
	}{
		{
			name:    "blank homepage returns ErrEmptyHomepage",
			mutate:  func(s *Settings) { s.Homepage = "  " },
			wantErr: ErrEmptyHomepage,
		},
		{
			name:    "unknown theme returns ErrInvalidTheme",
			mutate:  func(s *Settings) { s.Theme = "purple" },
			wantErr: ErrInvalidTheme,
		},
		{
			name:    "dark theme is valid",
			mutate:  func(s *Settings) { s.Theme = "dark" },
			wantErr: nil,
		},
		{
			name:    "zero timeout returns ErrInvalidTimeout",
			mutate:  func(s *Settings) { s.Timeout = 0 },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative concurrency returns ErrInvalidConcurrency",
			mutate:  func(s *Settings) { s.Concurrency = -1 },
			wantErr: ErrInvalidConcurrency,
		},
		{
			name:    "proxy without port returns ErrInvalidProxyAddress",
			mutate:  func(s *Settings) { s.Proxy = "127.0.0.1" },
			wantErr: ErrInvalidProxyAddress,
		},
		{
			name:    "proxy with out of range port returns ErrInvalidProxyAddress",
			mutate:  func(s *Settings) { s.Proxy = "127.0.0.1:70000" },
			wantErr: ErrInvalidProxyAddress,
		},
		{
			name:    "valid proxy is accepted",
			mutate:  func(s *Settings) { s.Proxy = "127.0.0.1:9050" },
			wantErr: nil,
		},
		{
			name:    "unknown search engine is not a validation error",
			mutate:  func(s *Settings) { s.SearchEngine = "nonexistent" },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewSettings()
			tt.mutate(&s)

			err := s.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestLoadSettingsFile tests the LoadSettingsFile function.
func TestLoadSettingsFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadSettingsFile("/nonexistent/path/settings.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
	})

	t.Run("loads valid YAML and keeps defaults for missing keys", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "settings.yaml")
		content := `homepage: "https://duckduckgo.com"
search_engine: duckduckgo
timeout: 5s
builtin_extensions:
  - adblock
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test settings: %v", err)
		}

		s, err := LoadSettingsFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Homepage != "https://duckduckgo.com" {
			t.Errorf("unexpected homepage %q", s.Homepage)
		}
		if s.SearchEngine != "duckduckgo" {
			t.Errorf("unexpected search engine %q", s.SearchEngine)
		}
		if s.Timeout != 5*time.Second {
			t.Errorf("expected timeout 5s, got %v", s.Timeout)
		}
		if len(s.BuiltinExtensions) != 1 || s.BuiltinExtensions[0] != "adblock" {
			t.Errorf("unexpected builtin extensions %v", s.BuiltinExtensions)
		}
		if s.Theme != DefaultTheme {
			t.Errorf("expected default theme, got %q", s.Theme)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "settings.yaml")
		if err := os.WriteFile(path, []byte(`invalid: yaml: content: [}`), 0600); err != nil {
			t.Fatalf("failed to write test settings: %v", err)
		}

		if _, err := LoadSettingsFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindSettingsFile tests the FindSettingsFile function.
func TestFindSettingsFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path if exists", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("theme: dark\n"), 0600); err != nil {
			t.Fatalf("failed to write test settings: %v", err)
		}

		if got := FindSettingsFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		t.Parallel()

		if got := FindSettingsFile("/nonexistent/path/settings.yaml"); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}

// TestLoad tests the layered Load function.
// These subtests use t.Setenv and cannot run in parallel.
func TestLoad(t *testing.T) {
	t.Run("explicit missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("environment overrides the settings file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		if err := os.WriteFile(path, []byte("search_engine: bing\ntheme: light\n"), 0600); err != nil {
			t.Fatalf("failed to write test settings: %v", err)
		}
		t.Setenv("NEODYNIUM_SEARCH_ENGINE", "duckduckgo")
		t.Setenv("NEODYNIUM_THEME", "dark")

		s, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.SearchEngine != "duckduckgo" {
			t.Errorf("expected env override, got %q", s.SearchEngine)
		}
		if s.Theme != "dark" {
			t.Errorf("expected env override, got %q", s.Theme)
		}
	})

	t.Run("unprefixed variables are ignored", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		if err := os.WriteFile(path, []byte("search_engine: google\n"), 0600); err != nil {
			t.Fatalf("failed to write test settings: %v", err)
		}
		t.Setenv("TIMEOUT", "5")
		t.Setenv("THEME", "solarized")
		t.Setenv("HOMEPAGE", "https://other.example")
		t.Setenv("PROXY", "not a proxy")
		t.Setenv("JOURNAL", "false")

		s, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Timeout != DefaultTimeout {
			t.Errorf("expected default timeout, got %v", s.Timeout)
		}
		if s.Theme != DefaultTheme {
			t.Errorf("expected default theme, got %q", s.Theme)
		}
		if s.Homepage != DefaultHomepage {
			t.Errorf("expected default homepage, got %q", s.Homepage)
		}
		if s.Proxy != "" {
			t.Errorf("expected no proxy, got %q", s.Proxy)
		}
		if !s.Journal {
			t.Error("expected journal to stay enabled")
		}
	})

	t.Run("multi-word fields use split names", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		if err := os.WriteFile(path, []byte("theme: light\n"), 0600); err != nil {
			t.Fatalf("failed to write test settings: %v", err)
		}
		t.Setenv("NEODYNIUM_EXTENSIONS_DIR", "/opt/neodynium/ext")
		t.Setenv("NEODYNIUM_USER_AGENT", "test-agent")
		t.Setenv("NEODYNIUM_TIMEOUT", "5s")

		s, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ExtensionsDir != "/opt/neodynium/ext" {
			t.Errorf("expected extensions dir override, got %q", s.ExtensionsDir)
		}
		if s.UserAgent != "test-agent" {
			t.Errorf("expected user agent override, got %q", s.UserAgent)
		}
		if s.Timeout != 5*time.Second {
			t.Errorf("expected 5s timeout, got %v", s.Timeout)
		}
	})

	t.Run("invalid result fails validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		if err := os.WriteFile(path, []byte("theme: purple\n"), 0600); err != nil {
			t.Fatalf("failed to write test settings: %v", err)
		}

		_, err := Load(path)
		if !errors.Is(err, ErrInvalidTheme) {
			t.Errorf("expected ErrInvalidTheme, got %v", err)
		}
	})
}

// TestXDGDirs tests XDG directory functions.
func TestXDGDirs(t *testing.T) {
	t.Parallel()

	for name, dir := range map[string]string{
		"data":   XDGDataDir(),
		"config": XDGConfigDir(),
		"state":  XDGStateDir(),
	} {
		t.Run(name+" dir ends with app name", func(t *testing.T) {
			t.Parallel()
			if !strings.HasSuffix(dir, AppName) {
				t.Errorf("expected %q to end with %q", dir, AppName)
			}
		})
	}

	t.Run("extensions dir defaults under data dir", func(t *testing.T) {
		t.Parallel()

		s := NewSettings()
		if got := s.ResolvedExtensionsDir(); got != filepath.Join(XDGDataDir(), ExtensionsDirName) {
			t.Errorf("unexpected extensions dir %q", got)
		}

		s.ExtensionsDir = "/tmp/ext"
		if got := s.ResolvedExtensionsDir(); got != "/tmp/ext" {
			t.Errorf("expected explicit dir, got %q", got)
		}
	})
}
