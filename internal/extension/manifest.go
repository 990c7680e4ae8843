package extension

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the entry-point file that marks a folder as an
// extension.
const ManifestFileName = "extension.yaml"

// Manifest describes one extension folder.
//
// Example:
//
//	id: adblock
//	priority: 10
//	enabled: true
//	settings:
//	  domains: tracker.example,ads.example
type Manifest struct {
	// ID is the registered extension to instantiate.
	// Defaults to the folder name.
	ID string `yaml:"id"`

	// Priority orders extensions; lower loads first.
	Priority int `yaml:"priority"`

	// Enabled defaults to true when omitted.
	Enabled *bool `yaml:"enabled"`

	// Settings are passed to the factory.
	Settings map[string]string `yaml:"settings"`
}

// IsEnabled reports whether the manifest enables the extension.
func (m *Manifest) IsEnabled() bool {
	return m.Enabled == nil || *m.Enabled
}

// HasManifest reports whether dir contains a manifest file.
func HasManifest(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ManifestFileName))
	return err == nil && !info.IsDir()
}

// ReadManifest reads the manifest in dir. A missing id defaults to the
// folder name.
func ReadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFileName)

	data, err := os.ReadFile(path) //nolint:gosec // path is built from the extensions root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if m.ID == "" {
		m.ID = filepath.Base(dir)
	}
	if m.Settings == nil {
		m.Settings = map[string]string{}
	}
	return &m, nil
}
