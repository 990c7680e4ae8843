package extension

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// Loader instantiates registered extensions and adds them to a Dispatcher.
type Loader struct {
	registry   *Registry
	host       Host
	dispatcher *Dispatcher
	logger     *slog.Logger
}

// NewLoader creates a Loader that builds extensions from registry for host
// and adds them to dispatcher.
func NewLoader(registry *Registry, host Host, dispatcher *Dispatcher, opts ...Option) *Loader {
	o := newOptions(opts)
	return &Loader{
		registry:   registry,
		host:       host,
		dispatcher: dispatcher,
		logger:     o.logger,
	}
}

// candidate is an extension folder whose manifest has been read.
type candidate struct {
	folder   string
	manifest *Manifest
}

// DiscoverAndLoad loads every enabled extension folder directly under root
// and returns the extensions it added, in load order.
//
// Folders load by manifest priority, then by folder name. A folder that
// fails at any step is logged with its name and skipped. A missing root is
// logged as a warning and yields no extensions.
func (l *Loader) DiscoverAndLoad(root string) []Extension {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("extensions directory not found", "path", root)
		} else {
			l.logger.Error("failed to read extensions directory", "path", root, "error", err)
		}
		return []Extension{}
	}

	candidates := make([]candidate, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		if !HasManifest(dir) {
			l.logger.Debug("skipping folder without manifest", "folder", entry.Name())
			continue
		}

		manifest, err := ReadManifest(dir)
		if err != nil {
			l.logger.Error("failed to load extension", "folder", entry.Name(), "error", err)
			continue
		}
		if !manifest.IsEnabled() {
			l.logger.Info("extension disabled", "folder", entry.Name(), "extension", manifest.ID)
			continue
		}
		candidates = append(candidates, candidate{folder: entry.Name(), manifest: manifest})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].manifest.Priority != candidates[j].manifest.Priority {
			return candidates[i].manifest.Priority < candidates[j].manifest.Priority
		}
		return candidates[i].folder < candidates[j].folder
	})

	loaded := make([]Extension, 0, len(candidates))
	for _, c := range candidates {
		ext, err := l.load(c.manifest.ID, c.manifest.Settings)
		if err != nil {
			l.logger.Error("failed to load extension", "folder", c.folder, "error", err)
			continue
		}
		l.logger.Info("extension loaded", "folder", c.folder, "extension", ext.ID())
		loaded = append(loaded, ext)
	}
	return loaded
}

// LoadBuiltins loads registered extensions by ID, in the given order,
// without a manifest. Failures are logged and skipped.
func (l *Loader) LoadBuiltins(ids ...string) []Extension {
	loaded := make([]Extension, 0, len(ids))
	for _, id := range ids {
		ext, err := l.load(id, map[string]string{})
		if err != nil {
			l.logger.Error("failed to load extension", "extension", id, "error", err)
			continue
		}
		l.logger.Info("extension loaded", "extension", ext.ID())
		loaded = append(loaded, ext)
	}
	return loaded
}

// load instantiates id, adds it to the dispatcher, then runs OnLoad.
// An OnLoad failure is logged but the extension stays loaded.
func (l *Loader) load(id string, settings map[string]string) (Extension, error) {
	factory, err := l.registry.Lookup(id)
	if err != nil {
		return nil, err
	}

	var ext Extension
	err = guard(func() error {
		var err error
		ext, err = factory(l.host, settings)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate %s: %w", id, err)
	}
	if ext == nil {
		return nil, fmt.Errorf("failed to instantiate %s: %w", id, ErrNilExtension)
	}

	l.dispatcher.Add(ext)

	if loadable, ok := ext.(Loadable); ok {
		if err := guard(loadable.OnLoad); err != nil {
			l.logger.Error("extension on_load failed", "extension", ext.ID(), "error", err)
		}
	}
	return ext, nil
}
