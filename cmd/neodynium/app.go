package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/neodynium/internal/browser"
	"github.com/nao1215/neodynium/internal/config"
	"github.com/nao1215/neodynium/internal/database"
	"github.com/nao1215/neodynium/internal/engine"
	"github.com/nao1215/neodynium/internal/extension"
	"github.com/nao1215/neodynium/internal/extension/builtin"
	applog "github.com/nao1215/neodynium/internal/log"
	"github.com/nao1215/neodynium/internal/render"
	"github.com/nao1215/neodynium/internal/store"
)

// app is the wired browser used by the commands.
type app struct {
	settings   config.Settings
	logger     *slog.Logger
	engine     *engine.Engine
	registry   *extension.Registry
	dispatcher *extension.Dispatcher
	window     *browser.Window
	journal    *database.VisitDB
	extensions []extension.Extension
	closers    []io.Closer
}

// newApp resolves settings from the command flags and wires the browser.
// Extensions are loaded before it returns. Only unusable settings and a
// registry failure are fatal; the journal is optional.
func newApp(cmd *cobra.Command) (*app, error) {
	a := &app{}

	settings, err := config.Load(getStringFlag(cmd, "config"))
	if err != nil {
		return nil, err
	}
	if dir := getStringFlag(cmd, "extensions-dir"); dir != "" {
		settings.ExtensionsDir = dir
	}
	a.settings = settings

	if err := a.setupLogger(cmd); err != nil {
		return nil, err
	}

	dataDir := getStringFlag(cmd, "data-dir")
	if dataDir == "" {
		dataDir = config.XDGDataDir()
	}

	a.engine = engine.New(settings, store.New(dataDir, store.WithLogger(a.logger)), engine.WithLogger(a.logger))

	a.registry = extension.NewRegistry()
	if err := builtin.Register(a.registry); err != nil {
		a.Close()
		return nil, err
	}
	a.dispatcher = extension.NewDispatcher(extension.WithLogger(a.logger))

	renderer, err := render.NewHeadless(
		render.WithLogger(a.logger),
		render.WithProxy(settings.Proxy),
		render.WithUserAgent(settings.UserAgent),
		render.WithTimeout(settings.Timeout),
	)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	opts := []browser.Option{
		browser.WithLogger(a.logger),
		browser.WithConcurrency(settings.Concurrency),
	}
	if settings.Journal {
		journal, err := database.Open(dataDir, database.DefaultOptions())
		if err != nil {
			a.logger.Warn("visit journal disabled", "error", err)
		} else {
			a.journal = journal
			a.closers = append(a.closers, journal)
			opts = append(opts, browser.WithJournal(journal))
		}
	}
	a.window = browser.NewWindow(a.engine, a.dispatcher, renderer, opts...)

	loader := extension.NewLoader(a.registry, a.window, a.dispatcher, extension.WithLogger(a.logger))
	a.extensions = append(a.extensions, loader.LoadBuiltins(settings.BuiltinExtensions...)...)
	a.extensions = append(a.extensions, loader.DiscoverAndLoad(settings.ResolvedExtensionsDir())...)

	a.logger.Debug("browser ready",
		"data_dir", dataDir,
		"extensions", len(a.extensions),
		"journal", a.journal != nil,
	)
	return a, nil
}

// setupLogger logs to stderr and, with --log-file, to that file as well.
func (a *app) setupLogger(cmd *cobra.Command) error {
	var w io.Writer = cmd.ErrOrStderr()

	if path := getStringFlag(cmd, "log-file"); path != "" {
		f, err := applog.OpenLogFile(path)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.closers = append(a.closers, f)
		w = io.MultiWriter(w, f)
	}

	a.logger = applog.NewLogger(w, getVerboseFlag(cmd))
	return nil
}

// requireJournal returns the journal or an error when it is disabled.
func (a *app) requireJournal() (*database.VisitDB, error) {
	if a.journal == nil {
		return nil, errJournalDisabled
	}
	return a.journal, nil
}

// Close releases the journal and the log file.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			fmt.Fprintln(os.Stderr, "close:", err) //nolint:errcheck,gosec // best effort at exit
		}
	}
	a.closers = nil
}

var errJournalDisabled = errors.New("visit journal is disabled (set journal: true in settings)")
