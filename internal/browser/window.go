package browser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/neodynium/internal/database"
	"github.com/nao1215/neodynium/internal/engine"
	"github.com/nao1215/neodynium/internal/extension"
	"github.com/nao1215/neodynium/internal/model"
	"github.com/nao1215/neodynium/internal/render"
)

// DefaultConcurrency is the number of pages OpenTabs renders at once.
const DefaultConcurrency = 4

// Journal records visits. *database.VisitDB implements it.
type Journal interface {
	RecordVisit(ctx context.Context, v database.Visit) (int64, error)
}

// Window owns the tabs and drives navigation.
type Window struct {
	engine      *engine.Engine
	dispatcher  *extension.Dispatcher
	renderer    render.Renderer
	journal     Journal
	concurrency int
	logger      *slog.Logger

	// mu guards tabs and current. It is never held while extension or
	// renderer code runs.
	mu      sync.Mutex
	tabs    []*tab
	current int
}

// Option configures a Window.
type Option func(*Window)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Window) {
		w.logger = logger
	}
}

// WithJournal records every load in j.
func WithJournal(j Journal) Option {
	return func(w *Window) {
		w.journal = j
	}
}

// WithConcurrency sets how many pages OpenTabs renders at once.
func WithConcurrency(n int) Option {
	return func(w *Window) {
		if n > 0 {
			w.concurrency = n
		}
	}
}

// NewWindow creates a window with one empty tab.
func NewWindow(eng *engine.Engine, dispatcher *extension.Dispatcher, renderer render.Renderer, opts ...Option) *Window {
	w := &Window{
		engine:      eng,
		dispatcher:  dispatcher,
		renderer:    renderer,
		concurrency: DefaultConcurrency,
		tabs:        []*tab{newTab()},
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	return w
}

// Logger implements extension.Host.
func (w *Window) Logger() *slog.Logger {
	return w.logger
}

// CurrentURL implements extension.Host. It returns "" when the current tab
// is empty.
func (w *Window) CurrentURL() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if page := w.tabs[w.current].current(); page != nil {
		return page.URL
	}
	return ""
}

// CurrentTitle implements extension.Host.
func (w *Window) CurrentTitle() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if page := w.tabs[w.current].current(); page != nil {
		return page.Title
	}
	return ""
}

// CurrentPage returns the page shown in the current tab, or nil.
func (w *Window) CurrentPage() *model.Page {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.tabs[w.current].current()
}

// NavigateFromBar loads address-bar text in the current tab. Blank text is
// ignored.
func (w *Window) NavigateFromBar(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	url := w.engine.NormalizeURL(text)
	url = w.dispatcher.ApplyURLHooks(url)
	return w.navigate(ctx, text, url)
}

// NavigateHome loads the homepage in the current tab. The homepage does not
// pass through the URL hooks.
func (w *Window) NavigateHome(ctx context.Context) error {
	url := w.engine.HomeURL()
	return w.navigate(ctx, url, url)
}

func (w *Window) navigate(ctx context.Context, input, url string) error {
	page, err := w.renderer.Render(ctx, url)
	if err != nil {
		w.loadFailed(ctx, input, url, err)
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}

	w.mu.Lock()
	w.tabs[w.current].push(page)
	w.mu.Unlock()

	w.loadFinished(ctx, input, page)
	return nil
}

// Back shows the previous page of the current tab. It does nothing when
// there is no previous page.
func (w *Window) Back(ctx context.Context) error {
	return w.step(ctx, -1)
}

// Forward shows the next page of the current tab. It does nothing when
// there is no next page.
func (w *Window) Forward(ctx context.Context) error {
	return w.step(ctx, 1)
}

func (w *Window) step(ctx context.Context, delta int) error {
	w.mu.Lock()
	t := w.tabs[w.current]
	if (delta < 0 && !t.canGoBack()) || (delta > 0 && !t.canGoForward()) {
		w.mu.Unlock()
		w.logger.Debug("nothing to navigate to", "delta", delta)
		return nil
	}
	from := t.index
	url := t.entries[from+delta].URL
	w.mu.Unlock()

	page, err := w.renderer.Render(ctx, url)
	if err != nil {
		w.loadFailed(ctx, url, url, err)
		return fmt.Errorf("failed to load %s: %w", url, err)
	}

	w.mu.Lock()
	target := from + delta
	if t.index == from && target < len(t.entries) && t.entries[target].URL == url {
		t.index = target
		t.entries[target] = page
	} else {
		// The tab navigated while rendering; show the page as a new entry.
		t.push(page)
	}
	w.mu.Unlock()

	w.loadFinished(ctx, url, page)
	return nil
}

// CanGoBack reports whether the current tab has a previous page.
func (w *Window) CanGoBack() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tabs[w.current].canGoBack()
}

// CanGoForward reports whether the current tab has a next page.
func (w *Window) CanGoForward() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tabs[w.current].canGoForward()
}

// Reload renders the current page again.
func (w *Window) Reload(ctx context.Context) error {
	w.mu.Lock()
	t := w.tabs[w.current]
	page := t.current()
	w.mu.Unlock()

	if page == nil {
		return ErrNoPage
	}

	reloaded, err := w.renderer.Render(ctx, page.URL)
	if err != nil {
		w.loadFailed(ctx, page.URL, page.URL, err)
		return fmt.Errorf("failed to reload %s: %w", page.URL, err)
	}

	w.mu.Lock()
	t.replace(reloaded)
	w.mu.Unlock()

	w.loadFinished(ctx, page.URL, reloaded)
	return nil
}

// NewTab opens an empty tab, makes it current and returns its index.
func (w *Window) NewTab() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.tabs = append(w.tabs, newTab())
	w.current = len(w.tabs) - 1
	return w.current
}

// CloseTab closes the tab at index. The last remaining tab is never
// closed; false is returned in that case and for a bad index.
func (w *Window) CloseTab(index int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.tabs) <= 1 || index < 0 || index >= len(w.tabs) {
		return false
	}

	w.tabs = append(w.tabs[:index], w.tabs[index+1:]...)
	switch {
	case index < w.current:
		w.current--
	case w.current >= len(w.tabs):
		w.current = len(w.tabs) - 1
	}
	return true
}

// SwitchTab makes the tab at index current.
func (w *Window) SwitchTab(index int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if index < 0 || index >= len(w.tabs) {
		return fmt.Errorf("%w: %d", ErrTabIndex, index)
	}
	w.current = index
	return nil
}

// TabCount returns the number of open tabs.
func (w *Window) TabCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.tabs)
}

// CurrentTab returns the index of the current tab.
func (w *Window) CurrentTab() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Tabs describes the open tabs in order.
func (w *Window) Tabs() []TabInfo {
	w.mu.Lock()
	defer w.mu.Unlock()

	infos := make([]TabInfo, len(w.tabs))
	for i, t := range w.tabs {
		infos[i] = t.info(i, i == w.current)
	}
	return infos
}

// AddBookmark bookmarks the current page, using the URL as the title when
// the page has none. It returns the bookmark and whether it was new.
func (w *Window) AddBookmark() (model.Bookmark, bool, error) {
	page := w.CurrentPage()
	if page == nil {
		return model.Bookmark{}, false, ErrNoPage
	}

	b := model.Bookmark{URL: page.URL, Title: page.DisplayTitle()}
	return b, w.engine.AddBookmark(b.URL, b.Title), nil
}

// OpenTabs opens each input in a new tab. An empty current tab is used
// for the first page.
//
// Inputs are normalized and passed through the URL hooks one at a time in
// order. The pages are then rendered concurrently. Finished loads are
// handled one at a time in input order, so history, extension
// notifications and tab order match the inputs. Blank inputs are skipped.
// Failed loads do not open a tab; their errors are joined and returned.
func (w *Window) OpenTabs(ctx context.Context, inputs []string) error {
	type job struct {
		input string
		url   string
		page  *model.Page
		err   error
	}

	jobs := make([]*job, 0, len(inputs))
	for _, input := range inputs {
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		url := w.dispatcher.ApplyURLHooks(w.engine.NormalizeURL(input))
		jobs = append(jobs, &job{input: input, url: url})
	}

	w.logger.Debug("opening tabs", "count", len(jobs), "concurrency", w.concurrency)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)
	for _, j := range jobs {
		g.Go(func() error {
			// Failures stay with the job so the other pages still load.
			j.page, j.err = w.renderer.Render(gctx, j.url)
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // goroutines never return errors

	var errs []error
	for _, j := range jobs {
		if j.err != nil {
			w.loadFailed(ctx, j.input, j.url, j.err)
			errs = append(errs, fmt.Errorf("failed to open %s: %w", j.url, j.err))
			continue
		}

		w.mu.Lock()
		t := w.tabs[w.current]
		if t.current() != nil {
			t = newTab()
			w.tabs = append(w.tabs, t)
			w.current = len(w.tabs) - 1
		}
		t.push(j.page)
		w.mu.Unlock()

		w.loadFinished(ctx, j.input, j.page)
	}

	w.logger.Debug("tabs opened",
		"opened", len(jobs)-len(errs),
		"failed", len(errs),
		"elapsed", time.Since(start),
	)
	return errors.Join(errs...)
}

// loadFinished runs the page-loaded handling: history, extension
// notifications, journal.
func (w *Window) loadFinished(ctx context.Context, input string, page *model.Page) {
	w.engine.AddToHistory(page.URL)
	w.dispatcher.NotifyPageLoaded(page.URL)
	w.record(ctx, database.Visit{
		Input: input,
		URL:   page.URL,
		Title: page.Title,
		Event: database.EventLoad,
	})
}

func (w *Window) loadFailed(ctx context.Context, input, url string, err error) {
	w.logger.Error("page failed to load", "url", url, "error", err)
	w.record(ctx, database.Visit{
		Input: input,
		URL:   url,
		Event: database.EventError,
	})
}

// record writes v to the journal. Journal failures are logged only.
func (w *Window) record(ctx context.Context, v database.Visit) {
	if w.journal == nil {
		return
	}
	if _, err := w.journal.RecordVisit(context.WithoutCancel(ctx), v); err != nil {
		w.logger.Warn("failed to record visit", "url", v.URL, "error", err)
	}
}
