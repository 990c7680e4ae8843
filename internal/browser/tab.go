package browser

import "github.com/nao1215/neodynium/internal/model"

// NewTabTitle is the title shown for a tab with nothing loaded.
const NewTabTitle = "New Tab"

// tab is one browsing context with its own back/forward list.
type tab struct {
	entries []*model.Page
	index   int
}

func newTab() *tab {
	return &tab{index: -1}
}

// current returns the page being shown, or nil.
func (t *tab) current() *model.Page {
	if t.index < 0 {
		return nil
	}
	return t.entries[t.index]
}

// push shows page and drops any forward entries.
func (t *tab) push(page *model.Page) {
	t.entries = append(t.entries[:t.index+1], page)
	t.index = len(t.entries) - 1
}

// replace swaps the page at the current position.
func (t *tab) replace(page *model.Page) {
	if t.index < 0 {
		t.push(page)
		return
	}
	t.entries[t.index] = page
}

func (t *tab) canGoBack() bool    { return t.index > 0 }
func (t *tab) canGoForward() bool { return t.index < len(t.entries)-1 }

// TabInfo describes an open tab.
type TabInfo struct {
	Index   int
	URL     string
	Title   string
	Current bool
}

func (t *tab) info(index int, current bool) TabInfo {
	ti := TabInfo{Index: index, Title: NewTabTitle, Current: current}
	if page := t.current(); page != nil {
		ti.URL = page.URL
		ti.Title = page.DisplayTitle()
	}
	return ti
}
