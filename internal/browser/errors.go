package browser

import "errors"

var (
	// ErrTabIndex is returned for a tab index outside the open tabs.
	ErrTabIndex = errors.New("tab index out of range")

	// ErrNoPage is returned when the current tab has nothing loaded.
	ErrNoPage = errors.New("no page loaded in the current tab")
)
