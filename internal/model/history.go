package model

import "slices"

// MaxHistorySize is the number of entries kept in the visit history.
// When a new entry would exceed it, the oldest entry is evicted.
const MaxHistorySize = 100

// History is the visit list, oldest first and most recent last.
type History []string

// Last returns the most recent entry, or "" for an empty history.
func (h History) Last() string {
	if len(h) == 0 {
		return ""
	}
	return h[len(h)-1]
}

// Add returns the history with url appended.
// Nothing is appended when url equals the most recent entry (added is false).
// If the result would exceed MaxHistorySize the oldest entries are dropped.
// The receiver is never modified.
func (h History) Add(url string) (result History, added bool) {
	if len(h) > 0 && h[len(h)-1] == url {
		return h, false
	}

	return append(slices.Clip(h), url).Trim(), true
}

// Trim returns the most recent MaxHistorySize entries. A history within
// the limit is returned as is.
func (h History) Trim() History {
	if len(h) <= MaxHistorySize {
		return h
	}
	trimmed := make(History, MaxHistorySize)
	copy(trimmed, h[len(h)-MaxHistorySize:])
	return trimmed
}

// Clone returns a copy that does not share the backing array.
func (h History) Clone() History {
	if h == nil {
		return History{}
	}
	out := make(History, len(h))
	copy(out, h)
	return out
}
