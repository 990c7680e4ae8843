package model

import "slices"

// Bookmark is a single user-saved page.
// It is stored on disk as {"url": ..., "title": ...}.
type Bookmark struct {
	// URL is the bookmarked address. It is compared byte for byte;
	// no normalization is applied.
	URL string `json:"url"`

	// Title is the page title at the time the bookmark was created.
	Title string `json:"title"`
}

// Bookmarks is an ordered list of bookmarks.
// Insertion order is preserved and at most one entry exists per URL.
type Bookmarks []Bookmark

// Contains reports whether a bookmark with exactly this URL exists.
func (b Bookmarks) Contains(url string) bool {
	for _, bm := range b {
		if bm.URL == url {
			return true
		}
	}
	return false
}

// Add returns the list with a new bookmark appended.
// If the URL is already bookmarked the list is returned unchanged and
// added is false. The receiver is never modified.
func (b Bookmarks) Add(url, title string) (result Bookmarks, added bool) {
	if b.Contains(url) {
		return b, false
	}
	return append(slices.Clip(b), Bookmark{URL: url, Title: title}), true
}

// Remove returns a new list without the bookmark for url.
// Removing a URL that is not bookmarked is not an error; removed is false.
func (b Bookmarks) Remove(url string) (result Bookmarks, removed bool) {
	result = make(Bookmarks, 0, len(b))
	for _, bm := range b {
		if bm.URL == url {
			removed = true
			continue
		}
		result = append(result, bm)
	}
	return result, removed
}

// Clone returns a copy that does not share the backing array.
func (b Bookmarks) Clone() Bookmarks {
	if b == nil {
		return Bookmarks{}
	}
	out := make(Bookmarks, len(b))
	copy(out, b)
	return out
}
