package model

import "testing"

func TestBookmarksAdd(t *testing.T) {
	t.Parallel()

	t.Run("appends a new bookmark", func(t *testing.T) {
		t.Parallel()

		var b Bookmarks
		b, added := b.Add("https://example.com", "Example")
		if !added {
			t.Fatal("expected bookmark to be added")
		}
		if len(b) != 1 || b[0].URL != "https://example.com" || b[0].Title != "Example" {
			t.Errorf("unexpected bookmarks: %+v", b)
		}
	})

	t.Run("adding to the same base twice keeps both results intact", func(t *testing.T) {
		t.Parallel()

		base := make(Bookmarks, 1, 8)
		base[0] = Bookmark{URL: "https://a.example", Title: "A"}

		left, _ := base.Add("https://b.example", "B")
		right, _ := base.Add("https://c.example", "C")

		if len(left) != 2 || left[1].URL != "https://b.example" {
			t.Errorf("unexpected left result: %+v", left)
		}
		if len(right) != 2 || right[1].URL != "https://c.example" {
			t.Errorf("unexpected right result: %+v", right)
		}
	})

	t.Run("same URL twice keeps exactly one record", func(t *testing.T) {
		t.Parallel()

		var b Bookmarks
		b, _ = b.Add("https://example.com", "Example")
		b, added := b.Add("https://example.com", "Other title")
		if added {
			t.Error("expected duplicate to be rejected")
		}
		if len(b) != 1 {
			t.Fatalf("expected 1 bookmark, got %d", len(b))
		}
		if b[0].Title != "Example" {
			t.Errorf("expected original title to be kept, got %q", b[0].Title)
		}
	})

	t.Run("URLs are compared byte for byte", func(t *testing.T) {
		t.Parallel()

		var b Bookmarks
		b, _ = b.Add("https://example.com", "a")
		b, added := b.Add("https://example.com/", "b")
		if !added {
			t.Error("expected trailing slash variant to be a different bookmark")
		}
		if len(b) != 2 {
			t.Errorf("expected 2 bookmarks, got %d", len(b))
		}
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		t.Parallel()

		var b Bookmarks
		for _, u := range []string{"c", "a", "b"} {
			b, _ = b.Add(u, u)
		}
		for i, want := range []string{"c", "a", "b"} {
			if b[i].URL != want {
				t.Errorf("index %d: got %q, expected %q", i, b[i].URL, want)
			}
		}
	})
}

func TestBookmarksRemove(t *testing.T) {
	t.Parallel()

	t.Run("removes the matching bookmark", func(t *testing.T) {
		t.Parallel()

		b := Bookmarks{{URL: "a"}, {URL: "b"}, {URL: "c"}}
		b, removed := b.Remove("b")
		if !removed {
			t.Error("expected removal")
		}
		if len(b) != 2 || b[0].URL != "a" || b[1].URL != "c" {
			t.Errorf("unexpected bookmarks: %+v", b)
		}
	})

	t.Run("removing a non-existent URL is a no-op", func(t *testing.T) {
		t.Parallel()

		b := Bookmarks{{URL: "a"}}
		b, removed := b.Remove("missing")
		if removed {
			t.Error("expected no removal")
		}
		if len(b) != 1 {
			t.Errorf("expected 1 bookmark, got %d", len(b))
		}
	})

	t.Run("does not modify the receiver", func(t *testing.T) {
		t.Parallel()

		orig := Bookmarks{{URL: "a"}, {URL: "b"}}
		_, _ = orig.Remove("a")
		if orig[0].URL != "a" || orig[1].URL != "b" {
			t.Errorf("receiver was modified: %+v", orig)
		}
	})
}

func TestBookmarksClone(t *testing.T) {
	t.Parallel()

	orig := Bookmarks{{URL: "a", Title: "A"}}
	c := orig.Clone()
	c[0].Title = "changed"

	if orig[0].Title != "A" {
		t.Error("clone shares backing array with original")
	}
	if got := Bookmarks(nil).Clone(); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil clone of nil, got %#v", got)
	}
}
