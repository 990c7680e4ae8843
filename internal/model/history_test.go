package model

import (
	"fmt"
	"testing"
)

func TestHistoryAdd(t *testing.T) {
	t.Parallel()

	t.Run("appends in visit order", func(t *testing.T) {
		t.Parallel()

		var h History
		h, _ = h.Add("a")
		h, _ = h.Add("b")

		if len(h) != 2 || h[0] != "a" || h.Last() != "b" {
			t.Errorf("unexpected history: %v", h)
		}
	})

	t.Run("adding to the same base twice keeps both results intact", func(t *testing.T) {
		t.Parallel()

		base := make(History, 1, 8)
		base[0] = "a"

		left, _ := base.Add("b")
		right, _ := base.Add("c")

		if left.Last() != "b" || right.Last() != "c" {
			t.Errorf("results share storage: left=%v right=%v", left, right)
		}
		if len(base) != 1 || base[0] != "a" {
			t.Errorf("expected base unchanged, got %v", base)
		}
	})

	t.Run("same URL twice consecutively results in one entry", func(t *testing.T) {
		t.Parallel()

		var h History
		h, _ = h.Add("https://example.com")
		h, added := h.Add("https://example.com")

		if added {
			t.Error("expected consecutive duplicate to be suppressed")
		}
		if len(h) != 1 {
			t.Errorf("expected 1 entry, got %d", len(h))
		}
	})

	t.Run("non-consecutive duplicates are kept", func(t *testing.T) {
		t.Parallel()

		var h History
		for _, u := range []string{"a", "b", "a"} {
			h, _ = h.Add(u)
		}
		if len(h) != 3 {
			t.Errorf("expected 3 entries, got %d", len(h))
		}
	})

	t.Run("101st distinct entry evicts the oldest", func(t *testing.T) {
		t.Parallel()

		var h History
		for i := 0; i <= MaxHistorySize; i++ {
			h, _ = h.Add(fmt.Sprintf("https://example.com/%d", i))
		}

		if len(h) != MaxHistorySize {
			t.Fatalf("expected %d entries, got %d", MaxHistorySize, len(h))
		}
		if h[0] != "https://example.com/1" {
			t.Errorf("expected oldest entry to be evicted, first is %q", h[0])
		}
		if h.Last() != fmt.Sprintf("https://example.com/%d", MaxHistorySize) {
			t.Errorf("unexpected last entry %q", h.Last())
		}
	})
}

func TestHistoryLast(t *testing.T) {
	t.Parallel()

	if got := History(nil).Last(); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestHistoryTrim(t *testing.T) {
	t.Parallel()

	t.Run("within the limit is unchanged", func(t *testing.T) {
		t.Parallel()

		h := History{"a", "b"}
		if got := h.Trim(); len(got) != 2 || got[0] != "a" {
			t.Errorf("unexpected trim result %v", got)
		}
	})

	t.Run("keeps the most recent entries", func(t *testing.T) {
		t.Parallel()

		var h History
		for i := range MaxHistorySize + 5 {
			h = append(h, fmt.Sprintf("u%d", i))
		}
		got := h.Trim()
		if len(got) != MaxHistorySize || got[0] != "u5" || got.Last() != fmt.Sprintf("u%d", MaxHistorySize+4) {
			t.Errorf("unexpected trim result: first=%q last=%q len=%d", got[0], got.Last(), len(got))
		}
	})
}
