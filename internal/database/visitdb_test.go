package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

// setupTestDB creates a temporary database for testing.
func setupTestDB(t *testing.T) *VisitDB {
	t.Helper()

	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database in new directory", func(t *testing.T) {
		t.Parallel()

		dbDir := filepath.Join(t.TempDir(), "newdir", "subdir")
		db, err := Open(dbDir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if _, err := os.Stat(filepath.Join(dbDir, FileName)); os.IsNotExist(err) {
			t.Error("database file was not created")
		}
		if db.Path() != filepath.Join(dbDir, FileName) {
			t.Errorf("unexpected path %s", db.Path())
		}
	})

	t.Run("CreateIfNotExists=false returns error when database does not exist", func(t *testing.T) {
		t.Parallel()

		_, err := Open(filepath.Join(t.TempDir(), "missing"), Options{CreateIfNotExists: false})
		if err == nil {
			t.Error("expected error for missing database")
		}
	})

	t.Run("CreateIfNotExists=false opens an existing database", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		first, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		_ = first.Close()

		db, err := Open(dir, Options{CreateIfNotExists: false, EnableWAL: true})
		if err != nil {
			t.Fatalf("failed to reopen database: %v", err)
		}
		_ = db.Close()
	})

	t.Run("each open gets a new session ID", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		a, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer a.Close()
		b, err := Open(filepath.Join(dir, "other"), DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer b.Close()

		if _, err := uuid.Parse(a.SessionID()); err != nil {
			t.Errorf("session ID should be a UUID: %v", err)
		}
		if a.SessionID() == b.SessionID() {
			t.Error("session IDs should differ")
		}
	})
}

func TestVisitDB_RecordAndRecent(t *testing.T) {
	t.Parallel()

	t.Run("recorded visits come back most recent first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()

		for _, u := range []string{"https://a.example", "https://b.example", "https://c.example"} {
			if _, err := db.RecordVisit(ctx, Visit{URL: u, Title: "T " + u}); err != nil {
				t.Fatalf("failed to record visit: %v", err)
			}
		}

		visits, err := db.RecentVisits(ctx, 2)
		if err != nil {
			t.Fatalf("failed to list visits: %v", err)
		}
		if len(visits) != 2 {
			t.Fatalf("expected 2 visits, got %d", len(visits))
		}
		if visits[0].URL != "https://c.example" || visits[1].URL != "https://b.example" {
			t.Errorf("unexpected order: %s, %s", visits[0].URL, visits[1].URL)
		}
	})

	t.Run("defaults are filled in", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		before := time.Now().Add(-time.Second)

		if _, err := db.RecordVisit(ctx, Visit{Input: "example.com", URL: "https://example.com"}); err != nil {
			t.Fatalf("failed to record visit: %v", err)
		}

		visits, err := db.RecentVisits(ctx, 1)
		if err != nil {
			t.Fatalf("failed to list visits: %v", err)
		}
		v := visits[0]
		if v.SessionID != db.SessionID() {
			t.Errorf("expected session %s, got %s", db.SessionID(), v.SessionID)
		}
		if v.Event != EventLoad {
			t.Errorf("expected event %s, got %s", EventLoad, v.Event)
		}
		if v.Input != "example.com" {
			t.Errorf("unexpected input %q", v.Input)
		}
		if v.Timestamp.Before(before) {
			t.Errorf("timestamp %v should be recent", v.Timestamp)
		}
	})

	t.Run("explicit fields are kept", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		if _, err := db.RecordVisit(ctx, Visit{
			SessionID: "custom",
			URL:       "https://down.example",
			Event:     EventError,
			Timestamp: ts,
		}); err != nil {
			t.Fatalf("failed to record visit: %v", err)
		}

		visits, err := db.SessionVisits(ctx, "custom")
		if err != nil {
			t.Fatalf("failed to list visits: %v", err)
		}
		if len(visits) != 1 || visits[0].Event != EventError || !visits[0].Timestamp.Equal(ts) {
			t.Errorf("unexpected visits %+v", visits)
		}
	})
}

func TestVisitDB_SearchVisits(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()
	records := []Visit{
		{Input: "golang", URL: "https://www.google.com/search?q=golang", Title: "golang - Search"},
		{Input: "example.com", URL: "https://example.com", Title: "Example Domain"},
		{Input: "100%", URL: "https://percent.example", Title: "Percent"},
		{Input: "snake", URL: "https://snake_case.example", Title: "Snake"},
	}
	for _, r := range records {
		if _, err := db.RecordVisit(ctx, r); err != nil {
			t.Fatalf("failed to record visit: %v", err)
		}
	}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"matches URL", "example.com", []string{"https://example.com"}},
		{"matches title case-insensitively", "example domain", []string{"https://example.com"}},
		{"matches input", "golang", []string{"https://www.google.com/search?q=golang"}},
		{"percent is literal", "%", []string{"https://percent.example"}},
		{"underscore is literal", "_", []string{"https://snake_case.example"}},
		{"no match", "nothing-here", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			visits, err := db.SearchVisits(ctx, tt.term, 10)
			if err != nil {
				t.Fatalf("search failed: %v", err)
			}
			if len(visits) != len(tt.want) {
				t.Fatalf("expected %d visits, got %d", len(tt.want), len(visits))
			}
			for i := range tt.want {
				if visits[i].URL != tt.want[i] {
					t.Errorf("index %d: got %s, want %s", i, visits[i].URL, tt.want[i])
				}
			}
		})
	}
}

func TestVisitDB_ClearVisits(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()
	for range 3 {
		if _, err := db.RecordVisit(ctx, Visit{URL: "https://example.com"}); err != nil {
			t.Fatalf("failed to record visit: %v", err)
		}
	}

	n, err := db.ClearVisits(ctx)
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 removed, got %d", n)
	}
	visits, err := db.RecentVisits(ctx, 10)
	if err != nil {
		t.Fatalf("failed to list visits: %v", err)
	}
	if len(visits) != 0 {
		t.Errorf("expected no visits, got %d", len(visits))
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	if parseTimestamp("2024-01-02 03:04:05").IsZero() {
		t.Error("SQLite datetime format should parse")
	}
	if !parseTimestamp("garbage").IsZero() {
		t.Error("garbage should produce zero time")
	}
}
