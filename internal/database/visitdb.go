package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver
)

// FileName is the journal database file inside the data directory.
const FileName = "journal.db"

// Visit events.
const (
	// EventLoad is recorded when a page finishes loading.
	EventLoad = "load"
	// EventError is recorded when a page fails to load.
	EventError = "error"
)

// Visit is one journal row.
type Visit struct {
	ID        int64
	SessionID string
	Input     string
	URL       string
	Title     string
	Event     string
	Timestamp time.Time
}

// VisitDB stores visits in SQLite. Every VisitDB gets its own session ID.
type VisitDB struct {
	db        *sql.DB
	dbPath    string
	sessionID string
}

// Options configures VisitDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the journal in dbDir.
func Open(dbDir string, opts Options) (*VisitDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	vdb := &VisitDB{
		db:        db,
		dbPath:    dbPath,
		sessionID: uuid.NewString(),
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := vdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return vdb, nil
}

// Close closes the database connection.
func (vdb *VisitDB) Close() error {
	return vdb.db.Close()
}

// Path returns the database file path.
func (vdb *VisitDB) Path() string {
	return vdb.dbPath
}

// SessionID returns the ID stamped on visits recorded through this VisitDB.
func (vdb *VisitDB) SessionID() string {
	return vdb.sessionID
}

func (vdb *VisitDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS visits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		input TEXT,
		url TEXT NOT NULL,
		title TEXT,
		event TEXT NOT NULL,
		timestamp TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_visits_url ON visits(url);
	CREATE INDEX IF NOT EXISTS idx_visits_session ON visits(session_id);
	`

	_, err := vdb.db.ExecContext(context.Background(), schema)
	return err
}

// RecordVisit stores v. An empty SessionID is filled with the VisitDB's
// session, a zero Timestamp with the current time and an empty Event
// with EventLoad.
func (vdb *VisitDB) RecordVisit(ctx context.Context, v Visit) (int64, error) {
	if v.SessionID == "" {
		v.SessionID = vdb.sessionID
	}
	if v.Timestamp.IsZero() {
		v.Timestamp = time.Now()
	}
	if v.Event == "" {
		v.Event = EventLoad
	}

	query := `
	INSERT INTO visits (session_id, input, url, title, event, timestamp)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := vdb.db.ExecContext(ctx, query,
		v.SessionID,
		v.Input,
		v.URL,
		v.Title,
		v.Event,
		v.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record visit: %w", err)
	}

	return result.LastInsertId()
}

// RecentVisits returns up to limit visits, most recent first.
func (vdb *VisitDB) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	query := `
	SELECT id, session_id, input, url, title, event, timestamp
	FROM visits
	ORDER BY id DESC
	LIMIT ?
	`
	return vdb.queryVisits(ctx, query, limit)
}

// SearchVisits returns up to limit visits whose URL, title or input
// contains term, most recent first. Matching is case-insensitive for ASCII.
func (vdb *VisitDB) SearchVisits(ctx context.Context, term string, limit int) ([]Visit, error) {
	pattern := "%" + escapeLike(term) + "%"

	query := `
	SELECT id, session_id, input, url, title, event, timestamp
	FROM visits
	WHERE url LIKE ? ESCAPE '\' OR title LIKE ? ESCAPE '\' OR input LIKE ? ESCAPE '\'
	ORDER BY id DESC
	LIMIT ?
	`
	return vdb.queryVisits(ctx, query, pattern, pattern, pattern, limit)
}

// SessionVisits returns every visit of one session in recording order.
func (vdb *VisitDB) SessionVisits(ctx context.Context, sessionID string) ([]Visit, error) {
	query := `
	SELECT id, session_id, input, url, title, event, timestamp
	FROM visits
	WHERE session_id = ?
	ORDER BY id ASC
	`
	return vdb.queryVisits(ctx, query, sessionID)
}

// ClearVisits deletes every visit and returns how many were removed.
func (vdb *VisitDB) ClearVisits(ctx context.Context) (int64, error) {
	result, err := vdb.db.ExecContext(ctx, "DELETE FROM visits")
	if err != nil {
		return 0, fmt.Errorf("failed to clear visits: %w", err)
	}
	return result.RowsAffected()
}

func (vdb *VisitDB) queryVisits(ctx context.Context, query string, args ...any) ([]Visit, error) {
	rows, err := vdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	visits := make([]Visit, 0)
	for rows.Next() {
		var (
			v         Visit
			input     sql.NullString
			title     sql.NullString
			timestamp string
		)
		if err := rows.Scan(&v.ID, &v.SessionID, &input, &v.URL, &title, &v.Event, &timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		v.Input = input.String
		v.Title = title.String
		v.Timestamp = parseTimestamp(timestamp)
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate visits: %w", err)
	}
	return visits, nil
}

// escapeLike escapes the LIKE wildcards in s.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// timestampFormats lists the formats tried when reading timestamps.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
