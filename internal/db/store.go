package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// MemoryPath keeps the activity log in process memory.
const MemoryPath = ":memory:"

const schema = `
	CREATE TABLE IF NOT EXISTS activity (
		id TEXT PRIMARY KEY,
		sessionId TEXT NOT NULL,
		username TEXT NOT NULL DEFAULT '',
		kind TEXT NOT NULL,
		action TEXT NOT NULL DEFAULT '',
		fromState TEXT NOT NULL DEFAULT '',
		toState TEXT NOT NULL DEFAULT '',
		applied INTEGER NOT NULL DEFAULT 0,
		detail TEXT NOT NULL DEFAULT '',
		createdAt REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS activity_session ON activity(sessionId, createdAt);
`

// Store records console activity in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the activity database at path and applies the
// schema. Use MemoryPath for a log that lives only as long as the process.
func Open(path string) (*Store, error) {
	dsn := path
	if path != MemoryPath {
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", path)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Every pooled connection to :memory: would get its own empty database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts an activity row. A missing ID or timestamp is filled in.
func (s *Store) Record(ctx context.Context, a Activity) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO activity (id, sessionId, username, kind, action, fromState, toState, applied, detail, createdAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.SessionID, a.Username, a.Kind, a.Action, a.FromState, a.ToState,
		a.Applied, a.Detail, unixFromTime(a.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ForSession returns the newest limit activity rows for a session, newest
// first. A limit of zero or less returns every row.
func (s *Store) ForSession(ctx context.Context, sessionID string, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sessionId, username, kind, action, fromState, toState, applied, detail, createdAt
		FROM activity
		WHERE sessionId = ?
		ORDER BY createdAt DESC, rowid DESC
		LIMIT ?
	`, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	defer rows.Close()

	var out []Activity
	for rows.Next() {
		var a Activity
		var createdAt float64
		if err := rows.Scan(&a.ID, &a.SessionID, &a.Username, &a.Kind, &a.Action,
			&a.FromState, &a.ToState, &a.Applied, &a.Detail, &createdAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.CreatedAt = timeFromUnix(createdAt)
		out = append(out, a)
	}
	return out, rows.Err()
}

// Count returns the number of rows recorded for a session.
func (s *Store) Count(ctx context.Context, sessionID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM activity WHERE sessionId = ?`, sessionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count activity: %w", err)
	}
	return n, nil
}

func unixFromTime(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

func timeFromUnix(ts float64) time.Time {
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}
