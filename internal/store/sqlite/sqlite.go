package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/classchat/classchat-server/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS transcript (
	id      TEXT PRIMARY KEY,
	kind    TEXT NOT NULL,
	target  TEXT NOT NULL,
	body    TEXT NOT NULL,
	sent_at TIMESTAMP NOT NULL
);
`

// Archive implements store.Archive on a local SQLite file.
type Archive struct {
	db *sql.DB
}

// New opens (or creates) the archive database at dbPath.
func New(dbPath string) (*Archive, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &Archive{db: db}, nil
}

// Record inserts one transcript entry.
func (a *Archive) Record(ctx context.Context, e store.Entry) error {
	query := `
		INSERT INTO transcript (id, kind, target, body, sent_at)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := a.db.ExecContext(ctx, query, e.ID, e.Kind, e.Target, e.Text, e.SentAt); err != nil {
		return fmt.Errorf("insert transcript entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (a *Archive) Recent(ctx context.Context, limit int) ([]store.Entry, error) {
	query := `
		SELECT id, kind, target, body, sent_at
		FROM transcript
		ORDER BY sent_at DESC, id
		LIMIT ?
	`
	rows, err := a.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query transcript: %w", err)
	}
	defer rows.Close()

	var out []store.Entry
	for rows.Next() {
		var e store.Entry
		var sentAt time.Time
		if err := rows.Scan(&e.ID, &e.Kind, &e.Target, &e.Text, &sentAt); err != nil {
			return nil, fmt.Errorf("scan transcript entry: %w", err)
		}
		e.SentAt = sentAt
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transcript: %w", err)
	}
	return out, nil
}

// Close closes the database connection.
func (a *Archive) Close() error {
	return a.db.Close()
}
