package prefs

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DBFileName is the sqlite database name inside the data directory.
const DBFileName = "preferences.db"

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

const fontKey = "font"

// SQLitePersister stores preferences as key/value rows in sqlite.
type SQLitePersister struct {
	conn *sql.DB
}

// OpenSQLite opens (creating if needed) <dir>/preferences.db.
func OpenSQLite(dir string) (*SQLitePersister, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	conn, err := sql.Open("sqlite", filepath.Join(dir, DBFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single writer; keeps the pool from growing in the long-running TUI
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLitePersister{conn: conn}, nil
}

// Close closes the database.
func (p *SQLitePersister) Close() error {
	return p.conn.Close()
}

func (p *SQLitePersister) Load() (Preferences, error) {
	prefs := Defaults()

	var font string
	err := p.conn.QueryRow(`SELECT value FROM preferences WHERE key = ?`, fontKey).Scan(&font)
	if err == sql.ErrNoRows {
		return prefs, nil
	}
	if err != nil {
		return Preferences{}, err
	}

	prefs.Font = font
	return prefs, nil
}

func (p *SQLitePersister) Save(prefs Preferences) error {
	_, err := p.conn.Exec(`
		INSERT OR REPLACE INTO preferences (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
	`, fontKey, prefs.Font)
	return err
}
