package export

import (
	"fmt"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
	"github.com/lixm/gokao/internal/record"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS session_logs (
	id TEXT NOT NULL,
	date TEXT NOT NULL,
	timestamp INTEGER NOT NULL,
	category TEXT NOT NULL,
	total INTEGER NOT NULL,
	correct INTEGER NOT NULL,
	duration INTEGER NOT NULL,
	PRIMARY KEY (id, category)
);
CREATE TABLE IF NOT EXISTS review_notes (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	timestamp INTEGER NOT NULL,
	content TEXT NOT NULL
);
`

// SQLite archives the logs and notes into a standalone SQLite database,
// one row per log and category so the archive can be queried without
// unpacking the category mapping.
func SQLite(path string, logs []record.SessionLog, notes []record.ReviewNote) error {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return fmt.Errorf("sqlx.Connect(%s) > %w", path, err)
	}
	defer func() {
		_ = db.Close()
	}()

	if _, err := db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("db.Exec(schema) > %w", err)
	}

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("db.Beginx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, log := range logs {
		for _, c := range record.Categories {
			qr := log.Categories[c]
			if _, err := tx.Exec(
				`INSERT OR REPLACE INTO session_logs (id, date, timestamp, category, total, correct, duration)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				log.ID, log.Date, log.Timestamp, string(c), qr.Total, qr.Correct, qr.Duration,
			); err != nil {
				return fmt.Errorf("tx.Exec(insert session_log) > %w", err)
			}
		}
	}

	for _, note := range notes {
		if _, err := tx.Exec(
			"INSERT OR REPLACE INTO review_notes (id, date, timestamp, content) VALUES (?, ?, ?, ?)",
			note.ID, note.Date, note.Timestamp, note.Content,
		); err != nil {
			return fmt.Errorf("tx.Exec(insert review_note) > %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}
