package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/nikbrunner/diario/internal/model"
)

const currentSchemaVersion = 1

// Export identifies one Save into a SQLite database.
type Export struct {
	ID         string
	ExportedAt time.Time
}

// SQLiteStorage implements Storage using a SQLite database.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage opens (or creates) the database at path and migrates it.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) migrate() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema.
func (s *SQLiteStorage) migrateV1() error {
	schema := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS journal (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			title TEXT NOT NULL DEFAULT '',
			author TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL DEFAULT '',
			institution TEXT NOT NULL DEFAULT '',
			term TEXT NOT NULL DEFAULT '',
			footer TEXT NOT NULL DEFAULT '',
			export_id TEXT NOT NULL,
			exported_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY NOT NULL,
			title TEXT NOT NULL,
			subtitle TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '[]',
			status TEXT NOT NULL DEFAULT '',
			icon TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_entries_status ON entries(status);

		INSERT OR REPLACE INTO schema_version (version) VALUES (%d);
	`, currentSchemaVersion)
	_, err := s.db.Exec(schema)
	return err
}

// Load reads the journal from the database.
func (s *SQLiteStorage) Load() (*model.Journal, error) {
	journal := &model.Journal{Entries: []model.Entry{}}

	err := s.db.QueryRow(`
		SELECT title, author, role, institution, term, footer
		FROM journal WHERE id = 1
	`).Scan(
		&journal.Info.Title, &journal.Info.Author, &journal.Info.Role,
		&journal.Info.Institution, &journal.Info.Term, &journal.Info.Footer,
	)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT id, title, subtitle, description, content, tags, status, icon, color
		FROM entries
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e model.Entry
		var tagsJSON string
		var status string

		if err := rows.Scan(
			&e.ID, &e.Title, &e.Subtitle, &e.Description, &e.Content,
			&tagsJSON, &status, &e.Icon, &e.Color,
		); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(tagsJSON), &e.Tags); err != nil {
			return nil, fmt.Errorf("entry %d: decode tags: %w", e.ID, err)
		}
		e.Status = model.Status(status)

		journal.Entries = append(journal.Entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return journal, nil
}

// Save replaces the database contents with journal.
// Uses a transaction for atomicity - all or nothing.
func (s *SQLiteStorage) Save(journal *model.Journal) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM journal"); err != nil {
		return err
	}

	info := journal.Info
	if _, err := tx.Exec(`
		INSERT INTO journal (id, title, author, role, institution, term, footer, export_id, exported_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		info.Title, info.Author, info.Role, info.Institution, info.Term, info.Footer,
		uuid.New().String(), time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO entries (id, title, subtitle, description, content, tags, status, icon, color)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range journal.Entries {
		tags := e.Tags
		if tags == nil {
			tags = []string{}
		}
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return err
		}

		if _, err := stmt.Exec(
			e.ID, e.Title, e.Subtitle, e.Description, e.Content,
			string(tagsJSON), string(e.Status), e.Icon, e.Color,
		); err != nil {
			return fmt.Errorf("insert entry %d: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

// LastExport returns the id and time of the most recent Save.
func (s *SQLiteStorage) LastExport() (Export, error) {
	var export Export
	var exportedAt string

	err := s.db.QueryRow("SELECT export_id, exported_at FROM journal WHERE id = 1").
		Scan(&export.ID, &exportedAt)
	if err != nil {
		return Export{}, err
	}

	export.ExportedAt, err = time.Parse(time.RFC3339, exportedAt)
	if err != nil {
		return Export{}, fmt.Errorf("parse exported_at: %w", err)
	}

	return export, nil
}
