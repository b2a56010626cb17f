package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"alvares/internal/constants"
)

type Storage struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS personnel (
    pib TEXT PRIMARY KEY,
    rank TEXT NOT NULL DEFAULT '',
    position TEXT NOT NULL DEFAULT '',
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS roles (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT UNIQUE NOT NULL
);

CREATE TABLE IF NOT EXISTS personnel_roles (
    pib TEXT PRIMARY KEY,
    role_id INTEGER,
    FOREIGN KEY (pib) REFERENCES personnel(pib) ON DELETE CASCADE,
    FOREIGN KEY (role_id) REFERENCES roles(id) ON DELETE SET NULL
);
`

func New(path string) (*Storage, error) {
	const op = "storage.sqlite.New"

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// один файл, один писач
	db.SetMaxOpenConns(1)

	return &Storage{db: db}, nil
}

// Init creates the schema and the role catalog. Safe to call on every start.
func (s *Storage) Init(ctx context.Context) error {
	const op = "storage.sqlite.Init"

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%s: помилка створення схеми: %w", op, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO roles (name) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("%s: prepare: %w", op, err)
	}
	defer stmt.Close()

	for _, name := range constants.DefaultRoles {
		if _, err := stmt.ExecContext(ctx, name); err != nil {
			return fmt.Errorf("%s: роль %q: %w", op, name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
