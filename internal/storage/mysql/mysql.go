package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"alvares/internal/config"
	"alvares/internal/constants"
)

type Storage struct {
	db *sql.DB
}

func New(cfg config.Storage) (*Storage, error) {
	const op = "storage.mysql.New"

	dsn := mysql.NewConfig()
	dsn.User = cfg.DBUser
	dsn.Passwd = cfg.DBPassword
	dsn.Net = "tcp"
	dsn.Addr = fmt.Sprintf("%s:%d", cfg.DBHost, cfg.DBPort)
	dsn.DBName = cfg.DBName
	dsn.ParseTime = true

	db, err := sql.Open("mysql", dsn.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// NewWithDB wraps an already opened connection pool.
func NewWithDB(db *sql.DB) *Storage {
	return &Storage{db: db}
}

var schema = []string{
	"CREATE TABLE IF NOT EXISTS personnel (" +
		"pib VARCHAR(255) NOT NULL PRIMARY KEY," +
		"`rank` VARCHAR(255) NOT NULL DEFAULT ''," +
		"position VARCHAR(512) NOT NULL DEFAULT ''," +
		"updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
	"CREATE TABLE IF NOT EXISTS roles (" +
		"id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY," +
		"name VARCHAR(255) NOT NULL UNIQUE" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
	"CREATE TABLE IF NOT EXISTS personnel_roles (" +
		"pib VARCHAR(255) NOT NULL PRIMARY KEY," +
		"role_id BIGINT NULL," +
		"FOREIGN KEY (pib) REFERENCES personnel(pib) ON DELETE CASCADE," +
		"FOREIGN KEY (role_id) REFERENCES roles(id) ON DELETE SET NULL" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
}

// Init creates the schema and the role catalog. Safe to call on every start.
func (s *Storage) Init(ctx context.Context) error {
	const op = "storage.mysql.Init"

	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: помилка створення схеми: %w", op, err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT IGNORE INTO roles (name) VALUES (?)`)
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
