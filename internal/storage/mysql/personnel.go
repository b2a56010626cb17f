package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"alvares/internal/pib"
	"alvares/internal/storage"
)

// Код MySQL: порушення зовнішнього ключа при вставці
const errForeignKey = 1452

func (s *Storage) GetAllRoles(ctx context.Context) ([]storage.Role, error) {
	const op = "storage.mysql.GetAllRoles"

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM roles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var roles []storage.Role
	for rows.Next() {
		var r storage.Role
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		roles = append(roles, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: помилка при ітерації по рядках: %w", op, err)
	}

	return roles, nil
}

func (s *Storage) GetRoleByID(ctx context.Context, id int64) (storage.Role, error) {
	const op = "storage.mysql.GetRoleByID"

	var r storage.Role
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM roles WHERE id = ?`, id).Scan(&r.ID, &r.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Role{}, fmt.Errorf("%s: id=%d: %w", op, id, storage.ErrRoleNotFound)
	}
	if err != nil {
		return storage.Role{}, fmt.Errorf("%s: %w", op, err)
	}

	return r, nil
}

func (s *Storage) GetAllPersonnel(ctx context.Context) ([]storage.PersonWithRole, error) {
	const op = "storage.mysql.GetAllPersonnel"

	rows, err := s.db.QueryContext(ctx, "SELECT p.pib, p.`rank`, p.position, pr.role_id, r.name "+
		"FROM personnel p "+
		"LEFT JOIN personnel_roles pr ON p.pib = pr.pib "+
		"LEFT JOIN roles r ON pr.role_id = r.id "+
		"ORDER BY p.pib")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var personnel []storage.PersonWithRole
	for rows.Next() {
		var (
			p        storage.PersonWithRole
			roleID   sql.NullInt64
			roleName sql.NullString
		)
		if err := rows.Scan(&p.Pib, &p.Rank, &p.Position, &roleID, &roleName); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		if roleID.Valid && roleName.Valid {
			p.RoleID = &roleID.Int64
			p.RoleName = &roleName.String
		}
		personnel = append(personnel, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: помилка при ітерації по рядках: %w", op, err)
	}

	return personnel, nil
}

func (s *Storage) GetPersonnelByRole(ctx context.Context, roleID int64) ([]storage.Person, error) {
	const op = "storage.mysql.GetPersonnelByRole"

	rows, err := s.db.QueryContext(ctx, "SELECT p.pib, p.`rank`, p.position "+
		"FROM personnel p "+
		"JOIN personnel_roles pr ON p.pib = pr.pib "+
		"WHERE pr.role_id = ? "+
		"ORDER BY p.pib", roleID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var personnel []storage.Person
	for rows.Next() {
		var p storage.Person
		if err := rows.Scan(&p.Pib, &p.Rank, &p.Position); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		personnel = append(personnel, p)
	}

	return personnel, rows.Err()
}

func (s *Storage) UpsertPersonnelBatch(ctx context.Context, personnel []storage.Person) (int, error) {
	const op = "storage.mysql.UpsertPersonnelBatch"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: не вдалося почати транзакцію: %w", op, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO personnel (pib, `rank`, position) VALUES (?, ?, ?) "+
		"ON DUPLICATE KEY UPDATE "+
		"`rank` = VALUES(`rank`), "+
		"position = VALUES(position), "+
		"updated_at = CURRENT_TIMESTAMP")
	if err != nil {
		return 0, fmt.Errorf("%s: не вдалося підготувати запит: %w", op, err)
	}
	defer stmt.Close()

	count := 0
	for _, p := range personnel {
		name := pib.Normalize(p.Pib)
		if name == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, name, pib.Normalize(p.Rank), pib.Normalize(p.Position)); err != nil {
			return 0, fmt.Errorf("%s: %q: %w", op, name, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: помилка коміту транзакції: %w", op, err)
	}

	return count, nil
}

func (s *Storage) SetPersonnelRole(ctx context.Context, name string, roleID *int64) error {
	const op = "storage.mysql.SetPersonnelRole"

	name = pib.Normalize(name)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: не вдалося почати транзакцію: %w", op, err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM personnel WHERE pib = ?`, name).Scan(&exists); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if exists == 0 {
		return fmt.Errorf("%s: %q: %w", op, name, storage.ErrPersonNotFound)
	}

	if roleID == nil {
		_, err = tx.ExecContext(ctx, `DELETE FROM personnel_roles WHERE pib = ?`, name)
	} else {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO personnel_roles (pib, role_id) VALUES (?, ?)
			ON DUPLICATE KEY UPDATE role_id = VALUES(role_id)
		`, name, *roleID)
	}
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == errForeignKey {
			return fmt.Errorf("%s: id=%d: %w", op, *roleID, storage.ErrRoleNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: помилка коміту транзакції: %w", op, err)
	}

	return nil
}
