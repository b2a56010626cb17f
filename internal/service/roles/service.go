// Package roles keeps the person -> role assignment used by the BR roster.
package roles

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"alvares/internal/apperr"
	"alvares/internal/grid"
	"alvares/internal/pib"
	"alvares/internal/service/attendance"
	"alvares/internal/storage"
)

type RoleStorage interface {
	GetAllRoles(ctx context.Context) ([]storage.Role, error)
	GetAllPersonnel(ctx context.Context) ([]storage.PersonWithRole, error)
	UpsertPersonnelBatch(ctx context.Context, personnel []storage.Person) (int, error)
	SetPersonnelRole(ctx context.Context, name string, roleID *int64) error
}

type MonthReader interface {
	ReadMonth(book grid.Workbook, sheetName string) ([]attendance.Soldier, error)
}

type Service struct {
	log       *slog.Logger
	storage   RoleStorage
	reader    MonthReader
	open      grid.Opener
	tabelPath string
}

func NewService(log *slog.Logger, storage RoleStorage, reader MonthReader, open grid.Opener, tabelPath string) *Service {
	return &Service{
		log:       log,
		storage:   storage,
		reader:    reader,
		open:      open,
		tabelPath: tabelPath,
	}
}

func (s *Service) ListRoles(ctx context.Context) ([]storage.Role, error) {
	const op = "roles.ListRoles"

	roles, err := s.storage.GetAllRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return roles, nil
}

// ListPersonnel returns personnel with roles in Ukrainian name order.
func (s *Service) ListPersonnel(ctx context.Context) ([]storage.PersonWithRole, error) {
	const op = "roles.ListPersonnel"

	personnel, err := s.storage.GetAllPersonnel(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pib.SortBy(personnel, func(p storage.PersonWithRole) string { return p.Pib })
	return personnel, nil
}

// ImportPersonnel upserts (pib, rank, position) of every row of a tabel month sheet.
func (s *Service) ImportPersonnel(ctx context.Context, sheetName string) (int, error) {
	const op = "roles.ImportPersonnel"

	book, err := s.open(s.tabelPath)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer book.Close()

	soldiers, err := s.reader.ReadMonth(book, sheetName)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	records := make([]storage.Person, 0, len(soldiers))
	for _, sd := range soldiers {
		records = append(records, storage.Person{Pib: sd.Pib, Rank: sd.Rank, Position: sd.Position})
	}
	if len(records) == 0 {
		return 0, nil
	}

	n, err := s.storage.UpsertPersonnelBatch(ctx, records)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("особовий склад імпортовано", slog.String("sheet", sheetName), slog.Int("count", n))
	return n, nil
}

// AutoAssignAll assigns a role to every person that has none. Existing
// assignments are never touched. Returns counts per role name.
func (s *Service) AutoAssignAll(ctx context.Context) (map[string]int, error) {
	const op = "roles.AutoAssignAll"

	roles, err := s.storage.GetAllRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	roleIDs := make(map[string]int64, len(roles))
	for _, r := range roles {
		roleIDs[r.Name] = r.ID
	}

	personnel, err := s.storage.GetAllPersonnel(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stats := make(map[string]int)
	for _, p := range personnel {
		if p.HasRole() {
			continue
		}

		roleName, ok := AutoClassifyRole(p.Position)
		if !ok {
			continue
		}

		id, ok := roleIDs[roleName]
		if !ok {
			s.log.Error("роль відсутня в каталозі", slog.String("role", roleName))
			continue
		}

		if err := s.storage.SetPersonnelRole(ctx, p.Pib, &id); err != nil {
			return stats, fmt.Errorf("%s: %s: %w", op, p.Pib, err)
		}
		stats[roleName]++
	}

	return stats, nil
}

// SetRole assigns roleID to a person or clears the role when roleID is nil.
func (s *Service) SetRole(ctx context.Context, name string, roleID *int64) error {
	const op = "roles.SetRole"

	err := s.storage.SetPersonnelRole(ctx, name, roleID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrRoleNotFound) && roleID != nil:
		return fmt.Errorf("%s: %w", op, apperr.NewLookup("роль", strconv.FormatInt(*roleID, 10)))
	case errors.Is(err, storage.ErrPersonNotFound):
		return fmt.Errorf("%s: %w", op, apperr.NewLookup("особа", name))
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
