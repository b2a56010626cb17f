// Package roster builds the BR composition for a date and renders BR
// documents for a range of dates.
package roster

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"alvares/internal/apperr"
	"alvares/internal/calendar"
	"alvares/internal/grid"
	"alvares/internal/service/attendance"
	"alvares/internal/storage"
)

type PersonnelStorage interface {
	GetAllRoles(ctx context.Context) ([]storage.Role, error)
	GetAllPersonnel(ctx context.Context) ([]storage.PersonWithRole, error)
}

type DayReader interface {
	ReadDay(book grid.Workbook, date time.Time) ([]attendance.DayEntry, error)
}

// Renderer writes one BR document and returns its path.
type Renderer interface {
	Render(ctx context.Context, c *Composition) (string, error)
}

type Service struct {
	log       *slog.Logger
	storage   PersonnelStorage
	reader    DayReader
	renderer  Renderer
	open      grid.Opener
	tabelPath string
	workers   int
}

func NewService(log *slog.Logger, storage PersonnelStorage, reader DayReader, renderer Renderer, open grid.Opener, tabelPath string, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		log:       log,
		storage:   storage,
		reader:    reader,
		renderer:  renderer,
		open:      open,
		tabelPath: tabelPath,
		workers:   workers,
	}
}

// snapshot - ролі й особовий склад, прочитані один раз на пакет БР.
type snapshot struct {
	roles     []storage.Role
	personnel []storage.PersonWithRole
}

func (s *Service) loadSnapshot(ctx context.Context) (snapshot, error) {
	roles, err := s.storage.GetAllRoles(ctx)
	if err != nil {
		return snapshot{}, err
	}
	personnel, err := s.storage.GetAllPersonnel(ctx)
	if err != nil {
		return snapshot{}, err
	}
	return snapshot{roles: roles, personnel: personnel}, nil
}

// BuildCompositionForDate reads the tabel for brDate + 1 day and groups
// the "100" soldiers by their assigned role.
func (s *Service) BuildCompositionForDate(ctx context.Context, book grid.Workbook, brDate time.Time) (*Composition, error) {
	const op = "roster.BuildCompositionForDate"

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.compose(book, snap, brDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s *Service) compose(book grid.Workbook, snap snapshot, brDate time.Time) (*Composition, error) {
	brDate = calendar.Truncate(brDate)
	tabelDate := calendar.TabelDate(brDate)

	day, err := s.reader.ReadDay(book, tabelDate)
	if err != nil {
		return nil, err
	}

	return &Composition{
		BRDate:    brDate,
		TabelDate: tabelDate,
		Groups:    Compose(snap.roles, snap.personnel, day),
	}, nil
}

// Composition opens the tabel and builds the composition for brDate.
func (s *Service) Composition(ctx context.Context, brDate time.Time) (*Composition, error) {
	const op = "roster.Composition"

	book, err := s.open(s.tabelPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer book.Close()

	return s.BuildCompositionForDate(ctx, book, brDate)
}

// GenerateRange renders one BR per date in [from, to]. The tabel and the
// personnel are read once; dates are rendered concurrently. Paths come
// back in date order.
func (s *Service) GenerateRange(ctx context.Context, from, to time.Time) ([]string, error) {
	const op = "roster.GenerateRange"

	dates := calendar.EnumerateRange(from, to)
	if len(dates) == 0 {
		return nil, fmt.Errorf("%s: %w", op, apperr.NewParse(
			calendar.FormatDate(from)+" - "+calendar.FormatDate(to),
			fmt.Errorf("дата початку пізніше дати кінця"),
		))
	}

	book, err := s.open(s.tabelPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer book.Close()

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	paths := make([]string, len(dates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, date := range dates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			c, err := s.compose(book, snap, date)
			if err != nil {
				return fmt.Errorf("%s: %w", calendar.FormatDate(date), err)
			}

			path, err := s.renderer.Render(gctx, c)
			if err != nil {
				return fmt.Errorf("%s: %w", calendar.FormatDate(date), err)
			}

			s.log.Info("БР створено", slog.String("date", calendar.FormatDate(date)), slog.String("path", path))
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return paths, nil
}
