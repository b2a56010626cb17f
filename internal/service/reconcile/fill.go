package reconcile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"alvares/internal/apperr"
	"alvares/internal/calendar"
	"alvares/internal/constants"
	"alvares/internal/grid"
)

// MonthResult - підсумок заповнення одного місяця.
type MonthResult struct {
	Sheet   string `json:"sheet"`
	Persons int    `json:"persons"`
	Error   string `json:"error,omitempty"`
}

type FillService struct {
	log       *slog.Logger
	reader    *SourceReader
	open      grid.Opener
	tabelPath string
	sourceDir string
}

func NewFillService(log *slog.Logger, open grid.Opener, tabelPath, sourceDir string) *FillService {
	return &FillService{
		log:       log,
		reader:    NewSourceReader(log),
		open:      open,
		tabelPath: tabelPath,
		sourceDir: sourceDir,
	}
}

// AvailableMonths lists month sheets of the tabel, oldest first.
func (s *FillService) AvailableMonths(ctx context.Context) ([]string, error) {
	const op = "reconcile.AvailableMonths"

	book, err := s.openTabel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer book.Close()

	return calendar.AvailableMonths(book.SheetNames()), nil
}

// FillMonth fills one month sheet from "<sourceDir>/<sheet>.xlsx" and saves the tabel.
func (s *FillService) FillMonth(ctx context.Context, sheetName string) (int, error) {
	const op = "reconcile.FillMonth"

	year, month, ok := calendar.ParseMonthSheetName(sheetName)
	if !ok {
		return 0, fmt.Errorf("%s: %w", op, apperr.NewParse(sheetName, nil))
	}

	book, err := s.openTabel()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer book.Close()

	sheet, err := book.EditSheet(sheetName)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	soldiers, err := s.readSource(ctx, sheetName)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	n, err := WriteMonth(sheet, soldiers, year, month)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := book.Save(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("місяць заповнено", slog.String("sheet", sheetName), slog.Int("persons", n))
	return n, nil
}

// FillAll fills every month sheet. Sources are read concurrently; a month
// whose source fails is reported and skipped. The tabel is saved once.
func (s *FillService) FillAll(ctx context.Context) ([]MonthResult, error) {
	const op = "reconcile.FillAll"

	book, err := s.openTabel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer book.Close()

	months := calendar.AvailableMonths(book.SheetNames())
	if len(months) == 0 {
		s.log.Warn("у табелі немає аркушів місяців", slog.String("tabel", s.tabelPath))
		return nil, nil
	}

	sources := make([][]SoldierPeriods, len(months))
	results := make([]MonthResult, len(months))

	g, gctx := errgroup.WithContext(ctx)
	for i, sheetName := range months {
		results[i].Sheet = sheetName

		g.Go(func() error {
			soldiers, err := s.readSource(gctx, sheetName)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				s.log.Error("помилка джерела місяця", slog.String("sheet", sheetName), slog.Any("err", err))
				results[i].Error = err.Error()
				return nil
			}
			sources[i] = soldiers
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i, sheetName := range months {
		if results[i].Error != "" {
			continue
		}

		year, month, _ := calendar.ParseMonthSheetName(sheetName)

		sheet, err := book.EditSheet(sheetName)
		if err != nil {
			results[i].Error = err.Error()
			continue
		}

		n, err := WriteMonth(sheet, sources[i], year, month)
		if err != nil {
			s.log.Error("помилка запису місяця", slog.String("sheet", sheetName), slog.Any("err", err))
			results[i].Error = err.Error()
			continue
		}
		results[i].Persons = n
	}

	if err := book.Save(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return results, nil
}

// AddMonth creates the sheet "<Місяць>_<Рік>" as a copy of the latest
// month with the data rows cleared.
func (s *FillService) AddMonth(ctx context.Context, year int, month time.Month) (string, error) {
	const op = "reconcile.AddMonth"

	if month < time.January || month > time.December {
		return "", fmt.Errorf("%s: %w", op, apperr.NewParse(fmt.Sprintf("%d", month), fmt.Errorf("невірний місяць")))
	}

	book, err := s.openTabel()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer book.Close()

	name := calendar.BuildMonthSheetName(year, month)
	names := book.SheetNames()
	for _, n := range names {
		if n == name {
			return "", fmt.Errorf("%s: %s: %w", op, name, apperr.ErrSheetExists)
		}
	}

	months := calendar.AvailableMonths(names)
	if len(months) == 0 {
		if err := book.NewSheet(name); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
	} else {
		if err := book.CopySheet(months[len(months)-1], name); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}

		sheet, err := book.EditSheet(name)
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		if err := clearRows(sheet, constants.TabelDataStartRow); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := book.Save(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("додано аркуш місяця", slog.String("sheet", name))
	return name, nil
}

func (s *FillService) openTabel() (grid.Document, error) {
	book, err := s.open(s.tabelPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.NewLookup("файл табеля", s.tabelPath)
		}
		return nil, err
	}
	return book, nil
}

func (s *FillService) readSource(ctx context.Context, sheetName string) ([]SoldierPeriods, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.sourceDir, calendar.SourceFileName(sheetName))

	book, err := s.open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.NewLookup("файл-джерело", path)
		}
		return nil, err
	}
	defer book.Close()

	return s.reader.ReadAll(book)
}

func clearRows(sheet grid.WritableSheet, fromRow int) error {
	maxRow, maxCol := sheet.MaxRow(), sheet.MaxCol()
	for row := fromRow; row <= maxRow; row++ {
		for col := 1; col <= maxCol; col++ {
			if sheet.Value(row, col) == nil {
				continue
			}
			if err := sheet.SetValue(row, col, nil); err != nil {
				return err
			}
		}
	}
	return nil
}
