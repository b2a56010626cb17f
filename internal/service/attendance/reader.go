// Package attendance reads the monthly tabel: one row per soldier, one
// column per day of the month.
package attendance

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"alvares/internal/apperr"
	"alvares/internal/calendar"
	"alvares/internal/constants"
	"alvares/internal/grid"
)

type Reader struct {
	log *slog.Logger
}

func NewReader(log *slog.Logger) *Reader {
	return &Reader{log: log}
}

// DayEntry - позначка одного бійця за один день.
type DayEntry struct {
	Row      int
	Pib      string
	Rank     string
	Category Category
}

// ReadMonth reads the month sheet sheetName ("Травень_2025") of book.
func (r *Reader) ReadMonth(book grid.Workbook, sheetName string) ([]Soldier, error) {
	const op = "attendance.ReadMonth"

	year, month, ok := calendar.ParseMonthSheetName(sheetName)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, apperr.NewParse(sheetName, fmt.Errorf("очікується формат Місяць_Рік")))
	}

	sheet, err := book.OpenSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	soldiers, err := r.ReadMonthSheet(sheet, year, month)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return soldiers, nil
}

// ReadMonthSheet reads an already opened month sheet.
func (r *Reader) ReadMonthSheet(sheet grid.Sheet, year int, month time.Month) ([]Soldier, error) {
	headerRow, err := FindHeaderRow(sheet)
	if err != nil {
		return nil, err
	}

	daysInMonth := calendar.DaysInMonth(year, month)

	var soldiers []Soldier
	for row := headerRow + 1; row <= sheet.MaxRow(); row++ {
		name := grid.TrimmedText(sheet.Value(row, constants.TabelColPib))
		if name == "" {
			continue
		}

		s := Soldier{
			Row:      row,
			Pib:      name,
			Rank:     grid.TrimmedText(sheet.Value(row, constants.TabelColRank)),
			Position: grid.TrimmedText(sheet.Value(row, constants.TabelColPosition)),
			Note:     grid.TrimmedText(sheet.Value(row, constants.TabelColNote)),
		}

		for day := 1; day <= constants.TabelColLastDay-constants.TabelBaseColumn; day++ {
			category, ok := Classify(grid.Text(sheet.Value(row, constants.TabelBaseColumn+day)))
			if !ok {
				continue
			}

			// позначка за 30/31 число в коротшому місяці
			if day > daysInMonth {
				r.log.Warn("позначка за неіснуючий день пропущена",
					slog.String("sheet", sheet.Name()),
					slog.Int("row", row),
					slog.Int("day", day),
				)
				continue
			}

			s.addDay(calendar.Date(year, month, day), category)
		}

		soldiers = append(soldiers, s)
	}

	return soldiers, nil
}

// ReadDay reads a single day column of the month sheet covering date.
// Only classified cells are returned.
func (r *Reader) ReadDay(book grid.Workbook, date time.Time) ([]DayEntry, error) {
	const op = "attendance.ReadDay"

	sheetName, err := calendar.SheetNameForDate(date, book.SheetNames())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sheet, err := book.OpenSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	headerRow, err := FindHeaderRow(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	col := constants.TabelBaseColumn + date.Day()

	var entries []DayEntry
	for row := headerRow + 1; row <= sheet.MaxRow(); row++ {
		name := grid.TrimmedText(sheet.Value(row, constants.TabelColPib))
		if name == "" {
			continue
		}

		category, ok := Classify(grid.Text(sheet.Value(row, col)))
		if !ok {
			continue
		}

		entries = append(entries, DayEntry{
			Row:      row,
			Pib:      name,
			Rank:     grid.TrimmedText(sheet.Value(row, constants.TabelColRank)),
			Category: category,
		})
	}

	return entries, nil
}

// FindHeaderRow шукає "ПІБ" у колонці F в перших рядках аркуша.
func FindHeaderRow(sheet grid.Sheet) (int, error) {
	for row := 1; row <= constants.TabelHeaderScanEnd; row++ {
		if strings.Contains(grid.Text(sheet.Value(row, constants.TabelColPib)), constants.TabelHeaderLabel) {
			return row, nil
		}
	}

	return 0, apperr.NewStructure("рядок з заголовками", sheet.Name())
}
