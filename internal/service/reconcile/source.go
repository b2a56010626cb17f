// Package reconcile turns the per-month source files (periods per category
// sheet "100к", "30к", "0к") into daily marks of the multi-month tabel.
package reconcile

import (
	"errors"
	"fmt"
	"log/slog"

	"alvares/internal/apperr"
	"alvares/internal/constants"
	"alvares/internal/grid"
	"alvares/internal/service/attendance"
)

var categorySheets = []struct {
	sheet    string
	category attendance.Category
}{
	{constants.SourceSheet100, attendance.Full},
	{constants.SourceSheet30, attendance.Support},
	{constants.SourceSheet0, attendance.Exempt},
}

type SourceReader struct {
	log *slog.Logger
}

func NewSourceReader(log *slog.Logger) *SourceReader {
	return &SourceReader{log: log}
}

// ReadCategorySheet reads one category sheet. A missing sheet yields no rows.
func (r *SourceReader) ReadCategorySheet(book grid.Workbook, sheetName string) ([]SourceRecord, error) {
	const op = "reconcile.ReadCategorySheet"

	sheet, err := book.OpenSheet(sheetName)
	if err != nil {
		var lookupErr *apperr.LookupError
		if errors.As(err, &lookupErr) {
			r.log.Warn("аркуш категорії не знайдено", slog.String("sheet", sheetName))
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var records []SourceRecord
	for row := constants.SourceDataStartRow; row <= sheet.MaxRow(); row++ {
		cellB := grid.TrimmedText(sheet.Value(row, constants.SourceColSoldier))
		cellF := grid.TrimmedText(sheet.Value(row, constants.SourceColPib))
		if cellB == "" && cellF == "" {
			continue
		}

		rank, name, position := ParseSoldierInfo(cellB, cellF)
		if name == "" {
			continue
		}

		start, errStart := ParseDateCell(emptyToNil(sheet.Value(row, constants.SourceColStart)), true)
		end, errEnd := ParseDateCell(emptyToNil(sheet.Value(row, constants.SourceColEnd)), false)
		if errStart != nil || errEnd != nil {
			r.log.Warn("не вдалося розпарсити дати, рядок пропущено",
				slog.String("sheet", sheetName),
				slog.Int("row", row),
				slog.String("pib", name),
				slog.Any("err", errors.Join(errStart, errEnd)),
			)
			continue
		}

		records = append(records, SourceRecord{
			Row:      row,
			Rank:     rank,
			Pib:      name,
			Position: position,
			Period:   Period{Start: start, End: end},
		})
	}

	r.log.Debug("прочитано аркуш категорії", slog.String("sheet", sheetName), slog.Int("records", len(records)))
	return records, nil
}

// ReadAll reads every category sheet and merges soldiers by name.
func (r *SourceReader) ReadAll(book grid.Workbook) ([]SoldierPeriods, error) {
	batches := make([]CategoryRecords, 0, len(categorySheets))
	for _, cs := range categorySheets {
		records, err := r.ReadCategorySheet(book, cs.sheet)
		if err != nil {
			return nil, err
		}
		batches = append(batches, CategoryRecords{Category: cs.category, Records: records})
	}

	return Aggregate(batches...), nil
}

func emptyToNil(v any) any {
	if s, ok := v.(string); ok && grid.TrimmedText(s) == "" {
		return nil
	}
	return v
}
