package reconcile

import (
	"fmt"
	"time"

	"alvares/internal/constants"
	"alvares/internal/grid"
	"alvares/internal/pib"
)

// WriteMonth overwrites the data region of a month sheet with soldiers,
// sorted by name. Returns the number of rows written.
func WriteMonth(sheet grid.WritableSheet, soldiers []SoldierPeriods, year int, month time.Month) (int, error) {
	const op = "reconcile.WriteMonth"

	if err := clearData(sheet); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	sorted := append([]SoldierPeriods(nil), soldiers...)
	pib.SortBy(sorted, func(s SoldierPeriods) string { return s.Pib })

	row := constants.TabelDataStartRow
	for i := range sorted {
		s := &sorted[i]

		cells := []struct {
			col int
			v   string
		}{
			{constants.TabelColPosition, s.Position},
			{constants.TabelColRank, s.Rank},
			{constants.TabelColPib, s.Pib},
		}
		for _, c := range cells {
			if err := sheet.SetValue(row, c.col, c.v); err != nil {
				return 0, fmt.Errorf("%s: %w", op, err)
			}
		}

		for i, mark := range DayMarks(s, year, month) {
			if mark == 0 {
				continue
			}
			if err := sheet.SetValue(row, constants.TabelBaseColumn+i+1, mark.Mark()); err != nil {
				return 0, fmt.Errorf("%s: %w", op, err)
			}
		}

		row++
	}

	return len(sorted), nil
}

// clearData чистить D:F і G:AK від першого рядка даних до кінця аркуша.
func clearData(sheet grid.WritableSheet) error {
	maxRow := sheet.MaxRow()
	for row := constants.TabelDataStartRow; row <= maxRow; row++ {
		for col := constants.TabelColPosition; col <= constants.TabelColLastDay; col++ {
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
