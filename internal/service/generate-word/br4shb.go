package generate_word

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"alvares/internal/calendar"
	"alvares/internal/constants"
	"alvares/internal/grid"
)

// Колонки журналу БР батальйону: A - номер, B - дата.
const (
	br4ShBFirstRow = 2
	br4ShBColID    = 1
	br4ShBColDate  = 2
)

// LookupBR4ShB finds the battalion BR number registered for tabelDate in the
// first sheet of path. When several rows share the date the last one wins.
// A missing file or date gives constants.EmptyValue.
func LookupBR4ShB(path string, tabelDate time.Time) (string, error) {
	const op = "generate_word.LookupBR4ShB"

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return constants.EmptyValue, nil
	}

	book, err := grid.Open(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer book.Close()

	names := book.SheetNames()
	if len(names) == 0 {
		return constants.EmptyValue, nil
	}

	sheet, err := book.OpenSheet(names[0])
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return findBR4ShB(sheet, calendar.Truncate(tabelDate)), nil
}

func findBR4ShB(sheet grid.Sheet, target time.Time) string {
	found := constants.EmptyValue

	for row := br4ShBFirstRow; row <= sheet.MaxRow(); row++ {
		id := grid.TrimmedText(sheet.Value(row, br4ShBColID))
		if id == "" {
			continue
		}

		date, ok := rowDate(sheet.Value(row, br4ShBColDate))
		if !ok {
			continue
		}

		if date.Equal(target) {
			found = id
		}
	}

	return found
}

// rowDate reads a date cell; text is taken as "yyyy-mm-dd..." or any
// format ParseFlexibleDate knows.
func rowDate(v any) (time.Time, bool) {
	switch val := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return calendar.Truncate(val), true
	}

	text := grid.TrimmedText(v)
	if len(text) > 10 {
		text = text[:10]
	}

	date, err := calendar.ParseFlexibleDate(text)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
