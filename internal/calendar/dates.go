package calendar

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"alvares/internal/apperr"
	"alvares/internal/constants"
)

const (
	DateLayout = "02.01.2006"
	ISOLayout  = "2006-01-02"
)

// Порядок форматів має значення: перший успішний виграє.
// День і місяць можуть бути без нуля попереду ("1.5.2025").
var flexibleLayouts = []string{
	"2.1.2006",
	"2/1/2006",
	"2006-1-2",
}

var filenameDateRe = regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{4})`)

// Date builds a calendar date at UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the clock part and location.
func Truncate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseFlexibleDate accepts a time.Time or text in one of dd.mm.yyyy,
// dd/mm/yyyy, yyyy-mm-dd.
func ParseFlexibleDate(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return Truncate(v), nil
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range flexibleLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, apperr.NewParse(v, nil)
	default:
		return time.Time{}, &apperr.TypeError{Value: value}
	}
}

// EnumerateRange returns every day from start to end inclusive.
func EnumerateRange(start, end time.Time) []time.Time {
	s, e := Truncate(start), Truncate(end)
	if s.After(e) {
		return nil
	}

	var days []time.Time
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func DaysInMonth(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

// PeriodString - "dd.mm.yyyy" для одного дня, інакше "з ... по ...".
func PeriodString(dates []time.Time) string {
	if len(dates) == 0 {
		return ""
	}

	first, last := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}

	if first.Equal(last) {
		return FormatDate(first)
	}
	return fmt.Sprintf("з %s по %s", FormatDate(first), FormatDate(last))
}

// ParseFilenameDate finds the first dd.mm.yyyy in a file name,
// e.g. "БР_№_121_30.04.2025.docx".
func ParseFilenameDate(name string) (time.Time, error) {
	m := filenameDateRe.FindString(name)
	if m == "" {
		return time.Time{}, apperr.NewParse(name, fmt.Errorf("дату в назві файлу не знайдено"))
	}

	t, err := time.Parse(DateLayout, m)
	if err != nil {
		return time.Time{}, apperr.NewParse(m, err)
	}
	return t, nil
}

// DayColumn returns the tabel column of a date within the given month.
func DayColumn(date time.Time, year int, month time.Month) (int, error) {
	if date.Year() != year || date.Month() != month {
		return 0, apperr.NewLookup("дата в місяці "+fmt.Sprintf("%02d.%d", int(month), year), FormatDate(date))
	}
	return constants.TabelBaseColumn + date.Day(), nil
}
