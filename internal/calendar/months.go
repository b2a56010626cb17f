package calendar

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"alvares/internal/apperr"
	"alvares/internal/constants"
)

var monthSheetRe = regexp.MustCompile(`^([А-ЯІЄЇҐа-яієїґ]+)_(\d{4})$`)

// ParseMonthSheetName: "Січень_2026" -> (2026, January, true).
func ParseMonthSheetName(name string) (int, time.Month, bool) {
	m := monthSheetRe.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, false
	}

	num, ok := constants.MonthNumbers[strings.ToLower(m[1])]
	if !ok {
		return 0, 0, false
	}

	year, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}

	return year, time.Month(num), true
}

// BuildMonthSheetName: (2026, February) -> "Лютий_2026".
func BuildMonthSheetName(year int, month time.Month) string {
	return fmt.Sprintf("%s_%d", constants.MonthNames[month-1], year)
}

// AvailableMonths keeps month sheets only, oldest first.
func AvailableMonths(sheetNames []string) []string {
	type monthSheet struct {
		key  int
		name string
	}

	var months []monthSheet
	for _, name := range sheetNames {
		year, month, ok := ParseMonthSheetName(name)
		if !ok {
			continue
		}
		months = append(months, monthSheet{key: year*100 + int(month), name: name})
	}

	sort.SliceStable(months, func(i, j int) bool {
		return months[i].key < months[j].key
	})

	result := make([]string, 0, len(months))
	for _, m := range months {
		result = append(result, m.name)
	}
	return result
}

// SheetNameForDate finds the month sheet that covers date.
func SheetNameForDate(date time.Time, sheetNames []string) (string, error) {
	for _, name := range sheetNames {
		year, month, ok := ParseMonthSheetName(name)
		if ok && year == date.Year() && month == date.Month() {
			return name, nil
		}
	}
	return "", apperr.NewLookup("аркуш для", date.Format("01.2006"))
}

// SourceFileName: "Січень_2026" -> "Січень_2026.xlsx".
func SourceFileName(sheetName string) string {
	return sheetName + ".xlsx"
}

// MonthDisplay: "Листопад_2025" -> "листопад 2025".
func MonthDisplay(sheetName string) string {
	return strings.ToLower(strings.ReplaceAll(sheetName, "_", " "))
}
