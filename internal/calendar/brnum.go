package calendar

import (
	"fmt"
	"strings"
	"time"
)

// DayNumberLabel повертає номер БР для дати: порядковий номер дня року
// і дата попереднього дня, напр. 01.05.2025 -> "№121 від 30.04.2025".
// Номер рахується від самої дати: 1 січня завжди №1, а попередній день
// береться з минулого року.
func DayNumberLabel(date time.Time) string {
	d := Truncate(date)
	prev := d.AddDate(0, 0, -1)

	return fmt.Sprintf("№%d від %s", d.YearDay(), prev.Format(DateLayout))
}

// DayNumberLabels maps DayNumberLabel over dates, keeping their order.
func DayNumberLabels(dates []time.Time) []string {
	labels := make([]string, 0, len(dates))
	for _, d := range dates {
		labels = append(labels, DayNumberLabel(d))
	}
	return labels
}

// BRList joins BR labels for a document cell.
func BRList(labels []string) string {
	return strings.Join(labels, ", ")
}

// TabelDate - дата табеля для БР: БР складається на наступний день.
func TabelDate(brDate time.Time) time.Time {
	return Truncate(brDate).AddDate(0, 0, 1)
}
