package reconcile

import (
	"fmt"
	"strings"
	"time"

	"alvares/internal/apperr"
	"alvares/internal/calendar"
)

// ParseDateCell reads a period boundary. A text cell may hold several
// dates: takeFirst picks the earliest, otherwise the latest.
func ParseDateCell(value any, takeFirst bool) (time.Time, error) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, apperr.NewParse("", fmt.Errorf("порожня комірка"))
	case time.Time:
		return calendar.Truncate(v), nil
	case string:
		var dates []time.Time
		for _, token := range strings.Fields(v) {
			if d, err := calendar.ParseFlexibleDate(token); err == nil {
				dates = append(dates, d)
			}
		}
		if len(dates) == 0 {
			return time.Time{}, apperr.NewParse(v, nil)
		}

		picked := dates[0]
		for _, d := range dates[1:] {
			if (takeFirst && d.Before(picked)) || (!takeFirst && d.After(picked)) {
				picked = d
			}
		}
		return picked, nil
	default:
		return time.Time{}, &apperr.TypeError{Value: value}
	}
}
