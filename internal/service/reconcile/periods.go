package reconcile

import (
	"time"

	"alvares/internal/calendar"
	"alvares/internal/pib"
	"alvares/internal/service/attendance"
)

// Period - закритий діапазон [Start, End].
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (p Period) Contains(d time.Time) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// SoldierPeriods - один боєць з усіх аркушів категорій.
type SoldierPeriods struct {
	Pib      string
	Rank     string
	Position string

	Full    []Period
	Support []Period
	Exempt  []Period
}

func (s *SoldierPeriods) Periods(c attendance.Category) []Period {
	switch c {
	case attendance.Full:
		return s.Full
	case attendance.Support:
		return s.Support
	case attendance.Exempt:
		return s.Exempt
	default:
		return nil
	}
}

func (s *SoldierPeriods) addPeriod(c attendance.Category, p Period) {
	switch c {
	case attendance.Full:
		s.Full = append(s.Full, p)
	case attendance.Support:
		s.Support = append(s.Support, p)
	case attendance.Exempt:
		s.Exempt = append(s.Exempt, p)
	}
}

// Пріоритет при перетині періодів
var markPriority = []attendance.Category{attendance.Full, attendance.Support, attendance.Exempt}

// ResolveDayMark returns the highest-priority category whose period covers date.
func ResolveDayMark(s *SoldierPeriods, date time.Time) (attendance.Category, bool) {
	d := calendar.Truncate(date)
	for _, c := range markPriority {
		for _, p := range s.Periods(c) {
			if p.Contains(d) {
				return c, true
			}
		}
	}
	return 0, false
}

// DayMarks flattens the periods over a month; index 0 is day 1, zero means unmarked.
func DayMarks(s *SoldierPeriods, year int, month time.Month) []attendance.Category {
	marks := make([]attendance.Category, calendar.DaysInMonth(year, month))
	for i := range marks {
		if c, ok := ResolveDayMark(s, calendar.Date(year, month, i+1)); ok {
			marks[i] = c
		}
	}
	return marks
}

// CollapsePeriods groups consecutive identical marks back into periods.
func CollapsePeriods(marks []attendance.Category, year int, month time.Month) map[attendance.Category][]Period {
	result := make(map[attendance.Category][]Period)

	for i := 0; i < len(marks); {
		c := marks[i]
		j := i
		for j+1 < len(marks) && marks[j+1] == c {
			j++
		}
		if c != 0 {
			result[c] = append(result[c], Period{
				Start: calendar.Date(year, month, i+1),
				End:   calendar.Date(year, month, j+1),
			})
		}
		i = j + 1
	}

	return result
}

// SourceRecord - рядок аркуша категорії.
type SourceRecord struct {
	Row      int
	Rank     string
	Pib      string
	Position string
	Period   Period
}

// CategoryRecords - записи одного аркуша категорії.
type CategoryRecords struct {
	Category attendance.Category
	Records  []SourceRecord
}

// Aggregate merges records by name key in first-seen order. Rank and
// position are taken from the first row that has them.
func Aggregate(batches ...CategoryRecords) []SoldierPeriods {
	index := make(map[string]int)
	var soldiers []SoldierPeriods

	for _, batch := range batches {
		for _, rec := range batch.Records {
			key := pib.Key(rec.Pib)
			if key == "" {
				continue
			}

			i, ok := index[key]
			if !ok {
				i = len(soldiers)
				index[key] = i
				soldiers = append(soldiers, SoldierPeriods{Pib: pib.Normalize(rec.Pib)})
			}

			s := &soldiers[i]
			if s.Rank == "" && rec.Rank != "" {
				s.Rank = rec.Rank
			}
			if s.Position == "" && rec.Position != "" {
				s.Position = rec.Position
			}
			s.addPeriod(batch.Category, rec.Period)
		}
	}

	return soldiers
}
