package attendance

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"alvares/internal/calendar"
	"alvares/internal/constants"
)

// Soldier - рядок табеля за місяць з днями по категоріях.
type Soldier struct {
	Row      int
	Pib      string
	Rank     string
	Position string
	Note     string

	Full           []time.Time
	PositionalFull []time.Time
	Support        []time.Time
	Exempt         []time.Time
}

func (s *Soldier) addDay(date time.Time, c Category) {
	switch c {
	case Full:
		s.Full = append(s.Full, date)
	case PositionalFull:
		s.PositionalFull = append(s.PositionalFull, date)
	case Support:
		s.Support = append(s.Support, date)
	case Exempt:
		s.Exempt = append(s.Exempt, date)
	}
}

// Days returns the day set of one category.
func (s *Soldier) Days(c Category) []time.Time {
	switch c {
	case Full:
		return s.Full
	case PositionalFull:
		return s.PositionalFull
	case Support:
		return s.Support
	case Exempt:
		return s.Exempt
	default:
		return nil
	}
}

// CombinedFull - дні "100" разом з "роп", за зростанням. Для виплат і БР.
func (s *Soldier) CombinedFull() []time.Time {
	days := make([]time.Time, 0, len(s.Full)+len(s.PositionalFull))
	days = append(days, s.Full...)
	days = append(days, s.PositionalFull...)

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// NoPayment reports the "не виплачувати" note.
func (s *Soldier) NoPayment() bool {
	note := cases.Lower(language.Ukrainian).String(s.Note)
	return strings.Contains(note, constants.NoPaymentPhrase)
}

func (s *Soldier) BRNumbers100() []string {
	return calendar.DayNumberLabels(s.CombinedFull())
}

func (s *Soldier) BRNumbers30() []string {
	return calendar.DayNumberLabels(s.Support)
}

// FilterByCategory keeps soldiers that have days in the pay tier.
// Tier "100" is the combined FULL set.
func FilterByCategory(soldiers []Soldier, tier string, includeNoPayment bool) []Soldier {
	var result []Soldier
	for _, s := range soldiers {
		if !includeNoPayment && s.NoPayment() {
			continue
		}
		if len(TierDays(&s, tier)) > 0 {
			result = append(result, s)
		}
	}
	return result
}

// TierDays returns the days that count for a pay tier ("100", "30", "0").
func TierDays(s *Soldier, tier string) []time.Time {
	switch tier {
	case constants.Category100:
		return s.CombinedFull()
	case constants.Category30:
		return s.Support
	case constants.Category0:
		return s.Exempt
	default:
		return nil
	}
}
