package attendance

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"alvares/internal/constants"
)

// Category - позначка дня в табелі.
type Category int

const (
	Full Category = iota + 1
	PositionalFull
	Support
	Exempt
)

func (c Category) String() string {
	switch c {
	case Full:
		return "FULL"
	case PositionalFull:
		return "POSITIONAL_FULL"
	case Support:
		return "SUPPORT"
	case Exempt:
		return "EXEMPT"
	default:
		return "UNMARKED"
	}
}

// Mark returns the literal written into a tabel cell.
func (c Category) Mark() string {
	switch c {
	case Full:
		return constants.MarkFull
	case PositionalFull:
		return constants.MarkPositionalFull
	case Support:
		return constants.MarkSupport
	case Exempt:
		return constants.MarkExempt
	default:
		return ""
	}
}

// Classify maps a raw cell token onto a category. Unknown and blank
// tokens are not classified.
func Classify(raw string) (Category, bool) {
	token := cases.Lower(language.Ukrainian).String(strings.TrimSpace(raw))

	switch {
	case token == "":
		return 0, false
	case constants.FullMarks[token]:
		return Full, true
	case constants.PositionalFullMarks[token]:
		return PositionalFull, true
	case constants.SupportMarks[token]:
		return Support, true
	case constants.ExemptMarks[token]:
		return Exempt, true
	default:
		return 0, false
	}
}
