package reconcile

import (
	"regexp"
	"strings"

	"alvares/internal/pib"
)

const upperCyrillic = "АБВГҐДЕЄЖЗИІЇЙКЛМНОПРСТУФХЦЧШЩЮЯ"

var upperRunRe = regexp.MustCompile(`[А-ЯЄІЇҐ][А-ЯЄІЇҐ\s]+`)

// ParseSoldierInfo розбирає колонку B "звання ПІБ, посада".
// cellF - ПІБ окремою колонкою, запасний варіант.
func ParseSoldierInfo(cellB, cellF string) (rank, name, position string) {
	b := strings.TrimSpace(cellB)
	f := pib.Normalize(cellF)

	if b == "" {
		return "", f, ""
	}

	head := b
	if i := strings.Index(b, ","); i >= 0 {
		head = b[:i]
		position = strings.TrimSpace(b[i+1:])
	}

	words := strings.Fields(head)
	for i, w := range words {
		if strings.ContainsRune(upperCyrillic, []rune(w)[0]) {
			return strings.Join(words[:i], " "), strings.Join(words[i:], " "), position
		}
	}

	if f != "" {
		return "", f, ""
	}

	if run := longestUpperRun(b); run != "" {
		rest := strings.Replace(b, run, "", 1)
		return pib.Normalize(rest), run, ""
	}

	return "", b, ""
}

func longestUpperRun(s string) string {
	longest := ""
	for _, m := range upperRunRe.FindAllString(s, -1) {
		m = strings.TrimSpace(m)
		if len([]rune(m)) > len([]rune(longest)) {
			longest = m
		}
	}
	return longest
}
