// Package pib works with personal names ("ПІБ"): the matching key shared
// by the tabel, the category sheets and the role store, Ukrainian sort
// order and the two spellings used in BR documents.
package pib

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Normalize trims and collapses inner whitespace. Case is kept.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Key - ключ зіставлення: нормалізовані пробіли + case folding.
func Key(s string) string {
	return cases.Fold().String(Normalize(s))
}

// Equal reports whether two spellings name the same person.
func Equal(a, b string) bool {
	return Key(a) == Key(b)
}

// Sort orders names by Ukrainian collation.
func Sort(names []string) {
	SortBy(names, func(s string) string { return s })
}

// SortBy orders items by the Ukrainian collation of name(item). Stable.
func SortBy[T any](items []T, name func(T) string) {
	// Collator тримає буфери, тому новий на кожен виклик
	c := collate.New(language.Ukrainian)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(name(items[i]), name(items[j])) < 0
	})
}

// DocumentFormat: ("Коваленко Іван Петрович", "солдат") -> "солдат КОВАЛЕНКО Іван Петрович".
func DocumentFormat(name, rank string) string {
	upper := cases.Upper(language.Ukrainian)

	parts := strings.Fields(name)
	var formatted string
	if len(parts) < 2 {
		formatted = upper.String(strings.TrimSpace(name))
	} else {
		formatted = upper.String(parts[0]) + " " + strings.Join(parts[1:], " ")
	}

	return withRank(formatted, rank)
}

// TableFormat: ("Коваленко Іван Петрович", "солдат") -> "солдат Іван КОВАЛЕНКО".
func TableFormat(name, rank string) string {
	upper := cases.Upper(language.Ukrainian)

	parts := strings.Fields(name)
	var formatted string
	if len(parts) < 2 {
		formatted = upper.String(strings.TrimSpace(name))
	} else {
		formatted = parts[1] + " " + upper.String(parts[0])
	}

	return withRank(formatted, rank)
}

func withRank(formatted, rank string) string {
	rank = strings.TrimSpace(rank)
	if rank == "" {
		return formatted
	}
	return rank + " " + formatted
}
