package attendance

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alvares/internal/apperr"
	"alvares/internal/calendar"
	"alvares/internal/constants"
	"alvares/internal/grid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type tabelRow struct {
	position, rank, pib, note string
	marks                     map[int]string
}

// monthSheet будує аркуш табеля: заголовок у рядку 8, дані з 9-го.
func monthSheet(book *grid.Memory, name string, rows ...tabelRow) *grid.MemorySheet {
	sheet := book.AddSheet(name, nil)
	_ = sheet.SetValue(8, constants.TabelColPib, "ПІБ")

	for i, r := range rows {
		row := constants.TabelDataStartRow + i
		_ = sheet.SetValue(row, constants.TabelColPosition, r.position)
		_ = sheet.SetValue(row, constants.TabelColRank, r.rank)
		_ = sheet.SetValue(row, constants.TabelColPib, r.pib)
		_ = sheet.SetValue(row, constants.TabelColNote, r.note)
		for day, mark := range r.marks {
			_ = sheet.SetValue(row, constants.TabelBaseColumn+day, mark)
		}
	}
	return sheet
}

func TestReadMonth(t *testing.T) {
	book := grid.NewMemory()
	monthSheet(book, "Лютий_2025",
		tabelRow{position: "водій", rank: "сержант", pib: " Коваленко Іван ", marks: map[int]string{1: "100", 2: "роп", 3: "30", 4: "н/п", 5: "відп"}},
		tabelRow{},
		tabelRow{rank: "солдат", pib: "Петренко Олег", note: "НЕ виплачувати з 10.02", marks: map[int]string{28: "100", 29: "100", 30: "30"}},
	)

	r := NewReader(discardLogger())
	soldiers, err := r.ReadMonth(book, "Лютий_2025")
	require.NoError(t, err)
	require.Len(t, soldiers, 2)

	k := soldiers[0]
	assert.Equal(t, 9, k.Row)
	assert.Equal(t, "Коваленко Іван", k.Pib)
	assert.Equal(t, "сержант", k.Rank)
	assert.Equal(t, "водій", k.Position)
	assert.Equal(t, []time.Time{calendar.Date(2025, 2, 1)}, k.Full)
	assert.Equal(t, []time.Time{calendar.Date(2025, 2, 2)}, k.PositionalFull)
	assert.Equal(t, []time.Time{calendar.Date(2025, 2, 3)}, k.Support)
	assert.Equal(t, []time.Time{calendar.Date(2025, 2, 4)}, k.Exempt)
	assert.Equal(t, []time.Time{calendar.Date(2025, 2, 1), calendar.Date(2025, 2, 2)}, k.CombinedFull())
	assert.Equal(t, []string{"№32 від 31.01.2025", "№33 від 01.02.2025"}, k.BRNumbers100())
	assert.Equal(t, []string{"№34 від 02.02.2025"}, k.BRNumbers30())
	assert.False(t, k.NoPayment())

	// 29 і 30 лютого не існує
	p := soldiers[1]
	assert.Equal(t, 11, p.Row)
	assert.Equal(t, []time.Time{calendar.Date(2025, 2, 28)}, p.Full)
	assert.Empty(t, p.Support)
	assert.True(t, p.NoPayment())
}

func TestReadMonth_Errors(t *testing.T) {
	book := grid.NewMemory()
	book.AddSheet("Березень_2025", [][]any{{"без заголовка"}})
	book.AddSheet("Зведення", nil)

	r := NewReader(discardLogger())

	_, err := r.ReadMonth(book, "Березень_2025")
	var structureErr *apperr.StructureError
	assert.ErrorAs(t, err, &structureErr)

	_, err = r.ReadMonth(book, "Квітень_2025")
	var lookupErr *apperr.LookupError
	assert.ErrorAs(t, err, &lookupErr)

	_, err = r.ReadMonth(book, "Зведення")
	var parseErr *apperr.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestReadDay(t *testing.T) {
	book := grid.NewMemory()
	monthSheet(book, "Травень_2025",
		tabelRow{rank: "сержант", pib: "Коваленко Іван", marks: map[int]string{2: "100"}},
		tabelRow{rank: "солдат", pib: "Бондар Петро", marks: map[int]string{2: "роп"}},
		tabelRow{rank: "солдат", pib: "Мельник Ігор", marks: map[int]string{1: "100"}},
	)

	r := NewReader(discardLogger())
	entries, err := r.ReadDay(book, calendar.Date(2025, time.May, 2))
	require.NoError(t, err)

	assert.Equal(t, []DayEntry{
		{Row: 9, Pib: "Коваленко Іван", Rank: "сержант", Category: Full},
		{Row: 10, Pib: "Бондар Петро", Rank: "солдат", Category: PositionalFull},
	}, entries)

	_, err = r.ReadDay(book, calendar.Date(2025, time.June, 2))
	var lookupErr *apperr.LookupError
	assert.ErrorAs(t, err, &lookupErr)
}

func TestFilterByCategory(t *testing.T) {
	soldiers := []Soldier{
		{Pib: "А", PositionalFull: []time.Time{calendar.Date(2025, 5, 1)}},
		{Pib: "Б", Full: []time.Time{calendar.Date(2025, 5, 1)}, Note: "не виплачувати"},
		{Pib: "В", Support: []time.Time{calendar.Date(2025, 5, 1)}},
		{Pib: "Г", Exempt: []time.Time{calendar.Date(2025, 5, 1)}},
	}

	names := func(ss []Soldier) []string {
		var out []string
		for _, s := range ss {
			out = append(out, s.Pib)
		}
		return out
	}

	assert.Equal(t, []string{"А"}, names(FilterByCategory(soldiers, constants.Category100, false)))
	assert.Equal(t, []string{"А", "Б"}, names(FilterByCategory(soldiers, constants.Category100, true)))
	assert.Equal(t, []string{"В"}, names(FilterByCategory(soldiers, constants.Category30, false)))
	assert.Equal(t, []string{"Г"}, names(FilterByCategory(soldiers, constants.Category0, false)))
}
