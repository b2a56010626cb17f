package grid

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/xuri/excelize/v2"

	"alvares/internal/apperr"
)

// Excel - книга xlsx через excelize. Рядки аркуша кешуються при першому
// відкритті, записи оновлюють і файл, і кеш.
type Excel struct {
	path string
	f    *excelize.File

	mu    sync.Mutex
	cache map[string][][]any
}

// Open reads an existing xlsx file.
func Open(path string) (*Excel, error) {
	const op = "grid.Open"

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Excel{path: path, f: f, cache: make(map[string][][]any)}, nil
}

// Create starts a new workbook that Save writes to path.
func Create(path string) *Excel {
	return &Excel{path: path, f: excelize.NewFile(), cache: make(map[string][][]any)}
}

// File exposes the underlying excelize file.
func (e *Excel) File() *excelize.File {
	return e.f
}

func (e *Excel) Path() string {
	return e.path
}

func (e *Excel) SheetNames() []string {
	return e.f.GetSheetList()
}

func (e *Excel) OpenSheet(name string) (Sheet, error) {
	return e.sheet(name)
}

func (e *Excel) EditSheet(name string) (WritableSheet, error) {
	return e.sheet(name)
}

func (e *Excel) sheet(name string) (*excelSheet, error) {
	const op = "grid.Excel.OpenSheet"

	if !hasSheet(e.SheetNames(), name) {
		return nil, apperr.NewLookup("аркуш", name)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.cache[name]; !ok {
		rows, err := e.load(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", op, name, err)
		}
		e.cache[name] = rows
	}

	return &excelSheet{book: e, name: name}, nil
}

// load читає аркуш двічі: сирі значення і відформатований текст.
// Різниця між ними плюс стиль дати означає комірку-дату.
func (e *Excel) load(name string) ([][]any, error) {
	formatted, err := e.f.GetRows(name)
	if err != nil {
		return nil, err
	}
	raw, err := e.f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	rows := make([][]any, len(formatted))
	for r, row := range formatted {
		rows[r] = make([]any, len(row))
		for c, text := range row {
			if text == "" {
				continue
			}
			rows[r][c] = text

			if r >= len(raw) || c >= len(raw[r]) || raw[r][c] == text {
				continue
			}
			serial, err := strconv.ParseFloat(raw[r][c], 64)
			if err != nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				continue
			}
			if !e.isDateCell(name, cell) {
				continue
			}
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				rows[r][c] = t
			}
		}
	}

	return rows, nil
}

func (e *Excel) isDateCell(sheet, cell string) bool {
	styleID, err := e.f.GetCellStyle(sheet, cell)
	if err != nil || styleID == 0 {
		return false
	}
	style, err := e.f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}

	switch {
	case style.NumFmt >= 14 && style.NumFmt <= 22, style.NumFmt >= 45 && style.NumFmt <= 47:
		return true
	case style.CustomNumFmt != nil:
		return isDateFormat(*style.CustomNumFmt)
	}
	return false
}

// isDateFormat шукає токени дати у власному форматі числа. Секції в [],
// літерали в лапках, екрановані символи та символи після _ і * пропускаються.
func isDateFormat(format string) bool {
	var (
		b         strings.Builder
		inQuote   bool
		inBracket bool
		skipNext  bool
	)

	for _, r := range format {
		switch {
		case skipNext:
			skipNext = false
		case inQuote:
			inQuote = r != '"'
		case inBracket:
			inBracket = r != ']'
		case r == '"':
			inQuote = true
		case r == '[':
			inBracket = true
		case r == '\\', r == '_', r == '*':
			skipNext = true
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}

	tokens := b.String()
	return strings.ContainsAny(tokens, "dy") || strings.Contains(tokens, "mm")
}

func (e *Excel) NewSheet(name string) error {
	const op = "grid.Excel.NewSheet"

	if hasSheet(e.SheetNames(), name) {
		return fmt.Errorf("%s: %s: %w", op, name, apperr.ErrSheetExists)
	}
	if _, err := e.f.NewSheet(name); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	e.mu.Lock()
	e.cache[name] = nil
	e.mu.Unlock()

	return nil
}

// CopySheet creates dst as a copy of src, styles included.
func (e *Excel) CopySheet(src, dst string) error {
	const op = "grid.Excel.CopySheet"

	from, err := e.f.GetSheetIndex(src)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if from < 0 {
		return apperr.NewLookup("аркуш", src)
	}
	if hasSheet(e.SheetNames(), dst) {
		return fmt.Errorf("%s: %s: %w", op, dst, apperr.ErrSheetExists)
	}

	to, err := e.f.NewSheet(dst)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := e.f.CopySheet(from, to); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	e.mu.Lock()
	delete(e.cache, dst)
	e.mu.Unlock()

	return nil
}

// DeleteSheet removes a sheet; used to drop the default "Sheet1" of a new book.
func (e *Excel) DeleteSheet(name string) error {
	if err := e.f.DeleteSheet(name); err != nil {
		return fmt.Errorf("grid.Excel.DeleteSheet: %w", err)
	}

	e.mu.Lock()
	delete(e.cache, name)
	e.mu.Unlock()

	return nil
}

func (e *Excel) Save() error {
	if err := e.f.SaveAs(e.path); err != nil {
		return fmt.Errorf("grid.Excel.Save: %w", err)
	}
	return nil
}

func (e *Excel) Close() error {
	return e.f.Close()
}

type excelSheet struct {
	book *Excel
	name string
}

func (s *excelSheet) Name() string {
	return s.name
}

func (s *excelSheet) Value(row, col int) any {
	s.book.mu.Lock()
	defer s.book.mu.Unlock()

	rows := s.book.cache[s.name]
	if row < 1 || col < 1 || row > len(rows) || col > len(rows[row-1]) {
		return nil
	}
	return rows[row-1][col-1]
}

func (s *excelSheet) MaxRow() int {
	s.book.mu.Lock()
	defer s.book.mu.Unlock()

	return len(s.book.cache[s.name])
}

func (s *excelSheet) MaxCol() int {
	s.book.mu.Lock()
	defer s.book.mu.Unlock()

	maxCol := 0
	for _, row := range s.book.cache[s.name] {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}
	return maxCol
}

func (s *excelSheet) SetValue(row, col int, v any) error {
	const op = "grid.Sheet.SetValue"

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.book.f.SetCellValue(s.name, cell, v); err != nil {
		return fmt.Errorf("%s: %s!%s: %w", op, s.name, cell, err)
	}

	s.book.mu.Lock()
	defer s.book.mu.Unlock()

	s.book.cache[s.name] = setCached(s.book.cache[s.name], row, col, v)
	return nil
}

// setCached вставляє значення в кеш рядків, розширюючи його за потреби.
func setCached(rows [][]any, row, col int, v any) [][]any {
	if s, ok := v.(string); ok && s == "" {
		v = nil
	}
	if v == nil && (row > len(rows) || col > len(rows[row-1])) {
		return rows
	}

	for len(rows) < row {
		rows = append(rows, nil)
	}
	for len(rows[row-1]) < col {
		rows[row-1] = append(rows[row-1], nil)
	}

	switch val := v.(type) {
	case nil, string, time.Time:
		rows[row-1][col-1] = val
	default:
		if t := Text(val); t != "" {
			rows[row-1][col-1] = t
		} else {
			rows[row-1][col-1] = v
		}
	}
	return rows
}

// OpenDocument is the Opener for xlsx files on disk.
func OpenDocument(path string) (Document, error) {
	book, err := Open(path)
	if err != nil {
		return nil, err
	}
	return book, nil
}
