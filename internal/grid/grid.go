// Package grid is the cell-level view of a spreadsheet used by the tabel
// readers and writers. Rows and columns are 1-based. An empty cell reads
// as nil, a date-formatted cell as time.Time, anything else as string.
package grid

import (
	"strconv"
	"strings"
	"time"
)

type Sheet interface {
	Name() string
	Value(row, col int) any
	MaxRow() int
	MaxCol() int
}

type WritableSheet interface {
	Sheet
	// SetValue writes v into the cell; nil clears it.
	SetValue(row, col int, v any) error
}

type Workbook interface {
	SheetNames() []string
	OpenSheet(name string) (Sheet, error)
}

// EditableWorkbook is a workbook that can be changed in place.
type EditableWorkbook interface {
	Workbook
	EditSheet(name string) (WritableSheet, error)
	NewSheet(name string) error
	CopySheet(src, dst string) error
}

// Document is an editable workbook backed by storage.
type Document interface {
	EditableWorkbook
	Save() error
	Close() error
}

// Text renders a cell value as the user sees it.
func Text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format("02.01.2006")
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// TrimmedText is Text without surrounding whitespace.
func TrimmedText(v any) string {
	return strings.TrimSpace(Text(v))
}

func hasSheet(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// Opener opens a workbook file for editing.
type Opener func(path string) (Document, error)
