package grid

import (
	"fmt"
	"sync"

	"alvares/internal/apperr"
)

// Memory - книга в пам'яті для тестів і проміжних даних.
type Memory struct {
	mu     sync.Mutex
	order  []string
	sheets map[string]*MemorySheet

	// Saves рахує виклики Save
	Saves int
}

func NewMemory() *Memory {
	return &Memory{sheets: make(map[string]*MemorySheet)}
}

// AddSheet creates (or replaces) a sheet filled from rows; rows[0] is row 1.
func (m *Memory) AddSheet(name string, rows [][]any) *MemorySheet {
	s := &MemorySheet{name: name, cells: make(map[[2]int]any)}
	for r, row := range rows {
		for c, v := range row {
			s.set(r+1, c+1, v)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sheets[name]; !ok {
		m.order = append(m.order, name)
	}
	m.sheets[name] = s
	return s
}

func (m *Memory) SheetNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.order...)
}

func (m *Memory) OpenSheet(name string) (Sheet, error) {
	return m.Sheet(name)
}

func (m *Memory) EditSheet(name string) (WritableSheet, error) {
	return m.Sheet(name)
}

// Sheet returns the concrete sheet for assertions.
func (m *Memory) Sheet(name string) (*MemorySheet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sheets[name]
	if !ok {
		return nil, apperr.NewLookup("аркуш", name)
	}
	return s, nil
}

func (m *Memory) NewSheet(name string) error {
	if hasSheet(m.SheetNames(), name) {
		return fmt.Errorf("grid.Memory.NewSheet: %s: %w", name, apperr.ErrSheetExists)
	}
	m.AddSheet(name, nil)
	return nil
}

func (m *Memory) CopySheet(src, dst string) error {
	from, err := m.Sheet(src)
	if err != nil {
		return err
	}
	if hasSheet(m.SheetNames(), dst) {
		return fmt.Errorf("grid.Memory.CopySheet: %s: %w", dst, apperr.ErrSheetExists)
	}

	to := m.AddSheet(dst, nil)

	from.mu.Lock()
	defer from.mu.Unlock()
	for k, v := range from.cells {
		to.cells[k] = v
	}
	return nil
}

func (m *Memory) Save() error {
	m.mu.Lock()
	m.Saves++
	m.mu.Unlock()
	return nil
}

func (m *Memory) Close() error {
	return nil
}

type MemorySheet struct {
	name string

	mu    sync.Mutex
	cells map[[2]int]any
}

func (s *MemorySheet) Name() string {
	return s.name
}

func (s *MemorySheet) Value(row, col int) any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cells[[2]int{row, col}]
}

func (s *MemorySheet) MaxRow() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxRow := 0
	for k := range s.cells {
		if k[0] > maxRow {
			maxRow = k[0]
		}
	}
	return maxRow
}

func (s *MemorySheet) MaxCol() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxCol := 0
	for k := range s.cells {
		if k[1] > maxCol {
			maxCol = k[1]
		}
	}
	return maxCol
}

func (s *MemorySheet) SetValue(row, col int, v any) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("grid.MemorySheet.SetValue: bad cell %d:%d", row, col)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.set(row, col, v)
	return nil
}

func (s *MemorySheet) set(row, col int, v any) {
	if str, ok := v.(string); ok && str == "" {
		v = nil
	}
	if v == nil {
		delete(s.cells, [2]int{row, col})
		return
	}
	s.cells[[2]int{row, col}] = v
}
