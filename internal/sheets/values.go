// Package sheets adapts a spreadsheet to the application's storage needs.
// Sheets are addressed with A1 ranges and rows are plain value slices; the
// column layout of each sheet is owned by the repository that reads it.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// ValuesAPI is the subset of a spreadsheet API the repositories need.
// Row numbers are 1-based, as shown in the spreadsheet UI.
type ValuesAPI interface {
	Get(ctx context.Context, rng string) ([][]interface{}, error)
	Update(ctx context.Context, rng string, rows [][]interface{}) error
	Append(ctx context.Context, rng string, rows [][]interface{}) error
	DeleteRow(ctx context.Context, sheet string, row int) error
}

// ErrBadRange is returned for ranges the in-memory implementation cannot read.
var ErrBadRange = errors.New("sheets: unsupported range")

// A1 is a parsed range such as "Members!A2:L" or "Members!A5:L5".
type A1 struct {
	Sheet    string
	StartCol int // 0-based
	StartRow int // 1-based
	EndCol   int // 0-based, inclusive
	EndRow   int // 1-based, inclusive; 0 means open-ended
}

// Range formats a range covering cols [startCol, endCol] of rows
// [startRow, endRow]. An endRow of 0 leaves the range open.
func Range(sheet string, startCol, endCol, startRow, endRow int) string {
	end := ColumnName(endCol)
	if endRow > 0 {
		end += strconv.Itoa(endRow)
	}
	return fmt.Sprintf("%s!%s%d:%s", sheet, ColumnName(startCol), startRow, end)
}

// ColumnName converts a 0-based column index into its letter name.
func ColumnName(i int) string {
	name := ""
	for i >= 0 {
		name = string(rune('A'+i%26)) + name
		i = i/26 - 1
	}
	return name
}

// ParseA1 parses the range forms produced by Range.
func ParseA1(rng string) (A1, error) {
	sheet, cells, ok := strings.Cut(rng, "!")
	if !ok || sheet == "" {
		return A1{}, fmt.Errorf("%w: %q", ErrBadRange, rng)
	}
	from, to, ok := strings.Cut(cells, ":")
	if !ok {
		to = from
	}
	sc, sr, err := parseCell(from)
	if err != nil || sr == 0 {
		return A1{}, fmt.Errorf("%w: %q", ErrBadRange, rng)
	}
	ec, er, err := parseCell(to)
	if err != nil {
		return A1{}, fmt.Errorf("%w: %q", ErrBadRange, rng)
	}
	return A1{Sheet: sheet, StartCol: sc, StartRow: sr, EndCol: ec, EndRow: er}, nil
}

func parseCell(s string) (col, row int, err error) {
	i := 0
	col = -1
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		col = (col+1)*26 + int(s[i]-'A')
		i++
	}
	if col < 0 {
		return 0, 0, ErrBadRange
	}
	if i == len(s) {
		return col, 0, nil
	}
	row, err = strconv.Atoi(s[i:])
	return col, row, err
}

// Memory is an in-process ValuesAPI. It backs the "memory" store used for
// local development and the repository tests.
type Memory struct {
	mu     sync.Mutex
	sheets map[string][][]interface{} // sheet -> rows, index 0 is row 1
}

var _ ValuesAPI = (*Memory)(nil)

// NewMemory creates empty sheets with the given header rows.
func NewMemory(headers map[string][]interface{}) *Memory {
	m := &Memory{sheets: make(map[string][][]interface{})}
	for name, header := range headers {
		m.sheets[name] = [][]interface{}{header}
	}
	return m
}

func (m *Memory) Get(_ context.Context, rng string) ([][]interface{}, error) {
	a, err := ParseA1(rng)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := m.sheets[a.Sheet]
	end := len(rows)
	if a.EndRow > 0 && a.EndRow < end {
		end = a.EndRow
	}
	var out [][]interface{}
	for r := a.StartRow - 1; r < end; r++ {
		row := rows[r]
		var cells []interface{}
		for c := a.StartCol; c <= a.EndCol && c < len(row); c++ {
			cells = append(cells, row[c])
		}
		out = append(out, cells)
	}
	return out, nil
}

func (m *Memory) Update(_ context.Context, rng string, rows [][]interface{}) error {
	a, err := ParseA1(rng)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	sheet := m.sheets[a.Sheet]
	for i, values := range rows {
		r := a.StartRow - 1 + i
		for len(sheet) <= r {
			sheet = append(sheet, nil)
		}
		row := sheet[r]
		for len(row) < a.StartCol+len(values) {
			row = append(row, "")
		}
		copy(row[a.StartCol:], values)
		sheet[r] = row
	}
	m.sheets[a.Sheet] = sheet
	return nil
}

func (m *Memory) Append(_ context.Context, rng string, rows [][]interface{}) error {
	a, err := ParseA1(rng)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, values := range rows {
		row := make([]interface{}, a.StartCol, a.StartCol+len(values))
		for i := range row {
			row[i] = ""
		}
		m.sheets[a.Sheet] = append(m.sheets[a.Sheet], append(row, values...))
	}
	return nil
}

func (m *Memory) DeleteRow(_ context.Context, sheet string, row int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := m.sheets[sheet]
	if row < 1 || row > len(rows) {
		return fmt.Errorf("%w: %s row %d", ErrBadRange, sheet, row)
	}
	m.sheets[sheet] = append(rows[:row-1], rows[row:]...)
	return nil
}
