// Package table holds a header-plus-rows view of a tabular file and the
// readers and writers for the CSV and XLSX formats it travels in.
package table

import (
	"fmt"
	"strings"
)

// Table is a rectangular grid of string cells. Every row has exactly
// len(Header) cells once it has been added through Append or a reader.
type Table struct {
	Header []string
	Rows   [][]string
}

func New(header ...string) *Table {
	return &Table{Header: append([]string(nil), header...)}
}

// Append adds a row, padding short rows with empty cells. Extra cells grow
// the header with generated column names so no value is dropped.
func (t *Table) Append(row ...string) {
	for len(row) > len(t.Header) {
		t.Header = append(t.Header, fmt.Sprintf("column_%d", len(t.Header)+1))
		for i := range t.Rows {
			t.Rows[i] = append(t.Rows[i], "")
		}
	}
	cells := make([]string, len(t.Header))
	copy(cells, row)
	t.Rows = append(t.Rows, cells)
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Value returns the cell at row for the named column, or "" when the column
// does not exist.
func (t *Table) Value(row int, column string) string {
	idx := t.ColumnIndex(column)
	if idx < 0 || row < 0 || row >= len(t.Rows) || idx >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][idx]
}

// SetColumn writes values into the named column, adding it at the end if it
// does not exist yet. values must have one entry per row.
func (t *Table) SetColumn(name string, values []string) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("column %q has %d values for %d rows", name, len(values), len(t.Rows))
	}
	idx := t.ColumnIndex(name)
	if idx < 0 {
		t.Header = append(t.Header, name)
		idx = len(t.Header) - 1
		for i := range t.Rows {
			t.Rows[i] = append(t.Rows[i], "")
		}
	}
	for i, v := range values {
		t.Rows[i][idx] = v
	}
	return nil
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	c := New(t.Header...)
	c.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		c.Rows[i] = append([]string(nil), row...)
	}
	return c
}

func fromRecords(records [][]string) *Table {
	if len(records) == 0 {
		return New()
	}
	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	t := New(header...)
	for _, row := range records[1:] {
		t.Append(row...)
	}
	return t
}
