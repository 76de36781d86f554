package schema

import (
	"github.com/leengari/tabledb/internal/domain/data"
	"github.com/leengari/tabledb/internal/domain/errors"
)

// Table represents a named, fixed-shape collection of rows under a column schema
type Table struct {
	Name    string
	Columns []Column
	Rows    []data.Row
	Dirty   bool // tracks if table has unsaved changes
}

// NewTable creates an empty table owning a copy of the given columns
func NewTable(name string, columns []Column) *Table {
	cols := make([]Column, len(columns))
	copy(cols, columns)
	return &Table{
		Name:    name,
		Columns: cols,
		Rows:    make([]data.Row, 0),
	}
}

// MarkDirty marks the table as having unsaved changes
// This should be called after any mutation operation (INSERT, UPDATE, DELETE)
func (t *Table) MarkDirty() {
	t.Dirty = true
}

// ColumnCount returns the number of columns in the schema
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// RowCount returns the number of stored rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnNames returns the column names in schema order
func (t *Table) ColumnNames() data.Row {
	names := make(data.Row, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// AddColumn appends a column to a table that has no rows yet.
// Once a row exists the shape is fixed.
func (t *Table) AddColumn(col Column) error {
	if len(t.Rows) > 0 {
		return &errors.SchemaLockedError{TableName: t.Name, Column: col.Name}
	}
	t.Columns = append(t.Columns, col)
	return nil
}

// Insert appends a copy of values as a new row
func (t *Table) Insert(values []string) error {
	if len(values) != len(t.Columns) {
		return &errors.ColumnCountMismatchError{
			TableName: t.Name,
			Expected:  len(t.Columns),
			Got:       len(values),
		}
	}

	t.Rows = append(t.Rows, data.NewRow(values))
	t.MarkDirty()
	return nil
}

// Update overwrites exactly one cell
func (t *Table) Update(rowIndex, columnIndex int, value string) error {
	if err := t.checkRow(rowIndex); err != nil {
		return err
	}
	if columnIndex < 0 || columnIndex >= len(t.Columns) {
		return &errors.IndexOutOfRangeError{
			TableName: t.Name,
			Axis:      errors.AxisColumn,
			Index:     columnIndex,
			Len:       len(t.Columns),
		}
	}

	t.Rows[rowIndex][columnIndex] = value
	t.MarkDirty()
	return nil
}

// Delete removes the row at rowIndex; later rows shift down by one
func (t *Table) Delete(rowIndex int) error {
	if err := t.checkRow(rowIndex); err != nil {
		return err
	}

	t.Rows = append(t.Rows[:rowIndex], t.Rows[rowIndex+1:]...)
	t.MarkDirty()
	return nil
}

// Copy creates a deep copy of the table
func (t *Table) Copy() *Table {
	cp := NewTable(t.Name, t.Columns)
	cp.Dirty = t.Dirty
	for _, row := range t.Rows {
		cp.Rows = append(cp.Rows, row.Copy())
	}
	return cp
}

func (t *Table) checkRow(rowIndex int) error {
	if rowIndex < 0 || rowIndex >= len(t.Rows) {
		return &errors.IndexOutOfRangeError{
			TableName: t.Name,
			Axis:      errors.AxisRow,
			Index:     rowIndex,
			Len:       len(t.Rows),
		}
	}
	return nil
}
