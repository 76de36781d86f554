package data

import "strings"

// Row represents a single table row
// Values are aligned positionally with the table's columns
type Row []string

// NewRow creates a Row holding a copy of the given values
func NewRow(values []string) Row {
	row := make(Row, len(values))
	copy(row, values)
	return row
}

// Copy creates a deep copy of the row to prevent mutation
func (r Row) Copy() Row {
	return NewRow(r)
}

// Equal reports whether both rows hold the same values in the same order
func (r Row) Equal(other Row) bool {
	if len(r) != len(other) {
		return false
	}
	for i, v := range r {
		if v != other[i] {
			return false
		}
	}
	return true
}

// Join renders the row with every value followed by sep
func (r Row) Join(sep string) string {
	var b strings.Builder
	for _, v := range r {
		b.WriteString(v)
		b.WriteString(sep)
	}
	return b.String()
}
