package schema

// Column is a schema slot with a name and a free-form type label.
// The type is never checked against cell values.
type Column struct {
	Name string
	Type string
}

// NewColumns zips names and types into columns.
// The caller guarantees both slices have the same length.
func NewColumns(names, types []string) []Column {
	cols := make([]Column, len(names))
	for i := range names {
		cols[i] = Column{Name: names[i], Type: types[i]}
	}
	return cols
}
