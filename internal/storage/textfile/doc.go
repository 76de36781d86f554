// Package textfile encodes and decodes the line-oriented dump format.
//
// A dump is a sequence of table blocks:
//
//	Table: <name>
//	\t<col1name> (<col1type>)
//	\t<col2name> (<col2type>)
//	<val1>\t<val2>\t
//	(blank line)
//
// Values are not escaped. The decoder splits rows on any whitespace, so a
// value holding spaces or tabs comes back as several values, leading and
// trailing whitespace is lost, and a row whose first value is empty reads as
// a column line. A "Table: " line only opens a table between blocks; inside
// a block it is read as a row. Existing dump files depend on this layout, so
// it is kept.
package textfile

const (
	tablePrefix = "Table: "
	columnLead  = "\t"
	fieldSep    = "\t"
)
