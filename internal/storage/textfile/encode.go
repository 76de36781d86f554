package textfile

import (
	"bufio"
	"fmt"
	"io"

	"github.com/leengari/tabledb/internal/domain/schema"
)

// Encode writes every table in order to w
func Encode(w io.Writer, tables []*schema.Table) error {
	bw := bufio.NewWriter(w)

	for _, t := range tables {
		if err := encodeTable(bw, t); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func encodeTable(w *bufio.Writer, t *schema.Table) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", tablePrefix, t.Name); err != nil {
		return err
	}

	for _, col := range t.Columns {
		if _, err := fmt.Fprintf(w, "%s%s (%s)\n", columnLead, col.Name, col.Type); err != nil {
			return err
		}
	}

	for _, row := range t.Rows {
		if _, err := w.WriteString(row.Join(fieldSep) + "\n"); err != nil {
			return err
		}
	}

	_, err := w.WriteString("\n")
	return err
}
