package store

import (
	"bufio"
	"fmt"
	"io"

	"github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/domain/schema"
)

// viewSink names the output in errors raised while rendering
const viewSink = "view output"

// ViewRecords renders the named table to w: a "Table: <name>" header, the
// column names, then one line per row, each cell followed by a tab.
func (s *Store) ViewRecords(tableName string, w io.Writer) error {
	s.mu.RLock()
	err := s.viewUnsafe(tableName, w)
	s.mu.RUnlock()

	s.notify(Event{Type: EventView, Table: tableName, Err: err})
	return err
}

func (s *Store) viewUnsafe(tableName string, w io.Writer) error {
	t, err := s.lookupUnsafe(tableName)
	if err != nil {
		return err
	}

	if err := render(w, t); err != nil {
		return &errors.IOError{Op: "write", Path: viewSink, Err: err}
	}
	return nil
}

func render(w io.Writer, t *schema.Table) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Table: %s\n", t.Name)
	fmt.Fprintf(bw, "\t%s\n", t.ColumnNames().Join("\t"))
	for _, row := range t.Rows {
		fmt.Fprintf(bw, "\t%s\n", row.Join("\t"))
	}

	return bw.Flush()
}
