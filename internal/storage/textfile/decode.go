package textfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/leengari/tabledb/internal/domain/schema"
)

// Builder receives the contents of a dump as it is decoded.
// Each call applies immediately; nothing is rolled back when a later line fails.
type Builder interface {
	BeginTable(name string) error
	AddColumn(col schema.Column) error
	AddRow(values []string) error
}

// LineError reports which line of the dump a builder call rejected
type LineError struct {
	Line int // 1-based
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Decode reads a dump from r and replays it into b. Lines have no length limit.
// Read failures are returned unwrapped so the caller can classify them.
func Decode(r io.Reader, b Builder) error {
	br := bufio.NewReader(r)

	inBlock := false
	lineNo := 0

	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return readErr
		}
		if readErr == io.EOF && line == "" {
			return nil
		}
		lineNo++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		if err := decodeLine(b, line, &inBlock); err != nil {
			return &LineError{Line: lineNo, Err: err}
		}
		if readErr == io.EOF {
			return nil
		}
	}
}

// decodeLine applies one line. Headers are only recognized between blocks;
// inside a block a "Table: " line is tokenized as a row.
func decodeLine(b Builder, line string, inBlock *bool) error {
	if !*inBlock {
		if strings.HasPrefix(line, tablePrefix) {
			if err := b.BeginTable(line[len(tablePrefix):]); err != nil {
				return err
			}
			*inBlock = true
		}
		return nil
	}

	switch {
	case line == "":
		*inBlock = false
		return nil
	case strings.HasPrefix(line, columnLead):
		return b.AddColumn(ParseColumn(line[len(columnLead):]))
	default:
		return b.AddRow(strings.Fields(line))
	}
}

// ParseColumn reads "name (type)" from a column line without its leading tab.
// Tokens are whitespace separated; a missing type yields an empty type.
func ParseColumn(s string) schema.Column {
	fields := strings.Fields(s)

	var col schema.Column
	if len(fields) > 0 {
		col.Name = fields[0]
	}
	if len(fields) > 1 {
		col.Type = unparen(fields[1])
	}
	return col
}

func unparen(s string) string {
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		return s[1 : len(s)-1]
	}
	return s
}
