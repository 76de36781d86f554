package repl

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/leengari/tabledb/internal/storage/remote"
	"github.com/leengari/tabledb/internal/store"
)

// errQuit ends the read loop
var errQuit = stderrors.New("quit")

const helpText = `Commands:
  create <table> <column>:<type>...    create a table
  insert <table> <value>...            append a row
  update <table> <row> <column> <value> overwrite one cell
  delete <table> <row>                 remove a row (later rows shift down)
  view <table>                         print a table
  tables                               list tables
  dump [location]                      write the store
  load [location]                      read a dump into the store
  help                                 show this text
  exit | \q                            leave the shell`

// Options configures a Shell
type Options struct {
	Location string // default for dump and load
	S3       remote.S3Config
}

// Shell runs line commands against a store
type Shell struct {
	store *store.Store
	out   io.Writer
	opts  Options
}

// New creates a Shell writing its output to out
func New(st *store.Store, out io.Writer, opts Options) *Shell {
	return &Shell{store: st, out: out, opts: opts}
}

// Start reads commands from in until EOF or an exit command.
// Command errors are printed and the loop continues.
func (sh *Shell) Start(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(sh.out, "Welcome to tabledb")
	fmt.Fprintln(sh.out, "Type 'help' for commands, 'exit' or '\\q' to quit.")

	for {
		fmt.Fprint(sh.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		err := sh.Execute(ctx, scanner.Text())
		if stderrors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(sh.out, "Error: %v\n", err)
		}
	}
}

// Execute runs a single command line
func (sh *Shell) Execute(ctx context.Context, line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "exit", "\\q":
		return errQuit
	case "help":
		fmt.Fprintln(sh.out, helpText)
		return nil
	case "tables":
		return sh.listTables()
	case "create":
		return sh.create(args)
	case "insert":
		if len(args) < 1 {
			return usage("insert <table> <value>...")
		}
		if err := sh.store.InsertRecord(args[0], args[1:]); err != nil {
			return err
		}
		fmt.Fprintln(sh.out, "1 row inserted")
		return nil
	case "update":
		return sh.update(args)
	case "delete":
		return sh.delete(args)
	case "view":
		if len(args) != 1 {
			return usage("view <table>")
		}
		return sh.store.ViewRecords(args[0], sh.out)
	case "dump":
		location, err := sh.location(args)
		if err != nil {
			return err
		}
		if err := remote.Dump(ctx, sh.store, location, sh.opts.S3); err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "Dumped to %s\n", location)
		return nil
	case "load":
		location, err := sh.location(args)
		if err != nil {
			return err
		}
		if err := remote.Load(ctx, sh.store, location, sh.opts.S3); err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "Loaded %s\n", location)
		return nil
	default:
		return fmt.Errorf("unknown command %q (type 'help')", cmd)
	}
}

func (sh *Shell) create(args []string) error {
	if len(args) < 1 {
		return usage("create <table> <column>:<type>...")
	}

	names := make([]string, 0, len(args)-1)
	types := make([]string, 0, len(args)-1)
	for _, def := range args[1:] {
		name, typ, ok := strings.Cut(def, ":")
		if !ok || name == "" {
			return fmt.Errorf("invalid column %q, expected <column>:<type>", def)
		}
		names = append(names, name)
		types = append(types, typ)
	}

	if err := sh.store.CreateTable(args[0], names, types); err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Table '%s' created\n", args[0])
	return nil
}

func (sh *Shell) update(args []string) error {
	if len(args) != 4 {
		return usage("update <table> <row> <column> <value>")
	}
	row, err := parseIndex("row", args[1])
	if err != nil {
		return err
	}
	col, err := parseIndex("column", args[2])
	if err != nil {
		return err
	}

	if err := sh.store.UpdateRecord(args[0], row, col, args[3]); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "1 cell updated")
	return nil
}

func (sh *Shell) delete(args []string) error {
	if len(args) != 2 {
		return usage("delete <table> <row>")
	}
	row, err := parseIndex("row", args[1])
	if err != nil {
		return err
	}

	if err := sh.store.DeleteRecord(args[0], row); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "1 row deleted")
	return nil
}

func (sh *Shell) location(args []string) (string, error) {
	switch len(args) {
	case 0:
		if sh.opts.Location == "" {
			return "", fmt.Errorf("no location given and no default configured")
		}
		return sh.opts.Location, nil
	case 1:
		return args[0], nil
	default:
		return "", usage("dump|load [location]")
	}
}

// listTables prints table names with their shape
func (sh *Shell) listTables() error {
	tw := tabwriter.NewWriter(sh.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "table\tcolumns\trows")
	fmt.Fprintln(tw, "---\t---\t---")

	for _, name := range sh.store.Tables() {
		t, err := sh.store.Table(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\n", t.Name, t.ColumnCount(), t.RowCount())
	}
	return tw.Flush()
}

func parseIndex(what, s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s index %q", what, s)
	}
	return i, nil
}

func usage(u string) error {
	return fmt.Errorf("usage: %s", u)
}
