// Package store holds an ordered collection of tables in memory and
// persists it through the textfile dump format.
//
// A Store serializes its callers with a single lock; it starts no goroutines
// and every operation runs to completion before returning. Row and column
// indices are positional: deleting a row shifts every later row down by one,
// so callers must re-resolve indices after a delete.
package store

import (
	"log/slog"
	"sync"

	"github.com/leengari/tabledb/internal/domain/data"
	"github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/domain/schema"
	"github.com/spf13/afero"
)

// Options configures a Store
type Options struct {
	// Fs is where DumpToFile and LoadFromFile resolve paths. Defaults to the OS file system.
	Fs afero.Fs

	// AllowDuplicateTables lets CreateTable append a table whose name is
	// already taken. Lookups keep resolving to the first one.
	AllowDuplicateTables bool

	// AtomicDump writes dumps to a temp file and renames it over the target.
	AtomicDump bool

	Logger *slog.Logger
}

// Store is the top-level container of all tables
type Store struct {
	mu        sync.RWMutex
	tables    []*schema.Table
	opts      Options
	logger    *slog.Logger
	observers []Observer // Observers for operation events
}

// New creates an empty Store
func New(opts Options) *Store {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		tables:    make([]*schema.Table, 0),
		opts:      opts,
		logger:    logger,
		observers: make([]Observer, 0),
	}
}

// CreateTable appends a new table with zero rows.
// Names and types must have the same length.
func (s *Store) CreateTable(name string, columnNames, columnTypes []string) error {
	s.mu.Lock()
	err := s.createTableUnsafe(name, columnNames, columnTypes)
	s.mu.Unlock()

	s.notify(Event{Type: EventCreateTable, Table: name, Err: err, Data: len(columnNames)})
	return err
}

// createTableUnsafe must be called while holding the write lock
func (s *Store) createTableUnsafe(name string, columnNames, columnTypes []string) error {
	if len(columnNames) != len(columnTypes) {
		return &errors.ArityMismatchError{
			TableName: name,
			Names:     len(columnNames),
			Types:     len(columnTypes),
		}
	}

	if !s.opts.AllowDuplicateTables {
		if _, err := s.lookupUnsafe(name); err == nil {
			return &errors.DuplicateTableError{TableName: name}
		}
	}

	table := schema.NewTable(name, schema.NewColumns(columnNames, columnTypes))
	table.MarkDirty()
	s.tables = append(s.tables, table)
	return nil
}

// lookupUnsafe resolves name to the first matching table.
// Must be called while holding a lock.
func (s *Store) lookupUnsafe(name string) (*schema.Table, error) {
	for _, t := range s.tables {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, &errors.TableNotFoundError{TableName: name}
}

// Tables returns the table names in store order
func (s *Store) Tables() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.tables))
	for i, t := range s.tables {
		names[i] = t.Name
	}
	return names
}

// Table returns a deep copy of the named table
func (s *Store) Table(name string) (*schema.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.lookupUnsafe(name)
	if err != nil {
		return nil, err
	}
	return t.Copy(), nil
}

// Rows returns copies of the named table's rows
func (s *Store) Rows(name string) ([]data.Row, error) {
	t, err := s.Table(name)
	if err != nil {
		return nil, err
	}
	return t.Rows, nil
}

// Dirty reports whether any table changed since the last successful dump or load
func (s *Store) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tables {
		if t.Dirty {
			return true
		}
	}
	return false
}
