package store

import (
	"io"
	"log/slog"

	"github.com/leengari/tabledb/internal/domain/schema"
	"github.com/leengari/tabledb/internal/storage/loader"
	"github.com/leengari/tabledb/internal/storage/textfile"
	"github.com/leengari/tabledb/internal/storage/writer"
)

// DumpToFile serializes every table in store order to path, overwriting it.
// Failures come back as *errors.IOError.
func (s *Store) DumpToFile(path string) error {
	s.mu.Lock()
	err := writer.WriteFile(s.opts.Fs, path, writer.Options{Atomic: s.opts.AtomicDump}, s.encodeUnsafe)
	if err == nil {
		s.markCleanUnsafe()
	}
	tables := len(s.tables)
	s.mu.Unlock()

	s.notify(Event{Type: EventDump, Err: err, Data: path})
	if err != nil {
		return err
	}

	s.logger.Info("Store dumped",
		slog.String("path", path),
		slog.Int("table_count", tables),
	)
	return nil
}

// Dump writes every table in store order to w.
// Dirty flags are left alone since w gives no sign the dump was persisted.
func (s *Store) Dump(w io.Writer) error {
	s.mu.RLock()
	err := s.encodeUnsafe(w)
	s.mu.RUnlock()

	s.notify(Event{Type: EventDump, Err: err})
	return err
}

// DumpTo writes every table to w and closes it.
// Dirty flags clear only when both the write and the close succeed.
func (s *Store) DumpTo(w io.WriteCloser) error {
	s.mu.Lock()
	err := s.encodeUnsafe(w)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		s.markCleanUnsafe()
	}
	s.mu.Unlock()

	s.notify(Event{Type: EventDump, Err: err})
	return err
}

// encodeUnsafe must be called while holding the lock
func (s *Store) encodeUnsafe(w io.Writer) error {
	return textfile.Encode(w, s.tables)
}

// markCleanUnsafe must be called while holding the write lock
func (s *Store) markCleanUnsafe() {
	for _, t := range s.tables {
		t.Dirty = false
	}
}

// LoadFromFile reads a dump from path into the store without clearing it first.
// Tables and rows applied before a failing line stay in the store.
func (s *Store) LoadFromFile(path string) error {
	s.mu.Lock()
	tl := &tableLoader{store: s}
	err := loader.ReadFile(s.opts.Fs, path, tl.decode)
	s.mu.Unlock()

	s.notify(Event{Type: EventLoad, Err: err, Data: path})
	if err != nil {
		return err
	}

	s.logger.Info("Store loaded",
		slog.String("path", path),
		slog.Int("tables_loaded", tl.tables),
		slog.Int("rows_loaded", tl.rows),
	)
	return nil
}

// Load reads a dump from r into the store without clearing it first
func (s *Store) Load(r io.Reader) error {
	s.mu.Lock()
	tl := &tableLoader{store: s}
	err := tl.decode(r)
	s.mu.Unlock()

	s.notify(Event{Type: EventLoad, Err: err})
	return err
}

// tableLoader replays a decoded dump into the store.
// The store's write lock is held for the whole decode.
type tableLoader struct {
	store   *Store
	current *schema.Table
	loaded  []*schema.Table
	tables  int
	rows    int
}

func (l *tableLoader) decode(r io.Reader) error {
	if err := textfile.Decode(r, l); err != nil {
		return err
	}
	// The store now matches what was read
	for _, t := range l.loaded {
		t.Dirty = false
	}
	return nil
}

func (l *tableLoader) BeginTable(name string) error {
	if err := l.store.createTableUnsafe(name, nil, nil); err != nil {
		return err
	}
	l.current = l.store.tables[len(l.store.tables)-1]
	l.loaded = append(l.loaded, l.current)
	l.tables++
	return nil
}

func (l *tableLoader) AddColumn(col schema.Column) error {
	return l.current.AddColumn(col)
}

// AddRow inserts into the table the current block created, not the first
// table carrying its name
func (l *tableLoader) AddRow(values []string) error {
	if err := l.current.Insert(values); err != nil {
		return err
	}
	l.rows++
	return nil
}
