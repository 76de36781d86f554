package store

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/leengari/tabledb/internal/domain/data"
	"github.com/leengari/tabledb/internal/domain/errors"
	"github.com/spf13/afero"
	"gotest.tools/v3/assert"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(Options{Fs: afero.NewMemMapFs()})
}

func createStudents(t *testing.T, s *Store) {
	t.Helper()
	assert.NilError(t, s.CreateTable("students",
		[]string{"id", "name", "age"},
		[]string{"int", "string", "int"},
	))
}

func mustRows(t *testing.T, s *Store, name string) []data.Row {
	t.Helper()
	rows, err := s.Rows(name)
	assert.NilError(t, err)
	return rows
}

func TestStudentsScenario(t *testing.T) {
	s := newTestStore(t)
	createStudents(t, s)

	assert.NilError(t, s.InsertRecord("students", []string{"1", "Alice", "20"}))
	assert.NilError(t, s.InsertRecord("students", []string{"2", "Bob", "22"}))

	assert.NilError(t, s.UpdateRecord("students", 1, 2, "23"))
	assert.DeepEqual(t, mustRows(t, s, "students")[1], data.Row{"2", "Bob", "23"})

	assert.NilError(t, s.DeleteRecord("students", 0))
	assert.DeepEqual(t, mustRows(t, s, "students"), []data.Row{{"2", "Bob", "23"}})

	err := s.InsertRecord("students", []string{"3"})
	assert.ErrorIs(t, err, errors.ErrColumnCountMismatch)
	assert.Equal(t, len(mustRows(t, s, "students")), 1)
}

func TestNotFoundLeavesStoreUnchanged(t *testing.T) {
	s := newTestStore(t)
	createStudents(t, s)
	assert.NilError(t, s.InsertRecord("students", []string{"1", "Alice", "20"}))

	var before bytes.Buffer
	assert.NilError(t, s.Dump(&before))

	var out bytes.Buffer
	assert.ErrorIs(t, s.InsertRecord("faculty", []string{"x"}), errors.ErrTableNotFound)
	assert.ErrorIs(t, s.UpdateRecord("faculty", 0, 0, "x"), errors.ErrTableNotFound)
	assert.ErrorIs(t, s.DeleteRecord("faculty", 0), errors.ErrTableNotFound)
	assert.ErrorIs(t, s.ViewRecords("faculty", &out), errors.ErrTableNotFound)

	var after bytes.Buffer
	assert.NilError(t, s.Dump(&after))
	assert.Equal(t, after.String(), before.String())
	assert.Equal(t, out.Len(), 0)
	assert.DeepEqual(t, s.Tables(), []string{"students"})
}

func TestBoundsChecking(t *testing.T) {
	s := newTestStore(t)
	createStudents(t, s)
	assert.NilError(t, s.InsertRecord("students", []string{"1", "Alice", "20"}))
	assert.NilError(t, s.InsertRecord("students", []string{"2", "Bob", "22"}))

	for _, idx := range []int{2, -1} {
		assert.ErrorIs(t, s.UpdateRecord("students", idx, 0, "x"), errors.ErrIndexOutOfRange)
		assert.ErrorIs(t, s.DeleteRecord("students", idx), errors.ErrIndexOutOfRange)
	}
	assert.ErrorIs(t, s.UpdateRecord("students", 0, 3, "x"), errors.ErrIndexOutOfRange)

	var rangeErr *errors.IndexOutOfRangeError
	assert.Assert(t, stderrors.As(s.UpdateRecord("students", 0, -1, "x"), &rangeErr))
	assert.Equal(t, rangeErr.Axis, errors.AxisColumn)

	assert.Equal(t, len(mustRows(t, s, "students")), 2)
}

func TestDeleteShiftsIndices(t *testing.T) {
	s := newTestStore(t)
	createStudents(t, s)
	for _, r := range [][]string{{"1", "a", "1"}, {"2", "b", "2"}, {"3", "c", "3"}} {
		assert.NilError(t, s.InsertRecord("students", r))
	}

	assert.NilError(t, s.DeleteRecord("students", 1))
	assert.DeepEqual(t, mustRows(t, s, "students")[1], data.Row{"3", "c", "3"})
}

func TestArityInvariant(t *testing.T) {
	s := newTestStore(t)
	createStudents(t, s)

	inputs := [][]string{{"1", "a", "1"}, {"2"}, {}, {"3", "c", "3", "extra"}, {"4", "d", "4"}}
	for _, in := range inputs {
		_ = s.InsertRecord("students", in)
	}

	table, err := s.Table("students")
	assert.NilError(t, err)
	assert.Equal(t, table.RowCount(), 2)
	for _, row := range table.Rows {
		assert.Equal(t, len(row), table.ColumnCount())
	}
}

func TestCreateTableArityMismatch(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateTable("t", []string{"a", "b"}, []string{"int"})
	assert.ErrorIs(t, err, errors.ErrArityMismatch)
	assert.Equal(t, len(s.Tables()), 0)
}

func TestCreateTableDuplicate(t *testing.T) {
	s := newTestStore(t)
	createStudents(t, s)

	err := s.CreateTable("students", []string{"x"}, []string{"int"})
	assert.ErrorIs(t, err, errors.ErrDuplicateTable)
	assert.DeepEqual(t, s.Tables(), []string{"students"})
}

func TestAllowDuplicateTablesShadows(t *testing.T) {
	s := New(Options{Fs: afero.NewMemMapFs(), AllowDuplicateTables: true})
	assert.NilError(t, s.CreateTable("t", []string{"a"}, []string{"int"}))
	assert.NilError(t, s.CreateTable("t", []string{"a", "b"}, []string{"int", "int"}))

	assert.DeepEqual(t, s.Tables(), []string{"t", "t"})
	assert.NilError(t, s.InsertRecord("t", []string{"1"}))
	assert.ErrorIs(t, s.InsertRecord("t", []string{"1", "2"}), errors.ErrColumnCountMismatch)
}

func TestCallerValuesAreCopied(t *testing.T) {
	s := newTestStore(t)
	createStudents(t, s)

	values := []string{"1", "Alice", "20"}
	assert.NilError(t, s.InsertRecord("students", values))
	values[1] = "Mallory"

	rows := mustRows(t, s, "students")
	rows[0][2] = "99"

	assert.DeepEqual(t, mustRows(t, s, "students")[0], data.Row{"1", "Alice", "20"})
}

func TestViewRecords(t *testing.T) {
	s := newTestStore(t)
	createStudents(t, s)
	assert.NilError(t, s.InsertRecord("students", []string{"1", "Alice", "20"}))

	var out bytes.Buffer
	assert.NilError(t, s.ViewRecords("students", &out))

	want := "Table: students\n" +
		"\tid\tname\tage\t\n" +
		"\t1\tAlice\t20\t\n"
	assert.Equal(t, out.String(), want)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, stderrors.New("closed pipe") }

func TestViewRecordsSinkFailure(t *testing.T) {
	s := newTestStore(t)
	createStudents(t, s)

	err := s.ViewRecords("students", failingWriter{})
	assert.ErrorIs(t, err, errors.ErrIO)
}

func TestDirtyTracking(t *testing.T) {
	s := newTestStore(t)
	assert.Assert(t, !s.Dirty())

	createStudents(t, s)
	assert.Assert(t, s.Dirty())

	assert.NilError(t, s.DumpToFile("db.txt"))
	assert.Assert(t, !s.Dirty())

	assert.ErrorIs(t, s.DeleteRecord("students", 0), errors.ErrIndexOutOfRange)
	assert.Assert(t, !s.Dirty())

	assert.NilError(t, s.InsertRecord("students", []string{"1", "a", "1"}))
	assert.Assert(t, s.Dirty())
}
