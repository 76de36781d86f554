package writer

import (
	stderrors "errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/leengari/tabledb/internal/domain/errors"
	"github.com/spf13/afero"
	"gotest.tools/v3/assert"
)

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NilError(t, afero.WriteFile(fs, "db.txt", []byte("old contents that are longer"), 0644))

	assert.NilError(t, WriteFile(fs, "db.txt", Options{}, writeString("new")))

	got, err := afero.ReadFile(fs, "db.txt")
	assert.NilError(t, err)
	assert.Equal(t, string(got), "new")
}

func TestWriteFileAtomicLeavesNoTemp(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NilError(t, fs.MkdirAll("data", 0755))

	assert.NilError(t, WriteFile(fs, "data/db.txt", Options{Atomic: true}, writeString("Table: a\n\n")))

	got, err := afero.ReadFile(fs, "data/db.txt")
	assert.NilError(t, err)
	assert.Equal(t, string(got), "Table: a\n\n")

	entries, err := afero.ReadDir(fs, "data")
	assert.NilError(t, err)
	assert.Equal(t, len(entries), 1)
}

func TestWriteFileAtomicKeepsOldOnFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NilError(t, afero.WriteFile(fs, "db.txt", []byte("previous"), 0644))

	boom := stderrors.New("disk full")
	err := WriteFile(fs, "db.txt", Options{Atomic: true}, func(io.Writer) error { return boom })
	assert.ErrorIs(t, err, errors.ErrIO)
	assert.ErrorIs(t, err, boom)

	got, err := afero.ReadFile(fs, "db.txt")
	assert.NilError(t, err)
	assert.Equal(t, string(got), "previous")
}

func TestWriteFileOpenFailure(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := WriteFile(fs, "db.txt", Options{}, writeString("x"))
	assert.ErrorIs(t, err, errors.ErrIO)

	var ioErr *errors.IOError
	assert.Assert(t, stderrors.As(err, &ioErr))
	assert.Equal(t, ioErr.Op, "open")
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "db.txt")

	err := WriteFile(afero.NewOsFs(), path, Options{}, writeString("x"))
	assert.ErrorIs(t, err, errors.ErrIO)
}
