package writer

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/leengari/tabledb/internal/domain/errors"
	"github.com/spf13/afero"
)

// Options controls how a dump file is written
type Options struct {
	// Atomic writes to a temp file next to the target and renames it into place.
	// Otherwise the target is truncated and written directly.
	Atomic bool
}

// WriteFile creates path on fs and streams the content produced by fn into it.
// The file is closed on every exit path; failures come back as *errors.IOError.
func WriteFile(fs afero.Fs, path string, opts Options, fn func(io.Writer) error) error {
	if opts.Atomic {
		return writeAtomic(fs, path, fn)
	}

	f, err := fs.Create(path)
	if err != nil {
		return &errors.IOError{Op: "open", Path: path, Err: err}
	}

	return writeAndClose(f, path, fn)
}

func writeAtomic(fs afero.Fs, path string, fn func(io.Writer) error) error {
	tmp, err := afero.TempFile(fs, filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return &errors.IOError{Op: "open", Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	if err := writeAndClose(tmp, path, fn); err != nil {
		_ = fs.Remove(tmpPath)
		return err
	}

	// Atomic replace
	if err := fs.Rename(tmpPath, path); err != nil {
		_ = fs.Remove(tmpPath)
		return &errors.IOError{
			Op:   "rename",
			Path: path,
			Err:  fmt.Errorf("temp → %s: %w", filepath.Base(path), err),
		}
	}

	slog.Debug("dump replaced atomically", slog.String("path", path))
	return nil
}

func writeAndClose(f afero.File, path string, fn func(io.Writer) error) error {
	if err := fn(f); err != nil {
		_ = f.Close()
		return &errors.IOError{Op: "write", Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &errors.IOError{Op: "close", Path: path, Err: err}
	}
	return nil
}
