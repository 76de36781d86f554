package loader

import (
	stderrors "errors"
	"io"

	"github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/storage/textfile"
	"github.com/spf13/afero"
)

// ReadFile opens path on fs and hands it to fn, closing it before returning.
// Open failures and stream failures come back as *errors.IOError; errors that
// fn attributes to a line of the file are returned unchanged.
func ReadFile(fs afero.Fs, path string, fn func(io.Reader) error) error {
	f, err := fs.Open(path)
	if err != nil {
		return &errors.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	return Classify(fn(f), path)
}

// Classify wraps err as a read failure of location unless a decoder tied it
// to a specific line.
func Classify(err error, location string) error {
	if err == nil {
		return nil
	}

	var lineErr *textfile.LineError
	if stderrors.As(err, &lineErr) {
		return err
	}
	return &errors.IOError{Op: "read", Path: location, Err: err}
}
