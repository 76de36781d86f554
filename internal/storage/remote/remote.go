// Package remote reads and writes dumps at locations other than local paths:
// s3://bucket/key objects and, for reading only, http(s):// URLs.
package remote

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/storage/loader"
)

const (
	schemeS3    = "s3://"
	schemeHTTP  = "http://"
	schemeHTTPS = "https://"
)

// httpTimeout bounds a single dump download
var httpTimeout = 5 * time.Minute

// Dumper is the part of the store that writes dumps
type Dumper interface {
	DumpTo(w io.WriteCloser) error
	DumpToFile(path string) error
}

// Loader is the part of the store that reads dumps
type Loader interface {
	Load(r io.Reader) error
	LoadFromFile(path string) error
}

// IsRemote reports whether location names an S3 object or an HTTP resource
func IsRemote(location string) bool {
	return strings.HasPrefix(location, schemeS3) ||
		strings.HasPrefix(location, schemeHTTP) ||
		strings.HasPrefix(location, schemeHTTPS)
}

// Dump writes the store to location, local or remote
func Dump(ctx context.Context, st Dumper, location string, cfg S3Config) error {
	if !IsRemote(location) {
		return st.DumpToFile(location)
	}

	w, err := Create(ctx, location, cfg)
	if err != nil {
		return err
	}
	// DumpTo closes w, which is where S3 uploads happen
	if err := st.DumpTo(w); err != nil {
		var ioErr *errors.IOError
		if stderrors.As(err, &ioErr) {
			return err
		}
		return &errors.IOError{Op: "write", Path: location, Err: err}
	}
	return nil
}

// Load reads location, local or remote, into the store
func Load(ctx context.Context, st Loader, location string, cfg S3Config) error {
	if !IsRemote(location) {
		return st.LoadFromFile(location)
	}

	r, err := Open(ctx, location, cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	return loader.Classify(st.Load(r), location)
}

// Open opens a reader for a remote location.
// Failures come back as *errors.IOError.
func Open(ctx context.Context, location string, cfg S3Config) (io.ReadCloser, error) {
	var (
		rc  io.ReadCloser
		err error
	)
	switch {
	case strings.HasPrefix(location, schemeS3):
		rc, err = openS3Reader(ctx, location, cfg)
	case strings.HasPrefix(location, schemeHTTP), strings.HasPrefix(location, schemeHTTPS):
		rc, err = openHTTPReader(ctx, location)
	default:
		err = fmt.Errorf("unsupported location scheme")
	}
	if err != nil {
		return nil, &errors.IOError{Op: "open", Path: location, Err: err}
	}
	return rc, nil
}

// Create opens a writer for a remote location. Only S3 supports writes;
// the object is uploaded when the writer is closed.
func Create(ctx context.Context, location string, cfg S3Config) (io.WriteCloser, error) {
	if !strings.HasPrefix(location, schemeS3) {
		return nil, &errors.IOError{
			Op:   "open",
			Path: location,
			Err:  fmt.Errorf("location is read-only"),
		}
	}

	w, err := openS3Writer(ctx, location, cfg)
	if err != nil {
		return nil, &errors.IOError{Op: "open", Path: location, Err: err}
	}
	return w, nil
}

// openHTTPReader opens an HTTP GET reader
func openHTTPReader(ctx context.Context, url string) (io.ReadCloser, error) {
	client := &http.Client{
		Timeout: httpTimeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP request returned status %d", resp.StatusCode)
	}

	return resp.Body, nil
}
