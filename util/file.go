package util

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteFileAtomic writes a file by streaming write into a temporary file in
// the same directory and renaming it over path once everything succeeded.
// On any failure, including a panic in write, the temporary file is removed
// and path is left untouched.
//
// Arguments:
// - path: Destination file path. Its parent directory must exist.
// - write: Callback that produces the file contents.
//
// Returns:
// - error: Error if the temporary file cannot be created, written, synced or renamed.
func WriteFileAtomic(path string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file in %s", dir)
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	buf := bufio.NewWriter(tmp)
	if err = write(buf); err != nil {
		return errors.Wrap(err, "failed to write contents")
	}
	if err = buf.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush contents")
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrap(err, "failed to sync temp file")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close temp file")
	}
	// CreateTemp uses 0600; match what os.Create would give under a usual umask.
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return errors.Wrap(err, "failed to set file mode")
	}
	if err = os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "failed to move temp file to %s", path)
	}
	committed = true
	return nil
}
