package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/reportqa"
)

// AtomicFile writes to a temporary file next to its destination and moves it
// into place on Commit. Readers never observe a partially written file.
type AtomicFile struct {
	*os.File
	path string
	done bool
}

// CreateAtomic opens a temporary file in the directory of path.
// Returns ENOTFOUND if that directory does not exist.
func CreateAtomic(path string) (*AtomicFile, error) {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, reportqa.Errorf(reportqa.ENOTFOUND, "output directory %q not found", dir)
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, reportqa.Errorf(reportqa.EINVALID, "output directory %q is not a directory", dir)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, err
	}
	return &AtomicFile{File: f, path: path}, nil
}

// Commit flushes and closes the temporary file and renames it over the
// destination, replacing any existing file.
func (f *AtomicFile) Commit() error {
	if f.done {
		return nil
	}
	f.done = true

	if err := f.File.Sync(); err != nil {
		f.cleanup()
		return err
	}
	if err := f.File.Close(); err != nil {
		_ = os.Remove(f.File.Name())
		return err
	}
	if err := os.Chmod(f.File.Name(), 0644); err != nil {
		_ = os.Remove(f.File.Name())
		return err
	}
	if err := os.Rename(f.File.Name(), f.path); err != nil {
		_ = os.Remove(f.File.Name())
		return err
	}
	return nil
}

// Abort discards the temporary file. It is a no-op after Commit.
func (f *AtomicFile) Abort() error {
	if f.done {
		return nil
	}
	f.done = true
	return f.cleanup()
}

func (f *AtomicFile) cleanup() error {
	_ = f.File.Close()
	return os.Remove(f.File.Name())
}
