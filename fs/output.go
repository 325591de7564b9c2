package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// OutputFile writes a file with atomic replace semantics. Content is written
// to a temporary file next to the target; Commit renames it into place and
// Abort discards it.
type OutputFile struct {
	path string
	tmp  *os.File
}

// CreateOutputFile opens a temporary file for the target path, creating
// parent directories as needed.
func CreateOutputFile(path string) (*OutputFile, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, err
	}
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return nil, err
	}
	return &OutputFile{path: path, tmp: tmp}, nil
}

// Writer returns the destination for the file content.
func (f *OutputFile) Writer() io.Writer {
	return f.tmp
}

// Commit closes the temporary file and renames it over the target.
func (f *OutputFile) Commit() error {
	if err := f.tmp.Close(); err != nil {
		_ = os.Remove(f.tmp.Name())
		return err
	}
	if err := os.Rename(f.tmp.Name(), f.path); err != nil {
		_ = os.Remove(f.tmp.Name())
		return fmt.Errorf("rename output: %w", err)
	}
	return nil
}

// Abort discards the temporary file. The target is left untouched.
func (f *OutputFile) Abort() error {
	_ = f.tmp.Close()
	return os.Remove(f.tmp.Name())
}

// WriteOutput runs write against a new OutputFile for path, committing on
// success and aborting on failure.
func WriteOutput(path string, write func(w io.Writer) error) error {
	out, err := CreateOutputFile(path)
	if err != nil {
		return err
	}
	if err := write(out.Writer()); err != nil {
		_ = out.Abort()
		return err
	}
	return out.Commit()
}
