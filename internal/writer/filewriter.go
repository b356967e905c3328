// Package writer exposes sinks for emitted scene text.
package writer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Sink receives a fully emitted scene.
type Sink interface {
	WriteScene(buf []byte) error
}

const defaultPerm fs.FileMode = 0o644

// FileWriter replaces the scene at Path in one rename, so readers never see
// a half-written file.
type FileWriter struct {
	Path string

	// Perm is applied to the new file. Zero keeps the mode of the file being
	// replaced, or 0o644 when Path does not exist yet.
	Perm fs.FileMode
}

// WriteScene stages buf next to Path, flushes it, then renames it into place.
func (w *FileWriter) WriteScene(buf []byte) error {
	perm, err := w.mode()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(w.Path), ".tscnkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := stage(tmp, buf, perm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, w.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (w *FileWriter) mode() (fs.FileMode, error) {
	if w.Perm != 0 {
		return w.Perm, nil
	}
	info, err := os.Stat(w.Path)
	switch {
	case err == nil:
		return info.Mode().Perm(), nil
	case errors.Is(err, fs.ErrNotExist):
		return defaultPerm, nil
	default:
		return 0, fmt.Errorf("stat %s: %w", w.Path, err)
	}
}

func stage(f *os.File, buf []byte, perm fs.FileMode) error {
	if _, err := f.Write(buf); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	return nil
}
