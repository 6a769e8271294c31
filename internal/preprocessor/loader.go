package preprocessor

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// ---------------- Include resolution ----------------

// ErrNotFound reports that no search directory yields the resource.
// It matches fs.ErrNotExist with errors.Is.
var ErrNotFound = fmt.Errorf("resource not found: %w", fs.ErrNotExist)

// DefaultDirs is the working directory followed by the sibling library
// directory used by the canonical layout.
var DefaultDirs = []string{".", filepath.Join("..", "library")}

// Loader returns the raw content of a named resource.
type Loader interface {
	Load(name string) (string, error)
}

// FileLoader reads resources from the first directory in Dirs that has them.
type FileLoader struct {
	Dirs   []string
	Logger *slog.Logger
}

func NewFileLoader(dirs ...string) *FileLoader {
	if len(dirs) == 0 {
		dirs = DefaultDirs
	}
	return &FileLoader{Dirs: dirs}
}

// Load falls through to the next directory only when the file does not
// exist; any other read error is returned as is.
func (l *FileLoader) Load(name string) (string, error) {
	for _, dir := range l.Dirs {
		cand := filepath.Join(dir, name)
		bs, err := os.ReadFile(cand)
		if err == nil {
			l.logger().Debug("resolved resource", "name", name, "path", filepath.Clean(cand))
			return string(bs), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrNotFound)
}

func (l *FileLoader) logger() *slog.Logger {
	if l.Logger == nil {
		return discard
	}
	return l.Logger
}

var discard = slog.New(slog.DiscardHandler)
