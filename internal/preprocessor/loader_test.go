package preprocessor

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFileLoaderSearchOrder(t *testing.T) {
	root := t.TempDir()
	work, lib := filepath.Join(root, "workspace"), filepath.Join(root, "library")
	writeFile(t, filepath.Join(work, "both.h"), "work")
	writeFile(t, filepath.Join(lib, "both.h"), "lib")
	writeFile(t, filepath.Join(lib, "lib_only.h"), "lib only")

	l := NewFileLoader(work, lib)
	for name, want := range map[string]string{"both.h": "work", "lib_only.h": "lib only"} {
		got, err := l.Load(name)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}

	_, err := l.Load("missing.h")
	if !errors.Is(err, ErrNotFound) || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v; want ErrNotFound", err)
	}
	if diff := cmp.Diff(`"missing.h": resource not found: file does not exist`, err.Error()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFileLoaderDefaultDirs(t *testing.T) {
	root := t.TempDir()
	work, lib := filepath.Join(root, "workspace"), filepath.Join(root, "library")
	writeFile(t, filepath.Join(work, "soln.cpp"), `#include "two_sat.hpp"`)
	writeFile(t, filepath.Join(lib, "two_sat.hpp"), "struct two_sat {};")
	t.Chdir(work)

	got, err := NewIncluder(NewFileLoader()).Process("soln.cpp", nil)
	if err != nil {
		t.Fatalf("process error: %v", err)
	}
	if diff := cmp.Diff("struct two_sat {};", got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFileLoaderDirectoryIsNotSkipped(t *testing.T) {
	root := t.TempDir()
	work, lib := filepath.Join(root, "workspace"), filepath.Join(root, "library")
	if err := os.MkdirAll(filepath.Join(work, "x.h"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(lib, "x.h"), "lib")

	_, err := NewFileLoader(work, lib).Load("x.h")
	if err == nil {
		t.Fatal("expected error reading a directory")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("got %v; want a read error, not ErrNotFound", err)
	}
}
