package output

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		if err := WriteFile(path, []byte("hello")); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if string(got) != "hello" {
			t.Errorf("file contains %q, want %q", got, "hello")
		}
	})

	t.Run("Truncate", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		if err := os.WriteFile(path, []byte("a much longer previous content"), 0644); err != nil {
			t.Fatalf("seed file: %v", err)
		}

		if err := WriteFile(path, []byte("short")); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		got, _ := os.ReadFile(path)
		if string(got) != "short" {
			t.Errorf("file contains %q, want %q", got, "short")
		}
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.json")
		err := WriteFile(path, []byte("x"))
		if err == nil {
			t.Fatal("WriteFile should fail when the directory does not exist")
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("error = %v, want wrapped fs.ErrNotExist", err)
		}
	})

	t.Run("PathIsDirectory", func(t *testing.T) {
		if err := WriteFile(t.TempDir(), []byte("x")); err == nil {
			t.Error("WriteFile should fail when path is a directory")
		}
	})
}
