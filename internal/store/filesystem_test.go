package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFileSystemStore(t *testing.T) {
	t.Run("creates the root directory", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "data")

		if _, err := NewFileSystemStore(root); err != nil {
			t.Fatalf("NewFileSystemStore() error = %v", err)
		}
		if _, err := os.Stat(root); err != nil {
			t.Errorf("root directory not created: %v", err)
		}
	})

	t.Run("works with existing directory", func(t *testing.T) {
		if _, err := NewFileSystemStore(t.TempDir()); err != nil {
			t.Fatalf("NewFileSystemStore() error = %v", err)
		}
	})
}

func TestFileSystemStore_GetPut(t *testing.T) {
	t.Run("missing key reports not found", func(t *testing.T) {
		s, err := NewFileSystemStore(t.TempDir())
		if err != nil {
			t.Fatalf("NewFileSystemStore() error = %v", err)
		}

		_, found, err := s.Get("recipes")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if found {
			t.Error("Get() found = true, want false")
		}
	})

	t.Run("put then get round-trips", func(t *testing.T) {
		s, err := NewFileSystemStore(t.TempDir())
		if err != nil {
			t.Fatalf("NewFileSystemStore() error = %v", err)
		}

		blob := []byte(`[{"id":"r1","title":"Pancakes"}]`)
		if err := s.Put("recipes", blob); err != nil {
			t.Fatalf("Put() error = %v", err)
		}

		data, found, err := s.Get("recipes")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !found {
			t.Fatal("Get() found = false, want true")
		}
		if string(data) != string(blob) {
			t.Errorf("Get() data = %q, want %q", data, blob)
		}
	})

	t.Run("put overwrites the previous blob", func(t *testing.T) {
		s, err := NewFileSystemStore(t.TempDir())
		if err != nil {
			t.Fatalf("NewFileSystemStore() error = %v", err)
		}

		s.Put("pantry", []byte("old"))
		if err := s.Put("pantry", []byte("new")); err != nil {
			t.Fatalf("second Put() error = %v", err)
		}

		data, _, _ := s.Get("pantry")
		if string(data) != "new" {
			t.Errorf("Get() data = %q, want %q", data, "new")
		}
	})

	t.Run("stores each key as its own json file", func(t *testing.T) {
		root := t.TempDir()
		s, err := NewFileSystemStore(root)
		if err != nil {
			t.Fatalf("NewFileSystemStore() error = %v", err)
		}

		s.Put("recipes", []byte("r"))
		s.Put("pantry", []byte("p"))

		for _, name := range []string{"recipes.json", "pantry.json"} {
			if _, err := os.Stat(filepath.Join(root, name)); err != nil {
				t.Errorf("expected file %s: %v", name, err)
			}
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		root := t.TempDir()
		s, err := NewFileSystemStore(root)
		if err != nil {
			t.Fatalf("NewFileSystemStore() error = %v", err)
		}

		if err := s.Put("recipes", []byte("data")); err != nil {
			t.Fatalf("Put() error = %v", err)
		}

		entries, err := os.ReadDir(root)
		if err != nil {
			t.Fatalf("failed to read store dir: %v", err)
		}
		for _, entry := range entries {
			if strings.HasPrefix(entry.Name(), ".tmp-") {
				t.Errorf("temp file left behind: %s", entry.Name())
			}
		}
	})
}
