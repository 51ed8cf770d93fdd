package store

import (
	"bytes"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	t.Run("get before put reports not found", func(t *testing.T) {
		s := NewMemoryStore()

		data, found, err := s.Get("recipes")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if found {
			t.Error("Get() found = true, want false")
		}
		if data != nil {
			t.Errorf("Get() data = %v, want nil", data)
		}
	})

	t.Run("put then get round-trips", func(t *testing.T) {
		s := NewMemoryStore()

		if err := s.Put("recipes", []byte(`[{"id":"r1"}]`)); err != nil {
			t.Fatalf("Put() error = %v", err)
		}

		data, found, err := s.Get("recipes")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !found {
			t.Fatal("Get() found = false, want true")
		}
		if !bytes.Equal(data, []byte(`[{"id":"r1"}]`)) {
			t.Errorf("Get() data = %q, want stored blob", data)
		}
	})

	t.Run("put replaces the previous blob", func(t *testing.T) {
		s := NewMemoryStore()

		s.Put("recipes", []byte("old"))
		s.Put("recipes", []byte("new"))

		data, _, _ := s.Get("recipes")
		if string(data) != "new" {
			t.Errorf("Get() data = %q, want %q", data, "new")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := NewMemoryStore()

		s.Put("recipes", []byte("r"))
		s.Put("pantry", []byte("p"))

		data, _, _ := s.Get("pantry")
		if string(data) != "p" {
			t.Errorf("Get(pantry) data = %q, want %q", data, "p")
		}
	})

	t.Run("callers cannot mutate stored data", func(t *testing.T) {
		s := NewMemoryStore()

		original := []byte("abc")
		s.Put("recipes", original)
		original[0] = 'X'

		data, _, _ := s.Get("recipes")
		if string(data) != "abc" {
			t.Errorf("Get() data = %q, want %q", data, "abc")
		}

		data[0] = 'Y'
		again, _, _ := s.Get("recipes")
		if string(again) != "abc" {
			t.Errorf("Get() data = %q after caller mutation, want %q", again, "abc")
		}
	})
}
