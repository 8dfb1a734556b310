package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/idilsaglam/todosh/internal/model"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "todos.json"))
}

func TestLoadMissingFile(t *testing.T) {
	s := tempStore(t)
	items, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if items == nil {
		t.Fatal("expected empty collection, got nil")
	}
	if len(items) != 0 {
		t.Errorf("items: got %d, want 0", len(items))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := tempStore(t)
	now := time.Now().UTC().Truncate(time.Second)
	due := now.AddDate(0, 0, 7)
	original := []model.Item{
		{ID: "1-aa", Title: "Study", CreatedAt: now, UpdatedAt: now},
		{ID: "2-bb", Title: "Ship", DueDate: &due, Completed: true, CreatedAt: now, UpdatedAt: now.Add(time.Minute)},
	}

	if err := s.Save(original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != len(original) {
		t.Fatalf("items: got %d, want %d", len(loaded), len(original))
	}
	for i := range original {
		got, want := loaded[i], original[i]
		if got.ID != want.ID || got.Title != want.Title || got.Completed != want.Completed {
			t.Errorf("item %d: got %+v, want %+v", i, got, want)
		}
		if !got.CreatedAt.Equal(want.CreatedAt) || !got.UpdatedAt.Equal(want.UpdatedAt) {
			t.Errorf("item %d timestamps: got %v/%v, want %v/%v",
				i, got.CreatedAt, got.UpdatedAt, want.CreatedAt, want.UpdatedAt)
		}
	}
	if loaded[0].DueDate != nil {
		t.Errorf("item 0 due date: got %v, want absent", loaded[0].DueDate)
	}
	if loaded[1].DueDate == nil || !loaded[1].DueDate.Equal(due) {
		t.Errorf("item 1 due date: got %v, want %v", loaded[1].DueDate, due)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	items, err := s.Load()
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("err: got %v, want ErrCorrupt", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("items: got %v, want empty collection", items)
	}
}

func TestLoadNullLiteral(t *testing.T) {
	// "null" parses fine but yields a nil slice; Load must still hand the
	// caller a usable empty collection.
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte("null"), 0o644); err != nil {
		t.Fatal(err)
	}
	items, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if items == nil {
		t.Fatal("expected empty collection, got nil")
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := tempStore(t)
	now := time.Now().UTC()
	if err := s.Save([]model.Item{{ID: "a", Title: "A", CreatedAt: now, UpdatedAt: now}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save([]model.Item{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	items, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items after overwrite: got %d, want 0", len(items))
	}
}
