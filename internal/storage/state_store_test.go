package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStateStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.json")
	store := NewStateStore(path)

	st := DefaultState()
	st.NextID = 4
	st.XP = 60
	st.Level = 1
	st.Achievements = []string{"First Task Done"}
	st.Tasks[3] = NewTask("Read Ch.3", "Study", nil, 2, "")
	st.Tasks[3].ID = 3

	if err := store.Save(st); err != nil {
		t.Fatalf("save: %v", err)
	}

	back, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if back.NextID != 4 || back.XP != 60 || back.Level != 1 {
		t.Fatalf("counters lost: %+v", back)
	}
	if len(back.Achievements) != 1 || back.Achievements[0] != "First Task Done" {
		t.Fatalf("achievements lost: %v", back.Achievements)
	}
	if back.Tasks[3] == nil || back.Tasks[3].Title != "Read Ch.3" || back.Tasks[3].ID != 3 {
		t.Fatalf("task lost: %+v", back.Tasks[3])
	}
}

func TestStateStoreLoadMissingFile(t *testing.T) {
	store := NewStateStore(filepath.Join(t.TempDir(), "nope.json"))
	_, err := store.Load()
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error=%v, want ErrNotExist", err)
	}
}

func TestStateStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewStateStore(path).Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestStateStoreSaveCreatesDirAndLeavesNoTemp(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	path := filepath.Join(dir, "planner.json")
	store := NewStateStore(path)

	if err := store.Save(DefaultState()); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Overwrite a second time: the whole file is replaced, not appended.
	st := DefaultState()
	st.XP = 20
	if err := store.Save(st); err != nil {
		t.Fatalf("save again: %v", err)
	}

	back, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if back.XP != 20 {
		t.Fatalf("xp=%d, want 20", back.XP)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("leftover files in data dir: %v", entries)
	}
}
