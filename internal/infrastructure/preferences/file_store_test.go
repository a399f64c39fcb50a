package preferences

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/tiagokriok/taskflow/internal/domain"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "state.json"))

	prefs, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if prefs.ViewMode != domain.ViewBoard {
		t.Fatalf("expected default view mode, got %q", prefs.ViewMode)
	}

	want := domain.Preferences{LastBoardID: "b1", LastTeamID: "t1", ViewMode: domain.ViewCalendar}
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	prefs, err := NewFileStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("corrupt file should fall back to defaults, got %v", err)
	}
	if prefs.ViewMode != domain.ViewBoard {
		t.Fatalf("unexpected prefs %+v", prefs)
	}
}
