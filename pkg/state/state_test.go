package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	st, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Mode != ModeChapter {
		t.Errorf("Mode = %s, want chapter", st.Mode)
	}
	if st.Cursor != (Cursor{Book: 1, Chapter: 1, Verse: 1}) {
		t.Errorf("Cursor = %+v, want Genesis 1:1", st.Cursor)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	st := NewAppState()
	st.Mode = ModeVerse
	st.Cursor = Cursor{Book: 43, Chapter: 3, Verse: 16}
	st.LastAdvanceDate = "2026-08-31"
	st.Palette = "Ocean"
	st.Dark = true

	if err := store.Save(st); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != st {
		t.Errorf("round trip = %+v, want %+v", got, st)
	}

	// No temp files should survive an atomic save.
	entries, err := os.ReadDir(store.Dir())
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestDefaultDirHonorsXDGConfigHome(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	store, err := NewFileStore("")
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	want := filepath.Join(configHome, "versewall")
	if store.Dir() != want {
		t.Errorf("Dir = %s, want %s", store.Dir(), want)
	}
}

func TestLoadRepairsInvalidFields(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	raw := `{"mode": "sideways", "cursor": {"book": 0, "chapter": -3, "verse": 0}}`
	if err := os.WriteFile(store.Path(), []byte(raw), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	st, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Mode != ModeChapter {
		t.Errorf("Mode = %s, want repaired chapter", st.Mode)
	}
	if st.Cursor != (Cursor{Book: 1, Chapter: 1, Verse: 1}) {
		t.Errorf("Cursor = %+v, want repaired 1:1:1", st.Cursor)
	}
}

func TestParseMode(t *testing.T) {
	if m, ok := ParseMode(""); !ok || m != ModeChapter {
		t.Errorf("empty mode = %s, %v", m, ok)
	}
	if m, ok := ParseMode("verse"); !ok || m != ModeVerse {
		t.Errorf("verse mode = %s, %v", m, ok)
	}
	if _, ok := ParseMode("sideways"); ok {
		t.Error("invalid mode should be rejected")
	}
}

// fakeStructure is a canon with fixed chapter and verse counts.
type fakeStructure struct {
	chaptersPerBook int
	versesPerChap   int
}

func (f fakeStructure) MaxChapter(ctx context.Context, book int) (int, error) {
	return f.chaptersPerBook, nil
}

func (f fakeStructure) MaxVerse(ctx context.Context, book, chapter int) (int, error) {
	return f.versesPerChap, nil
}

func TestAdvanceChapterMode(t *testing.T) {
	ctx := context.Background()
	bible := fakeStructure{chaptersPerBook: 2, versesPerChap: 3}

	st := NewAppState()
	moved, err := AdvanceIfNeeded(ctx, &st, bible, false)
	if err != nil || !moved {
		t.Fatalf("advance: moved=%v err=%v", moved, err)
	}
	if st.Cursor != (Cursor{Book: 1, Chapter: 2, Verse: 1}) {
		t.Errorf("Cursor = %+v, want chapter 2", st.Cursor)
	}

	// Same day: no further movement without force.
	moved, err = AdvanceIfNeeded(ctx, &st, bible, false)
	if err != nil || moved {
		t.Errorf("second advance same day: moved=%v err=%v", moved, err)
	}

	// Forced: rolls into the next book.
	moved, err = AdvanceIfNeeded(ctx, &st, bible, true)
	if err != nil || !moved {
		t.Fatalf("forced advance: moved=%v err=%v", moved, err)
	}
	if st.Cursor != (Cursor{Book: 2, Chapter: 1, Verse: 1}) {
		t.Errorf("Cursor = %+v, want next book", st.Cursor)
	}
}

func TestAdvanceVerseMode(t *testing.T) {
	ctx := context.Background()
	bible := fakeStructure{chaptersPerBook: 1, versesPerChap: 2}

	st := NewAppState()
	st.Mode = ModeVerse
	if _, err := AdvanceIfNeeded(ctx, &st, bible, true); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if st.Cursor != (Cursor{Book: 1, Chapter: 1, Verse: 2}) {
		t.Errorf("Cursor = %+v, want verse 2", st.Cursor)
	}

	// Last verse of the only chapter: falls through to the next book.
	if _, err := AdvanceIfNeeded(ctx, &st, bible, true); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if st.Cursor != (Cursor{Book: 2, Chapter: 1, Verse: 1}) {
		t.Errorf("Cursor = %+v, want next book", st.Cursor)
	}
}

func TestAdvanceWrapsCanon(t *testing.T) {
	ctx := context.Background()
	bible := fakeStructure{chaptersPerBook: 1, versesPerChap: 1}

	st := NewAppState()
	st.Cursor = Cursor{Book: 66, Chapter: 1, Verse: 1}
	if _, err := AdvanceIfNeeded(ctx, &st, bible, true); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if st.Cursor != (Cursor{Book: 1, Chapter: 1, Verse: 1}) {
		t.Errorf("Cursor = %+v, want wrap to Genesis", st.Cursor)
	}
}

func TestAdvanceRecordsDate(t *testing.T) {
	old := today
	today = func() string { return "2026-08-31" }
	defer func() { today = old }()

	st := NewAppState()
	if _, err := AdvanceIfNeeded(context.Background(), &st, fakeStructure{2, 2}, false); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if st.LastAdvanceDate != "2026-08-31" {
		t.Errorf("LastAdvanceDate = %q", st.LastAdvanceDate)
	}
}
