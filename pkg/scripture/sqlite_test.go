package scripture

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	_ "modernc.org/sqlite"
)

// newTestDB builds a small two-book database with the standard schema.
func newTestDB(t *testing.T, withMeta bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kjv.sqlite")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE verses (book INTEGER, chapter INTEGER, verse INTEGER, text TEXT)`,
		`INSERT INTO verses VALUES (1, 1, 1, 'In the beginning{H7225} God{H430} created{H1254}')`,
		`INSERT INTO verses VALUES (1, 1, 2, 'And the earth{H776} was without form')`,
		`INSERT INTO verses VALUES (1, 2, 1, 'Thus the heavens{H8064} were finished')`,
		`INSERT INTO verses VALUES (43, 1, 1, 'In the beginning was the Word{G3056}')`,
		`INSERT INTO verses VALUES (43, 1, 2, 'The same was in the beginning with God{G2316}')`,
	}
	if withMeta {
		stmts = append(stmts,
			`CREATE TABLE meta (field TEXT, value TEXT)`,
			`INSERT INTO meta VALUES ('name', 'King James Version')`,
		)
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("exec %q: %v", s, err)
		}
	}
	return path
}

func openTestRepo(t *testing.T, withMeta bool) *SQLiteRepository {
	t.Helper()
	repo, err := OpenSQLite(context.Background(), newTestDB(t, withMeta))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestOpenSQLiteRejectsMissingVersesTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.sqlite")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE notes (id INTEGER)`); err != nil {
		t.Fatalf("exec: %v", err)
	}
	db.Close()

	if _, err := OpenSQLite(context.Background(), path); err == nil {
		t.Error("OpenSQLite should reject a database with no verses table")
	}
}

func TestTranslation(t *testing.T) {
	ctx := context.Background()

	withMeta := openTestRepo(t, true)
	tr, err := withMeta.Translation(ctx)
	if err != nil {
		t.Fatalf("Translation: %v", err)
	}
	if tr.ID != "kjv" || tr.Name != "King James Version" {
		t.Errorf("Translation = %+v", tr)
	}

	bare := openTestRepo(t, false)
	tr, err = bare.Translation(ctx)
	if err != nil {
		t.Fatalf("Translation: %v", err)
	}
	if tr.Name != "kjv" {
		t.Errorf("without meta, Name = %q, want file stem", tr.Name)
	}
}

func TestChapterTextStripsTags(t *testing.T) {
	repo := openTestRepo(t, false)
	verses, err := repo.ChapterText(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("ChapterText: %v", err)
	}
	want := []Verse{
		{1, "In the beginning God created"},
		{2, "And the earth was without form"},
	}
	if !reflect.DeepEqual(verses, want) {
		t.Errorf("ChapterText = %+v, want %+v", verses, want)
	}
}

func TestVerseText(t *testing.T) {
	repo := openTestRepo(t, false)
	ctx := context.Background()

	got, err := repo.VerseText(ctx, 43, 1, 1)
	if err != nil {
		t.Fatalf("VerseText: %v", err)
	}
	if got != "In the beginning was the Word" {
		t.Errorf("VerseText = %q", got)
	}

	got, err = repo.VerseText(ctx, 43, 9, 9)
	if err != nil || got != "" {
		t.Errorf("missing verse = %q, %v; want empty, nil", got, err)
	}
}

func TestChapterRawTextsKeepTags(t *testing.T) {
	repo := openTestRepo(t, false)
	texts, err := repo.ChapterRawTexts(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("ChapterRawTexts: %v", err)
	}
	if len(texts) != 2 || texts[0] != "In the beginning{H7225} God{H430} created{H1254}" {
		t.Errorf("ChapterRawTexts = %v", texts)
	}
}

func TestStructureQueries(t *testing.T) {
	repo := openTestRepo(t, false)
	ctx := context.Background()

	chapters, err := repo.Chapters(ctx, 1)
	if err != nil || !reflect.DeepEqual(chapters, []int{1, 2}) {
		t.Errorf("Chapters = %v, %v", chapters, err)
	}

	verses, err := repo.Verses(ctx, 1, 1)
	if err != nil || !reflect.DeepEqual(verses, []int{1, 2}) {
		t.Errorf("Verses = %v, %v", verses, err)
	}

	if n, _ := repo.MaxChapter(ctx, 1); n != 2 {
		t.Errorf("MaxChapter = %d, want 2", n)
	}
	if n, _ := repo.MaxChapter(ctx, 50); n != 1 {
		t.Errorf("MaxChapter for absent book = %d, want 1", n)
	}
	if n, _ := repo.MaxVerse(ctx, 1, 1); n != 2 {
		t.Errorf("MaxVerse = %d, want 2", n)
	}

	lengths, err := repo.BookLengths(ctx)
	if err != nil {
		t.Fatalf("BookLengths: %v", err)
	}
	want := []BookLength{{1, 3}, {43, 2}}
	if !reflect.DeepEqual(lengths, want) {
		t.Errorf("BookLengths = %v, want %v", lengths, want)
	}
}

func TestVerseOrdinal(t *testing.T) {
	repo := openTestRepo(t, false)
	ctx := context.Background()

	cases := []struct {
		book, chapter, verse, want int
	}{
		{1, 1, 1, 1},
		{1, 1, 2, 2},
		{1, 2, 1, 3},
		{43, 1, 1, 4},
		{43, 1, 2, 5},
	}
	for _, c := range cases {
		got, err := repo.VerseOrdinal(ctx, c.book, c.chapter, c.verse)
		if err != nil {
			t.Fatalf("VerseOrdinal: %v", err)
		}
		if got != c.want {
			t.Errorf("VerseOrdinal(%d, %d, %d) = %d, want %d", c.book, c.chapter, c.verse, got, c.want)
		}
	}
}

func TestAvailableDatabases(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "translations", "en")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, path := range []string{
		filepath.Join(root, "kjv.sqlite"),
		filepath.Join(nested, "asv.sqlite"),
		filepath.Join(root, "notes.txt"),
	} {
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	paths, err := AvailableDatabases(root)
	if err != nil {
		t.Fatalf("AvailableDatabases: %v", err)
	}
	want := []string{
		filepath.Join(root, "kjv.sqlite"),
		filepath.Join(nested, "asv.sqlite"),
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("AvailableDatabases = %v, want %v", paths, want)
	}

	paths, err = AvailableDatabases(filepath.Join(root, "absent"))
	if err != nil || len(paths) != 0 {
		t.Errorf("missing root = %v, %v; want empty, nil", paths, err)
	}
}

func TestAllVerseTexts(t *testing.T) {
	repo := openTestRepo(t, false)
	texts, err := repo.AllVerseTexts(context.Background())
	if err != nil {
		t.Fatalf("AllVerseTexts: %v", err)
	}
	if len(texts) != 5 {
		t.Errorf("got %d texts, want 5", len(texts))
	}
}
