package scripture

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/versewall/versewall/pkg/strongs"
)

// schemaMapping records the detected table and column names so queries
// work against databases with varying capitalization.
type schemaMapping struct {
	verseTable    string
	bookColumn    string
	chapterColumn string
	verseColumn   string
	textColumn    string
	metaTable     string
}

// SQLiteRepository reads a Bible from a SQLite file holding a "verses"
// table with book, chapter, verse, and text columns. An optional "meta"
// table with field/value rows supplies the translation name.
type SQLiteRepository struct {
	db     *sql.DB
	path   string
	schema schemaMapping
}

var _ Repository = (*SQLiteRepository)(nil)

// OpenSQLite opens the database at path and detects its schema.
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open bible database %s: %w", path, err)
	}
	repo := &SQLiteRepository{db: db, path: path}
	schema, err := repo.detectSchema(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}
	repo.schema = schema
	return repo, nil
}

func (r *SQLiteRepository) detectSchema(ctx context.Context) (schemaMapping, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name FROM sqlite_master WHERE type='table'")
	if err != nil {
		return schemaMapping{}, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	tables := make(map[string]string)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return schemaMapping{}, err
		}
		tables[strings.ToLower(name)] = name
	}
	if err := rows.Err(); err != nil {
		return schemaMapping{}, err
	}

	verseTable, ok := tables["verses"]
	if !ok {
		return schemaMapping{}, fmt.Errorf("unable to detect bible schema in %s: no verses table", r.path)
	}

	colRows, err := r.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", verseTable))
	if err != nil {
		return schemaMapping{}, fmt.Errorf("inspect verses table: %w", err)
	}
	defer colRows.Close()

	columns := make(map[string]string)
	for colRows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := colRows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return schemaMapping{}, err
		}
		columns[strings.ToLower(name)] = name
	}
	if err := colRows.Err(); err != nil {
		return schemaMapping{}, err
	}

	for _, required := range []string{"book", "chapter", "verse"} {
		if _, ok := columns[required]; !ok {
			return schemaMapping{}, fmt.Errorf(
				"unable to detect bible schema in %s: verses table lacks %s column", r.path, required)
		}
	}
	textColumn := columns["text"]
	if textColumn == "" {
		textColumn = columns["verse"]
	}

	return schemaMapping{
		verseTable:    verseTable,
		bookColumn:    columns["book"],
		chapterColumn: columns["chapter"],
		verseColumn:   columns["verse"],
		textColumn:    textColumn,
		metaTable:     tables["meta"],
	}, nil
}

// Translation derives the translation from the optional meta table,
// falling back to the file name.
func (r *SQLiteRepository) Translation(ctx context.Context) (Translation, error) {
	id := strings.TrimSuffix(filepath.Base(r.path), filepath.Ext(r.path))
	t := Translation{ID: id, Name: id}
	if r.schema.metaTable == "" {
		return t, nil
	}
	query := fmt.Sprintf("SELECT value FROM %s WHERE field='name'", r.schema.metaTable)
	var name string
	err := r.db.QueryRowContext(ctx, query).Scan(&name)
	switch {
	case err == sql.ErrNoRows:
		return t, nil
	case err != nil:
		return Translation{}, fmt.Errorf("read translation name: %w", err)
	}
	t.Name = name
	return t, nil
}

func (r *SQLiteRepository) Chapters(ctx context.Context, book int) ([]int, error) {
	query := fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE %s=? ORDER BY %s",
		r.schema.chapterColumn, r.schema.verseTable, r.schema.bookColumn, r.schema.chapterColumn)
	return r.queryInts(ctx, query, book)
}

func (r *SQLiteRepository) Verses(ctx context.Context, book, chapter int) ([]int, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s=? AND %s=? ORDER BY %s",
		r.schema.verseColumn, r.schema.verseTable,
		r.schema.bookColumn, r.schema.chapterColumn, r.schema.verseColumn)
	return r.queryInts(ctx, query, book, chapter)
}

// ChapterText returns the chapter's verses in order with tags stripped.
func (r *SQLiteRepository) ChapterText(ctx context.Context, book, chapter int) ([]Verse, error) {
	query := fmt.Sprintf("SELECT %s, %s FROM %s WHERE %s=? AND %s=? ORDER BY %s",
		r.schema.verseColumn, r.schema.textColumn, r.schema.verseTable,
		r.schema.bookColumn, r.schema.chapterColumn, r.schema.verseColumn)
	rows, err := r.db.QueryContext(ctx, query, book, chapter)
	if err != nil {
		return nil, fmt.Errorf("read chapter %d:%d: %w", book, chapter, err)
	}
	defer rows.Close()

	var verses []Verse
	for rows.Next() {
		var v Verse
		if err := rows.Scan(&v.Number, &v.Text); err != nil {
			return nil, err
		}
		v.Text = strongs.StripTags(v.Text)
		verses = append(verses, v)
	}
	return verses, rows.Err()
}

// VerseText returns one verse with tags stripped, or "" when absent.
func (r *SQLiteRepository) VerseText(ctx context.Context, book, chapter, verse int) (string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s=? AND %s=? AND %s=?",
		r.schema.textColumn, r.schema.verseTable,
		r.schema.bookColumn, r.schema.chapterColumn, r.schema.verseColumn)
	var text string
	err := r.db.QueryRowContext(ctx, query, book, chapter, verse).Scan(&text)
	switch {
	case err == sql.ErrNoRows:
		return "", nil
	case err != nil:
		return "", fmt.Errorf("read verse %d:%d:%d: %w", book, chapter, verse, err)
	}
	return strongs.StripTags(text), nil
}

// ChapterRawTexts returns the chapter's stored text with tags intact,
// ordered by verse, for lexical analysis.
func (r *SQLiteRepository) ChapterRawTexts(ctx context.Context, book, chapter int) ([]string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s=? AND %s=? ORDER BY %s",
		r.schema.textColumn, r.schema.verseTable,
		r.schema.bookColumn, r.schema.chapterColumn, r.schema.verseColumn)
	return r.queryStrings(ctx, query, book, chapter)
}

// AllVerseTexts returns every stored verse text with tags intact.
func (r *SQLiteRepository) AllVerseTexts(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", r.schema.textColumn, r.schema.verseTable)
	return r.queryStrings(ctx, query)
}

func (r *SQLiteRepository) BookLengths(ctx context.Context) ([]BookLength, error) {
	query := fmt.Sprintf("SELECT %s, COUNT(*) FROM %s GROUP BY %s ORDER BY %s",
		r.schema.bookColumn, r.schema.verseTable, r.schema.bookColumn, r.schema.bookColumn)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("read book lengths: %w", err)
	}
	defer rows.Close()

	var lengths []BookLength
	for rows.Next() {
		var bl BookLength
		if err := rows.Scan(&bl.Book, &bl.Verses); err != nil {
			return nil, err
		}
		lengths = append(lengths, bl)
	}
	return lengths, rows.Err()
}

// MaxChapter returns the highest chapter number, or 1 for an empty book.
func (r *SQLiteRepository) MaxChapter(ctx context.Context, book int) (int, error) {
	chapters, err := r.Chapters(ctx, book)
	if err != nil {
		return 0, err
	}
	if len(chapters) == 0 {
		return 1, nil
	}
	return chapters[len(chapters)-1], nil
}

// MaxVerse returns the highest verse number, or 1 for an empty chapter.
func (r *SQLiteRepository) MaxVerse(ctx context.Context, book, chapter int) (int, error) {
	verses, err := r.Verses(ctx, book, chapter)
	if err != nil {
		return 0, err
	}
	if len(verses) == 0 {
		return 1, nil
	}
	return verses[len(verses)-1], nil
}

// VerseOrdinal counts the verses in the whole corpus up to and
// including the given position, giving a 1-based reading ordinal.
func (r *SQLiteRepository) VerseOrdinal(ctx context.Context, book, chapter, verse int) (int, error) {
	query := fmt.Sprintf(
		"SELECT COUNT(*) FROM %s WHERE %s < ? OR (%s=? AND (%s < ? OR (%s=? AND %s <= ?)))",
		r.schema.verseTable, r.schema.bookColumn, r.schema.bookColumn,
		r.schema.chapterColumn, r.schema.chapterColumn, r.schema.verseColumn)
	var n int
	if err := r.db.QueryRowContext(ctx, query, book, book, chapter, chapter, verse).Scan(&n); err != nil {
		return 0, fmt.Errorf("verse ordinal %d:%d:%d: %w", book, chapter, verse, err)
	}
	return n, nil
}

func (r *SQLiteRepository) Close() error { return r.db.Close() }

// Path returns the database file path backing this repository.
func (r *SQLiteRepository) Path() string { return r.path }

func (r *SQLiteRepository) queryInts(ctx context.Context, query string, args ...any) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bible database: %w", err)
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bible database: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// AvailableDatabases lists every *.sqlite file under root, recursively,
// sorted by path. A missing root yields an empty list.
func AvailableDatabases(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, ".sqlite") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
