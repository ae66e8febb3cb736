package scripture

import "context"

// Translation identifies one Bible database.
type Translation struct {
	ID   string
	Name string
}

// Verse is one verse row with its display text.
type Verse struct {
	Number int
	Text   string
}

// BookLength pairs a book number with its total verse count.
type BookLength struct {
	Book   int
	Verses int
}

// Repository reads verses and structure from a Bible database. Text
// returned by ChapterText and VerseText has lexical tags stripped;
// AllVerseTexts returns the raw stored text for analysis.
type Repository interface {
	Translation(ctx context.Context) (Translation, error)
	Chapters(ctx context.Context, book int) ([]int, error)
	Verses(ctx context.Context, book, chapter int) ([]int, error)
	ChapterText(ctx context.Context, book, chapter int) ([]Verse, error)
	VerseText(ctx context.Context, book, chapter, verse int) (string, error)
	ChapterRawTexts(ctx context.Context, book, chapter int) ([]string, error)
	AllVerseTexts(ctx context.Context) ([]string, error)
	BookLengths(ctx context.Context) ([]BookLength, error)
	MaxChapter(ctx context.Context, book int) (int, error)
	MaxVerse(ctx context.Context, book, chapter int) (int, error)
	VerseOrdinal(ctx context.Context, book, chapter, verse int) (int, error)
	Close() error
}
