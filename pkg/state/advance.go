package state

import (
	"context"
	"time"

	"github.com/versewall/versewall/pkg/scripture"
)

// Structure answers the canon-shape questions advancement needs.
// *scripture.SQLiteRepository satisfies it.
type Structure interface {
	MaxChapter(ctx context.Context, book int) (int, error)
	MaxVerse(ctx context.Context, book, chapter int) (int, error)
}

// today is swappable in tests.
var today = func() string { return time.Now().Format("2006-01-02") }

// AdvanceIfNeeded moves the cursor one step if it has not already moved
// today. force skips the once-per-day check. It reports whether the
// cursor moved.
func AdvanceIfNeeded(ctx context.Context, st *AppState, bible Structure, force bool) (bool, error) {
	now := today()
	if !force && st.LastAdvanceDate == now {
		return false, nil
	}

	var (
		cursor Cursor
		err    error
	)
	if st.Mode == ModeVerse {
		cursor, err = advanceVerse(ctx, st.Cursor, bible)
	} else {
		cursor, err = advanceChapter(ctx, st.Cursor, bible)
	}
	if err != nil {
		return false, err
	}

	st.Cursor = cursor
	st.LastAdvanceDate = now
	return true, nil
}

// advanceChapter steps to the next chapter, rolling into the next book
// and wrapping from Revelation back to Genesis.
func advanceChapter(ctx context.Context, c Cursor, bible Structure) (Cursor, error) {
	maxChapter, err := bible.MaxChapter(ctx, c.Book)
	if err != nil {
		return Cursor{}, err
	}
	if c.Chapter < maxChapter {
		return Cursor{Book: c.Book, Chapter: c.Chapter + 1, Verse: 1}, nil
	}
	next := c.Book + 1
	if next > scripture.BookCount {
		next = 1
	}
	return Cursor{Book: next, Chapter: 1, Verse: 1}, nil
}

// advanceVerse steps to the next verse, then chapter, then book.
func advanceVerse(ctx context.Context, c Cursor, bible Structure) (Cursor, error) {
	maxVerse, err := bible.MaxVerse(ctx, c.Book, c.Chapter)
	if err != nil {
		return Cursor{}, err
	}
	if c.Verse < maxVerse {
		return Cursor{Book: c.Book, Chapter: c.Chapter, Verse: c.Verse + 1}, nil
	}
	return advanceChapter(ctx, c, bible)
}
