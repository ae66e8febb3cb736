// Package render composes the wallpaper image: a scripture page and a
// reading-progress analytics page side by side on a themed canvas.
package render

import (
	"fmt"

	"github.com/versewall/versewall/pkg/scripture"
)

// ScriptureContent is the text panel input for one render pass.
// Lines holds one verse text per line in chapter mode and exactly one
// line in verse mode; IsChapter picks the header emphasis.
type ScriptureContent struct {
	Header      string
	Translation string
	Lines       []string
	IsChapter   bool
}

// AnalyticsContent is the progress panel input for one render pass.
// KeyNames and RepeatedConcepts arrive pre-ranked; the composer caps
// them at 5 and 8 entries respectively.
type AnalyticsContent struct {
	BookLengths      []scripture.BookLength
	CurrentBook      int
	CurrentChapter   int
	CurrentVerse     int
	ProgressPercent  float64
	DaysAdvanced     int
	KeyNames         []string
	RepeatedConcepts []string
}

// Validate rejects analytics input the composer cannot draw sensibly:
// out-of-order or non-positive book sizes and an impossible progress
// percentage.
func (a AnalyticsContent) Validate() error {
	if len(a.BookLengths) == 0 {
		return fmt.Errorf("analytics content has no book lengths")
	}
	prev := 0
	for _, bl := range a.BookLengths {
		if bl.Book <= prev {
			return fmt.Errorf("book lengths out of canonical order at book %d", bl.Book)
		}
		if bl.Verses <= 0 {
			return fmt.Errorf("book %d has non-positive verse count %d", bl.Book, bl.Verses)
		}
		prev = bl.Book
	}
	if a.ProgressPercent < 0 || a.ProgressPercent > 100 {
		return fmt.Errorf("progress percent %.2f outside [0,100]", a.ProgressPercent)
	}
	return nil
}
