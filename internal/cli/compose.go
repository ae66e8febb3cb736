package cli

import (
	"context"
	"fmt"

	"github.com/versewall/versewall/pkg/render"
	"github.com/versewall/versewall/pkg/scripture"
	"github.com/versewall/versewall/pkg/state"
	"github.com/versewall/versewall/pkg/strongs"
)

// buildContents queries the repository and assembles both render inputs
// for the current cursor position.
func buildContents(
	ctx context.Context,
	repo scripture.Repository,
	stop *strongs.Stoplist,
	cur state.Cursor,
	mode state.Mode,
	includeCommon bool,
) (render.ScriptureContent, render.AnalyticsContent, error) {
	var zeroS render.ScriptureContent
	var zeroA render.AnalyticsContent

	translation, err := repo.Translation(ctx)
	if err != nil {
		return zeroS, zeroA, err
	}

	var sc render.ScriptureContent
	sc.Translation = translation.Name
	if mode == state.ModeVerse {
		text, err := repo.VerseText(ctx, cur.Book, cur.Chapter, cur.Verse)
		if err != nil {
			return zeroS, zeroA, err
		}
		sc.Header = fmt.Sprintf("%s %d:%d", scripture.BookName(cur.Book), cur.Chapter, cur.Verse)
		sc.Lines = []string{text}
	} else {
		verses, err := repo.ChapterText(ctx, cur.Book, cur.Chapter)
		if err != nil {
			return zeroS, zeroA, err
		}
		lines := make([]string, len(verses))
		for i, v := range verses {
			lines[i] = fmt.Sprintf("%d %s", v.Number, v.Text)
		}
		sc.Header = fmt.Sprintf("%s %d", scripture.BookName(cur.Book), cur.Chapter)
		sc.Lines = lines
		sc.IsChapter = true
	}

	lengths, err := repo.BookLengths(ctx)
	if err != nil {
		return zeroS, zeroA, err
	}
	total := 0
	for _, bl := range lengths {
		total += bl.Verses
	}
	ordinal, err := repo.VerseOrdinal(ctx, cur.Book, cur.Chapter, cur.Verse)
	if err != nil {
		return zeroS, zeroA, err
	}
	progress := 0.0
	if total > 0 {
		progress = float64(ordinal) / float64(total) * 100
	}
	daysAdvanced := cur.Chapter
	if mode == state.ModeVerse {
		daysAdvanced = ordinal
	}

	raw, err := repo.ChapterRawTexts(ctx, cur.Book, cur.Chapter)
	if err != nil {
		return zeroS, zeroA, err
	}
	metrics := strongs.ChapterMetrics(raw, stop, includeCommon)

	ac := render.AnalyticsContent{
		BookLengths:      lengths,
		CurrentBook:      cur.Book,
		CurrentChapter:   cur.Chapter,
		CurrentVerse:     cur.Verse,
		ProgressPercent:  progress,
		DaysAdvanced:     daysAdvanced,
		KeyNames:         formatRanked(strongs.Rank(metrics.Vocabulary, 5)),
		RepeatedConcepts: formatRanked(strongs.Rank(metrics.Occurrences, 8)),
	}
	return sc, ac, nil
}

// formatRanked renders ranked identifiers as "H430 (12)" display lines.
func formatRanked(ranked []strongs.Ranked) []string {
	if len(ranked) == 0 {
		return nil
	}
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = fmt.Sprintf("%s (%d)", r.ID, r.Count)
	}
	return out
}
