package strongs

import "sort"

// Metrics holds per-identifier counts for one chapter, after stoplist
// filtering. Vocabulary counts the verses an identifier appears in at
// least once; Occurrences counts every appearance.
type Metrics struct {
	Vocabulary  map[string]int
	Occurrences map[string]int
}

// ChapterMetrics computes vocabulary and occurrence counts over the verse
// texts of one chapter. Tags are extracted from the raw texts and filtered
// through the stoplist before counting.
func ChapterMetrics(verseTexts []string, stop *Stoplist, includeCommon bool) Metrics {
	m := Metrics{
		Vocabulary:  make(map[string]int),
		Occurrences: make(map[string]int),
	}
	for _, text := range verseTexts {
		filtered := stop.Filter(ExtractIDs(text), includeCommon)
		seen := make(map[string]struct{}, len(filtered))
		for _, id := range filtered {
			m.Occurrences[id]++
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				m.Vocabulary[id]++
			}
		}
	}
	return m
}

// Ranked is one identifier with its count.
type Ranked struct {
	ID    string
	Count int
}

// Rank returns the top n identifiers by count, descending; ties break on
// identifier order so results are stable.
func Rank(counts map[string]int, n int) []Ranked {
	ranked := make([]Ranked, 0, len(counts))
	for id, c := range counts {
		ranked = append(ranked, Ranked{ID: id, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
