package strongs

import "sort"

// Provenance records where a stoplist came from.
type Provenance string

const (
	// ProvenanceAuto marks a stoplist computed from the source texts.
	ProvenanceAuto Provenance = "auto"
	// ProvenanceCache marks a stoplist served from the persistent cache.
	ProvenanceCache Provenance = "cache"
)

// Stoplist is the set of most-frequent Strong's identifiers, excluded from
// chapter analytics by default. Immutable once built.
type Stoplist struct {
	ids        map[string]struct{}
	topN       int
	provenance Provenance
}

// NewStoplist builds a stoplist from an explicit identifier list.
func NewStoplist(ids []string, topN int, provenance Provenance) *Stoplist {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &Stoplist{ids: set, topN: topN, provenance: provenance}
}

// Build scans every text, counts identifier occurrences, and keeps the
// topN most frequent distinct identifiers. Ties are broken by first-seen
// order, so identical inputs always produce the identical stoplist.
func Build(texts []string, topN int) *Stoplist {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for _, text := range texts {
		for _, id := range ExtractIDs(text) {
			if _, ok := counts[id]; !ok {
				firstSeen[id] = len(firstSeen)
			}
			counts[id]++
		}
	}

	ranked := make([]string, 0, len(counts))
	for id := range counts {
		ranked = append(ranked, id)
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return firstSeen[a] < firstSeen[b]
	})
	if topN >= 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return NewStoplist(ranked, topN, ProvenanceAuto)
}

// Contains reports whether id is on the stoplist.
func (s *Stoplist) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of identifiers on the stoplist.
func (s *Stoplist) Len() int { return len(s.ids) }

// TopN returns the threshold the stoplist was computed with.
func (s *Stoplist) TopN() int { return s.topN }

// Provenance reports whether the stoplist was computed or loaded from cache.
func (s *Stoplist) Provenance() Provenance { return s.provenance }

// IDs returns the identifiers in sorted order.
func (s *Stoplist) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Filter removes stoplisted identifiers from ids, preserving order and
// duplicate occurrences. With includeCommon true, ids pass unchanged.
func (s *Stoplist) Filter(ids []string, includeCommon bool) []string {
	if includeCommon {
		return ids
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !s.Contains(id) {
			out = append(out, id)
		}
	}
	return out
}
