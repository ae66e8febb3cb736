// Package strongs analyzes Strong's lexicon tags embedded in verse text.
//
// Source texts carry tags like {H7225} or {G2316} marking a word's
// cross-reference into the Hebrew (H) or Greek (G) lexicon. The package
// extracts and strips those tags, builds a frequency stoplist of the most
// common identifiers, and counts the surviving identifiers per chapter.
package strongs

import "regexp"

// tagRe matches a Strong's tag: H or G followed by digits, in braces.
var tagRe = regexp.MustCompile(`\{([GH]\d+)\}`)

// ExtractIDs returns every Strong's identifier in text (e.g. "H7225"),
// in left-to-right order, duplicates included.
func ExtractIDs(text string) []string {
	matches := tagRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m[1]
	}
	return ids
}

// StripTags removes every Strong's tag from text, leaving the surrounding
// spacing untouched. Applying it to already-stripped text is a no-op.
func StripTags(text string) string {
	return tagRe.ReplaceAllString(text, "")
}
