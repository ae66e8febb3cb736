package scripture

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Reference is a parsed "Book chapter[:verse]" reference. Verse is 0
// when the reference names a whole chapter.
type Reference struct {
	Book    int
	Chapter int
	Verse   int
}

// HasVerse reports whether the reference pins a single verse.
func (r Reference) HasVerse() bool { return r.Verse > 0 }

func (r Reference) String() string {
	s := fmt.Sprintf("%s %d", BookName(r.Book), r.Chapter)
	if r.HasVerse() {
		s += ":" + strconv.Itoa(r.Verse)
	}
	return s
}

var referenceRe = regexp.MustCompile(`^(?i)([1-3]?\s?[A-Za-z.\s]+)\s+(\d+)(?::(\d+))?$`)

// ParseReference parses references such as "John 3:16", "1 Cor 13", or
// "gen 1". The book part accepts canonical names and abbreviations.
func ParseReference(text string) (Reference, error) {
	m := referenceRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Reference{}, fmt.Errorf("unrecognized reference %q", text)
	}
	book := FindBook(strings.TrimSpace(m[1]))
	if book == nil {
		return Reference{}, fmt.Errorf("unknown book %q", strings.TrimSpace(m[1]))
	}
	chapter, err := strconv.Atoi(m[2])
	if err != nil || chapter < 1 {
		return Reference{}, fmt.Errorf("invalid chapter in %q", text)
	}
	ref := Reference{Book: book.Number, Chapter: chapter}
	if m[3] != "" {
		verse, err := strconv.Atoi(m[3])
		if err != nil || verse < 1 {
			return Reference{}, fmt.Errorf("invalid verse in %q", text)
		}
		ref.Verse = verse
	}
	return ref, nil
}
