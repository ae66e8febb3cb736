// Package scripture provides canonical Bible book metadata, reference
// parsing, and a SQLite-backed verse repository.
package scripture

import (
	"strconv"
	"strings"
)

// Testament partitions the canon.
type Testament string

const (
	OldTestament Testament = "OT"
	NewTestament Testament = "NT"
)

// Book is one canonical book with its lookup abbreviations.
type Book struct {
	Number        int
	Name          string
	Testament     Testament
	Abbreviations []string
}

// BookCount is the size of the Protestant canon.
const BookCount = 66

// Books lists the canon in traditional order, numbered 1 through 66.
var Books = []Book{
	{1, "Genesis", OldTestament, []string{"gen", "ge", "gn"}},
	{2, "Exodus", OldTestament, []string{"ex", "exo", "exod"}},
	{3, "Leviticus", OldTestament, []string{"lev", "le", "lv"}},
	{4, "Numbers", OldTestament, []string{"num", "nu", "nm", "nb"}},
	{5, "Deuteronomy", OldTestament, []string{"deut", "de", "dt"}},
	{6, "Joshua", OldTestament, []string{"josh", "jos", "jsh"}},
	{7, "Judges", OldTestament, []string{"judg", "jdg", "jg"}},
	{8, "Ruth", OldTestament, []string{"ruth", "ru"}},
	{9, "1 Samuel", OldTestament, []string{"1sam", "1sa", "i sam", "1sm"}},
	{10, "2 Samuel", OldTestament, []string{"2sam", "2sa", "ii sam", "2sm"}},
	{11, "1 Kings", OldTestament, []string{"1kings", "1ki", "i kings", "1kg"}},
	{12, "2 Kings", OldTestament, []string{"2kings", "2ki", "ii kings", "2kg"}},
	{13, "1 Chronicles", OldTestament, []string{"1chron", "1ch", "i chron", "1chr"}},
	{14, "2 Chronicles", OldTestament, []string{"2chron", "2ch", "ii chron", "2chr"}},
	{15, "Ezra", OldTestament, []string{"ezra", "ezr"}},
	{16, "Nehemiah", OldTestament, []string{"neh", "ne"}},
	{17, "Esther", OldTestament, []string{"est", "es"}},
	{18, "Job", OldTestament, []string{"job", "jb"}},
	{19, "Psalms", OldTestament, []string{"ps", "psalm", "psa", "pss"}},
	{20, "Proverbs", OldTestament, []string{"prov", "pr", "prv"}},
	{21, "Ecclesiastes", OldTestament, []string{"eccl", "ecc", "qoh"}},
	{22, "Song of Solomon", OldTestament, []string{"song", "song of solomon", "sos", "so"}},
	{23, "Isaiah", OldTestament, []string{"isa", "is"}},
	{24, "Jeremiah", OldTestament, []string{"jer", "jr"}},
	{25, "Lamentations", OldTestament, []string{"lam", "la"}},
	{26, "Ezekiel", OldTestament, []string{"ezek", "eze", "ezk"}},
	{27, "Daniel", OldTestament, []string{"dan", "da", "dn"}},
	{28, "Hosea", OldTestament, []string{"hos", "ho"}},
	{29, "Joel", OldTestament, []string{"joel", "jl"}},
	{30, "Amos", OldTestament, []string{"amos", "am"}},
	{31, "Obadiah", OldTestament, []string{"obad", "ob"}},
	{32, "Jonah", OldTestament, []string{"jon", "jnh"}},
	{33, "Micah", OldTestament, []string{"mic", "mc"}},
	{34, "Nahum", OldTestament, []string{"nah", "na"}},
	{35, "Habakkuk", OldTestament, []string{"hab", "hb"}},
	{36, "Zephaniah", OldTestament, []string{"zeph", "zep", "zp"}},
	{37, "Haggai", OldTestament, []string{"hag", "hg"}},
	{38, "Zechariah", OldTestament, []string{"zech", "zec", "zc"}},
	{39, "Malachi", OldTestament, []string{"mal", "ml"}},
	{40, "Matthew", NewTestament, []string{"matt", "mt"}},
	{41, "Mark", NewTestament, []string{"mark", "mrk", "mk"}},
	{42, "Luke", NewTestament, []string{"luke", "lk"}},
	{43, "John", NewTestament, []string{"john", "jn", "jhn"}},
	{44, "Acts", NewTestament, []string{"acts", "ac"}},
	{45, "Romans", NewTestament, []string{"rom", "ro", "rm"}},
	{46, "1 Corinthians", NewTestament, []string{"1cor", "1co", "i cor", "1corinthians"}},
	{47, "2 Corinthians", NewTestament, []string{"2cor", "2co", "ii cor", "2corinthians"}},
	{48, "Galatians", NewTestament, []string{"gal", "ga"}},
	{49, "Ephesians", NewTestament, []string{"eph", "ep"}},
	{50, "Philippians", NewTestament, []string{"phil", "php", "ph"}},
	{51, "Colossians", NewTestament, []string{"col", "co"}},
	{52, "1 Thessalonians", NewTestament, []string{"1thess", "1th", "i thess", "1thes"}},
	{53, "2 Thessalonians", NewTestament, []string{"2thess", "2th", "ii thess", "2thes"}},
	{54, "1 Timothy", NewTestament, []string{"1tim", "1ti", "i tim", "1tm"}},
	{55, "2 Timothy", NewTestament, []string{"2tim", "2ti", "ii tim", "2tm"}},
	{56, "Titus", NewTestament, []string{"titus", "ti"}},
	{57, "Philemon", NewTestament, []string{"philem", "phm", "pm"}},
	{58, "Hebrews", NewTestament, []string{"heb", "he"}},
	{59, "James", NewTestament, []string{"jas", "jm"}},
	{60, "1 Peter", NewTestament, []string{"1pet", "1pe", "i pet", "1pt"}},
	{61, "2 Peter", NewTestament, []string{"2pet", "2pe", "ii pet", "2pt"}},
	{62, "1 John", NewTestament, []string{"1john", "1jn", "i jn", "1j"}},
	{63, "2 John", NewTestament, []string{"2john", "2jn", "ii jn", "2j"}},
	{64, "3 John", NewTestament, []string{"3john", "3jn", "iii jn", "3j"}},
	{65, "Jude", NewTestament, []string{"jude", "jud"}},
	{66, "Revelation", NewTestament, []string{"rev", "re", "rv"}},
}

var booksByKey = buildBookIndex()

func buildBookIndex() map[string]*Book {
	index := make(map[string]*Book)
	for i := range Books {
		b := &Books[i]
		index[normalizeBookKey(b.Name)] = b
		for _, abbr := range b.Abbreviations {
			index[normalizeBookKey(abbr)] = b
		}
	}
	return index
}

func normalizeBookKey(value string) string {
	value = strings.ToLower(value)
	value = strings.ReplaceAll(value, ".", "")
	return strings.ReplaceAll(value, " ", "")
}

// FindBook resolves a name or abbreviation, case- and punctuation-
// insensitively. It returns nil when nothing matches.
func FindBook(value string) *Book {
	return booksByKey[normalizeBookKey(value)]
}

// BookName returns the canonical name for a book number, or a synthetic
// placeholder for numbers outside the canon.
func BookName(number int) string {
	for i := range Books {
		if Books[i].Number == number {
			return Books[i].Name
		}
	}
	return "Book " + strconv.Itoa(number)
}
