// Package state persists the reading cursor and app settings between runs.
package state

// Mode selects how far the cursor moves each day.
type Mode string

const (
	ModeChapter Mode = "chapter"
	ModeVerse   Mode = "verse"
)

// ParseMode validates a mode string, defaulting empty to chapter mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeChapter, "":
		return ModeChapter, true
	case ModeVerse:
		return ModeVerse, true
	}
	return "", false
}

// Cursor is the current reading position.
type Cursor struct {
	Book    int `json:"book"`
	Chapter int `json:"chapter"`
	Verse   int `json:"verse"`
}

// AppState is everything persisted between runs.
type AppState struct {
	TranslationID   string `json:"translation_id,omitempty"`
	Mode            Mode   `json:"mode"`
	Cursor          Cursor `json:"cursor"`
	LastAdvanceDate string `json:"last_advance_date,omitempty"`
	Palette         string `json:"palette,omitempty"`
	Dark            bool   `json:"dark,omitempty"`
	DBPath          string `json:"db_path,omitempty"`
}

// NewAppState returns the state used before any settings file exists:
// chapter mode at Genesis 1:1.
func NewAppState() AppState {
	return AppState{
		Mode:   ModeChapter,
		Cursor: Cursor{Book: 1, Chapter: 1, Verse: 1},
	}
}

// normalize repairs fields a hand-edited or older settings file may
// leave invalid.
func (s *AppState) normalize() {
	if mode, ok := ParseMode(string(s.Mode)); ok {
		s.Mode = mode
	} else {
		s.Mode = ModeChapter
	}
	if s.Cursor.Book < 1 {
		s.Cursor.Book = 1
	}
	if s.Cursor.Chapter < 1 {
		s.Cursor.Chapter = 1
	}
	if s.Cursor.Verse < 1 {
		s.Cursor.Verse = 1
	}
}
