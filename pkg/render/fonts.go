package render

import (
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/versewall/versewall/pkg/render/textlayout"
)

// FontSet holds the five faces one render pass draws with.
type FontSet struct {
	Body        font.Face // 28pt regular
	BodySmall   font.Face // 24pt regular
	Header      font.Face // 36pt bold
	HeaderSmall font.Face // 30pt bold
	Label       font.Face // 22pt regular
}

var regularCandidates = []string{"arial.ttf", "segoeui.ttf", "DejaVuSans.ttf", "LiberationSans-Regular.ttf"}
var boldCandidates = []string{"arialbd.ttf", "segoeuib.ttf", "DejaVuSans-Bold.ttf", "LiberationSans-Bold.ttf"}

// LoadFonts probes the system font directories for a usable sans face.
// When nothing is found every slot falls back to the built-in bitmap
// face, which keeps rendering functional on bare systems.
func LoadFonts() *FontSet {
	regular := parseFirst(regularCandidates)
	bold := parseFirst(boldCandidates)
	if bold == nil {
		bold = regular
	}
	return &FontSet{
		Body:        newFace(regular, 28),
		BodySmall:   newFace(regular, 24),
		Header:      newFace(bold, 36),
		HeaderSmall: newFace(bold, 30),
		Label:       newFace(regular, 22),
	}
}

func parseFirst(names []string) *truetype.Font {
	for _, name := range names {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			continue
		}
		return f
	}
	return nil
}

func newFace(f *truetype.Font, size float64) font.Face {
	if f == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

// measurer adapts a face to the text layout engine.
func measurer(face font.Face) textlayout.Measurer {
	return func(s string) float64 {
		return float64(font.MeasureString(face, s)) / 64
	}
}

// lineHeight is the vertical advance used when stacking text lines.
func lineHeight(face font.Face) float64 {
	return float64(face.Metrics().Height.Ceil() + 8)
}

// faceHeight approximates the rendered height of a single line.
func faceHeight(face font.Face) float64 {
	return float64(face.Metrics().Height.Ceil())
}

func ascent(face font.Face) float64 {
	return float64(face.Metrics().Ascent.Ceil())
}
