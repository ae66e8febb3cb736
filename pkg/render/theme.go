package render

import "github.com/versewall/versewall/pkg/palette"

// Theme is the fixed color set for one render pass.
type Theme struct {
	Background       palette.RGB
	Page             palette.RGB
	Text             palette.RGB
	Accent           palette.RGB
	Shadow           palette.RGB
	TreemapCurrent   palette.RGB
	TreemapRemaining palette.RGB
	TreemapOutline   palette.RGB
}

// LightTheme is the default paper-on-gray look.
func LightTheme() Theme {
	return Theme{
		Background:       palette.RGB{R: 238, G: 238, B: 238},
		Page:             palette.RGB{R: 250, G: 249, B: 246},
		Text:             palette.RGB{R: 40, G: 40, B: 40},
		Accent:           palette.RGB{R: 90, G: 90, B: 90},
		Shadow:           palette.RGB{R: 210, G: 210, B: 210},
		TreemapCurrent:   palette.RGB{R: 200, G: 210, B: 230},
		TreemapRemaining: palette.RGB{R: 230, G: 230, B: 230},
		TreemapOutline:   palette.RGB{R: 160, G: 160, B: 160},
	}
}

// DarkTheme swaps the page surfaces to near-black and inverts the text.
// Treemap fills stay muted so the progress contrast reads the same way.
func DarkTheme() Theme {
	t := LightTheme()
	t.Page = palette.RGB{R: 18, G: 18, B: 18}
	t.Text = palette.RGB{R: 234, G: 234, B: 234}
	t.Accent = palette.RGB{R: 200, G: 200, B: 200}
	t.Shadow = palette.RGB{R: 10, G: 10, B: 10}
	return t
}

// ThemeFor selects the theme for a render pass.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}
