package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/versewall/versewall/pkg/palette"
	"github.com/versewall/versewall/pkg/render/textlayout"
	"github.com/versewall/versewall/pkg/render/treemap"
	"github.com/versewall/versewall/pkg/scripture"
)

// Canvas defaults target a 21:9 ultrawide desktop.
const (
	DefaultWidth  = 3440
	DefaultHeight = 1440
)

const (
	pageMargin   = 120
	gutterWidth  = 40
	shadowOffset = 8

	scripturePadding = 50
	analyticsPadding = 40
	columnGap        = 30

	treemapLabelMinWidth  = 120
	treemapLabelMinHeight = 40

	maxKeyNames         = 5
	maxRepeatedConcepts = 8
)

// summaryPlaceholder renders when a ranked list is empty.
const summaryPlaceholder = "—"

// Composer renders wallpaper images of a fixed size.
type Composer struct {
	Width    int
	Height   int
	Fonts    *FontSet
	Layouter treemap.Layouter
}

// NewComposer builds a composer at the default canvas size.
func NewComposer(fonts *FontSet, layouter treemap.Layouter) *Composer {
	if layouter == nil {
		layouter = treemap.Default()
	}
	return &Composer{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Fonts:    fonts,
		Layouter: layouter,
	}
}

// Render draws one wallpaper: optional palette bands, two shadowed page
// rectangles with a spine between them, the analytics panel on the left
// and the scripture panel on the right.
func (c *Composer) Render(s ScriptureContent, a AnalyticsContent, bands []palette.RGB, dark bool) (image.Image, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("render wallpaper: %w", err)
	}

	theme := ThemeFor(dark)
	dc := gg.NewContext(c.Width, c.Height)

	setColor(dc, theme.Background)
	dc.Clear()
	paintBands(dc, bands)

	pageWidth := (c.Width - pageMargin*2 - gutterWidth) / 2
	pageHeight := c.Height - pageMargin*2
	leftX := pageMargin
	rightX := leftX + pageWidth + gutterWidth
	topY := pageMargin

	setColor(dc, theme.Shadow)
	dc.DrawRectangle(float64(leftX+shadowOffset), float64(topY+shadowOffset), float64(pageWidth), float64(pageHeight))
	dc.Fill()
	dc.DrawRectangle(float64(rightX+shadowOffset), float64(topY+shadowOffset), float64(pageWidth), float64(pageHeight))
	dc.Fill()

	setColor(dc, theme.Page)
	dc.DrawRectangle(float64(leftX), float64(topY), float64(pageWidth), float64(pageHeight))
	dc.Fill()
	dc.DrawRectangle(float64(rightX), float64(topY), float64(pageWidth), float64(pageHeight))
	dc.Fill()

	spineX := float64(leftX + pageWidth + gutterWidth/2)
	setColor(dc, theme.Accent)
	dc.SetLineWidth(2)
	dc.DrawLine(spineX, float64(topY), spineX, float64(topY+pageHeight))
	dc.Stroke()

	c.drawScripture(dc, theme, float64(rightX), float64(topY), float64(pageWidth), float64(pageHeight), s)
	if err := c.drawAnalytics(dc, theme, float64(leftX), float64(topY), float64(pageWidth), float64(pageHeight), a); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func (c *Composer) drawScripture(dc *gg.Context, theme Theme, x, y, width, height float64, s ScriptureContent) {
	headerFace := c.Fonts.Header
	if !s.IsChapter {
		headerFace = c.Fonts.HeaderSmall
	}
	drawText(dc, headerFace, theme.Text, s.Header, x+scripturePadding, y+scripturePadding)
	headerHeight := faceHeight(headerFace)
	drawText(dc, c.Fonts.Label, theme.Accent, s.Translation, x+scripturePadding, y+scripturePadding+headerHeight+8)

	contentTop := y + scripturePadding + headerHeight + 50
	contentHeight := height - (contentTop - y) - scripturePadding
	contentWidth := width - scripturePadding*2

	body := textlayout.Style{Measure: measurer(c.Fonts.Body), LineHeight: lineHeight(c.Fonts.Body)}
	small := textlayout.Style{Measure: measurer(c.Fonts.BodySmall), LineHeight: lineHeight(c.Fonts.BodySmall)}
	flow := textlayout.Reflow(s.Lines, body, small, contentWidth, contentHeight, columnGap)

	face := c.Fonts.Body
	if flow.Small {
		face = c.Fonts.BodySmall
	}
	for col, segments := range flow.Columns {
		colX := x + scripturePadding + float64(col)*(flow.ColumnWidth+columnGap)
		yPos := contentTop
		for _, segment := range segments {
			drawText(dc, face, theme.Text, segment, colX, yPos)
			yPos += flow.LineHeight
		}
	}
}

func (c *Composer) drawAnalytics(dc *gg.Context, theme Theme, x, y, width, height float64, a AnalyticsContent) error {
	header := "Reading Progress"
	drawText(dc, c.Fonts.HeaderSmall, theme.Text, header, x+analyticsPadding, y+analyticsPadding)
	headerHeight := faceHeight(c.Fonts.HeaderSmall)
	chartTop := y + analyticsPadding + headerHeight + 20

	// Reserve the panel bottom for the stats lines and both summary
	// blocks before sizing the chart.
	labelLineHeight := faceHeight(c.Fonts.Label) + 8
	statsHeight := labelLineHeight * 3
	summaryTitleHeight := faceHeight(c.Fonts.Label) + 6
	summaryItemHeight := faceHeight(c.Fonts.BodySmall) + 4
	keyNamesHeight := summaryTitleHeight + summaryItemHeight*maxKeyNames
	repeatedHeight := summaryTitleHeight + summaryItemHeight*maxRepeatedConcepts
	bottomReserved := 20 + statsHeight + 6 + keyNamesHeight + 10 + repeatedHeight + analyticsPadding

	chartHeight := height - (chartTop - y) - bottomReserved
	chartWidth := width - analyticsPadding*2
	chartX := x + analyticsPadding

	sizes := make([]float64, len(a.BookLengths))
	for i, bl := range a.BookLengths {
		sizes[i] = float64(bl.Verses)
	}
	rects, err := c.Layouter.Layout(sizes, int(chartX), int(chartTop), int(chartWidth), int(chartHeight))
	if err != nil {
		return fmt.Errorf("lay out progress treemap: %w", err)
	}

	currentIndex := 0
	for i, bl := range a.BookLengths {
		if bl.Book == a.CurrentBook {
			currentIndex = i
			break
		}
	}
	for i, r := range rects {
		fill := theme.TreemapRemaining
		if i <= currentIndex {
			fill = theme.TreemapCurrent
		}
		setColor(dc, fill)
		dc.DrawRectangle(float64(r.Left), float64(r.Top), float64(r.Width()), float64(r.Height()))
		dc.Fill()
		setColor(dc, theme.TreemapOutline)
		dc.SetLineWidth(1)
		dc.DrawRectangle(float64(r.Left), float64(r.Top), float64(r.Width()), float64(r.Height()))
		dc.Stroke()
		if r.Width() > treemapLabelMinWidth && r.Height() > treemapLabelMinHeight {
			label := scripture.BookName(a.BookLengths[i].Book)
			drawText(dc, c.Fonts.Label, theme.Text, label, float64(r.Left+6), float64(r.Top+6))
		}
	}

	statsY := chartTop + chartHeight + 20
	stats := []string{
		fmt.Sprintf("Current: %s %d:%d", scripture.BookName(a.CurrentBook), a.CurrentChapter, a.CurrentVerse),
		fmt.Sprintf("Progress: %.1f%%", a.ProgressPercent),
		fmt.Sprintf("Days advanced: %d", a.DaysAdvanced),
	}
	for _, stat := range stats {
		drawText(dc, c.Fonts.Label, theme.Text, stat, x+analyticsPadding, statsY)
		statsY += labelLineHeight
	}

	statsY += 6
	statsY = c.drawSummaryBlock(dc, theme, x+analyticsPadding, statsY, "Key Names", capped(a.KeyNames, maxKeyNames))
	statsY += 10
	c.drawSummaryBlock(dc, theme, x+analyticsPadding, statsY, "Repeated Concepts", capped(a.RepeatedConcepts, maxRepeatedConcepts))
	return nil
}

// drawSummaryBlock draws a titled ranked list and returns the y below it.
// Empty lists render a single placeholder glyph.
func (c *Composer) drawSummaryBlock(dc *gg.Context, theme Theme, x, y float64, title string, items []string) float64 {
	drawText(dc, c.Fonts.Label, theme.Text, title, x, y)
	y += faceHeight(c.Fonts.Label) + 6
	if len(items) == 0 {
		items = []string{summaryPlaceholder}
	}
	for _, item := range items {
		drawText(dc, c.Fonts.BodySmall, theme.Text, item, x+10, y)
		y += faceHeight(c.Fonts.BodySmall) + 4
	}
	return y
}

func capped(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dc *gg.Context, face font.Face, color palette.RGB, s string, x, y float64) {
	dc.SetFontFace(face)
	setColor(dc, color)
	dc.DrawString(s, x, y+ascent(face))
}

func setColor(dc *gg.Context, c palette.RGB) {
	dc.SetRGB255(int(c.R), int(c.G), int(c.B))
}
