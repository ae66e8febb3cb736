// Package textlayout reflows variable-length text into fixed regions:
// greedy word wrapping, height-bounded stacking, and a two-column overflow
// policy with a small-font fallback stage.
package textlayout

import "strings"

// Measurer reports the rendered width of a string in pixels for the font
// the caller is laying out with.
type Measurer func(s string) float64

// Style bundles a measurer with the vertical advance of its font.
type Style struct {
	Measure    Measurer
	LineHeight float64
}

// Wrap splits text into lines no wider than maxWidth using greedy word
// wrapping. A single word wider than maxWidth is placed alone on its own
// line, never split. Empty input yields no lines.
func Wrap(text string, measure Measurer, maxWidth float64) []string {
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		test := word
		if current != "" {
			test = current + " " + word
		}
		if measure(test) <= maxWidth {
			current = test
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// LayoutBlock wraps every input line and stacks the wrapped segments
// top to bottom at lineHeight spacing, dropping whatever does not fit in
// maxHeight. The returned segments render at consecutive lineHeight steps.
func LayoutBlock(lines []string, measure Measurer, lineHeight, maxWidth, maxHeight float64) []string {
	segments := wrapAll(lines, measure, maxWidth)
	rows := rowCount(maxHeight, lineHeight)
	if len(segments) > rows {
		segments = segments[:rows]
	}
	return segments
}

// Flow is the result of reflowing a text block into the available region.
type Flow struct {
	Columns     [][]string // one or two columns of wrapped segments
	ColumnWidth float64
	LineHeight  float64
	Small       bool // true when the small-font fallback stage was taken
}

// Reflow lays out lines into a width×height region. The overflow policy is
// staged: a single full-width column at the body font; if the wrapped
// segments overflow, two columns of half the width (minus gutter) at the
// body font; if both columns still overflow, the same two columns at the
// small font; anything beyond that is dropped. The stage order is part of
// the contract: the font shrinks before content is truncated.
func Reflow(lines []string, body, small Style, width, height, gutter float64) Flow {
	rows := rowCount(height, body.LineHeight)
	full := wrapAll(lines, body.Measure, width)
	if len(full) <= rows {
		return Flow{Columns: [][]string{full}, ColumnWidth: width, LineHeight: body.LineHeight}
	}

	colWidth := (width - gutter) / 2
	style := body
	useSmall := false
	segments := wrapAll(lines, body.Measure, colWidth)
	if len(segments) > 2*rows {
		style = small
		useSmall = true
		segments = wrapAll(lines, small.Measure, colWidth)
		rows = rowCount(height, small.LineHeight)
	}
	if len(segments) > 2*rows {
		segments = segments[:2*rows]
	}

	split := rows
	if split > len(segments) {
		split = len(segments)
	}
	return Flow{
		Columns:     [][]string{segments[:split], segments[split:]},
		ColumnWidth: colWidth,
		LineHeight:  style.LineHeight,
		Small:       useSmall,
	}
}

func wrapAll(lines []string, measure Measurer, maxWidth float64) []string {
	var segments []string
	for _, line := range lines {
		segments = append(segments, Wrap(line, measure, maxWidth)...)
	}
	return segments
}

func rowCount(height, lineHeight float64) int {
	if lineHeight <= 0 || height <= 0 {
		return 0
	}
	return int(height / lineHeight)
}
