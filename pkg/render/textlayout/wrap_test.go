package textlayout

import (
	"reflect"
	"strings"
	"testing"
)

// charWidth measures every character as 10 units.
func charWidth(s string) float64 { return float64(len(s)) * 10 }

func TestWrapGreedy(t *testing.T) {
	got := Wrap("The quick brown fox jumps", charWidth, 100)
	want := []string{"The quick", "brown fox", "jumps"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap = %v, want %v", got, want)
	}
}

func TestWrapNeverExceedsWidth(t *testing.T) {
	text := "and God said let there be light and there was light and God saw the light that it was good"
	for _, max := range []float64{60, 100, 150, 400} {
		for _, line := range Wrap(text, charWidth, max) {
			if charWidth(line) > max && strings.Contains(line, " ") {
				t.Errorf("max %v: line %q exceeds width", max, line)
			}
		}
	}
}

func TestWrapOverwideWordStandsAlone(t *testing.T) {
	got := Wrap("a Mahershalalhashbaz b", charWidth, 50)
	want := []string{"a", "Mahershalalhashbaz", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap = %v, want %v", got, want)
	}
}

func TestWrapEmpty(t *testing.T) {
	if got := Wrap("", charWidth, 100); len(got) != 0 {
		t.Errorf("Wrap(\"\") = %v, want empty", got)
	}
	if got := Wrap("   ", charWidth, 100); len(got) != 0 {
		t.Errorf("Wrap(whitespace) = %v, want empty", got)
	}
}

func TestLayoutBlockTruncates(t *testing.T) {
	lines := []string{"one two three four", "five six seven eight"}
	// Width 80 forces two segments per line; height 30 at lineHeight 10 keeps 3.
	got := LayoutBlock(lines, charWidth, 10, 80, 30)
	if len(got) != 3 {
		t.Fatalf("got %d segments, want 3", len(got))
	}
	want := []string{"one two", "three", "four"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("segments = %v, want %v", got, want)
	}
}

func TestReflowSingleColumn(t *testing.T) {
	body := Style{Measure: charWidth, LineHeight: 10}
	small := Style{Measure: charWidth, LineHeight: 8}
	flow := Reflow([]string{"short line"}, body, small, 200, 100, 20)
	if len(flow.Columns) != 1 {
		t.Fatalf("got %d columns, want 1", len(flow.Columns))
	}
	if flow.Small {
		t.Error("single column should use the body font")
	}
	if flow.ColumnWidth != 200 {
		t.Errorf("ColumnWidth = %v, want 200", flow.ColumnWidth)
	}
}

func TestReflowTwoColumnsBodyFont(t *testing.T) {
	body := Style{Measure: charWidth, LineHeight: 10}
	small := Style{Measure: charWidth, LineHeight: 8}
	// 6 lines of 5 chars in a 30px-high region: 3 rows per column at the
	// body font, so two columns hold everything without shrinking.
	lines := []string{"aaaaa", "bbbbb", "ccccc", "ddddd", "eeeee", "fffff"}
	flow := Reflow(lines, body, small, 220, 30, 20)
	if len(flow.Columns) != 2 {
		t.Fatalf("got %d columns, want 2", len(flow.Columns))
	}
	if flow.Small {
		t.Error("two columns at body font should not shrink")
	}
	if flow.ColumnWidth != 100 {
		t.Errorf("ColumnWidth = %v, want 100", flow.ColumnWidth)
	}
	if len(flow.Columns[0]) != 3 || len(flow.Columns[1]) != 3 {
		t.Errorf("column fill = %d/%d, want 3/3", len(flow.Columns[0]), len(flow.Columns[1]))
	}
}

func TestReflowShrinksBeforeTruncating(t *testing.T) {
	body := Style{Measure: charWidth, LineHeight: 10}
	small := Style{Measure: func(s string) float64 { return float64(len(s)) * 8 }, LineHeight: 8}
	// 8 lines in a 30px region: 3 rows/col at body font (6 places) is not
	// enough, so the small font (3.75 -> 3... rows at 8px = 3 rows? 30/8=3)
	// must be attempted before any content is dropped.
	lines := []string{"aaaaa", "bbbbb", "ccccc", "ddddd", "eeeee", "fffff", "ggggg", "hhhhh"}
	flow := Reflow(lines, body, small, 220, 33, 20)
	if !flow.Small {
		t.Fatal("expected the small-font stage")
	}
	if flow.LineHeight != 8 {
		t.Errorf("LineHeight = %v, want 8", flow.LineHeight)
	}
	// 33/8 = 4 rows per column: all 8 segments survive.
	total := len(flow.Columns[0]) + len(flow.Columns[1])
	if total != 8 {
		t.Errorf("kept %d segments, want 8", total)
	}
}

func TestReflowTruncatesAsLastResort(t *testing.T) {
	body := Style{Measure: charWidth, LineHeight: 10}
	small := Style{Measure: charWidth, LineHeight: 10}
	var lines []string
	for i := 0; i < 40; i++ {
		lines = append(lines, "xxxxx")
	}
	flow := Reflow(lines, body, small, 220, 30, 20)
	total := len(flow.Columns[0]) + len(flow.Columns[1])
	if total != 6 {
		t.Errorf("kept %d segments, want 6 (2 columns x 3 rows)", total)
	}
}

func TestReflowEmptyInput(t *testing.T) {
	body := Style{Measure: charWidth, LineHeight: 10}
	flow := Reflow(nil, body, body, 200, 100, 20)
	if len(flow.Columns) != 1 || len(flow.Columns[0]) != 0 {
		t.Errorf("empty input should yield one empty column, got %v", flow.Columns)
	}
}
