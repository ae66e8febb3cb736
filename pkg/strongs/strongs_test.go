package strongs

import (
	"reflect"
	"testing"
)

func TestExtractIDs(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{"In the beginning{H7225} God{H430} created{H1254}", []string{"H7225", "H430", "H1254"}},
		{"{G2316} loved the world {G2889}", []string{"G2316", "G2889"}},
		{"repeated {H1}{H1} tags", []string{"H1", "H1"}},
		{"no tags here", nil},
		{"{X123} {H} {Habc} malformed stays put", nil},
		{"", nil},
	}
	for _, c := range cases {
		got := ExtractIDs(c.text)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("ExtractIDs(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestStripTags(t *testing.T) {
	in := "In the beginning{H7225} God{H430} created{H1254} the heaven"
	want := "In the beginning God created the heaven"
	if got := StripTags(in); got != want {
		t.Errorf("StripTags = %q, want %q", got, want)
	}
}

func TestStripTagsIdempotent(t *testing.T) {
	in := "the Word{G3056} was with God{G2316}"
	once := StripTags(in)
	if ids := ExtractIDs(once); len(ids) != 0 {
		t.Errorf("stripped text still contains tags: %v", ids)
	}
	if twice := StripTags(once); twice != once {
		t.Errorf("StripTags not idempotent: %q != %q", twice, once)
	}
}

func TestStripTagsLeavesMalformed(t *testing.T) {
	in := "{X99} and {H12"
	if got := StripTags(in); got != in {
		t.Errorf("StripTags modified non-tag text: %q", got)
	}
}
