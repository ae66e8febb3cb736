package scripture

import "testing"

func TestBooksCanonShape(t *testing.T) {
	if len(Books) != BookCount {
		t.Fatalf("canon has %d books, want %d", len(Books), BookCount)
	}
	for i, b := range Books {
		if b.Number != i+1 {
			t.Errorf("book %q numbered %d, want %d", b.Name, b.Number, i+1)
		}
	}
	if Books[38].Testament != OldTestament || Books[39].Testament != NewTestament {
		t.Error("testament boundary should fall between Malachi and Matthew")
	}
}

func TestFindBook(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Genesis", "Genesis"},
		{"gen", "Genesis"},
		{"GEN.", "Genesis"},
		{"1 Samuel", "1 Samuel"},
		{"1sam", "1 Samuel"},
		{"i sam", "1 Samuel"},
		{"Song of Solomon", "Song of Solomon"},
		{"sos", "Song of Solomon"},
		{"jn", "John"},
		{"rev", "Revelation"},
	}
	for _, c := range cases {
		got := FindBook(c.in)
		if got == nil || got.Name != c.want {
			t.Errorf("FindBook(%q) = %v, want %s", c.in, got, c.want)
		}
	}
	if FindBook("atlantis") != nil {
		t.Error("FindBook should return nil for unknown books")
	}
}

func TestBookName(t *testing.T) {
	if got := BookName(43); got != "John" {
		t.Errorf("BookName(43) = %q", got)
	}
	if got := BookName(99); got != "Book 99" {
		t.Errorf("BookName(99) = %q, want placeholder", got)
	}
}
