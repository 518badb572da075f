package grapheme

import "testing"

const accent = "é"

func TestSplitAndCount(t *testing.T) {
	text := "a" + accent + "b"
	got := Split(text)
	if len(got) != 3 || got[1] != accent {
		t.Fatalf("Split(%q): got %q", text, got)
	}
	if c := Count(text); c != 3 {
		t.Fatalf("Count: got %d, want %d", c, 3)
	}
	if Split("") != nil || Count("") != 0 {
		t.Fatalf("empty text should have no clusters")
	}
}

func TestSlice(t *testing.T) {
	text := "a" + accent + "bc"
	if got, want := Slice(text, 1, 3), accent+"b"; got != want {
		t.Fatalf("Slice: got %q, want %q", got, want)
	}
	if got := Slice(text, 5, 6); got != "" {
		t.Fatalf("Slice past end: got %q, want empty", got)
	}
}

func TestInsertAndDelete(t *testing.T) {
	cases := []struct {
		name    string
		op      func() (string, int)
		want    string
		wantCol int
	}{
		{
			name: "insert middle",
			op:   func() (string, int) { return Insert("ac", 1, "b") },
			want: "abc", wantCol: 2,
		},
		{
			name: "insert clamps",
			op:   func() (string, int) { return Insert("ab", 9, accent) },
			want: "ab" + accent, wantCol: 3,
		},
		{
			name: "backspace removes whole cluster",
			op:   func() (string, int) { return DeleteBefore("x"+accent, 2) },
			want: "x", wantCol: 1,
		},
		{
			name: "backspace at start",
			op:   func() (string, int) { return DeleteBefore("x", 0) },
			want: "x", wantCol: 0,
		},
		{
			name: "delete at",
			op:   func() (string, int) { return DeleteAt(accent+"y", 0), 0 },
			want: "y", wantCol: 0,
		},
		{
			name: "delete past end",
			op:   func() (string, int) { return DeleteAt("y", 1), 1 },
			want: "y", wantCol: 1,
		},
	}

	for _, tc := range cases {
		got, col := tc.op()
		if got != tc.want || col != tc.wantCol {
			t.Fatalf("%s: got (%q, %d), want (%q, %d)", tc.name, got, col, tc.want, tc.wantCol)
		}
	}
}

func TestWordStart(t *testing.T) {
	cases := []struct {
		text string
		col  int
		want int
	}{
		{text: "E = mc", col: 6, want: 4},
		{text: "E = mc  ", col: 8, want: 4},
		{text: "a,b", col: 2, want: 1},
		{text: "word", col: 0, want: 0},
	}
	for _, tc := range cases {
		if got := WordStart(tc.text, tc.col); got != tc.want {
			t.Fatalf("WordStart(%q, %d): got %d, want %d", tc.text, tc.col, got, tc.want)
		}
	}
}

func TestWidthAndTruncate(t *testing.T) {
	if got := Width("表"); got != 2 {
		t.Fatalf("Width(wide): got %d, want 2", got)
	}
	if got := Truncate("abcdef", 4, "…"); got != "abc…" {
		t.Fatalf("Truncate: got %q, want %q", got, "abc…")
	}
	if got := Truncate("ab", 4, "…"); got != "ab" {
		t.Fatalf("Truncate(short): got %q, want %q", got, "ab")
	}
	// A wide cluster that does not fit is dropped whole.
	if got := Truncate("a表表", 4, "…"); got != "a表…" {
		t.Fatalf("Truncate(wide): got %q, want %q", got, "a表…")
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") || IsSpace("a") || IsSpace("") {
		t.Fatalf("IsSpace misclassified")
	}
	if !IsPunct("!") || IsPunct("a") {
		t.Fatalf("IsPunct misclassified")
	}
}
