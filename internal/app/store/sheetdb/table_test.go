package sheetdb

import "testing"

func TestColumnLetter(t *testing.T) {
	cases := []struct {
		col  int
		want string
	}{
		{1, "A"},
		{2, "B"},
		{9, "I"},
		{26, "Z"},
		{27, "AA"},
		{52, "AZ"},
		{53, "BA"},
	}
	for _, tc := range cases {
		if got := columnLetter(tc.col); got != tc.want {
			t.Errorf("columnLetter(%d): got %q, want %q", tc.col, got, tc.want)
		}
	}
}

func TestQuoteTitle(t *testing.T) {
	if got := quoteTitle("Current"); got != "'Current'" {
		t.Errorf("quoteTitle: got %q", got)
	}
}

func TestCellString(t *testing.T) {
	if got := cellString("abc"); got != "abc" {
		t.Errorf("string value: got %q", got)
	}
	// Numeric pins coming back from the API as numbers must still compare
	// as text.
	if got := cellString(1234); got != "1234" {
		t.Errorf("int value: got %q", got)
	}
}

func TestToInterfaceRows(t *testing.T) {
	rows := toInterfaceRows([][]string{{"a", "b"}, {"c"}})
	if len(rows) != 2 || len(rows[0]) != 2 || len(rows[1]) != 1 {
		t.Fatalf("shape mismatch: %v", rows)
	}
	if rows[0][1] != "b" {
		t.Errorf("value mismatch: %v", rows[0][1])
	}
}
