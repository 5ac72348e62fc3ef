package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"Run", "command", "1"},
		{"Setup:Contrast", "progress", "250"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignRight})
	want := []string{
		"Run             command     1",
		"Setup:Contrast  progress  250",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatMeasuresWideRunes(t *testing.T) {
	rows := [][]string{
		{"日本", "x"},
		{"ab", "y"},
	}
	got := Format(rows, nil)
	if got[0] != "日本  x" || got[1] != "ab    y" {
		t.Fatalf("unexpected alignment %q", got)
	}
}

func TestFormatWidthTruncates(t *testing.T) {
	got := FormatWidth([][]string{{"Backlight", "toggle", "On"}}, nil, 12)
	if got[0] != "Backlight..." {
		t.Fatalf("expected truncated row, got %q", got[0])
	}
	if Format(nil, nil) != nil {
		t.Fatal("expected nil for no rows")
	}
}
