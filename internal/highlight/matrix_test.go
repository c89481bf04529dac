package highlight

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// Tests run without a tty, so lipgloss renders no escape codes and rows
// compare as plain text.
var plain = lipgloss.NewStyle()

func TestMatrixWrapsToWidth(t *testing.T) {
	rows := Line{Text: "abcdef"}.Matrix(3, 10, plain)
	if len(rows) != 2 || rows[0] != "abc" || rows[1] != "def" {
		t.Fatalf("rows: %q", rows)
	}
}

func TestMatrixHeightCap(t *testing.T) {
	rows := Line{Text: "abcdef"}.Matrix(2, 2, plain)
	if len(rows) != 2 || rows[0] != "ab" || rows[1] != "cd" {
		t.Fatalf("rows: %q", rows)
	}
}

func TestMatrixEmptyLine(t *testing.T) {
	rows := Line{Text: ""}.Matrix(80, 24, plain)
	if len(rows) != 1 || rows[0] != "" {
		t.Fatalf("rows: %q", rows)
	}
}

func TestMatrixWideRunes(t *testing.T) {
	rows := Line{Text: "日本語"}.Matrix(4, 10, plain)
	if len(rows) != 2 || rows[0] != "日本" || rows[1] != "語" {
		t.Fatalf("rows: %q", rows)
	}
}

func TestMatrixSpansPreserveText(t *testing.T) {
	l := Line{Text: "error: x", Spans: []Span{{Start: 0, End: 3}}}
	rows := l.Matrix(80, 24, plain)
	if len(rows) != 1 || rows[0] != "error: x" {
		t.Fatalf("rows: %q", rows)
	}
}

func TestMatrixZeroDimensions(t *testing.T) {
	if rows := (Line{Text: "x"}).Matrix(0, 10, plain); rows != nil {
		t.Fatalf("rows: %q", rows)
	}
	if rows := (Line{Text: "x"}).Matrix(10, 0, plain); rows != nil {
		t.Fatalf("rows: %q", rows)
	}
}
