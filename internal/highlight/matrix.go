package highlight

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Matrix lays the line out into terminal rows of at most width cells,
// capped at height rows. Highlighted byte positions are rendered through
// style; everything else passes through unchanged.
func (l Line) Matrix(width, height int, style lipgloss.Style) []string {
	if width <= 0 || height <= 0 {
		return nil
	}

	var (
		rows []string
		row  strings.Builder
		seg  strings.Builder
		col  int
		hot  bool
	)
	flushSeg := func() {
		if seg.Len() == 0 {
			return
		}
		if hot {
			row.WriteString(style.Render(seg.String()))
		} else {
			row.WriteString(seg.String())
		}
		seg.Reset()
	}
	flushRow := func() {
		flushSeg()
		rows = append(rows, row.String())
		row.Reset()
		col = 0
	}

	pos := 0
	for _, r := range l.Text {
		w := runewidth.RuneWidth(r)
		if col+w > width && col > 0 {
			flushRow()
		}
		if h := l.highlighted(pos); h != hot {
			flushSeg()
			hot = h
		}
		seg.WriteRune(r)
		col += w
		pos += utf8.RuneLen(r)
	}
	flushRow()

	if len(rows) > height {
		rows = rows[:height]
	}
	return rows
}
