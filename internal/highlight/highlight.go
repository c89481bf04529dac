package highlight

import (
	"regexp"
	"sort"
	"strings"
)

// Span is a half-open byte range [Start, End) within a line.
type Span struct {
	Start int
	End   int
}

// Line is a single line of text together with the byte ranges that
// should be drawn with the highlight style.
type Line struct {
	Text  string
	Spans []Span
}

// Styled decides whether line matches query and which byte ranges to
// highlight. The query is a set of alternative patterns separated by '|';
// each part is trimmed and empty parts are dropped. An empty query matches
// every line with no highlighting. Each part is a regular expression; a
// part that fails to compile makes the whole query match nothing, because
// the user is usually mid-edit and will fix it on the next keystroke.
func Styled(query, line string, caseInsensitive bool) (Line, bool) {
	patterns := splitQuery(query)
	if len(patterns) == 0 {
		return Line{Text: line}, true
	}

	var spans []Span
	for _, p := range patterns {
		if caseInsensitive {
			p = "(?i)" + p
		}
		re, err := regexp.Compile(p)
		if err != nil {
			return Line{}, false
		}
		for _, m := range re.FindAllStringIndex(line, -1) {
			// A zero-length match at or past end-of-line highlights
			// nothing and must not count as a hit.
			if m[0] >= len(line) {
				continue
			}
			spans = append(spans, Span{Start: m[0], End: m[1]})
		}
	}
	spans = mergeSpans(spans)
	if len(spans) == 0 {
		return Line{}, false
	}
	return Line{Text: line, Spans: spans}, true
}

func splitQuery(query string) []string {
	parts := strings.Split(query, "|")
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// mergeSpans unions overlapping ranges across all patterns so the matrix
// layout sees a sorted, non-overlapping span list.
func mergeSpans(spans []Span) []Span {
	if len(spans) < 2 {
		return spans
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})
	out := spans[:1]
	for _, s := range spans[1:] {
		last := &out[len(out)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		out = append(out, s)
	}
	return out
}

func (l Line) highlighted(pos int) bool {
	for _, s := range l.Spans {
		if pos >= s.End {
			continue
		}
		return pos >= s.Start
	}
	return false
}
