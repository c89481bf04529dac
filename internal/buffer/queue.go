// Package buffer holds the bounded FIFO of recently seen lines that the
// viewer hands back to its caller on exit.
package buffer

type Queue struct {
	lines []string
	cap   int
}

func New(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{lines: make([]string, 0, capacity+1), cap: capacity}
}

// Push appends line, then evicts exactly one element from the front once
// the length exceeds capacity. Eviction happens after the insert, so the
// element considered oldest at the boundary is the one that arrived
// capacity pushes ago, not the line just added.
func (q *Queue) Push(line string) {
	q.lines = append(q.lines, line)
	if len(q.lines) > q.cap {
		copy(q.lines, q.lines[1:])
		q.lines = q.lines[:len(q.lines)-1]
	}
}

func (q *Queue) Len() int { return len(q.lines) }

// Lines returns the retained lines in arrival order.
func (q *Queue) Lines() []string {
	out := make([]string, len(q.lines))
	copy(out, q.lines)
	return out
}
