package viewer

import "errors"

// Signal is the decision an input event resolves to: keep going, or hand
// control to the other view. GotoArchived and GotoStreaming are the only
// values that terminate a view's interactive loop.
type Signal int

const (
	SignalContinue Signal = iota
	SignalGotoArchived
	SignalGotoStreaming
)

func (s Signal) String() string {
	switch s {
	case SignalGotoArchived:
		return "goto-archived"
	case SignalGotoStreaming:
		return "goto-streaming"
	default:
		return "continue"
	}
}

// ErrInterrupted marks a user-initiated quit (Ctrl-C or Esc). The caller
// treats it as a clean exit, unlike terminal or source failures.
var ErrInterrupted = errors.New("interrupted")
