package viewer

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTypingEditsQuery(t *testing.T) {
	ed := newEditor(NewStyles(true))
	for _, r := range "err" {
		s, err := StreamingKeymap(runeMsg(r), &ed, "")
		if err != nil {
			t.Fatalf("keymap: %v", err)
		}
		if s != SignalContinue {
			t.Fatalf("signal: %v", s)
		}
	}
	if ed.Value() != "err" {
		t.Fatalf("query: %q", ed.Value())
	}
}

func TestBackspaceEditsQuery(t *testing.T) {
	ed := newEditor(NewStyles(true))
	for _, r := range "ab" {
		if _, err := StreamingKeymap(runeMsg(r), &ed, ""); err != nil {
			t.Fatalf("keymap: %v", err)
		}
	}
	if _, err := StreamingKeymap(tea.KeyMsg{Type: tea.KeyBackspace}, &ed, ""); err != nil {
		t.Fatalf("keymap: %v", err)
	}
	if ed.Value() != "a" {
		t.Fatalf("query: %q", ed.Value())
	}
}

func TestInterruptKeys(t *testing.T) {
	for _, kt := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		ed := newEditor(NewStyles(true))
		_, err := StreamingKeymap(tea.KeyMsg{Type: kt}, &ed, "")
		if !errors.Is(err, ErrInterrupted) {
			t.Fatalf("%v: err=%v", kt, err)
		}
	}
}

func TestGotoArchived(t *testing.T) {
	for _, kt := range []tea.KeyType{tea.KeyTab, tea.KeyCtrlF} {
		ed := newEditor(NewStyles(true))
		s, err := StreamingKeymap(tea.KeyMsg{Type: kt}, &ed, "")
		if err != nil || s != SignalGotoArchived {
			t.Fatalf("%v: signal=%v err=%v", kt, s, err)
		}
	}
}

func TestRestartNeedsCommand(t *testing.T) {
	ed := newEditor(NewStyles(true))
	s, err := StreamingKeymap(tea.KeyMsg{Type: tea.KeyCtrlR}, &ed, "tail -f app.log")
	if err != nil || s != SignalGotoStreaming {
		t.Fatalf("with command: signal=%v err=%v", s, err)
	}
	s, err = StreamingKeymap(tea.KeyMsg{Type: tea.KeyCtrlR}, &ed, "")
	if err != nil || s != SignalContinue {
		t.Fatalf("without command: signal=%v err=%v", s, err)
	}
}

func TestArchivedReturnsToStreaming(t *testing.T) {
	ed := newEditor(NewStyles(true))
	s, err := ArchivedKeymap(tea.KeyMsg{Type: tea.KeyTab}, &ed, "")
	if err != nil || s != SignalGotoStreaming {
		t.Fatalf("signal=%v err=%v", s, err)
	}
	if _, err := ArchivedKeymap(tea.KeyMsg{Type: tea.KeyEsc}, &ed, ""); !errors.Is(err, ErrInterrupted) {
		t.Fatalf("err=%v", err)
	}
}

func TestKeymapIsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		ed := newEditor(NewStyles(true))
		s, err := StreamingKeymap(runeMsg('x'), &ed, "")
		if s != SignalContinue || err != nil || ed.Value() != "x" {
			t.Fatalf("iteration %d: signal=%v err=%v value=%q", i, s, err, ed.Value())
		}
	}
}
