package viewer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Keymap resolves a key event against the query editor and yields the
// Signal directing what the viewer does next. Resolution is deterministic;
// any event it does not claim is forwarded to the editor, which is how
// typed characters end up in the query.
type Keymap func(msg tea.KeyMsg, editor *textinput.Model, command string) (Signal, error)

// StreamingKeymap is the binding set of the live view.
//
//	Ctrl-C / Esc    quit the session
//	Tab / Ctrl-F    switch to the archived view
//	Ctrl-R          restart the stream (only when an external command runs)
//	anything else   edit the query
func StreamingKeymap(msg tea.KeyMsg, editor *textinput.Model, command string) (Signal, error) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return SignalContinue, ErrInterrupted
	case tea.KeyTab, tea.KeyCtrlF:
		return SignalGotoArchived, nil
	case tea.KeyCtrlR:
		if command != "" {
			return SignalGotoStreaming, nil
		}
		return SignalContinue, nil
	}
	*editor, _ = editor.Update(msg)
	return SignalContinue, nil
}

// ArchivedKeymap mirrors the streaming bindings, with Tab/Ctrl-F handing
// control back to the live view.
func ArchivedKeymap(msg tea.KeyMsg, editor *textinput.Model, command string) (Signal, error) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return SignalContinue, ErrInterrupted
	case tea.KeyTab, tea.KeyCtrlF, tea.KeyEnter:
		return SignalGotoStreaming, nil
	}
	*editor, _ = editor.Update(msg)
	return SignalContinue, nil
}
