package terminal

import (
	"bufio"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// ReadKey blocks until the next key event arrives on the tty. This is the
// single blocking wait of the foreground input loop.
func (t *Terminal) ReadKey() (tea.KeyMsg, error) {
	return readKey(t.reader)
}

func readKey(r *bufio.Reader) (tea.KeyMsg, error) {
	b, err := r.ReadByte()
	if err != nil {
		return tea.KeyMsg{}, err
	}

	switch b {
	case 0x1b:
		return readEscape(r)
	case 0x01:
		return key(tea.KeyCtrlA), nil
	case 0x05:
		return key(tea.KeyCtrlE), nil
	case 0x03:
		return key(tea.KeyCtrlC), nil
	case 0x06:
		return key(tea.KeyCtrlF), nil
	case 0x0b:
		return key(tea.KeyCtrlK), nil
	case 0x12:
		return key(tea.KeyCtrlR), nil
	case 0x15:
		return key(tea.KeyCtrlU), nil
	case 0x17:
		return key(tea.KeyCtrlW), nil
	case '\t':
		return key(tea.KeyTab), nil
	case '\r', '\n':
		return key(tea.KeyEnter), nil
	case 0x7f, 0x08:
		return key(tea.KeyBackspace), nil
	}

	if b < 0x20 {
		// Remaining control bytes have no binding.
		return key(tea.KeyNull), nil
	}
	if b < utf8.RuneSelf {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{rune(b)}}, nil
	}

	buf := []byte{b}
	for !utf8.FullRune(buf) && len(buf) < utf8.UTFMax {
		next, err := r.ReadByte()
		if err != nil {
			break
		}
		buf = append(buf, next)
	}
	ru, _ := utf8.DecodeRune(buf)
	if ru == utf8.RuneError {
		return key(tea.KeyNull), nil
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{ru}}, nil
}

// readEscape decodes the common CSI sequences. A lone ESC (nothing else
// buffered) is the escape key itself.
func readEscape(r *bufio.Reader) (tea.KeyMsg, error) {
	if r.Buffered() == 0 {
		return key(tea.KeyEsc), nil
	}
	b, err := r.ReadByte()
	if err != nil {
		return key(tea.KeyEsc), nil
	}
	if b != '[' && b != 'O' {
		_ = r.UnreadByte()
		return key(tea.KeyEsc), nil
	}
	b, err = r.ReadByte()
	if err != nil {
		return key(tea.KeyEsc), nil
	}
	switch b {
	case 'A':
		return key(tea.KeyUp), nil
	case 'B':
		return key(tea.KeyDown), nil
	case 'C':
		return key(tea.KeyRight), nil
	case 'D':
		return key(tea.KeyLeft), nil
	case 'H':
		return key(tea.KeyHome), nil
	case 'F':
		return key(tea.KeyEnd), nil
	case '3':
		if tilde, err := r.ReadByte(); err == nil && tilde == '~' {
			return key(tea.KeyDelete), nil
		}
		return key(tea.KeyNull), nil
	}
	return key(tea.KeyNull), nil
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}
