package terminal

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/cancelreader"
)

func decode(t *testing.T, data []byte) tea.KeyMsg {
	t.Helper()
	msg, err := readKey(bufio.NewReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("readKey(%q): %v", data, err)
	}
	return msg
}

func TestDecodePlainRune(t *testing.T) {
	msg := decode(t, []byte("a"))
	if msg.Type != tea.KeyRunes || string(msg.Runes) != "a" {
		t.Fatalf("msg: %v", msg)
	}
}

func TestDecodeUTF8Rune(t *testing.T) {
	msg := decode(t, []byte("é"))
	if msg.Type != tea.KeyRunes || string(msg.Runes) != "é" {
		t.Fatalf("msg: %v", msg)
	}
}

func TestDecodeControlKeys(t *testing.T) {
	cases := []struct {
		in   byte
		want tea.KeyType
	}{
		{0x03, tea.KeyCtrlC},
		{0x06, tea.KeyCtrlF},
		{0x12, tea.KeyCtrlR},
		{0x15, tea.KeyCtrlU},
		{'\t', tea.KeyTab},
		{'\r', tea.KeyEnter},
		{0x7f, tea.KeyBackspace},
	}
	for _, c := range cases {
		if msg := decode(t, []byte{c.in}); msg.Type != c.want {
			t.Fatalf("byte %#x: got %v want %v", c.in, msg.Type, c.want)
		}
	}
}

func TestDecodeArrowSequences(t *testing.T) {
	cases := []struct {
		in   string
		want tea.KeyType
	}{
		{"\x1b[A", tea.KeyUp},
		{"\x1b[B", tea.KeyDown},
		{"\x1b[C", tea.KeyRight},
		{"\x1b[D", tea.KeyLeft},
		{"\x1b[H", tea.KeyHome},
		{"\x1b[F", tea.KeyEnd},
		{"\x1b[3~", tea.KeyDelete},
	}
	for _, c := range cases {
		if msg := decode(t, []byte(c.in)); msg.Type != c.want {
			t.Fatalf("%q: got %v want %v", c.in, msg.Type, c.want)
		}
	}
}

func TestDecodeLoneEscape(t *testing.T) {
	if msg := decode(t, []byte{0x1b}); msg.Type != tea.KeyEsc {
		t.Fatalf("msg: %v", msg)
	}
}

func TestReadKeyUnblocksOnCancel(t *testing.T) {
	pr, pw, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer pw.Close()
	defer pr.Close()

	cr, err := cancelreader.NewReader(pr)
	if err != nil {
		t.Fatalf("cancelreader: %v", err)
	}
	defer cr.Close()

	done := make(chan error, 1)
	go func() {
		_, err := readKey(bufio.NewReader(cr))
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cr.Cancel()
	select {
	case err := <-done:
		if !errors.Is(err, cancelreader.ErrCanceled) {
			t.Fatalf("err: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("read did not unblock after cancel")
	}
}
