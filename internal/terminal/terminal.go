// Package terminal owns the raw-mode terminal: size queries, pane drawing,
// stream drawing, and decoding raw bytes into key events.
package terminal

import (
	"bufio"
	"fmt"
	"os"

	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

// Terminal reads key events from and draws to the controlling tty. Input
// comes from /dev/tty when available so the viewer keeps working while
// stdin carries the piped data stream.
type Terminal struct {
	in      *os.File
	outFile *os.File
	cr      cancelreader.CancelReader
	reader  *bufio.Reader
	out     *bufio.Writer
	restore *term.State
}

func Open() (*Terminal, error) {
	t := &Terminal{}
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err == nil {
		t.in = tty
		t.outFile = tty
	} else {
		t.in = os.Stdin
		t.outFile = os.Stdout
	}

	cr, err := cancelreader.NewReader(t.in)
	if err != nil {
		return nil, fmt.Errorf("wrap tty: %w", err)
	}
	t.cr = cr
	t.reader = bufio.NewReader(cr)
	t.out = bufio.NewWriter(t.outFile)

	st, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		cr.Close()
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	t.restore = st
	t.writeString("\x1b[?25l")
	return t, t.out.Flush()
}

// Close restores the terminal and releases the tty. Safe to call once the
// session is over even if draws have failed.
func (t *Terminal) Close() error {
	t.cr.Cancel()
	if t.restore != nil {
		_ = term.Restore(int(t.in.Fd()), t.restore)
		t.restore = nil
	}
	t.writeString("\x1b[?25h\r\n")
	err := t.out.Flush()
	t.cr.Close()
	if t.in.Name() == "/dev/tty" {
		_ = t.in.Close()
	}
	return err
}

// CancelInput unblocks a pending ReadKey, which then returns
// cancelreader.ErrCanceled. Used to tear down the foreground loop when
// the session context ends while no key is forthcoming.
func (t *Terminal) CancelInput() {
	t.cr.Cancel()
}

// Size re-derives the current terminal dimensions.
func (t *Terminal) Size() (width, height int, err error) {
	width, height, err = term.GetSize(int(t.outFile.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	return width, height, nil
}

// DrawPane redraws the editor pane in place on the current line.
func (t *Terminal) DrawPane(pane string) error {
	t.writeString("\r\x1b[2K")
	t.writeString(pane)
	return t.out.Flush()
}

// DrawStreamAndPane prints the laid-out rows of a freshly matched line,
// letting the terminal scroll, then redraws the pane beneath them.
func (t *Terminal) DrawStreamAndPane(matrix []string, pane string) error {
	t.writeString("\r\x1b[2K")
	for _, row := range matrix {
		t.writeString(row)
		t.writeString("\r\n")
	}
	t.writeString(pane)
	return t.out.Flush()
}

// DrawScreen clears the whole screen and redraws rows with the pane on the
// line below them. Used by the archived view, which re-renders everything
// on each keystroke.
func (t *Terminal) DrawScreen(rows []string, pane string) error {
	t.writeString("\x1b[2J\x1b[H")
	for _, row := range rows {
		t.writeString(row)
		t.writeString("\r\n")
	}
	t.writeString(pane)
	return t.out.Flush()
}

func (t *Terminal) writeString(s string) {
	_, _ = t.out.WriteString(s)
}
