// Package ingest produces the line stream the viewer consumes: standard
// input, the stdout of a spawned command, or a followed file.
package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/muesli/cancelreader"
	"github.com/nxadm/tail"
)

type SourceKind string

const (
	SourceStdin   SourceKind = "stdin"
	SourceCommand SourceKind = "command"
	SourceFile    SourceKind = "file"
)

type Options struct {
	Source      SourceKind
	Command     string // shell command, SourceCommand only
	Path        string // file path, SourceFile only
	ScanBufSize int    // per-line max (bytes)
}

// Stream reads lines from the configured source and forwards them into out
// in arrival order. Sends block while out is full; that is the pipeline's
// backpressure point. Each read attempt is bounded by timeout so the loop
// re-checks ctx; a timeout is "nothing available yet", never an error.
// Stream returns promptly once ctx is done, and nil at end of stream.
// The caller owns out and closes it after Stream returns.
func Stream(ctx context.Context, opt Options, out chan<- string, timeout time.Duration) error {
	switch opt.Source {
	case SourceStdin:
		return streamStdin(ctx, opt, out, timeout)
	case SourceCommand:
		return streamCommand(ctx, opt, out, timeout)
	case SourceFile:
		return streamFile(ctx, opt, out, timeout)
	default:
		return fmt.Errorf("unknown source kind %q", opt.Source)
	}
}

func streamStdin(ctx context.Context, opt Options, out chan<- string, timeout time.Duration) error {
	cr, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		return fmt.Errorf("wrap stdin: %w", err)
	}
	defer cr.Close()

	// Cancel unblocks a Read already in flight; without it the scanner
	// goroutine would outlive the session holding stdin.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			cr.Cancel()
		case <-done:
		}
	}()

	err = streamReader(ctx, cr, opt.ScanBufSize, out, timeout)
	if errors.Is(err, cancelreader.ErrCanceled) {
		return nil
	}
	return err
}

func streamCommand(ctx context.Context, opt Options, out chan<- string, timeout time.Duration) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", opt.Command)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("pipe %q: %w", opt.Command, err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn %q: %w", opt.Command, err)
	}

	serr := streamReader(ctx, stdout, opt.ScanBufSize, out, timeout)
	cancelled := ctx.Err() != nil
	if serr != nil && !cancelled {
		// The read side failed while the child may still be running;
		// kill it so Wait cannot block on a healthy writer.
		_ = cmd.Process.Kill()
	}
	werr := cmd.Wait()
	if serr != nil && !cancelled {
		return serr
	}
	if cancelled {
		// Killed by cancellation; neither the read error nor the exit
		// status is ours to report.
		return nil
	}
	if werr != nil {
		return fmt.Errorf("command %q: %w", opt.Command, werr)
	}
	return nil
}

func streamFile(ctx context.Context, opt Options, out chan<- string, timeout time.Duration) error {
	t, err := tail.TailFile(opt.Path, tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: true,
		Poll:      true,
		Logger:    tail.DiscardingLogger,
		Location:  &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd},
	})
	if err != nil {
		return fmt.Errorf("tail %s: %w", opt.Path, err)
	}
	defer t.Cleanup()

	for {
		select {
		case <-ctx.Done():
			t.Stop()
			return nil
		case l, ok := <-t.Lines:
			if !ok {
				return nil
			}
			if l.Err != nil {
				t.Stop()
				return l.Err
			}
			select {
			case out <- l.Text:
			case <-ctx.Done():
				t.Stop()
				return nil
			}
		case <-time.After(timeout):
			// Nothing yet; loop so cancellation stays responsive.
		}
	}
}

// streamReader pumps r line by line into out. A background goroutine runs
// the scanner while the foreground loop applies the per-read timeout and
// watches ctx, so a stalled source never wedges shutdown.
func streamReader(ctx context.Context, r io.Reader, maxBuf int, out chan<- string, timeout time.Duration) error {
	if maxBuf <= 0 {
		maxBuf = 1024 * 1024
	}
	lines := make(chan string)
	errs := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxBuf)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errs <- err
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errs:
					return err
				default:
					return nil
				}
			}
			select {
			case out <- line:
			case <-ctx.Done():
				return nil
			}
		case <-time.After(timeout):
			// Nothing yet; re-check cancellation.
		}
	}
}
