// Package viewer runs the interactive views: the live streaming view with
// its background ingestion/render tasks, and the archived view over the
// lines retained when the live view exits.
package viewer

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"golang.org/x/sync/errgroup"

	"trawl/internal/buffer"
	"trawl/internal/config"
	"trawl/internal/highlight"
	"trawl/internal/ingest"
	"trawl/internal/terminal"
	"trawl/internal/util/logx"
)

// sharedEditor is the query editor state. The input loop takes exclusive
// access to mutate it; the render loop only ever reads.
type sharedEditor struct {
	mu    sync.RWMutex
	input textinput.Model
}

func (e *sharedEditor) snapshot() (query, pane string) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.input.Value(), e.input.View()
}

// sharedTerminal serializes the two draw paths: the input loop redraws its
// own pane under the write lock, the render loop draws the merged
// stream+pane view under the read lock. With a single render loop that is
// enough to keep partial draws from interleaving.
type sharedTerminal struct {
	mu   sync.RWMutex
	term *terminal.Terminal
}

func newEditor(styles Styles) textinput.Model {
	input := textinput.New()
	input.Prompt = "> "
	input.PromptStyle = styles.Prompt
	input.Placeholder = "pattern (a|b matches either)"
	input.CharLimit = 256
	input.Focus()
	return input
}

func ingestOptions(cfg *config.Config) ingest.Options {
	opt := ingest.Options{Source: ingest.SourceStdin, ScanBufSize: cfg.ScanBufSize}
	switch {
	case cfg.Command != "":
		opt.Source = ingest.SourceCommand
		opt.Command = cfg.Command
	case cfg.FilePath != "":
		opt.Source = ingest.SourceFile
		opt.Path = cfg.FilePath
	}
	return opt
}

// Run drives the streaming view until a terminating Signal or a fatal
// error, then hands back that Signal together with the retained lines.
func Run(ctx context.Context, cfg *config.Config) (Signal, []string, error) {
	styles := NewStyles(cfg.Theme == config.ThemeDark)

	term, err := terminal.Open()
	if err != nil {
		return SignalContinue, nil, err
	}
	defer term.Close()

	editor := &sharedEditor{input: newEditor(styles)}
	shared := &sharedTerminal{term: term}

	_, pane := editor.snapshot()
	if err := term.DrawPane(pane); err != nil {
		return SignalContinue, nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	// A context cancelled from outside (SIGTERM) must not wait for the
	// next keypress to unblock the foreground loop.
	stop := context.AfterFunc(ctx, term.CancelInput)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	// Capacity 1 on purpose: when the render loop falls behind, the
	// ingestion task blocks on send and throttles the source instead of
	// buffering unboundedly.
	lines := make(chan string, 1)

	g.Go(func() error {
		defer close(lines)
		return ingest.Stream(gctx, ingestOptions(cfg), lines, cfg.Timeout)
	})

	queue := buffer.New(cfg.Capacity)
	g.Go(func() error {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()
		for {
			<-ticker.C
			line, ok := <-lines
			if !ok {
				return nil
			}
			queue.Push(line)

			query, pane := editor.snapshot()
			width, height, err := term.Size()
			if err != nil {
				return err
			}
			styled, match := highlight.Styled(query, line, cfg.CaseInsensitive)
			if !match {
				// Suppressed from display, already retained.
				continue
			}
			matrix := styled.Matrix(width, height, styles.Highlight)
			shared.mu.RLock()
			err = shared.term.DrawStreamAndPane(matrix, pane)
			shared.mu.RUnlock()
			if err != nil {
				return err
			}
		}
	})

	signal := SignalContinue
	var loopErr error
	for {
		msg, err := term.ReadKey()
		if err != nil {
			if cerr := ctx.Err(); cerr != nil {
				err = cerr
			}
			loopErr = err
			break
		}
		editor.mu.Lock()
		s, err := StreamingKeymap(msg, &editor.input, cfg.Command)
		editor.mu.Unlock()
		if err != nil {
			loopErr = err
			break
		}
		if s == SignalGotoArchived || s == SignalGotoStreaming {
			signal = s
			break
		}
		_, pane := editor.snapshot()
		shared.mu.Lock()
		err = shared.term.DrawPane(pane)
		shared.mu.Unlock()
		if err != nil {
			loopErr = err
			break
		}
	}

	cancel()
	if err := g.Wait(); err != nil {
		return SignalContinue, nil, err
	}
	if loopErr != nil {
		return SignalContinue, queue.Lines(), loopErr
	}
	logx.Infof("streaming view done: signal=%s retained=%d", signal, queue.Len())
	return signal, queue.Lines(), nil
}
