package viewer

import (
	"context"

	"trawl/internal/config"
	"trawl/internal/highlight"
	"trawl/internal/terminal"
	"trawl/internal/util/logx"
)

// RunArchived shows the lines retained by the last streaming session.
// Unlike the live view this runs entirely in the foreground and re-filters
// the whole retained slice on every keystroke: the data set is fixed, so a
// full scan is affordable and keeps the display exact.
func RunArchived(ctx context.Context, cfg *config.Config, retained []string) (Signal, error) {
	styles := NewStyles(cfg.Theme == config.ThemeDark)

	term, err := terminal.Open()
	if err != nil {
		return SignalContinue, err
	}
	defer term.Close()

	// A context cancelled from outside (SIGTERM) must not wait for the
	// next keypress.
	stop := context.AfterFunc(ctx, term.CancelInput)
	defer stop()

	editor := newEditor(styles)

	render := func() error {
		width, height, err := term.Size()
		if err != nil {
			return err
		}
		query := editor.Value()
		matched := 0
		rows := make([]string, 0, len(retained))
		for _, line := range retained {
			styled, match := highlight.Styled(query, line, cfg.CaseInsensitive)
			if !match {
				continue
			}
			matched++
			rows = append(rows, styled.Matrix(width, height, styles.Highlight)...)
		}
		// Keep the tail: the most recent lines sit above the pane.
		if limit := height - 1; limit > 0 && len(rows) > limit {
			rows = rows[len(rows)-limit:]
		}
		pane := editor.View() + styles.ArchiveStatus(matched, len(retained))
		return term.DrawScreen(rows, pane)
	}

	logx.Infof("archived view: %d retained lines", len(retained))
	if err := render(); err != nil {
		return SignalContinue, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return SignalContinue, err
		}
		msg, err := term.ReadKey()
		if err != nil {
			if cerr := ctx.Err(); cerr != nil {
				return SignalContinue, cerr
			}
			return SignalContinue, err
		}
		s, err := ArchivedKeymap(msg, &editor, cfg.Command)
		if err != nil {
			return SignalContinue, err
		}
		if s == SignalGotoStreaming {
			return s, nil
		}
		if err := render(); err != nil {
			return SignalContinue, err
		}
	}
}
