package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"trawl/internal/config"
	"trawl/internal/util/logx"
	"trawl/internal/version"
	"trawl/internal/viewer"
)

func main() {
	logx.SetLevelFromEnv()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Println("trawl", version.String())
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logx.Infof("starting trawl %s: %s", version.String(), cfg)
	if err := run(ctx, cfg); err != nil {
		logx.Errorf("trawl exited with error: %v", err)
		fmt.Fprintln(os.Stderr, "trawl:", err)
		if dump := logx.Dump(); dump != "" {
			fmt.Fprintln(os.Stderr, dump)
		}
		os.Exit(1)
	}
}

// run alternates between the streaming and archived views until the user
// quits. The lines retained by a streaming session carry over into the
// archived view; going back to streaming starts over with a fresh queue.
func run(ctx context.Context, cfg *config.Config) error {
	var retained []string
	archived := false
	for {
		if archived {
			sig, err := viewer.RunArchived(ctx, cfg, retained)
			if errors.Is(err, viewer.ErrInterrupted) {
				return nil
			}
			if err != nil {
				return err
			}
			if sig == viewer.SignalGotoStreaming {
				archived = false
			}
			continue
		}

		sig, lines, err := viewer.Run(ctx, cfg)
		if errors.Is(err, viewer.ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}
		retained = lines
		if sig == viewer.SignalGotoArchived {
			archived = true
		}
		// SignalGotoStreaming restarts the stream on the next pass.
	}
}
