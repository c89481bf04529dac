package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type Config struct {
	Command         string
	FilePath        string
	CaseInsensitive bool
	Interval        time.Duration // render tick
	Timeout         time.Duration // per-read retrieval timeout
	Capacity        int           // retention queue capacity
	ScanBufSize     int           // per-line max (bytes)
	Theme           Theme
	ShowVersion     bool

	// Internal
	IsPipedStdin bool
}

func Load() (*Config, error) {
	cfg := &Config{}

	// Detect if stdin is piped
	fi, _ := os.Stdin.Stat()
	cfg.IsPipedStdin = (fi.Mode() & os.ModeCharDevice) == 0

	fs := flag.NewFlagSet("trawl", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.Command, "cmd", "", "spawn this command and stream its stdout (default: read stdin)")
	fs.StringVar(&cfg.FilePath, "file", "", "follow this file instead of reading stdin")
	fs.BoolVar(&cfg.CaseInsensitive, "i", false, "case-insensitive matching")
	fs.DurationVar(&cfg.Interval, "interval", 10*time.Millisecond, "render tick interval")
	fs.DurationVar(&cfg.Timeout, "timeout", 100*time.Millisecond, "per-line retrieval timeout")
	fs.IntVar(&cfg.Capacity, "capacity", 1000, "retention queue capacity (lines kept for the archived view)")
	fs.IntVar(&cfg.ScanBufSize, "max-line-bytes", 1024*1024, "per-line read buffer limit")
	theme := getenvDefault("TRAWL_THEME", string(ThemeDark))
	fs.StringVar(&theme, "theme", theme, "theme: dark|light")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}
	cfg.Theme = Theme(theme)

	if cfg.Command != "" && cfg.FilePath != "" {
		return nil, errors.New("-cmd and -file are mutually exclusive")
	}
	if cfg.Command == "" && cfg.FilePath == "" && !cfg.IsPipedStdin && !cfg.ShowVersion {
		return nil, errors.New("no input: pipe stdin or pass -cmd/-file")
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Millisecond
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 100 * time.Millisecond
	}

	return cfg, nil
}

func getenvDefault(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func (c *Config) String() string {
	return fmt.Sprintf("cmd=%q file=%q i=%v interval=%s timeout=%s capacity=%d theme=%s",
		c.Command, c.FilePath, c.CaseInsensitive, c.Interval, c.Timeout, c.Capacity, c.Theme)
}
