// trawlgen emits synthetic log lines to stdout at a fixed rate, handy for
// exercising the viewer without a real stream: trawlgen | trawl
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"
)

var (
	levels   = []string{"DEBUG", "INFO", "INFO", "INFO", "WARN", "ERROR"}
	services = []string{"api", "worker", "scheduler", "ingress", "db"}
	messages = []string{
		"request served",
		"cache miss",
		"retrying upstream",
		"connection reset by peer",
		"slow query detected",
		"task completed",
		"payload rejected",
	}
)

func main() {
	var (
		rate  float64
		count int
	)
	flag.Float64Var(&rate, "rate", 10.0, "lines per second")
	flag.IntVar(&count, "count", 0, "stop after this many lines (0 = run until interrupted)")
	flag.Parse()

	if rate <= 0 {
		fmt.Fprintln(os.Stderr, "rate must be positive")
		os.Exit(2)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	ticker := time.NewTicker(time.Duration(float64(time.Second) / rate))
	defer ticker.Stop()

	for n := 0; count == 0 || n < count; n++ {
		select {
		case <-sigCh:
			return
		case <-ticker.C:
		}
		level := levels[rand.Intn(len(levels))]
		service := services[rand.Intn(len(services))]
		msg := messages[rand.Intn(len(messages))]
		ts := time.Now().Format(time.RFC3339)
		fmt.Fprintf(w, "%s %-5s %s: %s (seq=%d lat_ms=%d)\n", ts, level, service, msg, n, rand.Intn(900)+10)
		w.Flush()
	}
}
