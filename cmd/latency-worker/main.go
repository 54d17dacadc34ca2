// Command latency-worker is the latency variant of the stdio worker.
//
// It writes "Ready" to stdout, then answers each partition identifier read from
// stdin with a response block terminated by a blank line. Diagnostics go to stderr.
package main

import (
	"context"
	"os"

	"github.com/arloliu/stdioworker/internal/launcher"
)

func main() {
	os.Exit(launcher.Run(context.Background(), "latency", os.Stdin, os.Stdout, os.Stderr))
}
