/*
archive2svg renders a newspaper archive as a scatter timeline: publication
date along x, word count on a log scale along y, and circle area by word
count. Up to two keyword filters lift matching articles into bands above the
main cloud and dim the rest.

Usage:

	archive2svg render --csv archive.csv --keyword-one klima --output archive.svg
	archive2svg serve --csv archive.csv
	archive2svg watch --csv archive.csv --config chart.yaml
	archive2svg keywords --csv archive.csv
	archive2svg stats --csv archive.csv
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
