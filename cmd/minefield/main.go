// Command minefield answers chain-reaction queries about a minefield file.
//
//	minefield efficiency FILE INDEX
//	minefield max FILE
//	minefield explode FILE X Y R
//	minefield area FILE [--index I]
//	minefield matrix FILE
//	minefield rounds FILE INDEX
//	minefield watch FILE
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)

	// trap Ctrl+C and call cancel on the context
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := newRootCommand(ctx, &Input{}, version).Execute(); err != nil {
		cancel()
		os.Exit(1)
	}
}
