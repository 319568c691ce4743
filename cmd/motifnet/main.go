// SPDX-License-Identifier: MIT

// Command motifnet generates motif-structured networks and rewires them
// towards a target correlation tensor.
//
//	motifnet generate -c run.yaml -o net.txt
//	motifnet rewire   -c run.yaml -i net.txt -o rewired.txt --metrics-file run.prom
//	motifnet run      -c run.yaml -o rewired.txt
//	motifnet extract  -i rewired.txt
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// trap Ctrl+C and cancel the running chain
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

	if err := Execute(ctx, version); err != nil {
		os.Exit(1)
	}
}
