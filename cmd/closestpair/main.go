// Command closestpair finds closest pairs in point files, generates random
// point sets and benchmarks the brute-force and divide-and-conquer finders.
//
//	closestpair gen   --n 1000 --seed 7 --output points.json
//	closestpair find  --input points.json --algorithm both
//	closestpair bench --sizes 1000,2000 --runs 5 --format table
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
