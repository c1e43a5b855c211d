// Command crucible solves constrained minimum-cost routes over digit grids.
//
//	crucible solve grid.txt                      # default standard + ultra profiles
//	crucible solve grid.txt --max-run 10 --min-run 4 --path
//	crucible solve grid.txt --config crucible.yaml --metrics-out search.prom
//	crucible baseline grid.txt
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := Execute(ctx)
	stop()
	os.Exit(code)
}
