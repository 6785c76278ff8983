// Command kbi computes Kirkwood-Buff integrals from radial distribution
// functions.
//
//	kbi run job.yaml              evaluate every pair of a job file
//	kbi inspect rdf.xvg --upper 1 integrate and read out a single table
//	kbi odf --chi 2 --out odf.txt write the oscillatory decaying test function
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(nil).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "kbi:", err)
		stop()
		os.Exit(1)
	}
}
