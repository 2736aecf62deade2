// Command ibpsetup prepares IBP reduction problems: it enumerates integral
// index tuples and assembles topology files into problem summaries for the
// template renderers of the reduction tools.
//
// Usage:
//
//	ibpsetup enumerate --n 4 --rmax 4 --smax 2 --dmax 1
//	ibpsetup enumerate --sector 1110 --rmax 3 --smax 1 --count
//	ibpsetup partitions 10 --max-parts 3
//	ibpsetup problem topologies/*.yaml --out problems/ --jobs 4
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		slog.Error("ibpsetup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
