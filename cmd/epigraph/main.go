// SPDX-License-Identifier: MIT
// Command epigraph builds layered contact graphs and runs pool simulations.
//
//	epigraph graph                         # reference town to graph.html
//	epigraph graph town.yaml --stats       # scenario file, census on stderr
//	epigraph simulate --n 1000 --r0 2.5 --n0 5 --ttl 3 --iterations 20
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
