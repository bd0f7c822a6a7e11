// Command boardtopo generates, validates, computes and renders planar
// board files.
//
//	boardtopo generate hex 4 6 -o board.yaml
//	boardtopo compute board.yaml
//	boardtopo locate board.yaml 12.5 30
//	boardtopo path board.yaml 0 5
//	boardtopo render board.yaml -o board.png --labels
//	boardtopo validate boards/*.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "boardtopo:", err)
		os.Exit(1)
	}
}
