// Command aoc2021 runs the packet decoder and the burrow solver on puzzle
// input files.
//
//	aoc2021 packet input16.txt --tree
//	aoc2021 burrow input23.txt --prune 60000 --trace
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("aoc2021 failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
