// Package main provides the CLI entrypoint for basket-reconciler.
//
// basket-reconciler reconciles reinforcement basket labels exported from a
// drawing with the coefficient dataset:
//   - pair: label basket numbers with their cage letters
//   - coefficients: resolve the coefficient of every section
//   - chapters: export per-section coefficients found by proximity
//   - walls: group walls by the section and coefficient around them
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
