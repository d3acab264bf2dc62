//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of hyakumasu requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/hyakumasu` or play in a terminal with `go run ./cmd/hyakumasu-term`.")
	os.Exit(2)
}
