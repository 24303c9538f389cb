package main

import (
	"os"

	"github.com/cpfuzz/cpfuzz/cmd/cpfuzz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
