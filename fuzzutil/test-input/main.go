//go:build gofuzz
// +build gofuzz

// Command test-input replays one engine buffer against the registered
// script, which is mostly useful for reproducing crashers from the engine's
// workdir. Must be built with the gofuzz build tag.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cpfuzz/cpfuzz/fuzzutil"
	"github.com/cpfuzz/cpfuzz/inputspec"
)

var (
	scriptPath = flag.String("script", "", "path to the input script")
	inputPath  = flag.String("path", "", "path to the input, probably something like workdir/crashers")
)

func main() {
	flag.Parse()

	if *scriptPath == "" || *inputPath == "" {
		fmt.Fprintln(os.Stderr, "both -script and -path must be provided")
		os.Exit(1)
	}
	src, err := os.ReadFile(*scriptPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read script:", err)
		os.Exit(1)
	}
	script, err := inputspec.Parse(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to parse script:", err)
		os.Exit(1)
	}
	b, err := os.ReadFile(*inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read input file:", err)
		os.Exit(1)
	}

	fuzzutil.SetTarget(script, nil)
	rendered, err := fuzzutil.RenderInput(b)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to render input:", err)
		os.Exit(1)
	}
	fmt.Printf("rendered input:\n%s\n", rendered)
	fmt.Println("fuzzutil.Fuzz output:", fuzzutil.Fuzz(b))
}
