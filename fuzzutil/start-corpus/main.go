// Command start-corpus generates an initial fuzzing corpus for an input
// script. Each entry is rendered from a distinct seed of the random backend,
// so the engine starts from structurally valid inputs instead of garbage.
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
	outputDir  = flag.String("output-dir", "corpus", "the output directory for the initial corpus")
	entries    = flag.Int("entries", 32, "number of corpus entries to generate")
	baseSeed   = flag.Int64("seed", 1, "seed of the first entry; entry i uses seed+i")
)

func startCorpus() error {
	src, err := os.ReadFile(*scriptPath)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	script, err := inputspec.Parse(string(src))
	if err != nil {
		return fmt.Errorf("failed to parse script: %w", err)
	}
	seeds := make([]int64, *entries)
	for i := range seeds {
		seeds[i] = *baseSeed + int64(i)
	}
	return fuzzutil.SeedCorpus(*outputDir, script, seeds)
}

func main() {
	flag.Parse()

	if *scriptPath == "" {
		fmt.Fprintln(os.Stderr, "path to the input script must be provided")
		os.Exit(1)
	}
	if err := startCorpus(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
